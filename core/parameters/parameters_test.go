package parameters

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRegistersDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext")
	defer teardown()
	//
	regs := NewParserRegisters()
	assert.Equal(t, 256, regs.N(P_MAXDEPTH))
	assert.True(t, regs.B(P_NORMALIZE))
	assert.Equal(t, "Image=File", regs.S(P_NSALIASES))
}

func TestRegistersPushBase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext")
	defer teardown()
	//
	regs := NewParserRegisters()
	regs.Push(P_MAXDEPTH, 16)
	assert.Equal(t, 16, regs.N(P_MAXDEPTH))
}

func TestRegistersGrouping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext")
	defer teardown()
	//
	regs := NewParserRegisters()
	regs.Begingroup()
	regs.Push(P_MAXDEPTH, 8)
	assert.Equal(t, 8, regs.N(P_MAXDEPTH), "group value should shadow the base value")
	regs.Begingroup()
	regs.Push(P_MAXDEPTH, 4)
	assert.Equal(t, 4, regs.N(P_MAXDEPTH))
	regs.Endgroup()
	assert.Equal(t, 8, regs.N(P_MAXDEPTH))
	regs.Endgroup()
	assert.Equal(t, 256, regs.N(P_MAXDEPTH), "base value should be restored")
}
