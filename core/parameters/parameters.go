/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

// Parser parameters are held in registers, which may be grouped. Opening a
// group shadows the previous values of a register until the group is
// closed again. The parser reads the registers once, when a parse starts.

type ParserParameter int

//go:generate stringer -type=ParserParameter
const (
	none ParserParameter = iota
	P_MAXDEPTH
	P_NORMALIZE
	P_NSALIASES
	P_STOPPER
)

type ParameterGroup struct {
	params map[ParserParameter]interface{}
	level  int
	next   *ParameterGroup
}

type ParserRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewParserRegisters() *ParserRegisters {
	regs := &ParserRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_MAXDEPTH] = 256           // recursion cap for nested constructs
	p[P_NORMALIZE] = true         // NFC-normalize input before scanning
	p[P_NSALIASES] = "Image=File" // namespace aliases, comma separated
}

func (regs *ParserRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *ParserRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

func (regs *ParserRegisters) Push(key ParserParameter, value interface{}) {
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil {
			g = &ParameterGroup{}
			g.params = make(map[ParserParameter]interface{})
			g.level = regs.grouplevel
			regs.groups = g
		} else {
			if regs.groups.level < regs.grouplevel {
				g = &ParameterGroup{}
				g.params = make(map[ParserParameter]interface{})
				g.level = regs.grouplevel
				g.next = regs.groups
				regs.groups = g
			} else {
				g = regs.groups
			}
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *ParserRegisters) Get(key ParserParameter) interface{} {
	if key <= 0 || key == P_STOPPER {
		panic("parameter key outside range of parser parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func (regs *ParserRegisters) S(key ParserParameter) string {
	return regs.Get(key).(string)
}

func (regs *ParserRegisters) N(key ParserParameter) int {
	return regs.Get(key).(int)
}

func (regs *ParserRegisters) B(key ParserParameter) bool {
	return regs.Get(key).(bool)
}
