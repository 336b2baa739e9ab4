package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/npillmayer/wikitext"
	"github.com/npillmayer/wikitext/ast"
	"github.com/npillmayer/wikitext/core"
	"github.com/npillmayer/wikitext/core/parameters"
	"github.com/npillmayer/wikitext/query"
)

// tracer traces with key 'wikitext.cli'
func tracer() tracing.Trace {
	return tracing.Select("wikitext.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.wikitext":        "Info",
		"trace.wikitext.parser": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	pterm.Info.Println("Welcome to wikitext CLI")
	//
	// set up REPL
	repl, err := readline.New("wt > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, regs: parameters.NewParserRegisters()}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object. It holds the result of the most recent
// parse, which the show/list commands operate on.
type Intp struct {
	repl   *readline.Instance
	regs   *parameters.ParserRegisters
	result wikitext.Result
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (bool, error) {
	cmd, arg := line, ""
	if sp := strings.IndexByte(line, ' '); sp >= 0 {
		cmd, arg = line[:sp], strings.TrimSpace(line[sp+1:])
	}
	c := strings.Split(cmd, ":") // e.g. "show:tree" or "list:templates"
	sub := ""
	if len(c) > 1 {
		sub = c[1]
	}
	switch strings.ToLower(c[0]) {
	case "quit":
		return true, nil
	case "help":
		help()
	case "parse":
		intp.parse(arg)
	case "file":
		data, err := os.ReadFile(arg)
		if err != nil {
			return false, err
		}
		intp.parse(string(data))
	case "show":
		intp.show(sub)
	case "list":
		intp.list(sub)
	default:
		help()
	}
	return false, nil
}

func (intp *Intp) parse(input string) {
	intp.result = wikitext.ParseWith(input, intp.regs)
	pterm.Printfln("status %s, %d top-level nodes", intp.result.Status, len(intp.result.Nodes))
	if err := intp.result.Err; err != nil {
		pterm.Error.Printfln("[%d] %s", core.Code(err), core.UserMessage(err))
	}
	if !intp.result.Complete() {
		pterm.Printfln("remainder: %q", intp.result.Remainder)
	}
}

func (intp *Intp) show(what string) {
	switch strings.ToLower(what) {
	case "tree", "":
		for _, n := range intp.result.Nodes {
			pterm.Println(n.String())
		}
	case "text":
		pterm.Println(query.ExtractText(intp.result.Nodes))
	case "words":
		pterm.Printfln("%v", query.Words(intp.result.Nodes))
	case "remainder":
		pterm.Printfln("%q", intp.result.Remainder)
	default:
		pterm.Error.Printfln("nothing known about '%s'", what)
	}
}

func (intp *Intp) list(what string) {
	switch strings.ToLower(what) {
	case "templates":
		for _, t := range query.Templates(intp.result.Nodes) {
			pterm.Printfln("template %s with %d args", t.Name, len(t.Args))
		}
	case "links":
		for _, l := range query.Links(intp.result.Nodes) {
			pterm.Printfln("link %s (%s)", l.Target, l.Display)
		}
	case "categories":
		for _, c := range query.Categories(intp.result.Nodes) {
			pterm.Printfln("category %s", c)
		}
	case "files":
		for _, f := range query.Files(intp.result.Nodes) {
			pterm.Printfln("file %s %v", f.Name, f.Params)
		}
	case "headers":
		for _, h := range query.Headers(intp.result.Nodes) {
			pterm.Printfln("header level %d: %s", h.Payload.(ast.HeaderPayload).Level,
				query.ExtractText(h.Children))
		}
	case "refs":
		for _, r := range query.Refs(intp.result.Nodes) {
			pterm.Printfln("ref name=%s group=%s", r.Name.Unwrap(), r.Group.Unwrap())
		}
	default:
		pterm.Error.Printfln("nothing known about '%s'", what)
	}
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	parse <wikitext>   parse a fragment of wikitext markup
	file <path>        parse the contents of a file
	show:tree          print the parsed node tree
	show:text          print the extracted prose
	show:words         print the segmented words of the prose
	show:remainder     print the unconsumed input suffix
	list:templates     list template invocations
	list:links         list internal links
	list:categories    list categories
	list:files         list file inclusions
	list:headers       list headers with their prose
	list:refs          list reference tags
	quit               leave the CLI
	`)
}
