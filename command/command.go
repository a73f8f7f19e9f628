// Package command implements the textual command verbs used to build and
// inspect a gate graph, e.g. "gate-add Sine_Wave wave". Every verb returns a
// string: empty on success for the verbs that change the graph, the
// requested data for queries, or a human-readable error message.
package command

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vsariola/gensyn/graph"
)

type (
	// Processor runs commands against a graph.
	Processor struct {
		graph    *graph.Graph
		commands map[string]command
		tmpl     *template.Template
	}

	command struct {
		usage   string
		help    string
		minArgs int
		run     func(p *Processor, args []string) string
	}
)

var commands = map[string]command{
	"help":            {usage: "help [command]", help: "Displays help. With no command given, lists the available commands.", run: (*Processor).help},
	"gate-list":       {usage: "gate-list", help: "Lists all added gates by name, one per line.", run: (*Processor).gateList},
	"gate-types":      {usage: "gate-types", help: "Lists the gate classes that can be added.", run: (*Processor).gateTypes},
	"gate-check":      {usage: "gate-check name", help: "Returns the empty string if name refers to a gate, an error otherwise.", minArgs: 1, run: (*Processor).gateCheck},
	"gate-add":        {usage: "gate-add class name", help: "Adds a new gate of the given class under the given name.", minArgs: 2, run: (*Processor).gateAdd},
	"gate-spawn":      {usage: "gate-spawn class", help: "Adds a new gate of the given class under a generated name and prints the name.", minArgs: 1, run: (*Processor).gateSpawn},
	"gate-remove":     {usage: "gate-remove name", help: "Removes a gate and all its connections.", minArgs: 1, run: (*Processor).gateRemove},
	"gate-summary":    {usage: "gate-summary name", help: "Gives a detailed summary of a gate.", minArgs: 1, run: (*Processor).gateSummary},
	"gate-connect":    {usage: "gate-connect from slot to", help: "Connects the output of gate from to the given slot of gate to.", minArgs: 3, run: (*Processor).gateConnect},
	"gate-disconnect": {usage: "gate-disconnect from slot to", help: "Disconnects the given slot of gate to.", minArgs: 3, run: (*Processor).gateDisconnect},
	"gate-get-param":  {usage: "gate-get-param name param", help: "Gets the value of a parameter.", minArgs: 2, run: (*Processor).gateGetParam},
	"gate-set-param":  {usage: "gate-set-param name param value", help: "Sets the value of a parameter.", minArgs: 3, run: (*Processor).gateSetParam},
}

const summaryTemplate = `ID:     {{ .Name }}
Class:  {{ .Class }}
Type:   {{ .Type.String | title }}
Status: {{ if .Status }}inactive ({{ .Status }}){{ else if .Active }}active{{ else }}idle{{ end }}
Tick:   {{ .SampleTick }}
Description:

{{ .Description | wrap 72 }}

Inputs:
{{- range .Inputs }}
{{ .Slot }}{{ if not .Gate.IsZero }} -> {{ default "Connected" .GateName }}{{ end }}
{{- end }}

Outputs:
{{- range .Outputs }}
{{ default "?" .GateName }}.{{ .Slot }}
{{- end }}

Parameters:
{{- range .Params }}
{{ .Name }} : {{ printf "%f" .Value }}
{{- end }}
`

const helpTemplate = `GenSyn command processor.

Commands:
{{- range . }}
  {{ .Usage | trunc 40 | printf "%-34s" }}{{ .Help }}
{{- end }}
`

func New(g *graph.Graph) *Processor {
	funcs := sprig.TxtFuncMap()
	funcs["title"] = cases.Title(language.English).String
	tmpl := template.Must(template.New("summary").Funcs(funcs).Parse(summaryTemplate))
	template.Must(tmpl.New("help").Parse(helpTemplate))
	return &Processor{graph: g, commands: commands, tmpl: tmpl}
}

// Run splits line into words and runs it as a command.
func (p *Processor) Run(line string) string {
	args, err := Split(line)
	if err != nil {
		return err.Error()
	}
	if len(args) == 0 {
		return ""
	}
	return p.Exec(args...)
}

// Exec runs the command args[0] with the arguments args[1:]. Underscores in
// the command name are accepted in place of dashes.
func (p *Processor) Exec(args ...string) string {
	if len(args) == 0 {
		return "No command given."
	}
	name := strings.ReplaceAll(args[0], "_", "-")
	c, ok := p.commands[name]
	if !ok {
		return fmt.Sprintf("Unrecognized action %q.", args[0])
	}
	if len(args)-1 < c.minArgs {
		return fmt.Sprintf("Insufficient arguments. Usage: %s", c.usage)
	}
	return c.run(p, args[1:])
}

func (p *Processor) execute(name string, data any) string {
	var b strings.Builder
	if err := p.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("could not format %s: %v", name, err)
	}
	return b.String()
}

func (p *Processor) help(args []string) string {
	type entry struct{ Usage, Help string }
	if len(args) > 0 {
		c, ok := p.commands[strings.ReplaceAll(args[0], "_", "-")]
		if !ok {
			return fmt.Sprintf("Unrecognized action %q.", args[0])
		}
		return c.usage + "\n  " + c.help
	}
	names := make([]string, 0, len(p.commands))
	for name := range p.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	entries := make([]entry, len(names))
	for i, name := range names {
		entries[i] = entry{Usage: p.commands[name].usage, Help: p.commands[name].help}
	}
	return p.execute("help", entries)
}
