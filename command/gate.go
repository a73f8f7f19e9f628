package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vsariola/gensyn/graph"
)

func (p *Processor) gateList(args []string) string {
	var b strings.Builder
	for _, name := range p.graph.Names() {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.String()
}

func (p *Processor) gateTypes(args []string) string {
	var b strings.Builder
	registry := p.graph.Registry()
	for _, name := range registry.Names() {
		def, _ := registry.Lookup(name)
		fmt.Fprintf(&b, "%s: %s\n", name, def.Description())
	}
	return b.String()
}

func (p *Processor) gateCheck(args []string) string {
	if _, ok := p.graph.Lookup(args[0]); !ok {
		return "No gate with the given name."
	}
	return ""
}

func (p *Processor) gateAdd(args []string) string {
	if _, err := p.graph.Add(args[0], args[1]); err != nil {
		return fmt.Sprintf("Could not create gate: %v", err)
	}
	return ""
}

func (p *Processor) gateSpawn(args []string) string {
	_, name, err := p.graph.AddAnonymous(args[0])
	if err != nil {
		return fmt.Sprintf("Could not create gate: %v", err)
	}
	return name
}

func (p *Processor) gateRemove(args []string) string {
	if err := p.graph.Remove(args[0]); err != nil {
		return fmt.Sprintf("Could not remove gate: %v", err)
	}
	return ""
}

func (p *Processor) gateSummary(args []string) string {
	h, ok := p.graph.Lookup(args[0])
	if !ok {
		return "Unrecognized gate name."
	}
	info, err := p.graph.Describe(h)
	if err != nil {
		return fmt.Sprintf("Could not describe gate: %v", err)
	}
	return p.execute("summary", info)
}

func (p *Processor) gateConnect(args []string) string {
	from, slot, to, msg := p.edge(args)
	if msg != "" {
		return msg
	}
	if err := p.graph.Connect(from, slot, to); err != nil {
		return fmt.Sprintf("Could not connect: %v", err)
	}
	return ""
}

func (p *Processor) gateDisconnect(args []string) string {
	from, slot, to, msg := p.edge(args)
	if msg != "" {
		return msg
	}
	if err := p.graph.Disconnect(from, slot, to); err != nil {
		return fmt.Sprintf("Could not disconnect: %v", err)
	}
	return ""
}

func (p *Processor) edge(args []string) (from graph.Handle, slot string, to graph.Handle, msg string) {
	from, ok := p.graph.Lookup(args[0])
	if !ok {
		return from, "", to, fmt.Sprintf("Unrecognized gate name %q.", args[0])
	}
	to, ok = p.graph.Lookup(args[2])
	if !ok {
		return from, "", to, fmt.Sprintf("Unrecognized gate name %q.", args[2])
	}
	return from, args[1], to, ""
}

func (p *Processor) gateGetParam(args []string) string {
	h, ok := p.graph.Lookup(args[0])
	if !ok {
		return "Unrecognized gate name."
	}
	return fmt.Sprintf("%f", p.graph.Param(h, args[1]))
}

func (p *Processor) gateSetParam(args []string) string {
	h, ok := p.graph.Lookup(args[0])
	if !ok {
		return "Unrecognized gate name."
	}
	v, err := strconv.ParseFloat(args[2], 32)
	if err != nil {
		return fmt.Sprintf("Invalid parameter value %q.", args[2])
	}
	p.graph.SetParam(h, args[1], float32(v))
	return ""
}
