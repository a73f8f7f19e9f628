package graph

import (
	"fmt"

	"github.com/vsariola/gensyn"
)

// Render evaluates the graph for one block of len(dst) samples and copies the
// output of the instance out into dst. Changes queued with Post and events
// queued with Deliver are applied first.
//
// A gate that cannot produce output holds its previous block (silence if it
// never produced any), so a partially connected graph still renders.
func (g *Graph) Render(out Handle, dst []float32, sampleRate float32) (err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panicked: %v", r)
		}
	}()
	g.begin()
	return g.render(out, dst, sampleRate)
}

// RenderNamed is like Render, but the output is looked up by name after the
// posted changes are applied, so a block can render an output gate that a
// posted change just added or replaced.
func (g *Graph) RenderNamed(name string, dst []float32, sampleRate float32) (err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panicked: %v", r)
		}
	}()
	g.begin()
	out, ok := g.directory.byName[name]
	if !ok {
		return fmt.Errorf("cannot render: %w: %q", gensyn.ErrUnknownGate, name)
	}
	return g.render(out, dst, sampleRate)
}

func (g *Graph) begin() {
	g.applyPosted()
	g.blockEvents = g.events.Drain(g.blockEvents[:0])
}

func (g *Graph) render(out Handle, dst []float32, sampleRate float32) error {
	o, err := g.lookup(out)
	if err != nil {
		return fmt.Errorf("cannot render: %w", err)
	}
	g.generation++
	g.eval(o, len(dst), sampleRate)
	copy(dst, o.front)
	return nil
}

// eval processes inst for the current generation, first evaluating the
// suppliers of its slots in declaration order.
func (g *Graph) eval(inst *instance, n int, sampleRate float32) {
	if inst.stamp == g.generation {
		return
	}
	inst.stamp = g.generation
	inst.reserve(n)
	for i, h := range inst.in {
		inst.inputs[i] = nil
		if h.IsZero() {
			continue
		}
		src := g.get(h)
		if src == nil {
			continue
		}
		g.eval(src, n, sampleRate)
		inst.inputs[i] = src.front
	}
	if inst.def.ReceivesEvents() {
		inst.events = g.blockEvents
	}
	if inst.def.Hooks().Process(inst, inst.state, inst.inputs, inst.back, sampleRate) {
		inst.front, inst.back = inst.back, inst.front
		inst.status = statusActive
		inst.sampleTick += uint64(n)
	} else {
		inst.status = statusInactive
	}
	inst.events = nil
}
