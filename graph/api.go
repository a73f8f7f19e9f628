package graph

import "github.com/vsariola/gensyn"

// The methods below each take the graph lock for a single Tx operation. Use
// Update to do several operations atomically.

func (g *Graph) Instantiate(class string) (Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Instantiate(class)
}

func (g *Graph) Destroy(h Handle) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Destroy(h)
}

func (g *Graph) Connect(supplier Handle, slot string, consumer Handle) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Connect(supplier, slot, consumer)
}

func (g *Graph) Disconnect(supplier Handle, slot string, consumer Handle) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Disconnect(supplier, slot, consumer)
}

func (g *Graph) Inbound(h Handle, slot string) (Handle, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Inbound(h, slot)
}

func (g *Graph) OutboundCount(h Handle) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.OutboundCount(h)
}

func (g *Graph) Outbound(h Handle, index int) (Handle, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Outbound(h, index)
}

func (g *Graph) SlotNames(h Handle) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.SlotNames(h)
}

func (g *Graph) ParamNames(h Handle) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.ParamNames(h)
}

// Param returns the value of a parameter; 0 for unknown instances or names.
// Only finding the instance takes the graph lock; the value itself is read
// atomically.
func (g *Graph) Param(h Handle, name string) float32 {
	if ref, ok := g.ParamRef(h, name); ok {
		return ref.Get()
	}
	return 0
}

// SetParam sets a parameter; unknown instances or names are ignored. Only
// finding the instance takes the graph lock; use a ParamRef to write without
// waiting for a render in progress.
func (g *Graph) SetParam(h Handle, name string, value float32) {
	if ref, ok := g.ParamRef(h, name); ok {
		ref.Set(value)
	}
}

// ParamRef returns a reference to a parameter of an instance.
func (g *Graph) ParamRef(h Handle, name string) (ParamRef, bool) {
	g.mu.Lock()
	inst := g.get(h)
	g.mu.Unlock()
	if inst == nil {
		return ParamRef{}, false
	}
	i, ok := inst.def.ParamIndex(name)
	if !ok {
		return ParamRef{}, false
	}
	return ParamRef{v: &inst.params[i]}, true
}

func (g *Graph) Definition(h Handle) (*gensyn.Definition, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Definition(h)
}

func (g *Graph) Type(h Handle) gensyn.GateType {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Type(h)
}

func (g *Graph) Active(h Handle) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Active(h)
}

func (g *Graph) Status(h Handle) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Status(h)
}

func (g *Graph) SampleTick(h Handle) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.SampleTick(h)
}

func (g *Graph) Describe(h Handle) (Info, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Describe(h)
}

func (g *Graph) Add(class, name string) (Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Add(class, name)
}

func (g *Graph) AddAnonymous(class string) (Handle, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.AddAnonymous(class)
}

func (g *Graph) Lookup(name string) (Handle, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Lookup(name)
}

func (g *Graph) NameOf(h Handle) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.NameOf(h)
}

func (g *Graph) Remove(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Remove(name)
}

func (g *Graph) Names() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tx.Names()
}
