package graph

import (
	"fmt"

	"github.com/vsariola/gensyn"
)

// Tx is exclusive access to a Graph, handed to the functions given to
// Graph.Update and Graph.Post. It must not be retained after the function
// returns.
type Tx struct {
	g *Graph
}

// Instantiate creates a new unconnected instance of the named class.
func (t *Tx) Instantiate(class string) (Handle, error) {
	def, ok := t.g.registry.Lookup(class)
	if !ok {
		return Handle{}, fmt.Errorf("%w: no gate class %q", gensyn.ErrUnknownGate, class)
	}
	return t.InstantiateDefinition(def), nil
}

// InstantiateDefinition creates a new unconnected instance of def, with
// parameters set to their defaults, and runs the create hook.
func (t *Tx) InstantiateDefinition(def *gensyn.Definition) Handle {
	inst := newInstance(def)
	inst.handle = t.g.alloc(inst)
	inst.state = def.Hooks().Create(inst)
	return inst.handle
}

// Destroy runs the destroy hook of the instance, removes every connection
// to and from it and frees it. Destroying an already destroyed handle returns
// ErrUnknownGate.
func (t *Tx) Destroy(h Handle) error {
	inst, err := t.g.lookup(h)
	if err != nil {
		return err
	}
	inst.def.Hooks().Destroy(inst, inst.state)
	for slot := range inst.in {
		t.sever(inst, slot)
	}
	for _, e := range inst.out {
		if consumer := t.g.get(e.to); consumer != nil {
			consumer.in[e.slot] = Handle{}
		}
	}
	inst.out = inst.out[:0]
	t.g.directory.forget(h)
	t.g.release(h)
	return nil
}

// Connect makes supplier feed the named slot of consumer, replacing whatever
// fed it before. A zero supplier disconnects the slot. On error the graph is
// left unchanged.
func (t *Tx) Connect(supplier Handle, slot string, consumer Handle) error {
	dst, err := t.g.lookup(consumer)
	if err != nil {
		return err
	}
	index, ok := dst.def.SlotIndex(slot)
	if !ok {
		return fmt.Errorf("%w: %s has no slot %q", gensyn.ErrUnknownSlot, dst.def.Name(), slot)
	}
	if supplier.IsZero() {
		t.sever(dst, index)
		return nil
	}
	src, err := t.g.lookup(supplier)
	if err != nil {
		return err
	}
	if dst.in[index] == supplier {
		return nil
	}
	if len(src.out) >= gensyn.MaxOutputs {
		return fmt.Errorf("%w: %s already feeds %d gates", gensyn.ErrOutDegreeExceeded, src.def.Name(), len(src.out))
	}
	t.sever(dst, index)
	src.out = append(src.out, outEdge{to: consumer, slot: index})
	dst.in[index] = supplier
	return nil
}

// Disconnect empties the named slot of consumer. The supplier is accepted for
// symmetry with Connect; whatever feeds the slot is removed.
func (t *Tx) Disconnect(supplier Handle, slot string, consumer Handle) error {
	return t.Connect(Handle{}, slot, consumer)
}

// sever removes the edge into slot of dst, along with the matching outbound
// entry of its supplier. The supplier's outbound list is compacted, keeping
// the order of the remaining edges.
func (t *Tx) sever(dst *instance, slot int) {
	old := dst.in[slot]
	if old.IsZero() {
		return
	}
	dst.in[slot] = Handle{}
	src := t.g.get(old)
	if src == nil {
		return
	}
	for i, e := range src.out {
		if e.to == dst.handle && e.slot == slot {
			copy(src.out[i:], src.out[i+1:])
			src.out = src.out[:len(src.out)-1]
			return
		}
	}
}

// SetParam sets a parameter; unknown names are ignored.
func (t *Tx) SetParam(h Handle, name string, value float32) error {
	inst, err := t.g.lookup(h)
	if err != nil {
		return err
	}
	inst.SetParam(name, value)
	return nil
}

// Param returns a parameter value, 0 for unknown names.
func (t *Tx) Param(h Handle, name string) (float32, error) {
	inst, err := t.g.lookup(h)
	if err != nil {
		return 0, err
	}
	return inst.Param(name), nil
}
