package graph

import (
	"github.com/vsariola/gensyn"
)

type (
	// Info is a consistent snapshot of one instance, for introspection.
	Info struct {
		Handle      Handle
		Name        string
		Class       string
		Description string
		Type        gensyn.GateType
		Inputs      []SlotInfo
		Params      []ParamInfo
		Outputs     []SlotInfo
		Active      bool
		Status      error
		SampleTick  uint64
	}

	// SlotInfo describes one end of an edge. For inputs, Gate is the
	// supplier of the slot; for outputs, the consumer.
	SlotInfo struct {
		Slot     string
		Gate     Handle
		GateName string
	}

	ParamInfo struct {
		Name  string
		Value float32
	}
)

// Inbound returns the supplier of the named slot. ok is false if the slot is
// empty or the instance or slot do not exist.
func (t *Tx) Inbound(h Handle, slot string) (supplier Handle, ok bool) {
	inst := t.g.get(h)
	if inst == nil {
		return Handle{}, false
	}
	i, ok := inst.def.SlotIndex(slot)
	if !ok || inst.in[i].IsZero() {
		return Handle{}, false
	}
	return inst.in[i], true
}

// OutboundCount returns the number of slots the instance feeds.
func (t *Tx) OutboundCount(h Handle) int {
	inst := t.g.get(h)
	if inst == nil {
		return 0
	}
	return len(inst.out)
}

// Outbound returns the consumer of the index:th outbound connection, in
// connection order.
func (t *Tx) Outbound(h Handle, index int) (consumer Handle, ok bool) {
	inst := t.g.get(h)
	if inst == nil || index < 0 || index >= len(inst.out) {
		return Handle{}, false
	}
	return inst.out[index].to, true
}

// SlotNames returns the declared slot names of the instance.
func (t *Tx) SlotNames(h Handle) []string {
	inst := t.g.get(h)
	if inst == nil {
		return nil
	}
	return inst.def.Slots()
}

// ParamNames returns the declared parameter names of the instance.
func (t *Tx) ParamNames(h Handle) []string {
	inst := t.g.get(h)
	if inst == nil {
		return nil
	}
	ret := make([]string, inst.def.NumParams())
	for i := range ret {
		ret[i] = inst.def.ParamAt(i).Name
	}
	return ret
}

func (t *Tx) Definition(h Handle) (*gensyn.Definition, bool) {
	inst := t.g.get(h)
	if inst == nil {
		return nil, false
	}
	return inst.def, true
}

// Type classifies the instance by its declared slots and current consumers.
func (t *Tx) Type(h Handle) gensyn.GateType {
	inst := t.g.get(h)
	if inst == nil {
		return gensyn.InertGate
	}
	return gensyn.Classify(len(inst.in), len(inst.out))
}

// Active reports whether the last block processed by the instance succeeded.
func (t *Tx) Active(h Handle) bool {
	inst := t.g.get(h)
	return inst != nil && inst.status == statusActive
}

// Status returns ErrInsufficientInput if the last block processed by the
// instance failed, nil otherwise.
func (t *Tx) Status(h Handle) error {
	inst, err := t.g.lookup(h)
	if err != nil {
		return err
	}
	if inst.status == statusInactive {
		return gensyn.ErrInsufficientInput
	}
	return nil
}

// SampleTick returns the number of samples the instance has produced.
func (t *Tx) SampleTick(h Handle) uint64 {
	inst := t.g.get(h)
	if inst == nil {
		return 0
	}
	return inst.sampleTick
}

// Describe returns a snapshot of the instance.
func (t *Tx) Describe(h Handle) (Info, error) {
	inst, err := t.g.lookup(h)
	if err != nil {
		return Info{}, err
	}
	info := Info{
		Handle:      h,
		Class:       inst.def.Name(),
		Description: inst.def.Description(),
		Type:        gensyn.Classify(len(inst.in), len(inst.out)),
		Active:      inst.status == statusActive,
		SampleTick:  inst.sampleTick,
	}
	info.Name, _ = t.NameOf(h)
	if inst.status == statusInactive {
		info.Status = gensyn.ErrInsufficientInput
	}
	for i, s := range inst.in {
		si := SlotInfo{Slot: inst.def.Slot(i), Gate: s}
		si.GateName, _ = t.NameOf(s)
		info.Inputs = append(info.Inputs, si)
	}
	for _, e := range inst.out {
		si := SlotInfo{Gate: e.to}
		if consumer := t.g.get(e.to); consumer != nil {
			si.Slot = consumer.def.Slot(e.slot)
		}
		si.GateName, _ = t.NameOf(e.to)
		info.Outputs = append(info.Outputs, si)
	}
	for i := 0; i < inst.def.NumParams(); i++ {
		p := inst.def.ParamAt(i)
		info.Params = append(info.Params, ParamInfo{Name: p.Name, Value: inst.Param(p.Name)})
	}
	return info, nil
}
