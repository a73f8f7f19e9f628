package gensyn

import "fmt"

const (
	// MaxSlots is the maximum number of inbound connection slots a gate class
	// can declare. It is also the maximum number of consumers a single gate
	// can feed.
	MaxSlots = 8
	// MaxOutputs is the maximum number of outbound connections of a gate.
	MaxOutputs = MaxSlots
	// MaxParams is the maximum number of parameters a gate class can declare.
	MaxParams = 32
)

type (
	// Gate is the view of a live gate instance that is handed to the hooks of
	// its definition.
	Gate interface {
		// Param returns the current value of a declared parameter, or 0 if the
		// name is not declared.
		Param(name string) float32
		// SetParam sets a declared parameter; unknown names are ignored.
		SetParam(name string, value float32)
		// SampleTick is the total number of samples the gate has successfully
		// produced before the current block.
		SampleTick() uint64
		// Events returns the input events delivered during the current
		// block. Nil unless the gate class receives events.
		Events() []Event
	}

	// CreateFunc is called once when a gate is instantiated. The returned
	// value is the opaque processing state of the gate.
	CreateFunc func(g Gate) any

	// ProcessFunc renders one block into out, len(out) being the block size.
	// in has one entry per declared slot, in declaration order; an entry is
	// nil when the slot is not connected. Returning false means the gate
	// could not produce meaningful output this block.
	ProcessFunc func(g Gate, state any, in [][]float32, out []float32, sampleRate float32) bool

	// DestroyFunc is called once when the gate is destroyed.
	DestroyFunc func(g Gate, state any)

	// Hooks are the three behaviors of a gate class.
	Hooks struct {
		Create  CreateFunc
		Process ProcessFunc
		Destroy DestroyFunc
	}

	// Param declares a named parameter and its default value.
	Param struct {
		Name    string
		Default float32
	}

	// Definition is an immutable, registered gate class. Instances are
	// constructed from it; it is never modified after registration.
	Definition struct {
		name           string
		description    string
		hooks          Hooks
		slots          []string
		params         []Param
		slotIndex      map[string]int
		paramIndex     map[string]int
		receivesEvents bool
	}

	// Class is the declarative form of a gate class, passed to
	// Registry.Register.
	Class struct {
		Name        string
		Description string
		Hooks       Hooks
		Slots       []string
		Params      []Param
		// ReceivesEvents subscribes every instance of the class to the input
		// events delivered to the graph.
		ReceivesEvents bool
	}
)

func newDefinition(c Class) (*Definition, error) {
	if c.Name == "" {
		return nil, ErrEmptyName
	}
	if c.Hooks.Create == nil || c.Hooks.Process == nil || c.Hooks.Destroy == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingHook, c.Name)
	}
	if len(c.Slots) > MaxSlots {
		return nil, fmt.Errorf("%w: %s declares %d, max %d", ErrTooManySlots, c.Name, len(c.Slots), MaxSlots)
	}
	if len(c.Params) > MaxParams {
		return nil, fmt.Errorf("%w: %s declares %d, max %d", ErrTooManyParams, c.Name, len(c.Params), MaxParams)
	}
	d := &Definition{
		name:           c.Name,
		description:    c.Description,
		hooks:          c.Hooks,
		slots:          append([]string(nil), c.Slots...),
		params:         append([]Param(nil), c.Params...),
		slotIndex:      make(map[string]int, len(c.Slots)),
		paramIndex:     make(map[string]int, len(c.Params)),
		receivesEvents: c.ReceivesEvents,
	}
	for i, s := range d.slots {
		if _, ok := d.slotIndex[s]; ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateSlotName, c.Name, s)
		}
		d.slotIndex[s] = i
	}
	for i, p := range d.params {
		if _, ok := d.paramIndex[p.Name]; ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateParamName, c.Name, p.Name)
		}
		d.paramIndex[p.Name] = i
	}
	return d, nil
}

func (d *Definition) Name() string        { return d.name }
func (d *Definition) Description() string { return d.description }
func (d *Definition) Hooks() Hooks        { return d.hooks }
func (d *Definition) NumSlots() int       { return len(d.slots) }
func (d *Definition) NumParams() int      { return len(d.params) }
func (d *Definition) ReceivesEvents() bool {
	return d.receivesEvents
}

// Slots returns a copy of the declared slot names in declaration order.
func (d *Definition) Slots() []string {
	return append([]string(nil), d.slots...)
}

// Params returns a copy of the declared parameters in declaration order.
func (d *Definition) Params() []Param {
	return append([]Param(nil), d.params...)
}

func (d *Definition) Slot(i int) string { return d.slots[i] }
func (d *Definition) ParamAt(i int) Param {
	return d.params[i]
}

// SlotIndex returns the position of a slot among the declared slots.
func (d *Definition) SlotIndex(name string) (int, bool) {
	i, ok := d.slotIndex[name]
	return i, ok
}

// ParamIndex returns the position of a parameter among the declared
// parameters.
func (d *Definition) ParamIndex(name string) (int, bool) {
	i, ok := d.paramIndex[name]
	return i, ok
}
