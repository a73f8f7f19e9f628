package gensyn_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsariola/gensyn"
)

func nopHooks() gensyn.Hooks {
	return gensyn.Hooks{
		Create:  func(gensyn.Gate) any { return nil },
		Process: func(gensyn.Gate, any, [][]float32, []float32, float32) bool { return true },
		Destroy: func(gensyn.Gate, any) {},
	}
}

func names(prefix string, n int) []string {
	ret := make([]string, n)
	for i := range ret {
		ret[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return ret
}

func TestRegisterAndLookup(t *testing.T) {
	r := gensyn.NewRegistry()
	d, err := r.Register(gensyn.Class{
		Name:        "Mixer",
		Description: "mixes",
		Hooks:       nopHooks(),
		Slots:       []string{"a", "b"},
		Params:      []gensyn.Param{{Name: "gain", Default: 0.25}},
	})
	require.NoError(t, err)
	got, ok := r.Lookup("Mixer")
	require.True(t, ok)
	assert.Same(t, d, got)
	assert.Equal(t, "Mixer", d.Name())
	assert.Equal(t, "mixes", d.Description())
	assert.Equal(t, []string{"a", "b"}, d.Slots())
	assert.Equal(t, []gensyn.Param{{Name: "gain", Default: 0.25}}, d.Params())
	i, ok := d.SlotIndex("b")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = d.ParamIndex("nope")
	assert.False(t, ok)
	_, ok = r.Lookup("Unknown")
	assert.False(t, ok)
}

func TestDefinitionIsImmutable(t *testing.T) {
	r := gensyn.NewRegistry()
	slots := []string{"in"}
	d := r.MustRegister(gensyn.Class{Name: "X", Hooks: nopHooks(), Slots: slots})
	slots[0] = "changed"
	d.Slots()[0] = "changed too"
	assert.Equal(t, []string{"in"}, d.Slots())
}

func TestRegisterRejects(t *testing.T) {
	hooks := nopHooks()
	missing := nopHooks()
	missing.Destroy = nil
	tests := []struct {
		name  string
		class gensyn.Class
		err   error
	}{
		{"EmptyName", gensyn.Class{Hooks: hooks}, gensyn.ErrEmptyName},
		{"MissingHook", gensyn.Class{Name: "A", Hooks: missing}, gensyn.ErrMissingHook},
		{"TooManySlots", gensyn.Class{Name: "B", Hooks: hooks, Slots: names("s", gensyn.MaxSlots+1)}, gensyn.ErrTooManySlots},
		{"TooManyParams", gensyn.Class{Name: "C", Hooks: hooks, Params: make([]gensyn.Param, gensyn.MaxParams+1)}, gensyn.ErrTooManyParams},
		{"DuplicateSlot", gensyn.Class{Name: "D", Hooks: hooks, Slots: []string{"x", "x"}}, gensyn.ErrDuplicateSlotName},
		{"DuplicateParam", gensyn.Class{Name: "E", Hooks: hooks, Params: []gensyn.Param{{Name: "p"}, {Name: "p"}}}, gensyn.ErrDuplicateParamName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gensyn.NewRegistry()
			_, err := r.Register(tt.class)
			require.ErrorIs(t, err, tt.err)
			assert.Empty(t, r.Names(), "a failed registration must leave no trace")
		})
	}
}

func TestRegisterAtBounds(t *testing.T) {
	params := make([]gensyn.Param, gensyn.MaxParams)
	for i := range params {
		params[i].Name = fmt.Sprintf("p%d", i)
	}
	r := gensyn.NewRegistry()
	d, err := r.Register(gensyn.Class{Name: "Big", Hooks: nopHooks(), Slots: names("s", gensyn.MaxSlots), Params: params})
	require.NoError(t, err)
	assert.Equal(t, gensyn.MaxSlots, d.NumSlots())
	assert.Equal(t, gensyn.MaxParams, d.NumParams())
}

func TestRegisterDuplicate(t *testing.T) {
	r := gensyn.NewRegistry()
	first := r.MustRegister(gensyn.Class{Name: "Same", Description: "first", Hooks: nopHooks()})
	_, err := r.Register(gensyn.Class{Name: "Same", Description: "second", Hooks: nopHooks()})
	require.ErrorIs(t, err, gensyn.ErrDuplicateName)
	got, _ := r.Lookup("Same")
	assert.Same(t, first, got)
	assert.Panics(t, func() { r.MustRegister(gensyn.Class{Name: "Same", Hooks: nopHooks()}) })
}

func TestRegistryNamesSorted(t *testing.T) {
	r := gensyn.NewRegistry()
	for _, n := range []string{"b", "c", "a"} {
		r.MustRegister(gensyn.Class{Name: n, Hooks: nopHooks()})
	}
	assert.Equal(t, []string{"a", "b", "c"}, r.Names())
}

func TestClassify(t *testing.T) {
	assert.Equal(t, gensyn.InputGate, gensyn.Classify(0, 1))
	assert.Equal(t, gensyn.OutputGate, gensyn.Classify(1, 0))
	assert.Equal(t, gensyn.TransformGate, gensyn.Classify(2, 3))
	assert.Equal(t, gensyn.InertGate, gensyn.Classify(0, 0))
	assert.Equal(t, "transform gate", gensyn.TransformGate.String())
}
