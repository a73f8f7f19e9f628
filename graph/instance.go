package graph

import (
	"math"
	"sync/atomic"

	"github.com/vsariola/gensyn"
)

type (
	instance struct {
		def    *gensyn.Definition
		handle Handle
		state  any

		in  []Handle  // supplier per declared slot, zero if empty
		out []outEdge // consumers in connection order

		params []atomic.Uint32 // math.Float32bits of the values

		// front holds the output of the last successful block, back is
		// written by the process hook and swapped in on success.
		front, back []float32
		inputs      [][]float32
		events      []gensyn.Event

		stamp      uint64
		status     status
		sampleTick uint64
	}

	outEdge struct {
		to   Handle
		slot int
	}

	status int
)

const (
	statusIdle status = iota // never evaluated
	statusActive
	statusInactive
)

func newInstance(def *gensyn.Definition) *instance {
	inst := &instance{
		def:    def,
		in:     make([]Handle, def.NumSlots()),
		out:    make([]outEdge, 0, gensyn.MaxOutputs),
		params: make([]atomic.Uint32, def.NumParams()),
		inputs: make([][]float32, def.NumSlots()),
	}
	for i := range inst.params {
		inst.params[i].Store(math.Float32bits(def.ParamAt(i).Default))
	}
	return inst
}

// reserve makes both sample buffers hold at least n samples. Buffers only
// grow; the contents of front are kept so that a back-edge reading it during
// this block sees the previous output.
func (inst *instance) reserve(n int) {
	if cap(inst.front) < n {
		f := make([]float32, n)
		copy(f, inst.front)
		inst.front = f
		inst.back = make([]float32, n)
	}
	inst.front = inst.front[:n]
	inst.back = inst.back[:n]
}

func (inst *instance) Param(name string) float32 {
	i, ok := inst.def.ParamIndex(name)
	if !ok {
		return 0
	}
	return math.Float32frombits(inst.params[i].Load())
}

func (inst *instance) SetParam(name string, value float32) {
	i, ok := inst.def.ParamIndex(name)
	if !ok {
		return
	}
	inst.params[i].Store(math.Float32bits(value))
}

// ParamRef reads and writes one parameter of an instance without taking the
// graph lock. Writes to a parameter of a destroyed instance have no effect.
type ParamRef struct {
	v *atomic.Uint32
}

func (r ParamRef) Get() float32 { return math.Float32frombits(r.v.Load()) }

func (r ParamRef) Set(value float32) { r.v.Store(math.Float32bits(value)) }

func (inst *instance) SampleTick() uint64 { return inst.sampleTick }

func (inst *instance) Events() []gensyn.Event { return inst.events }
