package graph

import (
	"fmt"
	"sync"

	"github.com/vsariola/gensyn"
)

type (
	// Graph owns a set of gate instances, the connections between them and
	// the named-gate directory.
	Graph struct {
		mu       sync.Mutex
		registry *gensyn.Registry

		instances []*instance
		serials   []uint32
		free      []int32

		generation  uint64
		blockEvents []gensyn.Event

		directory directory

		events    *gensyn.EventQueue
		mutations chan func(*Tx)
		tx        Tx
	}

	// Handle identifies an instance in a Graph. The zero Handle refers to no
	// instance. Handles of destroyed instances are never reused.
	Handle struct {
		index  int32
		serial uint32
	}

	// Config sets the capacities of the bounded queues of a Graph.
	Config struct {
		// EventQueue is the number of input events that can wait for the
		// next render before new ones are dropped.
		EventQueue int
		// MutationQueue is the number of posted changes that can wait for the
		// next render before Post starts failing.
		MutationQueue int
	}
)

var DefaultConfig = Config{EventQueue: 256, MutationQueue: 64}

// New returns an empty graph that instantiates gates from the classes in
// registry.
func New(registry *gensyn.Registry, config Config) *Graph {
	if config.MutationQueue < 1 {
		config.MutationQueue = DefaultConfig.MutationQueue
	}
	if config.EventQueue < 1 {
		config.EventQueue = DefaultConfig.EventQueue
	}
	g := &Graph{
		registry:  registry,
		directory: newDirectory(),
		events:    gensyn.NewEventQueue(config.EventQueue),
		mutations: make(chan func(*Tx), config.MutationQueue),
	}
	g.tx.g = g
	return g
}

func (h Handle) IsZero() bool { return h.serial == 0 }

func (h Handle) String() string {
	if h.IsZero() {
		return "<none>"
	}
	return fmt.Sprintf("#%d.%d", h.index, h.serial)
}

// Registry returns the class registry the graph instantiates from.
func (g *Graph) Registry() *gensyn.Registry { return g.registry }

// Update runs f with exclusive access to the graph. No render runs while f
// is running.
func (g *Graph) Update(f func(tx *Tx) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return f(&g.tx)
}

// Post queues f to be run at the start of the next render, or the next
// Flush. It never blocks; false is returned if the queue is full and f was
// dropped.
func (g *Graph) Post(f func(tx *Tx)) bool {
	return gensyn.TrySend(g.mutations, f)
}

// Flush runs all posted changes now.
func (g *Graph) Flush() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.applyPosted()
}

// Deliver queues an input event for the gates that receive events. The
// event is seen during the next render. It never blocks; false is returned
// if the event queue is full and the event was dropped.
func (g *Graph) Deliver(e gensyn.Event) bool {
	return g.events.Push(e)
}

func (g *Graph) applyPosted() {
	for {
		select {
		case f := <-g.mutations:
			f(&g.tx)
		default:
			return
		}
	}
}

func (g *Graph) get(h Handle) *instance {
	if h.IsZero() || h.index < 0 || int(h.index) >= len(g.instances) {
		return nil
	}
	if g.serials[h.index] != h.serial {
		return nil
	}
	return g.instances[h.index]
}

func (g *Graph) lookup(h Handle) (*instance, error) {
	inst := g.get(h)
	if inst == nil {
		return nil, fmt.Errorf("%w: %v", gensyn.ErrUnknownGate, h)
	}
	return inst, nil
}

func (g *Graph) alloc(inst *instance) Handle {
	var index int32
	if n := len(g.free); n > 0 {
		index = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		index = int32(len(g.instances))
		g.instances = append(g.instances, nil)
		g.serials = append(g.serials, 0)
	}
	g.serials[index]++
	g.instances[index] = inst
	return Handle{index: index, serial: g.serials[index]}
}

func (g *Graph) release(h Handle) {
	g.instances[h.index] = nil
	g.serials[h.index]++
	g.free = append(g.free, h.index)
}

// Len returns the number of live instances.
func (g *Graph) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.instances) - len(g.free)
}
