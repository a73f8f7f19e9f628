// Package oto plays the output of a gate graph on the default sound device.
package oto

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/vsariola/gensyn"
)

type (
	OtoContext struct {
		context *oto.Context
	}

	// OtoPlayer is one stream pulling samples from a RenderFunc.
	OtoPlayer struct {
		player *oto.Player
		reader *renderReader
	}

	renderReader struct {
		render  gensyn.RenderFunc
		samples []float32
		err     error
		done    chan struct{}
		once    sync.Once
	}
)

const otoBufferSize = 20 * time.Millisecond

// NewContext opens the default sound device for mono float32 output at the
// given sample rate. Only one context can exist per process.
func NewContext(sampleRate int) (*OtoContext, error) {
	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   otoBufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &OtoContext{context: context}, nil
}

// Play starts pulling samples from render on the audio thread of the device.
// Playback stops when render returns an error or the player is closed.
func (c *OtoContext) Play(render gensyn.RenderFunc) gensyn.CloserWaiter {
	r := &renderReader{render: render, done: make(chan struct{})}
	p := c.context.NewPlayer(r)
	p.Play()
	return &OtoPlayer{player: p, reader: r}
}

func (c *OtoContext) Close() error {
	if err := c.context.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}

func (o *OtoPlayer) Close() error {
	o.reader.finish(nil)
	if err := o.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

// Wait blocks until the render function fails or the player is closed.
func (o *OtoPlayer) Wait() {
	<-o.reader.done
}

// Err returns the error that stopped the render function, if any.
func (o *OtoPlayer) Err() error {
	select {
	case <-o.reader.done:
		return o.reader.err
	default:
		return nil
	}
}

func (r *renderReader) Read(p []byte) (int, error) {
	select {
	case <-r.done:
		return 0, io.EOF
	default:
	}
	n := len(p) / 4
	if n == 0 {
		return 0, nil
	}
	if cap(r.samples) < n {
		r.samples = make([]float32, n)
	}
	r.samples = r.samples[:n]
	if err := r.render(r.samples); err != nil {
		r.finish(err)
		return 0, io.EOF
	}
	FloatBufferTo32BitLE(r.samples, p)
	return 4 * n, nil
}

func (r *renderReader) finish(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}
