package gensyn

type (
	// RenderFunc fills buf with the next len(buf) mono samples.
	RenderFunc func(buf []float32) error

	// AudioSink consumes blocks of mono samples in [-1,1].
	AudioSink interface {
		WriteAudio(buffer []float32) error
		Close() error
	}

	// AudioContext is a sound device that pulls samples from a RenderFunc
	// until closed.
	AudioContext interface {
		Play(render RenderFunc) CloserWaiter
		Close() error
	}

	// CloserWaiter stops something running in the background (Close) or
	// waits for it to finish on its own (Wait).
	CloserWaiter interface {
		Close() error
		Wait()
	}
)
