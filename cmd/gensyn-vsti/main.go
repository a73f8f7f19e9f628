//go:build plugin

package main

import (
	"log"

	"github.com/vsariola/gensyn"
	"github.com/vsariola/gensyn/cmd"
	"pipelined.dev/audio/vst2"
)

const defaultSampleRate = 44100

func sampleRate(h vst2.Host) float32 {
	timeInfo := h.GetTimeInfo(0)
	if timeInfo == nil || timeInfo.SampleRate <= 0 {
		return defaultSampleRate
	}
	return float32(timeInfo.SampleRate)
}

func toEvent(ev *vst2.MIDIEvent) (gensyn.Event, bool) {
	if ev.Data[0] < 0x80 || ev.Data[0] >= 0xF0 {
		return gensyn.Event{}, false
	}
	return gensyn.Event{Input: ev.Data[0], Data1: ev.Data[1], Data2: ev.Data[2]}, true
}

func init() {
	var (
		version = int32(100)
	)
	vst2.PluginAllocator = func(h vst2.Host) (vst2.Plugin, vst2.Dispatcher) {
		config := cmd.MakeConfig()
		if config.YmlError != nil {
			log.Printf("could not read config.yml, using defaults: %v", config.YmlError)
			config = cmd.MakeDefaultConfig()
		}
		engine, err := cmd.NewEngine(config)
		if err != nil {
			log.Fatal(err)
		}
		if script, err := cmd.ReadScript(config.Patch); err == nil {
			engine.Run(script, log.Writer())
		} else if config.Patch != "" {
			log.Printf("could not load patch: %v", err)
		}
		buf := make([]float32, 1024)
		return vst2.Plugin{
				UniqueID:       PLUGIN_ID,
				Version:        version,
				InputChannels:  0,
				OutputChannels: 2,
				Name:           PLUGIN_NAME,
				Vendor:         "vsariola/gensyn",
				Category:       vst2.PluginCategorySynth,
				Flags:          vst2.PluginIsSynth,
				ProcessFloatFunc: func(in, out vst2.FloatBuffer) {
					left := out.Channel(0)
					right := out.Channel(1)
					if len(buf) < out.Frames {
						buf = append(buf, make([]float32, out.Frames-len(buf))...)
					}
					buf = buf[:out.Frames]
					if err := engine.RenderAt(buf, sampleRate(h)); err != nil {
						clear(buf)
					}
					copy(left, buf)
					copy(right, buf)
				},
			}, vst2.Dispatcher{
				CanDoFunc: func(pcds vst2.PluginCanDoString) vst2.CanDoResponse {
					switch pcds {
					case vst2.PluginCanReceiveEvents, vst2.PluginCanReceiveMIDIEvent, vst2.PluginCanReceiveTimeInfo:
						return vst2.YesCanDo
					}
					return vst2.NoCanDo
				},
				ProcessEventsFunc: func(ev *vst2.EventsPtr) {
					for i := 0; i < ev.NumEvents(); i++ {
						a := ev.Event(i)
						switch v := a.(type) {
						case *vst2.MIDIEvent:
							if e, ok := toEvent(v); ok {
								engine.Graph.Deliver(e) // if the queue is full, just drop the event
							}
						}
					}
				},
			}
	}
}

func main() {}
