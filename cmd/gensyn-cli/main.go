package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/vsariola/gensyn"
	"github.com/vsariola/gensyn/cmd"
	"github.com/vsariola/gensyn/oto"
	"github.com/vsariola/gensyn/version"
)

func main() {
	config := cmd.MakeConfig()
	if config.YmlError != nil {
		log.Printf("could not read config.yml, using defaults: %v", config.YmlError)
		config = cmd.MakeDefaultConfig()
	}
	help := flag.Bool("h", false, "Show help.")
	directory := flag.String("o", "", "Directory where to output all files. The directory and its parents are created if needed. By default, everything is placed in the same directory where the script is.")
	play := flag.Bool("p", false, "Play the output on the sound card.")
	rawOut := flag.Bool("r", false, "Output the rendered audio as .raw file. By default, saves mono float32 samples.")
	wavOut := flag.Bool("w", false, "Output the rendered audio as .wav file. By default, saves mono float32 samples.")
	pcm := flag.Bool("c", false, "Convert audio to 16-bit signed PCM when outputting.")
	sampleRate := flag.Int("samplerate", config.SampleRate, "Sample rate in Hz.")
	duration := flag.Float64("duration", config.Duration, "Length of rendered audio in seconds.")
	midiInput := flag.String("midi-input", config.MIDI.Input, "Connect MIDI input to matching device name prefix.")
	midiFirst := flag.Bool("midi-first", config.MIDI.First, "Connect the first MIDI input found.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	config.SampleRate = *sampleRate
	config.Duration = *duration
	config.MIDI.Input = *midiInput
	config.MIDI.First = *midiFirst
	var audioContext gensyn.AudioContext
	if *play {
		var err error
		audioContext, err = oto.NewContext(config.SampleRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not acquire oto AudioContext: %v\n", err)
			os.Exit(1)
		}
		defer audioContext.Close()
	}
	if flag.NArg() == 0 {
		if err := repl(config, audioContext); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}
	if !*rawOut && !*wavOut && audioContext == nil {
		*rawOut = true // with nothing else to do, render the scripts to .raw files
	}
	process := func(filename string) error {
		script, err := cmd.ReadScript(filename)
		if err != nil {
			return err
		}
		engine, err := cmd.NewEngine(config)
		if err != nil {
			return err
		}
		engine.Run(script, os.Stdout)
		n := config.DurationSamples()
		if script.Duration > 0 {
			n = int(script.Duration * float64(config.SampleRate))
		}
		buffer, err := engine.RenderBuffer(n)
		if err != nil {
			return fmt.Errorf("could not render: %w", err)
		}
		output := func(extension string, contents []byte) error {
			dir, name := filepath.Split(filename)
			if *directory != "" {
				dir = *directory
				if err := os.MkdirAll(dir, os.ModePerm); err != nil {
					return fmt.Errorf("could not create output directory %v: %w", dir, err)
				}
			}
			f := filepath.Join(dir, strings.TrimSuffix(name, filepath.Ext(name))+extension)
			if err := os.WriteFile(f, contents, 0644); err != nil {
				return fmt.Errorf("could not write file %v: %w", f, err)
			}
			return nil
		}
		if *rawOut {
			raw, err := gensyn.Raw(buffer, *pcm)
			if err != nil {
				return fmt.Errorf("could not generate .raw file: %w", err)
			}
			if err := output(".raw", raw); err != nil {
				return fmt.Errorf("error outputting .raw file: %w", err)
			}
		}
		if *wavOut {
			wav, err := gensyn.Wav(buffer, config.SampleRate, *pcm)
			if err != nil {
				return fmt.Errorf("could not generate .wav file: %w", err)
			}
			if err := output(".wav", wav); err != nil {
				return fmt.Errorf("error outputting .wav file: %w", err)
			}
		}
		if audioContext != nil {
			pos := 0
			player := audioContext.Play(func(buf []float32) error {
				if pos >= len(buffer) {
					return errEndOfBuffer
				}
				n := copy(buf, buffer[pos:])
				clear(buf[n:])
				pos += n
				return nil
			})
			player.Wait()
			player.Close()
		}
		return nil
	}
	retval := 0
	for _, param := range flag.Args() {
		if err := process(param); err != nil {
			fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", param, err)
			retval = 1
		}
	}
	os.Exit(retval)
}

var errEndOfBuffer = errors.New("end of buffer")

// repl reads commands from standard input until EOF or "quit". A line of the
// form @path renders the configured duration into path as raw float32 PCM.
// With a sound card, the output is played live while commands are entered.
func repl(config cmd.Config, audioContext gensyn.AudioContext) error {
	engine, err := cmd.NewEngine(config)
	if err != nil {
		return err
	}
	midiContext, err := cmd.NewMidiContext(engine)
	if err != nil {
		log.Printf("failed to open MIDI input: %v", err)
	} else if midiContext.Support() == gensyn.MIDISupported && (config.MIDI.Input != "" || config.MIDI.First) {
		if names, ok := engine.AttachMIDIGates(); ok {
			go func() {
				m := <-names
				log.Printf("MIDI input attached to gates %s and %s", m.Pitch, m.Velocity)
			}()
		}
	}
	defer midiContext.Close()
	if audioContext != nil {
		player := audioContext.Play(engine.Render)
		defer player.Close()
	}
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		engine.Graph.Flush() // without live playback, nothing else applies posted changes
		switch {
		case line == "quit" || line == "exit":
			return nil
		case strings.HasPrefix(line, "@"):
			if err := renderFile(engine, strings.TrimSpace(line[1:])); err != nil {
				fmt.Println(err)
			}
		default:
			if resp := engine.Processor.Run(line); resp != "" {
				fmt.Println(strings.TrimSuffix(resp, "\n"))
			}
		}
		fmt.Print("> ")
	}
	return scanner.Err()
}

func renderFile(engine *cmd.Engine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", path, err)
	}
	sink := gensyn.NewRawSink(f)
	if err := engine.RenderTo(sink, engine.Config.DurationSamples()); err != nil {
		sink.Close()
		return fmt.Errorf("could not render to %v: %w", path, err)
	}
	return sink.Close()
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "GenSyn command line utility. With no scripts, reads commands from standard input.\nUsage: %s [flags] [script.yml ...]\n", os.Args[0])
	flag.PrintDefaults()
}
