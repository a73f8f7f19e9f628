package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Script is a list of commands run against a fresh engine, e.g.
//
//	duration: 2
//	commands:
//	  - gate-add Simple_Input in
//	  - gate-connect in waveform output
type Script struct {
	// Duration overrides the render length in seconds, if positive.
	Duration float64  `yaml:",omitempty"`
	Commands []string `yaml:"commands"`
}

func ReadScript(filename string) (Script, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return Script{}, fmt.Errorf("could not read script %v: %w", filename, err)
	}
	var s Script
	if err := yaml.Unmarshal(bytes, &s); err != nil {
		return Script{}, fmt.Errorf("could not parse script %v: %w", filename, err)
	}
	return s, nil
}

// Run executes the commands of the script, writing every non-empty response
// to w on its own line.
func (e *Engine) Run(s Script, w io.Writer) {
	for _, line := range s.Commands {
		if resp := e.Processor.Run(line); resp != "" {
			fmt.Fprintln(w, strings.TrimSuffix(resp, "\n"))
		}
	}
}
