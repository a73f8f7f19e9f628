package cmd

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type (
	Config struct {
		SampleRate    int     `yaml:"samplerate"`
		BlockSize     int     `yaml:"blocksize"`
		Duration      float64 `yaml:"duration"`
		EventQueue    int     `yaml:"eventqueue"`
		MutationQueue int     `yaml:"mutationqueue"`
		MIDI          MIDIConfig

		// Patch is a script run on every new engine of the plugin build.
		Patch    string `yaml:",omitempty"`
		YmlError error  `yaml:"-"`
	}

	MIDIConfig struct {
		// Input is the prefix of the name of the MIDI input to open.
		Input string
		// First opens the first MIDI input found, whatever its name.
		First bool
	}
)

//go:embed config.yml
var defaultConfigYaml []byte

func loadDefaultConfig() Config {
	var config Config
	err := yaml.UnmarshalStrict(defaultConfigYaml, &config)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal config: %w", err))
	}
	return config
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(configDir, "gensyn", filename)
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.UnmarshalStrict(bytes, target)
	return true, err
}

// MakeConfig returns the defaults overlaid with the user's config.yml, if
// there is one. A malformed user file is reported in YmlError.
func MakeConfig() Config {
	config := loadDefaultConfig()
	exists, err := ReadCustomConfigYml("config.yml", &config)
	if exists {
		config.YmlError = err
	}
	return config
}

// DurationSamples returns the length of an offline render in samples.
func (c Config) DurationSamples() int {
	return int(c.Duration * float64(c.SampleRate))
}

// MakeDefaultConfig returns the built-in defaults.
func MakeDefaultConfig() Config {
	return loadDefaultConfig()
}
