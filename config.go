package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// languages lists the languages the REPL can evaluate.
var languages = []string{"Calculator"}

// Config holds the REPL settings.
type Config struct {
	Language     string `yaml:"language"`
	Prompt       string `yaml:"prompt"`
	ResultPrefix string `yaml:"result_prefix"`
	Debug        bool   `yaml:"debug"`
}

func defaultConfig() *Config {
	return &Config{
		Language:     "Calculator",
		Prompt:       "etop # ",
		ResultPrefix: "- : ",
	}
}

// loadConfig reads a YAML config file on top of the defaults.
// An empty file is fine; unknown keys are not.
func loadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer file.Close()
	return decodeConfig(file, path)
}

func decodeConfig(r io.Reader, name string) (*Config, error) {
	cfg := defaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

// validate checks the language name and normalizes its spelling.
func (c *Config) validate() error {
	for _, l := range languages {
		if strings.EqualFold(c.Language, l) {
			c.Language = l
			return nil
		}
	}
	return fmt.Errorf("unknown language %q (have %s)", c.Language, strings.Join(languages, ", "))
}

// parseFlags builds the config from command-line arguments.
// Flags that are set explicitly override the config file.
// A single positional argument names the language.
func parseFlags(name string, args []string, errOut io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	configPath := fs.String("config", "", "path to a YAML config `file`")
	lang := fs.String("lang", "", "language to evaluate")
	prompt := fs.String("prompt", "", "prompt shown before each line")
	debug := fs.Bool("debug", false, "dump tokens and trees for each line")
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: %s [flags] [language]\n", name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return nil, fmt.Errorf("too many arguments")
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lang":
			cfg.Language = *lang
		case "prompt":
			cfg.Prompt = *prompt
		case "debug":
			cfg.Debug = *debug
		}
	})
	if fs.NArg() == 1 {
		cfg.Language = fs.Arg(0)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
