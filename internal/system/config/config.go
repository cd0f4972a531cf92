// Released under an MIT license. See LICENSE.

// Package config loads the brack host configuration.
//
// The configuration is a YAML file:
//
//	queue: 128        # statements buffered while streaming
//	threaded: true    # stream programs
//	prompt: "brack> " # REPL prompt
//	history: ~/.brack_history
//	globals:          # globals defined before anything runs
//	  greeting: hello
//	  limit: 10
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bracklang/brack/internal/reader/parser"
	"github.com/bracklang/brack/pkg/ram"
	"github.com/bracklang/brack/pkg/type/str"
)

// DefaultPath is read, if it exists, when no other file is named.
const DefaultPath = "brack.yaml"

// T (config) is the host configuration.
type T struct {
	Globals  map[string]string `yaml:"globals"`
	History  string            `yaml:"history"`
	Prompt   string            `yaml:"prompt"`
	Queue    int               `yaml:"queue"`
	Threaded bool              `yaml:"threaded"`
}

type config = T

// Default returns the configuration used when there is no file.
func Default() *config {
	return &config{
		Globals:  map[string]string{},
		Prompt:   "brack> ",
		Threaded: true,
	}
}

// Decode reads a configuration from r. Unset fields keep their defaults.
// Unknown fields are an error.
func Decode(r io.Reader) (*config, error) {
	c := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if c.Queue < 0 {
		return nil, fmt.Errorf("queue must not be negative: %d", c.Queue)
	}

	if c.Globals == nil {
		c.Globals = map[string]string{}
	}

	c.History = expand(c.History)

	return c, nil
}

// Load reads the configuration in path. If path is empty, DefaultPath is
// read if it exists.
func Load(path string) (*config, error) {
	optional := path == ""
	if optional {
		path = DefaultPath
	}

	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return c, nil
}

// Seed defines the configured globals in r. Values that read as numbers
// are stored as numbers.
func (c *config) Seed(r *ram.T) error {
	names := make([]string, 0, len(c.Globals))
	for k := range c.Globals {
		names = append(names, k)
	}

	sort.Strings(names)

	for _, k := range names {
		if err := r.SetGlobal(str.New(k), parser.Word(c.Globals[k])); err != nil {
			return err
		}
	}

	return nil
}

func expand(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
