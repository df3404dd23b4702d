// Package seed loads the initial discussion tree.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"travelthreads/app/models"
	"travelthreads/app/thread"
)

//go:embed seed.yaml
var defaultSeed []byte

type file struct {
	Posts []*models.Post `yaml:"posts"`
}

// Load decodes a YAML feed and checks it is a well-formed tree.
func Load(r io.Reader) (thread.Tree, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return thread.Tree{}, fmt.Errorf("failed to decode seed: %w", err)
	}

	t := thread.NewTree(f.Posts...)
	if err := thread.Validate(t); err != nil {
		return thread.Tree{}, fmt.Errorf("invalid seed: %w", err)
	}
	return t, nil
}

// LoadFile reads a feed from path.
func LoadFile(path string) (thread.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return thread.Tree{}, err
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in demo feed.
func Default() thread.Tree {
	t, err := Load(bytes.NewReader(defaultSeed))
	if err != nil {
		panic(fmt.Sprintf("built-in seed: %v", err))
	}
	return t
}
