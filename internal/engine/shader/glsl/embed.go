// Package glsl reads shader sources. Every pipeline has a <name>.vert and
// <name>.frag file; the console's own sources are embedded in Builtin and
// follow the same layout as a shader directory on disk.
package glsl

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

// Builtin holds the embedded shader sources.
//
//go:embed *.vert *.frag
var Builtin embed.FS

// ErrNotFound is returned when a shader source file does not exist.
var ErrNotFound = errors.New("shader source not found")

// Sources holds the vertex and fragment source of a named shader.
type Sources struct {
	Name     string
	Vertex   string
	Fragment string
}

// Read reads <name>.vert and <name>.frag from fsys.
func Read(fsys fs.FS, name string) (Sources, error) {
	src := Sources{Name: name}

	vert, err := readFile(fsys, name+".vert")
	if err != nil {
		return src, err
	}
	frag, err := readFile(fsys, name+".frag")
	if err != nil {
		return src, err
	}

	src.Vertex = vert
	src.Fragment = frag
	return src, nil
}

func readFile(fsys fs.FS, filename string) (string, error) {
	data, err := fs.ReadFile(fsys, filename)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}
	return string(data), nil
}
