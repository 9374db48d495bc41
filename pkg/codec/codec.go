// Package codec reads and writes grids in the plain matrix, obstacle
// matrix and RLE text formats. The codec is chosen from the file extension.
package codec

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"life-ca/pkg/sims/life"
)

// MaxCells bounds the declared area of a decoded grid.
const MaxCells = 1 << 24

// Codec converts between a grid and one textual format.
type Codec interface {
	Name() string
	Extensions() []string
	Decode(r io.Reader) (*life.Grid, error)
	Encode(w io.Writer, g *life.Grid) error
}

var codecs = map[string]Codec{}

// Register adds a codec under each of its extensions.
func Register(c Codec) {
	if c == nil {
		return
	}
	for _, ext := range c.Extensions() {
		codecs[strings.ToLower(ext)] = c
	}
}

// Extensions lists every registered extension in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(codecs))
	for ext := range codecs {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// ForPath picks the codec for path's extension, falling back to Standard.
func ForPath(path string) Codec {
	if c, ok := codecs[strings.ToLower(filepath.Ext(path))]; ok {
		return c
	}
	return Standard
}

// Load decodes path into dst. dst keeps its rule and edge settings and is
// left untouched when decoding fails.
func Load(path string, dst *life.Grid) error {
	f, err := os.Open(path)
	if err != nil {
		return withPath(newError(CodeIO, err, "open"), path)
	}
	defer f.Close()

	g, err := ForPath(path).Decode(bufio.NewReader(f))
	if err != nil {
		return withPath(err, path)
	}
	dst.CopyFrom(g)
	return nil
}

// Save encodes g into path, creating or truncating it.
func Save(path string, g *life.Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return withPath(newError(CodeIO, err, "create"), path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = withPath(newError(CodeIO, cerr, "close"), path)
		}
	}()

	if err := ForPath(path).Encode(f, g); err != nil {
		return withPath(err, path)
	}
	return nil
}

func withPath(err error, path string) error {
	var ce *Error
	if errors.As(err, &ce) && ce.Path == "" {
		ce.Path = path
	}
	return err
}

func checkDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return newError(CodeDimensions, nil, "invalid dimensions %dx%d", w, h)
	}
	if w > MaxCells/h {
		return newError(CodeDimensions, nil, "dimensions %dx%d exceed %d cells", w, h, MaxCells)
	}
	return nil
}
