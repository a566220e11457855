// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/metro/network"
)

var (
	// ErrUnknownFormat indicates an unsupported topology format name.
	ErrUnknownFormat = errors.New("loader: unknown format")

	// ErrMalformedRow indicates a text row that is not a valid segment.
	// Returned only in strict mode.
	ErrMalformedRow = errors.New("loader: malformed row")

	// ErrInvalidTopology indicates a YAML document failing validation.
	ErrInvalidTopology = errors.New("loader: invalid topology")

	// ErrEmptyTopology indicates a source that declared no segments.
	ErrEmptyTopology = errors.New("loader: no segments loaded")
)

// Stats counts what a read consumed.
type Stats struct {
	Lines    int // line headers or YAML line entries
	Segments int // segments added to the builder
	Skipped  int // malformed rows skipped
}

// LoadFile reads the topology at path into a fresh Builder and returns
// the built Network.
func LoadFile(path string, opts ...Option) (*network.Network, Stats, error) {
	o := applyOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	n, st, err := load(f, o.format.resolve(path), o, opts)
	if err != nil {
		return nil, st, fmt.Errorf("loader: %s: %w", path, err)
	}
	o.logger.Debug("topology loaded",
		slog.String("path", path),
		slog.Int("lines", st.Lines),
		slog.Int("segments", st.Segments),
		slog.Int("skipped", st.Skipped),
	)

	return n, st, nil
}

// Load reads a topology of the given concrete format from r and builds it.
func Load(r io.Reader, format Format, opts ...Option) (*network.Network, Stats, error) {
	return load(r, format, applyOptions(opts), opts)
}

func load(r io.Reader, format Format, o options, opts []Option) (*network.Network, Stats, error) {
	b := network.NewBuilder(o.builder...)

	var (
		st  Stats
		err error
	)
	switch format {
	case FormatText:
		st, err = ReadText(r, b, opts...)
	case FormatYAML:
		st, err = ReadYAML(r, b, opts...)
	default:
		return nil, Stats{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, st, err
	}
	if st.Segments == 0 {
		return nil, st, ErrEmptyTopology
	}

	n, err := b.Build()
	if err != nil {
		return nil, st, err
	}

	return n, st, nil
}
