package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metro/network"
)

// Topology is the YAML document layout.
type Topology struct {
	Lines []LineSpec `yaml:"lines" validate:"required,min=1,dive"`
}

// LineSpec is one line and its segments in declaration order.
type LineSpec struct {
	Name     string        `yaml:"name" validate:"required"`
	Segments []SegmentSpec `yaml:"segments" validate:"required,min=1,dive"`
}

// SegmentSpec is one track segment.
type SegmentSpec struct {
	From     string  `yaml:"from" validate:"required"`
	To       string  `yaml:"to" validate:"required,nefield=From"`
	Distance float64 `yaml:"distance" validate:"gt=0"`
}

var validate = validator.New()

// DecodeYAML parses and validates a YAML topology document.
func DecodeYAML(r io.Reader) (*Topology, error) {
	var t Topology
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTopology
		}
		return nil, fmt.Errorf("loader: decode yaml: %w", err)
	}
	if err := validate.Struct(&t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTopology, err)
	}

	return &t, nil
}

// ReadYAML decodes a YAML topology from r and adds every segment to b.
// Nothing is added when the document fails validation.
func ReadYAML(r io.Reader, b *network.Builder, _ ...Option) (Stats, error) {
	t, err := DecodeYAML(r)
	if err != nil {
		return Stats{}, err
	}

	return t.Apply(b)
}

// Apply adds the topology to b in document order.
func (t *Topology) Apply(b *network.Builder) (Stats, error) {
	var st Stats
	for _, l := range t.Lines {
		if err := b.DeclareLine(l.Name); err != nil {
			return st, err
		}
		st.Lines++
		for _, s := range l.Segments {
			if err := b.AddSegment(l.Name, s.From, s.To, s.Distance); err != nil {
				return st, fmt.Errorf("line %q: %w", l.Name, err)
			}
			st.Segments++
		}
	}

	return st, nil
}
