package loader

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/metro/network"
)

// Format names a topology file format.
type Format string

const (
	// FormatAuto picks the format from the file extension: .yaml and .yml
	// are YAML, everything else is text.
	FormatAuto Format = ""
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates s as a Format. The empty string is FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatText, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// resolve maps FormatAuto to a concrete format using path.
func (f Format) resolve(path string) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Option configures a load.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	strict  bool
	format  Format
	builder []network.BuilderOption
}

func defaultOptions() options {
	return options{
		logger: slog.Default().With(slog.String("component", "loader")),
		format: FormatAuto,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithLogger sets the logger for skipped-row warnings. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l.With(slog.String("component", "loader"))
		}
	}
}

// WithStrict turns malformed text rows into ErrMalformedRow instead of
// skipping them.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithFormat forces the file format used by LoadFile.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithBuilderOptions passes options to the Builder created by LoadFile.
func WithBuilderOptions(bo ...network.BuilderOption) Option {
	return func(o *options) { o.builder = append(o.builder, bo...) }
}
