package codec

import (
	"log/slog"

	"github.com/viant/plg/progress"
)

// DecoderOption customises a Decoder.
type DecoderOption func(d *Decoder)

// WithVisualizer sets the progress collaborator notified around each import.
func WithVisualizer(visualizer progress.Visualizer) DecoderOption {
	return func(d *Decoder) {
		if visualizer != nil {
			d.visualizer = visualizer
		}
	}
}

// WithLogger sets the logger receiving import events and warnings.
func WithLogger(logger *slog.Logger) DecoderOption {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// EncoderOption customises an Encoder.
type EncoderOption func(e *Encoder)

// WithIndent sets the per-level indentation of the written document.
func WithIndent(indent string) EncoderOption {
	return func(e *Encoder) {
		e.indent = indent
	}
}

// WithLibrary overrides the library name and version markers.
func WithLibrary(name, version string) EncoderOption {
	return func(e *Encoder) {
		if name != "" {
			e.libraryName = name
		}
		if version != "" {
			e.libraryVersion = version
		}
	}
}
