package plg

import (
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/plg/model"
	"github.com/viant/plg/progress"
	"github.com/viant/plg/service/dao"
	"github.com/viant/plg/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the Service.
type Option func(s *Service)

// WithConfig replaces the default configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithLogger sets the logger; otherwise one is built from the configured level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFileSystem sets the afs service used for documents and storage.
func WithFileSystem(fs afs.Service) Option {
	return func(s *Service) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithFsOptions sets storage options passed to every document download,
// e.g. an embed.FS for embed:// URLs.
func WithFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.fsOptions = options
	}
}

// WithVisualizer sets the progress collaborator notified on every import.
func WithVisualizer(visualizer progress.Visualizer) Option {
	return func(s *Service) {
		s.visualizer = visualizer
	}
}

// WithRepository sets the process repository.
func WithRepository(repository dao.Service[string, model.Process]) Option {
	return func(s *Service) {
		s.repository = repository
	}
}

// WithTracing configures OpenTelemetry tracing with the stdout exporter
// writing to outputFile, or to stdout when empty. The first successful
// initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing with a custom exporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
