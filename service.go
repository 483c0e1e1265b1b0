package plg

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/plg/internal/logging"
	"github.com/viant/plg/model"
	"github.com/viant/plg/progress"
	"github.com/viant/plg/service/codec"
	"github.com/viant/plg/service/dao"
	pfs "github.com/viant/plg/service/dao/process/fs"
	pmemory "github.com/viant/plg/service/dao/process/memory"
	"github.com/viant/plg/tracing"
)

const (
	// ServiceName identifies the library in traces.
	ServiceName = "plg"
	// Version is the library version reported in traces.
	Version = "0.1.0"
)

// Service imports, exports and stores processes.
type Service struct {
	config     *Config
	fs         afs.Service
	fsOptions  []storage.Option
	logger     *slog.Logger
	visualizer progress.Visualizer
	decoder    *codec.Decoder
	encoder    *codec.Encoder
	repository dao.Service[string, model.Process]
	repoOnce   sync.Once
	repoErr    error
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.decoder = codec.NewDecoder(codec.WithLogger(s.logger), codec.WithVisualizer(s.visualizer))
	s.encoder = codec.NewEncoder(
		codec.WithIndent(s.config.Codec.Indent),
		codec.WithLibrary(s.config.Codec.LibraryName, s.config.Codec.LibraryVersion))
	if s.config.Tracing.Enabled {
		if err := tracing.Init(ServiceName, Version, s.config.Tracing.Output); err != nil {
			s.logger.Warn("failed to initialise tracing", "error", err)
		}
	}
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		level, err := logging.ParseLevel(s.config.Log.Level)
		s.logger = logging.New(level)
		if err != nil {
			s.logger.Warn("invalid log level, using info", "error", err)
		}
	}
	if s.visualizer == nil {
		s.visualizer = progress.Nop{}
	}
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Import reads and decodes the document at URL. The returned error is
// fatal; skipped sequences and owner links are reported in the result.
func (s *Service) Import(ctx context.Context, URL string) (result *codec.Result, err error) {
	ctx, span := tracing.StartSpan(ctx, "plg.import")
	span.WithAttributes(map[string]string{"url": URL})
	defer func() { tracing.EndSpan(span, err) }()

	s.logger.Info("importing process", "url", URL)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", URL, err)
	}
	if result, err = s.decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", URL, err)
	}
	span.WithInt("nodes", len(result.Process.FlowObjects())).
		WithInt("edges", len(result.Process.Sequences())).
		WithInt("warnings", len(result.Warnings))
	return result, nil
}

// Decode decodes an in-memory document.
func (s *Service) Decode(data []byte) (*codec.Result, error) {
	return s.decoder.Decode(data)
}

// Export encodes p and writes it to URL.
func (s *Service) Export(ctx context.Context, p *model.Process, URL string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "plg.export")
	span.WithAttributes(map[string]string{"url": URL})
	defer func() { tracing.EndSpan(span, err) }()

	data, err := s.Encode(p)
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", URL, err)
	}
	s.logger.Info("exported process", "process", p.ID(), "url", URL, "components", p.Size())
	return nil
}

// Encode returns the document of p.
func (s *Service) Encode(p *model.Process) ([]byte, error) {
	return s.encoder.Encode(p)
}

// Repository returns the process repository: documents under
// storage.baseURL, or an in-memory store when no base URL is configured.
func (s *Service) Repository(ctx context.Context) (dao.Service[string, model.Process], error) {
	s.repoOnce.Do(func() {
		if s.repository != nil {
			return
		}
		if s.config.Storage.BaseURL == "" {
			s.repository = pmemory.New()
			return
		}
		repository, err := pfs.New(ctx, s.config.Storage.BaseURL,
			pfs.WithFileSystem(s.fs),
			pfs.WithLogger(s.logger),
			pfs.WithEncoder(s.encoder),
			pfs.WithDecoder(s.decoder))
		if err != nil {
			s.repoErr = err
			return
		}
		s.repository = repository
	})
	return s.repository, s.repoErr
}

// New creates a Service.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}
