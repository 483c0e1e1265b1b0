package fs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
	"github.com/viant/plg/internal/logging"
	"github.com/viant/plg/model"
	"github.com/viant/plg/service/codec"
	"github.com/viant/plg/service/dao"
	"github.com/viant/plg/service/dao/criteria"
)

// Extension is the suffix of stored process documents.
const Extension = ".plg"

// Service stores processes as PLG documents named <id>.plg under a base URL.
type Service struct {
	baseURL string
	fs      afs.Service
	encoder *codec.Encoder
	decoder *codec.Decoder
	logger  *slog.Logger
	mu      sync.RWMutex
}

var _ dao.Service[string, model.Process] = (*Service)(nil)

// Option customises the repository.
type Option func(s *Service)

// WithFileSystem sets the afs service used for storage.
func WithFileSystem(fs afs.Service) Option {
	return func(s *Service) {
		if fs != nil {
			s.fs = fs
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithEncoder(encoder *codec.Encoder) Option {
	return func(s *Service) {
		if encoder != nil {
			s.encoder = encoder
		}
	}
}

func WithDecoder(decoder *codec.Decoder) Option {
	return func(s *Service) {
		if decoder != nil {
			s.decoder = decoder
		}
	}
}

// Save writes the canonical document of p.
func (s *Service) Save(ctx context.Context, p *model.Process) error {
	if p == nil {
		return dao.ErrNilEntity
	}
	if err := validID(p.ID()); err != nil {
		return err
	}
	data, err := s.encoder.Encode(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	URL := s.processURL(p.ID())
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save process to %s: %w", URL, err)
	}
	return nil
}

// Load reads the process stored under id. Decoding warnings are logged;
// use LoadResult to inspect them.
func (s *Service) Load(ctx context.Context, id string) (*model.Process, error) {
	result, err := s.LoadResult(ctx, id)
	if err != nil {
		return nil, err
	}
	return result.Process, nil
}

// LoadResult reads the process stored under id along with decoding warnings.
func (s *Service) LoadResult(ctx context.Context, id string) (*codec.Result, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	URL := s.processURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check if process %s exists: %w", id, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: process %s", dao.ErrNotFound, id)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read process %s: %w", URL, err)
	}
	result, err := s.decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode process %s: %w", URL, err)
	}
	return result, nil
}

// Delete removes the document of process id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	URL := s.processURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to check if process %s exists: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("%w: process %s", dao.ErrNotFound, id)
	}
	if err := s.fs.Delete(ctx, URL); err != nil {
		return fmt.Errorf("failed to delete process %s: %w", URL, err)
	}
	return nil
}

// List decodes every stored document matching parameters, ordered by id.
// Unreadable documents are logged and skipped.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*model.Process, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, err := s.fs.List(ctx, s.baseURL, option.NewRecursive(true))
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	var processes []*model.Process
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), Extension) {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			s.logger.Warn("failed to read process", "url", object.URL(), "error", err)
			continue
		}
		result, err := s.decoder.Decode(data)
		if err != nil {
			s.logger.Warn("failed to decode process", "url", object.URL(), "error", err)
			continue
		}
		if !criteria.Match(result.Process, parameters) {
			continue
		}
		processes = append(processes, result.Process)
	}
	sort.Slice(processes, func(i, j int) bool {
		return processes[i].ID() < processes[j].ID()
	})
	return processes, nil
}

func (s *Service) processURL(id string) string {
	return url.Join(s.baseURL, id+Extension)
}

// validID rejects ids that cannot name a single document under the base URL.
func validID(id string) error {
	switch {
	case id == "":
		return dao.ErrInvalidID
	case id == "." || id == "..", strings.ContainsAny(id, `/\`):
		return fmt.Errorf("%w: %q", dao.ErrInvalidID, id)
	}
	return nil
}

// New creates a repository rooted at baseURL, creating the location when
// missing.
func New(ctx context.Context, baseURL string, opts ...Option) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	ret := &Service{
		baseURL: url.Normalize(baseURL, file.Scheme),
		fs:      afs.New(),
		encoder: codec.NewEncoder(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.decoder == nil {
		ret.decoder = codec.NewDecoder(codec.WithLogger(ret.logger))
	}
	exists, _ := ret.fs.Exists(ctx, ret.baseURL)
	if !exists {
		if err := ret.fs.Create(ctx, ret.baseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create base location %s: %w", ret.baseURL, err)
		}
	}
	return ret, nil
}
