package memory

import (
	"context"

	"github.com/viant/plg/model"
	"github.com/viant/plg/service/dao"
	"github.com/viant/plg/service/dao/criteria"
	"github.com/viant/plg/service/dao/store"
)

// Service keeps processes in memory, keyed by process id. Stored processes
// are shared with the caller, not copied.
type Service struct {
	*store.MemoryStore[string, model.Process]
}

var _ dao.Service[string, model.Process] = (*Service)(nil)

func (s *Service) Save(ctx context.Context, p *model.Process) error {
	if p == nil {
		return dao.ErrNilEntity
	}
	if p.ID() == "" {
		return dao.ErrInvalidID
	}
	return s.MemoryStore.Save(ctx, p)
}

func (s *Service) Load(ctx context.Context, id string) (*model.Process, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	return s.MemoryStore.Load(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}
	return s.MemoryStore.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*model.Process, error) {
	all, err := s.MemoryStore.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Process, 0, len(all))
	for _, p := range all {
		if criteria.Match(p, parameters) {
			out = append(out, p)
		}
	}
	return out, nil
}

func New() *Service {
	return &Service{MemoryStore: store.NewMemoryStore[string, model.Process](func(p *model.Process) string {
		return p.ID()
	})}
}
