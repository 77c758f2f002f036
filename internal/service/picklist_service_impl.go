package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/castqc/internal/domain"
	"github.com/alexanderramin/castqc/internal/repository"
)

type pickListService struct {
	repo     repository.PickListRepo
	observer UseCaseObserver

	mu    sync.RWMutex
	lists domain.Lists
}

// NewPickListService starts from the built-in defaults; call Reload to read
// the backing file.
func NewPickListService(repo repository.PickListRepo, observers ...UseCaseObserver) PickListService {
	return &pickListService{
		repo:     repo,
		observer: useCaseObserverOrNoop(observers),
		lists:    domain.DefaultLists(),
	}
}

func (s *pickListService) Lists() domain.Lists {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lists.Clone()
}

func (s *pickListService) List(name domain.ListName) (domain.PickList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, err := s.lists.Get(name)
	if err != nil {
		return nil, err
	}
	return append(domain.PickList(nil), l...), nil
}

// Reload replaces the in-memory lists with the file contents. When the file
// is corrupt the lists fall back to defaults and the error is still returned.
func (s *pickListService) Reload(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { observe(ctx, s.observer, "picklist.reload", start, err, nil) }()

	lists, err := s.repo.Load(ctx)
	s.mu.Lock()
	s.lists = lists
	s.mu.Unlock()
	return err
}

func (s *pickListService) Add(ctx context.Context, name domain.ListName, value string) (bool, error) {
	return s.mutate(ctx, "picklist.add", name, value, domain.PickList.Add)
}

func (s *pickListService) Remove(ctx context.Context, name domain.ListName, value string) (bool, error) {
	return s.mutate(ctx, "picklist.remove", name, value, domain.PickList.Remove)
}

// mutate applies op to a copy of the lists and persists it. The in-memory
// state only changes once the save succeeded.
func (s *pickListService) mutate(ctx context.Context, useCase string, name domain.ListName, value string,
	op func(domain.PickList, string) (domain.PickList, bool)) (changed bool, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, useCase, start, err, map[string]any{
			"list":    string(name),
			"value":   value,
			"changed": changed,
		})
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.lists.Get(name)
	if err != nil {
		return false, err
	}
	updated, ok := op(current, value)
	if !ok {
		return false, nil
	}

	next := s.lists.Clone()
	if err := next.Set(name, updated); err != nil {
		return false, err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return false, err
	}
	s.lists = next
	return true, nil
}
