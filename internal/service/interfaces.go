package service

import (
	"context"

	"github.com/alexanderramin/castqc/internal/domain"
)

// InspectionService records inspection results.
type InspectionService interface {
	// Record recomputes the accepted count, persists the record once and
	// returns its ID.
	Record(ctx context.Context, r *domain.InspectionRecord) (int64, error)
}

// PickListService owns the in-memory pick lists and keeps them in sync with
// their file.
type PickListService interface {
	Lists() domain.Lists
	List(name domain.ListName) (domain.PickList, error)
	Add(ctx context.Context, name domain.ListName, value string) (bool, error)
	Remove(ctx context.Context, name domain.ListName, value string) (bool, error)
	Reload(ctx context.Context) error
}
