package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/castqc/internal/domain"
)

// ErrCorruptLists is returned by PickListRepo.Load when the file exists but
// cannot be decoded. The returned lists are the built-in defaults.
var ErrCorruptLists = errors.New("pick-list file is corrupt")

// InspectionRepo is the write-only log of inspection records.
type InspectionRepo interface {
	Insert(ctx context.Context, r *domain.InspectionRecord) (int64, error)
}

// PickListRepo loads and saves all pick lists as a single document.
type PickListRepo interface {
	Load(ctx context.Context) (domain.Lists, error)
	Save(ctx context.Context, lists domain.Lists) error
}
