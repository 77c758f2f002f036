package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/castqc/internal/domain"
	"github.com/alexanderramin/castqc/internal/repository"
	"github.com/google/uuid"
)

// ErrNegativeQuantity rejects records carrying a negative count.
var ErrNegativeQuantity = errors.New("quantities must be non-negative")

type inspectionService struct {
	records  repository.InspectionRepo
	observer UseCaseObserver
}

func NewInspectionService(records repository.InspectionRepo, observers ...UseCaseObserver) InspectionService {
	return &inspectionService{records: records, observer: useCaseObserverOrNoop(observers)}
}

func (s *inspectionService) Record(ctx context.Context, r *domain.InspectionRecord) (id int64, err error) {
	start := time.Now()
	submissionID := uuid.New().String()
	defer func() {
		observe(ctx, s.observer, "inspection.record", start, err, map[string]any{
			"submission_id": submissionID,
			"casting":       r.CastingName,
			"submitted":     r.Submitted,
			"accepted":      r.Accepted,
			"record_id":     id,
		})
	}()

	if err := checkNonNegative(r); err != nil {
		return 0, err
	}
	r.Recompute()

	return s.records.Insert(ctx, r)
}

func checkNonNegative(r *domain.InspectionRecord) error {
	if r.Submitted < 0 {
		return fmt.Errorf("%w: submitted=%d", ErrNegativeQuantity, r.Submitted)
	}
	groups := [][]int{r.SecondGrade[:], r.Rework[:], r.FinalDefects[:]}
	for _, g := range groups {
		for _, q := range g {
			if q < 0 {
				return fmt.Errorf("%w: %d", ErrNegativeQuantity, q)
			}
		}
	}
	return nil
}
