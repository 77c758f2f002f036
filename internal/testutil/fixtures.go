package testutil

import (
	"time"

	"github.com/alexanderramin/castqc/internal/domain"
)

// RecordOption customizes a test inspection record.
type RecordOption func(*domain.InspectionRecord)

func WithCastingName(name string) RecordOption {
	return func(r *domain.InspectionRecord) {
		r.CastingName = name
	}
}

func WithSubmitted(n int) RecordOption {
	return func(r *domain.InspectionRecord) {
		r.Submitted = n
	}
}

func WithSecondGrade(i, n int) RecordOption {
	return func(r *domain.InspectionRecord) {
		r.SecondGrade[i] = n
	}
}

func WithRework(i, n int) RecordOption {
	return func(r *domain.InspectionRecord) {
		r.Rework[i] = n
	}
}

func WithFinalDefect(i, n int) RecordOption {
	return func(r *domain.InspectionRecord) {
		r.FinalDefects[i] = n
	}
}

func WithRecordNote(note string) RecordOption {
	return func(r *domain.InspectionRecord) {
		r.Note = note
	}
}

func WithAcceptanceDate(d time.Time) RecordOption {
	return func(r *domain.InspectionRecord) {
		r.AcceptanceDate = d
	}
}

// NewTestRecord returns a valid record with Accepted already recomputed.
func NewTestRecord(opts ...RecordOption) *domain.InspectionRecord {
	r := &domain.InspectionRecord{
		CastingName:    "Ригель",
		Executor1:      "Иванов",
		Controller1:    "Петров",
		Submitted:      10,
		AcceptanceDate: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Recompute()
	return r
}
