package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/castqc/internal/db"
	"github.com/alexanderramin/castqc/internal/domain"
	"github.com/alexanderramin/castqc/internal/repository"
	"github.com/alexanderramin/castqc/internal/service"
	"github.com/alexanderramin/castqc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 10, 19, 14, 30, 0, 0, time.Local)

func fixedClock() time.Time { return today }

type fakeRecorder struct {
	calls  []*domain.InspectionRecord
	err    error
	nextID int64
}

func (f *fakeRecorder) Record(_ context.Context, r *domain.InspectionRecord) (int64, error) {
	f.calls = append(f.calls, r)
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	return f.nextID, nil
}

func fillValid(s *Session) {
	s.Set(FieldCastingName, "Ригель")
	s.Set(FieldSubmitted, "5")
	s.Set(FieldExecutor1, "Иванов")
	s.Set(FieldController1, "Петров")
}

func TestSession_DefaultsDateToToday(t *testing.T) {
	s := NewSession(&fakeRecorder{}, WithClock(fixedClock))
	assert.Equal(t, "19.10.2026", s.Value(FieldAcceptanceDate))
	assert.Equal(t, StateEditing, s.State())
	assert.Equal(t, 0, s.Accepted())
}

func TestSession_SetSanitizesQuantities(t *testing.T) {
	s := NewSession(&fakeRecorder{}, WithClock(fixedClock))

	assert.Equal(t, "12", s.Set(FieldSubmitted, "1x2"))
	assert.Equal(t, "", s.Set(SecondGradeField(0), "abc"))
	assert.Equal(t, "123456789", s.Set(FinalDefectField(3), "1234567890"))
	// Text fields are stored as typed.
	assert.Equal(t, " Ригель 2 ", s.Set(FieldCastingName, " Ригель 2 "))
}

func TestSession_SetUnknownFieldIgnored(t *testing.T) {
	s := NewSession(&fakeRecorder{}, WithClock(fixedClock))
	assert.Equal(t, "", s.Set("bogus", "1"))
	assert.Equal(t, "", s.Value("bogus"))
}

func TestSession_LiveAcceptedCount(t *testing.T) {
	s := NewSession(&fakeRecorder{}, WithClock(fixedClock))
	s.Set(FieldSubmitted, "12")
	assert.Equal(t, 12, s.Accepted())

	s.Set(SecondGradeField(0), "2") // cavities
	s.Set(ReworkField(0), "1")      // paw
	assert.Equal(t, 9, s.Accepted())

	assert.Equal(t, domain.Breakdown{Accepted: 9, SecondGrade: 2, Rework: 1}, s.Breakdown())

	s.Set(FinalDefectField(20), "50")
	assert.Equal(t, 0, s.Accepted(), "accepted never goes negative")
}

func TestSession_ValidateAccumulatesAllMessages(t *testing.T) {
	s := NewSession(&fakeRecorder{}, WithClock(fixedClock))
	s.Set(FieldAcceptanceDate, "")

	msgs := s.Validate()
	assert.Equal(t, []string{
		MsgCastingNameRequired,
		MsgSubmittedRequired,
		MsgDateRequired,
		MsgExecutorRequired,
		MsgControllerRequired,
	}, msgs)
}

func TestSession_ValidateDateFormat(t *testing.T) {
	s := NewSession(&fakeRecorder{}, WithClock(fixedClock))
	fillValid(s)

	for _, bad := range []string{"2026-10-19", "32.01.2026", "19/10/2026", "19.10.26"} {
		s.Set(FieldAcceptanceDate, bad)
		assert.Equal(t, []string{MsgDateFormat}, s.Validate(), "date %q", bad)
	}
	s.Set(FieldAcceptanceDate, "01.02.2026")
	assert.Empty(t, s.Validate())
}

func TestSession_SecondExecutorOrControllerIsEnough(t *testing.T) {
	s := NewSession(&fakeRecorder{}, WithClock(fixedClock))
	fillValid(s)
	s.Set(FieldExecutor1, "")
	s.Set(FieldExecutor2, "Сидоров")
	s.Set(FieldController1, "  ")
	s.Set(FieldController2, "Кузнецов")
	assert.Empty(t, s.Validate())
}

func TestSession_SubmitEmptyCastingNameDoesNotRecord(t *testing.T) {
	rec := &fakeRecorder{}
	s := NewSession(rec, WithClock(fixedClock))
	fillValid(s)
	s.Set(FieldCastingName, "")

	out := s.Submit(context.Background())
	assert.Equal(t, StateEditing, out.State)
	assert.Equal(t, StateEditing, s.State())
	assert.Empty(t, rec.calls)

	var ve *ValidationError
	require.ErrorAs(t, out.Err, &ve)
	assert.Equal(t, []string{MsgCastingNameRequired}, ve.Messages)
	assert.Equal(t, MsgCastingNameRequired, out.Message())
	// Entered values survive a failed validation.
	assert.Equal(t, "Иванов", s.Value(FieldExecutor1))
}

func TestSession_SubmitSuccessClearsForm(t *testing.T) {
	rec := &fakeRecorder{}
	s := NewSession(rec, WithClock(fixedClock))
	fillValid(s)
	s.Set(FieldAcceptanceDate, "01.10.2026")
	s.Set(FieldNote, "  партия №3\nвторая смена ")

	out := s.Submit(context.Background())
	require.NoError(t, out.Err)
	assert.Equal(t, StateSuccess, out.State)
	assert.Equal(t, StateSuccess, s.State())
	assert.Equal(t, MsgSaved, out.Message())
	assert.Equal(t, int64(1), out.RecordID)
	assert.Equal(t, int64(1), s.LastRecordID())

	require.Len(t, rec.calls, 1)
	got := rec.calls[0]
	assert.Equal(t, "Ригель", got.CastingName)
	assert.Equal(t, 5, got.Accepted)
	assert.Equal(t, "  партия №3\nвторая смена ", got.Note)
	assert.Equal(t, "01.10.2026", got.AcceptanceDate.Format(domain.DateLayout))

	for _, f := range Fields {
		if f.ID == FieldAcceptanceDate {
			assert.Equal(t, "19.10.2026", s.Value(f.ID))
			continue
		}
		assert.Empty(t, s.Value(f.ID), "field %s", f.ID)
	}
	assert.Equal(t, 0, s.Accepted())

	s.Set(FieldCastingName, "Корпус")
	assert.Equal(t, StateEditing, s.State())
}

func TestSession_SubmitSuccessKeepsFormWhenConfigured(t *testing.T) {
	s := NewSession(&fakeRecorder{}, WithClock(fixedClock), WithClearOnSuccess(false))
	fillValid(s)

	out := s.Submit(context.Background())
	require.Equal(t, StateSuccess, out.State)
	assert.Equal(t, "Ригель", s.Value(FieldCastingName))
	assert.Equal(t, 5, s.Accepted())
}

func TestSession_SubmitRecorderFailure(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("database is locked")}
	s := NewSession(rec, WithClock(fixedClock))
	fillValid(s)

	out := s.Submit(context.Background())
	assert.Equal(t, StateFailed, out.State)
	assert.Equal(t, StateFailed, s.State())
	assert.Len(t, rec.calls, 1)
	assert.Equal(t, "Не удалось сохранить запись: database is locked", out.Message())
	assert.Equal(t, "Ригель", s.Value(FieldCastingName), "form kept for retry")
	assert.Zero(t, s.LastRecordID())
}

func TestSession_SubmitPersistsExactlyOnce(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewInspectionService(repository.NewSQLiteInspectionRepo(db.Static{DB: database}))
	s := NewSession(svc, WithClock(fixedClock))

	fillValid(s)
	s.Set(FieldNote, "без замечаний")
	out := s.Submit(context.Background())
	require.NoError(t, out.Err)

	assert.Equal(t, 1, testutil.CountRecords(t, database))
	stored := testutil.LoadRecord(t, database, out.RecordID)
	assert.Equal(t, "Ригель", stored.CastingName)
	assert.Equal(t, "Иванов", stored.Executor1)
	assert.Equal(t, "Петров", stored.Controller1)
	assert.Equal(t, 5, stored.Submitted)
	assert.Equal(t, 5, stored.Accepted)
	assert.Equal(t, "19.10.2026", stored.AcceptanceDate)
	assert.Equal(t, "без замечаний", stored.Note)
	assert.Len(t, stored.Quantities, domain.SecondGradeCount+domain.ReworkCount+domain.FinalDefectCount)
	for _, q := range stored.Quantities {
		assert.Zero(t, q)
	}
}

func TestFields_Order(t *testing.T) {
	require.Len(t, Fields, 7+domain.SecondGradeCount+domain.ReworkCount+domain.FinalDefectCount+1)
	assert.Equal(t, FieldCastingName, Fields[0].ID)
	assert.Equal(t, FieldNote, Fields[len(Fields)-1].ID)
	assert.Equal(t, FieldID("second_grade.cavities"), SecondGradeField(0))
	assert.Equal(t, FieldID("rework.paw"), ReworkField(0))
	assert.Equal(t, FieldID("final.other"), FinalDefectField(domain.FinalDefectCount-1))

	f, ok := Lookup(FieldExecutor2)
	require.True(t, ok)
	assert.Equal(t, domain.ListExecutors, f.List)
}
