// Package form holds the inspection entry session: field values, live derived
// quantities, validation and the single save attempt per submit.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/castqc/internal/domain"
)

// State is the session lifecycle position.
type State int

const (
	StateEditing State = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Recorder persists a finished record.
type Recorder interface {
	Record(ctx context.Context, r *domain.InspectionRecord) (int64, error)
}

// Validation messages shown to the operator.
const (
	MsgCastingNameRequired = "Укажите наименование отливки"
	MsgSubmittedRequired   = "Укажите количество поданных отливок"
	MsgSubmittedNumeric    = "Количество поданных отливок должно быть числом"
	MsgDateRequired        = "Укажите дату приемки"
	MsgDateFormat          = "Дата приемки должна быть в формате ДД.ММ.ГГГГ"
	MsgExecutorRequired    = "Укажите хотя бы одного исполнителя"
	MsgControllerRequired  = "Укажите хотя бы одного контролера"

	MsgSaved      = "Запись успешно сохранена"
	msgSaveFailed = "Не удалось сохранить запись: %v"
)

// ValidationError carries every failed check of one submit attempt.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Outcome reports the result of Submit.
type Outcome struct {
	State    State
	RecordID int64
	Record   *domain.InspectionRecord
	Err      error
}

// Message is the operator-facing text for the outcome.
func (o Outcome) Message() string {
	switch o.State {
	case StateSuccess:
		return MsgSaved
	case StateFailed:
		return fmt.Sprintf(msgSaveFailed, o.Err)
	}
	var ve *ValidationError
	if errors.As(o.Err, &ve) {
		return strings.Join(ve.Messages, "\n")
	}
	return ""
}

type Option func(*Session)

// WithClearOnSuccess controls whether a successful save empties the form.
func WithClearOnSuccess(clear bool) Option {
	return func(s *Session) { s.clearOnSuccess = clear }
}

// WithClock overrides the time source used for the default date.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Session is one operator's form. It is not safe for concurrent use.
type Session struct {
	recorder       Recorder
	clearOnSuccess bool
	now            func() time.Time

	values    map[FieldID]string
	state     State
	record    domain.InspectionRecord
	lastSaved int64
}

func NewSession(recorder Recorder, opts ...Option) *Session {
	s := &Session{
		recorder:       recorder,
		clearOnSuccess: true,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset empties every field and sets the date to today.
func (s *Session) Reset() {
	s.values = make(map[FieldID]string, len(Fields))
	s.values[FieldAcceptanceDate] = s.now().Format(domain.DateLayout)
	s.state = StateEditing
	s.recompute()
}

func (s *Session) State() State { return s.state }

// Value returns the stored text of a field.
func (s *Session) Value(id FieldID) string { return s.values[id] }

// Set stores raw for id and returns the value actually kept. Quantity fields
// keep only ASCII digits.
func (s *Session) Set(id FieldID, raw string) string {
	f, ok := Lookup(id)
	if !ok {
		return ""
	}
	v := raw
	if f.Quantity {
		v = domain.SanitizeDigits(raw)
	}
	s.values[id] = v
	s.state = StateEditing
	s.recompute()
	return v
}

// Accepted is the live accepted count for the current values.
func (s *Session) Accepted() int { return s.record.Accepted }

// Breakdown is the live chart summary for the current values.
func (s *Session) Breakdown() domain.Breakdown { return s.record.Breakdown() }

// LastRecordID is the ID of the most recent successful save, or 0.
func (s *Session) LastRecordID() int64 { return s.lastSaved }

func (s *Session) recompute() {
	r := &s.record
	r.Submitted = domain.ParseQuantity(s.values[FieldSubmitted])
	for i := range r.SecondGrade {
		r.SecondGrade[i] = domain.ParseQuantity(s.values[SecondGradeField(i)])
	}
	for i := range r.Rework {
		r.Rework[i] = domain.ParseQuantity(s.values[ReworkField(i)])
	}
	for i := range r.FinalDefects {
		r.FinalDefects[i] = domain.ParseQuantity(s.values[FinalDefectField(i)])
	}
	r.Recompute()
}

// Validate returns every failed check, in display order. An empty result
// means the form can be saved.
func (s *Session) Validate() []string {
	var msgs []string
	if strings.TrimSpace(s.values[FieldCastingName]) == "" {
		msgs = append(msgs, MsgCastingNameRequired)
	}

	switch submitted := strings.TrimSpace(s.values[FieldSubmitted]); {
	case submitted == "":
		msgs = append(msgs, MsgSubmittedRequired)
	case !domain.IsDigits(submitted):
		msgs = append(msgs, MsgSubmittedNumeric)
	}

	if date := strings.TrimSpace(s.values[FieldAcceptanceDate]); date == "" {
		msgs = append(msgs, MsgDateRequired)
	} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
		msgs = append(msgs, MsgDateFormat)
	}

	if blank(s.values[FieldExecutor1]) && blank(s.values[FieldExecutor2]) {
		msgs = append(msgs, MsgExecutorRequired)
	}
	if blank(s.values[FieldController1]) && blank(s.values[FieldController2]) {
		msgs = append(msgs, MsgControllerRequired)
	}
	return msgs
}

func blank(v string) bool { return strings.TrimSpace(v) == "" }

// Submit validates the form and, when valid, records it exactly once.
// Validation failures leave the session in Editing with nothing saved.
func (s *Session) Submit(ctx context.Context) Outcome {
	s.state = StateValidating
	if msgs := s.Validate(); len(msgs) > 0 {
		s.state = StateEditing
		return Outcome{State: StateEditing, Err: &ValidationError{Messages: msgs}}
	}

	rec, err := s.build()
	if err != nil {
		s.state = StateEditing
		return Outcome{State: StateEditing, Err: &ValidationError{Messages: []string{MsgDateFormat}}}
	}

	s.state = StateSubmitting
	id, err := s.recorder.Record(ctx, rec)
	if err != nil {
		s.state = StateFailed
		return Outcome{State: StateFailed, Record: rec, Err: err}
	}

	s.lastSaved = id
	if s.clearOnSuccess {
		s.Reset()
	}
	s.state = StateSuccess
	return Outcome{State: StateSuccess, RecordID: id, Record: rec}
}

func (s *Session) build() (*domain.InspectionRecord, error) {
	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(s.values[FieldAcceptanceDate]))
	if err != nil {
		return nil, err
	}
	rec := s.record
	rec.ID = 0
	rec.CastingName = strings.TrimSpace(s.values[FieldCastingName])
	rec.Executor1 = strings.TrimSpace(s.values[FieldExecutor1])
	rec.Executor2 = strings.TrimSpace(s.values[FieldExecutor2])
	rec.Controller1 = strings.TrimSpace(s.values[FieldController1])
	rec.Controller2 = strings.TrimSpace(s.values[FieldController2])
	rec.AcceptanceDate = date
	rec.Note = s.values[FieldNote]
	rec.Recompute()
	return &rec, nil
}
