package cli

import (
	"testing"

	"github.com/alexanderramin/castqc/internal/domain"
	"github.com/alexanderramin/castqc/internal/form"
	"github.com/alexanderramin/castqc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRequired(d *TestDriver) {
	d.Fill(form.FieldCastingName, "Ригель")
	d.Fill(form.FieldExecutor1, "Иванов")
	d.Fill(form.FieldController1, "Петров")
	d.Fill(form.FieldSubmitted, "5")
}

func TestTUI_StartsOnFormWithTodaysDate(t *testing.T) {
	env := newTestEnv(t)
	d := NewTestDriver(t, env.app)

	assert.Equal(t, ViewInspectionForm, d.ActiveViewID())
	assert.Equal(t, form.FieldCastingName, d.FocusedField())
	assert.Equal(t, "19.10.2026", d.InputValue(form.FieldAcceptanceDate))
	assert.Contains(t, d.View(), "ОКОНЧАТЕЛЬНЫЙ БРАК")
}

func TestTUI_TabCyclesFocus(t *testing.T) {
	env := newTestEnv(t)
	d := NewTestDriver(t, env.app)

	d.Press("tab")
	assert.Equal(t, form.FieldExecutor1, d.FocusedField())
	d.Press("shift+tab")
	d.Press("shift+tab")
	assert.Equal(t, form.FieldNote, d.FocusedField(), "focus wraps around")
}

func TestTUI_QuantityInputKeepsDigitsOnly(t *testing.T) {
	env := newTestEnv(t)
	d := NewTestDriver(t, env.app)

	d.Fill(form.FieldSubmitted, "1a2")
	assert.Equal(t, "12", d.InputValue(form.FieldSubmitted))
}

func TestTUI_LiveAcceptedCount(t *testing.T) {
	env := newTestEnv(t)
	d := NewTestDriver(t, env.app)

	d.Fill(form.FieldSubmitted, "12")
	d.Fill(form.SecondGradeField(0), "2")
	d.Fill(form.ReworkField(0), "1")

	assert.Equal(t, 9, d.formView().accepted)
	assert.Contains(t, d.View(), "Принято")
	assert.Contains(t, d.View(), "75.0%")
	assert.Contains(t, d.View(), "СВОДКА")
	assert.Contains(t, d.View(), "]  75%", "yield bar")
}

func TestTUI_SaveWithMissingFieldsShowsAllErrors(t *testing.T) {
	env := newTestEnv(t)
	d := NewTestDriver(t, env.app)

	d.Press("ctrl+s")

	status, isErr := d.Status()
	assert.True(t, isErr)
	assert.Contains(t, status, form.MsgCastingNameRequired)
	assert.Contains(t, status, form.MsgExecutorRequired)
	assert.Contains(t, status, form.MsgControllerRequired)
	assert.Equal(t, 0, testutil.CountRecords(t, env.db))
}

func TestTUI_SaveInsertsOnceAndClears(t *testing.T) {
	env := newTestEnv(t)
	d := NewTestDriver(t, env.app)

	fillRequired(d)
	d.Fill(form.FieldNote, "без замечаний")
	d.Press("ctrl+s")

	status, isErr := d.Status()
	assert.False(t, isErr, status)
	assert.Contains(t, status, form.MsgSaved)

	require.Equal(t, 1, testutil.CountRecords(t, env.db))
	stored := testutil.LoadRecord(t, env.db, 1)
	assert.Equal(t, "Ригель", stored.CastingName)
	assert.Equal(t, 5, stored.Accepted)
	assert.Equal(t, "без замечаний", stored.Note)

	assert.Equal(t, "", d.InputValue(form.FieldCastingName))
	assert.Equal(t, "19.10.2026", d.InputValue(form.FieldAcceptanceDate))
}

func TestTUI_SaveKeepsFormWhenClearDisabled(t *testing.T) {
	env := newTestEnv(t)
	env.app.Config.ClearOnSuccess = false
	d := NewTestDriver(t, env.app)

	fillRequired(d)
	d.Press("ctrl+s")

	assert.Equal(t, 1, testutil.CountRecords(t, env.db))
	assert.Equal(t, "Ригель", d.InputValue(form.FieldCastingName))
}

func TestTUI_CtrlRClears(t *testing.T) {
	env := newTestEnv(t)
	d := NewTestDriver(t, env.app)

	fillRequired(d)
	d.Press("ctrl+r")

	assert.Equal(t, "", d.InputValue(form.FieldSubmitted))
	assert.Equal(t, 0, d.formView().accepted)
}

func TestTUI_NameFieldsOfferPickListSuggestions(t *testing.T) {
	env := newTestEnv(t)
	d := NewTestDriver(t, env.app)

	got := d.formView().inputs[0].AvailableSuggestions()
	assert.Equal(t, domain.DefaultLists().CastingNames.Values(), got)
}

func TestTUI_WarningsShownAtStart(t *testing.T) {
	env := newTestEnv(t)
	env.app.Warnings = []string{"pick lists reset to defaults"}
	d := NewTestDriver(t, env.app)

	status, isErr := d.Status()
	assert.True(t, isErr)
	assert.Equal(t, "pick lists reset to defaults", status)
}

func TestTUI_CtrlCQuits(t *testing.T) {
	env := newTestEnv(t)
	d := NewTestDriver(t, env.app)

	d.Press("ctrl+c")
	assert.True(t, d.IsQuitting())
	assert.Equal(t, "", d.View())
}
