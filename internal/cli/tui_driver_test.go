package cli

import (
	"testing"

	"github.com/alexanderramin/castqc/internal/form"
	"github.com/alexanderramin/castqc/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, status line, form view) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(140, 50))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// FocusField moves focus forward with tab until id is focused.
func (d *TestDriver) FocusField(id form.FieldID) {
	d.T.Helper()
	for range form.Fields {
		if d.FocusedField() == id {
			return
		}
		d.Press("tab")
	}
	d.T.Fatalf("field %s never focused", id)
}

// Fill focuses id, clears it and types value.
func (d *TestDriver) Fill(id form.FieldID, value string) {
	d.T.Helper()
	d.FocusField(id)
	for range d.formView().inputs[d.formView().focus].Value() {
		d.Press("backspace")
	}
	d.Type(value)
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) formView() *inspectionFormView {
	return d.appModel().viewStack[0].(*inspectionFormView)
}

// pickListView returns the active view as the pick-list manager.
func (d *TestDriver) pickListView() *pickListView {
	d.T.Helper()
	m := d.appModel()
	v, ok := m.activeView().(*pickListView)
	if !ok {
		d.T.Fatalf("active view is %T, not the pick-list manager", m.activeView())
	}
	return v
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// FocusedField returns the field the form's cursor is on.
func (d *TestDriver) FocusedField() form.FieldID {
	return form.Fields[d.formView().focus].ID
}

// InputValue returns the text shown in the input for id.
func (d *TestDriver) InputValue(id form.FieldID) string {
	for i, f := range form.Fields {
		if f.ID == id {
			return d.formView().inputs[i].Value()
		}
	}
	return ""
}

// Status returns the status line text and whether it is an error.
func (d *TestDriver) Status() (string, bool) {
	m := d.appModel()
	return m.status, m.statusIsErr
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
