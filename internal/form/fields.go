package form

import "github.com/alexanderramin/castqc/internal/domain"

// FieldID names an editable form field.
type FieldID string

const (
	FieldCastingName    FieldID = "casting_name"
	FieldExecutor1      FieldID = "executor1"
	FieldExecutor2      FieldID = "executor2"
	FieldController1    FieldID = "controller1"
	FieldController2    FieldID = "controller2"
	FieldSubmitted      FieldID = "submitted"
	FieldAcceptanceDate FieldID = "acceptance_date"
	FieldNote           FieldID = "note"
)

// Group identifies the section a field belongs to.
type Group int

const (
	GroupBasic Group = iota
	GroupSecondGrade
	GroupRework
	GroupFinalDefect
	GroupNote
)

// Field describes one editable input.
type Field struct {
	ID       FieldID
	Label    string
	Group    Group
	Index    int // position within the quantity group
	Quantity bool
	List     domain.ListName // pick list offering completions, if any
}

func SecondGradeField(i int) FieldID { return FieldID("second_grade." + domain.SecondGradeKinds[i].Key) }
func ReworkField(i int) FieldID      { return FieldID("rework." + domain.ReworkKinds[i].Key) }
func FinalDefectField(i int) FieldID { return FieldID("final." + domain.FinalDefectKinds[i].Key) }

// Fields lists every editable field in display and tab order.
var Fields = buildFields()

var fieldsByID = indexFields(Fields)

func buildFields() []Field {
	fs := []Field{
		{ID: FieldCastingName, Label: "Наименование отливки", Group: GroupBasic, List: domain.ListCastingNames},
		{ID: FieldExecutor1, Label: "Исполнитель 1", Group: GroupBasic, List: domain.ListExecutors},
		{ID: FieldExecutor2, Label: "Исполнитель 2", Group: GroupBasic, List: domain.ListExecutors},
		{ID: FieldController1, Label: "Контролер 1", Group: GroupBasic, List: domain.ListControllers},
		{ID: FieldController2, Label: "Контролер 2", Group: GroupBasic, List: domain.ListControllers},
		{ID: FieldSubmitted, Label: "Контроль подано", Group: GroupBasic, Quantity: true},
		{ID: FieldAcceptanceDate, Label: "Дата приемки", Group: GroupBasic},
	}
	for i, k := range domain.SecondGradeKinds {
		fs = append(fs, Field{ID: SecondGradeField(i), Label: k.Label, Group: GroupSecondGrade, Index: i, Quantity: true})
	}
	for i, k := range domain.ReworkKinds {
		fs = append(fs, Field{ID: ReworkField(i), Label: k.Label, Group: GroupRework, Index: i, Quantity: true})
	}
	for i, k := range domain.FinalDefectKinds {
		fs = append(fs, Field{ID: FinalDefectField(i), Label: k.Label, Group: GroupFinalDefect, Index: i, Quantity: true})
	}
	return append(fs, Field{ID: FieldNote, Label: "Примечание", Group: GroupNote})
}

func indexFields(fs []Field) map[FieldID]Field {
	m := make(map[FieldID]Field, len(fs))
	for _, f := range fs {
		m[f.ID] = f
	}
	return m
}

// Lookup returns the field definition for id.
func Lookup(id FieldID) (Field, bool) {
	f, ok := fieldsByID[id]
	return f, ok
}
