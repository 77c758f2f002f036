package domain

import "time"

// DateLayout is the storage and input format of the acceptance date.
const DateLayout = "02.01.2006"

const (
	SecondGradeCount = 3
	ReworkCount      = 3
	FinalDefectCount = 21
)

// ColumnCount is the number of values an inspection record contributes to an
// insert, excluding the auto-increment ID.
const ColumnCount = 8 + SecondGradeCount + ReworkCount + FinalDefectCount + 1

// DefectKind describes one enumerated quantity category.
type DefectKind struct {
	Key    string // stable identifier used by the form and logs
	Label  string // user-facing label
	Column string // column name in the castings table
}

var SecondGradeKinds = [SecondGradeCount]DefectKind{
	{Key: "cavities", Label: "Раковины", Column: "Второй_сорт_раковины"},
	{Key: "cut", Label: "Зарез", Column: "Второй_сорт_зарез"},
	{Key: "other", Label: "Прочее", Column: "Второй_сорт_прочее"},
}

var ReworkKinds = [ReworkCount]DefectKind{
	{Key: "paw", Label: "Лапы", Column: "Доработка_лапы"},
	{Key: "feeder", Label: "Питатель", Column: "Доработка_питатель"},
	{Key: "crown", Label: "Корона", Column: "Доработка_корона"},
}

// FinalDefectKinds is ordered as the columns of the castings table.
var FinalDefectKinds = [FinalDefectCount]DefectKind{
	{Key: "underfill", Label: "Недолив", Column: "Окончательный_брак_Недолив"},
	{Key: "tear_out", Label: "Вырыв", Column: "Окончательный_брак_Вырыв"},
	{Key: "cut", Label: "Зарез", Column: "Окончательный_брак_Зарез"},
	{Key: "warping", Label: "Коробление", Column: "Окончательный_брак_Коробление"},
	{Key: "metal_overflow", Label: "Наплыв металла", Column: "Окончательный_брак_Наплыв_металла"},
	{Key: "geometry", Label: "Нарушение геометрии", Column: "Окончательный_брак_Нарушение_геометрии"},
	{Key: "marking", Label: "Нарушение маркировки", Column: "Окончательный_брак_Нарушение_маркировки"},
	{Key: "unglued", Label: "Непроклей", Column: "Окончательный_брак_Непроклей"},
	{Key: "cold_shut", Label: "Неслитина", Column: "Окончательный_брак_Неслитина"},
	{Key: "appearance", Label: "Несоответствие внешнего вида", Column: "Окончательный_брак_Несоответствие_внешнего_вида"},
	{Key: "dimensions", Label: "Несоответствие размеров", Column: "Окончательный_брак_Несоответствие_размеров"},
	{Key: "foam_model", Label: "Пеномодель", Column: "Окончательный_брак_Пеномодель"},
	{Key: "porosity", Label: "Пористость", Column: "Окончательный_брак_Пористость"},
	{Key: "sand_burn", Label: "Пригар песка", Column: "Окончательный_брак_Пригар_песка"},
	{Key: "looseness", Label: "Рыхлота", Column: "Окончательный_брак_Рыхлота"},
	{Key: "cavities", Label: "Раковины", Column: "Окончательный_брак_Раковины"},
	{Key: "chip", Label: "Скол", Column: "Окончательный_брак_Скол"},
	{Key: "break", Label: "Слом", Column: "Окончательный_брак_Слом"},
	{Key: "seam", Label: "Спай", Column: "Окончательный_брак_Спай"},
	{Key: "cracks", Label: "Трещины", Column: "Окончательный_брак_Трещины"},
	{Key: "other", Label: "Прочее", Column: "Окончательный_брак_Прочее"},
}

// InspectionRecord is one inspection event. Records are append-only: once
// persisted they are never updated or deleted.
type InspectionRecord struct {
	ID             int64
	CastingName    string
	Executor1      string
	Executor2      string
	Controller1    string
	Controller2    string
	Submitted      int
	AcceptanceDate time.Time
	Accepted       int
	SecondGrade    [SecondGradeCount]int
	Rework         [ReworkCount]int
	FinalDefects   [FinalDefectCount]int
	Note           string
}

// DefectTotal sums every second-grade, rework and final-defect quantity.
func (r *InspectionRecord) DefectTotal() int {
	total := 0
	for _, q := range r.SecondGrade {
		total += q
	}
	for _, q := range r.Rework {
		total += q
	}
	for _, q := range r.FinalDefects {
		total += q
	}
	return total
}

// Recompute sets Accepted from Submitted and the defect quantities.
func (r *InspectionRecord) Recompute() {
	r.Accepted = AcceptedCount(r.Submitted, r.DefectTotal())
}

// Breakdown groups the record's quantities for the summary chart.
func (r *InspectionRecord) Breakdown() Breakdown {
	var b Breakdown
	b.Accepted = r.Accepted
	for _, q := range r.SecondGrade {
		b.SecondGrade += q
	}
	for _, q := range r.Rework {
		b.Rework += q
	}
	for _, q := range r.FinalDefects {
		b.FinalDefect += q
	}
	return b
}

// Values returns the ColumnCount insert arguments in schema column order.
func (r *InspectionRecord) Values() []any {
	vals := make([]any, 0, ColumnCount)
	vals = append(vals,
		r.CastingName,
		r.Executor1,
		r.Executor2,
		r.Controller1,
		r.Controller2,
		r.Submitted,
		r.AcceptanceDate.Format(DateLayout),
		r.Accepted,
	)
	for _, q := range r.SecondGrade {
		vals = append(vals, q)
	}
	for _, q := range r.Rework {
		vals = append(vals, q)
	}
	for _, q := range r.FinalDefects {
		vals = append(vals, q)
	}
	return append(vals, r.Note)
}

// Breakdown is the per-group summary shown in the chart.
type Breakdown struct {
	Accepted    int
	SecondGrade int
	Rework      int
	FinalDefect int
}

// Total returns the sum of all groups.
func (b Breakdown) Total() int {
	return b.Accepted + b.SecondGrade + b.Rework + b.FinalDefect
}

// baseColumns precede the quantity columns in the castings table.
var baseColumns = [8]string{
	"Наименование_отливки",
	"Исполнитель1",
	"Исполнитель2",
	"Контролер1",
	"Контролер2",
	"Контроль_подано",
	"Контроль_дата_приемки",
	"Контроль_принято",
}

// InspectionColumns returns the castings column names matching Values.
func InspectionColumns() []string {
	cols := make([]string, 0, ColumnCount)
	cols = append(cols, baseColumns[:]...)
	for _, k := range SecondGradeKinds {
		cols = append(cols, k.Column)
	}
	for _, k := range ReworkKinds {
		cols = append(cols, k.Column)
	}
	for _, k := range FinalDefectKinds {
		cols = append(cols, k.Column)
	}
	return append(cols, "Примечание")
}
