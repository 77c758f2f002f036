package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/castqc/internal/domain"
)

// FormatPickList renders one list under a header, numbering the entries and
// leaving out the blank sentinel.
func FormatPickList(name domain.ListName, l domain.PickList) string {
	var b strings.Builder
	b.WriteString(Header(name.Label()))
	b.WriteString("\n")

	values := l.Values()
	if len(values) == 0 {
		b.WriteString(Dim("  (пусто)"))
		b.WriteString("\n")
		return b.String()
	}
	for i, v := range values {
		fmt.Fprintf(&b, "  %s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), v)
	}
	return b.String()
}

// FormatPickLists renders every list in canonical order.
func FormatPickLists(ls domain.Lists) string {
	parts := make([]string, 0, len(domain.ListNames))
	for _, name := range domain.ListNames {
		l, err := ls.Get(name)
		if err != nil {
			continue
		}
		parts = append(parts, FormatPickList(name, l))
	}
	return strings.Join(parts, "\n")
}
