package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/castqc/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type chartSegment struct {
	label string
	count int
	style lipgloss.Style
}

func breakdownSegments(b domain.Breakdown) []chartSegment {
	return []chartSegment{
		{"Принято", b.Accepted, StyleGreen},
		{"Второй сорт", b.SecondGrade, StyleYellow},
		{"Доработка", b.Rework, StyleBlue},
		{"Окончательный брак", b.FinalDefect, StyleRed},
	}
}

// RenderBreakdown draws the current form as a segmented bar of the given
// width followed by a legend with counts and shares. It returns "" when
// there is nothing to show.
func RenderBreakdown(b domain.Breakdown, width int) string {
	total := b.Total()
	if total <= 0 {
		return ""
	}
	if width < 4 {
		width = 4
	}

	segs := breakdownSegments(b)
	counts := make([]int, len(segs))
	for i, s := range segs {
		counts[i] = s.count
	}
	widths := segmentWidths(counts, width)

	var bar strings.Builder
	for i, s := range segs {
		bar.WriteString(s.style.Render(strings.Repeat(filledBlock, widths[i])))
	}

	lines := []string{bar.String()}
	for _, s := range segs {
		if s.count == 0 {
			continue
		}
		pct := float64(s.count) * 100 / float64(total)
		lines = append(lines, fmt.Sprintf("%s %-20s %6d %5.1f%%",
			s.style.Render(filledBlock), s.label, s.count, pct))
	}
	return strings.Join(lines, "\n")
}

// segmentWidths splits width proportionally to counts using the largest
// remainder method, so the result always sums to width.
func segmentWidths(counts []int, width int) []int {
	var total int64
	for _, c := range counts {
		total += int64(c)
	}
	widths := make([]int, len(counts))
	if total == 0 {
		return widths
	}

	// int64 keeps c*width exact for nine-digit counts.
	type rem struct {
		idx  int
		frac int64
	}
	rems := make([]rem, 0, len(counts))
	used := 0
	for i, c := range counts {
		scaled := int64(c) * int64(width)
		widths[i] = int(scaled / total)
		used += widths[i]
		rems = append(rems, rem{idx: i, frac: scaled % total})
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; used < width; i++ {
		widths[rems[i%len(rems)].idx]++
		used++
	}
	return widths
}
