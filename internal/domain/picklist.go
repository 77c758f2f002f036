package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnknownList is returned when a pick-list name is not one of ListNames.
var ErrUnknownList = errors.New("unknown pick list")

// ListName identifies one of the user-editable pick lists.
type ListName string

const (
	ListCastingNames ListName = "casting_names"
	ListExecutors    ListName = "executors"
	ListControllers  ListName = "controllers"
)

// ListNames is the canonical order of pick lists.
var ListNames = []ListName{ListCastingNames, ListExecutors, ListControllers}

// Label returns the user-facing title of the list.
func (n ListName) Label() string {
	switch n {
	case ListCastingNames:
		return "Наименования отливок"
	case ListExecutors:
		return "Исполнители"
	case ListControllers:
		return "Контролеры"
	default:
		return string(n)
	}
}

// ParseListName validates s against ListNames.
func ParseListName(s string) (ListName, error) {
	for _, n := range ListNames {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownList, s)
}

// PickList is an ordered list of selectable values. The empty sentinel is
// always first; the remaining values are unique and sorted by code point.
type PickList []string

// NormalizeValue trims surrounding whitespace and converts to NFC so that
// visually identical names compare equal.
func NormalizeValue(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NewPickList builds a PickList from arbitrary values: blanks and duplicates
// are dropped, the rest sorted, and the sentinel prepended.
func NewPickList(values ...string) PickList {
	out := PickList{""}
	for _, v := range values {
		v = NormalizeValue(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	slices.Sort(out[1:])
	return out
}

// WithSentinel returns l with the empty sentinel pinned first, leaving the
// order of the other entries untouched.
func (l PickList) WithSentinel() PickList {
	if len(l) > 0 && l[0] == "" {
		return l
	}
	out := make(PickList, 0, len(l)+1)
	out = append(out, "")
	for _, v := range l {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Contains reports whether the normalized value is present.
func (l PickList) Contains(value string) bool {
	return slices.Contains(l, NormalizeValue(value))
}

// Values returns the entries without the sentinel.
func (l PickList) Values() []string {
	if len(l) > 0 && l[0] == "" {
		return slices.Clone(l[1:])
	}
	return slices.Clone([]string(l))
}

// Add returns the list with value inserted in sorted position. The boolean
// is false, and the list returned unchanged, for blank or duplicate values.
func (l PickList) Add(value string) (PickList, bool) {
	value = NormalizeValue(value)
	if value == "" || l.Contains(value) {
		return l, false
	}
	out := append(slices.Clone(l.WithSentinel()), value)
	slices.Sort(out[1:])
	return out, true
}

// Remove returns the list without value. The sentinel can never be removed.
func (l PickList) Remove(value string) (PickList, bool) {
	value = NormalizeValue(value)
	if value == "" {
		return l, false
	}
	i := slices.Index(l, value)
	if i < 0 {
		return l, false
	}
	return slices.Delete(slices.Clone(l), i, i+1), true
}

// Lists holds the three pick lists.
type Lists struct {
	CastingNames PickList `json:"casting_names"`
	Executors    PickList `json:"executors"`
	Controllers  PickList `json:"controllers"`
}

// DefaultLists returns the built-in lists used when no file exists.
func DefaultLists() Lists {
	return Lists{
		CastingNames: NewPickList("Корпус", "Крышка", "Ригель"),
		Executors:    NewPickList(),
		Controllers:  NewPickList(),
	}
}

// Get returns the named list.
func (ls *Lists) Get(name ListName) (PickList, error) {
	switch name {
	case ListCastingNames:
		return ls.CastingNames, nil
	case ListExecutors:
		return ls.Executors, nil
	case ListControllers:
		return ls.Controllers, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
}

// Set replaces the named list.
func (ls *Lists) Set(name ListName, l PickList) error {
	switch name {
	case ListCastingNames:
		ls.CastingNames = l
	case ListExecutors:
		ls.Executors = l
	case ListControllers:
		ls.Controllers = l
	default:
		return fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	return nil
}

// Clone returns a deep copy.
func (ls Lists) Clone() Lists {
	return Lists{
		CastingNames: slices.Clone(ls.CastingNames),
		Executors:    slices.Clone(ls.Executors),
		Controllers:  slices.Clone(ls.Controllers),
	}
}
