package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/colorpal/colorpal-server/internal/color"
)

// SortOrder selects how a colour list is arranged for display.
type SortOrder string

const (
	SortByHue     SortOrder = "hue"
	SortByName    SortOrder = "name"
	SortByCompany SortOrder = "company"
)

// Valid reports whether o is a known order.
func (o SortOrder) Valid() bool {
	switch o {
	case SortByHue, SortByName, SortByCompany:
		return true
	}
	return false
}

// SortColors orders colors in place. Unknown orders leave the slice as is.
func SortColors(colors []*Color, order SortOrder) {
	switch order {
	case SortByHue:
		color.SortFuncByHue(colors, (*Color).Value)
	case SortByName:
		cmp := newCollator()
		slices.SortStableFunc(colors, func(a, b *Color) int {
			return compareEmptyLast(cmp, a.Name, b.Name)
		})
	case SortByCompany:
		cmp := newCollator()
		slices.SortStableFunc(colors, func(a, b *Color) int {
			if c := compareEmptyLast(cmp, a.Company, b.Company); c != 0 {
				return c
			}
			return compareEmptyLast(cmp, a.Code, b.Code)
		})
	}
}

// newCollator returns a case-insensitive English collator. Collators are
// not safe for concurrent use, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase, collate.Numeric)
}

// compareEmptyLast compares with the collator but places blank values after
// every non-blank value.
func compareEmptyLast(c *collate.Collator, a, b string) int {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return c.CompareString(a, b)
}
