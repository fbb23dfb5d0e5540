package color

import "slices"

// hueTolerance is the width, in degrees or percent, under which two
// components are treated as equal by CompareHue.
const hueTolerance = 1.0

// CompareHue orders colours by hue ascending, then saturation descending,
// then lightness ascending. Hue and saturation differences of at most one
// unit count as ties and fall through to the next key.
func CompareHue(a, b Color) int {
	return compareHSL(a.HSL(), b.HSL())
}

func compareHSL(a, b HSL) int {
	if d := a.H - b.H; d > hueTolerance || d < -hueTolerance {
		return sign(d)
	}
	if d := a.S - b.S; d > hueTolerance || d < -hueTolerance {
		return -sign(d)
	}
	return sign(a.L - b.L)
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// SortByHue returns a stably sorted copy of colors. The input is not modified.
// Sorting the result again returns it unchanged.
func SortByHue(colors []Color) []Color {
	out := slices.Clone(colors)
	adjacentSort(out, CompareHue)
	return out
}

// adjacentSort swaps neighbours until no adjacent pair compares > 0. The
// tolerant comparator is not transitive, so the result must be defined by
// adjacent pairs alone. Equal neighbours are never swapped.
func adjacentSort[T any](items []T, cmp func(a, b T) int) {
	for end := len(items); end > 1; {
		last := 0
		for i := 1; i < end; i++ {
			if cmp(items[i-1], items[i]) > 0 {
				items[i-1], items[i] = items[i], items[i-1]
				last = i
			}
		}
		end = last
	}
}

// SortFuncByHue stably sorts items in place by the colour returned by key.
// HSL is computed once per item.
func SortFuncByHue[T any](items []T, key func(T) Color) {
	type keyed struct {
		hsl  HSL
		item T
	}
	tmp := make([]keyed, len(items))
	for i, it := range items {
		tmp[i] = keyed{hsl: key(it).HSL(), item: it}
	}
	adjacentSort(tmp, func(a, b keyed) int {
		return compareHSL(a.hsl, b.hsl)
	})
	for i := range tmp {
		items[i] = tmp[i].item
	}
}
