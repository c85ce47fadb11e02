package board

import (
	"cmp"
	"slices"
)

// MinMatch is the smallest marked set that is evaluated at all.
const MinMatch = 3

// MatchResult reports what EvaluateMatch saw and did.
type MatchResult struct {
	Considered int
	Matched    bool
	Destroyed  []TileId
}

// IsMatch reports whether tiles form a set: at least MinMatch tiles whose
// colors are all equal or all different, and whose shapes are all equal
// or all different.
func IsMatch(tiles []Tile) bool {
	if len(tiles) < MinMatch {
		return false
	}

	colors := make([]Color, len(tiles))
	shapes := make([]Shape, len(tiles))
	for i, t := range tiles {
		colors[i] = t.Color
		shapes[i] = t.Shape
	}
	return uniform(colors) && uniform(shapes)
}

// uniform reports whether vals has either one distinct value or no repeats.
func uniform[T cmp.Ordered](vals []T) bool {
	n := len(vals)
	slices.Sort(vals)
	distinct := len(slices.Compact(vals))
	return distinct == n || distinct == 1
}

// EvaluateMatch checks the marked tiles and destroys all of them if they
// form a match. Below MinMatch nothing happens. On a failed match the marks
// are kept.
func (b *Board) EvaluateMatch() MatchResult {
	marked := b.Marked()
	result := MatchResult{Considered: len(marked)}
	if len(marked) < MinMatch {
		return result
	}

	tiles := make([]Tile, 0, len(marked))
	for _, id := range marked {
		if t := b.tiles.Get(id); t != nil {
			tiles = append(tiles, *t)
		}
	}

	if !IsMatch(tiles) {
		b.log.Debug().Int("marked", len(marked)).Msg("no match")
		return result
	}

	result.Matched = true
	for _, id := range marked {
		if b.DestroyTile(id) {
			result.Destroyed = append(result.Destroyed, id)
		}
	}
	b.log.Debug().Int("destroyed", len(result.Destroyed)).Msg("match")
	return result
}
