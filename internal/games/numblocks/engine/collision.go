package engine

import (
	"math"

	"github.com/google/uuid"

	"github.com/vovakirdan/numblocks/internal/core"
)

// Overlaps reports whether a dragged point falls within a candidate's merge
// zone: the footprint widened by tolerance on both sides, and extended by
// tolerance above its top and below its bottom edge.
func Overlaps(candidate Block, at core.Vec, tolerance float64) bool {
	fp := candidate.Footprint()
	if math.Abs(at.X-candidate.Pos.X) > fp.Width()/2+tolerance {
		return false
	}
	bottom := candidate.Pos.Y
	return at.Y >= bottom-fp.Height()-tolerance && at.Y <= bottom+tolerance
}

// FindMergeTarget returns the block a moving block at `at` would merge
// into. When several blocks qualify, the one whose footprint centre is
// nearest wins; exact ties go to the earlier block in board order.
func FindMergeTarget(blocks []Block, movingID uuid.UUID, at core.Vec, tolerance float64) (uuid.UUID, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, b := range blocks {
		if b.ID == movingID || !Overlaps(b, at, tolerance) {
			continue
		}
		if d := b.Footprint().Center().Dist2(at); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return uuid.Nil, false
	}
	return blocks[best].ID, true
}

// HitTest returns the topmost block whose footprint contains the point.
func HitTest(blocks []Block, at core.Vec) (uuid.UUID, bool) {
	ordered := DrawOrder(blocks)
	for i := len(ordered) - 1; i >= 0; i-- {
		if ordered[i].Footprint().Contains(at) {
			return ordered[i].ID, true
		}
	}
	return uuid.Nil, false
}
