// Package progression implements the XP/level arithmetic. It is pure:
// callers decide whether to cap deltas, the engine always renormalizes
// XP into [0,100) and reports every level crossed.
package progression

// XPPerLevel is the amount of XP that completes one level.
const XPPerLevel = 100

// XP granted for posting a gratitude entry.
const GratitudePostXP = 5

// LevelUp is emitted once per level crossed, carrying the level reached.
type LevelUp struct {
	Level int
}

// Apply adds delta to the current (level, xp) pair and renormalizes.
// A single large delta may cross several levels; one LevelUp is emitted
// per crossing, in increasing order. The returned xp is always in
// [0,100) for non-negative inputs.
func Apply(level, xp, delta int) (int, int, []LevelUp) {
	xp += delta

	var ups []LevelUp
	for xp >= XPPerLevel {
		xp -= XPPerLevel
		level++
		ups = append(ups, LevelUp{Level: level})
	}

	return level, xp, ups
}

// CapDelta limits delta so that xp+delta does not exceed XPPerLevel.
// Used by call sites that must not skip levels in a single grant, such
// as event attendance.
func CapDelta(xp, delta int) int {
	if xp+delta > XPPerLevel {
		return XPPerLevel - xp
	}
	return delta
}
