package cubie

// Axis names one of the three reference axes a stage can be classified
// against. Every stage kind below EO comes in three variants, one per
// axis; the UD variant is implemented directly and the FB/RL variants
// either delegate to it through a whole-cube reorientation or evaluate
// the same per-axis fields directly, whichever the stage requires.
type Axis uint8

const (
	AxisUD Axis = iota
	AxisFB
	AxisRL
)

func (a Axis) String() string {
	switch a {
	case AxisUD:
		return "ud"
	case AxisFB:
		return "fb"
	case AxisRL:
		return "rl"
	}
	return "?"
}

// ParseAxis parses the "ud"/"fb"/"rl" variant tokens used by stage queries.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "ud":
		return AxisUD, true
	case "fb":
		return AxisFB, true
	case "rl":
		return AxisRL, true
	}
	return 0, false
}

// cornerHanded marks the corner slots that share the handedness of the
// UFR/UBR/DFR/DBR diagonal (the R-side corners, given our UFR=0-based
// layout). Corner orientation relative to the UD axis is a single
// stored digit per cubie.go's convention; orientation relative to the
// other two axes is a fixed shift of that digit, and which shift
// applies is exactly this handedness bit - the same fact the original
// engine captures with its CORNER_FB_FACELETS/CORNER_RL_FACELETS
// constants alternating by corner slot.
var cornerHanded = [8]bool{true, false, false, true, true, false, false, true}

// CornerOrientationFor returns the corner-at-pos's twist relative to
// axis, derived from its UD-relative twist. The three per-axis digits
// of any corner always sum to 0 mod 3, so the FB/RL digit is the UD
// digit plus a fixed shift (1 or 2) determined by the slot's handedness.
func CornerOrientationFor(pos int, udTwist uint8, axis Axis) uint8 {
	if axis == AxisUD {
		return udTwist
	}
	handed := cornerHanded[pos]
	shiftFB := uint8(2)
	if handed {
		shiftFB = 1
	}
	shiftRL := uint8(3 - shiftFB)
	if axis == AxisFB {
		return (udTwist + shiftFB) % 3
	}
	return (udTwist + shiftRL) % 3
}

// EdgeOrientedFor reports whether the edge is oriented relative to axis.
func (e Edge) EdgeOrientedFor(axis Axis) bool {
	switch axis {
	case AxisFB:
		return e.OrientedFB
	case AxisRL:
		return e.OrientedRL
	default:
		return e.OrientedUD
	}
}

// CountBadEdgesFor counts edges misoriented relative to axis.
func (c Cube) CountBadEdgesFor(axis Axis) int {
	switch axis {
	case AxisFB:
		return c.CountBadEdgesFB()
	case AxisRL:
		return c.CountBadEdgesRL()
	default:
		return c.CountBadEdgesUD()
	}
}

// reorientAxis is the whole-cube rotation that carries axis onto the UD
// axis: ViewFromAxis applies it for the FB/RL variants of DR and HTR and
// for the search bounds, which then reuse the UD implementation.
func reorientAxis(axis Axis) (Face, int) {
	switch axis {
	case AxisFB:
		return AxisX, 1
	case AxisRL:
		return AxisZ, 1
	default:
		return AxisY, 0
	}
}

// ViewFromAxis returns a clone of c reoriented so that axis's classifier
// logic can be evaluated by the UD implementation.
func (c Cube) ViewFromAxis(axis Axis) Cube {
	if axis == AxisUD {
		return c
	}
	face, turns := reorientAxis(axis)
	out := c.Clone()
	out.Transform(face, turns)
	return out
}
