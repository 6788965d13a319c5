package cubie

// Named slot indices, for readability at call sites that reason about
// specific pieces (corner orbit coordinates, visibility annotation).
const (
	CornerUFR = 0
	CornerUFL = 1
	CornerULB = 2
	CornerUBR = 3
	CornerDFR = 4
	CornerDFL = 5
	CornerDLB = 6
	CornerDBR = 7

	EdgeUR = 0
	EdgeUF = 1
	EdgeUL = 2
	EdgeUB = 3
	EdgeFR = 4
	EdgeFL = 5
	EdgeBL = 6
	EdgeBR = 7
	EdgeDR = 8
	EdgeDF = 9
	EdgeDL = 10
	EdgeDB = 11
)

// EdgeOppositeESlice maps an edge slot to the slot on the other side of the
// horizontal E slice (the U/D reflection): the four edges that lie in the E
// slice plane itself (FR, FL, BL, BR) map to themselves.
var EdgeOppositeESlice = [12]uint8{
	EdgeDR, EdgeDF, EdgeDL, EdgeDB,
	EdgeFR, EdgeFL, EdgeBL, EdgeBR,
	EdgeUR, EdgeUF, EdgeUL, EdgeUB,
}

// EdgeOppositeSSlice maps an edge slot to its reflection across the S slice
// (the F/B reflection): UR, UL, DR, DL lie in the S slice plane and map to
// themselves.
var EdgeOppositeSSlice = [12]uint8{
	EdgeUR, EdgeUB, EdgeUL, EdgeUF,
	EdgeBR, EdgeBL, EdgeFL, EdgeFR,
	EdgeDR, EdgeDB, EdgeDL, EdgeDF,
}

// EdgeOppositeMSlice maps an edge slot to its reflection across the M slice
// (the R/L reflection): UF, UB, DF, DB lie in the M slice plane and map to
// themselves.
var EdgeOppositeMSlice = [12]uint8{
	EdgeUL, EdgeUF, EdgeUR, EdgeUB,
	EdgeFL, EdgeFR, EdgeBR, EdgeBL,
	EdgeDL, EdgeDF, EdgeDR, EdgeDB,
}

// CornerOppositeESlice reflects a corner slot across the U/D midplane.
var CornerOppositeESlice = [8]uint8{
	CornerDFR, CornerDFL, CornerDLB, CornerDBR,
	CornerUFR, CornerUFL, CornerULB, CornerUBR,
}

// CornerOppositeSSlice reflects a corner slot across the F/B midplane.
var CornerOppositeSSlice = [8]uint8{
	CornerUBR, CornerULB, CornerUFL, CornerUFR,
	CornerDBR, CornerDLB, CornerDFL, CornerDFR,
}

// CornerOppositeMSlice reflects a corner slot across the R/L midplane.
var CornerOppositeMSlice = [8]uint8{
	CornerUFL, CornerUFR, CornerUBR, CornerULB,
	CornerDFL, CornerDFR, CornerDBR, CornerDLB,
}

// Visibility is a bitmask of reasons a facelet is worth drawing attention to
// on a rendered cube diagram.
type Visibility uint8

const (
	VisibilityAny      Visibility = 1
	VisibilityBadFace  Visibility = 2
	VisibilityBadPiece Visibility = 4
	VisibilityHTRD     Visibility = 8
	VisibilityTopColor Visibility = 16
)

// Has reports whether v includes flag f.
func (v Visibility) Has(f Visibility) bool {
	return v&f != 0
}

// EdgeLayer reports which of the three horizontal layers an edge slot
// belongs to: 0 for U, 1 for the E slice, 2 for D.
func EdgeLayer(id uint8) int {
	return int(id) / 4
}

// CornerLayer reports 0 for the U layer, 1 for the D layer.
func CornerLayer(id uint8) int {
	return int(id) / 4
}

// EdgeFacelet names which of an edge cubie's two stickers shows a given
// axis's colour at rest, or reports that neither does (the four E/S/M
// slice edges each carry only two of the three axis colours).
type EdgeFacelet struct {
	Facelet uint8
	Shows   bool
}

// EdgeUDFacelets, EdgeFBFacelets, EdgeRLFacelets mirror the reference
// engine's EDGE_{UD,FB,RL}_FACELETS constants, adapted to our own
// UR/UF/.../DB slot order: an edge slot's two stickers belong to a
// fixed pair of axes, and the UD-ish sticker (when present) is always
// facelet index 0.
var EdgeUDFacelets = [12]EdgeFacelet{
	{0, true}, {0, true}, {0, true}, {0, true},
	{0, false}, {0, false}, {0, false}, {0, false},
	{0, true}, {0, true}, {0, true}, {0, true},
}

var EdgeFBFacelets = [12]EdgeFacelet{
	{0, false}, {1, true}, {0, false}, {1, true},
	{0, true}, {0, true}, {0, true}, {0, true},
	{0, false}, {1, true}, {0, false}, {1, true},
}

var EdgeRLFacelets = [12]EdgeFacelet{
	{1, true}, {0, false}, {1, true}, {0, false},
	{1, true}, {1, true}, {1, true}, {1, true},
	{1, true}, {0, false}, {1, true}, {0, false},
}

// CornerUDFacelets, CornerFBFacelets, CornerRLFacelets mirror
// CORNER_{UD,FB,RL}_FACELETS: every corner shows all three axis colours,
// one per sticker, so these are plain facelet indices (0/1/2), not
// optional. Facelet 0 always shows the UD colour; which of the
// remaining two stickers shows FB vs RL depends on the slot's
// handedness (see cornerHanded in axis.go).
var CornerUDFacelets = [8]uint8{0, 0, 0, 0, 0, 0, 0, 0}
var CornerFBFacelets = [8]uint8{2, 1, 1, 2, 2, 1, 1, 2}
var CornerRLFacelets = [8]uint8{1, 2, 2, 1, 1, 2, 2, 1}

// EdgeFaceletsFor returns the edge facelet table for axis.
func EdgeFaceletsFor(axis Axis) [12]EdgeFacelet {
	switch axis {
	case AxisFB:
		return EdgeFBFacelets
	case AxisRL:
		return EdgeRLFacelets
	default:
		return EdgeUDFacelets
	}
}

func CornerFaceletFor(axis Axis, pos int) uint8 {
	switch axis {
	case AxisFB:
		return CornerFBFacelets[pos]
	case AxisRL:
		return CornerRLFacelets[pos]
	default:
		return CornerUDFacelets[pos]
	}
}

// EdgeFaceletAxis is the reverse of EdgeFaceletsFor: given an edge slot and
// one of its (up to two) sticker indices, it reports which axis's colour
// that sticker shows. ok is false for a sticker index an edge in this slot
// doesn't have (the four E/S/M slice edges only carry two stickers, and
// facelet indices always run 0 then 1, never skipping 0).
func EdgeFaceletAxis(pos, facelet int) (Axis, bool) {
	for _, axis := range []Axis{AxisUD, AxisFB, AxisRL} {
		ef := EdgeFaceletsFor(axis)[pos]
		if ef.Shows && int(ef.Facelet) == facelet {
			return axis, true
		}
	}
	return AxisUD, false
}

// CornerFaceletAxis is the reverse of CornerFaceletFor: given a corner slot
// and one of its three sticker indices (0, 1, 2), it reports which axis's
// colour that sticker shows.
func CornerFaceletAxis(pos, facelet int) Axis {
	for _, axis := range []Axis{AxisUD, AxisFB, AxisRL} {
		if int(CornerFaceletFor(axis, pos)) == facelet {
			return axis
		}
	}
	return AxisUD
}
