package cubie

import "math/rand"

var allFaces = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

// RandomCube samples a cube reachable from solved by a long random walk
// of quarter/half/counter turns, skipping same-axis repeats so the walk
// doesn't waste moves undoing itself. A legal position is produced by
// applying a long legal scramble rather than sampling raw coordinates,
// which would risk landing outside the reachable state space.
func RandomCube(rng *rand.Rand, length int) Cube {
	c := Solved()
	lastAxis := Face(255)
	for i := 0; i < length; i++ {
		face := allFaces[rng.Intn(len(allFaces))]
		axis := face
		if face == FaceD {
			axis = FaceU
		} else if face == FaceB {
			axis = FaceF
		} else if face == FaceL {
			axis = FaceR
		}
		if axis == lastAxis {
			i--
			continue
		}
		lastAxis = axis
		turns := rng.Intn(3) + 1
		c.Apply(Move{Face: face, Turns: turns})
	}
	return c
}
