// Package gjk implements the boolean Gilbert-Johnson-Keerthi intersection
// test over support functions.
//
// Two convex shapes overlap iff their Minkowski difference contains the
// origin. GJK never materializes that difference: it only samples extreme
// points of it via support queries, building a simplex that converges
// toward the origin in a handful of iterations.
//
// Shapes plug in through the Supporter interface; meshwalk.Shape satisfies
// it with graph-accelerated, warm-started queries, which is what makes the
// per-iteration support call cheap.
package gjk

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Supporter answers world-space support queries for one convex shape.
type Supporter interface {
	// SupportWorld returns the shape point maximizing the dot product
	// with direction, in world coordinates.
	SupportWorld(direction mgl64.Vec3) mgl64.Vec3
	// Position returns a point inside the shape, used to seed the
	// initial search direction.
	Position() mgl64.Vec3
}

// Simplex holds 1 to 4 points of the Minkowski difference. It grows
// point → line → triangle → tetrahedron as the test iterates, shrinking
// back whenever the origin leaves a feature's Voronoi region.
type Simplex struct {
	Points [4]mgl64.Vec3
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

var simplexPool = sync.Pool{
	New: func() interface{} {
		return &Simplex{}
	},
}

// MinkowskiSupport samples the Minkowski difference A - B:
// the extreme point of A along direction minus the extreme point of B
// along the opposite direction.
func MinkowskiSupport(a, b Supporter, direction mgl64.Vec3) mgl64.Vec3 {
	supportA := a.SupportWorld(direction)
	supportB := b.SupportWorld(direction.Mul(-1))
	return supportA.Sub(supportB)
}

// Intersects reports whether two convex shapes overlap.
func Intersects(a, b Supporter) bool {
	simplex := simplexPool.Get().(*Simplex)
	defer func() {
		simplex.Reset()
		simplexPool.Put(simplex)
	}()

	return run(a, b, simplex)
}

func run(a, b Supporter, simplex *Simplex) bool {
	// Starting toward the other shape usually saves iterations over an
	// arbitrary initial direction.
	direction := b.Position().Sub(a.Position())
	if direction.LenSqr() < 1e-8 {
		direction = mgl64.Vec3{1, 0, 0}
	}

	simplex.Points[0] = MinkowskiSupport(a, b, direction)
	simplex.Count = 1

	direction = simplex.Points[0].Mul(-1)
	if direction.LenSqr() < 1e-16 {
		return true // first support point sits on the origin
	}

	const maxIterations = 32
	for i := 0; i < maxIterations; i++ {
		newPoint := MinkowskiSupport(a, b, direction)

		// If the new extreme point never crosses the origin along the
		// search direction, the difference cannot contain the origin.
		if newPoint.Dot(direction) <= 0 {
			return false
		}

		simplex.Points[simplex.Count] = newPoint
		simplex.Count++

		if containsOrigin(simplex, &direction) {
			return true
		}
	}

	return false
}

// containsOrigin checks whether the simplex encloses the origin; when it
// does not, it reduces the simplex to the feature closest to the origin
// and points direction at it for the next iteration.
func containsOrigin(simplex *Simplex, direction *mgl64.Vec3) bool {
	switch simplex.Count {
	case 2:
		return line(simplex, direction)
	case 3:
		return triangle(simplex, direction)
	case 4:
		return tetrahedron(simplex, direction)
	}
	return false
}

func line(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[1] // most recent point
	b := simplex.Points[0]
	ab := b.Sub(a)
	ao := a.Mul(-1)

	// Degenerate segment: both supports landed on the same point.
	if ab.LenSqr() < 1e-8 {
		if ao.LenSqr() < 1e-8 {
			return true
		}
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return false
	}

	// Origin behind A: keep the point, search toward the origin.
	if ab.Dot(ao) <= 0 {
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return false
	}

	// Origin beside the segment: search perpendicular to it.
	abPerp := ab.Cross(ao).Cross(ab)
	if abPerp.LenSqr() < 1e-8 {
		return true // origin lies on the segment
	}

	*direction = abPerp
	return false
}

func triangle(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[2] // most recent point
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)

	// Collinear points: fall back to the AB segment.
	if abc.LenSqr() < 1e-10 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		return line(simplex, direction)
	}

	// Origin beyond edge AB.
	if ab.Cross(abc).Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = ab.Cross(ao).Cross(ab)
		return false
	}

	// Origin beyond edge AC.
	if abc.Cross(ac).Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = ac.Cross(ao).Cross(ac)
		return false
	}

	if abc.Dot(ao) > 0 {
		// Origin above the triangle plane.
		*direction = abc
	} else {
		// Below: rewind the winding so the next tetrahedron test sees
		// consistent orientation.
		simplex.Points[0] = a
		simplex.Points[1] = c
		simplex.Points[2] = b
		simplex.Count = 3
		*direction = abc.Mul(-1)
	}

	return false
}

func tetrahedron(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[3] // most recent point
	b := simplex.Points[2]
	c := simplex.Points[1]
	d := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := a.Mul(-1)

	// Face normals, oriented away from the opposite vertex.
	abc := ab.Cross(ac)
	if abc.Dot(ad) > 0 {
		abc = abc.Mul(-1)
	}
	acd := ac.Cross(ad)
	if acd.Dot(ab) > 0 {
		acd = acd.Mul(-1)
	}
	adb := ad.Cross(ab)
	if adb.Dot(ac) > 0 {
		adb = adb.Mul(-1)
	}

	// Flat tetrahedron: retest as a triangle.
	if abc.LenSqr() < 1e-10 || acd.LenSqr() < 1e-10 || adb.LenSqr() < 1e-10 {
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}

	// Origin outside a face: drop the opposite vertex and recurse on the
	// surviving triangle.
	if abc.Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}
	if acd.Dot(ao) > 0 {
		simplex.Points[0] = d
		simplex.Points[1] = c
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}
	if adb.Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = d
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}

	// Inside all four faces: the origin is enclosed.
	return true
}
