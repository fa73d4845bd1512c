package support

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFitPlane(t *testing.T) {
	t.Run("recovers the normal of a planar cloud", func(t *testing.T) {
		// Points spanning the plane 2x + y - 2z = 3 (normal (2,1,-2)/3).
		base := mgl64.Vec3{0, 3, 0}
		t1 := mgl64.Vec3{1, -2, 0}
		t2 := mgl64.Vec3{1, 0, 1}

		var cloud []mgl64.Vec3
		for i := -2; i <= 2; i++ {
			for j := -2; j <= 2; j++ {
				p := base.Add(t1.Mul(float64(i))).Add(t2.Mul(float64(j) * 0.7))
				cloud = append(cloud, p)
			}
		}

		normal, offset := fitPlane(cloud)

		if math.Abs(normal.Len()-1) > 1e-9 {
			t.Errorf("expected unit normal, got length %v", normal.Len())
		}
		if d := math.Abs(normal.Dot(t1)); d > 1e-9 {
			t.Errorf("normal not orthogonal to first tangent: dot = %v", d)
		}
		if d := math.Abs(normal.Dot(t2)); d > 1e-9 {
			t.Errorf("normal not orthogonal to second tangent: dot = %v", d)
		}

		// Sign of the normal is arbitrary; the offset must follow it.
		want := mgl64.Vec3{2, 1, -2}.Mul(1.0 / 3.0)
		if math.Abs(math.Abs(normal.Dot(want))-1) > 1e-9 {
			t.Errorf("normal %v not parallel to (2,1,-2)/3", normal)
		}
		if math.Abs(math.Abs(offset)-1) > 1e-9 {
			t.Errorf("expected |offset| = 1 (plane distance), got %v", offset)
		}
	})

	t.Run("two-point cloud", func(t *testing.T) {
		// The minimal cloud a valid mesh can produce. Any unit vector
		// orthogonal to the segment is an acceptable normal.
		cloud := []mgl64.Vec3{{1, 0, 0}, {3, 0, 0}}

		normal, _ := fitPlane(cloud)

		if math.Abs(normal.Len()-1) > 1e-9 {
			t.Errorf("expected unit normal, got length %v", normal.Len())
		}
		if d := math.Abs(normal.Dot(mgl64.Vec3{1, 0, 0})); d > 1e-9 {
			t.Errorf("normal not orthogonal to the segment: dot = %v", d)
		}
	})

	t.Run("offset is the projected centroid", func(t *testing.T) {
		cloud := []mgl64.Vec3{{0, 0, 5}, {1, 0, 5}, {0, 1, 5}, {1, 1, 5}}

		normal, offset := fitPlane(cloud)

		// Normal is ±z; centroid sits at z=5.
		if math.Abs(math.Abs(normal.Z())-1) > 1e-9 {
			t.Errorf("expected normal along z, got %v", normal)
		}
		if math.Abs(math.Abs(offset)-5) > 1e-9 {
			t.Errorf("expected |offset| = 5, got %v", offset)
		}
	})
}
