package meshwalk

import (
	"math"
	"testing"

	"github.com/akmonengine/meshwalk/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

func approxEqual(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

func TestNewShape(t *testing.T) {
	t.Run("valid mesh", func(t *testing.T) {
		s, err := NewShape(mesh.Cuboid(mgl64.Vec3{1, 1, 1}), IdentityTransform())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Graph == nil {
			t.Error("expected graph to be built")
		}
	})

	t.Run("degenerate mesh", func(t *testing.T) {
		m := &mesh.TriMesh{
			Vertices: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {9, 9, 9}},
			Faces:    [][]int{{0, 1, 2}},
		}
		if _, err := NewShape(m, IdentityTransform()); err == nil {
			t.Error("expected error for a mesh with an isolated vertex")
		}
	})
}

func TestShape_Support(t *testing.T) {
	s, err := NewShape(mesh.Cuboid(mgl64.Vec3{1, 2, 3}), IdentityTransform())
	if err != nil {
		t.Fatalf("NewShape failed: %v", err)
	}

	t.Run("extreme vertex per axis", func(t *testing.T) {
		cases := []struct {
			direction mgl64.Vec3
			wantDot   float64
		}{
			{mgl64.Vec3{1, 0, 0}, 1},
			{mgl64.Vec3{-1, 0, 0}, 1},
			{mgl64.Vec3{0, 1, 0}, 2},
			{mgl64.Vec3{0, 0, -1}, 3},
			{mgl64.Vec3{1, 1, 1}, 6},
		}

		for _, tc := range cases {
			point := s.Support(tc.direction)
			if got := tc.direction.Dot(point); got != tc.wantDot {
				t.Errorf("direction %v: support %v scores %v, want %v", tc.direction, point, got, tc.wantDot)
			}
		}
	})

	t.Run("warm start carries across queries", func(t *testing.T) {
		first := s.Support(mgl64.Vec3{1, 1, 1})
		if s.last.Point != first {
			t.Errorf("warm start %v not updated to %v", s.last.Point, first)
		}

		// A slightly perturbed direction must keep the same corner.
		second := s.Support(mgl64.Vec3{1.01, 0.99, 1})
		if second != first {
			t.Errorf("expected coherent result for nearby direction: %v vs %v", second, first)
		}
	})
}

func TestShape_SupportWorld(t *testing.T) {
	t.Run("translation only", func(t *testing.T) {
		position := mgl64.Vec3{10, -5, 2}
		s, err := NewShape(mesh.Cuboid(mgl64.Vec3{1, 1, 1}), NewTransform(position, mgl64.QuatIdent()))
		if err != nil {
			t.Fatalf("NewShape failed: %v", err)
		}

		point := s.SupportWorld(mgl64.Vec3{0, 0, 1})
		if got, want := point.Z(), 3.0; got != want {
			t.Errorf("expected world z %v, got %v", want, got)
		}
		if point.Sub(position).Len() > math.Sqrt(3)+1e-9 {
			t.Errorf("support %v further from %v than the cuboid diagonal", point, position)
		}
	})

	t.Run("rotation", func(t *testing.T) {
		// Quarter turn about z: the local -y face now faces world +x.
		rotation := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
		s, err := NewShape(mesh.Cuboid(mgl64.Vec3{1, 2, 3}), NewTransform(mgl64.Vec3{}, rotation))
		if err != nil {
			t.Fatalf("NewShape failed: %v", err)
		}

		point := s.SupportWorld(mgl64.Vec3{1, 0, 0})
		// Local support along (0,-1,0) is a y=-2 corner; the plateau
		// tie-break picks vertex 5 = (1,-2,3), which maps to (2,1,3).
		if !approxEqual(point, mgl64.Vec3{2, 1, 3}) {
			t.Errorf("expected world support (2,1,3), got %v", point)
		}
	})
}

func TestShape_Position(t *testing.T) {
	position := mgl64.Vec3{1, 2, 3}
	s, err := NewShape(mesh.Tetrahedron(1.0), NewTransform(position, mgl64.QuatIdent()))
	if err != nil {
		t.Fatalf("NewShape failed: %v", err)
	}
	if s.Position() != position {
		t.Errorf("expected position %v, got %v", position, s.Position())
	}
}
