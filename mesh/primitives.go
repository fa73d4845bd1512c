package mesh

import "github.com/go-gl/mathgl/mgl64"

// Tetrahedron builds a regular tetrahedron scaled by the given factor,
// with all four triangular faces.
func Tetrahedron(scale float64) *TriMesh {
	s := scale
	return &TriMesh{
		Vertices: []mgl64.Vec3{
			{s, s, s},
			{s, -s, -s},
			{-s, s, -s},
			{-s, -s, s},
		},
		Faces: [][]int{
			{0, 1, 2},
			{0, 1, 3},
			{0, 2, 3},
			{1, 2, 3},
		},
	}
}

// Cuboid builds an axis-aligned box from its half-extents: 8 corners and
// 6 quad faces, wound CCW viewed from outside.
func Cuboid(halfExtents mgl64.Vec3) *TriMesh {
	hx, hy, hz := halfExtents.X(), halfExtents.Y(), halfExtents.Z()

	return &TriMesh{
		Vertices: []mgl64.Vec3{
			{-hx, -hy, -hz},
			{+hx, -hy, -hz},
			{-hx, +hy, -hz},
			{+hx, +hy, -hz},
			{-hx, -hy, +hz},
			{+hx, -hy, +hz},
			{-hx, +hy, +hz},
			{+hx, +hy, +hz},
		},
		Faces: [][]int{
			{1, 3, 2, 0}, // -Z
			{4, 6, 7, 5}, // +Z
			{0, 2, 6, 4}, // -X
			{5, 7, 3, 1}, // +X
			{0, 4, 5, 1}, // -Y
			{2, 3, 7, 6}, // +Y
		},
	}
}

// GridPatch builds a flat grid of nx*ny vertices in the z=0 plane, spaced
// uniformly, with one quad face per cell. Vertex (ix, iy) has index
// iy*nx + ix. Useful as a worst case for support walks: every vertex has a
// fully coplanar neighborhood.
func GridPatch(nx, ny int, spacing float64) *TriMesh {
	vertices := make([]mgl64.Vec3, 0, nx*ny)
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			vertices = append(vertices, mgl64.Vec3{float64(ix) * spacing, float64(iy) * spacing, 0})
		}
	}

	faces := make([][]int, 0, (nx-1)*(ny-1))
	for iy := 0; iy < ny-1; iy++ {
		for ix := 0; ix < nx-1; ix++ {
			a := iy*nx + ix
			b := a + 1
			c := a + nx
			d := c + 1
			faces = append(faces, []int{a, b, d, c})
		}
	}

	return &TriMesh{Vertices: vertices, Faces: faces}
}
