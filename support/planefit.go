package support

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// fitPlane computes the best-fit plane through a point cloud, minimizing
// orthogonal distance: center the cloud on its centroid, decompose it via
// SVD, and take the left singular vector of the smallest singular value as
// the normal. The signed offset is normal·centroid.
//
// The cloud must contain at least 2 points. The normal is unit length
// (column of an orthonormal U) but its sign is arbitrary, which is fine:
// both projection extremes along it get used.
func fitPlane(cloud []mgl64.Vec3) (normal mgl64.Vec3, offset float64) {
	var centroid mgl64.Vec3
	for _, p := range cloud {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(len(cloud)))

	centered := mat.NewDense(3, len(cloud), nil)
	for j, p := range cloud {
		q := p.Sub(centroid)
		centered.Set(0, j, q.X())
		centered.Set(1, j, q.Y())
		centered.Set(2, j, q.Z())
	}

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDFullU); !ok {
		// Only reachable with non-finite coordinates.
		panic("support: SVD of neighbor cloud failed to converge")
	}
	var u mat.Dense
	svd.UTo(&u)

	// Singular values come out in descending order. Full U is 3x3 even for
	// rank-deficient clouds (2 points), where the trailing columns span the
	// null space, exactly the direction of least spread we want.
	normal = mgl64.Vec3{u.At(0, 2), u.At(1, 2), u.At(2, 2)}

	return normal, normal.Dot(centroid)
}
