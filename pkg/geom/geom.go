// Package geom provides the vector and matrix primitives consumed by the
// mesh-editing kernel. It is a thin layer over mathgl, extended with the
// one operation the kernel needs that mathgl does not provide: the outer
// product of two 4-vectors used to build quadric error matrices.
package geom

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a 3-component vector (vertex position, normal, tangent).
type Vec3 = mgl64.Vec3

// Vec4 is a 4-component vector, typically a homogeneous point (p, 1) or a
// plane equation (n, d).
type Vec4 = mgl64.Vec4

// Mat4 is a 4x4 matrix, used here exclusively to hold quadric error forms.
type Mat4 = mgl64.Mat4

// ZeroMat4 is the additive identity for Mat4, mirroring the "Mat4::Zero"
// constant the geometry kernel is expected to provide.
var ZeroMat4 = Mat4{}

// Outer returns the outer product a * bᵗ, i.e. the 4x4 matrix M with
// M[i][j] = a[i] * b[j]. mathgl's Mat4 is stored column-major, matching
// mgl64.Mat4's own indexing convention.
func Outer(a, b Vec4) Mat4 {
	return Mat4{
		a[0] * b[0], a[1] * b[0], a[2] * b[0], a[3] * b[0],
		a[0] * b[1], a[1] * b[1], a[2] * b[1], a[3] * b[1],
		a[0] * b[2], a[1] * b[2], a[2] * b[2], a[3] * b[2],
		a[0] * b[3], a[1] * b[3], a[2] * b[3], a[3] * b[3],
	}
}

// Vec4FromVec3 lifts a 3-vector to homogeneous form (v, w).
func Vec4FromVec3(v Vec3, w float64) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}
