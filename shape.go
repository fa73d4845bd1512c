// Package meshwalk turns polygonal meshes into fast support-function
// providers for GJK-style collision and distance algorithms.
//
// The heavy lifting lives in the support subpackage: a per-vertex neighbor
// graph built once from the mesh topology, walked greedily per query.
// This package composes a mesh, its graph, and a rigid transform into a
// Shape that answers local- and world-space support queries while keeping
// the previous answer around as the next query's warm start.
package meshwalk

import (
	"fmt"

	"github.com/akmonengine/meshwalk/support"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform places a shape in world space.
type Transform struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	InverseRotation mgl64.Quat
}

// NewTransform builds a transform from a position and rotation,
// precomputing the inverse rotation used by world-space support queries.
func NewTransform(position mgl64.Vec3, rotation mgl64.Quat) Transform {
	return Transform{
		Position:        position,
		Rotation:        rotation,
		InverseRotation: rotation.Inverse(),
	}
}

// IdentityTransform returns a transform at the origin with no rotation.
func IdentityTransform() Transform {
	return NewTransform(mgl64.Vec3{}, mgl64.QuatIdent())
}

// Shape binds a mesh to its support graph and a world transform.
//
// Each query warm-starts from the previous result, so a Shape is meant to
// be driven by one query sequence at a time (one GJK invocation, one
// goroutine). To fan queries out across goroutines, share the Graph and
// track TaggedPoints per goroutine instead.
type Shape struct {
	Mesh      support.Mesh
	Graph     *support.Graph
	Transform Transform

	last support.TaggedPoint
}

// NewShape builds the support graph for a mesh and wraps both with a
// transform. The graph build is the expensive part; create a Shape once
// per mesh instance and reuse it across frames.
func NewShape(m support.Mesh, transform Transform) (*Shape, error) {
	if m.VertexCount() == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}

	g, err := support.Build(m)
	if err != nil {
		return nil, fmt.Errorf("building support graph: %w", err)
	}

	return &Shape{
		Mesh:      m,
		Graph:     g,
		Transform: transform,
		last:      support.TaggedPoint{Point: m.Vertex(0), Index: 0},
	}, nil
}

// Position returns the shape's world position.
func (s *Shape) Position() mgl64.Vec3 {
	return s.Transform.Position
}

// Support returns the extreme vertex for a local-space direction and
// records it as the warm start for the next query.
func (s *Shape) Support(direction mgl64.Vec3) mgl64.Vec3 {
	s.last = s.Graph.Support(direction, s.last)
	return s.last.Point
}

// SupportWorld answers a world-space support query:
// the direction is brought into local space, resolved against the graph,
// and the resulting vertex is pushed back out through the transform.
func (s *Shape) SupportWorld(direction mgl64.Vec3) mgl64.Vec3 {
	localDirection := s.Transform.InverseRotation.Rotate(direction)
	localSupport := s.Support(localDirection)

	return s.Transform.Rotation.Rotate(localSupport).Add(s.Transform.Position)
}
