package curve3

// Frame is the coordinate system a segment's control points live in. It is
// owned by the host (typically a scene graph node); segments only reference
// it.
//
// A nil Frame is treated as the identity.
type Frame interface {
	// LocalToWorld maps a point from the frame's local space into world space.
	LocalToWorld(pt Point) Point
	// WorldToLocal is the inverse of LocalToWorld.
	WorldToLocal(pt Point) Point
	// TransformDirection maps a direction from local into world space,
	// ignoring translation.
	TransformDirection(v Vec3) Vec3
}

func frameOrIdentity(f Frame) Frame {
	if f == nil {
		return Identity
	}
	return f
}

var _ Frame = (*Node)(nil)

// Node is a minimal [Frame] backed by a mutable affine transform. It caches
// the inverse so that WorldToLocal doesn't invert on every call.
//
// Changing a Node's transform does not update the lengths cached by the
// segments that reference it. Call [Segment.RecalculateLength] or
// [Path.RecalculateLength] afterwards.
type Node struct {
	aff Affine
	inv Affine
}

// NewNode returns a node with the given local-to-world transform.
func NewNode(aff Affine) *Node {
	return &Node{aff: aff, inv: aff.Invert()}
}

// Transform returns the node's local-to-world transform.
func (n *Node) Transform() Affine { return n.aff }

// SetTransform replaces the node's local-to-world transform.
func (n *Node) SetTransform(aff Affine) {
	n.aff = aff
	n.inv = aff.Invert()
}

func (n *Node) LocalToWorld(pt Point) Point    { return pt.Transform(n.aff) }
func (n *Node) WorldToLocal(pt Point) Point    { return pt.Transform(n.inv) }
func (n *Node) TransformDirection(v Vec3) Vec3 { return v.Transform(n.aff) }
