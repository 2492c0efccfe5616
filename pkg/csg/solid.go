package csg

// Kind enumerates the node kinds of a solid tree.
type Kind int

const (
	KindPrimitive  Kind = iota // cylinder or conical frustum
	KindTranslate              // translation wrapping one child
	KindRotate                 // rotation about an axis wrapping one child
	KindUnion                  // set union of n children
	KindDifference             // first child minus the union of the rest
	KindHull                   // convex hull of n children
	KindColor                  // display color tag wrapping one child
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindTranslate:
		return "translate"
	case KindRotate:
		return "rotate"
	case KindUnion:
		return "union"
	case KindDifference:
		return "difference"
	case KindHull:
		return "hull"
	case KindColor:
		return "color"
	default:
		return "unknown"
	}
}

// Solid is a node in a constructive-solid-geometry tree. Solids are
// constructed once, by value, and never mutated afterwards; builders
// compose them bottom-up and hand the root to an exporter or kernel.
type Solid struct {
	Kind     Kind
	Data     Data
	Children []*Solid
}

// Data is the interface for kind-specific node payloads.
type Data interface {
	solidData() // marker method restricting implementations to this package
}

// Walk visits s and every descendant in depth-first, pre-order
// traversal. The visit function must not mutate the tree.
func Walk(s *Solid, visit func(*Solid)) {
	if s == nil {
		return
	}
	visit(s)
	for _, c := range s.Children {
		Walk(c, visit)
	}
}
