// Package csg defines the constructive-solid-geometry tree for packgen.
// A solid is an immutable tree of primitives, transforms, boolean
// operations and color tags, built bottom-up by pure constructors.
package csg
