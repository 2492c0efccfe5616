// Package scad serializes solid trees to the OpenSCAD geometry
// description language. The emitted vocabulary is cylinder (with one
// or two radii), translate, rotate-about-axis, union, difference,
// hull and color: exactly the node kinds of a csg tree. Output is
// deterministic: the same tree always marshals to the same bytes.
package scad

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"packgen/pkg/csg"
)

// Encoder writes solid trees to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the OpenSCAD description of s.
func (e *Encoder) Encode(s *csg.Solid) error {
	if s == nil {
		return fmt.Errorf("scad: cannot encode nil solid")
	}
	return e.encodeNode(s, 0)
}

func (e *Encoder) encodeNode(s *csg.Solid, depth int) error {
	switch s.Kind {
	case csg.KindPrimitive:
		return e.encodePrimitive(s, depth)
	case csg.KindTranslate:
		d := s.Data.(csg.TranslateData)
		return e.encodeWrapper(s, depth, fmt.Sprintf("translate(%s)", formatVec(d.Offset)))
	case csg.KindRotate:
		d := s.Data.(csg.RotateData)
		return e.encodeWrapper(s, depth, fmt.Sprintf("rotate(a=%s, v=%s)", formatFloat(d.Angle), formatVec(d.Axis)))
	case csg.KindUnion:
		return e.encodeWrapper(s, depth, "union()")
	case csg.KindDifference:
		return e.encodeWrapper(s, depth, "difference()")
	case csg.KindHull:
		return e.encodeWrapper(s, depth, "hull()")
	case csg.KindColor:
		d := s.Data.(csg.ColorData)
		return e.encodeWrapper(s, depth, fmt.Sprintf("color(%q)", d.Name))
	default:
		return fmt.Errorf("scad: unknown node kind %q", s.Kind)
	}
}

func (e *Encoder) encodePrimitive(s *csg.Solid, depth int) error {
	d, ok := s.Data.(csg.CylinderData)
	if !ok {
		return fmt.Errorf("scad: primitive node has data type %T", s.Data)
	}
	var radii string
	if d.RBottom == d.RTop {
		radii = "r=" + formatFloat(d.RBottom)
	} else {
		radii = "r1=" + formatFloat(d.RBottom) + ", r2=" + formatFloat(d.RTop)
	}
	center := ""
	if d.Centered {
		center = ", center=true"
	}
	return e.printf("%scylinder(h=%s, %s%s);\n", indent(depth), formatFloat(d.H), radii, center)
}

// encodeWrapper emits a block form: "head {" children "}".
func (e *Encoder) encodeWrapper(s *csg.Solid, depth int, head string) error {
	if err := e.printf("%s%s {\n", indent(depth), head); err != nil {
		return err
	}
	for _, c := range s.Children {
		if c == nil {
			return fmt.Errorf("scad: %s node has nil child", s.Kind)
		}
		if err := e.encodeNode(c, depth+1); err != nil {
			return err
		}
	}
	return e.printf("%s}\n", indent(depth))
}

func (e *Encoder) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(e.w, format, args...)
	return err
}

// Marshal returns the OpenSCAD description of s as a byte slice.
func Marshal(s *csg.Solid) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile marshals s and writes it to path, creating or truncating
// the file. I/O failures propagate to the caller; nothing is written
// when marshaling fails.
func WriteFile(path string, s *csg.Solid) error {
	b, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("scad: write %s: %w", path, err)
	}
	return nil
}

// formatFloat renders v with the shortest decimal representation that
// round-trips, keeping output stable across runs.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatVec(v csg.Vec3) string {
	return "[" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ", " + formatFloat(v.Z) + "]"
}

func indent(depth int) string {
	const step = "  "
	b := make([]byte, 0, len(step)*depth)
	for i := 0; i < depth; i++ {
		b = append(b, step...)
	}
	return string(b)
}
