package csg

import "fmt"

// ValidationSeverity indicates whether a validation finding blocks
// export or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks export
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding. Path locates
// the offending node from the root, e.g. "union[1]/translate[0]".
type ValidationError struct {
	Path     string
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Path, e.Message)
}

// Validate runs structural checks on the solid tree rooted at s and
// returns a slice of findings. An empty slice means the tree is valid.
// Validate is read-only and never mutates the tree.
func Validate(s *Solid) []ValidationError {
	if s == nil {
		return []ValidationError{{Message: "solid tree is nil", Severity: SeverityError}}
	}
	return validateNode(s, s.Kind.String())
}

func validateNode(s *Solid, path string) []ValidationError {
	var errs []ValidationError

	fail := func(format string, args ...any) {
		errs = append(errs, ValidationError{
			Path:     path,
			Message:  fmt.Sprintf(format, args...),
			Severity: SeverityError,
		})
	}
	warn := func(format string, args ...any) {
		errs = append(errs, ValidationError{
			Path:     path,
			Message:  fmt.Sprintf(format, args...),
			Severity: SeverityWarning,
		})
	}

	switch s.Kind {
	case KindPrimitive:
		d, ok := s.Data.(CylinderData)
		if !ok {
			fail("primitive node has data type %T", s.Data)
			break
		}
		if d.H <= 0 {
			fail("height is %.4f, must be positive", d.H)
		}
		if d.RBottom <= 0 {
			fail("bottom radius is %.4f, must be positive", d.RBottom)
		}
		if d.RTop <= 0 {
			fail("top radius is %.4f, must be positive", d.RTop)
		}
		if len(s.Children) != 0 {
			fail("primitive node has %d children, want 0", len(s.Children))
		}

	case KindTranslate:
		if _, ok := s.Data.(TranslateData); !ok {
			fail("translate node has data type %T", s.Data)
		}
		if len(s.Children) != 1 {
			fail("translate node has %d children, want exactly 1", len(s.Children))
		}

	case KindRotate:
		d, ok := s.Data.(RotateData)
		if !ok {
			fail("rotate node has data type %T", s.Data)
			break
		}
		if d.Axis.IsZero() {
			fail("rotation axis is the zero vector")
		}
		if len(s.Children) != 1 {
			fail("rotate node has %d children, want exactly 1", len(s.Children))
		}

	case KindUnion, KindHull:
		if len(s.Children) == 0 {
			fail("%s node has no children", s.Kind)
		}

	case KindDifference:
		if len(s.Children) == 0 {
			fail("difference node has no children")
		} else if len(s.Children) == 1 {
			// Pass-through semantics: minuend unchanged. Legal but
			// almost always a construction mistake.
			warn("difference node has no subtrahends")
		}

	case KindColor:
		d, ok := s.Data.(ColorData)
		if !ok {
			fail("color node has data type %T", s.Data)
			break
		}
		if d.Name == "" {
			fail("color name is empty")
		}
		if len(s.Children) != 1 {
			fail("color node has %d children, want exactly 1", len(s.Children))
		}

	default:
		fail("unknown node kind %d", int(s.Kind))
	}

	for i, c := range s.Children {
		if c == nil {
			fail("child %d is nil", i)
			continue
		}
		childPath := fmt.Sprintf("%s/%s[%d]", path, c.Kind, i)
		errs = append(errs, validateNode(c, childPath)...)
	}

	return errs
}

// Errors filters findings down to blocking errors, discarding warnings.
func Errors(findings []ValidationError) []ValidationError {
	var out []ValidationError
	for _, f := range findings {
		if f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}
