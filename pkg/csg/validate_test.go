package csg

import (
	"strings"
	"testing"
)

func TestValidateAcceptsWellFormedTree(t *testing.T) {
	tree := Difference(
		Union(
			Color("DimGray", Cylinder(120, 68, false)),
			Translate(Vec3{Z: 170}, Frustum(70, 40, 68, false)),
			Hull(
				Translate(Vec3{Z: 35}, Rotate(90, Vec3{X: 1}, Cylinder(180, 8, true))),
				Translate(Vec3{Z: -35}, Rotate(90, Vec3{X: 1}, Cylinder(180, 8, true))),
			),
		),
		Cylinder(4000, 31, true),
	)
	if findings := Validate(tree); len(findings) != 0 {
		t.Errorf("valid tree produced %d findings: %v", len(findings), findings)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		tree *Solid
		want string // substring of the finding message
	}{
		{
			name: "zero height",
			tree: Cylinder(0, 10, false),
			want: "height is 0.0000",
		},
		{
			name: "negative bottom radius",
			tree: Frustum(10, -1, 5, false),
			want: "bottom radius is -1.0000",
		},
		{
			name: "negative top radius",
			tree: Frustum(10, 5, -1, false),
			want: "top radius is -1.0000",
		},
		{
			name: "zero rotation axis",
			tree: Rotate(90, Vec3{}, Cylinder(10, 5, false)),
			want: "rotation axis is the zero vector",
		},
		{
			name: "empty union",
			tree: &Solid{Kind: KindUnion, Data: UnionData{}},
			want: "union node has no children",
		},
		{
			name: "empty hull",
			tree: &Solid{Kind: KindHull, Data: HullData{}},
			want: "hull node has no children",
		},
		{
			name: "empty difference",
			tree: &Solid{Kind: KindDifference, Data: DifferenceData{}},
			want: "difference node has no children",
		},
		{
			name: "empty color name",
			tree: Color("", Cylinder(10, 5, false)),
			want: "color name is empty",
		},
		{
			name: "translate without child",
			tree: &Solid{Kind: KindTranslate, Data: TranslateData{}},
			want: "translate node has 0 children",
		},
		{
			name: "nil child",
			tree: &Solid{Kind: KindUnion, Data: UnionData{}, Children: []*Solid{nil}},
			want: "child 0 is nil",
		},
		{
			name: "unknown kind",
			tree: &Solid{Kind: Kind(42)},
			want: "unknown node kind 42",
		},
		{
			name: "wrong primitive data",
			tree: &Solid{Kind: KindPrimitive, Data: UnionData{}},
			want: "primitive node has data type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			findings := Validate(tc.tree)
			blocking := Errors(findings)
			if len(blocking) == 0 {
				t.Fatalf("expected blocking finding, got %v", findings)
			}
			found := false
			for _, f := range blocking {
				if strings.Contains(f.Message, tc.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("no finding containing %q in %v", tc.want, blocking)
			}
		})
	}
}

func TestValidateNilTree(t *testing.T) {
	findings := Validate(nil)
	if len(findings) != 1 || findings[0].Severity != SeverityError {
		t.Fatalf("Validate(nil) = %v, want one blocking finding", findings)
	}
}

func TestValidateSingleChildDifferenceWarns(t *testing.T) {
	tree := &Solid{
		Kind:     KindDifference,
		Data:     DifferenceData{},
		Children: []*Solid{Cylinder(10, 5, false)},
	}
	findings := Validate(tree)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %v", len(findings), findings)
	}
	if findings[0].Severity != SeverityWarning {
		t.Errorf("severity = %v, want warning", findings[0].Severity)
	}
	if len(Errors(findings)) != 0 {
		t.Error("a lone warning must not count as a blocking error")
	}
}

func TestValidationErrorPaths(t *testing.T) {
	// Invalid primitive nested two levels deep: the path must identify
	// it by kind and child index from the root.
	tree := Union(
		Cylinder(10, 5, false),
		Translate(Vec3{Z: 1}, Cylinder(-1, 5, false)),
	)
	findings := Validate(tree)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %v", len(findings), findings)
	}
	const wantPath = "union/translate[1]/primitive[0]"
	if findings[0].Path != wantPath {
		t.Errorf("path = %q, want %q", findings[0].Path, wantPath)
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{
		Path:     "union/primitive[0]",
		Message:  "height is 0.0000, must be positive",
		Severity: SeverityError,
	}
	want := "[error] union/primitive[0]: height is 0.0000, must be positive"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	rootless := ValidationError{Message: "solid tree is nil", Severity: SeverityError}
	if got := rootless.Error(); got != "[error] solid tree is nil" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" || SeverityWarning.String() != "warning" {
		t.Error("severity strings changed")
	}
	if got := ValidationSeverity(7).String(); got != "ValidationSeverity(7)" {
		t.Errorf("unknown severity = %q", got)
	}
}
