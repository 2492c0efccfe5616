package packer

import "packgen/pkg/csg"

// Assembly placement. Offsets are literal constants from the original
// tool drawing, not computed from neighbor heights: adjoining solids
// are sized to overlap or abut. The lower housing's nose reaches local
// z = -80, so at offset 170 its lowest point (z = 90) sits inside the
// tail tubing's 0–150 span and the two fuse into one gap-free joint.
const (
	tubingLength  = 150.0
	lowerHousingZ = 170.0
	sealingStackZ = 290.0
	upperHousingZ = 429.0
	topTubingZ    = 779.0

	// The bore spans z ∈ [-2000, 2000], comfortably past both ends of
	// the ~929-unit assembled tool, so the through-bore is continuous
	// regardless of total length.
	boreHeight = 4000.0
)

// Component pairs a named solid subtree with the absolute z offset of
// its local origin in the assembly.
type Component struct {
	Name   string
	Offset float64
	Solid  *csg.Solid
}

// Components builds the five axial components in bottom-to-top order.
// Each builder is a pure function of cfg; no component reads another's
// geometry.
func Components(cfg Config) []Component {
	return []Component{
		{Name: "tail-tubing", Offset: 0, Solid: Tubing(cfg, tubingLength)},
		{Name: "lower-housing", Offset: lowerHousingZ, Solid: LowerHousing(cfg)},
		{Name: "sealing-stack", Offset: sealingStackZ, Solid: SealingStack(cfg)},
		{Name: "upper-housing", Offset: upperHousingZ, Solid: UpperHousing(cfg)},
		{Name: "top-tubing", Offset: topTubingZ, Solid: Tubing(cfg, tubingLength)},
	}
}

// Assemble validates cfg, places the five components at their absolute
// offsets, unions them into one composite solid, and subtracts the
// full-length bore centered on the main axis. The returned tree is the
// terminal artifact handed to an exporter.
func Assemble(cfg Config) (*csg.Solid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	placed := make([]*csg.Solid, 0, 5)
	for _, c := range Components(cfg) {
		s := c.Solid
		if c.Offset != 0 {
			s = csg.Translate(csg.Vec3{Z: c.Offset}, s)
		}
		placed = append(placed, s)
	}

	bore := csg.Cylinder(boreHeight, cfg.BoreRadius, true)
	return csg.Difference(csg.Union(placed...), bore), nil
}
