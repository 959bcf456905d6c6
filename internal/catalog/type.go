package catalog

import "fmt"

// StructuralType identifies one of the eight supported shed topologies.
type StructuralType int

const (
	// Symmetric is a classic two-pan gable with the ridge at mid-span.
	Symmetric StructuralType = iota
	// Asymmetric is a two-pan gable with an off-center ridge and no
	// intermediate pole row.
	Asymmetric
	// AsymmetricPole is the asymmetric gable carried by a mid-span pole
	// row under the ridge.
	AsymmetricPole
	// MonoPitch is a single pan sloping from the high eave to the low eave.
	MonoPitch
	// CarportLeft is an open canopy leaning down toward the left edge.
	CarportLeft
	// CarportRight is an open canopy leaning down toward the right edge.
	CarportRight
	// CarportDouble is an open canopy leaning on pole rows at both
	// quarter points.
	CarportDouble
	// CarportFlat is a flat canopy on a central pole row; panels sit on
	// tilt-adjustable mounts.
	CarportFlat
)

var typeNames = map[StructuralType]string{
	Symmetric:      "symmetric",
	Asymmetric:     "asymmetric",
	AsymmetricPole: "asymmetric-pole",
	MonoPitch:      "mono-pitch",
	CarportLeft:    "carport-left",
	CarportRight:   "carport-right",
	CarportDouble:  "carport-double",
	CarportFlat:    "carport-flat",
}

func (t StructuralType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("StructuralType(%d)", int(t))
}

// ParseType resolves a CLI/file spelling of a structural type.
func ParseType(s string) (StructuralType, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown structural type %q", s)
}

// Types lists all structural types in declaration order.
func Types() []StructuralType {
	return []StructuralType{
		Symmetric, Asymmetric, AsymmetricPole, MonoPitch,
		CarportLeft, CarportRight, CarportDouble, CarportFlat,
	}
}

// RidgeRule selects how the ridge position is resolved for a type.
type RidgeRule int

const (
	// RidgeCenter puts the ridge at width/2.
	RidgeCenter RidgeRule = iota
	// RidgeNone means no true ridge; the position is reported as 0.
	RidgeNone
	// RidgeOffset resolves explicit variant offset, then the pitch formula.
	RidgeOffset
	// RidgeOffsetLegacy resolves explicit offset, then the legacy
	// left-zone width, then the pitch formula.
	RidgeOffsetLegacy
)

// PoleRule selects whether a type carries intermediate pole rows.
type PoleRule int

const (
	PoleNever PoleRule = iota
	PoleAlways
	// PoleAboveWidth requires poles only when width exceeds
	// SymmetricPoleMinWidthM.
	PoleAboveWidth
)

// Properties captures the fixed per-type derivation rules. The table
// below is the single dispatch point for type-specific behavior; every
// StructuralType must have an entry.
type Properties struct {
	NominalPitchDeg float64
	// TwoPan types split the span into a left pan B and right pan A at
	// the ridge; single-pan types put the whole span in pan A.
	TwoPan    bool
	RidgeRule RidgeRule
	PoleRule  PoleRule
	// PoleFractions are the default pole-row offsets as fractions of the
	// span width, used when neither the variant nor the ridge position
	// provides one.
	PoleFractions []float64
	// AlwaysPV marks types whose panels sit on adjustable mounts, making
	// the pitch window irrelevant.
	AlwaysPV bool
}

var typeProperties = map[StructuralType]Properties{
	Symmetric: {
		NominalPitchDeg: 12,
		TwoPan:          true,
		RidgeRule:       RidgeCenter,
		PoleRule:        PoleAboveWidth,
		PoleFractions:   []float64{0.5},
	},
	Asymmetric: {
		NominalPitchDeg: 15,
		TwoPan:          true,
		RidgeRule:       RidgeOffset,
		PoleRule:        PoleNever,
	},
	AsymmetricPole: {
		NominalPitchDeg: 15,
		TwoPan:          true,
		RidgeRule:       RidgeOffsetLegacy,
		PoleRule:        PoleAlways,
		PoleFractions:   []float64{0.5},
	},
	MonoPitch: {
		NominalPitchDeg: 12,
		RidgeRule:       RidgeNone,
		PoleRule:        PoleNever,
	},
	CarportLeft: {
		NominalPitchDeg: 5,
		RidgeRule:       RidgeNone,
		PoleRule:        PoleAlways,
		PoleFractions:   []float64{0.25},
	},
	CarportRight: {
		NominalPitchDeg: 5,
		RidgeRule:       RidgeNone,
		PoleRule:        PoleAlways,
		PoleFractions:   []float64{0.75},
	},
	CarportDouble: {
		NominalPitchDeg: 5,
		RidgeRule:       RidgeNone,
		PoleRule:        PoleAlways,
		PoleFractions:   []float64{0.25, 0.75},
	},
	CarportFlat: {
		NominalPitchDeg: 0,
		RidgeRule:       RidgeNone,
		PoleRule:        PoleAlways,
		PoleFractions:   []float64{0.5},
		AlwaysPV:        true,
	},
}

// PropertiesOf returns the fixed derivation rules for a type.
func PropertiesOf(t StructuralType) Properties {
	return typeProperties[t]
}

// PVEligiblePitch reports whether a pan at the given nominal pitch may
// carry panels.
func PVEligiblePitch(pitchDeg float64) bool {
	return pitchDeg >= MinPVPitchDeg && pitchDeg <= MaxPVPitchDeg
}
