package catalog

// Catalog-wide rule constants.

const (
	// PV eligibility window for a pan's nominal pitch (degrees).
	MinPVPitchDeg = 5.0
	MaxPVPitchDeg = 35.0

	// Fallback geometry used when a (type, width) pair has no catalog
	// entry: a flat 10° pitch on fixed 4 m eaves.
	SynthesisPitchDeg = 10.0
	SynthesisEaveM    = 4.0

	// Symmetric spans only get a mid-span pole row above this width.
	SymmetricPoleMinWidthM = 20.0

	// The two bay spacings the catalog is built around (m). Enforcing
	// them is the job of the upstream form validation, not this package.
	SpacingStandard = 5.0
	SpacingWide     = 6.0
)

// DefaultRulesetTag identifies the derivation rule revision stamped on
// every computed snapshot.
const DefaultRulesetTag = "rules-2024.1"
