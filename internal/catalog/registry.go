package catalog

import "sync/atomic"

// Registry resolves (type, width) pairs to catalog variants. Reads hit an
// immutable built-in table plus an override table swapped wholesale under a
// single atomic reference, so concurrent readers never observe a partially
// installed override set.
type Registry struct {
	overrides atomic.Pointer[map[Key]Variant]
}

// NewRegistry returns a registry serving only the built-in catalog.
func NewRegistry() *Registry {
	r := &Registry{}
	empty := map[Key]Variant{}
	r.overrides.Store(&empty)
	return r
}

// Lookup returns the variant for (t, width), overrides taking precedence
// over built-ins. O(1), no I/O.
func (r *Registry) Lookup(t StructuralType, width float64) (Variant, bool) {
	ov := *r.overrides.Load()
	if v, ok := ov[Key{t, width}]; ok {
		return v, true
	}
	v, ok := builtins[Key{t, width}]
	return v, ok
}

// ReplaceOverrides installs set as the complete override table. The swap is
// atomic; the previous table keeps serving readers that already hold it.
// The caller must not mutate set afterwards.
func (r *Registry) ReplaceOverrides(set map[Key]Variant) {
	if set == nil {
		set = map[Key]Variant{}
	}
	r.overrides.Store(&set)
}

// ResetToDefaults discards all overrides.
func (r *Registry) ResetToDefaults() {
	empty := map[Key]Variant{}
	r.overrides.Store(&empty)
}

// OverrideCount reports how many override entries are installed.
func (r *Registry) OverrideCount() int {
	return len(*r.overrides.Load())
}

// Overrides returns a copy of the installed override table.
func (r *Registry) Overrides() map[Key]Variant {
	ov := *r.overrides.Load()
	m := make(map[Key]Variant, len(ov))
	for k, v := range ov {
		m[k] = v
	}
	return m
}

// ResolveOrSynthesize never misses: on a catalog miss it fabricates a
// variant from a flat 10° pitch on 4 m eaves, marked Synthesized so callers
// can tell fabricated geometry from cataloged geometry.
func (r *Registry) ResolveOrSynthesize(t StructuralType, width float64) Variant {
	if v, ok := r.Lookup(t, width); ok {
		return v
	}
	return synthesize(t, width)
}
