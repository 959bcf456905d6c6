package catalog

// Built-in catalog. Heights and offsets come from the standard frame
// drawings for each span; widths are the commercially offered spans per
// type. Admin overrides replace matching keys at runtime (registry.go).

var builtinVariants = []Variant{
	// Symmetric gables
	{Type: Symmetric, Width: 10, LeftEave: 4, RightEave: 4, RidgeHeight: 5.05},
	{Type: Symmetric, Width: 12, LeftEave: 4, RightEave: 4, RidgeHeight: 5.3},
	{Type: Symmetric, Width: 15, LeftEave: 4.5, RightEave: 4.5, RidgeHeight: 6.1},
	{Type: Symmetric, Width: 18, LeftEave: 4.5, RightEave: 4.5, RidgeHeight: 6.4},
	{Type: Symmetric, Width: 20, LeftEave: 5, RightEave: 5, RidgeHeight: 7.15},
	{Type: Symmetric, Width: 22, LeftEave: 5, RightEave: 5, RidgeHeight: 7.35},
	{Type: Symmetric, Width: 25, LeftEave: 5, RightEave: 5, RidgeHeight: 7.65},

	// Asymmetric gables, no intermediate poles
	{Type: Asymmetric, Width: 12, LeftEave: 6, RightEave: 4, RidgeHeight: 6.8, RidgeOffset: 3},
	{Type: Asymmetric, Width: 15, LeftEave: 6.5, RightEave: 4, RidgeHeight: 7.5, RidgeOffset: 3.75},
	{Type: Asymmetric, Width: 18, LeftEave: 6.5, RightEave: 4, RidgeHeight: 7.7, RidgeOffset: 4.5},
	{Type: Asymmetric, Width: 20, LeftEave: 6.9, RightEave: 4.5, RidgeHeight: 8.2, RidgeOffset: 5},

	// Asymmetric gables on a mid-span pole row
	{Type: AsymmetricPole, Width: 20, LeftEave: 6.5, RightEave: 4, RidgeHeight: 8.4, RidgeOffset: 5.2},
	{Type: AsymmetricPole, Width: 25.5, LeftEave: 6.9, RightEave: 4, RidgeHeight: 8.9, RidgeOffset: 6.55},
	{Type: AsymmetricPole, Width: 30, LeftEave: 7.2, RightEave: 4.5, RidgeHeight: 9.3, RidgeOffset: 7.6, ZoneLeft: 7.6, ZoneRight: 22.4},

	// Mono-pitch sheds
	{Type: MonoPitch, Width: 8, LeftEave: 5.7, RightEave: 4},
	{Type: MonoPitch, Width: 10, LeftEave: 6.1, RightEave: 4},
	{Type: MonoPitch, Width: 12, LeftEave: 6.55, RightEave: 4},

	// Canopies
	{Type: CarportLeft, Width: 5, LeftEave: 2.3, RightEave: 2.75},
	{Type: CarportLeft, Width: 6, LeftEave: 2.3, RightEave: 2.85},
	{Type: CarportLeft, Width: 8, LeftEave: 2.3, RightEave: 3},
	{Type: CarportRight, Width: 5, LeftEave: 2.75, RightEave: 2.3},
	{Type: CarportRight, Width: 6, LeftEave: 2.85, RightEave: 2.3},
	{Type: CarportRight, Width: 8, LeftEave: 3, RightEave: 2.3},
	{Type: CarportDouble, Width: 10, LeftEave: 2.5, RightEave: 2.95},
	{Type: CarportDouble, Width: 12, LeftEave: 2.5, RightEave: 3.05},
	{Type: CarportFlat, Width: 5, LeftEave: 2.6, RightEave: 2.6},
	{Type: CarportFlat, Width: 6, LeftEave: 2.6, RightEave: 2.6},
	{Type: CarportFlat, Width: 8, LeftEave: 2.8, RightEave: 2.8},
	{Type: CarportFlat, Width: 10, LeftEave: 2.8, RightEave: 2.8},
}

var builtins = func() map[Key]Variant {
	m := make(map[Key]Variant, len(builtinVariants))
	for _, v := range builtinVariants {
		m[Key{v.Type, v.Width}] = v
	}
	return m
}()

// Builtins returns a copy of the built-in catalog.
func Builtins() map[Key]Variant {
	m := make(map[Key]Variant, len(builtins))
	for k, v := range builtins {
		m[k] = v
	}
	return m
}
