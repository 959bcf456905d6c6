package catalog

import (
	"math"
	"sync"
	"testing"
)

func TestLookupBuiltin(t *testing.T) {
	reg := NewRegistry()

	v, ok := reg.Lookup(AsymmetricPole, 25.5)
	if !ok {
		t.Fatal("expected builtin variant for asymmetric-pole/25.5")
	}
	if v.RidgeOffset != 6.55 || v.RidgeHeight != 8.9 || v.LeftEave != 6.9 || v.RightEave != 4 {
		t.Errorf("unexpected variant data: %+v", v)
	}
	if v.Synthesized {
		t.Error("builtin variant must not be flagged synthesized")
	}
}

func TestLookupMiss(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Lookup(Symmetric, 13.37); ok {
		t.Error("expected miss for uncataloged width")
	}
}

func TestOverridePrecedence(t *testing.T) {
	reg := NewRegistry()

	override := Variant{Type: Symmetric, Width: 15, LeftEave: 5, RightEave: 5, RidgeHeight: 7}
	reg.ReplaceOverrides(map[Key]Variant{{Symmetric, 15}: override})

	v, ok := reg.Lookup(Symmetric, 15)
	if !ok {
		t.Fatal("expected override hit")
	}
	if v.RidgeHeight != 7 {
		t.Errorf("override not applied: got ridge %.2f, want 7", v.RidgeHeight)
	}

	// non-matching keys still hit the builtins
	if _, ok := reg.Lookup(Symmetric, 10); !ok {
		t.Error("builtin lost after override install")
	}

	reg.ResetToDefaults()
	v, _ = reg.Lookup(Symmetric, 15)
	if v.RidgeHeight == 7 {
		t.Error("override survived ResetToDefaults")
	}
	if reg.OverrideCount() != 0 {
		t.Errorf("expected 0 overrides after reset, got %d", reg.OverrideCount())
	}
}

func TestReplaceOverridesIsWholesale(t *testing.T) {
	reg := NewRegistry()

	reg.ReplaceOverrides(map[Key]Variant{
		{Symmetric, 15}: {Type: Symmetric, Width: 15, RidgeHeight: 7},
	})
	reg.ReplaceOverrides(map[Key]Variant{
		{Symmetric, 10}: {Type: Symmetric, Width: 10, RidgeHeight: 6},
	})

	// the first set must be gone, not merged
	v, _ := reg.Lookup(Symmetric, 15)
	if v.RidgeHeight == 7 {
		t.Error("ReplaceOverrides merged instead of swapping")
	}
	if reg.OverrideCount() != 1 {
		t.Errorf("expected 1 override, got %d", reg.OverrideCount())
	}
}

func TestResolveOrSynthesize(t *testing.T) {
	reg := NewRegistry()

	// catalog hit: no synthesis
	v := reg.ResolveOrSynthesize(Symmetric, 15)
	if v.Synthesized {
		t.Error("catalog hit must not synthesize")
	}

	// miss: 4 m eaves, ridge from a 10° pitch at mid-span
	v = reg.ResolveOrSynthesize(Symmetric, 13.37)
	if !v.Synthesized {
		t.Fatal("expected synthesized variant")
	}
	if v.LeftEave != 4 || v.RightEave != 4 {
		t.Errorf("expected 4 m eaves, got %.2f / %.2f", v.LeftEave, v.RightEave)
	}
	wantRidge := 4 + math.Tan(10*math.Pi/180)*13.37/2
	if math.Abs(v.RidgeHeight-wantRidge) > 1e-9 {
		t.Errorf("ridge = %.4f, want %.4f", v.RidgeHeight, wantRidge)
	}
}

func TestSynthesizeSinglePan(t *testing.T) {
	reg := NewRegistry()

	// mono-pitch rises over the full run
	v := reg.ResolveOrSynthesize(MonoPitch, 9)
	wantLeft := 4 + math.Tan(10*math.Pi/180)*9
	if math.Abs(v.LeftEave-wantLeft) > 1e-9 || v.RightEave != 4 {
		t.Errorf("mono-pitch synthesis: eaves %.4f / %.4f, want %.4f / 4", v.LeftEave, v.RightEave, wantLeft)
	}

	// flat stays flat
	v = reg.ResolveOrSynthesize(CarportFlat, 7)
	if v.LeftEave != 4 || v.RightEave != 4 {
		t.Errorf("flat synthesis must keep both eaves at 4 m, got %.2f / %.2f", v.LeftEave, v.RightEave)
	}
}

func TestConcurrentSwapAndLookup(t *testing.T) {
	reg := NewRegistry()
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			reg.ReplaceOverrides(map[Key]Variant{
				{Symmetric, 15}: {Type: Symmetric, Width: 15, RidgeHeight: float64(i)},
			})
		}
		close(done)
	}()

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				v, ok := reg.Lookup(Symmetric, 15)
				if !ok {
					t.Error("lookup missed during swap")
					return
				}
				// an override table is either fully old or fully new
				if v.Type != Symmetric || v.Width != 15 {
					t.Errorf("torn read: %+v", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestPVEligiblePitch(t *testing.T) {
	cases := []struct {
		pitch float64
		want  bool
	}{
		{4.99, false},
		{5, true},
		{12, true},
		{35, true},
		{35.01, false},
		{0, false},
	}
	for _, c := range cases {
		if got := PVEligiblePitch(c.pitch); got != c.want {
			t.Errorf("PVEligiblePitch(%.2f) = %v, want %v", c.pitch, got, c.want)
		}
	}
}

func TestPropertiesTableIsExhaustive(t *testing.T) {
	for _, st := range Types() {
		props := PropertiesOf(st)
		if props.PoleRule == PoleAlways && len(props.PoleFractions) == 0 {
			t.Errorf("%s: pole-bearing type without default fractions", st)
		}
		if _, ok := typeProperties[st]; !ok {
			t.Errorf("%s: missing properties entry", st)
		}
	}
}

func TestParseType(t *testing.T) {
	for _, st := range Types() {
		parsed, err := ParseType(st.String())
		if err != nil {
			t.Fatalf("ParseType(%q): %v", st.String(), err)
		}
		if parsed != st {
			t.Errorf("ParseType(%q) = %v, want %v", st.String(), parsed, st)
		}
	}
	if _, err := ParseType("dome"); err == nil {
		t.Error("expected error for unknown type")
	}
}
