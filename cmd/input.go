package cmd

import (
	"fmt"

	"github.com/pvshed/pvshed/internal/catalog"
	"github.com/pvshed/pvshed/internal/geometry"
	"github.com/pvshed/pvshed/internal/panel"
	"github.com/spf13/cobra"
)

// buildingFlags is the flag set shared by the commands that configure a
// full shed (derive, price).
type buildingFlags struct {
	typeName string
	width    float64
	spacing  float64
	bays     int

	leftEave  float64
	rightEave float64
	ridge     float64

	extLeft  float64
	extRight float64
	color    string

	variantsFile string
}

func (f *buildingFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.typeName, "type", "t", "", "Structural type (symmetric, asymmetric, asymmetric-pole, mono-pitch, carport-left, carport-right, carport-double, carport-flat) [required]")
	c.Flags().Float64VarP(&f.width, "width", "w", 0, "Span width (m) [required]")
	c.Flags().Float64VarP(&f.spacing, "spacing", "s", catalog.SpacingWide, "Bay spacing (m)")
	c.Flags().IntVarP(&f.bays, "bays", "n", 1, "Number of bays (1-20)")

	c.Flags().Float64Var(&f.leftEave, "left-eave", 0, "Left eave height (m); 0 = catalog default")
	c.Flags().Float64Var(&f.rightEave, "right-eave", 0, "Right eave height (m); 0 = catalog default")
	c.Flags().Float64Var(&f.ridge, "ridge", 0, "Ridge height (m); 0 = catalog default")

	c.Flags().Float64Var(&f.extLeft, "ext-left", 0, "Left extension width (m)")
	c.Flags().Float64Var(&f.extRight, "ext-right", 0, "Right extension width (m)")
	c.Flags().StringVar(&f.color, "color", "", "Structure color (RAL)")

	c.Flags().StringVar(&f.variantsFile, "variants", "", "TOML variant override file")

	c.MarkFlagRequired("type")
	c.MarkFlagRequired("width")
}

func (f *buildingFlags) params() (geometry.BuildingParameters, error) {
	t, err := catalog.ParseType(f.typeName)
	if err != nil {
		return geometry.BuildingParameters{}, err
	}

	p := geometry.BuildingParameters{
		Type:        t,
		Width:       f.width,
		Spacing:     f.spacing,
		BayCount:    f.bays,
		LeftEave:    f.leftEave,
		RightEave:   f.rightEave,
		RidgeHeight: f.ridge,
		Color:       f.color,
	}
	if f.extLeft > 0 {
		p.LeftExtension = &geometry.Extension{Kind: "lean-to", Width: f.extLeft}
	}
	if f.extRight > 0 {
		p.RightExtension = &geometry.Extension{Kind: "lean-to", Width: f.extRight}
	}
	return p, nil
}

// registry builds the catalog registry, loading the override file when one
// was given.
func (f *buildingFlags) registry() (*catalog.Registry, error) {
	reg := catalog.NewRegistry()
	if f.variantsFile == "" {
		return reg, nil
	}
	set, err := catalog.LoadOverrides(f.variantsFile)
	if err != nil {
		return nil, err
	}
	reg.ReplaceOverrides(set)
	newLogger().Debug("installed variant overrides", "file", f.variantsFile, "entries", len(set))
	return reg, nil
}

// panelFlags configures the panel model and layout parameters.
type panelFlags struct {
	length float64
	width  float64
	power  float64

	margin      float64
	gap         float64
	orientation string
}

func (f *panelFlags) register(c *cobra.Command) {
	c.Flags().Float64Var(&f.length, "panel-length", panel.DefaultModel.Length, "Panel long side (m)")
	c.Flags().Float64Var(&f.width, "panel-width", panel.DefaultModel.Width, "Panel short side (m)")
	c.Flags().Float64Var(&f.power, "panel-power", panel.DefaultModel.PowerW, "Panel rated power (W)")

	c.Flags().Float64Var(&f.margin, "margin", panel.DefaultParameters.Margin, "Clearance from surface edges (m)")
	c.Flags().Float64Var(&f.gap, "gap", panel.DefaultParameters.Gap, "Gap between panels (m)")
	c.Flags().StringVar(&f.orientation, "orientation", "auto", "Panel orientation (auto, portrait, landscape)")
}

func (f *panelFlags) model() panel.Model {
	return panel.Model{Length: f.length, Width: f.width, PowerW: f.power}
}

func (f *panelFlags) layoutParams() (panel.Parameters, error) {
	p := panel.Parameters{Margin: f.margin, Gap: f.gap}
	switch f.orientation {
	case "auto", "":
		p.Orientation = panel.OrientationAuto
	case "portrait":
		p.Orientation = panel.OrientationPortrait
	case "landscape":
		p.Orientation = panel.OrientationLandscape
	default:
		return p, fmt.Errorf("unknown orientation %q", f.orientation)
	}
	return p, nil
}
