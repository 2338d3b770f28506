package builder

// Settings holds the knobs a Builder exposes around the core
// triangulator, serializable to and from YAML.
type Settings struct {
	// CoordDim is the coordinate stride Build passes to the triangulator.
	// LoadFile always stores flat (x,y) pairs, so data loaded that way
	// has stride 2.
	CoordDim int `yaml:"coord_dim"`

	// EnableLog and EnableTimer mirror BuildContext's own toggles.
	EnableLog   bool `yaml:"enable_log"`
	EnableTimer bool `yaml:"enable_timer"`

	// AbandonedCycleIsError turns a logged ear-clip abandonment into a
	// hard error from Build, for callers that would rather fail loudly
	// than silently ship a reduced triangle set.
	AbandonedCycleIsError bool `yaml:"abandoned_cycle_is_error"`

	// DisplayScale multiplies coordinates when the CLI prints its
	// summary. It never reaches the triangulator itself; Build's
	// output coordinates are always in input units.
	DisplayScale float64 `yaml:"display_scale"`
}

// NewSettings returns Settings filled with default values.
func NewSettings() Settings {
	return Settings{
		CoordDim:              2,
		EnableLog:             true,
		EnableTimer:           true,
		AbandonedCycleIsError: false,
		DisplayScale:          1.0,
	}
}
