package signalplan

import "github.com/spf13/viper"

// Policy holds the duration tunables of the scheduler. The defaults match
// the signal-timing constants the system has always shipped with; they are
// policy values, not derived quantities, so they are overridable via config.
type Policy struct {
	DefaultGreen  int
	DefaultYellow int

	AmbulanceGreen  int
	FireEngineGreen int

	HighDensityThreshold   int
	MediumDensityThreshold int
	HighDensityGreen       int
	MediumDensityGreen     int

	YieldAllGreen     int
	YieldAllClearance int
}

func DefaultPolicy() Policy {
	return Policy{
		DefaultGreen:  30,
		DefaultYellow: 5,

		AmbulanceGreen:  60,
		FireEngineGreen: 45,

		HighDensityThreshold:   20,
		MediumDensityThreshold: 10,
		HighDensityGreen:       45,
		MediumDensityGreen:     35,

		YieldAllGreen:     10,
		YieldAllClearance: 3,
	}
}

// PolicyFromConfig reads the scheduler tunables from viper, falling back
// to the defaults for any key not present.
func PolicyFromConfig() Policy {
	def := DefaultPolicy()

	viper.SetDefault("SIGNAL_DEFAULT_GREEN", def.DefaultGreen)
	viper.SetDefault("SIGNAL_DEFAULT_YELLOW", def.DefaultYellow)
	viper.SetDefault("SIGNAL_AMBULANCE_GREEN", def.AmbulanceGreen)
	viper.SetDefault("SIGNAL_FIRE_ENGINE_GREEN", def.FireEngineGreen)
	viper.SetDefault("SIGNAL_HIGH_DENSITY_THRESHOLD", def.HighDensityThreshold)
	viper.SetDefault("SIGNAL_MEDIUM_DENSITY_THRESHOLD", def.MediumDensityThreshold)
	viper.SetDefault("SIGNAL_HIGH_DENSITY_GREEN", def.HighDensityGreen)
	viper.SetDefault("SIGNAL_MEDIUM_DENSITY_GREEN", def.MediumDensityGreen)
	viper.SetDefault("SIGNAL_YIELD_ALL_GREEN", def.YieldAllGreen)
	viper.SetDefault("SIGNAL_YIELD_ALL_CLEARANCE", def.YieldAllClearance)

	return Policy{
		DefaultGreen:  viper.GetInt("SIGNAL_DEFAULT_GREEN"),
		DefaultYellow: viper.GetInt("SIGNAL_DEFAULT_YELLOW"),

		AmbulanceGreen:  viper.GetInt("SIGNAL_AMBULANCE_GREEN"),
		FireEngineGreen: viper.GetInt("SIGNAL_FIRE_ENGINE_GREEN"),

		HighDensityThreshold:   viper.GetInt("SIGNAL_HIGH_DENSITY_THRESHOLD"),
		MediumDensityThreshold: viper.GetInt("SIGNAL_MEDIUM_DENSITY_THRESHOLD"),
		HighDensityGreen:       viper.GetInt("SIGNAL_HIGH_DENSITY_GREEN"),
		MediumDensityGreen:     viper.GetInt("SIGNAL_MEDIUM_DENSITY_GREEN"),

		YieldAllGreen:     viper.GetInt("SIGNAL_YIELD_ALL_GREEN"),
		YieldAllClearance: viper.GetInt("SIGNAL_YIELD_ALL_CLEARANCE"),
	}
}
