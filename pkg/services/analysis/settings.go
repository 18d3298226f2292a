package analysis

// Settings contains configurable parameters shared by the analysis passes
type Settings struct {
	// AnomalyPercentile is the percentile (0-100) above which a value is
	// flagged as anomalous (default: 75)
	AnomalyPercentile float64
	// NightHours lists the hours of day treated as the night window
	// (default: 22:00-05:59)
	NightHours []int
}

// DefaultSettings returns the default configuration for analysis runs
func DefaultSettings() Settings {
	return Settings{
		AnomalyPercentile: 75,
		NightHours:        []int{22, 23, 0, 1, 2, 3, 4, 5},
	}
}
