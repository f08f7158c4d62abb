package entity

// Sensory attribute levels. Listings store these as plain strings so that
// partner-imported rows with unknown values still round-trip.
const (
	LevelQuiet    = "Quiet"
	LevelModerate = "Moderate"
	LevelLoud     = "Loud"

	LightingDim      = "Dim"
	LightingModerate = "Moderate"
	LightingBright   = "Bright"

	CrowdLow    = "Low"
	CrowdMedium = "Medium"
	CrowdHigh   = "High"
)

// SensoryAttributes is the structured noise/lighting/crowd/accessibility
// metadata attached to a listing. Embedded value object, no identity.
type SensoryAttributes struct {
	NoiseLevel           string `json:"noise_level"`
	Lighting             string `json:"lighting"`
	CrowdDensity         string `json:"crowd_density"`
	HasQuietSpace        bool   `json:"has_quiet_space"`
	WheelchairAccessible bool   `json:"wheelchair_accessible"`
	SensoryFriendlyHours bool   `json:"sensory_friendly_hours"`
}
