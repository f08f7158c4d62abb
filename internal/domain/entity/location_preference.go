package entity

// LocationSource records how a location preference was chosen.
type LocationSource string

const (
	SourceDevice LocationSource = "device"
	SourceManual LocationSource = "manual"
)

// LocationPreference is the user's last chosen search location and radius.
// It is created on first selection and overwritten on every change; there is
// no expiry and no server-side lifecycle beyond the owning user.
type LocationPreference struct {
	Coordinate  *Coordinate    `json:"coordinate,omitempty"`
	Label       string         `json:"label"`
	RadiusMiles int            `json:"radius_miles"`
	Source      LocationSource `json:"source"`
}
