package entity

// AgeBracket is the user's preferred age group for event filtering.
type AgeBracket string

const (
	BracketToddlers AgeBracket = "toddlers"
	BracketChildren AgeBracket = "children"
	BracketTeens    AgeBracket = "teens"
	BracketAdults   AgeBracket = "adults"
)

// Range returns the inclusive [min, max] ages covered by the bracket.
// Unknown brackets return ok=false and must not filter anything out.
func (b AgeBracket) Range() (minAge, maxAge int, ok bool) {
	switch b {
	case BracketToddlers:
		return 0, 5, true
	case BracketChildren:
		return 6, 12, true
	case BracketTeens:
		return 13, 17, true
	case BracketAdults:
		return 18, 99, true
	}

	return 0, 0, false
}
