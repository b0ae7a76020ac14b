package matching

// Interpretation maps a numeric score to a presentation band.
type Interpretation struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Interpret returns the band for a 0-100 score. Total function: every
// integer gets a band, and a higher score never gets a worse band.
func Interpret(score int) Interpretation {
	switch {
	case score >= 85:
		return Interpretation{
			Label:       "Excellent match",
			Description: "This job aligns very well with your profile and preferences.",
			Color:       "green",
		}
	case score >= 70:
		return Interpretation{
			Label:       "Good match",
			Description: "This job matches most of your profile and preferences.",
			Color:       "blue",
		}
	case score >= 55:
		return Interpretation{
			Label:       "Moderate match",
			Description: "This job partially matches your profile; review the gaps.",
			Color:       "yellow",
		}
	default:
		return Interpretation{
			Label:       "Poor match",
			Description: "This job diverges significantly from your profile and preferences.",
			Color:       "red",
		}
	}
}
