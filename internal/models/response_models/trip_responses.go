package response_models

// ActionLink points at either an external URL or a named demo skill.
type ActionLink struct {
	Type        ActionLinkType `json:"type"`
	DisplayText string         `json:"displayText"`
	Target      string         `json:"target"`
}

type ActionLinkType string

const (
	ActionLinkURL   ActionLinkType = "url"
	ActionLinkSkill ActionLinkType = "skill"
)

type WarningSeverity string

const (
	SeverityLow    WarningSeverity = "low"
	SeverityMedium WarningSeverity = "medium"
	SeverityHigh   WarningSeverity = "high"
)

type Deal struct {
	ID          string     `json:"id"`
	Provider    string     `json:"provider"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Action      ActionLink `json:"action"`
}

type Attraction struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Deals       []Deal  `json:"deals,omitempty"`
}

type Warning struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Type        string          `json:"type"`
	Severity    WarningSeverity `json:"severity"`
	Description string          `json:"description"`
}

type Hotel struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Rating           float64     `json:"rating"`
	PricePerNight    float64     `json:"pricePerNight"`
	Action           ActionLink  `json:"action"`
	ExpertHelpAction *ActionLink `json:"expertHelpAction,omitempty"`
	Amenities        []string    `json:"amenities"`
}

// Waypoint is one stop along a generated trip with everything a traveler
// can drill into at that stop.
type Waypoint struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Attractions []Attraction `json:"attractions"`
	Warnings    []Warning    `json:"warnings"`
	Deals       []Deal       `json:"deals"`
	Hotels      []Hotel      `json:"hotels"`
}

// TripResult is the full generated itinerary. Waypoints are in travel order;
// Steps is the human-readable turn-by-turn list from the same generation
// event. ID is empty until the result has been persisted.
type TripResult struct {
	ID            string     `json:"id,omitempty"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	TotalDistance string     `json:"totalDistance"`
	TotalDuration string     `json:"totalDuration"`
	Waypoints     []Waypoint `json:"waypoints"`
	Steps         []string   `json:"steps"`
}

// Trip is the summary row shown in trip lists.
type Trip struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Dates           string  `json:"dates"`
	PlannedProgress float64 `json:"plannedProgress"`
	IconName        string  `json:"iconName"`
}
