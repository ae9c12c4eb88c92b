package planner

import resp "roadtrip/internal/models/response_models"

// FrameKind discriminates the view-frame union. The payload fields of Frame
// that are meaningful depend on the kind; everything else stays zero.
type FrameKind string

const (
	FrameHome        FrameKind = "home"
	FrameNewTrip     FrameKind = "newTrip"
	FrameTripResults FrameKind = "tripResults"
	FrameAttractions FrameKind = "attractions"
	FrameWarnings    FrameKind = "warnings"
	FrameDeals       FrameKind = "deals"
	FrameHotels      FrameKind = "hotels"
	FrameExpertHelp  FrameKind = "expertHelp"
	FrameSettings    FrameKind = "settings"
	FrameLogin       FrameKind = "login"
	FrameTripDetail  FrameKind = "tripDetail"
)

// Frame is one entry in the navigation stack: a screen plus the data that
// screen needs, copied in at transition time.
type Frame struct {
	Kind FrameKind

	TripResult  resp.TripResult // tripResults
	Waypoint    resp.Waypoint   // attractions, warnings, hotels
	Deals       []resp.Deal     // deals
	ContextName string          // deals
	Hotel       resp.Hotel      // expertHelp
	Trip        resp.Trip       // tripDetail
}

func HomeFrame() Frame     { return Frame{Kind: FrameHome} }
func NewTripFrame() Frame  { return Frame{Kind: FrameNewTrip} }
func SettingsFrame() Frame { return Frame{Kind: FrameSettings} }
func LoginFrame() Frame    { return Frame{Kind: FrameLogin} }

func TripResultsFrame(tripResult resp.TripResult) Frame {
	return Frame{Kind: FrameTripResults, TripResult: tripResult}
}

func AttractionsFrame(waypoint resp.Waypoint) Frame {
	return Frame{Kind: FrameAttractions, Waypoint: waypoint}
}

func WarningsFrame(waypoint resp.Waypoint) Frame {
	return Frame{Kind: FrameWarnings, Waypoint: waypoint}
}

func DealsFrame(deals []resp.Deal, contextName string) Frame {
	return Frame{Kind: FrameDeals, Deals: deals, ContextName: contextName}
}

func HotelsFrame(waypoint resp.Waypoint) Frame {
	return Frame{Kind: FrameHotels, Waypoint: waypoint}
}

func ExpertHelpFrame(hotel resp.Hotel) Frame {
	return Frame{Kind: FrameExpertHelp, Hotel: hotel}
}

func TripDetailFrame(trip resp.Trip) Frame {
	return Frame{Kind: FrameTripDetail, Trip: trip}
}

func knownKind(kind FrameKind) bool {
	switch kind {
	case FrameHome, FrameNewTrip, FrameTripResults, FrameAttractions,
		FrameWarnings, FrameDeals, FrameHotels, FrameExpertHelp,
		FrameSettings, FrameLogin, FrameTripDetail:
		return true
	}
	return false
}
