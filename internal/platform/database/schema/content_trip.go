package schema

// ContentTripTable represents the 'content.trip' table
type ContentTripTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	Status    string
	Summary   string
	Images    string
	CreatedAt string
	UpdatedAt string
}

// ContentTrip is the schema definition for content.trip
var ContentTrip = ContentTripTable{
	Table:     "content.trip",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	Status:    "status",
	Summary:   "summary",
	Images:    "images",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// TripDayTable represents the 'content.trip_day' table.
// day_index is 1-based and assigned as max+1 on insert; deletions leave gaps.
type TripDayTable struct {
	Table           string
	ID              string
	TripID          string
	DayIndex        string
	Title           string
	Notes           string
	DestinationID   string
	AccommodationID string
	ItineraryID     string
}

// TripDay is the schema definition for content.trip_day
var TripDay = TripDayTable{
	Table:           "content.trip_day",
	ID:              "id",
	TripID:          "trip_id",
	DayIndex:        "day_index",
	Title:           "title",
	Notes:           "notes",
	DestinationID:   "destination_id",
	AccommodationID: "accommodation_id",
	ItineraryID:     "itinerary_id",
}
