package schema

// ContentTourTable represents the 'content.tour' table
type ContentTourTable struct {
	Table         string
	ID            string
	DestinationID string
	Name          string
	Slug          string
	Status        string
	Summary       string
	Images        string
	DurationMin   string
	PriceCents    string
	CreatedAt     string
	UpdatedAt     string
}

// ContentTour is the schema definition for content.tour
var ContentTour = ContentTourTable{
	Table:         "content.tour",
	ID:            "id",
	DestinationID: "destination_id",
	Name:          "name",
	Slug:          "slug",
	Status:        "status",
	Summary:       "summary",
	Images:        "images",
	DurationMin:   "duration_min",
	PriceCents:    "price_cents",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// TourAvailabilityRuleTable represents the 'content.tour_availability_rule'
// table. Rules are replaced as a whole batch on every edit, never diffed.
type TourAvailabilityRuleTable struct {
	Table    string
	ID       string
	TourID   string
	Weekday  string
	StartsAt string
	Capacity string
}

// TourAvailabilityRule is the schema definition for content.tour_availability_rule
var TourAvailabilityRule = TourAvailabilityRuleTable{
	Table:    "content.tour_availability_rule",
	ID:       "id",
	TourID:   "tour_id",
	Weekday:  "weekday",
	StartsAt: "starts_at",
	Capacity: "capacity",
}

// TourExceptionTable represents the 'content.tour_exception' table —
// date-specific cancellations or overrides of the availability rules.
type TourExceptionTable struct {
	Table     string
	ID        string
	TourID    string
	Date      string
	Cancelled string
	Note      string
}

// TourException is the schema definition for content.tour_exception
var TourException = TourExceptionTable{
	Table:     "content.tour_exception",
	ID:        "id",
	TourID:    "tour_id",
	Date:      "date",
	Cancelled: "cancelled",
	Note:      "note",
}
