package schema

// ContentSightTable represents the 'content.sight' table
type ContentSightTable struct {
	Table         string
	ID            string
	DestinationID string
	Name          string
	Slug          string
	Status        string
	Summary       string
	Images        string
	CreatedAt     string
	UpdatedAt     string
}

// ContentSight is the schema definition for content.sight
var ContentSight = ContentSightTable{
	Table:         "content.sight",
	ID:            "id",
	DestinationID: "destination_id",
	Name:          "name",
	Slug:          "slug",
	Status:        "status",
	Summary:       "summary",
	Images:        "images",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// SightOpeningHourTable represents the 'content.sight_opening_hour' table.
// One row per weekday occurrence; replaced as a whole batch on every edit.
type SightOpeningHourTable struct {
	Table   string
	ID      string
	SightID string
	Weekday string
	Opens   string
	Closes  string
	Note    string
}

// SightOpeningHour is the schema definition for content.sight_opening_hour
var SightOpeningHour = SightOpeningHourTable{
	Table:   "content.sight_opening_hour",
	ID:      "id",
	SightID: "sight_id",
	Weekday: "weekday",
	Opens:   "opens",
	Closes:  "closes",
	Note:    "note",
}

// SightOpeningExceptionTable represents the 'content.sight_opening_exception'
// table — date-specific overrides of the weekly schedule.
type SightOpeningExceptionTable struct {
	Table   string
	ID      string
	SightID string
	Date    string
	Closed  string
	Opens   string
	Closes  string
	Note    string
}

// SightOpeningException is the schema definition for content.sight_opening_exception
var SightOpeningException = SightOpeningExceptionTable{
	Table:   "content.sight_opening_exception",
	ID:      "id",
	SightID: "sight_id",
	Date:    "date",
	Closed:  "closed",
	Opens:   "opens",
	Closes:  "closes",
	Note:    "note",
}
