package schema

// ContentItemTable is the shared shape of the four flat content kinds:
// experience, accommodation, food & drink, and day itinerary. Their tables
// are column-for-column identical apart from one kind-specific attribute.
type ContentItemTable struct {
	Table         string
	ID            string
	DestinationID string
	Name          string
	Slug          string
	Status        string
	Summary       string
	Images        string
	Category      string
	CreatedAt     string
	UpdatedAt     string
}

func contentItem(table, category string) ContentItemTable {
	return ContentItemTable{
		Table:         table,
		ID:            "id",
		DestinationID: "destination_id",
		Name:          "name",
		Slug:          "slug",
		Status:        "status",
		Summary:       "summary",
		Images:        "images",
		Category:      category,
		CreatedAt:     "created_at",
		UpdatedAt:     "updated_at",
	}
}

// ContentExperience is the schema definition for content.experience
var ContentExperience = contentItem("content.experience", "category")

// ContentAccommodation is the schema definition for content.accommodation
var ContentAccommodation = contentItem("content.accommodation", "lodging_type")

// ContentFoodDrink is the schema definition for content.food_drink
var ContentFoodDrink = contentItem("content.food_drink", "cuisine")

// ContentDayItinerary is the schema definition for content.day_itinerary
var ContentDayItinerary = contentItem("content.day_itinerary", "theme")
