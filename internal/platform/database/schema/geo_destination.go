package schema

// GeoDestinationTable represents the 'geo.destination' table
type GeoDestinationTable struct {
	Table         string
	ID            string
	DivisionID    string
	Name          string
	Slug          string
	OrderIndex    string
	Summary       string
	HeroImage     string
	Lat           string
	Lon           string
	GeocodeStatus string
	GeocodedAt    string
	CreatedAt     string
	UpdatedAt     string
}

// GeoDestination is the schema definition for geo.destination
var GeoDestination = GeoDestinationTable{
	Table:         "geo.destination",
	ID:            "id",
	DivisionID:    "division_id",
	Name:          "name",
	Slug:          "slug",
	OrderIndex:    "order_index",
	Summary:       "summary",
	HeroImage:     "hero_image",
	Lat:           "lat",
	Lon:           "lon",
	GeocodeStatus: "geocode_status",
	GeocodedAt:    "geocoded_at",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}
