package schema

// GeoRegionTable represents the 'geo.region' table
type GeoRegionTable struct {
	Table      string
	ID         string
	Name       string
	Slug       string
	OrderIndex string
	CreatedAt  string
	UpdatedAt  string
}

// GeoRegion is the schema definition for geo.region
var GeoRegion = GeoRegionTable{
	Table:      "geo.region",
	ID:         "id",
	Name:       "name",
	Slug:       "slug",
	OrderIndex: "order_index",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}
