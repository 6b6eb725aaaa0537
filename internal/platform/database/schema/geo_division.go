package schema

// GeoDivisionTable represents the 'geo.division' table
type GeoDivisionTable struct {
	Table        string
	ID           string
	PrefectureID string
	Name         string
	Slug         string
	OrderIndex   string
	CreatedAt    string
	UpdatedAt    string
}

// GeoDivision is the schema definition for geo.division
var GeoDivision = GeoDivisionTable{
	Table:        "geo.division",
	ID:           "id",
	PrefectureID: "prefecture_id",
	Name:         "name",
	Slug:         "slug",
	OrderIndex:   "order_index",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

// GeoDivisionViewTable represents the precomputed 'geo.division_view' table.
type GeoDivisionViewTable struct {
	Table          string
	DivisionID     string
	DivisionName   string
	DivisionSlug   string
	PrefectureID   string
	PrefectureName string
	PrefectureSlug string
	OrderIndex     string
}

// GeoDivisionView is the schema definition for geo.division_view
var GeoDivisionView = GeoDivisionViewTable{
	Table:          "geo.division_view",
	DivisionID:     "division_id",
	DivisionName:   "division_name",
	DivisionSlug:   "division_slug",
	PrefectureID:   "prefecture_id",
	PrefectureName: "prefecture_name",
	PrefectureSlug: "prefecture_slug",
	OrderIndex:     "order_index",
}
