package schema

// GeoPrefectureTable represents the 'geo.prefecture' table
type GeoPrefectureTable struct {
	Table      string
	ID         string
	RegionID   string
	Name       string
	Slug       string
	OrderIndex string
	CreatedAt  string
	UpdatedAt  string
}

// GeoPrefecture is the schema definition for geo.prefecture
var GeoPrefecture = GeoPrefectureTable{
	Table:      "geo.prefecture",
	ID:         "id",
	RegionID:   "region_id",
	Name:       "name",
	Slug:       "slug",
	OrderIndex: "order_index",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

// GeoPrefectureViewTable represents the precomputed 'geo.prefecture_view'
// table. View columns carry the entity-name prefix; the raw table does not.
type GeoPrefectureViewTable struct {
	Table          string
	PrefectureID   string
	PrefectureName string
	PrefectureSlug string
	RegionID       string
	RegionName     string
	RegionSlug     string
	OrderIndex     string
}

// GeoPrefectureView is the schema definition for geo.prefecture_view
var GeoPrefectureView = GeoPrefectureViewTable{
	Table:          "geo.prefecture_view",
	PrefectureID:   "prefecture_id",
	PrefectureName: "prefecture_name",
	PrefectureSlug: "prefecture_slug",
	RegionID:       "region_id",
	RegionName:     "region_name",
	RegionSlug:     "region_slug",
	OrderIndex:     "order_index",
}
