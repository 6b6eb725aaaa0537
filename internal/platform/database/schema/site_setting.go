package schema

// SiteSettingTable represents the 'site.setting' singleton table
type SiteSettingTable struct {
	Table        string
	ID           string
	HeroHeadline string
	HeroTagline  string
	HeroImages   string
	UpdatedAt    string
}

// SiteSetting is the schema definition for site.setting.
// Exactly one row exists, at SiteSettingRowID; writes upsert in place.
var SiteSetting = SiteSettingTable{
	Table:        "site.setting",
	ID:           "id",
	HeroHeadline: "hero_headline",
	HeroTagline:  "hero_tagline",
	HeroImages:   "hero_images",
	UpdatedAt:    "updated_at",
}

// SiteSettingRowID is the fixed well-known id of the singleton row.
const SiteSettingRowID = 1
