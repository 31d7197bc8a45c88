package model

// InstantMatch is the mix&match engine's answer to "what goes with this
// color". Recommendations are returned to the caller but never persisted.
type InstantMatch struct {
	PrimaryItem         PrimaryItem   `json:"primary_item"`
	ComplementaryColors []string      `json:"complementary_colors"`
	MatchedItems        []MatchedItem `json:"matched_items"`
	SuggestedMood       string        `json:"suggested_mood,omitempty"`
}

type PrimaryItem struct {
	Color       string `json:"color"`
	Temperature string `json:"temperature"`
}

type MatchedItem struct {
	GarmentID  string  `json:"garment_id"`
	ColorHex   string  `json:"color_hex"`
	Type       string  `json:"type"`
	MatchScore float64 `json:"match_score"`
}

// WeeklyPlan is a 7-day outfit curation built from the user's wardrobe.
type WeeklyPlan struct {
	WeekOf      string          `json:"week_of"`
	Outfits     []PlannedOutfit `json:"outfits"`
	GeneratedAt string          `json:"generated_at,omitempty"`
}

type PlannedOutfit struct {
	Day         string        `json:"day"`
	Primary     OutfitPiece   `json:"primary"`
	Complements []OutfitPiece `json:"complements"`
	StylingNote string        `json:"styling_note,omitempty"`
}

type OutfitPiece struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Color string `json:"color"`
}
