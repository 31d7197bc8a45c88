package model

// SkinTone is the classification produced by the stylist service for a face
// photo. A new analysis replaces any previous result.
type SkinTone struct {
	Status          string                `json:"status,omitempty"`
	SkinToneClass   string                `json:"skin_tone_class"`
	Undertone       string                `json:"undertone,omitempty"`
	HexColor        string                `json:"hex_color,omitempty"`
	Recommendations *ColorRecommendations `json:"recommendations,omitempty"`
}

type ColorRecommendations struct {
	WarmColors []string `json:"warm_colors"`
	CoolColors []string `json:"cool_colors"`
}
