package model

// The upstream database schema defines the status column with these truncated
// literals. They are preserved verbatim until the product confirms the
// intended values ("DRAFT"/"PERMANENT"?).
const (
	GarmentStatusDraft     = "DRAF"
	GarmentStatusPermanent = "PERMANEN"
)

// GarmentTypeUnknown is assigned to every freshly scanned garment until the
// user classifies it.
const GarmentTypeUnknown = "Unknown"

// Garment is a single wardrobe item: a processed image in object storage plus
// the color and measurements extracted by the stylist service.
type Garment struct {
	ID               string             `json:"id,omitempty"`
	UserID           string             `json:"user_id"`
	FileURL          string             `json:"file_url"`
	StoragePath      string             `json:"storage_path,omitempty"`
	ColorHex         string             `json:"color_hex"`
	MeasurementsJSON map[string]float64 `json:"measurements_json,omitempty"`
	GarmentType      string             `json:"garment_type"`
	Status           string             `json:"status"`
}
