package model

// Profile mirrors a row of the profiles table. It is created on the first
// successful authentication and cleared from the client state on logout.
type Profile struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	HeightCm   float64 `json:"height_cm,omitempty"`
	WeightKg   float64 `json:"weight_kg,omitempty"`
	SkinToneID string  `json:"skin_tone_id,omitempty"`
	AvatarURL  string  `json:"avatar_url,omitempty"`
}
