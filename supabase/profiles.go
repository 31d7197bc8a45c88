package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"github.com/lokafit/lokafit/model"
)

// FindProfileByID returns nil when no row matches: an absent profile is a
// regular outcome during the first sign-in, not an error.
func (c *Client) FindProfileByID(ctx context.Context, id string) (*model.Profile, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)
	query.Set("select", "*")
	query.Set("limit", "1")

	request, err := c.newRequest(ctx, "GET", "/rest/v1/profiles?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(request)
	if err != nil {
		return nil, err
	}

	var rows []*model.Profile
	if err := resp.JSON(&rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return rows[0], nil
}

// InsertProfile creates the row and returns its stored representation.
func (c *Client) InsertProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	requestBody, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}

	request, err := c.newRequest(ctx, "POST", "/rest/v1/profiles", bytes.NewReader(requestBody))
	if err != nil {
		return nil, err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Prefer", "return=representation")

	resp, err := c.do(request)
	if err != nil {
		return nil, err
	}

	var rows []*model.Profile
	if err := resp.JSON(&rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return profile, nil
	}

	return rows[0], nil
}

// ProfilePatch is a partial update of the profiles row. Only non-nil fields
// reach the backend.
type ProfilePatch struct {
	FullName   *string  `json:"full_name,omitempty"`
	HeightCm   *float64 `json:"height_cm,omitempty"`
	WeightKg   *float64 `json:"weight_kg,omitempty"`
	SkinToneID *string  `json:"skin_tone_id,omitempty"`
	AvatarURL  *string  `json:"avatar_url,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) error {
	requestBody, err := json.Marshal(patch)
	if err != nil {
		return err
	}

	query := url.Values{}
	query.Set("id", "eq."+id)

	request, err := c.newRequest(ctx, "PATCH", "/rest/v1/profiles?"+query.Encode(), bytes.NewReader(requestBody))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")

	_, err = c.do(request)

	return err
}
