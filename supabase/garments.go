package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/lokafit/lokafit/model"
)

// InsertGarment creates the row and returns the stored representation with
// the database-assigned id.
func (c *Client) InsertGarment(ctx context.Context, garment *model.Garment) (*model.Garment, error) {
	requestBody, err := json.Marshal(garment)
	if err != nil {
		return nil, err
	}

	request, err := c.newRequest(ctx, "POST", "/rest/v1/garments", bytes.NewReader(requestBody))
	if err != nil {
		return nil, err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Prefer", "return=representation")

	resp, err := c.do(request)
	if err != nil {
		return nil, err
	}

	var rows []*model.Garment
	if err := resp.JSON(&rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.New("insert returned no representation")
	}

	return rows[0], nil
}

func (c *Client) FindGarmentsByUserID(ctx context.Context, userID string) ([]model.Garment, error) {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	query.Set("select", "*")

	request, err := c.newRequest(ctx, "GET", "/rest/v1/garments?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(request)
	if err != nil {
		return nil, err
	}

	var rows []model.Garment
	if err := resp.JSON(&rows); err != nil {
		return nil, err
	}

	return rows, nil
}
