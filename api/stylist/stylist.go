// Package stylist implements the REST contract of the external
// image-processing and recommendation service. Every function performs
// exactly one attempt: no retries, no backoff. The session is established
// elsewhere, so no authentication headers are attached here.
package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/lokafit/lokafit/model"
)

type Emitter interface {
	Emit(topic string, args ...interface{})
}

type Stylist struct {
	// Emitter is optional. When set, every call publishes an after_call
	// event with the resulting error (nil on success).
	Emitter Emitter

	http    *http.Client
	baseUrl string
}

func New(client *http.Client, baseUrl string) *Stylist {
	if baseUrl == "" {
		baseUrl = "http://localhost:8000"
	}

	return &Stylist{
		http:    client,
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
	}
}

// CoinCoords locates the calibration coin on the photo. DiameterPixels
// converts pixel measurements into physical units.
type CoinCoords struct {
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	DiameterPixels float64 `json:"diameter_pixels"`
	Type           string  `json:"type"`
}

// WhiteTapCoords is the white-balance reference point.
type WhiteTapCoords struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

type ScanMeasurements struct {
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
	AreaCm2  float64 `json:"area_cm2"`
}

type ScanMetadata struct {
	ColorHex     string           `json:"color_hex"`
	Measurements ScanMeasurements `json:"measurements"`
	ScaleRatio   float64          `json:"scale_ratio,omitempty"`
}

type ScanResponse struct {
	Status   string       `json:"status"`
	WebpUrl  string       `json:"webp_url"`
	Metadata ScanMetadata `json:"metadata"`
}

// ScanAccurate measures a garment photo using the coin and white-balance
// calibration points.
func (s *Stylist) ScanAccurate(
	ctx context.Context,
	file io.Reader,
	filename string,
	coinCoords CoinCoords,
	whiteTapCoords WhiteTapCoords,
) (*ScanResponse, error) {
	coin, _ := json.Marshal(coinCoords)
	whiteTap, _ := json.Marshal(whiteTapCoords)
	body, contentType, err := encodeMultipart(file, filename, map[string]string{
		"coin_coords":      string(coin),
		"white_tap_coords": string(whiteTap),
	})
	if err != nil {
		return nil, err
	}

	var result *ScanResponse
	err = s.post(ctx, "scan_accurate", "/api/v1/scan/accurate", contentType, body, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ScanQuick measures a garment photo without calibration.
func (s *Stylist) ScanQuick(ctx context.Context, file io.Reader, filename string) (*ScanResponse, error) {
	body, contentType, err := encodeMultipart(file, filename, nil)
	if err != nil {
		return nil, err
	}

	var result *ScanResponse
	err = s.post(ctx, "scan_quick", "/api/v1/scan/quick", contentType, body, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// AnalyzeSkinTone classifies the skin tone on a face photo.
func (s *Stylist) AnalyzeSkinTone(ctx context.Context, file io.Reader, filename string) (*model.SkinTone, error) {
	body, contentType, err := encodeMultipart(file, filename, nil)
	if err != nil {
		return nil, err
	}

	var result *model.SkinTone
	err = s.post(ctx, "skin_tone", "/api/v1/profile/skin-tone", contentType, body, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

type instantMatchRequest struct {
	ItemColor    string          `json:"item_color"`
	SkinTone     string          `json:"skin_tone"`
	UserGarments []model.Garment `json:"user_garments"`
}

type instantMatchResponse struct {
	Status string              `json:"status"`
	Data   *model.InstantMatch `json:"data"`
}

// InstantMatch asks the mix&match engine what from the wardrobe goes with the
// given item color.
func (s *Stylist) InstantMatch(
	ctx context.Context,
	itemColor string,
	skinTone string,
	userGarments []model.Garment,
) (*model.InstantMatch, error) {
	requestBody, _ := json.Marshal(instantMatchRequest{
		ItemColor:    itemColor,
		SkinTone:     skinTone,
		UserGarments: userGarments,
	})

	var result instantMatchResponse
	err := s.post(ctx, "instant_match", "/api/v1/recommend/instant", "application/json", bytes.NewReader(requestBody), &result)
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

type weeklyPlanRequest struct {
	UserGarments []model.Garment `json:"user_garments"`
	SkinTone     string          `json:"skin_tone"`
}

type weeklyPlanResponse struct {
	Status string            `json:"status"`
	Data   *model.WeeklyPlan `json:"data"`
}

// WeeklyPlan builds a 7-day outfit curation from the whole wardrobe.
func (s *Stylist) WeeklyPlan(ctx context.Context, userGarments []model.Garment, skinTone string) (*model.WeeklyPlan, error) {
	requestBody, _ := json.Marshal(weeklyPlanRequest{
		UserGarments: userGarments,
		SkinTone:     skinTone,
	})

	var result weeklyPlanResponse
	err := s.post(ctx, "weekly_plan", "/api/v1/recommend/weekly", "application/json", bytes.NewReader(requestBody), &result)
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

// Ping hits the service's health endpoint.
func (s *Stylist) Ping() error {
	request, err := http.NewRequest("GET", s.baseUrl+"/health", nil)
	if err != nil {
		return err
	}

	response, err := s.http.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return &RequestFailedError{Status: response.Status}
	}

	return nil
}

func (s *Stylist) post(ctx context.Context, op string, path string, contentType string, body io.Reader, result interface{}) error {
	err := s.doPost(ctx, path, contentType, body, result)
	s.emit("stylist:"+op+":after_call", err)

	return err
}

func (s *Stylist) doPost(ctx context.Context, path string, contentType string, body io.Reader, result interface{}) error {
	request, err := http.NewRequestWithContext(ctx, "POST", s.baseUrl+path, body)
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", contentType)

	response, err := s.http.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return &RequestFailedError{Status: response.Status}
	}

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(responseBody, result)
}

func (s *Stylist) emit(topic string, args ...interface{}) {
	if s.Emitter == nil {
		return
	}

	s.Emitter.Emit(topic, args...)
}

func encodeMultipart(file io.Reader, filename string, fields map[string]string) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}

	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}
