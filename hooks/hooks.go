// Package hooks implements the user-facing feature flows on top of the
// stylist api, the supabase gateways and the client store. Each hook owns a
// small piece of local state (loading flag, last error) that is not part of
// the persisted snapshot.
package hooks

import (
	"context"
	"io"
	"sync"

	"github.com/lokafit/lokafit/api/stylist"
	"github.com/lokafit/lokafit/model"
	"github.com/lokafit/lokafit/supabase"
)

type Stylist interface {
	ScanAccurate(ctx context.Context, file io.Reader, filename string, coinCoords stylist.CoinCoords, whiteTapCoords stylist.WhiteTapCoords) (*stylist.ScanResponse, error)
	ScanQuick(ctx context.Context, file io.Reader, filename string) (*stylist.ScanResponse, error)
	AnalyzeSkinTone(ctx context.Context, file io.Reader, filename string) (*model.SkinTone, error)
	InstantMatch(ctx context.Context, itemColor string, skinTone string, userGarments []model.Garment) (*model.InstantMatch, error)
	WeeklyPlan(ctx context.Context, userGarments []model.Garment, skinTone string) (*model.WeeklyPlan, error)
}

type GarmentsGateway interface {
	InsertGarment(ctx context.Context, garment *model.Garment) (*model.Garment, error)
	FindGarmentsByUserID(ctx context.Context, userID string) ([]model.Garment, error)
}

type ProfilesGateway interface {
	UpdateProfile(ctx context.Context, id string, patch supabase.ProfilePatch) error
}

type ObjectsGateway interface {
	UploadObject(ctx context.Context, bucket string, path string, blob []byte, contentType string) error
	PublicURL(bucket string, path string) string
}

// RemoteFetcher downloads the processed image by the url the stylist service
// returned for it.
type RemoteFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// hookState is the shared shape of every hook's local state.
type hookState struct {
	mutex   sync.RWMutex
	loading bool
	lastErr error
}

func (s *hookState) begin() {
	s.mutex.Lock()
	s.loading = true
	s.lastErr = nil
	s.mutex.Unlock()
}

func (s *hookState) finish(err error) {
	s.mutex.Lock()
	s.loading = false
	s.lastErr = err
	s.mutex.Unlock()
}

func (s *hookState) Loading() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.loading
}

func (s *hookState) Err() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.lastErr
}
