package hooks

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/lokafit/lokafit/api/stylist"
	"github.com/lokafit/lokafit/model"
	"github.com/lokafit/lokafit/store"
	"github.com/lokafit/lokafit/supabase"
)

type stylistMock struct {
	mock.Mock
}

func (m *stylistMock) ScanAccurate(
	ctx context.Context,
	file io.Reader,
	filename string,
	coinCoords stylist.CoinCoords,
	whiteTapCoords stylist.WhiteTapCoords,
) (*stylist.ScanResponse, error) {
	args := m.Called(ctx, filename, coinCoords, whiteTapCoords)

	return scanResponse(args.Get(0)), args.Error(1)
}

func (m *stylistMock) ScanQuick(ctx context.Context, file io.Reader, filename string) (*stylist.ScanResponse, error) {
	args := m.Called(ctx, filename)

	return scanResponse(args.Get(0)), args.Error(1)
}

func (m *stylistMock) AnalyzeSkinTone(ctx context.Context, file io.Reader, filename string) (*model.SkinTone, error) {
	args := m.Called(ctx, filename)
	var result *model.SkinTone
	if args.Get(0) != nil {
		result = args.Get(0).(*model.SkinTone)
	}

	return result, args.Error(1)
}

func (m *stylistMock) InstantMatch(ctx context.Context, itemColor string, skinTone string, userGarments []model.Garment) (*model.InstantMatch, error) {
	args := m.Called(ctx, itemColor, skinTone, userGarments)
	var result *model.InstantMatch
	if args.Get(0) != nil {
		result = args.Get(0).(*model.InstantMatch)
	}

	return result, args.Error(1)
}

func (m *stylistMock) WeeklyPlan(ctx context.Context, userGarments []model.Garment, skinTone string) (*model.WeeklyPlan, error) {
	args := m.Called(ctx, userGarments, skinTone)
	var result *model.WeeklyPlan
	if args.Get(0) != nil {
		result = args.Get(0).(*model.WeeklyPlan)
	}

	return result, args.Error(1)
}

func scanResponse(value interface{}) *stylist.ScanResponse {
	if value == nil {
		return nil
	}

	return value.(*stylist.ScanResponse)
}

type garmentsGatewayMock struct {
	mock.Mock
}

func (m *garmentsGatewayMock) InsertGarment(ctx context.Context, garment *model.Garment) (*model.Garment, error) {
	args := m.Called(ctx, garment)
	var stored *model.Garment
	if args.Get(0) != nil {
		stored = args.Get(0).(*model.Garment)
	}

	return stored, args.Error(1)
}

func (m *garmentsGatewayMock) FindGarmentsByUserID(ctx context.Context, userID string) ([]model.Garment, error) {
	args := m.Called(ctx, userID)
	var garments []model.Garment
	if args.Get(0) != nil {
		garments = args.Get(0).([]model.Garment)
	}

	return garments, args.Error(1)
}

type profilesGatewayMock struct {
	mock.Mock
}

func (m *profilesGatewayMock) UpdateProfile(ctx context.Context, id string, patch supabase.ProfilePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

type objectsGatewayMock struct {
	mock.Mock
}

func (m *objectsGatewayMock) UploadObject(ctx context.Context, bucket string, path string, blob []byte, contentType string) error {
	return m.Called(ctx, bucket, path, blob, contentType).Error(0)
}

func (m *objectsGatewayMock) PublicURL(bucket string, path string) string {
	return m.Called(bucket, path).String(0)
}

type fetcherMock struct {
	mock.Mock
}

func (m *fetcherMock) Fetch(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	var blob []byte
	if args.Get(0) != nil {
		blob = args.Get(0).([]byte)
	}

	return blob, args.Error(1)
}

type snapshotsRepoStub struct {
	blob []byte
}

func (r *snapshotsRepoStub) Load() ([]byte, error) {
	return r.blob, nil
}

func (r *snapshotsRepoStub) Save(blob []byte) error {
	r.blob = blob

	return nil
}

func createStore(t *testing.T) *store.Store {
	clientStore, err := store.New(&snapshotsRepoStub{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	return clientStore
}

func createAuthenticatedStore(t *testing.T) *store.Store {
	clientStore := createStore(t)
	clientStore.SetUser(&model.Profile{ID: "user-1", Email: "user@lokafit.app"})
	clientStore.SetIsLoggedIn(true)

	return clientStore
}
