package hooks

import (
	"context"
	"errors"
	"testing"
	"time"

	testify "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lokafit/lokafit/api/stylist"
	"github.com/lokafit/lokafit/model"
	"github.com/lokafit/lokafit/store"
)

type scannerSuite struct {
	Scanner  *Scanner
	Stylist  *stylistMock
	Garments *garmentsGatewayMock
	Objects  *objectsGatewayMock
	Fetcher  *fetcherMock
	Store    *store.Store
}

func newScannerSuite(t *testing.T) *scannerSuite {
	suite := &scannerSuite{
		Stylist:  &stylistMock{},
		Garments: &garmentsGatewayMock{},
		Objects:  &objectsGatewayMock{},
		Fetcher:  &fetcherMock{},
		Store:    createAuthenticatedStore(t),
	}
	suite.Scanner = NewScanner(suite.Stylist, suite.Garments, suite.Objects, suite.Fetcher, suite.Store)
	suite.Scanner.Now = func() time.Time {
		return time.UnixMilli(1756500000000)
	}

	t.Cleanup(func() {
		suite.Stylist.AssertExpectations(t)
		suite.Garments.AssertExpectations(t)
		suite.Objects.AssertExpectations(t)
		suite.Fetcher.AssertExpectations(t)
	})

	return suite
}

func scanSuccessResponse() *stylist.ScanResponse {
	return &stylist.ScanResponse{
		Status:  "success",
		WebpUrl: "http://stylist.local/processed/1.webp",
		Metadata: stylist.ScanMetadata{
			ColorHex: "#1a2b3c",
			Measurements: stylist.ScanMeasurements{
				WidthCm:  42.5,
				HeightCm: 61,
				AreaCm2:  2592.5,
			},
		},
	}
}

func TestScanAccurate(t *testing.T) {
	ctx := context.Background()
	storagePath := "garments/user-1/1756500000000.webp"

	t.Run("successful scan registers the garment", func(t *testing.T) {
		assert := testify.New(t)
		suite := newScannerSuite(t)

		defaultCoin := stylist.CoinCoords{DiameterPixels: 100, Type: "generic"}
		stored := &model.Garment{ID: "garment-1", UserID: "user-1", ColorHex: "#1a2b3c"}

		suite.Stylist.On("ScanAccurate", ctx, "shirt.jpg", defaultCoin, stylist.WhiteTapCoords{}).
			Return(scanSuccessResponse(), nil).Once()
		suite.Fetcher.On("Fetch", ctx, "http://stylist.local/processed/1.webp").
			Return([]byte("webp bytes"), nil).Once()
		suite.Objects.On("UploadObject", ctx, "garments", storagePath, []byte("webp bytes"), "image/webp").
			Return(nil).Once()
		suite.Objects.On("PublicURL", "garments", storagePath).
			Return("http://supabase.local/storage/v1/object/public/garments/" + storagePath).Once()
		suite.Garments.On("InsertGarment", ctx, &model.Garment{
			UserID:      "user-1",
			FileURL:     "http://supabase.local/storage/v1/object/public/garments/" + storagePath,
			StoragePath: storagePath,
			ColorHex:    "#1a2b3c",
			MeasurementsJSON: map[string]float64{
				"width_cm":  42.5,
				"height_cm": 61,
				"area_cm2":  2592.5,
			},
			GarmentType: model.GarmentTypeUnknown,
			Status:      model.GarmentStatusDraft,
		}).Return(stored, nil).Once()

		garment, err := suite.Scanner.ScanAccurate(ctx, "shirt.jpg", []byte("photo bytes"), Coordinates{})

		assert.NoError(err)
		assert.Same(stored, garment)
		assert.NoError(suite.Scanner.Err())
		assert.False(suite.Scanner.Loading())

		snapshot := suite.Store.Snapshot()
		if assert.Len(snapshot.Garments, 1) {
			assert.Equal("garment-1", snapshot.Garments[0].ID)
		}
		assert.False(snapshot.IsLoading)
	})

	t.Run("explicit calibration points are passed through", func(t *testing.T) {
		assert := testify.New(t)
		suite := newScannerSuite(t)

		coin := stylist.CoinCoords{X: 120, Y: 340, DiameterPixels: 80, Type: "rupiah_500"}
		whiteTap := stylist.WhiteTapCoords{X: 15, Y: 25}

		suite.Stylist.On("ScanAccurate", ctx, "shirt.jpg", coin, whiteTap).
			Return(scanSuccessResponse(), nil).Once()
		suite.Fetcher.On("Fetch", ctx, mock.Anything).Return([]byte("webp bytes"), nil).Once()
		suite.Objects.On("UploadObject", ctx, "garments", storagePath, mock.Anything, "image/webp").Return(nil).Once()
		suite.Objects.On("PublicURL", "garments", storagePath).Return("http://files.local/1.webp").Once()
		suite.Garments.On("InsertGarment", ctx, mock.Anything).
			Return(&model.Garment{ID: "garment-1"}, nil).Once()

		_, err := suite.Scanner.ScanAccurate(ctx, "shirt.jpg", []byte("photo bytes"), Coordinates{
			Coin:     &coin,
			WhiteTap: &whiteTap,
		})

		assert.NoError(err)
	})

	t.Run("anonymous user is rejected before any call", func(t *testing.T) {
		assert := testify.New(t)
		suite := newScannerSuite(t)
		suite.Store.Clear()

		garment, err := suite.Scanner.ScanAccurate(ctx, "shirt.jpg", []byte("photo bytes"), Coordinates{})

		assert.Nil(garment)
		assert.ErrorIs(err, ErrNotAuthenticated)
		assert.False(suite.Scanner.Loading())
		assert.False(suite.Store.Snapshot().IsLoading)
	})

	t.Run("failed insert does not reach the store", func(t *testing.T) {
		assert := testify.New(t)
		suite := newScannerSuite(t)

		insertErr := errors.New("row-level security violation")
		suite.Stylist.On("ScanAccurate", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(scanSuccessResponse(), nil).Once()
		suite.Fetcher.On("Fetch", ctx, mock.Anything).Return([]byte("webp bytes"), nil).Once()
		suite.Objects.On("UploadObject", ctx, "garments", storagePath, mock.Anything, "image/webp").Return(nil).Once()
		suite.Objects.On("PublicURL", "garments", storagePath).Return("http://files.local/1.webp").Once()
		suite.Garments.On("InsertGarment", ctx, mock.Anything).Return(nil, insertErr).Once()

		garment, err := suite.Scanner.ScanAccurate(ctx, "shirt.jpg", []byte("photo bytes"), Coordinates{})

		assert.Nil(garment)
		assert.Same(insertErr, suite.Scanner.Err())
		assert.Same(insertErr, err)

		snapshot := suite.Store.Snapshot()
		assert.Empty(snapshot.Garments)
		assert.False(snapshot.IsLoading)
	})

	t.Run("scan failure skips the upload", func(t *testing.T) {
		assert := testify.New(t)
		suite := newScannerSuite(t)

		scanErr := errors.New("image has no detectable garment")
		suite.Stylist.On("ScanAccurate", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, scanErr).Once()

		garment, err := suite.Scanner.ScanAccurate(ctx, "shirt.jpg", []byte("photo bytes"), Coordinates{})

		assert.Nil(garment)
		assert.Same(scanErr, err)
		assert.Same(scanErr, suite.Scanner.Err())
	})
}

func TestScanQuick(t *testing.T) {
	assert := testify.New(t)
	ctx := context.Background()
	suite := newScannerSuite(t)
	storagePath := "garments/user-1/1756500000000.webp"

	suite.Stylist.On("ScanQuick", ctx, "shirt.jpg").Return(scanSuccessResponse(), nil).Once()
	suite.Fetcher.On("Fetch", ctx, "http://stylist.local/processed/1.webp").
		Return([]byte("webp bytes"), nil).Once()
	suite.Objects.On("UploadObject", ctx, "garments", storagePath, []byte("webp bytes"), "image/webp").
		Return(nil).Once()
	suite.Objects.On("PublicURL", "garments", storagePath).Return("http://files.local/1.webp").Once()
	suite.Garments.On("InsertGarment", ctx, mock.Anything).
		Return(&model.Garment{ID: "garment-1", UserID: "user-1"}, nil).Once()

	garment, err := suite.Scanner.ScanQuick(ctx, "shirt.jpg", []byte("photo bytes"))

	assert.NoError(err)
	assert.Equal("garment-1", garment.ID)
	assert.Len(suite.Store.Snapshot().Garments, 1)
}
