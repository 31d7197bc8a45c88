package hooks

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/lokafit/lokafit/api/stylist"
	"github.com/lokafit/lokafit/model"
	"github.com/lokafit/lokafit/store"
)

const garmentsBucket = "garments"

// Coordinates carries the optional calibration points for an accurate scan.
// Missing points fall back to the generic calibration accepted by the stylist
// service.
type Coordinates struct {
	Coin     *stylist.CoinCoords
	WhiteTap *stylist.WhiteTapCoords
}

func (c Coordinates) coin() stylist.CoinCoords {
	if c.Coin != nil {
		return *c.Coin
	}

	return stylist.CoinCoords{X: 0, Y: 0, DiameterPixels: 100, Type: "generic"}
}

func (c Coordinates) whiteTap() stylist.WhiteTapCoords {
	if c.WhiteTap != nil {
		return *c.WhiteTap
	}

	return stylist.WhiteTapCoords{}
}

// Scanner drives the garment scan flow: send the photo to the stylist
// service, mirror the processed image into own storage and register the
// garment for the current user.
type Scanner struct {
	hookState

	Stylist  Stylist
	Garments GarmentsGateway
	Objects  ObjectsGateway
	Fetcher  RemoteFetcher
	Store    *store.Store

	// Now is parametrized for tests, the storage path embeds a timestamp.
	Now func() time.Time
}

func NewScanner(
	stylistApi Stylist,
	garments GarmentsGateway,
	objects ObjectsGateway,
	fetcher RemoteFetcher,
	clientStore *store.Store,
) *Scanner {
	return &Scanner{
		Stylist:  stylistApi,
		Garments: garments,
		Objects:  objects,
		Fetcher:  fetcher,
		Store:    clientStore,
		Now:      time.Now,
	}
}

// ScanAccurate performs a scan calibrated by the reference coin and white tap
// coordinates.
func (s *Scanner) ScanAccurate(
	ctx context.Context,
	filename string,
	photo []byte,
	coordinates Coordinates,
) (*model.Garment, error) {
	return s.scan(ctx, func(ctx context.Context) (*stylist.ScanResponse, error) {
		return s.Stylist.ScanAccurate(ctx, bytes.NewReader(photo), filename, coordinates.coin(), coordinates.whiteTap())
	})
}

// ScanQuick performs an uncalibrated scan, measurements are approximate.
func (s *Scanner) ScanQuick(ctx context.Context, filename string, photo []byte) (*model.Garment, error) {
	return s.scan(ctx, func(ctx context.Context) (*stylist.ScanResponse, error) {
		return s.Stylist.ScanQuick(ctx, bytes.NewReader(photo), filename)
	})
}

func (s *Scanner) scan(
	ctx context.Context,
	call func(ctx context.Context) (*stylist.ScanResponse, error),
) (*model.Garment, error) {
	user := s.Store.Snapshot().User
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	s.begin()
	s.Store.SetIsLoading(true)

	garment, err := s.doScan(ctx, user.ID, call)

	s.finish(err)
	s.Store.SetIsLoading(false)

	return garment, err
}

func (s *Scanner) doScan(
	ctx context.Context,
	userID string,
	call func(ctx context.Context) (*stylist.ScanResponse, error),
) (*model.Garment, error) {
	response, err := call(ctx)
	if err != nil {
		return nil, err
	}

	processed, err := s.Fetcher.Fetch(ctx, response.WebpUrl)
	if err != nil {
		return nil, err
	}

	// The bucket name is repeated in the object path, existing rows were
	// stored that way and the public urls must keep resolving.
	path := fmt.Sprintf("%s/%s/%d.webp", garmentsBucket, userID, s.Now().UnixMilli())
	if err := s.Objects.UploadObject(ctx, garmentsBucket, path, processed, "image/webp"); err != nil {
		return nil, err
	}

	// The uploaded blob is intentionally not removed when the insert below
	// fails, an orphaned object is preferred over a garment row with a dead
	// file url.
	garment := &model.Garment{
		UserID:           userID,
		FileURL:          s.Objects.PublicURL(garmentsBucket, path),
		StoragePath:      path,
		ColorHex:         response.Metadata.ColorHex,
		MeasurementsJSON: measurements(response),
		GarmentType:      model.GarmentTypeUnknown,
		Status:           model.GarmentStatusDraft,
	}

	stored, err := s.Garments.InsertGarment(ctx, garment)
	if err != nil {
		return nil, err
	}

	s.Store.AddGarment(*stored)

	return stored, nil
}

func measurements(response *stylist.ScanResponse) map[string]float64 {
	return map[string]float64{
		"width_cm":  response.Metadata.Measurements.WidthCm,
		"height_cm": response.Metadata.Measurements.HeightCm,
		"area_cm2":  response.Metadata.Measurements.AreaCm2,
	}
}
