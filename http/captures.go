package http

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrCaptureNotFound = errors.New("capture not found")

// Click is a tap on the capture preview. Only the latest one is kept: the
// user refines the calibration point by tapping again.
type Click struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Capture is a photo taken for scanning which was not confirmed yet.
// LastClick is recorded for the preview overlay only, the confirmed scan
// always runs with the generic calibration.
type Capture struct {
	ID        string
	Filename  string
	Photo     []byte
	LastClick *Click
	CreatedAt time.Time
}

// CapturesRegistry keeps unconfirmed captures in memory. Captures do not
// survive a restart, the user just takes the photo again.
type CapturesRegistry struct {
	mutex    sync.Mutex
	captures map[string]*Capture
}

func NewCapturesRegistry() *CapturesRegistry {
	return &CapturesRegistry{
		captures: make(map[string]*Capture),
	}
}

func (r *CapturesRegistry) Start(filename string, photo []byte) *Capture {
	capture := &Capture{
		ID:        uuid.New().String(),
		Filename:  filename,
		Photo:     photo,
		CreatedAt: time.Now(),
	}

	r.mutex.Lock()
	r.captures[capture.ID] = capture
	r.mutex.Unlock()

	return capture
}

func (r *CapturesRegistry) Find(id string) (*Capture, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	capture, ok := r.captures[id]
	if !ok {
		return nil, ErrCaptureNotFound
	}

	return capture, nil
}

func (r *CapturesRegistry) Calibrate(id string, click Click) (*Capture, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	capture, ok := r.captures[id]
	if !ok {
		return nil, ErrCaptureNotFound
	}

	capture.LastClick = &click

	return capture, nil
}

func (r *CapturesRegistry) Remove(id string) {
	r.mutex.Lock()
	delete(r.captures, id)
	r.mutex.Unlock()
}
