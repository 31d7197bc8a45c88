package hooks

import (
	"context"

	"github.com/lokafit/lokafit/model"
	"github.com/lokafit/lokafit/store"
)

// WardrobeLoader refreshes the snapshot's garment list from the database.
type WardrobeLoader struct {
	hookState

	Garments GarmentsGateway
	Store    *store.Store
}

func NewWardrobeLoader(garments GarmentsGateway, clientStore *store.Store) *WardrobeLoader {
	return &WardrobeLoader{
		Garments: garments,
		Store:    clientStore,
	}
}

func (l *WardrobeLoader) Refresh(ctx context.Context) ([]model.Garment, error) {
	user := l.Store.Snapshot().User
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	l.begin()

	garments, err := l.Garments.FindGarmentsByUserID(ctx, user.ID)
	if err == nil {
		l.Store.SetGarments(garments)
	}

	l.finish(err)

	return garments, err
}
