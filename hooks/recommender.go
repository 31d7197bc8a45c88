package hooks

import (
	"context"

	"github.com/lokafit/lokafit/model"
	"github.com/lokafit/lokafit/store"
)

// Recommender generates outfit suggestions from the current wardrobe and the
// cached skin tone analysis. Results are returned to the caller and never
// written to the store.
type Recommender struct {
	hookState

	Stylist Stylist
	Store   *store.Store
}

func NewRecommender(stylistApi Stylist, clientStore *store.Store) *Recommender {
	return &Recommender{
		Stylist: stylistApi,
		Store:   clientStore,
	}
}

func (r *Recommender) InstantMatches(ctx context.Context, itemColor string) (*model.InstantMatch, error) {
	snapshot, err := r.precondition()
	if err != nil {
		return nil, err
	}

	r.begin()

	result, err := r.Stylist.InstantMatch(ctx, itemColor, snapshot.SkinToneResult.SkinToneClass, snapshot.Garments)

	r.finish(err)

	return result, err
}

func (r *Recommender) WeeklyPlan(ctx context.Context) (*model.WeeklyPlan, error) {
	snapshot, err := r.precondition()
	if err != nil {
		return nil, err
	}

	r.begin()

	result, err := r.Stylist.WeeklyPlan(ctx, snapshot.Garments, snapshot.SkinToneResult.SkinToneClass)

	r.finish(err)

	return result, err
}

func (r *Recommender) precondition() (store.Snapshot, error) {
	snapshot := r.Store.Snapshot()
	if snapshot.User == nil {
		return snapshot, ErrNotAuthenticated
	}

	if snapshot.SkinToneResult == nil {
		return snapshot, ErrNoSkinTone
	}

	return snapshot, nil
}
