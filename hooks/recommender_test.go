package hooks

import (
	"context"
	"errors"
	"testing"

	testify "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lokafit/lokafit/model"
	"github.com/lokafit/lokafit/store"
)

func createRecommenderStore(t *testing.T) *store.Store {
	clientStore := createAuthenticatedStore(t)
	clientStore.SetSkinTone(&model.SkinTone{SkinToneClass: "warm_medium"})
	clientStore.SetGarments([]model.Garment{
		{ID: "garment-1", UserID: "user-1", ColorHex: "#1a2b3c"},
		{ID: "garment-2", UserID: "user-1", ColorHex: "#aabbcc"},
	})

	return clientStore
}

func TestInstantMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the cached tone class and wardrobe", func(t *testing.T) {
		assert := testify.New(t)
		stylistApi := &stylistMock{}
		clientStore := createRecommenderStore(t)
		recommender := NewRecommender(stylistApi, clientStore)

		result := &model.InstantMatch{
			PrimaryItem:   model.PrimaryItem{Color: "#1a2b3c", Temperature: "cool"},
			SuggestedMood: "casual",
		}
		stylistApi.On("InstantMatch", ctx, "#1a2b3c", "warm_medium", clientStore.Snapshot().Garments).
			Return(result, nil).Once()

		returned, err := recommender.InstantMatches(ctx, "#1a2b3c")

		assert.NoError(err)
		assert.Same(result, returned)
		assert.False(recommender.Loading())
		stylistApi.AssertExpectations(t)
	})

	t.Run("anonymous user is rejected", func(t *testing.T) {
		assert := testify.New(t)
		recommender := NewRecommender(&stylistMock{}, createStore(t))

		result, err := recommender.InstantMatches(ctx, "#1a2b3c")

		assert.Nil(result)
		assert.ErrorIs(err, ErrNotAuthenticated)
	})

	t.Run("missing skin tone analysis is rejected", func(t *testing.T) {
		assert := testify.New(t)
		recommender := NewRecommender(&stylistMock{}, createAuthenticatedStore(t))

		result, err := recommender.InstantMatches(ctx, "#1a2b3c")

		assert.Nil(result)
		assert.ErrorIs(err, ErrNoSkinTone)
	})

	t.Run("service failure is recorded", func(t *testing.T) {
		assert := testify.New(t)
		stylistApi := &stylistMock{}
		recommender := NewRecommender(stylistApi, createRecommenderStore(t))

		serviceErr := errors.New("backend unreachable")
		stylistApi.On("InstantMatch", ctx, "#1a2b3c", "warm_medium", mock.Anything).
			Return(nil, serviceErr).Once()

		result, err := recommender.InstantMatches(ctx, "#1a2b3c")

		assert.Nil(result)
		assert.Same(serviceErr, err)
		assert.Same(serviceErr, recommender.Err())
	})
}

func TestWeeklyPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the wardrobe and the cached tone class", func(t *testing.T) {
		assert := testify.New(t)
		stylistApi := &stylistMock{}
		clientStore := createRecommenderStore(t)
		recommender := NewRecommender(stylistApi, clientStore)

		result := &model.WeeklyPlan{
			WeekOf: "2026-08-31",
			Outfits: []model.PlannedOutfit{
				{Day: "Monday", Primary: model.OutfitPiece{ID: "garment-1", Type: "top", Color: "#1a2b3c"}},
			},
		}
		stylistApi.On("WeeklyPlan", ctx, clientStore.Snapshot().Garments, "warm_medium").
			Return(result, nil).Once()

		returned, err := recommender.WeeklyPlan(ctx)

		assert.NoError(err)
		assert.Same(result, returned)
		// Recommendations are never cached in the snapshot
		assert.Len(clientStore.Snapshot().Garments, 2)
		stylistApi.AssertExpectations(t)
	})

	t.Run("missing skin tone analysis is rejected", func(t *testing.T) {
		assert := testify.New(t)
		recommender := NewRecommender(&stylistMock{}, createAuthenticatedStore(t))

		result, err := recommender.WeeklyPlan(ctx)

		assert.Nil(result)
		assert.ErrorIs(err, ErrNoSkinTone)
	})
}
