package hooks

import (
	"context"
	"errors"
	"testing"

	testify "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lokafit/lokafit/model"
	"github.com/lokafit/lokafit/supabase"
)

func analysisResult() *model.SkinTone {
	return &model.SkinTone{
		Status:        "success",
		SkinToneClass: "warm_medium",
		Undertone:     "warm",
		HexColor:      "#c68642",
		Recommendations: &model.ColorRecommendations{
			WarmColors: []string{"#d2691e", "#ff7f50"},
			CoolColors: []string{"#4682b4"},
		},
	}
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("successful analysis updates the profile and the snapshot", func(t *testing.T) {
		assert := testify.New(t)
		stylistApi := &stylistMock{}
		profiles := &profilesGatewayMock{}
		clientStore := createAuthenticatedStore(t)
		analyzer := NewSkinToneAnalyzer(stylistApi, profiles, clientStore)

		result := analysisResult()
		stylistApi.On("AnalyzeSkinTone", ctx, "selfie.jpg").Return(result, nil).Once()
		profiles.On("UpdateProfile", ctx, "user-1", mock.MatchedBy(func(patch supabase.ProfilePatch) bool {
			return patch.SkinToneID != nil && *patch.SkinToneID == "warm_medium"
		})).Return(nil).Once()

		returned, err := analyzer.Analyze(ctx, "selfie.jpg", []byte("photo bytes"))

		assert.NoError(err)
		assert.Same(result, returned)
		assert.Same(result, clientStore.Snapshot().SkinToneResult)
		assert.False(analyzer.Loading())

		stylistApi.AssertExpectations(t)
		profiles.AssertExpectations(t)
	})

	t.Run("anonymous user is rejected", func(t *testing.T) {
		assert := testify.New(t)
		analyzer := NewSkinToneAnalyzer(&stylistMock{}, &profilesGatewayMock{}, createStore(t))

		result, err := analyzer.Analyze(ctx, "selfie.jpg", []byte("photo bytes"))

		assert.Nil(result)
		assert.ErrorIs(err, ErrNotAuthenticated)
	})

	t.Run("failed profile update does not cache the analysis", func(t *testing.T) {
		assert := testify.New(t)
		stylistApi := &stylistMock{}
		profiles := &profilesGatewayMock{}
		clientStore := createAuthenticatedStore(t)
		analyzer := NewSkinToneAnalyzer(stylistApi, profiles, clientStore)

		updateErr := errors.New("backend unreachable")
		stylistApi.On("AnalyzeSkinTone", ctx, "selfie.jpg").Return(analysisResult(), nil).Once()
		profiles.On("UpdateProfile", ctx, "user-1", mock.Anything).Return(updateErr).Once()

		result, err := analyzer.Analyze(ctx, "selfie.jpg", []byte("photo bytes"))

		assert.Nil(result)
		assert.Same(updateErr, err)
		assert.Same(updateErr, analyzer.Err())
		assert.Nil(clientStore.Snapshot().SkinToneResult)
	})

	t.Run("failed analysis leaves the profile alone", func(t *testing.T) {
		assert := testify.New(t)
		stylistApi := &stylistMock{}
		profiles := &profilesGatewayMock{}
		analyzer := NewSkinToneAnalyzer(stylistApi, profiles, createAuthenticatedStore(t))

		analysisErr := errors.New("face not detected")
		stylistApi.On("AnalyzeSkinTone", ctx, "selfie.jpg").Return(nil, analysisErr).Once()

		result, err := analyzer.Analyze(ctx, "selfie.jpg", []byte("photo bytes"))

		assert.Nil(result)
		assert.Same(analysisErr, err)
		profiles.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})
}
