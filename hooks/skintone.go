package hooks

import (
	"bytes"
	"context"

	"github.com/lokafit/lokafit/model"
	"github.com/lokafit/lokafit/store"
	"github.com/lokafit/lokafit/supabase"
)

// SkinToneAnalyzer sends a selfie to the stylist service, records the
// resulting tone class on the profile and caches the full analysis in the
// store.
type SkinToneAnalyzer struct {
	hookState

	Stylist  Stylist
	Profiles ProfilesGateway
	Store    *store.Store
}

func NewSkinToneAnalyzer(stylistApi Stylist, profiles ProfilesGateway, clientStore *store.Store) *SkinToneAnalyzer {
	return &SkinToneAnalyzer{
		Stylist:  stylistApi,
		Profiles: profiles,
		Store:    clientStore,
	}
}

func (a *SkinToneAnalyzer) Analyze(ctx context.Context, filename string, photo []byte) (*model.SkinTone, error) {
	user := a.Store.Snapshot().User
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	a.begin()

	result, err := a.analyze(ctx, user.ID, filename, photo)

	a.finish(err)

	return result, err
}

func (a *SkinToneAnalyzer) analyze(ctx context.Context, userID string, filename string, photo []byte) (*model.SkinTone, error) {
	result, err := a.Stylist.AnalyzeSkinTone(ctx, bytes.NewReader(photo), filename)
	if err != nil {
		return nil, err
	}

	// Only the class identifier is stored on the profile row, the full
	// analysis lives in the snapshot.
	err = a.Profiles.UpdateProfile(ctx, userID, supabase.ProfilePatch{
		SkinToneID: &result.SkinToneClass,
	})
	if err != nil {
		return nil, err
	}

	a.Store.SetSkinTone(result)

	return result, nil
}
