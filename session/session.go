// Package session resolves the authentication state on startup and keeps the
// client store in sync with session change notifications.
package session

import (
	"context"
	"sync"

	"github.com/lokafit/lokafit/dispatcher"
	"github.com/lokafit/lokafit/model"
	"github.com/lokafit/lokafit/store"
	"github.com/lokafit/lokafit/supabase"
)

type State string

const (
	StateUninitialized       State = "UNINITIALIZED"
	StateChecking            State = "CHECKING"
	StateAuthenticated       State = "AUTHENTICATED"
	StateAnonymous           State = "ANONYMOUS"
	StateProfileCreateFailed State = "PROFILE_CREATE_FAILED"
)

type Sessions interface {
	GetSession(ctx context.Context) (*supabase.SessionUser, error)
	OnAuthStateChange(fn func(user *supabase.SessionUser)) *supabase.AuthSubscription
	SignOut(ctx context.Context) error
}

type ProfilesRepository interface {
	FindProfileByID(ctx context.Context, id string) (*model.Profile, error)
	InsertProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
}

type Bootstrap struct {
	Emitter  dispatcher.Emitter
	Sessions Sessions
	Profiles ProfilesRepository
	Store    *store.Store

	mutex        sync.Mutex
	state        State
	ready        bool
	subscription *supabase.AuthSubscription
}

func New(
	emitter dispatcher.Emitter,
	sessions Sessions,
	profiles ProfilesRepository,
	clientStore *store.Store,
) *Bootstrap {
	return &Bootstrap{
		Emitter:  emitter,
		Sessions: sessions,
		Profiles: profiles,
		Store:    clientStore,
		state:    StateUninitialized,
	}
}

func (b *Bootstrap) State() State {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.state
}

// Ready reports whether the first resolution has completed, regardless of its
// outcome. It lets callers tell "still checking" apart from "checked, not
// logged in".
func (b *Bootstrap) Ready() bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.ready
}

// Run performs the initial session resolution and opens the standing
// subscription to auth change notifications. The caller owns the returned
// state; Release must be called on teardown.
func (b *Bootstrap) Run(ctx context.Context) State {
	b.mutex.Lock()
	b.state = StateChecking
	b.mutex.Unlock()

	state := b.resolve(ctx)

	b.mutex.Lock()
	b.state = state
	b.ready = true
	if b.subscription == nil {
		b.subscription = b.Sessions.OnAuthStateChange(b.handleAuthChange)
	}
	b.mutex.Unlock()

	b.Emitter.Emit("session:resolved", state)

	return state
}

func (b *Bootstrap) resolve(ctx context.Context) State {
	user, err := b.Sessions.GetSession(ctx)
	if err != nil {
		b.Emitter.Emit("session:resolve:error", err)
		b.Store.Apply(store.SetUser(nil), store.SetIsLoggedIn(false))

		return StateAnonymous
	}

	if user == nil {
		b.Store.Apply(store.SetUser(nil), store.SetIsLoggedIn(false))

		return StateAnonymous
	}

	profile, err := b.Profiles.FindProfileByID(ctx, user.ID)
	if err != nil {
		b.Emitter.Emit("session:profile:error", err)
		b.Store.Apply(store.SetUser(nil), store.SetIsLoggedIn(false))

		return StateAnonymous
	}

	if profile == nil {
		// First sign-in: mirror the session identity into a fresh profile
		// row. Authentication is only reported after the insert is confirmed.
		created, err := b.Profiles.InsertProfile(ctx, &model.Profile{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		})
		if err != nil {
			b.Emitter.Emit("session:profile:create_failed", err)

			return StateProfileCreateFailed
		}

		profile = created
	}

	b.Store.Apply(store.SetUser(profile), store.SetIsLoggedIn(true))

	return StateAuthenticated
}

// handleAuthChange mirrors the initial resolution with one intentional
// difference: a missing profile is NOT created here. Whether returning users
// can lack a profile row is an open product question, so the original
// behavior is kept and the store is simply left untouched in that case.
func (b *Bootstrap) handleAuthChange(user *supabase.SessionUser) {
	if user == nil {
		b.Store.Apply(store.SetUser(nil), store.SetIsLoggedIn(false))
		b.setState(StateAnonymous)

		return
	}

	profile, err := b.Profiles.FindProfileByID(context.Background(), user.ID)
	if err != nil {
		b.Emitter.Emit("session:profile:error", err)

		return
	}

	if profile == nil {
		return
	}

	b.Store.Apply(store.SetUser(profile), store.SetIsLoggedIn(true))
	b.setState(StateAuthenticated)
}

func (b *Bootstrap) setState(state State) {
	b.mutex.Lock()
	b.state = state
	b.mutex.Unlock()
}

// SignOut terminates the session and wipes the client state.
func (b *Bootstrap) SignOut(ctx context.Context) error {
	if err := b.Sessions.SignOut(ctx); err != nil {
		return err
	}

	b.Store.Clear()
	b.setState(StateAnonymous)

	return nil
}

// Release closes the standing auth change subscription.
func (b *Bootstrap) Release() {
	b.mutex.Lock()
	subscription := b.subscription
	b.subscription = nil
	b.mutex.Unlock()

	if subscription != nil {
		subscription.Release()
	}
}
