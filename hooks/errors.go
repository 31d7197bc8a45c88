package hooks

import "errors"

// ErrNotAuthenticated is returned by hooks whose operation requires a signed
// in user with a loaded profile.
var ErrNotAuthenticated = errors.New("no authenticated user in the store")

// ErrNoSkinTone is returned by recommendation hooks when the skin tone
// analysis was not performed yet.
var ErrNoSkinTone = errors.New("no skin tone analysis result in the store")
