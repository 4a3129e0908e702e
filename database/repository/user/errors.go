package userRepo

import "errors"

// ErrUserNotFound is returned by mutations targeting a missing user.
// Plain lookups report misses as (nil, nil) instead.
var ErrUserNotFound = errors.New("user not found")
