package gkRepo

import "errors"

// ErrGoalkeeperNotFound is returned by mutations targeting a missing profile.
var ErrGoalkeeperNotFound = errors.New("goalkeeper not found")
