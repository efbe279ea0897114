// Package domain holds the presence entities and the invariants they enforce.
package domain

import (
	"errors"

	"github.com/samber/lo"
)

const MaxUsernameLen = 32

var ErrUsernameEmpty = errors.New("username empty")

// UserID identifies a participant inside a room. It is the connection id of
// the session that joined, so it is opaque and never stable across reconnects.
type UserID string

// NormalizeUsername truncates the name to MaxUsernameLen runes.
func NormalizeUsername(username string) (string, error) {
	if username == "" {
		return "", ErrUsernameEmpty
	}
	return lo.Substring(username, 0, MaxUsernameLen), nil
}
