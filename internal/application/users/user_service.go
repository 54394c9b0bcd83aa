package users

import (
	"context"

	"github.com/warpmint/framepay/internal/domain"
)

// IUserService fetches social-graph profiles with an injected bounded
// cache in front of the remote API.
type IUserService interface {
	// UserByFID returns the profile for fid, from cache when possible.
	UserByFID(ctx context.Context, fid int64) (*domain.UserProfile, error)

	// VerifiedAddress returns the user's first verified address.
	VerifiedAddress(ctx context.Context, fid int64) (string, error)

	// SearchUsers searches profiles by free text.
	SearchUsers(ctx context.Context, query string) ([]domain.UserProfile, error)

	// DisplayNamesByAddress resolves addresses to profile usernames.
	// Addresses with no known user are absent from the result.
	DisplayNamesByAddress(ctx context.Context, addresses []string) (map[string]string, error)
}
