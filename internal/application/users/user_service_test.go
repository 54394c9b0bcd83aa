package users_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/warpmint/framepay/internal/application/users"
	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/pkg/cache"
)

type fakeSocialGraph struct {
	byFID      map[int64]domain.UserProfile
	byAddress  map[string][]domain.UserProfile
	fetchCalls int
}

func (f *fakeSocialGraph) UsersByFIDs(ctx context.Context, fids []int64) ([]domain.UserProfile, error) {
	f.fetchCalls++
	var out []domain.UserProfile
	for _, fid := range fids {
		if profile, ok := f.byFID[fid]; ok {
			out = append(out, profile)
		}
	}
	return out, nil
}

func (f *fakeSocialGraph) SearchUsers(ctx context.Context, query string, limit int) ([]domain.UserProfile, error) {
	var out []domain.UserProfile
	for _, profile := range f.byFID {
		out = append(out, profile)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSocialGraph) UsersByAddresses(ctx context.Context, addresses []string) (map[string][]domain.UserProfile, error) {
	f.fetchCalls++
	return f.byAddress, nil
}

func newUserService(t *testing.T, social *fakeSocialGraph) users.IUserService {
	t.Helper()
	userCache, err := cache.New[int64, domain.UserProfile](16)
	require.NoError(t, err)
	return users.NewUserService(social, userCache, zerolog.Nop())
}

func TestUserByFIDCachesProfile(t *testing.T) {
	social := &fakeSocialGraph{byFID: map[int64]domain.UserProfile{
		3: {FID: 3, Username: "dwr", VerifiedAddresses: []string{"0xaa"}},
	}}
	svc := newUserService(t, social)

	first, err := svc.UserByFID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "dwr", first.Username)

	second, err := svc.UserByFID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, first.Username, second.Username)

	require.Equal(t, 1, social.fetchCalls, "second lookup must be served from cache")
}

func TestUserByFIDUnknown(t *testing.T) {
	svc := newUserService(t, &fakeSocialGraph{byFID: map[int64]domain.UserProfile{}})

	_, err := svc.UserByFID(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestVerifiedAddress(t *testing.T) {
	social := &fakeSocialGraph{byFID: map[int64]domain.UserProfile{
		3: {FID: 3, Username: "dwr", VerifiedAddresses: []string{"0xaa", "0xbb"}},
		7: {FID: 7, Username: "noaddr"},
	}}
	svc := newUserService(t, social)

	address, err := svc.VerifiedAddress(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "0xaa", address, "first verified address wins")

	_, err = svc.VerifiedAddress(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestDisplayNamesByAddress(t *testing.T) {
	social := &fakeSocialGraph{byAddress: map[string][]domain.UserProfile{
		"0xaa": {{FID: 3, Username: "dwr"}},
		"0xbb": {},
	}}
	svc := newUserService(t, social)

	names, err := svc.DisplayNamesByAddress(context.Background(), []string{"0xAA", "0xBB"})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"0xaa": "dwr"}, names)
}

func TestDisplayNamesByAddressEmptyInput(t *testing.T) {
	social := &fakeSocialGraph{}
	svc := newUserService(t, social)

	names, err := svc.DisplayNamesByAddress(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, names)
	require.Zero(t, social.fetchCalls, "no remote call for an empty address list")
}
