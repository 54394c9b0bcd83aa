package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/domain/interfaces"
	"github.com/warpmint/framepay/pkg/cache"
)

const searchLimit = 10

type userService struct {
	social interfaces.SocialGraphClient
	cache  *cache.Cache[int64, domain.UserProfile]
	logger zerolog.Logger
}

func NewUserService(
	social interfaces.SocialGraphClient,
	userCache *cache.Cache[int64, domain.UserProfile],
	logger zerolog.Logger,
) IUserService {
	return &userService{
		social: social,
		cache:  userCache,
		logger: logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) UserByFID(ctx context.Context, fid int64) (*domain.UserProfile, error) {
	if profile, ok := s.cache.Get(fid); ok {
		return &profile, nil
	}

	profiles, err := s.social.UsersByFIDs(ctx, []int64{fid})
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("fid %d: %w", fid, domain.ErrUserNotFound)
	}

	profile := profiles[0]
	s.cache.Add(fid, profile)

	s.logger.Debug().
		Int64("fid", fid).
		Str("username", profile.Username).
		Int("cache_len", s.cache.Len()).
		Msg("User profile fetched and cached")

	return &profile, nil
}

func (s *userService) VerifiedAddress(ctx context.Context, fid int64) (string, error) {
	profile, err := s.UserByFID(ctx, fid)
	if err != nil {
		return "", err
	}

	address := profile.PrimaryAddress()
	if address == "" {
		return "", fmt.Errorf("fid %d has no verified address: %w", fid, domain.ErrValidation)
	}
	return address, nil
}

func (s *userService) SearchUsers(ctx context.Context, query string) ([]domain.UserProfile, error) {
	return s.social.SearchUsers(ctx, query, searchLimit)
}

func (s *userService) DisplayNamesByAddress(ctx context.Context, addresses []string) (map[string]string, error) {
	if len(addresses) == 0 {
		return map[string]string{}, nil
	}

	byAddress, err := s.social.UsersByAddresses(ctx, addresses)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(byAddress))
	for address, profiles := range byAddress {
		if len(profiles) > 0 {
			names[strings.ToLower(address)] = profiles[0].Username
		}
	}
	return names, nil
}
