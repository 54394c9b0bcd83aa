package models

import "github.com/warpmint/framepay/internal/domain"

// User is the social-graph API's user record.
type User struct {
	FID            int64  `json:"fid"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	PfpURL         string `json:"pfp_url"`
	FollowerCount  int    `json:"follower_count"`
	FollowingCount int    `json:"following_count"`
	Profile        struct {
		Bio struct {
			Text string `json:"text"`
		} `json:"bio"`
	} `json:"profile"`
	VerifiedAddresses struct {
		EthAddresses []string `json:"eth_addresses"`
	} `json:"verified_addresses"`
}

func (u *User) ToDomain() domain.UserProfile {
	return domain.UserProfile{
		FID:               u.FID,
		Username:          u.Username,
		DisplayName:       u.DisplayName,
		AvatarURL:         u.PfpURL,
		Bio:               u.Profile.Bio.Text,
		FollowerCount:     u.FollowerCount,
		FollowingCount:    u.FollowingCount,
		VerifiedAddresses: u.VerifiedAddresses.EthAddresses,
	}
}

// UserBulkResponse is returned by GET /user/bulk?fids=.
type UserBulkResponse struct {
	Users []User `json:"users"`
}

// UserSearchResponse is returned by GET /user/search?q=.
type UserSearchResponse struct {
	Result struct {
		Users []User `json:"users"`
	} `json:"result"`
}

// UsersByAddressResponse maps a queried address to the users verifying it.
type UsersByAddressResponse map[string][]User
