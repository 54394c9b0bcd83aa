package domain

// UserProfile is a social-graph user, fetched on demand and cached by fid.
type UserProfile struct {
	FID               int64    `json:"fid"`
	Username          string   `json:"username"`
	DisplayName       string   `json:"display_name"`
	AvatarURL         string   `json:"avatar_url"`
	Bio               string   `json:"bio"`
	FollowerCount     int      `json:"follower_count"`
	FollowingCount    int      `json:"following_count"`
	VerifiedAddresses []string `json:"verified_addresses"`
}

// PrimaryAddress returns the first verified address, or empty when the
// user has none.
func (u *UserProfile) PrimaryAddress() string {
	if len(u.VerifiedAddresses) == 0 {
		return ""
	}
	return u.VerifiedAddresses[0]
}
