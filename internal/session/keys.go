package session

// Logout reasons recorded by the store itself.
const (
	ReasonSessionTimeout = "session_timeout"
)

// Keys names the durable storage slots the session is persisted under.
type Keys struct {
	Token        string
	RefreshToken string
	User         string
	LogoutReason string
	LastActivity string
}

// DefaultKeys returns the storage key names used by the web portal.
func DefaultKeys() Keys {
	return Keys{
		Token:        "auth_token",
		RefreshToken: "refresh_token",
		User:         "auth_user",
		LogoutReason: "logout_reason",
		LastActivity: "last_activity",
	}
}

func (k Keys) withDefaults() Keys {
	d := DefaultKeys()
	if k.Token == "" {
		k.Token = d.Token
	}
	if k.RefreshToken == "" {
		k.RefreshToken = d.RefreshToken
	}
	if k.User == "" {
		k.User = d.User
	}
	if k.LogoutReason == "" {
		k.LogoutReason = d.LogoutReason
	}
	if k.LastActivity == "" {
		k.LastActivity = d.LastActivity
	}
	return k
}

// credentials returns the keys cleared on logout.
func (k Keys) credentials() []string {
	return []string{k.Token, k.RefreshToken, k.User, k.LastActivity}
}
