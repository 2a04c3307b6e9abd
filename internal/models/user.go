package models

// User is a tracked household member that transactions are attributed to.
// It is not an authentication identity; sign-in is handled by the auth
// gateway and household users exist independently of provider accounts.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatar_url"`
}
