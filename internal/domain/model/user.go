package model

const RoleBasic = "basic"

type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"` // Not exposed
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture"`
	Level          int    `json:"level"`
}

// NewUser builds a user with the defaults every fresh account gets.
func NewUser(username, email, hashedPassword string) *User {
	return &User{
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		Role:           RoleBasic,
		ProfilePicture: "",
		Level:          0,
	}
}
