package domain

import "time"

// DefaultProfilePicture is served for users who never uploaded one.
const DefaultProfilePicture = "https://blogger.googleusercontent.com/img/b/R29vZ2xl/AVvXsEjiJ2fA_6qbVyMQYmadZvugF7fOmZqdVJdDP9-KznNQoaD9NaRuxzeHh5h_xThENPV1dq-SpQny5Gvts5HkD_ajrhz5ZvHtKhyphenhyphenjPMTHgt7xOn_HzPzLYjIXRknb7wQvnBW5Bigy_Y1h2AECvodR-21upP2jOUYDO8Cbp3SSK9xDKU1te4yOyw1ZpW0kU0B_/s200/default_profile_picture.jpg"

type User struct {
	Username       string // primary key, unique
	Name           string // display name
	PasswordHash   string // bcrypt encoded, never plaintext
	ProfilePicture *string // path or URL, nil until first upload
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Picture returns the stored profile picture reference, falling back to
// the well-known default when the user never set one.
func (u User) Picture() string {
	if u.ProfilePicture != nil && *u.ProfilePicture != "" {
		return *u.ProfilePicture
	}
	return DefaultProfilePicture
}
