// server/internal/models/user.go
package models

// User matches the stored credential record.
type User struct {
	ID           int64  `bson:"_id" json:"id"`
	Email        string `bson:"email" json:"email"`
	Name         string `bson:"name" json:"name"`
	PasswordHash string `bson:"passwordHash" json:"-"`
}

// PublicUser is a User without its credential.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
