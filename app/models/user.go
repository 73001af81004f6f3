package models

// User is an account record. PasswordHash is a bcrypt hash; the plain-text
// password is never stored or serialised.
type User struct {
	Username     string `json:"username"      bson:"username"`
	Email        string `json:"email"         bson:"email"`
	PasswordHash string `json:"-"             bson:"password_hash"`
}
