package models

// User is the single credential record. Only one row/document with UserID "admin" exists.
type User struct {
	UserID       string `json:"_id" bson:"_id" db:"user_id"`
	PasswordHash string `json:"-" bson:"passwordHash" db:"password_hash"`
	UpdatedAt    string `json:"updatedAt" bson:"updatedAt" db:"updated_at"`
}

// SharedUserID identifies the shared credential record.
const SharedUserID = "admin"
