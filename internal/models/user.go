package models

import "time"

type User struct {
	ID     int64     `json:"m_user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Joined time.Time `json:"joined"`
}

// Credential is the login-table row. It is kept apart from User so password
// material never rides along on generic user reads.
type Credential struct {
	Email        string     `json:"-"`
	PasswordHash string     `json:"-"`
	ResetToken   *string    `json:"-"`
	ResetExpires *time.Time `json:"-"`
}
