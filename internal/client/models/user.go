// Package models defines client-side data models used by the toneflow CLI.
package models

// User is a demonstration-grade credential record. Password is stored in
// plain text.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session identifies the active user. It is passed explicitly to every
// operation that needs it.
type Session struct {
	Email string `json:"email"`
}
