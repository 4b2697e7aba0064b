package model

// User is a registered member who can own and book items.
type User struct {
	ID    int64
	Name  string
	Email string // unique across users
}
