package domain

// ID is the store-assigned identifier, immutable once set.
type ID string

type User struct {
	ID           ID
	Username     string
	PasswordHash string
	Roles        []string
	Active       bool
}
