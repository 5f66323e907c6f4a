package domain

import userdomain "github.com/technotes/backend/internal/user/domain"

// Note is owned by exactly one user. This service only consults notes to
// guard user deletion; it never mutates them.
type Note struct {
	ID        string
	UserID    userdomain.ID
	Title     string
	Text      string
	Completed bool
}
