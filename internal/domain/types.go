package domain

// ID is used across domain entities.
type ID int64

// Viewer is the authenticated user attached to a request.
type Viewer struct {
	UserID   ID
	Username string
	Staff    bool
}
