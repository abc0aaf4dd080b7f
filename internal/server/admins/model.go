package admins

import "time"

// Admin is an operator account of the admin surface.
type Admin struct {
	ID        string
	UserName  string
	Salt      []byte
	Hash      []byte
	CreatedAt time.Time
}
