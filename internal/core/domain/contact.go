package domain

import "time"

// Contact is a per-user address-book entry. UserID references the owning
// User and never changes after creation; there is no update or delete path.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	UserID    string
	CreatedAt time.Time
}
