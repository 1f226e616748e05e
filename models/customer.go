package models

import "time"

type Membership string

const (
	MembershipBronze Membership = "B"
	MembershipSilver Membership = "S"
	MembershipGold   Membership = "G"
)

func (m Membership) Valid() bool {
	switch m {
	case MembershipBronze, MembershipSilver, MembershipGold:
		return true
	}
	return false
}

// Identity is the authenticated caller as vouched for by the bearer token.
type Identity struct {
	UserID  int64
	Email   string
	IsStaff bool
}

type Customer struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Phone      string     `json:"phone"`
	BirthDate  *time.Time `json:"birth_date"`
	Membership Membership `json:"membership"`
}
