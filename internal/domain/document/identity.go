package document

import "github.com/linskybing/docflow/internal/domain/user"

// Identity is either a resolved user account (UserID != 0) or a pending
// email/name pair awaiting an account.
type Identity struct {
	UserID uint
	Email  string
	Name   string
}

func Resolved(u user.User) Identity {
	return Identity{UserID: u.ID, Email: u.Email, Name: u.Name}
}

func Pending(email, name string) Identity {
	return Identity{Email: user.NormalizeEmail(email), Name: name}
}

func ActorIdentity(a user.Actor) Identity {
	return Identity{UserID: a.ID, Email: a.Email, Name: a.Name}
}

func (i Identity) IsPending() bool {
	return i.UserID == 0
}

// Matches compares by account when both sides are resolved, else by email.
func (i Identity) Matches(other Identity) bool {
	if !i.IsPending() && !other.IsPending() {
		return i.UserID == other.UserID
	}
	if i.Email == "" || other.Email == "" {
		return false
	}
	return user.EqualEmail(i.Email, other.Email)
}

func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}
