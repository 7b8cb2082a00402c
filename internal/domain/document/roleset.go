package document

import (
	"sort"

	"github.com/linskybing/docflow/internal/domain/user"
)

// RoleSet is the loaded role assignment collection of a single document.
type RoleSet []Role

func (s RoleSet) FindByRole(role TaskRole) []Role {
	var out []Role
	for _, r := range s {
		if r.TaskRole == role {
			out = append(out, r)
		}
	}
	return out
}

func (s RoleSet) ExistsByRole(role TaskRole) bool {
	for _, r := range s {
		if r.TaskRole == role {
			return true
		}
	}
	return false
}

// Sole returns the single holder of an exclusive role.
func (s RoleSet) Sole(role TaskRole) (Role, bool) {
	for _, r := range s {
		if r.TaskRole == role {
			return r, true
		}
	}
	return Role{}, false
}

// Holds reports whether actor is assigned any of roles.
func (s RoleSet) Holds(actor user.Actor, roles ...TaskRole) bool {
	return len(s.ForIdentity(ActorIdentity(actor), roles...)) > 0
}

// ForIdentity lists the rows bound to id, optionally limited to roles.
func (s RoleSet) ForIdentity(id Identity, roles ...TaskRole) []Role {
	var out []Role
	for _, r := range s {
		if len(roles) > 0 && !containsRole(roles, r.TaskRole) {
			continue
		}
		if r.Identity().Matches(id) {
			out = append(out, r)
		}
	}
	return out
}

// Emails returns the normalized emails of every holder of role.
func (s RoleSet) Emails(role TaskRole) []string {
	var out []string
	for _, r := range s.FindByRole(role) {
		if e := user.NormalizeEmail(r.Identity().Email); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func (s RoleSet) Without(ids ...uint) RoleSet {
	drop := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	var out RoleSet
	for _, r := range s {
		if _, ok := drop[r.ID]; !ok {
			out = append(out, r)
		}
	}
	return out
}

func containsRole(roles []TaskRole, role TaskRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleIndex groups role rows by document id.
type RoleIndex map[uint]RoleSet

func IndexRoles(rows []Role) RoleIndex {
	idx := make(RoleIndex)
	for _, r := range rows {
		idx[r.DocumentID] = append(idx[r.DocumentID], r)
	}
	return idx
}

func (idx RoleIndex) For(documentID uint) RoleSet {
	return idx[documentID]
}

// DocumentIDs returns the indexed ids in ascending order.
func (idx RoleIndex) DocumentIDs() []uint {
	ids := make([]uint, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
