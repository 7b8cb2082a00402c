package document

import (
	"testing"

	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func uidPtr(v uint) *uint { return &v }

func sampleRoles() RoleSet {
	return RoleSet{
		{ID: 1, DocumentID: 9, TaskRole: RoleCreator, AssignedUserID: uidPtr(1), AssignedUser: &user.User{ID: 1, Email: "creator@x.io"}},
		{ID: 2, DocumentID: 9, TaskRole: RoleEditor, AssignedUserID: uidPtr(2), AssignedUser: &user.User{ID: 2, Email: "editor@x.io"}},
		{ID: 3, DocumentID: 9, TaskRole: RoleSigner, PendingEmail: "guest@x.io", PendingName: "Guest"},
		{ID: 4, DocumentID: 9, TaskRole: RoleSigner, AssignedUserID: uidPtr(4), AssignedUser: &user.User{ID: 4, Email: "Signer@X.io"}},
	}
}

func TestRoleSetQueries(t *testing.T) {
	roles := sampleRoles()

	assert.Len(t, roles.FindByRole(RoleSigner), 2)
	assert.True(t, roles.ExistsByRole(RoleEditor))
	assert.False(t, roles.ExistsByRole(RoleReviewer))

	editor, ok := roles.Sole(RoleEditor)
	assert.True(t, ok)
	assert.Equal(t, uint(2), editor.ID)

	assert.ElementsMatch(t, []string{"guest@x.io", "signer@x.io"}, roles.Emails(RoleSigner))
}

func TestRoleSetHolds(t *testing.T) {
	roles := sampleRoles()

	assert.True(t, roles.Holds(user.Actor{ID: 2}, RoleCreator, RoleEditor))
	assert.False(t, roles.Holds(user.Actor{ID: 2}, RoleSigner))
	// pending rows match by email until the account claims them
	assert.True(t, roles.Holds(user.Actor{ID: 77, Email: "GUEST@x.io"}, RoleSigner))
	assert.False(t, roles.Holds(user.Actor{ID: 78, Email: "other@x.io"}, RoleSigner))
}

func TestRoleIndex(t *testing.T) {
	rows := append(sampleRoles(), Role{ID: 5, DocumentID: 3, TaskRole: RoleCreator})
	idx := IndexRoles(rows)

	assert.Equal(t, []uint{3, 9}, idx.DocumentIDs())
	assert.Len(t, idx.For(9), 4)
	assert.Empty(t, idx.For(100))
	assert.Len(t, idx.For(9).Without(3, 4), 2)
}
