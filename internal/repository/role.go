package repository

import (
	"time"

	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepo interface {
	CreateRole(role *document.Role) error
	ListRolesByDocument(documentID uint) (document.RoleSet, error)
	ListRolesByDocuments(documentIDs []uint) ([]document.Role, error)
	ListRolesByHolder(userID uint, email string) ([]document.Role, error)
	DeleteRoles(ids []uint) error
	DeleteRolesByDocument(documentID uint) error
	SetLastViewed(ids []uint, at *time.Time) error
	ClaimPendingRoles(email string, userID uint) (int64, error)
	WithTx(tx *gorm.DB) RoleRepo
}

type DBRoleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) *DBRoleRepo {
	return &DBRoleRepo{
		db: db,
	}
}

func (r *DBRoleRepo) CreateRole(role *document.Role) error {
	if err := r.db.Omit(clause.Associations).Create(role).Error; err != nil {
		return err
	}
	if role.AssignedUserID != nil && role.AssignedUser == nil {
		var u user.User
		if err := r.db.First(&u, *role.AssignedUserID).Error; err != nil {
			return err
		}
		role.AssignedUser = &u
	}
	return nil
}

func (r *DBRoleRepo) ListRolesByDocument(documentID uint) (document.RoleSet, error) {
	var roles []document.Role
	err := r.db.Preload("AssignedUser").
		Where("document_id = ?", documentID).
		Order("id ASC").
		Find(&roles).Error
	return document.RoleSet(roles), err
}

func (r *DBRoleRepo) ListRolesByDocuments(documentIDs []uint) ([]document.Role, error) {
	var roles []document.Role
	if len(documentIDs) == 0 {
		return roles, nil
	}
	err := r.db.Preload("AssignedUser").
		Where("document_id IN ?", documentIDs).
		Order("id ASC").
		Find(&roles).Error
	return roles, err
}

// ListRolesByHolder returns rows bound to the account or still pending on its email.
func (r *DBRoleRepo) ListRolesByHolder(userID uint, email string) ([]document.Role, error) {
	var roles []document.Role
	err := r.db.Preload("AssignedUser").
		Where("assigned_user_id = ? OR (assigned_user_id IS NULL AND pending_email = ?)", userID, email).
		Order("id ASC").
		Find(&roles).Error
	return roles, err
}

func (r *DBRoleRepo) DeleteRoles(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", ids).Delete(&document.Role{}).Error
}

func (r *DBRoleRepo) DeleteRolesByDocument(documentID uint) error {
	return r.db.Where("document_id = ?", documentID).Delete(&document.Role{}).Error
}

func (r *DBRoleRepo) SetLastViewed(ids []uint, at *time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&document.Role{}).Where("id IN ?", ids).Update("last_viewed_at", at).Error
}

// ClaimPendingRoles binds every pending row for email to the new account.
func (r *DBRoleRepo) ClaimPendingRoles(email string, userID uint) (int64, error) {
	res := r.db.Model(&document.Role{}).
		Where("assigned_user_id IS NULL AND pending_email = ?", email).
		Updates(map[string]any{
			"assigned_user_id": userID,
			"pending_email":    "",
			"pending_name":     "",
		})
	return res.RowsAffected, res.Error
}

func (r *DBRoleRepo) WithTx(tx *gorm.DB) RoleRepo {
	if tx == nil {
		return r
	}
	return &DBRoleRepo{
		db: tx,
	}
}
