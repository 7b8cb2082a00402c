package repository

import (
	"time"

	"github.com/linskybing/docflow/internal/domain/signing"
	"gorm.io/gorm"
)

type SigningTokenRepo interface {
	CreateSigningToken(t *signing.Token) error
	GetSigningToken(token string) (signing.Token, error)
	ClaimSigningToken(id uint, at time.Time) (bool, error)
	RevokeSigningTokens(documentID uint, email string, at time.Time) error
	ListSigningTokensByDocument(documentID uint) ([]signing.Token, error)
	DeleteSigningTokensByDocument(documentID uint) error
	WithTx(tx *gorm.DB) SigningTokenRepo
}

type DBSigningTokenRepo struct {
	db *gorm.DB
}

func NewSigningTokenRepo(db *gorm.DB) *DBSigningTokenRepo {
	return &DBSigningTokenRepo{
		db: db,
	}
}

func (r *DBSigningTokenRepo) CreateSigningToken(t *signing.Token) error {
	return r.db.Create(t).Error
}

func (r *DBSigningTokenRepo) GetSigningToken(token string) (signing.Token, error) {
	var t signing.Token
	if err := r.db.Where("token = ?", token).First(&t).Error; err != nil {
		return t, err
	}
	return t, nil
}

// ClaimSigningToken marks an unused token as used. It reports false when
// another request already claimed it.
func (r *DBSigningTokenRepo) ClaimSigningToken(id uint, at time.Time) (bool, error) {
	res := r.db.Model(&signing.Token{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// RevokeSigningTokens expires the outstanding links of a document. An empty
// email revokes every signer's links.
func (r *DBSigningTokenRepo) RevokeSigningTokens(documentID uint, email string, at time.Time) error {
	q := r.db.Model(&signing.Token{}).Where("document_id = ? AND used_at IS NULL", documentID)
	if email != "" {
		q = q.Where("LOWER(signer_email) = ?", email)
	}
	return q.Update("used_at", at).Error
}

func (r *DBSigningTokenRepo) ListSigningTokensByDocument(documentID uint) ([]signing.Token, error) {
	var list []signing.Token
	err := r.db.Where("document_id = ?", documentID).Order("created_at ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *DBSigningTokenRepo) DeleteSigningTokensByDocument(documentID uint) error {
	return r.db.Where("document_id = ?", documentID).Delete(&signing.Token{}).Error
}

func (r *DBSigningTokenRepo) WithTx(tx *gorm.DB) SigningTokenRepo {
	if tx == nil {
		return r
	}
	return &DBSigningTokenRepo{
		db: tx,
	}
}
