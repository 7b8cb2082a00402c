package repository

import (
	"github.com/linskybing/docflow/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetAllUsers() ([]user.User, error)
	GetUserByID(id uint) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	SaveUser(u *user.User) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetAllUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Where("placeholder = ?", false).Order("name ASC").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

// GetUserByEmail expects email already normalized.
func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
