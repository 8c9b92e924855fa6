package repository

import (
	"auth-rest-api/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByEmail is an exact-match lookup. Callers pass the email already
// normalized to lower case.
func (repository UserRepository) FindByEmail(db *gorm.DB, email string) (entity.User, error) {
	user := &entity.User{}
	err := db.Where("email = ?", email).First(user).Error
	if err != nil {
		return *user, err
	}
	return *user, err
}
