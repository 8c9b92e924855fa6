package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"auth-rest-api/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}))
	return db
}

func newStoredUser(email, phone string) *entity.User {
	return &entity.User{
		Name:         "Jo",
		Email:        email,
		Password:     "$2a$10$notarealdigestnotarealdigestnotarealdig",
		Phone:        phone,
		Address:      "1 Main Street",
		ProfileImage: "images/1-abc.png",
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()
	require.NoError(t, repo.Save(context.Background(), db, newStoredUser("a@b.com", "+15551234567")))

	user, err := repo.FindByEmail(db, "a@b.com")

	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NotEmpty(t, user.ID)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	_, err := repo.FindByEmail(db, "nobody@b.com")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_Save_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, db, newStoredUser("a@b.com", "+15551234567")))

	err := repo.Save(ctx, db, newStoredUser("a@b.com", "+15559876543"))

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_Save_DuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, db, newStoredUser("a@b.com", "+15551234567")))

	err := repo.Save(ctx, db, newStoredUser("c@d.com", "+15551234567"))

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_FindById(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()
	ctx := context.Background()
	stored := newStoredUser("a@b.com", "+15551234567")
	require.NoError(t, repo.Save(ctx, db, stored))

	var found entity.User
	err := repo.FindById(ctx, db, &found, stored.ID)

	assert.NoError(t, err)
	assert.Equal(t, stored.Email, found.Email)
}
