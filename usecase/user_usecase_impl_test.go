package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"auth-rest-api/config/common"
	"auth-rest-api/dto/req"
	"auth-rest-api/entity"
	"auth-rest-api/exception"
	"auth-rest-api/helper"
	"auth-rest-api/repository"
	"auth-rest-api/util"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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

func newTestUsecase(t *testing.T) (UserUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	config := common.NewViper()
	config.Viper.Set("BCRYPT_COST", bcrypt.MinCost)
	log := logrus.New()
	log.SetOutput(io.Discard)
	uc := NewUserUsecase(repository.NewUserRepository(), helper.NewValidator(), db, log, config)
	return uc, db
}

func registerRequest() *req.RegisterRequest {
	return &req.RegisterRequest{
		Name:         "Jo",
		Email:        "a@b.com",
		Phone:        "+15551234567",
		Address:      "1 Main Street",
		Password:     "Passw0rd!",
		ProfileImage: "images/1-abc.png",
	}
}

func TestRegister_Success(t *testing.T) {
	uc, db := newTestUsecase(t)

	response, err := uc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, response.ID)
	assert.Equal(t, "a@b.com", response.Email)
	assert.Equal(t, "images/1-abc.png", response.ProfileImage)
	assert.False(t, response.IsVerified)

	var stored entity.User
	require.NoError(t, db.Where("email = ?", "a@b.com").First(&stored).Error)
	assert.NotEqual(t, "Passw0rd!", stored.Password)
	assert.True(t, util.ComparePassword(stored.Password, "Passw0rd!"))
}

func TestRegister_NormalizesEmailBeforePersisting(t *testing.T) {
	uc, db := newTestUsecase(t)
	request := registerRequest()
	request.Email = "  A@B.Com "

	response, err := uc.Register(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, "a@b.com", response.Email)

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Where("email = ?", "a@b.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegister_ValidationFailure(t *testing.T) {
	uc, db := newTestUsecase(t)
	request := registerRequest()
	request.Name = ""
	request.Password = "Password!"

	_, err := uc.Register(context.Background(), request)

	var validationErr *exception.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegister_DuplicateEmailPreCheck(t *testing.T) {
	uc, db := newTestUsecase(t)
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	request := registerRequest()
	request.Phone = "+15559876543"
	_, err = uc.Register(context.Background(), request)

	var duplicateErr *exception.DuplicateUserError
	require.ErrorAs(t, err, &duplicateErr)
	assert.Equal(t, "User already exists!", err.Error())

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegister_DuplicatePhoneMappedFromUniqueIndex(t *testing.T) {
	// A phone conflict passes the email pre-check, so only the unique index
	// on the store can catch it.
	uc, _ := newTestUsecase(t)
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	request := registerRequest()
	request.Email = "c@d.com"
	_, err = uc.Register(context.Background(), request)

	var duplicateErr *exception.DuplicateUserError
	require.ErrorAs(t, err, &duplicateErr)
}
