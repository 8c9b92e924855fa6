package usecase

import (
	"context"
	"errors"

	"auth-rest-api/config/common"
	"auth-rest-api/dto/req"
	"auth-rest-api/dto/res"
	"auth-rest-api/entity"
	"auth-rest-api/exception"
	"auth-rest-api/helper"
	"auth-rest-api/repository"
	"auth-rest-api/util"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	Config *common.Config
}

func NewUserUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, config *common.Config) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, Validate: validate, DB: DB, Logger: logger, Config: config}
}

func (uc *UserUsecaseImpl) Register(ctx context.Context, request *req.RegisterRequest) (res.UserResponse, error) {
	// validate request
	if violations := helper.ValidateRegister(uc.Validate, request); len(violations) > 0 {
		uc.Logger.Warnf("Rejected registration with %d validation errors", len(violations))
		return res.UserResponse{}, exception.NewValidationError(violations)
	}
	// start transaction
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	// duplicate pre-check; an early exit only, the unique indexes below are
	// what actually guards against a concurrent insert
	_, err := uc.UserRepository.FindByEmail(trx, request.Email)
	if err == nil {
		return res.UserResponse{}, exception.NewDuplicateUserError()
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		uc.Logger.WithError(err).Errorf("Failed to look up email = %v", err)
		return res.UserResponse{}, err
	}

	// hash password
	hashPassword, err := util.HashPassword(request.Password, uc.Config.GetBcryptCost())
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to hash password = %v", err)
		return res.UserResponse{}, err
	}

	// mapping request to entity
	newUser := &entity.User{
		Name:         request.Name,
		Email:        request.Email,
		Password:     hashPassword,
		Phone:        request.Phone,
		Address:      request.Address,
		ProfileImage: request.ProfileImage,
	}
	// save to db
	if err := uc.UserRepository.Save(ctx, trx, newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return res.UserResponse{}, exception.NewDuplicateUserError()
		}
		uc.Logger.WithError(err).Errorf("failed to save user : %v", err)
		return res.UserResponse{}, err
	}
	// if success commit else rollback
	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Errorf("failed to commit user : %v", err)
		return res.UserResponse{}, err
	}
	// mapping response
	return res.UserResponse{
		ID:           newUser.ID,
		Name:         newUser.Name,
		Email:        newUser.Email,
		Phone:        newUser.Phone,
		Address:      newUser.Address,
		IsVerified:   newUser.IsVerified,
		ProfileImage: newUser.ProfileImage,
		CreatedAt:    newUser.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
