package usecase

import (
	"context"

	"auth-rest-api/dto/req"
	"auth-rest-api/dto/res"
)

type UserUsecase interface {
	Register(ctx context.Context, request *req.RegisterRequest) (res.UserResponse, error)
}
