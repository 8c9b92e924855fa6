package handler

import (
	"os"

	"auth-rest-api/dto/req"
	"auth-rest-api/dto/res"
	"auth-rest-api/middleware"
	"auth-rest-api/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) Register(ctx *fiber.Ctx) error {
	// parse request; the upload middleware already ran and stored the image
	payload := new(req.RegisterRequest)
	if err := ctx.BodyParser(payload); err != nil {
		handler.discardUpload(ctx)
		return err
	}
	storedPath, _ := ctx.Locals(middleware.LocalProfileImage).(string)
	payload.ProfileImage = storedPath

	// get from useCase
	userResponse, err := handler.UserUsecase.Register(ctx.Context(), payload)
	if err != nil {
		handler.discardUpload(ctx)
		handler.Logger.WithError(err).Errorf("Failed to register new user: %v", err)
		return err
	}
	// response
	response := res.CommonResponse[res.UserResponse]{
		Success: true,
		Message: "User registered successfully",
		User:    userResponse,
	}
	handler.Logger.Infof("Success register user with id: %s", userResponse.ID)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

// discardUpload removes the stored image when a later pipeline stage fails,
// so a rejected registration leaves no orphaned file behind.
func (handler *UserHandler) discardUpload(ctx *fiber.Ctx) {
	diskPath, ok := ctx.Locals(middleware.LocalProfileImagePath).(string)
	if !ok || diskPath == "" {
		return
	}
	if err := os.Remove(diskPath); err != nil {
		handler.Logger.WithError(err).Warnf("Failed to remove stored upload %s", diskPath)
	}
}
