package config

import (
	"auth-rest-api/config/common"
	"auth-rest-api/config/logger"
	"auth-rest-api/handler"
	"auth-rest-api/helper"
	"auth-rest-api/middleware"
	"auth-rest-api/repository"
	"auth-rest-api/routes"
	"auth-rest-api/usecase"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*middleware.Middleware
	Config *common.Config
}

func RunServer() {
	newConfig := common.NewViper()
	log := NewLogger()
	appLogger := logger.NewAppLogger()
	newDB := NewDB(newConfig, appLogger)
	newValidator := helper.NewValidator()
	newMiddleware := middleware.NewMiddleware(newConfig, log)
	app := NewFiber(newConfig, newMiddleware.ErrorHandler)

	// middleware CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		DBConfig:   newDB,
		Middleware: newMiddleware,
		Config:     newConfig,
	})

	defer func() {
		if err := newDB.Close(); err != nil {
			log.WithError(err).Error("Failed to close database connection")
		}
	}()

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newUserRepository := repository.NewUserRepository()

	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.Config)

	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)

	route := routes.ConfigRoute{
		App:         aC.App,
		Middleware:  aC.Middleware,
		UserHandler: newUserHandler,
	}
	route.GetRoute()
}
