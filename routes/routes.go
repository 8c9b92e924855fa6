package routes

import (
	"auth-rest-api/handler"
	"auth-rest-api/middleware"
	"github.com/gofiber/fiber/v2"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.UserHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/user")
	app.Post("/register", rc.Middleware.UploadSingle, rc.UserHandler.Register)
}
