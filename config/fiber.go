package config

import (
	"auth-rest-api/config/common"
	"github.com/gofiber/fiber/v2"
)

func NewFiber(cfg *common.Config, errorHandler fiber.ErrorHandler) *fiber.App {
	appName := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       appName,
		ErrorHandler:  errorHandler,
		// The upload middleware enforces the 5 MiB per-file limit itself;
		// the body limit only has to admit such a request plus form fields.
		// Streaming keeps fasthttp from rejecting an over-limit body at the
		// transport level, so even those requests reach the error handler
		// and get the JSON envelope.
		BodyLimit:         10 * 1024 * 1024,
		StreamRequestBody: true,
	})
}
