package middleware

import (
	"auth-rest-api/config/common"
	"github.com/sirupsen/logrus"
)

type Middleware struct {
	*common.Config
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, Log: logger}
}
