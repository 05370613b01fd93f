package config

import (
	"BlogGolang/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger, debug bool) *fiber.App {
	errHandler := handlerUtil.New(logger, debug)

	app := fiber.New(
		fiber.Config{
			AppName:               "Blog Backend",
			BodyLimit:             10 * 1024 * 1024,
			DisableKeepalive:      false,
			StrictRouting:         false,
			CaseSensitive:         true,
			DisableStartupMessage: !debug,
			JSONEncoder:           jsoniter.Marshal,
			JSONDecoder:           jsoniter.Unmarshal,
			ErrorHandler:          errHandler.FiberErrorHandler,
		})

	return app
}
