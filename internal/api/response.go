package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

type errorBody struct {
	Kind    domain.ErrorKind `json:"kind,omitempty"`
	Message string           `json:"message"`
}

type response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

// StatusFor maps an error kind to the HTTP status returned for it.
func StatusFor(err error) int {
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return fiber.StatusInternalServerError
	}
	switch oe.Kind {
	case domain.KindInvalidCharacter, domain.KindInvalidInput, domain.KindInvalidConfig:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func applyError(c *fiber.Ctx, err error) error {
	body := &errorBody{Message: err.Error()}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		body.Kind = oe.Kind
	}
	return c.Status(StatusFor(err)).JSON(response{Error: body})
}

func applyBadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(response{
		Error: &errorBody{Kind: domain.KindInvalidInput, Message: msg},
	})
}

func applySuccess(c *fiber.Ctx, data any) error {
	return c.JSON(response{Success: true, Data: data})
}
