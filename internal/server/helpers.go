package server

import (
	"errors"

	"kindling/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint. A
// non-numeric or non-positive value means the path addresses no resource,
// so a 404 is written and errResponseWritten returned.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Resource", c.Params(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondWithAppError maps the error taxonomy to HTTP status codes:
// validation failures are 400, missing resources 404, everything else 500.
func respondWithAppError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		}
	}
	return models.RespondWithError(c, status, err)
}
