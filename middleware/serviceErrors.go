package middleware

import (
	"errors"

	"github.com/fishperson113/letslearn-backend/services"

	"github.com/gofiber/fiber/v2"
)

// ServiceErrorResponse maps a service-layer error onto the standard JSON
// response shape. Anything outside the known sentinels becomes a 500 with a
// generic message.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, services.ErrUnsupportedTopicType):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, services.ErrConflict):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, services.ErrPermissionDenied):
		return JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
