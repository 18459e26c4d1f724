package middleware

import (
	"lms/progress"

	"github.com/gofiber/fiber/v2"
)

// CoreErrorResponse maps the progress package's error taxonomy onto HTTP
// statuses: not-found 404, validation 400, authorization 403, conflict 409.
func CoreErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case progress.IsNotFound(err):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case progress.IsValidation(err):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case progress.IsAuthorization(err):
		return JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	case progress.IsConflict(err):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
