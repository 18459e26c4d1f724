package courseValidator

import (
	"lms/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ContentParams validates :course_id and :content_id route parameters
func ContentParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("course_id"))
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		contentID, err := strconv.Atoi(c.Params("content_id"))
		if err != nil || contentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("contentID", contentID)
		return c.Next()
	}
}

func MarkContentComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TimeSpent int `json:"time_spent"`
		})

		// Body is optional; a bare POST counts as zero minutes.
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		if reqData.TimeSpent < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"time_spent": "Time spent must not be negative!",
			})
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers []int `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "Please answer at least one question!",
			})
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
