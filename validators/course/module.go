package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title               string     `json:"title"`
			Description         string     `json:"description"`
			ModuleNumber        int        `json:"module_number"`
			SequentialAccess    bool       `json:"sequential_access"`
			AllowSkip           *bool      `json:"allow_skip"`
			MaxAttempts         int        `json:"max_attempts"`
			PrerequisiteModules []int      `json:"prerequisite_modules"`
			AllowedRoles        []string   `json:"allowed_roles"`
			IsPremiumOnly       bool       `json:"is_premium_only"`
			AvailableFrom       *time.Time `json:"available_from"`
			AvailableUntil      *time.Time `json:"available_until"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.ModuleNumber < 1 {
			errors["module_number"] = "Module number must be greater than 0!"
		}
		if reqData.MaxAttempts < 0 {
			errors["max_attempts"] = "Max attempts must not be negative!"
		}
		for _, num := range reqData.PrerequisiteModules {
			if num < 1 {
				errors["prerequisite_modules"] = "Prerequisite module numbers must be greater than 0!"
				break
			}
			if num == reqData.ModuleNumber {
				errors["prerequisite_modules"] = "A module cannot be its own prerequisite!"
				break
			}
		}
		for _, role := range reqData.AllowedRoles {
			switch role {
			case "STUDENT", "INSTRUCTOR", "ADMIN":
			default:
				errors["allowed_roles"] = "Roles must be STUDENT, INSTRUCTOR or ADMIN!"
			}
		}
		if reqData.AvailableFrom != nil && reqData.AvailableUntil != nil && reqData.AvailableUntil.Before(*reqData.AvailableFrom) {
			errors["available_until"] = "Availability window ends before it starts!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID    uint   `json:"module_id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			ContentType string `json:"content_type"`
			Duration    int    `json:"duration"`
			OrderIndex  int    `json:"order_index"`
			IsRequired  *bool  `json:"is_required"`
			TextContent string `json:"text_content"`
			VideoURL    string `json:"video_url"`
			ResourceURL string `json:"resource_url"`
			QuizQuestions []struct {
				Prompt       string   `json:"prompt"`
				Options      []string `json:"options"`
				CorrectIndex int      `json:"correct_index"`
			} `json:"quiz_questions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["module_id"] = "Module ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		switch reqData.ContentType {
		case "", "TEXT", "VIDEO", "QUIZ", "ASSIGNMENT", "INTERACTIVE", "RESOURCE":
		default:
			errors["content_type"] = "Invalid content type!"
		}
		if reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}
		if reqData.ContentType == "QUIZ" {
			if len(reqData.QuizQuestions) == 0 {
				errors["quiz_questions"] = "A quiz needs at least one question!"
			}
			for _, q := range reqData.QuizQuestions {
				if len(q.Options) < 2 || q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
					errors["quiz_questions"] = "Each question needs two or more options and a valid correct index!"
					break
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

// ModuleContentParams validates :course_id and :module_id route parameters
func ModuleContentParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("course_id"))
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, err := strconv.Atoi(c.Params("module_id"))
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}
