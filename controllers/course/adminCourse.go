package courseController

import (
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progress"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a new course owned by the requesting instructor/admin
func (ctrl *Controller) CreateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Difficulty  string `json:"difficulty"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		InstructorID: user.ID,
	}
	if reqData.Difficulty != "" {
		course.Difficulty = reqData.Difficulty
	}

	if err := ctrl.DB.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates course fields; only the owning instructor or an admin may do this
func (ctrl *Controller) UpdateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if user.Role != "ADMIN" && course.InstructorID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	reqData := new(struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
		Difficulty  *string `json:"difficulty"`
		Status      *string `json:"status"`
		IsPublished *bool   `json:"is_published"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Category != nil {
		course.Category = *reqData.Category
	}
	if reqData.Difficulty != nil {
		course.Difficulty = *reqData.Difficulty
	}
	if reqData.Status != nil {
		course.Status = *reqData.Status
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}

	if err := ctrl.DB.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse soft-deletes a course; admin only (enforced by route middleware)
func (ctrl *Controller) DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	course.IsPublished = false
	if err := ctrl.DB.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// CreateModule adds a module to a course
func (ctrl *Controller) CreateModule(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if user.Role != "ADMIN" && course.InstructorID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Module numbers are unique within a course
	var existing courseModels.Module
	if err := ctrl.DB.Where("course_id = ? AND module_number = ? AND is_deleted = ?", courseID, reqData.ModuleNumber, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A module with this number already exists!", nil)
	}

	module := courseModels.Module{
		CourseID:            uint(courseID),
		Title:               reqData.Title,
		Description:         reqData.Description,
		ModuleNumber:        reqData.ModuleNumber,
		SequentialAccess:    reqData.SequentialAccess,
		AllowSkip:           true,
		MaxAttempts:         reqData.MaxAttempts,
		PrerequisiteModules: reqData.PrerequisiteModules,
		AllowedRoles:        reqData.AllowedRoles,
		IsPremiumOnly:       reqData.IsPremiumOnly,
		AvailableFrom:       reqData.AvailableFrom,
		AvailableUntil:      reqData.AvailableUntil,
	}
	if reqData.AllowSkip != nil {
		module.AllowSkip = *reqData.AllowSkip
	}

	if err := ctrl.DB.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// CreateContent adds a content item to a module and recomputes the module's
// estimated duration from its content list
func (ctrl *Controller) CreateContent(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if user.Role != "ADMIN" && course.InstructorID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	reqData, ok := c.Locals("validatedContent").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var module courseModels.Module
	if err := ctrl.DB.Where("id = ? AND course_id = ? AND is_deleted = ?", reqData.ModuleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	content := courseModels.ContentItem{
		CourseID:    uint(courseID),
		ModuleID:    module.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Duration:    reqData.Duration,
		OrderIndex:  reqData.OrderIndex,
		IsRequired:  true,
		TextContent: reqData.TextContent,
		VideoURL:    reqData.VideoURL,
		ResourceURL: reqData.ResourceURL,
		IsPublished: true,
	}
	if reqData.ContentType != "" {
		content.ContentType = reqData.ContentType
	}
	if reqData.IsRequired != nil {
		content.IsRequired = *reqData.IsRequired
	}
	for _, q := range reqData.QuizQuestions {
		content.QuizQuestions = append(content.QuizQuestions, courseModels.QuizQuestion{
			Prompt:       q.Prompt,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
		})
	}

	if err := ctrl.DB.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	// Recompute the module's estimated duration from its content list
	var items []courseModels.ContentItem
	ctrl.DB.Where("module_id = ? AND is_deleted = ?", module.ID, false).Find(&items)
	module.EstimatedDuration = progress.ModuleEstimatedDuration(items)
	ctrl.DB.Save(&module)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}
