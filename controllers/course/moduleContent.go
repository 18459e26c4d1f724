package courseController

import (
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progress"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetModuleContent returns a module's content items for an enrolled user,
// gated by the module access check
func (ctrl *Controller) GetModuleContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var enrollment courseModels.Enrollment
	if err := ctrl.DB.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var module courseModels.Module
	if err := ctrl.DB.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	decision := progress.CanAccess(&module, &user, &enrollment, time.Now())
	if !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, decision)
	}

	var contents []courseModels.ContentItem
	if err := ctrl.DB.Where("module_id = ? AND is_deleted = ? AND is_published = ?", moduleID, false, true).
		Order("order_index asc").Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	// Hide quiz answers from students
	for i := range contents {
		for j := range contents[i].QuizQuestions {
			contents[i].QuizQuestions[j].CorrectIndex = -1
		}
	}

	var moduleProgress courseModels.ModuleProgress
	hasProgress := ctrl.DB.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, moduleID, false).First(&moduleProgress).Error == nil

	result := fiber.Map{
		"module":   module,
		"contents": contents,
	}
	if hasProgress {
		result["module_progress"] = moduleProgress
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module content fetched successfully!", result)
}

// MarkContentComplete records a completed content item on the user's module
// progress record
func (ctrl *Controller) MarkContentComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	contentID := c.Locals("contentID").(int)

	reqData, _ := c.Locals("validatedCompletion").(*struct {
		TimeSpent int `json:"time_spent"`
	})
	timeSpent := 0
	if reqData != nil {
		timeSpent = reqData.TimeSpent
	}

	var content courseModels.ContentItem
	if err := ctrl.DB.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", contentID, courseID, false, true).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := ctrl.DB.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	result, err := ctrl.applyContentCompletion(userID, &content, timeSpent, 0)
	if err != nil {
		return middleware.CoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content marked as completed successfully!", result)
}

// applyContentCompletion loads or creates the module progress record, applies
// the completion through the aggregator and saves it back
func (ctrl *Controller) applyContentCompletion(userID uint, content *courseModels.ContentItem, timeSpent, score int) (fiber.Map, error) {
	var items []courseModels.ContentItem
	if err := ctrl.DB.Where("module_id = ? AND is_deleted = ? AND is_published = ?", content.ModuleID, false, true).Find(&items).Error; err != nil {
		return nil, err
	}

	var moduleProgress courseModels.ModuleProgress
	if err := ctrl.DB.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, content.ModuleID, false).First(&moduleProgress).Error; err != nil {
		moduleProgress = courseModels.ModuleProgress{
			UserID:   userID,
			CourseID: content.CourseID,
			ModuleID: content.ModuleID,
		}
	}

	if err := progress.RecordContentProgress(&moduleProgress, items, content.ID, courseModels.ContentCompleted, timeSpent, score); err != nil {
		return nil, err
	}

	if err := ctrl.DB.Save(&moduleProgress).Error; err != nil {
		return nil, err
	}

	return fiber.Map{
		"module_progress":  moduleProgress,
		"module_completed": moduleProgress.CompletionPercentage >= 100,
	}, nil
}

// quizPassPercent is the minimum score (percent) that completes a quiz item
const quizPassPercent = 70

// SubmitQuiz scores a quiz submission, honors the module's attempt limit and
// marks the content item completed on a passing score
func (ctrl *Controller) SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	contentID := c.Locals("contentID").(int)

	var enrollment courseModels.Enrollment
	if err := ctrl.DB.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var content courseModels.ContentItem
	if err := ctrl.DB.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", contentID, courseID, false, true).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	if content.ContentType != "QUIZ" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content is not a quiz!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Answers []int `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Attempt limit comes from the module settings; 0 means unlimited
	var module courseModels.Module
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", content.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var attemptCount int64
	ctrl.DB.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND content_id = ? AND is_deleted = ?", userID, contentID, false).Count(&attemptCount)

	if module.MaxAttempts > 0 && int(attemptCount) >= module.MaxAttempts {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Maximum quiz attempts reached!", nil)
	}

	score := 0
	maxScore := len(content.QuizQuestions)
	for i, q := range content.QuizQuestions {
		if i < len(reqData.Answers) && reqData.Answers[i] == q.CorrectIndex {
			score++
		}
	}

	passed := maxScore > 0 && score*100/maxScore >= quizPassPercent

	attempt := courseModels.QuizAttempt{
		UserID:        userID,
		ContentID:     uint(contentID),
		Answers:       reqData.Answers,
		Score:         score,
		MaxScore:      maxScore,
		Passed:        passed,
		AttemptNumber: int(attemptCount) + 1,
	}

	if err := ctrl.DB.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answers!", nil)
	}

	response := fiber.Map{
		"attempt":   attempt,
		"passed":    passed,
		"score":     score,
		"max_score": maxScore,
	}

	if passed {
		result, err := ctrl.applyContentCompletion(userID, &content, 0, score)
		if err != nil {
			return middleware.CoreErrorResponse(c, err)
		}
		for k, v := range result {
			response[k] = v
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answers submitted!", response)
}
