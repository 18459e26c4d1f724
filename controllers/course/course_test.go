package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{JWTKey: "test-secret", SaltRound: 4}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, db, cfg)
	courseRoutes.SetupCourseRoutes(app, db, cfg)
	courseRoutes.SetupAdminCourseRoutes(app, db, cfg)

	return app, db, cfg
}

func createUser(t *testing.T, db *gorm.DB, cfg *config.Config, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), cfg.SaltRound)
	require.NoError(t, err)

	user := models.User{Name: "Test User", Email: email, Password: string(hashed), Role: role}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(cfg, user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func TestInstructorCourseLifecycle(t *testing.T) {
	app, db, cfg := setupApp(t)
	_, instructorToken := createUser(t, db, cfg, "instructor@example.com", "INSTRUCTOR")
	_, studentToken := createUser(t, db, cfg, "student@example.com", "STUDENT")

	// Students cannot reach the admin surface
	resp, _ := doJSON(t, app, "POST", "/admin/course", studentToken, fiber.Map{"title": "Nope"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, result := doJSON(t, app, "POST", "/admin/course", instructorToken, fiber.Map{
		"title":       "Go Basics",
		"description": "Learn Go from scratch",
		"category":    "programming",
		"difficulty":  "BEGINNER",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	courseID := uint(result["data"].(map[string]interface{})["ID"].(float64))

	resp, _ = doJSON(t, app, "PUT", fmt.Sprintf("/admin/course/%d", courseID), instructorToken, fiber.Map{
		"status":       "ACTIVE",
		"is_published": true,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, result = doJSON(t, app, "POST", fmt.Sprintf("/admin/course/%d/module", courseID), instructorToken, fiber.Map{
		"title":         "Getting Started",
		"module_number": 1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	moduleID := uint(result["data"].(map[string]interface{})["ID"].(float64))

	// Module numbers are unique per course
	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/admin/course/%d/module", courseID), instructorToken, fiber.Map{
		"title":         "Duplicate",
		"module_number": 1,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/admin/course/%d/content", courseID), instructorToken, fiber.Map{
		"module_id":    moduleID,
		"title":        "Intro video",
		"content_type": "VIDEO",
		"duration":     12,
		"order_index":  1,
		"video_url":    "https://videos.example.com/intro.mp4",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/admin/course/%d/content", courseID), instructorToken, fiber.Map{
		"module_id":    moduleID,
		"title":        "Reading",
		"content_type": "TEXT",
		"duration":     8,
		"order_index":  2,
		"text_content": "Variables and types",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Estimated duration is recomputed from the content list
	var module courseModels.Module
	require.NoError(t, db.First(&module, moduleID).Error)
	assert.Equal(t, 20, module.EstimatedDuration)

	// Published course shows up in the listing
	resp, result = doJSON(t, app, "GET", "/course/list", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	courses := result["data"].(map[string]interface{})["courses"].([]interface{})
	require.Len(t, courses, 1)
}

func TestModuleContentRequiresEnrollmentAndAccess(t *testing.T) {
	app, db, cfg := setupApp(t)
	student, studentToken := createUser(t, db, cfg, "student@example.com", "STUDENT")

	course := courseModels.Course{Title: "Premium Course", Status: "ACTIVE", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)
	module := courseModels.Module{CourseID: course.ID, ModuleNumber: 1, Title: "Locked", IsPremiumOnly: true, AllowSkip: true}
	require.NoError(t, db.Create(&module).Error)
	content := courseModels.ContentItem{
		CourseID: course.ID, ModuleID: module.ID, Title: "Lesson",
		ContentType: "TEXT", Duration: 5, OrderIndex: 1, IsRequired: true, IsPublished: true,
	}
	require.NoError(t, db.Create(&content).Error)

	contentPath := fmt.Sprintf("/course/%d/module/%d/content", course.ID, module.ID)

	// Not enrolled
	resp, _ := doJSON(t, app, "GET", contentPath, studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Enrolled but not premium
	resp, result := doJSON(t, app, "GET", contentPath, studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Premium subscription required", result["message"])

	require.NoError(t, db.Model(&student).Update("is_premium", true).Error)

	resp, result = doJSON(t, app, "GET", contentPath, studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	contents := result["data"].(map[string]interface{})["contents"].([]interface{})
	require.Len(t, contents, 1)
}

func TestMarkContentCompleteFinishesModule(t *testing.T) {
	app, db, cfg := setupApp(t)
	_, studentToken := createUser(t, db, cfg, "student@example.com", "STUDENT")

	course := courseModels.Course{Title: "Go Basics", Status: "ACTIVE", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)
	module := courseModels.Module{CourseID: course.ID, ModuleNumber: 1, Title: "Basics", AllowSkip: true}
	require.NoError(t, db.Create(&module).Error)

	required := courseModels.ContentItem{
		CourseID: course.ID, ModuleID: module.ID, Title: "Lesson",
		ContentType: "TEXT", OrderIndex: 1, IsRequired: true, IsPublished: true,
	}
	require.NoError(t, db.Create(&required).Error)
	optional := courseModels.ContentItem{
		CourseID: course.ID, ModuleID: module.ID, Title: "Extra reading",
		ContentType: "RESOURCE", OrderIndex: 2, IsRequired: false, IsPublished: true,
	}
	require.NoError(t, db.Create(&optional).Error)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)

	// Completing the only required item completes the module
	resp, result := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/complete", course.ID, required.ID), studentToken, fiber.Map{
		"time_spent": 7,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, true, data["module_completed"])
	mp := data["module_progress"].(map[string]interface{})
	assert.Equal(t, float64(100), mp["completion_percentage"])

	// Unknown content id
	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/complete", course.ID, 9999), studentToken, fiber.Map{
		"time_spent": 1,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmitQuizScoringAndAttemptLimit(t *testing.T) {
	app, db, cfg := setupApp(t)
	_, studentToken := createUser(t, db, cfg, "student@example.com", "STUDENT")

	course := courseModels.Course{Title: "Go Basics", Status: "ACTIVE", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)
	module := courseModels.Module{CourseID: course.ID, ModuleNumber: 1, Title: "Quiz module", MaxAttempts: 2, AllowSkip: true}
	require.NoError(t, db.Create(&module).Error)

	quiz := courseModels.ContentItem{
		CourseID: course.ID, ModuleID: module.ID, Title: "Checkpoint quiz",
		ContentType: "QUIZ", OrderIndex: 1, IsRequired: true, IsPublished: true,
		QuizQuestions: []courseModels.QuizQuestion{
			{Prompt: "Zero value of int?", Options: []string{"0", "nil"}, CorrectIndex: 0},
			{Prompt: "Keyword for functions?", Options: []string{"fn", "func"}, CorrectIndex: 1},
		},
	}
	require.NoError(t, db.Create(&quiz).Error)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)

	quizPath := fmt.Sprintf("/course/%d/content/%d/quiz/submit", course.ID, quiz.ID)

	// One of two correct: 50% is below the passing bar
	resp, result := doJSON(t, app, "POST", quizPath, studentToken, fiber.Map{"answers": []int{0, 0}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, false, data["passed"])
	assert.Equal(t, float64(1), data["score"])
	assert.Equal(t, float64(2), data["max_score"])

	// Full marks on the second attempt passes and completes the item
	resp, result = doJSON(t, app, "POST", quizPath, studentToken, fiber.Map{"answers": []int{0, 1}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, true, data["passed"])
	assert.Equal(t, true, data["module_completed"])

	// The module allows two attempts
	resp, _ = doJSON(t, app, "POST", quizPath, studentToken, fiber.Map{"answers": []int{0, 1}})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Non-quiz content rejects submissions
	text := courseModels.ContentItem{
		CourseID: course.ID, ModuleID: module.ID, Title: "Reading",
		ContentType: "TEXT", OrderIndex: 2, IsPublished: true,
	}
	require.NoError(t, db.Create(&text).Error)
	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/quiz/submit", course.ID, text.ID), studentToken, fiber.Map{"answers": []int{0}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCertificateIssuedOnlyOnceAfterCompletion(t *testing.T) {
	app, db, cfg := setupApp(t)
	student, studentToken := createUser(t, db, cfg, "student@example.com", "STUDENT")

	course := courseModels.Course{Title: "Go Basics", Status: "ACTIVE", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)

	certPath := fmt.Sprintf("/course/%d/certificate/request", course.ID)

	// Incomplete course
	resp, _ := doJSON(t, app, "POST", certPath, studentToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Updates(map[string]interface{}{"is_completed": true, "completion_percentage": 100, "status": courseModels.StatusCompleted}).Error)

	resp, result := doJSON(t, app, "POST", certPath, studentToken, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	serial := result["data"].(map[string]interface{})["serial_number"].(string)
	assert.NotEmpty(t, serial)

	// Second request returns the existing certificate
	resp, _ = doJSON(t, app, "POST", certPath, studentToken, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, result = doJSON(t, app, "GET", "/user/certificates", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	certs := result["data"].(map[string]interface{})["certificates"].([]interface{})
	require.Len(t, certs, 1)
	assert.Equal(t, "Go Basics", certs[0].(map[string]interface{})["course_title"])
}

func TestSignupAndLogin(t *testing.T) {
	app, db, _ := setupApp(t)

	resp, result := doJSON(t, app, "POST", "/auth/signup", "", fiber.Map{
		"name":     "New User",
		"email":    "new@example.com",
		"password": "password123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, result["data"].(map[string]interface{})["token"])

	// Duplicate email
	resp, _ = doJSON(t, app, "POST", "/auth/signup", "", fiber.Map{
		"name":     "New User",
		"email":    "new@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, result = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "new@example.com",
		"password": "password123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, result["data"].(map[string]interface{})["token"])

	resp, _ = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "new@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("email = ?", "new@example.com").First(&user).Error)
	assert.Equal(t, "STUDENT", user.Role)
}
