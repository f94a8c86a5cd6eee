package courseValidator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fishperson113/letslearn-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

var courseIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

// CreateCourse validates course creation with a caller-chosen id
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID           string `json:"id"`
			Title        string `json:"title"`
			Description  string `json:"description"`
			ThumbnailURL string `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.ID = strings.TrimSpace(reqData.ID)
		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.ID == "" {
			errors["id"] = "Course ID is required!"
		} else if !courseIDPattern.MatchString(reqData.ID) {
			errors["id"] = "Course ID must be 3-64 letters, digits, hyphens or underscores!"
		}

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates course update request
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Params("id")) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ThumbnailURL string `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseList validates pagination query params for course listing
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if pageStr := c.Query("page"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil || page <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid page number!", nil)
			}
			reqData.Page = &page
		}

		if limitStr := c.Query("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit <= 0 || limit > 100 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid limit!", nil)
			}
			reqData.Limit = &limit
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// CloneCourse validates the clone request
func CloneCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Params("id")) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		reqData := new(struct {
			NewCourseID  string  `json:"newCourseId"`
			Title        *string `json:"title"`
			Description  *string `json:"description"`
			ThumbnailURL *string `json:"thumbnailUrl"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.NewCourseID = strings.TrimSpace(reqData.NewCourseID)

		if reqData.NewCourseID == "" {
			errors["newCourseId"] = "New course ID is required!"
		} else if !courseIDPattern.MatchString(reqData.NewCourseID) {
			errors["newCourseId"] = "New course ID must be 3-64 letters, digits, hyphens or underscores!"
		}

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClone", reqData)
		return c.Next()
	}
}
