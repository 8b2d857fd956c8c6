package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oms-tech/reviews/internal/app/models"
	"github.com/oms-tech/reviews/internal/app/models/dto"
	"github.com/oms-tech/reviews/internal/app/services"
	"github.com/oms-tech/reviews/internal/middleware"
	"github.com/oms-tech/reviews/internal/pkg/apperrors"
	"github.com/oms-tech/reviews/internal/pkg/helpers"
)

// CourseReader serves read-only course and semester projections
type CourseReader interface {
	GetCourseCodes(ctx context.Context) ([]string, error)
	GetCourseNames(ctx context.Context) ([]models.CourseName, error)
	GetRecentSemesters(ctx context.Context, limit int) ([]models.Semester, error)
	GetCourse(ctx context.Context, code string, level models.EnrichmentLevel) (*models.Course, error)
	GetCourses(ctx context.Context, level models.EnrichmentLevel) ([]*models.Course, error)
}

// CourseController handles course and semester reads
type CourseController struct {
	courseService CourseReader
	errors        *middleware.ErrorResponder
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService CourseReader, responder *middleware.ErrorResponder) *CourseController {
	return &CourseController{
		courseService: courseService,
		errors:        responder,
	}
}

func enrichmentLevel(ctx *gin.Context) (models.EnrichmentLevel, error) {
	level, err := models.ParseEnrichmentLevel(ctx.Query("include"))
	if err != nil {
		return "", apperrors.NewBadRequestError(err.Error())
	}
	return level, nil
}

// GetCourses retrieves every course
// @Summary List courses
// @Description Retrieves every course, optionally with review stats or full reviews
// @Tags courses
// @Produce json
// @Param include query string false "Review data to attach" Enums(none, stats, reviews)
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown include value"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	level, err := enrichmentLevel(ctx)
	if err != nil {
		c.errors.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.courseService.GetCourses(ctx.Request.Context(), level)
	if err != nil {
		c.errors.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourse retrieves a course by code
// @Summary Get course by code
// @Description Retrieves a course by its <department>-<number> code
// @Tags courses
// @Produce json
// @Param code path string true "Course code, e.g. CS-6340"
// @Param include query string false "Review data to attach" Enums(none, stats, reviews)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course code or include value"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	level, err := enrichmentLevel(ctx)
	if err != nil {
		c.errors.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), ctx.Param("code"), level)
	if err != nil {
		c.errors.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// GetCourseCodes retrieves every course code
// @Summary List course codes
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Course codes retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/codes [get]
func (c *CourseController) GetCourseCodes(ctx *gin.Context) {
	codes, err := c.courseService.GetCourseCodes(ctx.Request.Context())
	if err != nil {
		c.errors.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(codes))
}

// GetCourseNames retrieves every course code with its name
// @Summary List course names
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CourseName} "Course names retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/names [get]
func (c *CourseController) GetCourseNames(ctx *gin.Context) {
	names, err := c.courseService.GetCourseNames(ctx.Request.Context())
	if err != nil {
		c.errors.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(names))
}

// GetRecentSemesters retrieves the most recent semesters
// @Summary List recent semesters
// @Tags semesters
// @Produce json
// @Param limit query int false "Number of semesters (1-50)" default(4)
// @Success 200 {object} dto.APIResponse{data=[]models.Semester} "Semesters retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /semesters [get]
func (c *CourseController) GetRecentSemesters(ctx *gin.Context) {
	limit, err := helpers.QueryInt(ctx, "limit", services.DefaultSemesterLimit, 1, services.MaxSemesterLimit)
	if err != nil {
		c.errors.HandleAPIError(ctx, apperrors.NewBadRequestError(err.Error()))
		return
	}

	semesters, err := c.courseService.GetRecentSemesters(ctx.Request.Context(), limit)
	if err != nil {
		c.errors.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(semesters))
}
