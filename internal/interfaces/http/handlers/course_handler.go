package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/interfaces/http/middleware"
	"tutorlink.backend/internal/interfaces/http/response"
	"tutorlink.backend/internal/usecases"
	"tutorlink.backend/pkg/utils"
)

// CourseHandler handles course and enrollment endpoints
type CourseHandler struct {
	courseUsecase *usecases.CourseUsecase
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseUsecase *usecases.CourseUsecase) *CourseHandler {
	return &CourseHandler{
		courseUsecase: courseUsecase,
	}
}

// CreateCourse creates a course owned by the acting tutor
// POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	tutorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	course, err := h.courseUsecase.CreateCourse(c.Request.Context(), tutorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, course)
}

// UpdateCourse edits a course the acting tutor owns
// PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	tutorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid course ID"))
		return
	}

	var input entities.UpdateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	course, err := h.courseUsecase.UpdateCourse(c.Request.Context(), tutorID, courseID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, course)
}

// DeleteCourse removes a course the acting tutor owns
// DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	tutorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid course ID"))
		return
	}

	if err := h.courseUsecase.DeleteCourse(c.Request.Context(), tutorID, courseID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Course deleted"})
}

// ListMyCourses lists the acting tutor's courses
// GET /api/v1/courses/mine
func (h *CourseHandler) ListMyCourses(c *gin.Context) {
	tutorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	courses, err := h.courseUsecase.ListMyCourses(c.Request.Context(), tutorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// BrowseCourses lists active courses for the catalog
// GET /api/v1/courses
func (h *CourseHandler) BrowseCourses(c *gin.Context) {
	subject := c.Query("subject")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	params := utils.GetPaginationParams(page, limit)

	courses, total, err := h.courseUsecase.BrowseCourses(c.Request.Context(), subject, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"courses":    courses,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Enroll enrolls the acting student into a course
// POST /api/v1/courses/:id/enroll
func (h *CourseHandler) Enroll(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid course ID"))
		return
	}

	enrollment, err := h.courseUsecase.Enroll(c.Request.Context(), studentID, courseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, enrollment)
}

// ListMyStudents lists enrollments across the acting tutor's courses
// GET /api/v1/courses/students
func (h *CourseHandler) ListMyStudents(c *gin.Context) {
	tutorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	students, err := h.courseUsecase.ListMyStudents(c.Request.Context(), tutorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// ListMyEnrollments lists the acting student's enrollments
// GET /api/v1/enrollments
func (h *CourseHandler) ListMyEnrollments(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	enrollments, err := h.courseUsecase.ListMyEnrollments(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}
