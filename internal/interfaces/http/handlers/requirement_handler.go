package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/interfaces/http/middleware"
	"tutorlink.backend/internal/interfaces/http/response"
	"tutorlink.backend/internal/usecases"
)

// RequirementHandler handles student requirement endpoints
type RequirementHandler struct {
	requirementUsecase *usecases.RequirementUsecase
}

// NewRequirementHandler creates a new requirement handler
func NewRequirementHandler(requirementUsecase *usecases.RequirementUsecase) *RequirementHandler {
	return &RequirementHandler{
		requirementUsecase: requirementUsecase,
	}
}

// PostRequirement publishes a student's tutoring request
// POST /api/v1/requirements
func (h *RequirementHandler) PostRequirement(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateRequirementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.requirementUsecase.PostRequirement(c.Request.Context(), studentID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, req)
}

// ListMyRequirements lists the acting student's requirements
// GET /api/v1/requirements/mine
func (h *RequirementHandler) ListMyRequirements(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	reqs, err := h.requirementUsecase.ListMyRequirements(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requirements": reqs})
}

// CloseRequirement closes a requirement the acting student owns
// POST /api/v1/requirements/:id/close
func (h *RequirementHandler) CloseRequirement(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	requirementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid requirement ID"))
		return
	}

	if err := h.requirementUsecase.CloseRequirement(c.Request.Context(), studentID, requirementID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Requirement closed"})
}

// BrowseMatching returns open requirements matching the acting tutor
// GET /api/v1/requirements
func (h *RequirementHandler) BrowseMatching(c *gin.Context) {
	tutorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	reqs, err := h.requirementUsecase.BrowseMatching(c.Request.Context(), tutorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requirements": reqs})
}
