package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/dto"
)

// RecordHandler serves stored purchases grouped by user
type RecordHandler struct {
	recordUseCase usecase.RecordQueryUseCase
	logger        coreport.Logger
}

// NewRecordHandler creates a new record handler instance
func NewRecordHandler(recordUseCase usecase.RecordQueryUseCase, logger coreport.Logger) *RecordHandler {
	return &RecordHandler{
		recordUseCase: recordUseCase,
		logger:        logger,
	}
}

// GetUser handles the GET /users/{userId} endpoint
func (h *RecordHandler) GetUser(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID",
		})
		return
	}

	records, err := h.recordUseCase.GetUserRecords(c.Request.Context(), userID)
	if err != nil {
		if domainerr.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "User not found",
			})
			return
		}

		h.logger.Error("Error getting user records", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserRecordsResponse(records))
}

// ListUsers handles the GET /users endpoint
func (h *RecordHandler) ListUsers(c *gin.Context) {
	users, err := h.recordUseCase.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("Error listing users", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}
