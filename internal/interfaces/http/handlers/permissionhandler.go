package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cxtrack/internal/application/permission/dto"
	"cxtrack/internal/application/permission/usecases"
	"cxtrack/internal/shared/constants"
	"cxtrack/internal/shared/logger"
	"cxtrack/internal/shared/utils"
)

// PermissionHandler serves permission and calendar access decisions.
type PermissionHandler struct {
	checkUseCase    *usecases.CheckPermissionUseCase
	calendarUseCase *usecases.GetCalendarAccessUseCase
	logger          logger.Interface
}

// NewPermissionHandler creates a new permission handler
func NewPermissionHandler(
	checkUC *usecases.CheckPermissionUseCase,
	calendarUC *usecases.GetCalendarAccessUseCase,
	logger logger.Interface,
) *PermissionHandler {
	return &PermissionHandler{
		checkUseCase:    checkUC,
		calendarUseCase: calendarUC,
		logger:          logger,
	}
}

// CheckPermission decides a single permission key for a user in an organization
func (h *PermissionHandler) CheckPermission(c *gin.Context) {
	var req dto.CheckPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	query := usecases.CheckPermissionQuery{
		OrgSlug:    req.OrgSlug,
		UserID:     req.UserID,
		Permission: req.Permission,
	}

	decision, err := h.checkUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", decision)
}

// GetCalendarAccess reports the caller's view/edit rights over a target
// user's calendar. Caller identity comes from the auth token.
func (h *PermissionHandler) GetCalendarAccess(c *gin.Context) {
	targetUserID := c.Param("userID")
	if targetUserID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "target user ID is required")
		return
	}

	requesterID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	orgSlug, exists := c.Get(constants.ContextKeyOrgSlug)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "organization context missing")
		return
	}

	query := usecases.GetCalendarAccessQuery{
		OrgSlug:      orgSlug.(string),
		RequesterID:  requesterID.(string),
		TargetUserID: targetUserID,
	}

	access, err := h.calendarUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", access)
}
