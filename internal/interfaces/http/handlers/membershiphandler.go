package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cxtrack/internal/application/membership/dto"
	"cxtrack/internal/application/membership/usecases"
	"cxtrack/internal/shared/constants"
	"cxtrack/internal/shared/logger"
	"cxtrack/internal/shared/utils"
)

// MembershipHandler serves membership provisioning and calendar delegation.
type MembershipHandler struct {
	createUseCase   *usecases.CreateMembershipUseCase
	delegateUseCase *usecases.DelegateCalendarUseCase
	logger          logger.Interface
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(
	createUC *usecases.CreateMembershipUseCase,
	delegateUC *usecases.DelegateCalendarUseCase,
	logger logger.Interface,
) *MembershipHandler {
	return &MembershipHandler{
		createUseCase:   createUC,
		delegateUseCase: delegateUC,
		logger:          logger,
	}
}

// CreateMembership provisions a member into the organization with role
// defaults materialized into an explicit permission map.
func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.CreateMembershipCommand{
		OrgSlug:            slug,
		UserID:             req.UserID,
		Role:               req.Role,
		Permissions:        req.Permissions,
		TeamCalendarAccess: req.TeamCalendarAccess,
	}

	m, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "membership created", dto.ToMembershipDTO(m))
}

// DelegateCalendar grants another member view access to the caller's calendar.
func (h *MembershipHandler) DelegateCalendar(c *gin.Context) {
	slug := c.Param("slug")

	callerID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.DelegateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.DelegateCalendarCommand{
		OrgSlug:    slug,
		FromUserID: callerID.(string),
		ToUserID:   req.ToUserID,
	}

	if err := h.delegateUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "calendar access delegated", nil)
}
