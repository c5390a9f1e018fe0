package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cxtrack/internal/application/membership/dto"
	"cxtrack/internal/application/membership/usecases"
	"cxtrack/internal/shared/logger"
	"cxtrack/internal/shared/utils"
)

// RoleHandler serves the role default grant table. Edits apply to memberships
// provisioned afterwards, never to existing ones.
type RoleHandler struct {
	getUseCase    *usecases.GetRoleDefaultsUseCase
	updateUseCase *usecases.UpdateRoleDefaultsUseCase
	logger        logger.Interface
}

func NewRoleHandler(
	getUC *usecases.GetRoleDefaultsUseCase,
	updateUC *usecases.UpdateRoleDefaultsUseCase,
	logger logger.Interface,
) *RoleHandler {
	return &RoleHandler{
		getUseCase:    getUC,
		updateUseCase: updateUC,
		logger:        logger,
	}
}

// GetRoleDefaults lists a role's default permission grants
func (h *RoleHandler) GetRoleDefaults(c *gin.Context) {
	role := c.Param("role")

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetRoleDefaultsQuery{Role: role})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GrantRoleDefault adds a permission to a role's default grant set
func (h *RoleHandler) GrantRoleDefault(c *gin.Context) {
	var req dto.UpdateRoleDefaultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.UpdateRoleDefaultsCommand{
		Role:       c.Param("role"),
		Permission: req.Permission,
	}
	if err := h.updateUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "default granted", nil)
}

// RevokeRoleDefault removes a permission from a role's default grant set
func (h *RoleHandler) RevokeRoleDefault(c *gin.Context) {
	cmd := usecases.UpdateRoleDefaultsCommand{
		Role:       c.Param("role"),
		Permission: c.Param("permission"),
		Revoke:     true,
	}
	if err := h.updateUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "default revoked", nil)
}
