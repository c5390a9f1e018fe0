package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cxtrack/internal/application/entitlement/usecases"
	"cxtrack/internal/shared/logger"
	"cxtrack/internal/shared/utils"
)

// EntitlementHandler serves per-organization module visibility and trial
// status. The clock is read once per request so every module in a response
// reflects the same instant.
type EntitlementHandler struct {
	resolveUseCase *usecases.ResolveVisibleModulesUseCase
	trialUseCase   *usecases.GetTrialStatusUseCase
	logger         logger.Interface
}

// NewEntitlementHandler creates a new entitlement handler
func NewEntitlementHandler(
	resolveUC *usecases.ResolveVisibleModulesUseCase,
	trialUC *usecases.GetTrialStatusUseCase,
	logger logger.Interface,
) *EntitlementHandler {
	return &EntitlementHandler{
		resolveUseCase: resolveUC,
		trialUseCase:   trialUC,
		logger:         logger,
	}
}

// GetModules returns the resolved module list for an organization
func (h *EntitlementHandler) GetModules(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "organization slug is required")
		return
	}

	query := usecases.ResolveVisibleModulesQuery{
		OrgSlug: slug,
		Now:     time.Now().UTC(),
	}

	result, err := h.resolveUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to resolve modules", "error", err, "org_slug", slug)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTrialStatus returns the organization's trial window, null for paid tiers
func (h *EntitlementHandler) GetTrialStatus(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "organization slug is required")
		return
	}

	query := usecases.GetTrialStatusQuery{
		OrgSlug: slug,
		Now:     time.Now().UTC(),
	}

	result, err := h.trialUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to get trial status", "error", err, "org_slug", slug)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
