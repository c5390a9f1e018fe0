package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cxtrack/internal/application/catalog/usecases"
	"cxtrack/internal/shared/logger"
	"cxtrack/internal/shared/utils"
)

// ModuleHandler serves the module catalog, independent of any organization.
type ModuleHandler struct {
	listUseCase *usecases.ListModulesUseCase
	getUseCase  *usecases.GetModuleUseCase
	logger      logger.Interface
}

// NewModuleHandler creates a new module catalog handler
func NewModuleHandler(
	listUC *usecases.ListModulesUseCase,
	getUC *usecases.GetModuleUseCase,
	logger logger.Interface,
) *ModuleHandler {
	return &ModuleHandler{
		listUseCase: listUC,
		getUseCase:  getUC,
		logger:      logger,
	}
}

// ListModules returns every module in the catalog
func (h *ModuleHandler) ListModules(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list modules", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetModule returns a single catalog module by key
func (h *ModuleHandler) GetModule(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "module key is required")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetModuleQuery{Key: key})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
