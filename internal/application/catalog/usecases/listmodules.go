package usecases

import (
	"context"

	"cxtrack/internal/application/catalog/dto"
	"cxtrack/internal/domain/catalog"
	"cxtrack/internal/domain/entitlement"
	"cxtrack/internal/shared/logger"
)

type ListModulesUseCase struct {
	registry *catalog.Registry
	logger   logger.Interface
}

func NewListModulesUseCase(registry *catalog.Registry, logger logger.Interface) *ListModulesUseCase {
	return &ListModulesUseCase{
		registry: registry,
		logger:   logger,
	}
}

func (uc *ListModulesUseCase) Execute(ctx context.Context) ([]dto.CatalogModuleDTO, error) {
	trialOnly := make(map[string]bool)
	for _, key := range entitlement.TrialOnlyModules() {
		trialOnly[key] = true
	}

	modules := uc.registry.All()
	result := make([]dto.CatalogModuleDTO, 0, len(modules))
	for _, m := range modules {
		result = append(result, dto.ToCatalogModuleDTO(m, trialOnly[m.Key]))
	}

	uc.logger.Debugw("catalog listed", "module_count", len(result))
	return result, nil
}
