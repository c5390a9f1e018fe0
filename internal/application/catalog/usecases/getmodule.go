package usecases

import (
	"context"

	"cxtrack/internal/application/catalog/dto"
	"cxtrack/internal/domain/catalog"
	"cxtrack/internal/domain/entitlement"
	"cxtrack/internal/shared/errors"
	"cxtrack/internal/shared/logger"
)

type GetModuleQuery struct {
	Key string
}

type GetModuleUseCase struct {
	registry *catalog.Registry
	logger   logger.Interface
}

func NewGetModuleUseCase(registry *catalog.Registry, logger logger.Interface) *GetModuleUseCase {
	return &GetModuleUseCase{
		registry: registry,
		logger:   logger,
	}
}

func (uc *GetModuleUseCase) Execute(ctx context.Context, query GetModuleQuery) (*dto.CatalogModuleDTO, error) {
	m, ok := uc.registry.Get(query.Key)
	if !ok {
		uc.logger.Debugw("module not found", "module", query.Key)
		return nil, errors.NewNotFoundError("module not found")
	}

	trialOnly := false
	for _, key := range entitlement.TrialOnlyModules() {
		if key == m.Key {
			trialOnly = true
			break
		}
	}

	result := dto.ToCatalogModuleDTO(m, trialOnly)
	return &result, nil
}
