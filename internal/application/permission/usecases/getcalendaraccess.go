package usecases

import (
	"context"
	"fmt"

	"cxtrack/internal/application/permission/dto"
	"cxtrack/internal/domain/membership"
	"cxtrack/internal/shared/logger"
)

type GetCalendarAccessQuery struct {
	OrgSlug      string
	RequesterID  string
	TargetUserID string
}

type GetCalendarAccessUseCase struct {
	membershipRepo membership.Repository
	logger         logger.Interface
}

func NewGetCalendarAccessUseCase(membershipRepo membership.Repository, logger logger.Interface) *GetCalendarAccessUseCase {
	return &GetCalendarAccessUseCase{
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *GetCalendarAccessUseCase) Execute(ctx context.Context, query GetCalendarAccessQuery) (*dto.CalendarAccessResponse, error) {
	m, err := uc.membershipRepo.GetByOrgAndUser(ctx, query.OrgSlug, query.RequesterID)
	if err != nil {
		uc.logger.Errorw("failed to get membership",
			"error", err,
			"org_slug", query.OrgSlug,
			"user_id", query.RequesterID,
		)
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &dto.CalendarAccessResponse{
		TargetUserID: query.TargetUserID,
		CanView:      m.CanViewUserCalendar(query.TargetUserID),
		CanEdit:      m.CanEditUserCalendar(query.TargetUserID),
	}, nil
}
