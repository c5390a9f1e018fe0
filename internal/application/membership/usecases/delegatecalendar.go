package usecases

import (
	"context"
	"fmt"

	"cxtrack/internal/domain/membership"
	"cxtrack/internal/shared/logger"
)

type DelegateCalendarCommand struct {
	OrgSlug string
	// FromUserID is the calendar owner granting access.
	FromUserID string
	// ToUserID is the member receiving view access.
	ToUserID string
}

type DelegateCalendarUseCase struct {
	membershipRepo membership.Repository
	logger         logger.Interface
}

func NewDelegateCalendarUseCase(membershipRepo membership.Repository, logger logger.Interface) *DelegateCalendarUseCase {
	return &DelegateCalendarUseCase{
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

// Execute grants ToUserID view access to FromUserID's calendar. Delegation is
// view-only; edit rights never travel this path.
func (uc *DelegateCalendarUseCase) Execute(ctx context.Context, cmd DelegateCalendarCommand) error {
	if cmd.FromUserID == cmd.ToUserID {
		return fmt.Errorf("cannot delegate a calendar to its owner")
	}

	recipient, err := uc.membershipRepo.GetByOrgAndUser(ctx, cmd.OrgSlug, cmd.ToUserID)
	if err != nil {
		uc.logger.Errorw("failed to get membership",
			"error", err,
			"org_slug", cmd.OrgSlug,
			"user_id", cmd.ToUserID,
		)
		return fmt.Errorf("failed to get membership: %w", err)
	}

	for _, delegator := range recipient.CalendarDelegatedBy {
		if delegator == cmd.FromUserID {
			return nil
		}
	}
	recipient.CalendarDelegatedBy = append(recipient.CalendarDelegatedBy, cmd.FromUserID)

	if err := uc.membershipRepo.Update(ctx, recipient); err != nil {
		uc.logger.Errorw("failed to update membership",
			"error", err,
			"org_slug", cmd.OrgSlug,
			"user_id", cmd.ToUserID,
		)
		return fmt.Errorf("failed to update membership: %w", err)
	}

	uc.logger.Infow("calendar delegated",
		"org_slug", cmd.OrgSlug,
		"from_user", cmd.FromUserID,
		"to_user", cmd.ToUserID,
	)

	return nil
}
