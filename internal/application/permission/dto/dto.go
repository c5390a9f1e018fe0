package dto

// CheckPermissionRequest asks whether a user may perform an action within an
// organization.
type CheckPermissionRequest struct {
	OrgSlug    string `json:"org_slug" binding:"required"`
	UserID     string `json:"user_id" binding:"required"`
	Permission string `json:"permission" binding:"required"`
}

// PermissionDecision is the answer to a permission check.
type PermissionDecision struct {
	Allowed bool   `json:"allowed"`
	Role    string `json:"role"`
}

// CalendarAccessResponse reports what the requesting member may do with the
// target user's calendar.
type CalendarAccessResponse struct {
	TargetUserID string `json:"target_user_id"`
	CanView      bool   `json:"can_view"`
	CanEdit      bool   `json:"can_edit"`
}
