package document

import "time"

type CreateDocumentInput struct {
	TemplateID  uint       `json:"template_id" binding:"required" example:"3"`
	Title       string     `json:"title" example:"2025 Fall TA agreement"`
	Deadline    *time.Time `json:"deadline"`
	EditorEmail string     `json:"editor_email" binding:"omitempty,email" example:"editor@example.com"`
	EditorName  string     `json:"editor_name" example:"Bob Lee"`
}

type UpdateDataInput struct {
	Data     FieldData  `json:"data"`
	Deadline *time.Time `json:"deadline"`
}

type DeadlineInput struct {
	Deadline *time.Time `json:"deadline"`
}

type AssigneeInput struct {
	Email string `json:"email" binding:"required,email" example:"reviewer@example.com"`
	Name  string `json:"name" example:"Carol Park"`
}

type BatchAssignInput struct {
	Signers []AssigneeInput `json:"signers" binding:"required,min=1,dive"`
}

type CompleteReviewerInput struct {
	SkipReview bool `json:"skip_review"`
}

type CommentInput struct {
	Comment string `json:"comment" example:"looks good"`
}

type RejectInput struct {
	Reason string `json:"reason" example:"signature page incomplete"`
}

// MessageInput addresses a task holder of a document. A SIGNER recipient
// gets a fresh signing link instead of the message text.
type MessageInput struct {
	RecipientEmail string   `json:"recipient_email" binding:"required,email" example:"reviewer@example.com"`
	RecipientRole  TaskRole `json:"recipient_role" binding:"required,oneof=EDITOR REVIEWER SIGNER" example:"REVIEWER"`
	Message        string   `json:"message" example:"Please finish the review by Friday."`
}

type SignInput struct {
	Signature string `json:"signature" binding:"required"`
}

// BatchResult reports the outcome of one email in a batch assignment.
type BatchResult struct {
	Email    string `json:"email"`
	Assigned bool   `json:"assigned"`
	Error    string `json:"error,omitempty"`
}

type TaskInfo struct {
	ID             uint       `json:"id"`
	Role           TaskRole   `json:"role"`
	UserID         *uint      `json:"user_id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	Pending        bool       `json:"pending"`
	IsNew          bool       `json:"is_new"`
	LastViewedAt   *time.Time `json:"last_viewed_at"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
}

type StatusLogDTO struct {
	Status         Status    `json:"status"`
	ChangedByEmail string    `json:"changed_by_email"`
	ChangedByName  string    `json:"changed_by_name"`
	Comment        string    `json:"comment"`
	RejectLog      bool      `json:"reject_log"`
	CreatedAt      time.Time `json:"created_at"`
}

type DocumentResponse struct {
	ID           uint           `json:"id"`
	TemplateID   uint           `json:"template_id"`
	TemplateName string         `json:"template_name"`
	FolderID     *uint          `json:"folder_id"`
	FolderName   string         `json:"folder_name,omitempty"`
	Title        string         `json:"title"`
	Status       Status         `json:"status"`
	Data         FieldData      `json:"data"`
	Deadline     *time.Time     `json:"deadline"`
	IsRejected   bool           `json:"is_rejected"`
	Version      uint           `json:"version"`
	Tasks        []TaskInfo     `json:"tasks"`
	StatusLogs   []StatusLogDTO `json:"status_logs,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func TaskFromRole(r Role) TaskInfo {
	id := r.Identity()
	return TaskInfo{
		ID:           r.ID,
		Role:         r.TaskRole,
		UserID:       r.AssignedUserID,
		Email:        id.Email,
		Name:         id.Name,
		Pending:      id.IsPending(),
		IsNew:        r.IsNew(),
		LastViewedAt: r.LastViewedAt,
	}
}

func LogToDTO(l StatusLog) StatusLogDTO {
	return StatusLogDTO{
		Status:         l.Status,
		ChangedByEmail: l.ChangedByEmail,
		ChangedByName:  l.ChangedByName,
		Comment:        l.Comment,
		RejectLog:      l.RejectLog,
		CreatedAt:      l.CreatedAt,
	}
}
