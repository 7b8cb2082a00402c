package document

import (
	"time"

	"github.com/linskybing/docflow/internal/domain/user"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusDraft          Status = "DRAFT"
	StatusEditing        Status = "EDITING"
	StatusReadyForReview Status = "READY_FOR_REVIEW"
	StatusReviewing      Status = "REVIEWING"
	StatusSigning        Status = "SIGNING"
	StatusCompleted      Status = "COMPLETED"
	// StatusRejected only ever appears in the status log.
	StatusRejected Status = "REJECTED"
)

type TaskRole string

const (
	RoleCreator  TaskRole = "CREATOR"
	RoleEditor   TaskRole = "EDITOR"
	RoleReviewer TaskRole = "REVIEWER"
	RoleSigner   TaskRole = "SIGNER"
)

// Exclusive roles have at most one holder; assigning replaces it.
func (r TaskRole) Exclusive() bool {
	return r == RoleCreator || r == RoleEditor
}

type Document struct {
	ID         uint                          `gorm:"primaryKey" json:"id"`
	TemplateID uint                          `gorm:"index;not null" json:"template_id"`
	FolderID   *uint                         `gorm:"index" json:"folder_id"`
	Title      string                        `gorm:"size:255" json:"title"`
	Data       datatypes.JSONType[FieldData] `json:"data"`
	Status     Status                        `gorm:"size:32;index;not null;default:'DRAFT'" json:"status"`
	Deadline   *time.Time                    `gorm:"index" json:"deadline"`
	IsRejected bool                          `gorm:"default:false" json:"is_rejected"`
	Version    uint                          `gorm:"not null;default:0" json:"version"`
	CreatedAt  time.Time                     `json:"created_at"`
	UpdatedAt  time.Time                     `json:"updated_at"`
}

func (d *Document) Fields() FieldData {
	return d.Data.Data()
}

func (d *Document) SetFields(data FieldData) {
	d.Data = datatypes.NewJSONType(data)
}

type Role struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	DocumentID     uint       `gorm:"index;not null" json:"document_id"`
	TaskRole       TaskRole   `gorm:"size:16;index;not null" json:"task_role"`
	AssignedUserID *uint      `gorm:"index" json:"assigned_user_id"`
	AssignedUser   *user.User `gorm:"foreignKey:AssignedUserID" json:"-"`
	PendingEmail   string     `gorm:"size:255;index" json:"pending_email,omitempty"`
	PendingName    string     `gorm:"size:100" json:"pending_name,omitempty"`
	LastViewedAt   *time.Time `json:"last_viewed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Role) TableName() string {
	return "document_roles"
}

// Identity returns the tagged identity the row is assigned to.
func (r Role) Identity() Identity {
	if r.AssignedUserID != nil {
		id := Identity{UserID: *r.AssignedUserID}
		if r.AssignedUser != nil {
			id.Email = r.AssignedUser.Email
			id.Name = r.AssignedUser.Name
		}
		return id
	}
	return Pending(r.PendingEmail, r.PendingName)
}

func (r Role) IsNew() bool {
	return r.LastViewedAt == nil
}

// NewRole binds identity to the document under the given role.
func NewRole(documentID uint, role TaskRole, id Identity) Role {
	r := Role{DocumentID: documentID, TaskRole: role}
	if id.IsPending() {
		r.PendingEmail = user.NormalizeEmail(id.Email)
		r.PendingName = id.Name
		return r
	}
	uid := id.UserID
	r.AssignedUserID = &uid
	return r
}

type StatusLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	DocumentID     uint      `gorm:"index;not null" json:"document_id"`
	Status         Status    `gorm:"size:32;not null" json:"status"`
	ChangedByID    *uint     `json:"changed_by_id"`
	ChangedByEmail string    `gorm:"size:255" json:"changed_by_email"`
	ChangedByName  string    `gorm:"size:100" json:"changed_by_name"`
	Comment        string    `gorm:"type:text" json:"comment"`
	RejectLog      bool      `gorm:"default:false" json:"reject_log"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

func (StatusLog) TableName() string {
	return "document_status_logs"
}
