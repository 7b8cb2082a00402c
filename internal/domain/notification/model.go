package notification

import "time"

type Type string

const (
	TypeDocumentAssigned  Type = "DOCUMENT_ASSIGNED"
	TypeDocumentRejected  Type = "DOCUMENT_REJECTED"
	TypeSignatureRequest  Type = "SIGNATURE_REQUEST"
	TypeDocumentCompleted Type = "DOCUMENT_COMPLETED"
	TypeDeadlineReminder  Type = "DEADLINE_REMINDER"
	TypeMessage           Type = "MESSAGE"
)

type Notification struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Title      string    `gorm:"size:255" json:"title"`
	Message    string    `gorm:"type:text" json:"message"`
	Type       Type      `gorm:"size:32" json:"type"`
	DocumentID *uint     `gorm:"index" json:"document_id"`
	ActionURL  string    `gorm:"size:255" json:"action_url"`
	Read       bool      `gorm:"column:is_read;default:false" json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}
