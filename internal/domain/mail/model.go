package mail

import "time"

type Kind string

const (
	KindEditorAssignment   Kind = "EDITOR_ASSIGNMENT"
	KindReviewerAssignment Kind = "REVIEWER_ASSIGNMENT"
	KindSigningRequest     Kind = "SIGNING_REQUEST"
	KindRejection          Kind = "REJECTION"
	KindDeadlineReminder   Kind = "DEADLINE_REMINDER"
	KindCompleted          Kind = "COMPLETED"
	KindMessage            Kind = "MESSAGE"
)

// OutboundMail is a rendered message queued for the delivery agent.
type OutboundMail struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Recipient  string    `gorm:"size:255;index;not null" json:"recipient"`
	Subject    string    `gorm:"size:255" json:"subject"`
	Body       string    `gorm:"type:text" json:"body"`
	Kind       Kind      `gorm:"size:32" json:"kind"`
	DocumentID uint      `gorm:"index" json:"document_id"`
	Status     string    `gorm:"size:16;default:'queued'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (OutboundMail) TableName() string {
	return "outbound_mails"
}
