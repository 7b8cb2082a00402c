package notify

import (
	"time"

	"github.com/linskybing/docflow/internal/domain/document"
)

type Kind string

const (
	KindAssigned         Kind = "ASSIGNED"
	KindRejected         Kind = "REJECTED"
	KindSignatureRequest Kind = "SIGNATURE_REQUEST"
	KindCompleted        Kind = "COMPLETED"
	KindDeadlineReminder Kind = "DEADLINE_REMINDER"
	KindMessage          Kind = "MESSAGE"
)

// Recipient is who an event is addressed to. UserID is zero for pending
// identities, which can only be reached by mail.
type Recipient struct {
	UserID uint
	Email  string
	Name   string
}

func RecipientOf(id document.Identity) Recipient {
	return Recipient{UserID: id.UserID, Email: id.Email, Name: id.Name}
}

func (r Recipient) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Email
}

// Event is an outbox entry recorded during a workflow transaction and
// dispatched once the transaction has committed.
type Event struct {
	Kind          Kind
	DocumentID    uint
	DocumentTitle string
	Role          document.TaskRole
	Recipient     Recipient
	ActorName     string
	Reason        string
	Deadline      *time.Time
	// Snapshot is set on completion events for the archive sink.
	Snapshot *document.Document
}
