package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/mail"
	"github.com/linskybing/docflow/internal/domain/signing"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/internal/repository"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// QueueMailer renders mails from the catalog into the outbound queue and
// issues signing tokens for signature requests.
type QueueMailer struct {
	mails     repository.MailRepo
	tokens    repository.SigningTokenRepo
	catalog   *Catalog
	publicURL string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewQueueMailer(repos *repository.Repos, catalog *Catalog, publicURL string, tokenTTL time.Duration) *QueueMailer {
	return &QueueMailer{
		mails:     repos.Mail,
		tokens:    repos.SigningToken,
		catalog:   catalog,
		publicURL: publicURL,
		tokenTTL:  tokenTTL,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (m *QueueMailer) RequestSignature(ctx context.Context, documentID uint, signerEmail, signerName, documentTitle string) error {
	tok := signing.Token{
		Token:       uuid.NewString(),
		DocumentID:  documentID,
		SignerEmail: user.NormalizeEmail(signerEmail),
		SignerName:  signerName,
		ExpiresAt:   m.now().Add(m.tokenTTL),
	}
	if err := m.tokens.CreateSigningToken(&tok); err != nil {
		return fmt.Errorf("failed to issue signing token: %w", err)
	}
	ev := Event{
		Kind:          KindSignatureRequest,
		DocumentID:    documentID,
		DocumentTitle: documentTitle,
		Recipient:     Recipient{Email: tok.SignerEmail, Name: signerName},
	}
	data := messageData(ev, m.publicURL+"/sign/"+tok.Token, formatTime(tok.ExpiresAt))
	return m.queue(ev, "signing_request", mail.KindSigningRequest, data)
}

func (m *QueueMailer) NotifyAssignment(ctx context.Context, ev Event) error {
	key, kind := "reviewer_assignment", mail.KindReviewerAssignment
	path := "/review"
	if ev.Role == document.RoleEditor {
		key, kind, path = "editor_assignment", mail.KindEditorAssignment, "/edit"
	}
	return m.queue(ev, key, kind, messageData(ev, m.documentLink(ev.DocumentID)+path, ""))
}

func (m *QueueMailer) NotifyRejection(ctx context.Context, ev Event) error {
	return m.queue(ev, "rejection", mail.KindRejection, messageData(ev, m.documentLink(ev.DocumentID)+"/edit", ""))
}

func (m *QueueMailer) RemindDeadline(ctx context.Context, ev Event) error {
	return m.queue(ev, "deadline_reminder", mail.KindDeadlineReminder, messageData(ev, m.documentLink(ev.DocumentID), ""))
}

func (m *QueueMailer) SendMessage(ctx context.Context, ev Event) error {
	return m.queue(ev, "message", mail.KindMessage, messageData(ev, m.documentLink(ev.DocumentID), ""))
}

func (m *QueueMailer) documentLink(documentID uint) string {
	return fmt.Sprintf("%s/documents/%d", m.publicURL, documentID)
}

func (m *QueueMailer) queue(ev Event, key string, kind mail.Kind, data MessageData) error {
	subject, body, err := m.catalog.Mail(key, data)
	if err != nil {
		return err
	}
	return m.mails.QueueMail(&mail.OutboundMail{
		Recipient:  user.NormalizeEmail(ev.Recipient.Email),
		Subject:    subject,
		Body:       body,
		Kind:       kind,
		DocumentID: ev.DocumentID,
	})
}

// BreakerMailer stops calling a failing mailer until it recovers.
type BreakerMailer struct {
	next Mailer
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerMailer(next Mailer) *BreakerMailer {
	return &BreakerMailer{
		next: next,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "mailer",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				zap.L().Warn("circuit breaker state changed",
					zap.String("breaker", name), zap.String("from", from.String()), zap.String("to", to.String()))
			},
		}),
	}
}

func (b *BreakerMailer) call(fn func() error) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, fn()
	})
	return err
}

func (b *BreakerMailer) RequestSignature(ctx context.Context, documentID uint, signerEmail, signerName, documentTitle string) error {
	return b.call(func() error {
		return b.next.RequestSignature(ctx, documentID, signerEmail, signerName, documentTitle)
	})
}

func (b *BreakerMailer) NotifyAssignment(ctx context.Context, ev Event) error {
	return b.call(func() error { return b.next.NotifyAssignment(ctx, ev) })
}

func (b *BreakerMailer) NotifyRejection(ctx context.Context, ev Event) error {
	return b.call(func() error { return b.next.NotifyRejection(ctx, ev) })
}

func (b *BreakerMailer) RemindDeadline(ctx context.Context, ev Event) error {
	return b.call(func() error { return b.next.RemindDeadline(ctx, ev) })
}

func (b *BreakerMailer) SendMessage(ctx context.Context, ev Event) error {
	return b.call(func() error { return b.next.SendMessage(ctx, ev) })
}
