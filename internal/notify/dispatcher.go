package notify

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/notification"
	"github.com/linskybing/docflow/internal/metrics"
	"github.com/linskybing/docflow/pkg/logger"
	"go.uber.org/zap"
)

// Notice is one in-app notification.
type Notice struct {
	Recipient  Recipient
	Type       notification.Type
	DocumentID uint
	Title      string
	Message    string
	ActionURL  string
}

type Notifier interface {
	Notify(ctx context.Context, n Notice) error
}

type Mailer interface {
	RequestSignature(ctx context.Context, documentID uint, signerEmail, signerName, documentTitle string) error
	NotifyAssignment(ctx context.Context, ev Event) error
	NotifyRejection(ctx context.Context, ev Event) error
	RemindDeadline(ctx context.Context, ev Event) error
	SendMessage(ctx context.Context, ev Event) error
}

type Archiver interface {
	ArchiveCompleted(ctx context.Context, doc document.Document) error
}

type job struct {
	ctx context.Context
	ev  Event
}

// Dispatcher drains outbox events into the sinks on background workers.
// Sink failures and panics are logged and counted, never returned.
type Dispatcher struct {
	notifier Notifier
	mailer   Mailer
	archiver Archiver
	catalog  *Catalog

	mu     sync.RWMutex
	closed bool
	queue  chan job
	wg     sync.WaitGroup
}

func NewDispatcher(catalog *Catalog, notifier Notifier, mailer Mailer, archiver Archiver, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		notifier: notifier,
		mailer:   mailer,
		archiver: archiver,
		catalog:  catalog,
		queue:    make(chan job, queueSize),
	}
}

func (d *Dispatcher) Start(workers int) {
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for j := range d.queue {
				metrics.DispatchQueueDepth.Dec()
				d.handle(j.ctx, j.ev)
			}
		}()
	}
}

// Publish never blocks the caller: when the queue is full the event is
// handled on its own goroutine.
func (d *Dispatcher) Publish(ctx context.Context, events ...Event) {
	ctx = context.WithoutCancel(ctx)

	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, ev := range events {
		if d.closed {
			logger.WithContext(ctx).Warn("dispatcher closed, dropping event",
				zap.String("kind", string(ev.Kind)), zap.Uint("document_id", ev.DocumentID))
			continue
		}
		// counted before the send so a worker's Dec never runs first
		metrics.DispatchQueueDepth.Inc()
		select {
		case d.queue <- job{ctx: ctx, ev: ev}:
		default:
			metrics.DispatchQueueDepth.Dec()
			d.wg.Add(1)
			go func(ev Event) {
				defer d.wg.Done()
				d.handle(ctx, ev)
			}(ev)
		}
	}
}

// Close stops accepting events and waits for queued ones to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) handle(ctx context.Context, ev Event) {
	log := logger.WithContext(ctx).With(
		zap.String("kind", string(ev.Kind)),
		zap.Uint("document_id", ev.DocumentID),
		zap.String("recipient", ev.Recipient.Email),
	)
	defer func() {
		if r := recover(); r != nil {
			metrics.NotificationFailures.WithLabelValues("panic").Inc()
			log.Error("notification dispatch panicked", zap.Any("panic", r))
		}
	}()

	metrics.NotificationsDispatched.WithLabelValues(string(ev.Kind)).Inc()

	if err := d.notifyInApp(ctx, ev); err != nil {
		metrics.NotificationFailures.WithLabelValues("notifier").Inc()
		log.Warn("in-app notification failed", zap.Error(err))
	}
	if err := d.sendMail(ctx, ev); err != nil {
		metrics.NotificationFailures.WithLabelValues("mailer").Inc()
		log.Warn("mail dispatch failed", zap.Error(err))
	}
	if ev.Kind == KindCompleted && ev.Snapshot != nil && d.archiver != nil {
		if err := d.archiver.ArchiveCompleted(ctx, *ev.Snapshot); err != nil {
			metrics.NotificationFailures.WithLabelValues("archiver").Inc()
			log.Warn("archiving completed document failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) notifyInApp(ctx context.Context, ev Event) error {
	if d.notifier == nil || ev.Recipient.UserID == 0 {
		return nil
	}
	key, typ, url := noticeShape(ev)
	title, body, err := d.catalog.Notification(key, messageData(ev, "", ""))
	if err != nil {
		return err
	}
	return d.notifier.Notify(ctx, Notice{
		Recipient:  ev.Recipient,
		Type:       typ,
		DocumentID: ev.DocumentID,
		Title:      title,
		Message:    body,
		ActionURL:  url,
	})
}

func (d *Dispatcher) sendMail(ctx context.Context, ev Event) error {
	if d.mailer == nil || ev.Recipient.Email == "" {
		return nil
	}
	switch ev.Kind {
	case KindAssigned:
		if ev.Role != document.RoleEditor && ev.Role != document.RoleReviewer {
			return nil
		}
		return d.mailer.NotifyAssignment(ctx, ev)
	case KindSignatureRequest:
		return d.mailer.RequestSignature(ctx, ev.DocumentID, ev.Recipient.Email, ev.Recipient.Name, ev.DocumentTitle)
	case KindRejected:
		return d.mailer.NotifyRejection(ctx, ev)
	case KindDeadlineReminder:
		return d.mailer.RemindDeadline(ctx, ev)
	case KindMessage:
		return d.mailer.SendMessage(ctx, ev)
	}
	return nil
}

func noticeShape(ev Event) (string, notification.Type, string) {
	base := fmt.Sprintf("/documents/%d", ev.DocumentID)
	switch ev.Kind {
	case KindAssigned:
		key := "assigned_" + strings.ToLower(string(ev.Role))
		switch ev.Role {
		case document.RoleEditor:
			return key, notification.TypeDocumentAssigned, base + "/edit"
		case document.RoleReviewer:
			return key, notification.TypeDocumentAssigned, base + "/review"
		}
		return key, notification.TypeDocumentAssigned, base
	case KindRejected:
		return "rejected", notification.TypeDocumentRejected, base + "/edit"
	case KindSignatureRequest:
		return "signature_request", notification.TypeSignatureRequest, base + "/sign"
	case KindCompleted:
		return "completed", notification.TypeDocumentCompleted, base
	case KindDeadlineReminder:
		return "deadline_reminder", notification.TypeDeadlineReminder, base
	case KindMessage:
		return "message", notification.TypeMessage, base
	}
	return string(ev.Kind), notification.Type(ev.Kind), base
}

func messageData(ev Event, link, expires string) MessageData {
	data := MessageData{
		DocumentTitle: ev.DocumentTitle,
		RecipientName: ev.Recipient.DisplayName(),
		ActorName:     ev.ActorName,
		Reason:        ev.Reason,
		Link:          link,
		ExpiresAt:     expires,
	}
	if ev.Deadline != nil {
		data.Deadline = formatTime(*ev.Deadline)
	}
	return data
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
