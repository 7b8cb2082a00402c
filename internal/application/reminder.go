package application

import (
	"context"
	"time"

	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/internal/metrics"
	"github.com/linskybing/docflow/internal/notify"
	"github.com/linskybing/docflow/pkg/logger"
	"go.uber.org/zap"
)

// RemindUpcomingDeadlines notifies whoever the document is waiting on when
// its deadline falls within window from now. It returns the number of
// reminders published.
func (s *WorkflowService) RemindUpcomingDeadlines(ctx context.Context, window time.Duration) (int, error) {
	now := s.now()
	docs, err := s.Repos.Document.ListOpenDocumentsDueBetween(now, now.Add(window))
	if err != nil {
		return 0, err
	}
	ids := make([]uint, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	rows, err := s.Repos.Role.ListRolesByDocuments(ids)
	if err != nil {
		return 0, err
	}
	idx := document.IndexRoles(rows)

	var events []notify.Event
	for _, d := range docs {
		for _, r := range awaitedRoles(d, idx.For(d.ID)) {
			events = append(events, notify.Event{
				Kind:          notify.KindDeadlineReminder,
				DocumentID:    d.ID,
				DocumentTitle: d.Title,
				Role:          r.TaskRole,
				Recipient:     notify.RecipientOf(r.Identity()),
				Deadline:      d.Deadline,
			})
		}
	}
	if len(events) > 0 && s.Events != nil {
		s.Events.Publish(ctx, events...)
	}
	metrics.DeadlineReminders.Add(float64(len(events)))
	logger.WithContext(ctx).Info("deadline reminders published",
		zap.Int("documents", len(docs)), zap.Int("reminders", len(events)))
	return len(events), nil
}

// awaitedRoles returns the holders the document currently waits on.
// Signers who already signed are skipped.
func awaitedRoles(d document.Document, roles document.RoleSet) []document.Role {
	switch d.Status {
	case document.StatusDraft, document.StatusEditing:
		if editor, ok := roles.Sole(document.RoleEditor); ok {
			return []document.Role{editor}
		}
		return roles.FindByRole(document.RoleCreator)
	case document.StatusReadyForReview:
		out := roles.FindByRole(document.RoleCreator)
		return append(out, roles.FindByRole(document.RoleEditor)...)
	case document.StatusReviewing:
		return roles.FindByRole(document.RoleReviewer)
	case document.StatusSigning:
		signed := d.Fields().SignedEmails()
		var out []document.Role
		for _, r := range roles.FindByRole(document.RoleSigner) {
			if _, ok := signed[user.NormalizeEmail(r.Identity().Email)]; !ok {
				out = append(out, r)
			}
		}
		return out
	}
	return nil
}
