package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/internal/metrics"
	"github.com/linskybing/docflow/internal/notify"
	"github.com/linskybing/docflow/internal/repository"
	"github.com/linskybing/docflow/pkg/apperr"
)

type transition struct {
	from, to document.Status
}

// unitOfWork is the state of one workflow call: the locked document, its
// roles, and the outbox events released after commit.
type unitOfWork struct {
	repos  *repository.Repos
	doc    *document.Document
	roles  document.RoleSet
	actor  user.Actor
	now    func() time.Time
	events []notify.Event

	transitions []transition
	rejections  []string
	dirty       bool
}

func (u *unitOfWork) actorIdentity() document.Identity {
	return document.ActorIdentity(u.actor)
}

// requireRole fails with Forbidden unless the actor holds one of roles.
func (u *unitOfWork) requireRole(action string, roles ...document.TaskRole) error {
	if u.roles.Holds(u.actor, roles...) {
		return nil
	}
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = strings.ToLower(string(r))
	}
	return apperr.Forbidden("only the document %s may %s", strings.Join(names, " or "), action)
}

func (u *unitOfWork) requireStatus(statuses ...document.Status) error {
	for _, s := range statuses {
		if u.doc.Status == s {
			return nil
		}
	}
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = statusName(s)
	}
	return apperr.InvalidState("document is not in %s state", strings.Join(names, " or "))
}

func statusName(s document.Status) string {
	return strings.ToLower(strings.ReplaceAll(string(s), "_", " "))
}

func (u *unitOfWork) logEntry(status document.Status, comment string, rejected bool) error {
	entry := document.StatusLog{
		DocumentID:     u.doc.ID,
		Status:         status,
		ChangedByEmail: u.actor.Email,
		ChangedByName:  u.actor.DisplayName(),
		Comment:        comment,
		RejectLog:      rejected,
		CreatedAt:      u.now(),
	}
	if u.actor.ID != 0 {
		id := u.actor.ID
		entry.ChangedByID = &id
	}
	return u.repos.StatusLog.AppendStatusLog(&entry)
}

// changeStatus moves the document to status and logs it. Reaching the
// current status again is a silent no-op.
func (u *unitOfWork) changeStatus(status document.Status, comment string) error {
	if u.doc.Status == status {
		return nil
	}
	if err := u.logEntry(status, comment, false); err != nil {
		return err
	}
	u.transitions = append(u.transitions, transition{from: u.doc.Status, to: status})
	u.doc.Status = status
	u.dirty = true
	return nil
}

// annotate logs a comment against the current status.
func (u *unitOfWork) annotate(comment string) error {
	return u.logEntry(u.doc.Status, comment, false)
}

var defaultRejectReason = map[string]string{
	"review":  "review rejected",
	"signing": "document rejected",
}

// rejectBack sends the document back to the editor: the REJECTED entry is
// logged before the live status becomes EDITING. Signing links issued for
// the abandoned round stop working.
func (u *unitOfWork) rejectBack(stage, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultRejectReason[stage]
	}
	if err := u.logEntry(document.StatusRejected, reason, true); err != nil {
		return err
	}
	if err := u.repos.SigningToken.RevokeSigningTokens(u.doc.ID, "", u.now()); err != nil {
		return err
	}

	var signerIDs []uint
	for _, r := range u.roles.FindByRole(document.RoleSigner) {
		signerIDs = append(signerIDs, r.ID)
	}
	if err := u.repos.Role.DeleteRoles(signerIDs); err != nil {
		return err
	}
	u.roles = u.roles.Without(signerIDs...)

	recipient, hasEditor := u.roles.Sole(document.RoleEditor)
	if hasEditor {
		if err := u.repos.Role.SetLastViewed([]uint{recipient.ID}, nil); err != nil {
			return err
		}
	} else {
		recipient, _ = u.roles.Sole(document.RoleCreator)
	}

	u.transitions = append(u.transitions, transition{from: u.doc.Status, to: document.StatusEditing})
	u.rejections = append(u.rejections, stage)
	u.doc.Status = document.StatusEditing
	u.doc.IsRejected = true
	u.dirty = true

	if recipient.ID != 0 {
		u.emit(notify.KindRejected, recipient.TaskRole, recipient.Identity(), reason)
	}
	return nil
}

// addRole assigns id to role. Exclusive roles replace their holder;
// assigning REVIEWER or SIGNER twice is a Conflict.
func (u *unitOfWork) addRole(role document.TaskRole, id document.Identity) (document.Role, bool, error) {
	existing := u.roles.ForIdentity(id, role)
	if role.Exclusive() {
		if len(existing) > 0 {
			return existing[0], false, nil
		}
		var stale []uint
		for _, r := range u.roles.FindByRole(role) {
			stale = append(stale, r.ID)
		}
		if err := u.repos.Role.DeleteRoles(stale); err != nil {
			return document.Role{}, false, err
		}
		u.roles = u.roles.Without(stale...)
	} else if len(existing) > 0 {
		return document.Role{}, false, apperr.Conflict("%s is already assigned as %s", id.Email, strings.ToLower(string(role)))
	}

	row := document.NewRole(u.doc.ID, role, id)
	if err := u.repos.Role.CreateRole(&row); err != nil {
		return document.Role{}, false, err
	}
	u.roles = append(u.roles, row)
	return row, true, nil
}

func (u *unitOfWork) emit(kind notify.Kind, role document.TaskRole, to document.Identity, reason string) {
	u.events = append(u.events, notify.Event{
		Kind:          kind,
		DocumentID:    u.doc.ID,
		DocumentTitle: u.doc.Title,
		Role:          role,
		Recipient:     notify.RecipientOf(to),
		ActorName:     u.actor.DisplayName(),
		Reason:        reason,
		Deadline:      u.doc.Deadline,
	})
}

// requestSignatures emits a signing request to every current signer.
func (u *unitOfWork) requestSignatures() {
	for _, r := range u.roles.FindByRole(document.RoleSigner) {
		u.emit(notify.KindSignatureRequest, document.RoleSigner, r.Identity(), "")
	}
}

// savepoint runs fn in a nested transaction. On failure the role set and
// outbox are restored to their state before fn.
func (u *unitOfWork) savepoint(ctx context.Context, fn func() error) error {
	outer := u.repos
	roles, events := u.roles, len(u.events)
	err := outer.ExecTx(ctx, func(sp *repository.Repos) error {
		u.repos = sp
		return fn()
	})
	u.repos = outer
	if err != nil {
		u.roles = roles
		u.events = u.events[:events]
	}
	return err
}

func (u *unitOfWork) flush() error {
	if !u.dirty {
		return nil
	}
	if err := u.repos.Document.UpdateDocument(u.doc); err != nil {
		if errors.Is(err, repository.ErrStaleDocument) {
			metrics.WorkflowConflicts.Inc()
			return apperr.Conflict("document %d was modified concurrently, reload and retry", u.doc.ID)
		}
		return fmt.Errorf("update document %d: %w", u.doc.ID, err)
	}
	u.dirty = false
	return nil
}

func (u *unitOfWork) record() {
	for _, t := range u.transitions {
		metrics.WorkflowTransitions.WithLabelValues(string(t.from), string(t.to)).Inc()
	}
	for _, stage := range u.rejections {
		metrics.WorkflowRejections.WithLabelValues(stage).Inc()
	}
}
