package application

import (
	"context"
	"strings"

	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/internal/notify"
	"github.com/linskybing/docflow/pkg/apperr"
)

// SendMessage lets an elevated user reach a task holder of a document.
// Signers are sent a new signing link; editors and reviewers get the
// message text by mail and in their inbox.
func (s *WorkflowService) SendMessage(ctx context.Context, documentID uint, actor user.Actor, input document.MessageInput) error {
	_, err := s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if !actor.HasElevatedAccess() {
			return apperr.Forbidden("only administrators may send messages")
		}
		email := user.NormalizeEmail(input.RecipientEmail)
		role := input.RecipientRole
		rows := u.roles.ForIdentity(document.Pending(email, ""), role)
		if len(rows) == 0 {
			return apperr.NotFound("%s is not assigned as %s", email, roleNoun(role))
		}
		to := rows[0].Identity()

		if role == document.RoleSigner {
			if err := u.requireStatus(document.StatusSigning); err != nil {
				return err
			}
			u.emit(notify.KindSignatureRequest, role, to, "")
			return nil
		}

		text := strings.TrimSpace(input.Message)
		if text == "" {
			return apperr.Validation("a message is required", []string{"message"})
		}
		u.emit(notify.KindMessage, role, to, text)
		return nil
	})
	return err
}
