package application

import (
	"context"
	"fmt"

	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/internal/notify"
	"github.com/linskybing/docflow/pkg/apperr"
	"github.com/linskybing/docflow/pkg/logger"
	"go.uber.org/zap"
)

func (s *WorkflowService) AssignReviewer(ctx context.Context, documentID uint, actor user.Actor, input document.AssigneeInput) (*document.Document, error) {
	return s.assign(ctx, documentID, actor, document.RoleReviewer, input)
}

func (s *WorkflowService) AssignSigner(ctx context.Context, documentID uint, actor user.Actor, input document.AssigneeInput) (*document.Document, error) {
	return s.assign(ctx, documentID, actor, document.RoleSigner, input)
}

func (s *WorkflowService) assign(ctx context.Context, documentID uint, actor user.Actor, role document.TaskRole, input document.AssigneeInput) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if err := u.requireRole("assign "+roleNoun(role)+"s", document.RoleCreator, document.RoleEditor); err != nil {
			return err
		}
		return s.assignOne(u, role, input)
	})
}

func (s *WorkflowService) assignOne(u *unitOfWork, role document.TaskRole, input document.AssigneeInput) error {
	id, err := s.resolve(u.repos, input.Email, input.Name)
	if err != nil {
		return err
	}
	row, _, err := u.addRole(role, id)
	if err != nil {
		return err
	}
	u.emit(notify.KindAssigned, role, row.Identity(), "")
	return nil
}

// AssignSignersBatch assigns each signer in its own savepoint. Failed
// entries are skipped; the call fails only when none succeeded.
func (s *WorkflowService) AssignSignersBatch(ctx context.Context, documentID uint, actor user.Actor, inputs []document.AssigneeInput) ([]document.BatchResult, *document.Document, error) {
	results := make([]document.BatchResult, 0, len(inputs))
	doc, err := s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if err := u.requireRole("assign signers", document.RoleCreator, document.RoleEditor); err != nil {
			return err
		}
		results = results[:0]
		assigned := 0
		var details []string
		for _, in := range inputs {
			email := user.NormalizeEmail(in.Email)
			err := u.savepoint(ctx, func() error {
				return s.assignOne(u, document.RoleSigner, in)
			})
			if err != nil {
				logger.WithContext(ctx).Warn("batch signer assignment skipped",
					zap.Uint("document_id", documentID), zap.String("email", email), zap.Error(err))
				results = append(results, document.BatchResult{Email: email, Error: err.Error()})
				details = append(details, fmt.Sprintf("%s: %s", email, err.Error()))
				continue
			}
			assigned++
			results = append(results, document.BatchResult{Email: email, Assigned: true})
		}
		if assigned == 0 {
			return apperr.Conflict("no signer could be assigned").WithDetails(details)
		}
		return nil
	})
	if err != nil {
		return results, nil, err
	}
	return results, doc, nil
}

func (s *WorkflowService) RemoveReviewer(ctx context.Context, documentID uint, actor user.Actor, email string) (*document.Document, error) {
	return s.remove(ctx, documentID, actor, document.RoleReviewer, email)
}

func (s *WorkflowService) RemoveSigner(ctx context.Context, documentID uint, actor user.Actor, email string) (*document.Document, error) {
	return s.remove(ctx, documentID, actor, document.RoleSigner, email)
}

// remove deletes every row binding email to role. Matching is by email so
// both account-backed and pending rows are found.
func (s *WorkflowService) remove(ctx context.Context, documentID uint, actor user.Actor, role document.TaskRole, email string) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if err := u.requireRole("remove "+roleNoun(role)+"s", document.RoleCreator, document.RoleEditor); err != nil {
			return err
		}
		email = user.NormalizeEmail(email)
		if email == "" {
			return apperr.Validation("an email address is required", []string{"email"})
		}
		rows := u.roles.ForIdentity(document.Pending(email, ""), role)
		if len(rows) == 0 {
			return apperr.NotFound("%s is not assigned as %s", email, roleNoun(role))
		}
		ids := make([]uint, len(rows))
		for i, r := range rows {
			ids[i] = r.ID
		}
		if err := u.repos.Role.DeleteRoles(ids); err != nil {
			return err
		}
		u.roles = u.roles.Without(ids...)
		if role == document.RoleSigner {
			return u.repos.SigningToken.RevokeSigningTokens(u.doc.ID, email, u.now())
		}
		return nil
	})
}

func roleNoun(role document.TaskRole) string {
	switch role {
	case document.RoleReviewer:
		return "reviewer"
	case document.RoleSigner:
		return "signer"
	case document.RoleEditor:
		return "editor"
	}
	return "creator"
}
