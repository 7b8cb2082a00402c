package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/internal/notify"
	"github.com/linskybing/docflow/internal/repository"
	"github.com/linskybing/docflow/pkg/apperr"
	"github.com/linskybing/docflow/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Publisher receives outbox events once their transaction has committed.
type Publisher interface {
	Publish(ctx context.Context, events ...notify.Event)
}

const defaultEditorName = "Editor User"

type WorkflowService struct {
	Repos      *repository.Repos
	Identities IdentityResolver
	Events     Publisher

	now func() time.Time
}

func NewWorkflowService(repos *repository.Repos, identities IdentityResolver, events Publisher) *WorkflowService {
	return &WorkflowService{
		Repos:      repos,
		Identities: identities,
		Events:     events,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *WorkflowService) newUnit(tx *repository.Repos, doc *document.Document, roles document.RoleSet, actor user.Actor) *unitOfWork {
	return &unitOfWork{
		repos: tx,
		doc:   doc,
		roles: roles,
		actor: actor,
		now:   s.now,
	}
}

// run loads and locks the document, applies fn and commits. Events are
// published only after a successful commit.
func (s *WorkflowService) run(ctx context.Context, documentID uint, actor user.Actor, fn func(u *unitOfWork) error) (*document.Document, error) {
	var u *unitOfWork
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		doc, err := tx.Document.GetDocumentForUpdate(documentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("document %d not found", documentID)
			}
			return err
		}
		roles, err := tx.Role.ListRolesByDocument(documentID)
		if err != nil {
			return err
		}
		u = s.newUnit(tx, &doc, roles, actor)
		if err := fn(u); err != nil {
			return err
		}
		return u.flush()
	})
	if err != nil {
		return nil, err
	}
	s.commit(ctx, u)
	return u.doc, nil
}

func (s *WorkflowService) commit(ctx context.Context, u *unitOfWork) {
	u.record()
	for _, t := range u.transitions {
		logger.WithContext(ctx).Info("document status changed",
			zap.Uint("document_id", u.doc.ID),
			zap.String("from", string(t.from)),
			zap.String("to", string(t.to)),
			zap.String("actor", u.actor.Email),
		)
	}
	if len(u.events) > 0 && s.Events != nil {
		s.Events.Publish(ctx, u.events...)
	}
}

func (s *WorkflowService) resolve(repos *repository.Repos, email, name string) (document.Identity, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return document.Identity{}, apperr.Validation("an email address is required", []string{"email"})
	}
	id, err := s.Identities.ResolveOrCreate(repos, email, name)
	if err != nil {
		return document.Identity{}, err
	}
	if id.Name == "" {
		id.Name = name
	}
	return id, nil
}

// CreateDocument copies the template's field schema into a new DRAFT
// document owned by actor. An editor moves it straight to EDITING.
func (s *WorkflowService) CreateDocument(ctx context.Context, actor user.Actor, input document.CreateDocumentInput) (*document.Document, error) {
	var u *unitOfWork
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		tpl, err := tx.Template.GetTemplateByID(input.TemplateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("template %d not found", input.TemplateID)
			}
			return err
		}
		if !tpl.IsPublic && tpl.CreatedByID != actor.ID && !actor.HasElevatedAccess() {
			return apperr.Forbidden("template %d is not available to you", tpl.ID)
		}

		doc := document.Document{
			TemplateID: tpl.ID,
			FolderID:   tpl.DefaultFolderID,
			Title:      strings.TrimSpace(input.Title),
			Status:     document.StatusDraft,
			Deadline:   input.Deadline,
		}
		if doc.Title == "" {
			doc.Title = tpl.Name
		}
		if doc.Deadline == nil {
			doc.Deadline = tpl.Deadline
		}
		doc.SetFields(document.Blank(tpl.Schema()))
		if err := tx.Document.CreateDocument(&doc); err != nil {
			return err
		}

		u = s.newUnit(tx, &doc, nil, actor)
		creator, _, err := u.addRole(document.RoleCreator, u.actorIdentity())
		if err != nil {
			return err
		}
		seen := s.now()
		if err := tx.Role.SetLastViewed([]uint{creator.ID}, &seen); err != nil {
			return err
		}
		if err := u.logEntry(document.StatusDraft, "document created", false); err != nil {
			return err
		}

		if strings.TrimSpace(input.EditorEmail) != "" {
			name := input.EditorName
			if name == "" {
				name = defaultEditorName
			}
			if err := s.assignEditor(u, input.EditorEmail, name); err != nil {
				return err
			}
		}
		return u.flush()
	})
	if err != nil {
		return nil, err
	}
	s.commit(ctx, u)
	return u.doc, nil
}

func (s *WorkflowService) assignEditor(u *unitOfWork, email, name string) error {
	id, err := s.resolve(u.repos, email, name)
	if err != nil {
		return err
	}
	row, created, err := u.addRole(document.RoleEditor, id)
	if err != nil {
		return err
	}
	if created && !row.Identity().Matches(u.actorIdentity()) {
		u.emit(notify.KindAssigned, document.RoleEditor, row.Identity(), "")
	}
	return u.changeStatus(document.StatusEditing, "editor assigned")
}

func (s *WorkflowService) StartEditing(ctx context.Context, documentID uint, actor user.Actor) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if err := u.requireRole("start editing", document.RoleEditor); err != nil {
			return err
		}
		if err := u.requireStatus(document.StatusDraft); err != nil {
			return err
		}
		return u.changeStatus(document.StatusEditing, "editing started")
	})
}

// AssignEditor replaces the editor and forces the document into EDITING.
func (s *WorkflowService) AssignEditor(ctx context.Context, documentID uint, actor user.Actor, input document.AssigneeInput) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if err := u.requireRole("assign the editor", document.RoleCreator, document.RoleEditor); err != nil {
			return err
		}
		return s.assignEditor(u, input.Email, input.Name)
	})
}

// SubmitForReview requires every required field to be filled and reports
// all missing ones at once.
func (s *WorkflowService) SubmitForReview(ctx context.Context, documentID uint, actor user.Actor) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if err := u.requireRole("submit for review", document.RoleEditor, document.RoleCreator); err != nil {
			return err
		}
		if err := u.requireStatus(document.StatusEditing); err != nil {
			return err
		}
		if missing := u.doc.Fields().MissingRequired(); len(missing) > 0 {
			return apperr.Validation("required fields are empty: "+strings.Join(missing, ", "), missing)
		}
		return u.changeStatus(document.StatusReadyForReview, "submitted for review")
	})
}

// CompleteReviewerAssignment starts the review, or with skipReview goes
// straight to signing.
func (s *WorkflowService) CompleteReviewerAssignment(ctx context.Context, documentID uint, actor user.Actor, skipReview bool) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if err := u.requireRole("complete reviewer assignment", document.RoleCreator, document.RoleEditor); err != nil {
			return err
		}
		if err := u.requireStatus(document.StatusReadyForReview); err != nil {
			return err
		}
		if skipReview {
			if !u.roles.ExistsByRole(document.RoleSigner) {
				return apperr.InvalidState("at least one signer must be assigned to skip review")
			}
			if err := u.changeStatus(document.StatusSigning, "review skipped"); err != nil {
				return err
			}
			u.requestSignatures()
			return nil
		}
		if !u.roles.ExistsByRole(document.RoleReviewer) {
			return apperr.InvalidState("at least one reviewer must be assigned")
		}
		return u.changeStatus(document.StatusReviewing, "reviewer assignment completed")
	})
}

// CompleteSignerAssignment makes the template's creator a reviewer when
// absent and starts the review.
func (s *WorkflowService) CompleteSignerAssignment(ctx context.Context, documentID uint, actor user.Actor) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if err := u.requireRole("complete signer assignment", document.RoleCreator, document.RoleEditor); err != nil {
			return err
		}
		if err := u.requireStatus(document.StatusReadyForReview); err != nil {
			return err
		}
		if !u.roles.ExistsByRole(document.RoleSigner) {
			return apperr.InvalidState("at least one signer must be assigned")
		}

		tpl, err := u.repos.Template.GetTemplateByID(u.doc.TemplateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("template %d not found", u.doc.TemplateID)
			}
			return err
		}
		owner, err := u.repos.User.GetUserByID(tpl.CreatedByID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("template owner %d not found", tpl.CreatedByID)
			}
			return err
		}
		id := document.Resolved(owner)
		if len(u.roles.ForIdentity(id, document.RoleReviewer)) == 0 {
			row, _, err := u.addRole(document.RoleReviewer, id)
			if err != nil {
				return err
			}
			u.emit(notify.KindAssigned, document.RoleReviewer, row.Identity(), "")
		}
		return u.changeStatus(document.StatusReviewing, "signer assignment completed")
	})
}

// ApproveReview always records the comment; with signers assigned the
// document moves on to SIGNING, otherwise it waits in REVIEWING.
func (s *WorkflowService) ApproveReview(ctx context.Context, documentID uint, actor user.Actor, comment string) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if err := u.requireRole("approve the review", document.RoleReviewer); err != nil {
			return err
		}
		if err := u.requireStatus(document.StatusReviewing); err != nil {
			return err
		}
		if strings.TrimSpace(comment) == "" {
			comment = "review approved"
		}
		if err := u.annotate(comment); err != nil {
			return err
		}
		if !u.roles.ExistsByRole(document.RoleSigner) {
			return nil
		}
		if err := u.changeStatus(document.StatusSigning, "signing started"); err != nil {
			return err
		}
		u.requestSignatures()
		return nil
	})
}

func (s *WorkflowService) RejectReview(ctx context.Context, documentID uint, actor user.Actor, reason string) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if err := u.requireRole("reject the review", document.RoleReviewer); err != nil {
			return err
		}
		if err := u.requireStatus(document.StatusReviewing); err != nil {
			return err
		}
		return u.rejectBack("review", reason)
	})
}

// ApproveDocument writes the signer's signature into every field bound to
// them and completes the document once all signers have signed.
func (s *WorkflowService) ApproveDocument(ctx context.Context, documentID uint, actor user.Actor, signature string) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		return s.sign(u, signature)
	})
}

func (s *WorkflowService) RejectDocument(ctx context.Context, documentID uint, actor user.Actor, reason string) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		return s.rejectSigning(u, reason)
	})
}

func (s *WorkflowService) sign(u *unitOfWork, signature string) error {
	if err := u.requireRole("sign", document.RoleSigner); err != nil {
		return err
	}
	if err := u.requireStatus(document.StatusSigning); err != nil {
		return err
	}
	if strings.TrimSpace(signature) == "" {
		return apperr.Validation("a signature is required", []string{"signature"})
	}

	data := u.doc.Fields()
	if data.SignBy(u.actor.Email, signature) == 0 {
		return apperr.Validation("no signature field is bound to "+u.actor.Email, []string{"signature"})
	}
	u.doc.SetFields(data)
	u.dirty = true
	if err := u.annotate("signed by " + u.actor.DisplayName()); err != nil {
		return err
	}

	if !document.SigningComplete(u.roles.Emails(document.RoleSigner), data) {
		return nil
	}
	if err := u.changeStatus(document.StatusCompleted, "all signers signed"); err != nil {
		return err
	}
	s.announceCompletion(u)
	return nil
}

func (s *WorkflowService) rejectSigning(u *unitOfWork, reason string) error {
	if err := u.requireRole("reject the document", document.RoleSigner); err != nil {
		return err
	}
	if err := u.requireStatus(document.StatusSigning); err != nil {
		return err
	}
	return u.rejectBack("signing", reason)
}

// announceCompletion notifies the creator and editor. Only the first event
// carries the snapshot so the archive is written once.
func (s *WorkflowService) announceCompletion(u *unitOfWork) {
	snapshot := *u.doc
	attached := false
	for _, role := range []document.TaskRole{document.RoleCreator, document.RoleEditor} {
		row, ok := u.roles.Sole(role)
		if !ok {
			continue
		}
		u.emit(notify.KindCompleted, role, row.Identity(), "")
		if !attached {
			u.events[len(u.events)-1].Snapshot = &snapshot
			attached = true
		}
	}
}

// ApproveDocumentByToken signs on behalf of the signer a signing link was
// mailed to. The link is single use.
func (s *WorkflowService) ApproveDocumentByToken(ctx context.Context, token, signature string) (*document.Document, error) {
	return s.withSigningToken(ctx, token, func(u *unitOfWork) error {
		return s.sign(u, signature)
	})
}

func (s *WorkflowService) RejectDocumentByToken(ctx context.Context, token, reason string) (*document.Document, error) {
	return s.withSigningToken(ctx, token, func(u *unitOfWork) error {
		return s.rejectSigning(u, reason)
	})
}

func (s *WorkflowService) withSigningToken(ctx context.Context, token string, fn func(u *unitOfWork) error) (*document.Document, error) {
	tok, err := s.Repos.SigningToken.GetSigningToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("signing link not found")
		}
		return nil, err
	}
	if !tok.Usable(s.now()) {
		return nil, apperr.Forbidden("signing link has expired or was already used")
	}

	actor := user.Actor{Email: user.NormalizeEmail(tok.SignerEmail), Name: tok.SignerName}
	if usr, err := s.Repos.User.GetUserByEmail(actor.Email); err == nil {
		actor = user.ActorFromUser(usr)
		actor.Elevated = false
	}
	return s.run(ctx, tok.DocumentID, actor, func(u *unitOfWork) error {
		claimed, err := u.repos.SigningToken.ClaimSigningToken(tok.ID, s.now())
		if err != nil {
			return err
		}
		if !claimed {
			return apperr.Forbidden("signing link has expired or was already used")
		}
		return fn(u)
	})
}
