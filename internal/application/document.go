package application

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/internal/repository"
	"github.com/linskybing/docflow/pkg/apperr"
	"gorm.io/gorm"
)

// GetDocument returns the document with its tasks and ordered status log.
// Only role holders and elevated users may read it.
func (s *WorkflowService) GetDocument(ctx context.Context, documentID uint, actor user.Actor) (*document.DocumentResponse, error) {
	doc, roles, err := s.load(documentID)
	if err != nil {
		return nil, err
	}
	if !actor.HasElevatedAccess() && len(roles.ForIdentity(document.ActorIdentity(actor))) == 0 {
		return nil, apperr.Forbidden("you have no role on document %d", documentID)
	}

	resp := newResponseBuilder(s.Repos).build(doc, roles)
	logs, err := s.Repos.StatusLog.ListStatusLogs(doc.ID)
	if err != nil {
		return nil, err
	}
	resp.StatusLogs = make([]document.StatusLogDTO, len(logs))
	for i, l := range logs {
		resp.StatusLogs[i] = document.LogToDTO(l)
	}

	tokens, err := s.Repos.SigningToken.ListSigningTokensByDocument(doc.ID)
	if err != nil {
		return nil, err
	}
	expiry := make(map[string]time.Time)
	for _, t := range tokens {
		if t.UsedAt == nil {
			expiry[user.NormalizeEmail(t.SignerEmail)] = t.ExpiresAt
		}
	}
	for i := range resp.Tasks {
		if resp.Tasks[i].Role != document.RoleSigner {
			continue
		}
		if exp, ok := expiry[user.NormalizeEmail(resp.Tasks[i].Email)]; ok {
			exp := exp
			resp.Tasks[i].TokenExpiresAt = &exp
		}
	}
	return &resp, nil
}

func (s *WorkflowService) load(documentID uint) (document.Document, document.RoleSet, error) {
	doc, err := s.Repos.Document.GetDocumentByID(documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return doc, nil, apperr.NotFound("document %d not found", documentID)
		}
		return doc, nil, err
	}
	roles, err := s.Repos.Role.ListRolesByDocument(documentID)
	return doc, roles, err
}

// ListDocuments returns every document for elevated users, otherwise the
// documents the actor holds a role on.
func (s *WorkflowService) ListDocuments(ctx context.Context, actor user.Actor) ([]document.DocumentResponse, error) {
	var (
		docs []document.Document
		err  error
	)
	if actor.HasElevatedAccess() {
		docs, err = s.Repos.Document.ListDocuments()
	} else {
		var held document.RoleIndex
		held, err = s.heldRoles(actor)
		if err == nil {
			docs, err = s.Repos.Document.ListDocumentsByIDs(held.DocumentIDs())
		}
	}
	if err != nil {
		return nil, err
	}
	return s.respond(docs, false)
}

// ListTodo lists open documents needing the actor. REVIEWING documents are
// only listed for their reviewers. Earliest deadline first, undated last.
func (s *WorkflowService) ListTodo(ctx context.Context, actor user.Actor) ([]document.DocumentResponse, error) {
	held, err := s.heldRoles(actor)
	if err != nil {
		return nil, err
	}
	docs, err := s.Repos.Document.ListDocumentsByIDs(held.DocumentIDs())
	if err != nil {
		return nil, err
	}

	var todo []document.Document
	for _, d := range docs {
		if d.Status == document.StatusCompleted {
			continue
		}
		mine := held.For(d.ID)
		if d.Status == document.StatusReviewing && !mine.ExistsByRole(document.RoleReviewer) {
			continue
		}
		todo = append(todo, d)
	}
	sort.SliceStable(todo, func(i, j int) bool {
		a, b := todo[i].Deadline, todo[j].Deadline
		switch {
		case a != nil && b != nil && !a.Equal(*b):
			return a.Before(*b)
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return todo[i].CreatedAt.After(todo[j].CreatedAt)
	})
	return s.respond(todo, false)
}

// ListByTemplate returns the actor's EDITOR documents built from a template
// with signature payloads and signer bindings stripped.
func (s *WorkflowService) ListByTemplate(ctx context.Context, actor user.Actor, templateID uint) ([]document.DocumentResponse, error) {
	held, err := s.heldRoles(actor)
	if err != nil {
		return nil, err
	}
	var ids []uint
	for _, id := range held.DocumentIDs() {
		if held.For(id).ExistsByRole(document.RoleEditor) {
			ids = append(ids, id)
		}
	}
	docs, err := s.Repos.Document.ListDocumentsByTemplate(templateID, ids)
	if err != nil {
		return nil, err
	}
	out, err := s.respond(docs, true)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Data = out[i].Data.Sanitized()
	}
	return out, nil
}

// heldRoles indexes the actor's own role rows by document.
func (s *WorkflowService) heldRoles(actor user.Actor) (document.RoleIndex, error) {
	rows, err := s.Repos.Role.ListRolesByHolder(actor.ID, user.NormalizeEmail(actor.Email))
	if err != nil {
		return nil, err
	}
	return document.IndexRoles(rows), nil
}

func (s *WorkflowService) respond(docs []document.Document, hideTasks bool) ([]document.DocumentResponse, error) {
	ids := make([]uint, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	rows, err := s.Repos.Role.ListRolesByDocuments(ids)
	if err != nil {
		return nil, err
	}
	idx := document.IndexRoles(rows)

	b := newResponseBuilder(s.Repos)
	out := make([]document.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		roles := idx.For(d.ID)
		if hideTasks {
			roles = nil
		}
		out = append(out, b.build(d, roles))
	}
	return out, nil
}

// UpdateDocumentData replaces the field data while the document is being
// drafted or edited.
func (s *WorkflowService) UpdateDocumentData(ctx context.Context, documentID uint, actor user.Actor, input document.UpdateDataInput) (*document.Document, error) {
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if err := u.requireRole("edit the document", document.RoleEditor); err != nil {
			return err
		}
		if err := u.requireStatus(document.StatusDraft, document.StatusEditing); err != nil {
			return err
		}
		u.doc.SetFields(input.Data)
		if input.Deadline != nil {
			u.doc.Deadline = input.Deadline
		}
		u.dirty = true
		return nil
	})
}

func (s *WorkflowService) UpdateDeadline(ctx context.Context, documentID uint, actor user.Actor, deadline *time.Time) (*document.Document, error) {
	if !actor.HasElevatedAccess() {
		return nil, apperr.Forbidden("only users with elevated access may change the deadline")
	}
	return s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		u.doc.Deadline = deadline
		u.dirty = true
		return nil
	})
}

// MarkViewed clears the new-task indicator on every row the actor holds.
func (s *WorkflowService) MarkViewed(ctx context.Context, documentID uint, actor user.Actor) error {
	_, err := s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		rows := u.roles.ForIdentity(u.actorIdentity())
		if len(rows) == 0 {
			return apperr.Forbidden("you have no role on document %d", documentID)
		}
		ids := make([]uint, len(rows))
		for i, r := range rows {
			ids[i] = r.ID
		}
		seen := s.now()
		return u.repos.Role.SetLastViewed(ids, &seen)
	})
	return err
}

// DeleteDocument removes the document with its roles, status log and
// signing tokens.
func (s *WorkflowService) DeleteDocument(ctx context.Context, documentID uint, actor user.Actor) error {
	_, err := s.run(ctx, documentID, actor, func(u *unitOfWork) error {
		if !actor.HasElevatedAccess() {
			if err := u.requireRole("delete the document", document.RoleCreator, document.RoleEditor); err != nil {
				return err
			}
		}
		if err := u.repos.Role.DeleteRolesByDocument(documentID); err != nil {
			return err
		}
		if err := u.repos.StatusLog.DeleteStatusLogsByDocument(documentID); err != nil {
			return err
		}
		if err := u.repos.SigningToken.DeleteSigningTokensByDocument(documentID); err != nil {
			return err
		}
		return u.repos.Document.DeleteDocument(documentID)
	})
	return err
}

func (s *WorkflowService) CanReview(ctx context.Context, documentID uint, actor user.Actor) (bool, error) {
	return s.can(documentID, actor, document.RoleReviewer, document.StatusReviewing)
}

func (s *WorkflowService) CanSign(ctx context.Context, documentID uint, actor user.Actor) (bool, error) {
	return s.can(documentID, actor, document.RoleSigner, document.StatusSigning)
}

func (s *WorkflowService) can(documentID uint, actor user.Actor, role document.TaskRole, status document.Status) (bool, error) {
	doc, roles, err := s.load(documentID)
	if err != nil {
		return false, err
	}
	return doc.Status == status && roles.Holds(actor, role), nil
}

// responseBuilder caches template and folder names across a listing.
type responseBuilder struct {
	repos     *repository.Repos
	templates map[uint]string
	folders   map[uint]string
}

func newResponseBuilder(repos *repository.Repos) *responseBuilder {
	return &responseBuilder{
		repos:     repos,
		templates: make(map[uint]string),
		folders:   make(map[uint]string),
	}
}

func (b *responseBuilder) build(doc document.Document, roles document.RoleSet) document.DocumentResponse {
	resp := document.DocumentResponse{
		ID:           doc.ID,
		TemplateID:   doc.TemplateID,
		TemplateName: b.templateName(doc.TemplateID),
		FolderID:     doc.FolderID,
		Title:        doc.Title,
		Status:       doc.Status,
		Data:         doc.Fields(),
		Deadline:     doc.Deadline,
		IsRejected:   doc.IsRejected,
		Version:      doc.Version,
		Tasks:        make([]document.TaskInfo, 0, len(roles)),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
	if doc.FolderID != nil {
		resp.FolderName = b.folderName(*doc.FolderID)
	}
	for _, r := range roles {
		resp.Tasks = append(resp.Tasks, document.TaskFromRole(r))
	}
	return resp
}

func (b *responseBuilder) templateName(id uint) string {
	if name, ok := b.templates[id]; ok {
		return name
	}
	var name string
	if tpl, err := b.repos.Template.GetTemplateByID(id); err == nil {
		name = tpl.Name
	}
	b.templates[id] = name
	return name
}

func (b *responseBuilder) folderName(id uint) string {
	if name, ok := b.folders[id]; ok {
		return name
	}
	var name string
	if f, err := b.repos.Folder.GetFolderByID(id); err == nil {
		name = f.Name
	}
	b.folders[id] = name
	return name
}
