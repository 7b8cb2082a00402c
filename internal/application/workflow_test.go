package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/signing"
	"github.com/linskybing/docflow/internal/domain/template"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/internal/notify"
	"github.com/linskybing/docflow/internal/repository"
	"github.com/linskybing/docflow/internal/testutils"
	"github.com/linskybing/docflow/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
type recordingPublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...notify.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
}

func (p *recordingPublisher) byKind(kind notify.Kind) []notify.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []notify.Event
	for _, ev := range p.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

type workflowFixture struct {
	ctx   context.Context
	svc   *WorkflowService
	repos *repository.Repos
	pub   *recordingPublisher

	owner, creator, editor, reviewer, signer1, signer2, admin user.Actor
	templateID                                                uint
}

func setupWorkflow(t *testing.T) *workflowFixture {
	t.Helper()
	return setupWorkflowOn(t, testutils.NewSQLiteDB(t))
}

func setupWorkflowOn(t *testing.T, db *gorm.DB) *workflowFixture {
	t.Helper()
	repos := repository.NewRepositories(db)
	users := NewUserService(repos)
	users.AutoProvision = true
	pub := &recordingPublisher{}

	f := &workflowFixture{
		ctx:   context.Background(),
		svc:   NewWorkflowService(repos, users, pub),
		repos: repos,
		pub:   pub,
	}
	f.owner = seedUser(t, repos, "owner@test.com", "Olivia", false)
	f.creator = seedUser(t, repos, "creator@test.com", "Chris", false)
	f.editor = seedUser(t, repos, "editor@test.com", "Eddie", false)
	f.reviewer = seedUser(t, repos, "reviewer@test.com", "Rita", false)
	f.signer1 = seedUser(t, repos, "s1@test.com", "Sam", false)
	f.signer2 = seedUser(t, repos, "s2@test.com", "Sue", false)
	f.admin = seedUser(t, repos, "admin@test.com", "Ada", true)

	tpl := template.Template{Name: "TA agreement", IsPublic: true, CreatedByID: f.owner.ID}
	tpl.SetSchema([]document.Field{
		{ID: "f1", Type: document.FieldText, Label: "Name", Required: true},
		{ID: "f2", Type: document.FieldText, Label: "Note"},
		{ID: "sig1", Type: document.FieldSignerSignature, SignerEmail: "s1@test.com"},
		{ID: "sig2", Type: document.FieldSignerSignature, SignerEmail: "s2@test.com"},
	})
	require.NoError(t, repos.Template.CreateTemplate(&tpl))
	f.templateID = tpl.ID
	return f
}

func seedUser(t *testing.T, repos *repository.Repos, email, name string, elevated bool) user.Actor {
	t.Helper()
	u := user.User{Email: email, Name: name, Password: "x", CanAccessFolders: elevated}
	require.NoError(t, repos.User.SaveUser(&u))
	return user.ActorFromUser(u)
}

func assignee(a user.Actor) document.AssigneeInput {
	return document.AssigneeInput{Email: a.Email, Name: a.Name}
}

// create returns a document in EDITING with Eddie as editor.
func (f *workflowFixture) create(t *testing.T) *document.Document {
	t.Helper()
	doc, err := f.svc.CreateDocument(f.ctx, f.creator, document.CreateDocumentInput{
		TemplateID:  f.templateID,
		EditorEmail: f.editor.Email,
		EditorName:  f.editor.Name,
	})
	require.NoError(t, err)
	return doc
}

func (f *workflowFixture) fill(t *testing.T, docID uint) {
	t.Helper()
	doc, err := f.repos.Document.GetDocumentByID(docID)
	require.NoError(t, err)
	data := doc.Fields()
	data.CoordinateFields[0].Value = "Alice"
	_, err = f.svc.UpdateDocumentData(f.ctx, docID, f.editor, document.UpdateDataInput{Data: data})
	require.NoError(t, err)
}

// readyForReview returns a filled document in READY_FOR_REVIEW.
func (f *workflowFixture) readyForReview(t *testing.T) *document.Document {
	t.Helper()
	doc := f.create(t)
	f.fill(t, doc.ID)
	doc, err := f.svc.SubmitForReview(f.ctx, doc.ID, f.editor)
	require.NoError(t, err)
	return doc
}

// reviewing returns a document in REVIEWING with Rita as reviewer and both
// signers assigned.
func (f *workflowFixture) reviewing(t *testing.T) *document.Document {
	t.Helper()
	doc := f.readyForReview(t)
	_, err := f.svc.AssignReviewer(f.ctx, doc.ID, f.editor, assignee(f.reviewer))
	require.NoError(t, err)
	_, err = f.svc.AssignSigner(f.ctx, doc.ID, f.editor, assignee(f.signer1))
	require.NoError(t, err)
	_, err = f.svc.AssignSigner(f.ctx, doc.ID, f.editor, assignee(f.signer2))
	require.NoError(t, err)
	doc, err = f.svc.CompleteReviewerAssignment(f.ctx, doc.ID, f.editor, false)
	require.NoError(t, err)
	require.Equal(t, document.StatusReviewing, doc.Status)
	return doc
}

func (f *workflowFixture) signing(t *testing.T) *document.Document {
	t.Helper()
	doc := f.reviewing(t)
	doc, err := f.svc.ApproveReview(f.ctx, doc.ID, f.reviewer, "")
	require.NoError(t, err)
	require.Equal(t, document.StatusSigning, doc.Status)
	return doc
}

func (f *workflowFixture) roles(t *testing.T, docID uint) document.RoleSet {
	t.Helper()
	roles, err := f.repos.Role.ListRolesByDocument(docID)
	require.NoError(t, err)
	return roles
}

func (f *workflowFixture) logs(t *testing.T, docID uint) []document.StatusLog {
	t.Helper()
	logs, err := f.repos.StatusLog.ListStatusLogs(docID)
	require.NoError(t, err)
	return logs
}

// --------------------- CreateDocument ---------------------
func TestCreateDocument_WithEditorStartsEditing(t *testing.T) {
	f := setupWorkflow(t)

	doc := f.create(t)
	assert.Equal(t, document.StatusEditing, doc.Status)
	assert.Equal(t, "TA agreement", doc.Title)
	assert.Len(t, doc.Fields().CoordinateFields, 4)

	roles := f.roles(t, doc.ID)
	assert.True(t, roles.Holds(f.creator, document.RoleCreator))
	assert.True(t, roles.Holds(f.editor, document.RoleEditor))

	assigned := f.pub.byKind(notify.KindAssigned)
	require.Len(t, assigned, 1)
	assert.Equal(t, f.editor.ID, assigned[0].Recipient.UserID)
	assert.Equal(t, document.RoleEditor, assigned[0].Role)

	logs := f.logs(t, doc.ID)
	require.Len(t, logs, 2)
	assert.Equal(t, document.StatusDraft, logs[0].Status)
	assert.Equal(t, document.StatusEditing, logs[1].Status)
}

func TestCreateDocument_WithoutEditorStaysDraft(t *testing.T) {
	f := setupWorkflow(t)

	doc, err := f.svc.CreateDocument(f.ctx, f.creator, document.CreateDocumentInput{TemplateID: f.templateID, Title: "Mine"})
	require.NoError(t, err)
	assert.Equal(t, document.StatusDraft, doc.Status)
	assert.Equal(t, "Mine", doc.Title)
	assert.Empty(t, f.pub.byKind(notify.KindAssigned))
}

func TestCreateDocument_SelfEditorNotNotified(t *testing.T) {
	f := setupWorkflow(t)

	doc, err := f.svc.CreateDocument(f.ctx, f.creator, document.CreateDocumentInput{
		TemplateID:  f.templateID,
		EditorEmail: f.creator.Email,
	})
	require.NoError(t, err)
	assert.Equal(t, document.StatusEditing, doc.Status)
	assert.Empty(t, f.pub.byKind(notify.KindAssigned))
}

func TestCreateDocument_TemplateNotFound(t *testing.T) {
	f := setupWorkflow(t)

	_, err := f.svc.CreateDocument(f.ctx, f.creator, document.CreateDocumentInput{TemplateID: 999})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateDocument_UnknownEditorProvisioned(t *testing.T) {
	f := setupWorkflow(t)

	doc, err := f.svc.CreateDocument(f.ctx, f.creator, document.CreateDocumentInput{
		TemplateID:  f.templateID,
		EditorEmail: "Newbie@Test.com",
	})
	require.NoError(t, err)

	editor, ok := f.roles(t, doc.ID).Sole(document.RoleEditor)
	require.True(t, ok)
	assert.Equal(t, "newbie@test.com", editor.Identity().Email)
	assert.Equal(t, defaultEditorName, editor.Identity().Name)
}

// --------------------- StartEditing / AssignEditor ---------------------
func TestStartEditing(t *testing.T) {
	f := setupWorkflow(t)

	doc, err := f.svc.CreateDocument(f.ctx, f.creator, document.CreateDocumentInput{TemplateID: f.templateID})
	require.NoError(t, err)

	_, err = f.svc.StartEditing(f.ctx, doc.ID, f.creator)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	row := document.NewRole(doc.ID, document.RoleEditor, document.ActorIdentity(f.editor))
	require.NoError(t, f.repos.Role.CreateRole(&row))

	doc, err = f.svc.StartEditing(f.ctx, doc.ID, f.editor)
	require.NoError(t, err)
	assert.Equal(t, document.StatusEditing, doc.Status)

	_, err = f.svc.StartEditing(f.ctx, doc.ID, f.editor)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestAssignEditor_ReplacesAndForcesEditing(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)
	f.pub.reset()

	doc, err := f.svc.AssignEditor(f.ctx, doc.ID, f.creator, assignee(f.signer1))
	require.NoError(t, err)
	assert.Equal(t, document.StatusEditing, doc.Status)

	editors := f.roles(t, doc.ID).FindByRole(document.RoleEditor)
	require.Len(t, editors, 1)
	assert.Equal(t, f.signer1.ID, *editors[0].AssignedUserID)
	assert.Len(t, f.pub.byKind(notify.KindAssigned), 1)

	_, err = f.svc.AssignEditor(f.ctx, doc.ID, f.reviewer, assignee(f.reviewer))
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

// --------------------- SubmitForReview ---------------------
func TestSubmitForReview_RequiresFields(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.create(t)

	_, err := f.svc.SubmitForReview(f.ctx, doc.ID, f.editor)
	require.ErrorIs(t, err, apperr.ErrValidationFailed)
	assert.Equal(t, []string{"Name"}, apperr.Details(err))

	f.fill(t, doc.ID)
	doc, err = f.svc.SubmitForReview(f.ctx, doc.ID, f.editor)
	require.NoError(t, err)
	assert.Equal(t, document.StatusReadyForReview, doc.Status)
}

func TestSubmitForReview_ListsEveryMissingField(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.create(t)

	data := doc.Fields()
	data.CoordinateFields[1].Required = true
	data.CoordinateFields[1].Label = ""
	_, err := f.svc.UpdateDocumentData(f.ctx, doc.ID, f.editor, document.UpdateDataInput{Data: data})
	require.NoError(t, err)

	_, err = f.svc.SubmitForReview(f.ctx, doc.ID, f.creator)
	require.ErrorIs(t, err, apperr.ErrValidationFailed)
	assert.Equal(t, []string{"Name", "field f2"}, apperr.Details(err))
}

func TestSubmitForReview_WrongStateOrRole(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)

	_, err := f.svc.SubmitForReview(f.ctx, doc.ID, f.editor)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)

	_, err = f.svc.SubmitForReview(f.ctx, doc.ID, f.signer1)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

// --------------------- Role assignment ---------------------
func TestAssignReviewer_DuplicateIsConflict(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)

	_, err := f.svc.AssignReviewer(f.ctx, doc.ID, f.editor, assignee(f.reviewer))
	require.NoError(t, err)
	_, err = f.svc.AssignReviewer(f.ctx, doc.ID, f.creator, document.AssigneeInput{Email: "REVIEWER@test.com"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	assert.Len(t, f.roles(t, doc.ID).FindByRole(document.RoleReviewer), 1)
}

func TestAssignEditor_SameEditorTwiceIsNotAnError(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.create(t)

	_, err := f.svc.AssignEditor(f.ctx, doc.ID, f.creator, assignee(f.editor))
	require.NoError(t, err)
	assert.Len(t, f.roles(t, doc.ID).FindByRole(document.RoleEditor), 1)
}

func TestRemoveSigner(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)

	_, err := f.svc.RemoveSigner(f.ctx, doc.ID, f.editor, f.signer1.Email)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.svc.AssignSigner(f.ctx, doc.ID, f.editor, assignee(f.signer1))
	require.NoError(t, err)
	_, err = f.svc.RemoveSigner(f.ctx, doc.ID, f.creator, "S1@test.com")
	require.NoError(t, err)
	assert.False(t, f.roles(t, doc.ID).ExistsByRole(document.RoleSigner))
}

func TestRemoveReviewer_PendingIdentity(t *testing.T) {
	f := setupWorkflow(t)
	f.svc.Identities.(*UserService).AutoProvision = false
	doc := f.readyForReview(t)

	_, err := f.svc.AssignReviewer(f.ctx, doc.ID, f.editor, document.AssigneeInput{Email: "outside@test.com", Name: "Out"})
	require.NoError(t, err)
	reviewer, ok := f.roles(t, doc.ID).Sole(document.RoleReviewer)
	require.True(t, ok)
	assert.True(t, reviewer.Identity().IsPending())

	_, err = f.svc.RemoveReviewer(f.ctx, doc.ID, f.editor, "outside@test.com")
	require.NoError(t, err)
	assert.False(t, f.roles(t, doc.ID).ExistsByRole(document.RoleReviewer))
}

func TestAssignSignersBatch_PartialSuccess(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)

	_, err := f.svc.AssignSigner(f.ctx, doc.ID, f.editor, assignee(f.signer1))
	require.NoError(t, err)
	f.pub.reset()

	results, _, err := f.svc.AssignSignersBatch(f.ctx, doc.ID, f.editor, []document.AssigneeInput{
		assignee(f.signer1),
		assignee(f.signer2),
		{Email: ""},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.False(t, results[0].Assigned)
	assert.True(t, results[1].Assigned)
	assert.False(t, results[2].Assigned)

	assert.Len(t, f.roles(t, doc.ID).FindByRole(document.RoleSigner), 2)
	assigned := f.pub.byKind(notify.KindAssigned)
	require.Len(t, assigned, 1)
	assert.Equal(t, f.signer2.ID, assigned[0].Recipient.UserID)
}

func TestAssignSignersBatch_AllFail(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)

	_, err := f.svc.AssignSigner(f.ctx, doc.ID, f.editor, assignee(f.signer1))
	require.NoError(t, err)

	_, _, err = f.svc.AssignSignersBatch(f.ctx, doc.ID, f.editor, []document.AssigneeInput{assignee(f.signer1)})
	require.ErrorIs(t, err, apperr.ErrConflict)
	assert.Len(t, apperr.Details(err), 1)
}

// --------------------- Review stage ---------------------
func TestCompleteReviewerAssignment_NeedsReviewer(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)

	_, err := f.svc.CompleteReviewerAssignment(f.ctx, doc.ID, f.editor, false)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)

	_, err = f.svc.CompleteReviewerAssignment(f.ctx, doc.ID, f.editor, true)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestCompleteReviewerAssignment_SkipReview(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)
	_, err := f.svc.AssignSigner(f.ctx, doc.ID, f.editor, assignee(f.signer1))
	require.NoError(t, err)

	doc, err = f.svc.CompleteReviewerAssignment(f.ctx, doc.ID, f.creator, true)
	require.NoError(t, err)
	assert.Equal(t, document.StatusSigning, doc.Status)
	assert.Len(t, f.pub.byKind(notify.KindSignatureRequest), 1)
}

func TestCompleteSignerAssignment_AddsTemplateOwnerAsReviewer(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)

	_, err := f.svc.CompleteSignerAssignment(f.ctx, doc.ID, f.editor)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)

	_, err = f.svc.AssignSigner(f.ctx, doc.ID, f.editor, assignee(f.signer1))
	require.NoError(t, err)
	doc, err = f.svc.CompleteSignerAssignment(f.ctx, doc.ID, f.editor)
	require.NoError(t, err)
	assert.Equal(t, document.StatusReviewing, doc.Status)
	assert.True(t, f.roles(t, doc.ID).Holds(f.owner, document.RoleReviewer))
}

func TestApproveReview_MovesToSigningAndNotifiesSigners(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.reviewing(t)
	f.pub.reset()

	doc, err := f.svc.ApproveReview(f.ctx, doc.ID, f.reviewer, "fine")
	require.NoError(t, err)
	assert.Equal(t, document.StatusSigning, doc.Status)

	requests := f.pub.byKind(notify.KindSignatureRequest)
	require.Len(t, requests, 2)
	assert.ElementsMatch(t, []string{"s1@test.com", "s2@test.com"},
		[]string{requests[0].Recipient.Email, requests[1].Recipient.Email})

	logs := f.logs(t, doc.ID)
	annotation := logs[len(logs)-2]
	assert.Equal(t, document.StatusReviewing, annotation.Status)
	assert.Equal(t, "fine", annotation.Comment)
	assert.Equal(t, document.StatusSigning, logs[len(logs)-1].Status)
}

func TestApproveReview_WithoutSignersStaysReviewing(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)
	_, err := f.svc.AssignReviewer(f.ctx, doc.ID, f.editor, assignee(f.reviewer))
	require.NoError(t, err)
	_, err = f.svc.CompleteReviewerAssignment(f.ctx, doc.ID, f.editor, false)
	require.NoError(t, err)
	before := len(f.logs(t, doc.ID))

	doc, err = f.svc.ApproveReview(f.ctx, doc.ID, f.reviewer, "")
	require.NoError(t, err)
	assert.Equal(t, document.StatusReviewing, doc.Status)

	logs := f.logs(t, doc.ID)
	require.Len(t, logs, before+1)
	assert.Equal(t, "review approved", logs[before].Comment)
	assert.Empty(t, f.pub.byKind(notify.KindSignatureRequest))
}

func TestApproveReview_OutsideReviewing(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)
	_, err := f.svc.AssignReviewer(f.ctx, doc.ID, f.editor, assignee(f.reviewer))
	require.NoError(t, err)

	_, err = f.svc.ApproveReview(f.ctx, doc.ID, f.reviewer, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestRejectReview(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.reviewing(t)
	require.NoError(t, f.svc.MarkViewed(f.ctx, doc.ID, f.editor))
	f.pub.reset()

	doc, err := f.svc.RejectReview(f.ctx, doc.ID, f.reviewer, "typo in name")
	require.NoError(t, err)
	assertRejected(t, f, doc, "typo in name")
}

func TestRejectReview_DefaultsReason(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.reviewing(t)
	f.pub.reset()

	doc, err := f.svc.RejectReview(f.ctx, doc.ID, f.reviewer, " ")
	require.NoError(t, err)
	assertRejected(t, f, doc, "review rejected")
}

func assertRejected(t *testing.T, f *workflowFixture, doc *document.Document, reason string) {
	t.Helper()
	assert.Equal(t, document.StatusEditing, doc.Status)
	assert.True(t, doc.IsRejected)

	roles := f.roles(t, doc.ID)
	assert.False(t, roles.ExistsByRole(document.RoleSigner))
	editor, ok := roles.Sole(document.RoleEditor)
	require.True(t, ok)
	assert.Nil(t, editor.LastViewedAt)

	logs := f.logs(t, doc.ID)
	last := logs[len(logs)-1]
	assert.Equal(t, document.StatusRejected, last.Status)
	assert.True(t, last.RejectLog)
	assert.Equal(t, reason, last.Comment)

	rejected := f.pub.byKind(notify.KindRejected)
	require.Len(t, rejected, 1)
	assert.Equal(t, f.editor.ID, rejected[0].Recipient.UserID)
	assert.Equal(t, reason, rejected[0].Reason)
}

// --------------------- Signing stage ---------------------
func TestApproveDocument_CompletesWhenAllSigned(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.signing(t)
	f.pub.reset()

	doc, err := f.svc.ApproveDocument(f.ctx, doc.ID, f.signer1, "sam-signature")
	require.NoError(t, err)
	assert.Equal(t, document.StatusSigning, doc.Status)
	assert.Equal(t, "sam-signature", doc.Fields().CoordinateFields[2].Value)

	doc, err = f.svc.ApproveDocument(f.ctx, doc.ID, f.signer2, "sue-signature")
	require.NoError(t, err)
	assert.Equal(t, document.StatusCompleted, doc.Status)

	completed := f.pub.byKind(notify.KindCompleted)
	require.Len(t, completed, 2)
	require.NotNil(t, completed[0].Snapshot)
	assert.Nil(t, completed[1].Snapshot)
	assert.Equal(t, document.StatusCompleted, completed[0].Snapshot.Status)

	_, err = f.svc.ApproveDocument(f.ctx, doc.ID, f.signer1, "again")
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestApproveDocument_Validation(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.signing(t)

	_, err := f.svc.ApproveDocument(f.ctx, doc.ID, f.signer1, "")
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)

	_, err = f.svc.ApproveDocument(f.ctx, doc.ID, f.reviewer, "sig")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestApproveDocument_UnboundSignerCannotSign(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)
	_, err := f.svc.AssignSigner(f.ctx, doc.ID, f.editor, assignee(f.reviewer))
	require.NoError(t, err)
	_, err = f.svc.CompleteReviewerAssignment(f.ctx, doc.ID, f.editor, true)
	require.NoError(t, err)

	_, err = f.svc.ApproveDocument(f.ctx, doc.ID, f.reviewer, "sig")
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)
}

func TestRejectDocument(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.signing(t)
	f.pub.reset()

	doc, err := f.svc.RejectDocument(f.ctx, doc.ID, f.signer2, "incomplete")
	require.NoError(t, err)
	assertRejected(t, f, doc, "incomplete")

	// the document can go through review again
	_, err = f.svc.SubmitForReview(f.ctx, doc.ID, f.editor)
	require.NoError(t, err)
}

func TestRejectDocument_DefaultsReason(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.signing(t)
	f.pub.reset()

	doc, err := f.svc.RejectDocument(f.ctx, doc.ID, f.signer1, "")
	require.NoError(t, err)
	assertRejected(t, f, doc, "document rejected")
}

func (f *workflowFixture) issueToken(t *testing.T, docID uint, signer user.Actor, value string) {
	t.Helper()
	tok := signing.Token{
		Token:       value,
		DocumentID:  docID,
		SignerEmail: signer.Email,
		SignerName:  signer.Name,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, f.repos.SigningToken.CreateSigningToken(&tok))
}

func TestSignByToken(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.signing(t)
	f.issueToken(t, doc.ID, f.signer1, "tok-1")

	// a failed attempt leaves the link usable
	_, err := f.svc.ApproveDocumentByToken(f.ctx, "tok-1", "")
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)

	doc, err = f.svc.ApproveDocumentByToken(f.ctx, "tok-1", "via-link")
	require.NoError(t, err)
	assert.Equal(t, "via-link", doc.Fields().CoordinateFields[2].Value)

	_, err = f.svc.ApproveDocumentByToken(f.ctx, "tok-1", "again")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = f.svc.RejectDocumentByToken(f.ctx, "missing", "no")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSignByToken_RejectionRevokesOutstandingLinks(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.signing(t)
	f.issueToken(t, doc.ID, f.signer1, "old")

	_, err := f.svc.RejectDocument(f.ctx, doc.ID, f.signer2, "wrong date")
	require.NoError(t, err)

	// second round with the same signers
	_, err = f.svc.SubmitForReview(f.ctx, doc.ID, f.editor)
	require.NoError(t, err)
	_, err = f.svc.AssignSigner(f.ctx, doc.ID, f.editor, assignee(f.signer1))
	require.NoError(t, err)
	_, err = f.svc.AssignSigner(f.ctx, doc.ID, f.editor, assignee(f.signer2))
	require.NoError(t, err)
	doc, err = f.svc.CompleteReviewerAssignment(f.ctx, doc.ID, f.editor, true)
	require.NoError(t, err)
	require.Equal(t, document.StatusSigning, doc.Status)

	_, err = f.svc.ApproveDocumentByToken(f.ctx, "old", "stale-sig")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	stored, err := f.repos.Document.GetDocumentByID(doc.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Fields().CoordinateFields[2].Value)
}

func TestSignByToken_RemovedSignerLinkRevoked(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.signing(t)
	f.issueToken(t, doc.ID, f.signer1, "s1-link")
	f.issueToken(t, doc.ID, f.signer2, "s2-link")

	_, err := f.svc.RemoveSigner(f.ctx, doc.ID, f.editor, "S1@test.com")
	require.NoError(t, err)

	_, err = f.svc.ApproveDocumentByToken(f.ctx, "s1-link", "sig")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	doc, err = f.svc.ApproveDocumentByToken(f.ctx, "s2-link", "sue-sig")
	require.NoError(t, err)
	assert.Equal(t, document.StatusCompleted, doc.Status)
}

// --------------------- SendMessage ---------------------
func TestSendMessage_ToReviewer(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.reviewing(t)
	f.pub.reset()

	in := document.MessageInput{RecipientEmail: "Reviewer@test.com", RecipientRole: document.RoleReviewer, Message: " please hurry "}
	err := f.svc.SendMessage(f.ctx, doc.ID, f.creator, in)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	require.NoError(t, f.svc.SendMessage(f.ctx, doc.ID, f.admin, in))
	msgs := f.pub.byKind(notify.KindMessage)
	require.Len(t, msgs, 1)
	assert.Equal(t, f.reviewer.ID, msgs[0].Recipient.UserID)
	assert.Equal(t, "please hurry", msgs[0].Reason)
	assert.Equal(t, f.admin.DisplayName(), msgs[0].ActorName)

	in.Message = ""
	err = f.svc.SendMessage(f.ctx, doc.ID, f.admin, in)
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)

	in = document.MessageInput{RecipientEmail: f.signer1.Email, RecipientRole: document.RoleReviewer, Message: "hi"}
	err = f.svc.SendMessage(f.ctx, doc.ID, f.admin, in)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSendMessage_ResendsSigningLink(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.reviewing(t)
	in := document.MessageInput{RecipientEmail: f.signer1.Email, RecipientRole: document.RoleSigner}

	err := f.svc.SendMessage(f.ctx, doc.ID, f.admin, in)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)

	doc, err = f.svc.ApproveReview(f.ctx, doc.ID, f.reviewer, "")
	require.NoError(t, err)
	f.pub.reset()

	require.NoError(t, f.svc.SendMessage(f.ctx, doc.ID, f.admin, in))
	requests := f.pub.byKind(notify.KindSignatureRequest)
	require.Len(t, requests, 1)
	assert.Equal(t, f.signer1.Email, requests[0].Recipient.Email)
	assert.Empty(t, f.pub.byKind(notify.KindMessage))

	// no state change is logged
	stored, err := f.repos.Document.GetDocumentByID(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusSigning, stored.Status)
}

// --------------------- Supporting operations ---------------------
func TestUpdateDocumentData_OnlyWhileEditing(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.readyForReview(t)

	_, err := f.svc.UpdateDocumentData(f.ctx, doc.ID, f.editor, document.UpdateDataInput{Data: doc.Fields()})
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestUpdateDeadline_ElevatedOnly(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.create(t)
	due := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	_, err := f.svc.UpdateDeadline(f.ctx, doc.ID, f.creator, &due)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	doc, err = f.svc.UpdateDeadline(f.ctx, doc.ID, f.admin, &due)
	require.NoError(t, err)
	require.NotNil(t, doc.Deadline)
	assert.True(t, due.Equal(*doc.Deadline))
}

func TestDeleteDocument(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.signing(t)

	err := f.svc.DeleteDocument(f.ctx, doc.ID, f.signer1)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	require.NoError(t, f.svc.DeleteDocument(f.ctx, doc.ID, f.admin))
	assert.Empty(t, f.roles(t, doc.ID))
	assert.Empty(t, f.logs(t, doc.ID))

	_, err = f.svc.GetDocument(f.ctx, doc.ID, f.admin)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFailedTransitionPublishesNothing(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.create(t)
	f.pub.reset()

	_, err := f.svc.AssignEditor(f.ctx, doc.ID, f.signer1, assignee(f.signer2))
	require.Error(t, err)
	assert.Empty(t, f.pub.events)
}

// --------------------- Queries ---------------------
func TestGetDocument(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.reviewing(t)

	_, err := f.svc.GetDocument(f.ctx, doc.ID, f.owner)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	resp, err := f.svc.GetDocument(f.ctx, doc.ID, f.reviewer)
	require.NoError(t, err)
	assert.Equal(t, "TA agreement", resp.TemplateName)
	assert.Len(t, resp.Tasks, 5)
	require.NotEmpty(t, resp.StatusLogs)
	assert.Equal(t, document.StatusDraft, resp.StatusLogs[0].Status)
	assert.Equal(t, document.StatusReviewing, resp.StatusLogs[len(resp.StatusLogs)-1].Status)
}

func TestListTodo(t *testing.T) {
	f := setupWorkflow(t)
	early := time.Now().Add(24 * time.Hour).UTC()
	late := time.Now().Add(72 * time.Hour).UTC()

	undated := f.create(t)
	dueLate, err := f.svc.CreateDocument(f.ctx, f.creator, document.CreateDocumentInput{TemplateID: f.templateID, EditorEmail: f.editor.Email, Deadline: &late})
	require.NoError(t, err)
	dueEarly, err := f.svc.CreateDocument(f.ctx, f.creator, document.CreateDocumentInput{TemplateID: f.templateID, EditorEmail: f.editor.Email, Deadline: &early})
	require.NoError(t, err)
	reviewing := f.reviewing(t)

	todo, err := f.svc.ListTodo(f.ctx, f.editor)
	require.NoError(t, err)
	var ids []uint
	for _, d := range todo {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []uint{dueEarly.ID, dueLate.ID, undated.ID}, ids[:3])
	assert.NotContains(t, ids, reviewing.ID)

	todo, err = f.svc.ListTodo(f.ctx, f.reviewer)
	require.NoError(t, err)
	require.Len(t, todo, 1)
	assert.Equal(t, reviewing.ID, todo[0].ID)
}

func TestListDocuments(t *testing.T) {
	f := setupWorkflow(t)
	f.create(t)
	f.create(t)

	mine, err := f.svc.ListDocuments(f.ctx, f.editor)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := f.svc.ListDocuments(f.ctx, f.signer1)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := f.svc.ListDocuments(f.ctx, f.admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListByTemplate_Sanitized(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.signing(t)
	_, err := f.svc.ApproveDocument(f.ctx, doc.ID, f.signer1, "secret")
	require.NoError(t, err)

	list, err := f.svc.ListByTemplate(f.ctx, f.editor, f.templateID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	sig := list[0].Data.CoordinateFields[2]
	assert.Empty(t, sig.Value)
	assert.Empty(t, sig.SignerEmail)
	assert.Equal(t, "Alice", list[0].Data.CoordinateFields[0].Value)

	other, err := f.svc.ListByTemplate(f.ctx, f.signer2, f.templateID)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCanReviewAndSign(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.reviewing(t)

	ok, err := f.svc.CanReview(f.ctx, doc.ID, f.reviewer)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.CanSign(f.ctx, doc.ID, f.signer1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMarkViewed(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.create(t)

	editor, _ := f.roles(t, doc.ID).Sole(document.RoleEditor)
	assert.True(t, editor.IsNew())

	require.NoError(t, f.svc.MarkViewed(f.ctx, doc.ID, f.editor))
	editor, _ = f.roles(t, doc.ID).Sole(document.RoleEditor)
	assert.False(t, editor.IsNew())

	assert.ErrorIs(t, f.svc.MarkViewed(f.ctx, doc.ID, f.signer1), apperr.ErrForbidden)
}

// --------------------- Deadline reminders ---------------------
func TestRemindUpcomingDeadlines_SkipsSignedSigners(t *testing.T) {
	f := setupWorkflow(t)
	doc := f.signing(t)
	due := time.Now().Add(2 * time.Hour).UTC()
	_, err := f.svc.UpdateDeadline(f.ctx, doc.ID, f.admin, &due)
	require.NoError(t, err)
	_, err = f.svc.ApproveDocument(f.ctx, doc.ID, f.signer1, "sig")
	require.NoError(t, err)
	f.pub.reset()

	n, err := f.svc.RemindUpcomingDeadlines(f.ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	reminders := f.pub.byKind(notify.KindDeadlineReminder)
	require.Len(t, reminders, 1)
	assert.Equal(t, f.signer2.ID, reminders[0].Recipient.UserID)
}
