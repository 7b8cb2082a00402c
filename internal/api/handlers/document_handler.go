package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/docflow/internal/application"
	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/pkg/response"
	"github.com/linskybing/docflow/pkg/utils"
)

type DocumentHandler struct {
	svc *application.WorkflowService
}

func NewDocumentHandler(svc *application.WorkflowService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// requestActor pulls the caller from the JWT claims and aborts with 401
// when they are missing.
func requestActor(c *gin.Context) (user.Actor, bool) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return user.Actor{}, false
	}
	return actor, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseIDParam(c, name)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return 0, false
	}
	return id, true
}

// documentAction resolves the actor and :id, then runs fn.
func (h *DocumentHandler) documentAction(c *gin.Context, fn func(actor user.Actor, id uint) (*document.Document, error)) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	doc, err := fn(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ListDocuments godoc
// @Summary List documents visible to the caller
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Success 200 {array} document.DocumentResponse
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	docs, err := h.svc.ListDocuments(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// ListTodo godoc
// @Summary List open documents that need the caller
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Success 200 {array} document.DocumentResponse
// @Router /documents/todo [get]
func (h *DocumentHandler) ListTodo(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	docs, err := h.svc.ListTodo(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// ListByTemplate godoc
// @Summary List the caller's edited documents built from a template
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param templateId path int true "Template ID"
// @Success 200 {array} document.DocumentResponse
// @Router /documents/by-template/{templateId} [get]
func (h *DocumentHandler) ListByTemplate(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	templateID, ok := idParam(c, "templateId")
	if !ok {
		return
	}
	docs, err := h.svc.ListByTemplate(c.Request.Context(), actor, templateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// CreateDocument godoc
// @Summary Create a document from a template
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body document.CreateDocumentInput true "Document info"
// @Success 201 {object} document.Document
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Template not accessible"
// @Failure 404 {object} response.ErrorResponse "Template not found"
// @Router /documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	var input document.CreateDocumentInput
	if !bindJSON(c, &input) {
		return
	}
	doc, err := h.svc.CreateDocument(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GetDocument godoc
// @Summary Get a document with tasks and status log
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} document.DocumentResponse
// @Failure 403 {object} response.ErrorResponse "No role on document"
// @Failure 404 {object} response.ErrorResponse "Document not found"
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	doc, err := h.svc.GetDocument(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateDocument godoc
// @Summary Replace the field data of a draft or editing document
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.UpdateDataInput true "Field data"
// @Success 200 {object} document.Document
// @Failure 403 {object} response.ErrorResponse "Not the editor"
// @Failure 409 {object} response.ErrorResponse "Wrong state or stale version"
// @Router /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var input document.UpdateDataInput
	if !bindJSON(c, &input) {
		return
	}
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.UpdateDocumentData(c.Request.Context(), id, actor, input)
	})
}

// UpdateDeadline godoc
// @Summary Change a document deadline
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.DeadlineInput true "Deadline"
// @Success 200 {object} document.Document
// @Failure 403 {object} response.ErrorResponse "Elevated access required"
// @Router /documents/{id}/deadline [put]
func (h *DocumentHandler) UpdateDeadline(c *gin.Context) {
	var input document.DeadlineInput
	if !bindJSON(c, &input) {
		return
	}
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.UpdateDeadline(c.Request.Context(), id, actor, input.Deadline)
	})
}

// DeleteDocument godoc
// @Summary Delete a document with its roles, log and signing links
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Not allowed"
// @Failure 404 {object} response.ErrorResponse "Document not found"
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteDocument(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Document deleted"})
}

// StartEditing godoc
// @Summary Move a draft into editing
// @Tags workflow
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} document.Document
// @Failure 403 {object} response.ErrorResponse "Not the editor"
// @Failure 409 {object} response.ErrorResponse "Not in draft state"
// @Router /documents/{id}/start-editing [post]
func (h *DocumentHandler) StartEditing(c *gin.Context) {
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.StartEditing(c.Request.Context(), id, actor)
	})
}

// SubmitForReview godoc
// @Summary Submit the edited document for reviewer assignment
// @Tags workflow
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} document.Document
// @Failure 409 {object} response.ErrorResponse "Not in editing state"
// @Failure 422 {object} response.ErrorResponse "Required fields are empty"
// @Router /documents/{id}/submit-for-review [post]
func (h *DocumentHandler) SubmitForReview(c *gin.Context) {
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.SubmitForReview(c.Request.Context(), id, actor)
	})
}

// AssignEditor godoc
// @Summary Assign or replace the editor
// @Tags roles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.AssigneeInput true "Editor"
// @Success 200 {object} document.Document
// @Failure 403 {object} response.ErrorResponse "Not the creator"
// @Router /documents/{id}/assign-editor [post]
func (h *DocumentHandler) AssignEditor(c *gin.Context) {
	var input document.AssigneeInput
	if !bindJSON(c, &input) {
		return
	}
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.AssignEditor(c.Request.Context(), id, actor, input)
	})
}

// AssignReviewer godoc
// @Summary Add a reviewer
// @Tags roles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.AssigneeInput true "Reviewer"
// @Success 200 {object} document.Document
// @Failure 409 {object} response.ErrorResponse "Already assigned"
// @Router /documents/{id}/assign-reviewer [post]
func (h *DocumentHandler) AssignReviewer(c *gin.Context) {
	var input document.AssigneeInput
	if !bindJSON(c, &input) {
		return
	}
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.AssignReviewer(c.Request.Context(), id, actor, input)
	})
}

// AssignSigner godoc
// @Summary Add a signer
// @Tags roles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.AssigneeInput true "Signer"
// @Success 200 {object} document.Document
// @Failure 409 {object} response.ErrorResponse "Already assigned"
// @Router /documents/{id}/assign-signer [post]
func (h *DocumentHandler) AssignSigner(c *gin.Context) {
	var input document.AssigneeInput
	if !bindJSON(c, &input) {
		return
	}
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.AssignSigner(c.Request.Context(), id, actor, input)
	})
}

type batchAssignResponse struct {
	Results  []document.BatchResult `json:"results"`
	Document *document.Document     `json:"document"`
}

// AssignSignersBatch godoc
// @Summary Add several signers, skipping entries that fail
// @Tags roles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.BatchAssignInput true "Signers"
// @Success 200 {object} batchAssignResponse
// @Failure 409 {object} response.ErrorResponse "No signer could be assigned"
// @Router /documents/{id}/assign-signers-batch [post]
func (h *DocumentHandler) AssignSignersBatch(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input document.BatchAssignInput
	if !bindJSON(c, &input) {
		return
	}
	results, doc, err := h.svc.AssignSignersBatch(c.Request.Context(), id, actor, input.Signers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, batchAssignResponse{Results: results, Document: doc})
}

// RemoveReviewer godoc
// @Summary Remove a reviewer by email
// @Tags roles
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Param email query string true "Reviewer email"
// @Success 200 {object} document.Document
// @Failure 404 {object} response.ErrorResponse "Not assigned"
// @Router /documents/{id}/remove-reviewer [delete]
func (h *DocumentHandler) RemoveReviewer(c *gin.Context) {
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.RemoveReviewer(c.Request.Context(), id, actor, c.Query("email"))
	})
}

// RemoveSigner godoc
// @Summary Remove a signer by email
// @Tags roles
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Param email query string true "Signer email"
// @Success 200 {object} document.Document
// @Failure 404 {object} response.ErrorResponse "Not assigned"
// @Router /documents/{id}/remove-signer [delete]
func (h *DocumentHandler) RemoveSigner(c *gin.Context) {
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.RemoveSigner(c.Request.Context(), id, actor, c.Query("email"))
	})
}

// CompleteReviewerAssignment godoc
// @Summary Finish reviewer assignment, optionally skipping review
// @Tags workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.CompleteReviewerInput false "Options"
// @Success 200 {object} document.Document
// @Failure 409 {object} response.ErrorResponse "Missing reviewer or signer"
// @Router /documents/{id}/complete-reviewer-assignment [post]
func (h *DocumentHandler) CompleteReviewerAssignment(c *gin.Context) {
	var input document.CompleteReviewerInput
	if c.Request.ContentLength > 0 && !bindJSON(c, &input) {
		return
	}
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.CompleteReviewerAssignment(c.Request.Context(), id, actor, input.SkipReview)
	})
}

// CompleteSignerAssignment godoc
// @Summary Finish signer assignment and start review
// @Tags workflow
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} document.Document
// @Failure 409 {object} response.ErrorResponse "No signer assigned"
// @Router /documents/{id}/complete-signer-assignment [post]
func (h *DocumentHandler) CompleteSignerAssignment(c *gin.Context) {
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.CompleteSignerAssignment(c.Request.Context(), id, actor)
	})
}

// ApproveReview godoc
// @Summary Approve the review and start signing
// @Tags workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.CommentInput false "Comment"
// @Success 200 {object} document.Document
// @Failure 403 {object} response.ErrorResponse "Not a reviewer"
// @Router /documents/{id}/review/approve [post]
func (h *DocumentHandler) ApproveReview(c *gin.Context) {
	var input document.CommentInput
	if c.Request.ContentLength > 0 && !bindJSON(c, &input) {
		return
	}
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.ApproveReview(c.Request.Context(), id, actor, input.Comment)
	})
}

// RejectReview godoc
// @Summary Reject the review back to editing
// @Tags workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.RejectInput false "Reason"
// @Success 200 {object} document.Document
// @Router /documents/{id}/review/reject [post]
func (h *DocumentHandler) RejectReview(c *gin.Context) {
	var input document.RejectInput
	if c.Request.ContentLength > 0 && !bindJSON(c, &input) {
		return
	}
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.RejectReview(c.Request.Context(), id, actor, input.Reason)
	})
}

// ApproveDocument godoc
// @Summary Sign the document
// @Tags workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.SignInput true "Signature image"
// @Success 200 {object} document.Document
// @Failure 403 {object} response.ErrorResponse "Not a signer"
// @Failure 422 {object} response.ErrorResponse "Signature invalid"
// @Router /documents/{id}/approve [post]
func (h *DocumentHandler) ApproveDocument(c *gin.Context) {
	var input document.SignInput
	if !bindJSON(c, &input) {
		return
	}
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.ApproveDocument(c.Request.Context(), id, actor, input.Signature)
	})
}

// RejectDocument godoc
// @Summary Reject during signing back to editing
// @Tags workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.RejectInput false "Reason"
// @Success 200 {object} document.Document
// @Router /documents/{id}/reject [post]
func (h *DocumentHandler) RejectDocument(c *gin.Context) {
	var input document.RejectInput
	if c.Request.ContentLength > 0 && !bindJSON(c, &input) {
		return
	}
	h.documentAction(c, func(actor user.Actor, id uint) (*document.Document, error) {
		return h.svc.RejectDocument(c.Request.Context(), id, actor, input.Reason)
	})
}

// MarkViewed godoc
// @Summary Clear the new-task indicator for the caller
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} response.MessageResponse
// @Router /documents/{id}/view [post]
func (h *DocumentHandler) MarkViewed(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.MarkViewed(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Marked as viewed"})
}

// SendMessage godoc
// @Summary Message a task holder or re-send a signing link
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body document.MessageInput true "Recipient and message"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Not an administrator"
// @Failure 404 {object} response.ErrorResponse "Recipient not assigned"
// @Router /documents/{id}/send-message [post]
func (h *DocumentHandler) SendMessage(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input document.MessageInput
	if !bindJSON(c, &input) {
		return
	}
	if err := h.svc.SendMessage(c.Request.Context(), id, actor, input); err != nil {
		respondError(c, err)
		return
	}
	msg := "Message sent"
	if input.RecipientRole == document.RoleSigner {
		msg = "Signing link sent"
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: msg})
}

// CanReview godoc
// @Summary Check whether the caller may review now
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} response.BoolResponse
// @Router /documents/{id}/can-review [get]
func (h *DocumentHandler) CanReview(c *gin.Context) {
	h.check(c, h.svc.CanReview)
}

// CanSign godoc
// @Summary Check whether the caller may sign now
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} response.BoolResponse
// @Router /documents/{id}/can-sign [get]
func (h *DocumentHandler) CanSign(c *gin.Context) {
	h.check(c, h.svc.CanSign)
}

func (h *DocumentHandler) check(c *gin.Context, fn func(ctx context.Context, id uint, actor user.Actor) (bool, error)) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	allowed, err := fn(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.BoolResponse{Allowed: allowed})
}
