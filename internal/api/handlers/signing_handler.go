package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/docflow/internal/application"
	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/pkg/response"
)

// SigningHandler serves the emailed signing links. The token is the only
// credential, so these routes sit outside the JWT group.
type SigningHandler struct {
	svc *application.WorkflowService
}

func NewSigningHandler(svc *application.WorkflowService) *SigningHandler {
	return &SigningHandler{svc: svc}
}

// Approve godoc
// @Summary Sign a document through an emailed link
// @Tags signing
// @Accept json
// @Produce json
// @Param token path string true "Signing token"
// @Param input body document.SignInput true "Signature image"
// @Success 200 {object} document.Document
// @Failure 403 {object} response.ErrorResponse "Link expired or used"
// @Failure 404 {object} response.ErrorResponse "Link not found"
// @Router /signing/{token}/approve [post]
func (h *SigningHandler) Approve(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "token is required"})
		return
	}
	var input document.SignInput
	if !bindJSON(c, &input) {
		return
	}
	doc, err := h.svc.ApproveDocumentByToken(c.Request.Context(), token, input.Signature)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Reject godoc
// @Summary Reject a document through an emailed link
// @Tags signing
// @Accept json
// @Produce json
// @Param token path string true "Signing token"
// @Param input body document.RejectInput false "Reason"
// @Success 200 {object} document.Document
// @Failure 403 {object} response.ErrorResponse "Link expired or used"
// @Failure 404 {object} response.ErrorResponse "Link not found"
// @Router /signing/{token}/reject [post]
func (h *SigningHandler) Reject(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "token is required"})
		return
	}
	var input document.RejectInput
	if c.Request.ContentLength > 0 && !bindJSON(c, &input) {
		return
	}
	doc, err := h.svc.RejectDocumentByToken(c.Request.Context(), token, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
