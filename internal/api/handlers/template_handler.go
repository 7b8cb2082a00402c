package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/docflow/internal/application"
	"github.com/linskybing/docflow/internal/domain/template"
	"github.com/linskybing/docflow/pkg/response"
)

type TemplateHandler struct {
	svc     *application.TemplateService
	folders *application.FolderService
}

func NewTemplateHandler(svc *application.TemplateService, folders *application.FolderService) *TemplateHandler {
	return &TemplateHandler{svc: svc, folders: folders}
}

// ListTemplates godoc
// @Summary List templates visible to the caller
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {array} template.Template
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	tpls, err := h.svc.ListTemplates(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpls)
}

// GetTemplate godoc
// @Summary Get a template
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} template.Template
// @Failure 403 {object} response.ErrorResponse "Private template"
// @Failure 404 {object} response.ErrorResponse "Template not found"
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	tpl, err := h.svc.GetTemplate(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// CreateTemplate godoc
// @Summary Create a template
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body template.TemplateInput true "Template"
// @Success 201 {object} template.Template
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	var input template.TemplateInput
	if !bindJSON(c, &input) {
		return
	}
	tpl, err := h.svc.CreateTemplate(actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// UpdateTemplate godoc
// @Summary Update a template
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param input body template.TemplateInput true "Template"
// @Success 200 {object} template.Template
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Router /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input template.TemplateInput
	if !bindJSON(c, &input) {
		return
	}
	tpl, err := h.svc.UpdateTemplate(actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// DuplicateTemplate godoc
// @Summary Copy a template under a new name
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param input body template.DuplicateInput true "Copy"
// @Success 201 {object} template.Template
// @Failure 403 {object} response.ErrorResponse "Template not visible"
// @Router /templates/{id}/duplicate [post]
func (h *TemplateHandler) DuplicateTemplate(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input template.DuplicateInput
	if !bindJSON(c, &input) {
		return
	}
	tpl, err := h.svc.DuplicateTemplate(actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// DeleteTemplate godoc
// @Summary Delete an unused template
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse "Template in use"
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteTemplate(actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Template deleted"})
}

// ListFolders godoc
// @Summary List folders
// @Tags folders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} template.Folder
// @Router /folders [get]
func (h *TemplateHandler) ListFolders(c *gin.Context) {
	folders, err := h.folders.ListFolders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, folders)
}

// CreateFolder godoc
// @Summary Create a folder
// @Tags folders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body template.FolderInput true "Folder"
// @Success 201 {object} template.Folder
// @Failure 403 {object} response.ErrorResponse "Folder access required"
// @Router /folders [post]
func (h *TemplateHandler) CreateFolder(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	var input template.FolderInput
	if !bindJSON(c, &input) {
		return
	}
	f, err := h.folders.CreateFolder(actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}
