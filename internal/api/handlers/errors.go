package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/docflow/pkg/apperr"
	"github.com/linskybing/docflow/pkg/logger"
	"github.com/linskybing/docflow/pkg/response"
	"go.uber.org/zap"
)

var fieldLabels = map[string]string{
	"TemplateID":  "template id",
	"EditorEmail": "editor email",
	"Email":       "email",
	"Password":    "password",
	"Name":        "name",
	"Reason":      "reason",
	"Signature":   "signature",
	"Signers":     "signers",

	"RecipientEmail": "recipient email",
	"RecipientRole":  "recipient role",
}

// statusFor maps an apperr kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrValidationFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, response.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error(), Details: apperr.Details(err)})
}

// bindJSON binds the body into obj and writes a 400 with friendly
// validation messages on failure.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorResponse(err))
		return false
	}
	return true
}

func bindErrorResponse(err error) response.ErrorResponse {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return response.ErrorResponse{Error: "Invalid input"}
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of %s", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return response.ErrorResponse{Error: strings.Join(msgs, "; "), Details: msgs}
}
