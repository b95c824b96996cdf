// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/natura-backend/internal/i18n"
	"github.com/javajoker/natura-backend/internal/services"
	"github.com/javajoker/natura-backend/internal/utils"
)

// respondError maps service errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		utils.NotFoundResponse(c, i18n.KeyOrderNotFound)
	case errors.Is(err, services.ErrClientNotFound):
		utils.NotFoundResponse(c, i18n.KeyClientNotFound)
	case errors.As(err, &validationErr):
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(validationErr.Err))
	default:
		utils.InternalErrorResponse(c, err)
	}
}

// bindJSON decodes the body into req and answers 400 on malformed input.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "JSON"), err.Error())
		return false
	}
	return true
}
