// internal/utils/params.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/natura-backend/internal/i18n"
)

// ParseIDParam reads a positive integer path parameter. On failure it writes
// a 400 response and returns ok == false.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		BadRequestResponse(c, i18n.T(GetLangFromContext(c), i18n.KeyInvalidID, raw), nil)
		return 0, false
	}
	return uint(id), true
}
