package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
	"github.com/noah-isme/college-admin-api/pkg/response"
)

func bindPayload(c *gin.Context, dest interface{}, entity string) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, fmt.Sprintf("Invalid %s payload", entity)))
		return false
	}
	return true
}

func invalidIdentifier(c *gin.Context, entity string) {
	response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("Invalid %s identifier", entity)))
}

// stringQuery reads a required, non-blank query parameter. The value is
// returned as sent so stored keys with surrounding spaces stay addressable.
func stringQuery(c *gin.Context, key, entity string) (string, bool) {
	value := c.Query(key)
	if strings.TrimSpace(value) == "" {
		invalidIdentifier(c, entity)
		return "", false
	}
	return value, true
}

// intQuery reads a required integer query parameter.
func intQuery(c *gin.Context, key, entity string) (int, bool) {
	raw, ok := stringQuery(c, key, entity)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		invalidIdentifier(c, entity)
		return 0, false
	}
	return value, true
}
