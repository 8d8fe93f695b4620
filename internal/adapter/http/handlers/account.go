package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobdesk/pkg"
)

// AccountHeader identifies the acting account (email or phone). Requests
// without it are rejected before reaching any use case.
const AccountHeader = "X-Account"

var errMissingAccount = pkg.NewDomainErrorSimple("MISSING_ACCOUNT", "Missing "+AccountHeader+" header", http.StatusBadRequest)

func accountContact(c *gin.Context) (string, bool) {
	contact := strings.TrimSpace(c.GetHeader(AccountHeader))
	if contact == "" {
		c.JSON(errMissingAccount.HTTPStatus, errMissingAccount.ToHTTPError())
		return "", false
	}
	return contact, true
}
