package middleware

import (
	"net/http"
	"strings"

	"parceiros_internet/internal/usecase"
	"parceiros_internet/internal/usecase/interfaces"
	"parceiros_internet/pkg"

	"github.com/gin-gonic/gin"
)

// UserIDKey is where RequireAdmin stores the authenticated user id in the
// gin context.
const UserIDKey = "user_id"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errNotAdmin     = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
)

// RequireAdmin guards the editing surface: a valid bearer token AND an admin
// role grant. Both checks fail closed.
func RequireAdmin(tokens interfaces.ITokenManager, auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := bearerSubject(tokens, c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if !auth.IsAdmin(c.Request.Context(), userID) {
			c.AbortWithStatusJSON(errNotAdmin.HTTPStatus, errNotAdmin.ToHTTPError())
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func bearerSubject(tokens interfaces.ITokenManager, header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	userID, err := tokens.Verify(strings.TrimSpace(strings.TrimPrefix(header, prefix)))
	if err != nil || userID == "" {
		return "", false
	}
	return userID, true
}
