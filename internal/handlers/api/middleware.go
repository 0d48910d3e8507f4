package api

import (
	"strings"

	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/services/auth"
	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

var (
	errMissingToken = errs.Unauthorized("authorization header must be a Bearer token")
	errNotPermitted = errs.Forbidden("your role cannot perform this action")
	errWrongTeam    = errs.Forbidden("team leaders may only register participants for their own team")
)

// Guard checks role tokens issued at login
type Guard struct {
	auth auth.Service
}

// RequireRole admits requests carrying a valid token for one of roles.
// Admins are always admitted.
func (g *Guard) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			respondError(c, errMissingToken)
			return
		}

		claims, err := g.auth.Authorize(c.Request.Context(), &auth.AuthorizeInput{Token: parts[1]})
		if err != nil {
			respondError(c, err)
			return
		}

		permitted := claims.Role == models.RoleAdmin
		for _, role := range roles {
			if claims.Role == role {
				permitted = true
				break
			}
		}
		if !permitted {
			respondError(c, errNotPermitted)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// claimsFrom returns the claims stored by RequireRole
func claimsFrom(c *gin.Context) *auth.Claims {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}
