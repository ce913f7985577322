package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"local-guide/constants"
	"local-guide/models"
	"local-guide/services"
)

// ContextUserKey holds the *models.AuthUser for the current request.
const ContextUserKey = "user"

// AuthMiddleware requires a valid bearer token: an absent or empty token
// is 401, a token that fails verification is 403, a missing signing
// secret is 500.
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !authenticate(ctx, authService) {
			return
		}
		ctx.Next()
	}
}

// OptionalAuthMiddleware lets requests without an Authorization header
// through anonymously; once a header is present its token is verified
// exactly like AuthMiddleware.
func OptionalAuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetHeader("Authorization") == "" {
			ctx.Next()
			return
		}
		if !authenticate(ctx, authService) {
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the identity set by the auth middlewares, or nil for
// anonymous requests.
func CurrentUser(ctx *gin.Context) *models.AuthUser {
	value, exists := ctx.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.AuthUser)
	if !ok {
		return nil
	}
	return user
}

func authenticate(ctx *gin.Context, authService services.IAuthService) bool {
	tokenString := ""
	if parts := strings.SplitN(ctx.GetHeader("Authorization"), " ", 2); len(parts) == 2 {
		tokenString = parts[1]
	}
	if tokenString == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.MsgMissingToken})
		return false
	}

	user, err := authService.ParseToken(tokenString)
	if err != nil {
		if errors.Is(err, services.ErrMissingSecret) {
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": constants.MsgConfigError})
			return false
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": constants.MsgInvalidToken})
		return false
	}

	ctx.Set(ContextUserKey, user)
	return true
}
