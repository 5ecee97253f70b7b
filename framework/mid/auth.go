package mid

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jarodadam/active-topia-stripe-functions/auth"
	"github.com/jarodadam/active-topia-stripe-functions/common"
	"github.com/jarodadam/active-topia-stripe-functions/framework/web"
)

// Auth validates the Firebase ID token from the Authorization header and
// stores the verified identity on the gin context for downstream handlers.
func Auth(verifier auth.Verifier) web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			authHeader := ctx.Request.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return web.RespondError(ctx, web.NewRequestError(web.ErrAuthenticationFailure, http.StatusUnauthorized))
			}

			idToken := strings.TrimPrefix(authHeader, "Bearer ")

			identity, err := verifier.VerifyIDToken(ctx, idToken)
			if err != nil {
				return web.RespondError(ctx, web.NewRequestError(web.ErrAuthenticationFailure, http.StatusUnauthorized))
			}

			ctx.Set(common.CtxKeys.UID, identity.UID)
			ctx.Set(common.CtxKeys.Email, identity.Email)

			return before(ctx)
		}

		return h
	}

	return f
}
