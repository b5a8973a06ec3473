package auth

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

const bearerPrefix = "Bearer "

// Endpoints reachable without a token. Everything else requires a valid
// access token.
var publicPaths = map[string]struct{}{
	"/v1/auth/register":               {},
	"/v1/auth/login":                  {},
	"/v1/auth/refresh":                {},
	"/v1/auth/password-reset":         {},
	"/v1/auth/password-reset/confirm": {},
}

// Middleware resolves the Bearer token on every protected operation and puts
// the authenticated user's ID into the request context.
func Middleware(api huma.API, tokens *Tokens) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if _, public := publicPaths[ctx.URL().Path]; public {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := tokens.VerifyAccess(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next(huma.WithContext(ctx, WithUserID(ctx.Context(), userID)))
	}
}
