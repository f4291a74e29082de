package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "communitysite/internal/delivery/http/helpers"
	"communitysite/internal/domain"
)

type adminKey struct{}

// WithAdminID stores the id of the signed-in admin on ctx.
func WithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminKey{}, adminID)
}

// AdminIDFromContext returns the admin id RequireAuth attached to the request.
func AdminIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminKey{}).(string)
	return id, ok && id != ""
}

// bearerToken extracts the token from the Authorization header. When the header is
// unusable it returns the message sent back with the 401.
func bearerToken(r *http.Request) (token, problem string) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", "missing authorization header"
	}
	scheme, rest, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", "invalid authorization format"
	}
	token = strings.TrimSpace(rest)
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}

// RequireAuth guards the admin routes: events, gallery, teachers, contacts,
// admissions, users and drafts. Requests without a valid session token get 401
// and never reach next; accepted ones carry the admin id in their context.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, problem := bearerToken(r)
			if problem != "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, problem)
				return
			}
			adminID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "admin token rejected", "method", r.Method, "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(WithAdminID(r.Context(), adminID)))
		}
	}
}
