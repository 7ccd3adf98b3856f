package user

import (
	"net/http"

	"food-service/internal/shared/httpx"
)

// Authenticate gates a route on a point lookup of the Authorization header
// against stored access tokens. No expiry, no refresh, no scopes.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := h.svc.Authenticate(httpx.BearerToken(r))
		if err != nil {
			httpx.WriteJSON(w, map[string]any{
				"message": "Access token is missing or wrong",
				"error":   err.Error(),
			}, http.StatusForbidden)
			return
		}
		if u == nil {
			httpx.WriteJSON(w, map[string]any{
				"loggedOut": true,
				"message":   "Please try logging in again!",
			}, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, httpx.WithUser(r, u))
	})
}
