package middleware

import (
	"net/http"

	"github.com/t7spotter/restaurantAPI/internal/authz"
)

// Require возвращает middleware, пропускающее запрос только если права
// принципала разрешают указанную операцию. Должно стоять после Middleware
// аутентификации.
func Require(action authz.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipalFromContext(r.Context())
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if err := authz.Authorize(principal.Roles(), action); err != nil {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
