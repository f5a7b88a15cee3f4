package middlewares

import (
	"log"
	"net/http"

	"github.com/mehdiben7/tiwashop/app/helpers"
	"github.com/mehdiben7/tiwashop/app/models"
	"github.com/unrolled/render"
)

// AdminAuthMiddleware gates the admin API behind a logged-in admin session.
func AdminAuthMiddleware(r *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user, ok := req.Context().Value(helpers.ContextKeyUser).(*models.User)
			if !ok || user == nil {
				_ = r.JSON(w, http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
				return
			}

			if user.Role != "admin" {
				log.Printf("AdminAuthMiddleware: user %s (%s) attempted to access the admin API without the admin role", user.ID, user.Email)
				_ = r.JSON(w, http.StatusForbidden, map[string]string{
					"error": "admin access required",
				})
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}
