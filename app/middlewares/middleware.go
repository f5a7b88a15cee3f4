package middlewares

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/mehdiben7/tiwashop/app/helpers"
	"github.com/mehdiben7/tiwashop/app/repositories"
	"github.com/mehdiben7/tiwashop/app/utils/sessions"
)

func RequestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}

// SessionUserMiddleware resolves the session's user ID into a user record
// and stores both in the request context. Anonymous requests pass through.
func SessionUserMiddleware(sessionStore sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("SessionUserMiddleware: session user %s not found: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
