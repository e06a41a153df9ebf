package middleware

import (
	"net/http"

	"github.com/hirepath/careers-backend-go/internal/domain/user"
	"github.com/hirepath/careers-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	role, ok := r.Context().Value("user_role").(user.Role)
	return role, ok
}

// RequireBackOffice restricts a route to admin and sub_admin roles.
func RequireBackOffice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || !user.IsBackOffice(role) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireEmployee restricts a route to employees; back-office staff pass
// too, applicants do not.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || !user.IsEmployee(role) {
			response.Forbidden(w, "Employee access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
