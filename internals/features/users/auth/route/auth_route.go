// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "stepwise_backend/internals/features/users/auth/controller"
	"stepwise_backend/internals/middlewares"
)

// AuthRoutes are mounted without the auth middleware.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db, nil)

	api.Post("/auth/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/auth/logout", ctl.Logout)
}
