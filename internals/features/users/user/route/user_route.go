// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"stepwise_backend/internals/constants"
	userCtl "stepwise_backend/internals/features/users/user/controller"
	authMiddleware "stepwise_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db, nil)

	api.Get("/users/me", ctl.Me)

	admin := api.Group("/users",
		authMiddleware.OnlyRolesSlice("managing users", constants.AdminOnly),
	)
	admin.Post("/", ctl.Create)
	admin.Get("/", ctl.List)
	admin.Patch("/:id", ctl.Patch)
	admin.Delete("/:id", ctl.Delete)
}
