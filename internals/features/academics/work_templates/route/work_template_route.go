// file: internals/features/academics/work_templates/route/work_template_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"stepwise_backend/internals/constants"
	"stepwise_backend/internals/features/academics/work_templates/controller"
	authMw "stepwise_backend/internals/middlewares/auth"
)

func WorkTemplateRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewWorkTemplateController(db, v)

	g := api.Group("/work-templates")

	read := g.Group("", authMw.OnlyRolesSlice("viewing work templates", constants.TeacherAndAbove))
	read.Get("/", ctl.List)
	read.Get("/:id", ctl.GetByID)

	admin := g.Group("", authMw.OnlyRolesSlice("managing work templates", constants.AdminOnly))
	admin.Post("/", ctl.Create)
	admin.Delete("/:id", ctl.Delete)
}
