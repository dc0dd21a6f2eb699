// file: internals/features/academics/academic_works/route/academic_work_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"stepwise_backend/internals/constants"
	"stepwise_backend/internals/features/academics/academic_works/controller"
	authMw "stepwise_backend/internals/middlewares/auth"
)

func AcademicWorkRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAcademicWorkController(db, v)

	g := api.Group("/academic-works")

	read := g.Group("", authMw.OnlyRolesSlice("viewing academic works", constants.TeacherAndAbove))
	read.Get("/", ctl.List)
	read.Get("/:id", ctl.GetByID)

	admin := g.Group("", authMw.OnlyRolesSlice("managing academic works", constants.AdminOnly))
	admin.Post("/", ctl.Create)
}
