// file: internals/features/projects/project/route/project_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"stepwise_backend/internals/constants"
	"stepwise_backend/internals/features/projects/project/controller"
	helperMailer "stepwise_backend/internals/helpers/mailer"
	authMw "stepwise_backend/internals/middlewares/auth"
)

func ProjectRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, mail helperMailer.Sender) {
	ctl := controller.NewProjectController(db, v, mail)

	g := api.Group("/projects")

	// Every signed-in role may list; the controller narrows the scope.
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)

	g.Patch("/:id", authMw.OnlyRolesSlice("updating a project", constants.StudentOnly), ctl.Patch)
	g.Post("/:id/approve", authMw.OnlyRolesSlice("approving a project", constants.TeacherAndAbove), ctl.Approve)
}
