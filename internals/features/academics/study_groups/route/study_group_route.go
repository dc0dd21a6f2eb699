// file: internals/features/academics/study_groups/route/study_group_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"stepwise_backend/internals/constants"
	"stepwise_backend/internals/features/academics/study_groups/controller"
	authMw "stepwise_backend/internals/middlewares/auth"
)

// StudyGroupRoutes mounts group and roster management. Admin manages the
// rosters; teachers may read them.
func StudyGroupRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewStudyGroupController(db, v)

	g := api.Group("/study-groups")

	read := g.Group("", authMw.OnlyRolesSlice("viewing study groups", constants.TeacherAndAbove))
	read.Get("/", ctl.List)
	read.Get("/:id", ctl.GetByID)
	read.Get("/:id/members", ctl.ListMembers)

	admin := g.Group("", authMw.OnlyRolesSlice("managing study groups", constants.AdminOnly))
	admin.Post("/", ctl.Create)
	admin.Patch("/:id", ctl.Patch)
	admin.Delete("/:id", ctl.Delete)
	admin.Post("/:id/members", ctl.AddMember)
	admin.Delete("/:id/members/:studentId", ctl.RemoveMember)
}
