// file: internals/features/projects/note_items/route/note_item_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"stepwise_backend/internals/constants"
	"stepwise_backend/internals/features/projects/note_items/controller"
	"stepwise_backend/internals/features/projects/note_items/service"
	"stepwise_backend/internals/middlewares"
	authMw "stepwise_backend/internals/middlewares/auth"
)

func NoteItemRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, blob service.BlobStore) {
	ctl := controller.NewNoteItemController(db, v, blob)

	g := api.Group("/note-items")

	// Reads are open to every signed-in role; the service narrows access.
	g.Get("/", ctl.ListByProject)
	g.Get("/file", ctl.GetFile)
	g.Get("/:id/history", ctl.History)

	student := g.Group("", authMw.OnlyRolesSlice("working on a chapter", constants.StudentOnly))
	student.Post("/draft", middlewares.UploadRateLimiter(), ctl.Draft)
	student.Post("/submit/:id", ctl.Submit)

	teacher := g.Group("", authMw.OnlyRolesSlice("reviewing a chapter", constants.TeacherAndAbove))
	teacher.Post("/approve/:id", ctl.Approve)
	teacher.Post("/reject/:id", ctl.Reject)
}
