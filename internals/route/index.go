// file: internals/route/index.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicWorkRoute "stepwise_backend/internals/features/academics/academic_works/route"
	studyGroupRoute "stepwise_backend/internals/features/academics/study_groups/route"
	workTemplateRoute "stepwise_backend/internals/features/academics/work_templates/route"
	noteItemRoute "stepwise_backend/internals/features/projects/note_items/route"
	noteItemService "stepwise_backend/internals/features/projects/note_items/service"
	projectRoute "stepwise_backend/internals/features/projects/project/route"
	authRoute "stepwise_backend/internals/features/users/auth/route"
	userRoute "stepwise_backend/internals/features/users/user/route"
	helperMailer "stepwise_backend/internals/helpers/mailer"
	authMw "stepwise_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the whole API under /api. Only login and logout sit
// outside the auth middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, blob noteItemService.BlobStore, mail helperMailer.Sender) {
	BaseRoutes(app)

	v := validator.New()

	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)

	protected := api.Group("", authMw.AuthMiddleware())
	userRoute.UserRoutes(protected, db)
	studyGroupRoute.StudyGroupRoutes(protected, db, v)
	workTemplateRoute.WorkTemplateRoutes(protected, db, v)
	academicWorkRoute.AcademicWorkRoutes(protected, db, v)
	projectRoute.ProjectRoutes(protected, db, v, mail)
	noteItemRoute.NoteItemRoutes(protected, db, v, blob)
}
