// file: internals/features/projects/project/controller/project_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stepwise_backend/internals/constants"
	"stepwise_backend/internals/features/projects/project/dto"
	projectmodel "stepwise_backend/internals/features/projects/project/model"
	"stepwise_backend/internals/features/projects/project/service"
	helper "stepwise_backend/internals/helpers"
	helperAuth "stepwise_backend/internals/helpers/auth"
	helperMailer "stepwise_backend/internals/helpers/mailer"
)

type ProjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.ProjectService
}

func NewProjectController(db *gorm.DB, v *validator.Validate, mail helperMailer.Sender) *ProjectController {
	if v == nil {
		v = validator.New()
	}
	return &ProjectController{
		DB:        db,
		Validator: v,
		Service:   service.NewProjectService(db, mail),
	}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

/* ============================================
   LIST
   GET /api/projects?work_id=&student_id=
   Students always see only their own.
============================================ */

func (ctl *ProjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	uid, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
	}
	role, _ := helperAuth.GetRole(c)

	q := ctl.DB.Model(&projectmodel.ProjectModel{})
	switch role {
	case constants.RoleStudent:
		q = q.Where("project_student_id = ?", uid)
	case constants.RoleTeacher:
		q = q.Joins("JOIN academic_works aw ON aw.academic_work_id = projects.project_academic_work_id").
			Where("aw.academic_work_teacher_id = ?", uid)
	default:
		if s := c.Query("student_id"); s != "" {
			sid, err := uuid.Parse(s)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
			}
			q = q.Where("project_student_id = ?", sid)
		}
	}
	if w := c.Query("work_id"); w != "" {
		wid, err := uuid.Parse(w)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid work_id")
		}
		q = q.Where("project_academic_work_id = ?", wid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count projects")
	}

	var rows []projectmodel.ProjectModel
	if err := q.Order("project_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list projects")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DETAIL
   GET /api/projects/:id
============================================ */

func (ctl *ProjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid project id")
	}

	var project projectmodel.ProjectModel
	if err := ctl.DB.First(&project, "project_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch project")
	}

	uid, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
	}
	role, _ := helperAuth.GetRole(c)

	switch role {
	case constants.RoleAdmin:
	case constants.RoleStudent:
		if project.ProjectStudentID != uid {
			return helper.JsonError(c, fiber.StatusForbidden, "Project belongs to another student")
		}
	case constants.RoleTeacher:
		var supervised int64
		if err := ctl.DB.Table("academic_works").
			Where("academic_work_id = ? AND academic_work_teacher_id = ?", project.ProjectAcademicWorkID, uid).
			Count(&supervised).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check supervision")
		}
		if supervised == 0 {
			return helper.JsonError(c, fiber.StatusForbidden, "Not the supervising teacher of this project")
		}
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&project))
}

/* ============================================
   PATCH (student owner: title/description)
   PATCH /api/projects/:id
============================================ */

func (ctl *ProjectController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid project id")
	}

	uid, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
	}

	var p dto.ProjectUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	project, err := ctl.Service.UpdateByStudent(uid, id, p.ProjectTitle, p.ProjectDescription)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Project updated", dto.FromModel(project))
}

/* ============================================
   APPROVE FOR DEFENSE (supervising teacher)
   POST /api/projects/:id/approve
============================================ */

func (ctl *ProjectController) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid project id")
	}

	uid, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
	}

	project, err := ctl.Service.ApproveForDefense(c.UserContext(), uid, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Project approved for defense", dto.FromModel(project))
}
