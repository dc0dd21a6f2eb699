// file: internals/features/academics/academic_works/controller/academic_work_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stepwise_backend/internals/constants"
	"stepwise_backend/internals/features/academics/academic_works/dto"
	awmodel "stepwise_backend/internals/features/academics/academic_works/model"
	"stepwise_backend/internals/features/academics/academic_works/service"
	helper "stepwise_backend/internals/helpers"
	helperAuth "stepwise_backend/internals/helpers/auth"
)

type AcademicWorkController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.AcademicWorkService
}

func NewAcademicWorkController(db *gorm.DB, v *validator.Validate) *AcademicWorkController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicWorkController{
		DB:        db,
		Validator: v,
		Service:   service.NewAcademicWorkService(db),
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
   CREATE (admin only; fans out projects)
   POST /api/academic-works
============================================ */

func (ctl *AcademicWorkController) Create(c *fiber.Ctx) error {
	var p dto.AcademicWorkCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	work := p.ToModel()
	created, err := ctl.Service.CreateWithProjects(work)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create academic work")
	}

	resp := dto.FromModel(work)
	resp.ProjectsCreated = created
	return helper.JsonCreated(c, "Academic work created", resp)
}

/* ============================================
   LIST
   GET /api/academic-works?teacher_id=&group_id=
   Teachers see their own works unless admin.
============================================ */

func (ctl *AcademicWorkController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&awmodel.AcademicWorkModel{})

	role, _ := helperAuth.GetRole(c)
	if role == constants.RoleTeacher {
		uid, err := helperAuth.GetUserID(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
		}
		q = q.Where("academic_work_teacher_id = ?", uid)
	} else {
		if t := c.Query("teacher_id"); t != "" {
			tid, err := uuid.Parse(t)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id")
			}
			q = q.Where("academic_work_teacher_id = ?", tid)
		}
	}
	if g := c.Query("group_id"); g != "" {
		gid, err := uuid.Parse(g)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group_id")
		}
		q = q.Where("academic_work_group_id = ?", gid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count academic works")
	}

	var rows []awmodel.AcademicWorkModel
	if err := q.Order("academic_work_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list academic works")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DETAIL
   GET /api/academic-works/:id
============================================ */

func (ctl *AcademicWorkController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid academic work id")
	}

	var ent awmodel.AcademicWorkModel
	if err := ctl.DB.First(&ent, "academic_work_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Academic work not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch academic work")
	}

	role, _ := helperAuth.GetRole(c)
	if role == constants.RoleTeacher {
		uid, err := helperAuth.GetUserID(c)
		if err != nil || ent.AcademicWorkTeacherID != uid {
			return helper.JsonError(c, fiber.StatusForbidden, "Not the supervising teacher of this work")
		}
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&ent))
}
