// file: internals/features/academics/work_templates/controller/work_template_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stepwise_backend/internals/features/academics/work_templates/dto"
	wtmodel "stepwise_backend/internals/features/academics/work_templates/model"
	helper "stepwise_backend/internals/helpers"
)

type WorkTemplateController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewWorkTemplateController(db *gorm.DB, v *validator.Validate) *WorkTemplateController {
	if v == nil {
		v = validator.New()
	}
	return &WorkTemplateController{DB: db, Validator: v}
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
   CREATE (admin only)
   POST /api/work-templates
============================================ */

func (ctl *WorkTemplateController) Create(c *fiber.Ctx) error {
	var p dto.WorkTemplateCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	if !p.ChaptersContiguous() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Chapter order numbers must run 1..N without gaps")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(ent).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Work template name already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create work template")
	}
	return helper.JsonCreated(c, "Work template created", dto.FromModel(ent))
}

/* ============================================
   LIST
   GET /api/work-templates
============================================ */

func (ctl *WorkTemplateController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&wtmodel.WorkTemplateModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count work templates")
	}

	var rows []wtmodel.WorkTemplateModel
	if err := ctl.DB.
		Order("work_template_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list work templates")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DETAIL (with chapter outline)
   GET /api/work-templates/:id
============================================ */

func (ctl *WorkTemplateController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid work template id")
	}

	var ent wtmodel.WorkTemplateModel
	if err := ctl.DB.
		Preload("WorkTemplateChapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("template_chapter_order_number ASC")
		}).
		First(&ent, "work_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Work template not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch work template")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&ent))
}

/* ============================================
   DELETE (soft; blocked while referenced)
   DELETE /api/work-templates/:id
============================================ */

func (ctl *WorkTemplateController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid work template id")
	}

	var inUse int64
	if err := ctl.DB.Table("academic_works").
		Where("academic_work_template_id = ?", id).
		Count(&inUse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check template usage")
	}
	if inUse > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Work template is used by an academic work")
	}

	res := ctl.DB.Delete(&wtmodel.WorkTemplateModel{}, "work_template_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete work template")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Work template not found")
	}
	return helper.JsonDeleted(c, "Work template deleted", fiber.Map{"work_template_id": id})
}
