// file: internals/features/academics/study_groups/controller/study_group_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stepwise_backend/internals/constants"
	"stepwise_backend/internals/features/academics/study_groups/dto"
	sgmodel "stepwise_backend/internals/features/academics/study_groups/model"
	usermodel "stepwise_backend/internals/features/users/user/model"
	helper "stepwise_backend/internals/helpers"
)

type StudyGroupController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudyGroupController(db *gorm.DB, v *validator.Validate) *StudyGroupController {
	if v == nil {
		v = validator.New()
	}
	return &StudyGroupController{DB: db, Validator: v}
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
   CREATE
   POST /api/study-groups
============================================ */

func (ctl *StudyGroupController) Create(c *fiber.Ctx) error {
	var p dto.StudyGroupCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.Create(ent).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Study group name already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create study group")
	}
	return helper.JsonCreated(c, "Study group created", dto.FromModel(ent))
}

/* ============================================
   LIST
   GET /api/study-groups?page=&per_page=&year=
============================================ */

func (ctl *StudyGroupController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&sgmodel.StudyGroupModel{})
	if y := c.QueryInt("year", 0); y > 0 {
		q = q.Where("study_group_year = ?", y)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count study groups")
	}

	var rows []sgmodel.StudyGroupModel
	if err := q.Order("study_group_year DESC, study_group_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list study groups")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DETAIL
   GET /api/study-groups/:id
============================================ */

func (ctl *StudyGroupController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid study group id")
	}

	var ent sgmodel.StudyGroupModel
	if err := ctl.DB.First(&ent, "study_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Study group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch study group")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&ent))
}

/* ============================================
   PATCH
   PATCH /api/study-groups/:id
============================================ */

func (ctl *StudyGroupController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid study group id")
	}

	var p dto.StudyGroupUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	var ent sgmodel.StudyGroupModel
	if err := ctl.DB.First(&ent, "study_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Study group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch study group")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update study group")
	}
	return helper.JsonUpdated(c, "Study group updated", dto.FromModel(&ent))
}

/* ============================================
   DELETE (soft)
   DELETE /api/study-groups/:id
============================================ */

func (ctl *StudyGroupController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid study group id")
	}

	res := ctl.DB.Delete(&sgmodel.StudyGroupModel{}, "study_group_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete study group")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Study group not found")
	}
	return helper.JsonDeleted(c, "Study group deleted", fiber.Map{"study_group_id": id})
}

/* ============================================
   ROSTER
   POST   /api/study-groups/:id/members
   GET    /api/study-groups/:id/members
   DELETE /api/study-groups/:id/members/:studentId
============================================ */

func (ctl *StudyGroupController) AddMember(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid study group id")
	}

	var p dto.StudyGroupAddMemberDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	var group sgmodel.StudyGroupModel
	if err := ctl.DB.First(&group, "study_group_id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Study group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch study group")
	}

	var student usermodel.UserModel
	if err := ctl.DB.First(&student, "user_id = ?", p.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if student.UserRole != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "User is not a student")
	}

	member := sgmodel.StudyGroupMemberModel{
		StudyGroupMemberGroupID:   groupID,
		StudyGroupMemberStudentID: p.StudentID,
	}
	if err := ctl.DB.Create(&member).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Student already in this study group")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add member")
	}
	return helper.JsonCreated(c, "Member added", member)
}

func (ctl *StudyGroupController) ListMembers(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid study group id")
	}

	var members []usermodel.UserModel
	if err := ctl.DB.
		Joins("JOIN study_group_members sgm ON sgm.study_group_member_student_id = users.user_id").
		Where("sgm.study_group_member_group_id = ?", groupID).
		Order("users.user_full_name ASC, users.user_name ASC").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list members")
	}

	type memberDTO struct {
		UserID       uuid.UUID `json:"user_id"`
		UserName     string    `json:"user_name"`
		UserEmail    string    `json:"user_email"`
		UserFullName *string   `json:"user_full_name,omitempty"`
	}
	out := make([]memberDTO, 0, len(members))
	for i := range members {
		out = append(out, memberDTO{
			UserID:       members[i].UserID,
			UserName:     members[i].UserName,
			UserEmail:    members[i].UserEmail,
			UserFullName: members[i].UserFullName,
		})
	}
	return helper.JsonOK(c, "OK", out)
}

func (ctl *StudyGroupController) RemoveMember(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid study group id")
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	res := ctl.DB.Delete(&sgmodel.StudyGroupMemberModel{},
		"study_group_member_group_id = ? AND study_group_member_student_id = ?", groupID, studentID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found in this study group")
	}
	return helper.JsonDeleted(c, "Member removed", fiber.Map{
		"study_group_id": groupID,
		"student_id":     studentID,
	})
}
