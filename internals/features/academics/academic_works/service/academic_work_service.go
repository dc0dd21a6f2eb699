// file: internals/features/academics/academic_works/service/academic_work_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stepwise_backend/internals/constants"
	awmodel "stepwise_backend/internals/features/academics/academic_works/model"
	sgmodel "stepwise_backend/internals/features/academics/study_groups/model"
	wtmodel "stepwise_backend/internals/features/academics/work_templates/model"
	projectmodel "stepwise_backend/internals/features/projects/project/model"
	usermodel "stepwise_backend/internals/features/users/user/model"
)

type AcademicWorkService struct {
	DB *gorm.DB
}

func NewAcademicWorkService(db *gorm.DB) *AcademicWorkService {
	return &AcademicWorkService{DB: db}
}

// CreateWithProjects persists the academic work and one project per student
// in its group, all in one transaction. An empty roster is rejected: a work
// nobody can submit to is a setup mistake, not a valid state.
func (s *AcademicWorkService) CreateWithProjects(work *awmodel.AcademicWorkModel) (int, error) {
	if !work.AcademicWorkType.Valid() {
		return 0, fiber.NewError(fiber.StatusUnprocessableEntity, "Unknown work type")
	}

	var created int
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var tpl wtmodel.WorkTemplateModel
		if err := tx.First(&tpl, "work_template_id = ?", work.AcademicWorkTemplateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Work template not found")
			}
			return err
		}
		if tpl.WorkTemplateCountOfChapters < 1 {
			return fiber.NewError(fiber.StatusConflict, "Work template has no chapters")
		}

		var group sgmodel.StudyGroupModel
		if err := tx.First(&group, "study_group_id = ?", work.AcademicWorkGroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Study group not found")
			}
			return err
		}

		var teacher usermodel.UserModel
		if err := tx.First(&teacher, "user_id = ?", work.AcademicWorkTeacherID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
			}
			return err
		}
		if teacher.UserRole != constants.RoleTeacher && teacher.UserRole != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Assigned supervisor is not a teacher")
		}

		var studentIDs []uuid.UUID
		if err := tx.Model(&sgmodel.StudyGroupMemberModel{}).
			Where("study_group_member_group_id = ?", group.StudyGroupID).
			Pluck("study_group_member_student_id", &studentIDs).Error; err != nil {
			return err
		}
		if len(studentIDs) == 0 {
			return fiber.NewError(fiber.StatusConflict, "Study group has no members")
		}

		if err := tx.Create(work).Error; err != nil {
			return err
		}

		projects := make([]projectmodel.ProjectModel, 0, len(studentIDs))
		for _, sid := range studentIDs {
			projects = append(projects, projectmodel.ProjectModel{
				ProjectAcademicWorkID: work.AcademicWorkID,
				ProjectStudentID:      sid,
			})
		}
		if err := tx.Create(&projects).Error; err != nil {
			return err
		}
		created = len(projects)
		return nil
	})
	return created, err
}
