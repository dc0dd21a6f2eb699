// file: internals/features/projects/project/service/project_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	itemmodel "stepwise_backend/internals/features/projects/note_items/model"
	projectmodel "stepwise_backend/internals/features/projects/project/model"
	helperMailer "stepwise_backend/internals/helpers/mailer"
)

type ProjectService struct {
	DB   *gorm.DB
	Mail helperMailer.Sender
}

func NewProjectService(db *gorm.DB, mail helperMailer.Sender) *ProjectService {
	return &ProjectService{DB: db, Mail: mail}
}

type projectMeta struct {
	RequiredChapters int
	TeacherID        uuid.UUID
	WorkTitle        string
}

func (s *ProjectService) loadMeta(tx *gorm.DB, workID uuid.UUID) (*projectMeta, error) {
	var meta projectMeta
	if err := tx.Table("academic_works aw").
		Select("wt.work_template_count_of_chapters AS required_chapters, aw.academic_work_teacher_id AS teacher_id, aw.academic_work_title AS work_title").
		Joins("JOIN work_templates wt ON wt.work_template_id = aw.academic_work_template_id").
		Where("aw.academic_work_id = ?", workID).
		Take(&meta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Academic work not found")
		}
		return nil, err
	}
	return &meta, nil
}

// ApproveForDefense latches the project once every required chapter is
// approved. The count must match exactly; anything else is a data fault
// worth surfacing, not silently accepting.
func (s *ProjectService) ApproveForDefense(ctx context.Context, teacherID, projectID uuid.UUID) (*projectmodel.ProjectModel, error) {
	var out *projectmodel.ProjectModel
	var mailTo, mailWork string

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var project projectmodel.ProjectModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&project, "project_id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Project not found")
			}
			return err
		}
		if project.ProjectIsApprovedForDefense {
			return fiber.NewError(fiber.StatusConflict, "Project is already approved for defense")
		}

		meta, err := s.loadMeta(tx, project.ProjectAcademicWorkID)
		if err != nil {
			return err
		}
		if meta.TeacherID != teacherID {
			return fiber.NewError(fiber.StatusForbidden, "Not the supervising teacher of this project")
		}

		var approved int64
		if err := tx.Model(&itemmodel.NoteItemModel{}).
			Where("note_item_project_id = ? AND note_item_status = ?", projectID, itemmodel.StatusApproved).
			Count(&approved).Error; err != nil {
			return err
		}
		if int(approved) != meta.RequiredChapters {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Project has %d approved chapters, %d required", approved, meta.RequiredChapters))
		}

		now := time.Now().UTC()
		project.ProjectIsApprovedForDefense = true
		project.ProjectApprovedForDefenseAt = &now
		if err := tx.Save(&project).Error; err != nil {
			return err
		}

		var email string
		if err := tx.Table("users").
			Select("user_email").
			Where("user_id = ?", project.ProjectStudentID).
			Take(&email).Error; err == nil {
			mailTo = email
			mailWork = meta.WorkTitle
		}

		out = &project
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Notification is best effort and must not delay the response.
	if s.Mail != nil && mailTo != "" {
		helperMailer.SendAsync(s.Mail, mailTo,
			"Your project is approved for defense",
			fmt.Sprintf("All chapters of %q are approved. Your project is now eligible for defense.", mailWork))
	}
	return out, nil
}

// UpdateByStudent lets the owning student change title and description.
func (s *ProjectService) UpdateByStudent(studentID, projectID uuid.UUID, title, description *string) (*projectmodel.ProjectModel, error) {
	var project projectmodel.ProjectModel
	if err := s.DB.First(&project, "project_id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Project not found")
		}
		return nil, err
	}
	if project.ProjectStudentID != studentID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Project belongs to another student")
	}

	if title != nil {
		project.ProjectTitle = title
	}
	if description != nil {
		project.ProjectDescription = description
	}
	if err := s.DB.Save(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}
