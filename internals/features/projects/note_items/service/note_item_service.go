// file: internals/features/projects/note_items/service/note_item_service.go
package service

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stepwise_backend/internals/configs"
	"stepwise_backend/internals/constants"
	itemmodel "stepwise_backend/internals/features/projects/note_items/model"
	projectmodel "stepwise_backend/internals/features/projects/project/model"
	helperOSS "stepwise_backend/internals/helpers/oss"
)

// BlobStore is the slice of the object store the workflow needs.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type NoteItemService struct {
	DB   *gorm.DB
	Blob BlobStore
}

func NewNoteItemService(db *gorm.DB, blob BlobStore) *NoteItemService {
	return &NoteItemService{DB: db, Blob: blob}
}

// projectScope is what every workflow operation loads up front: the project
// row plus the template's required chapter count and supervising teacher.
type projectScope struct {
	Project          projectmodel.ProjectModel
	RequiredChapters int
	TeacherID        uuid.UUID
}

// loadProjectScope fetches the project FOR UPDATE; workflow writes
// serialize on this row lock.
func loadProjectScope(tx *gorm.DB, projectID uuid.UUID) (*projectScope, error) {
	return loadScope(tx, projectID, true)
}

func loadScope(db *gorm.DB, projectID uuid.UUID, lock bool) (*projectScope, error) {
	projectQ := db
	if lock {
		projectQ = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var sc projectScope
	if err := projectQ.First(&sc.Project, "project_id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Project not found")
		}
		return nil, err
	}

	var meta struct {
		RequiredChapters int
		TeacherID        uuid.UUID
	}
	if err := db.Table("academic_works aw").
		Select("wt.work_template_count_of_chapters AS required_chapters, aw.academic_work_teacher_id AS teacher_id").
		Joins("JOIN work_templates wt ON wt.work_template_id = aw.academic_work_template_id").
		Where("aw.academic_work_id = ?", sc.Project.ProjectAcademicWorkID).
		Take(&meta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Academic work not found")
		}
		return nil, err
	}
	sc.RequiredChapters = meta.RequiredChapters
	sc.TeacherID = meta.TeacherID
	return &sc, nil
}

func loadItemsOrdered(tx *gorm.DB, projectID uuid.UUID) ([]itemmodel.NoteItemModel, error) {
	var items []itemmodel.NoteItemModel
	err := tx.
		Where("note_item_project_id = ?", projectID).
		Order("note_item_order_number ASC").
		Find(&items).Error
	return items, err
}

/* ============================================
   DRAFT
============================================ */

// DraftItem starts the next chapter or replaces the latest open one, then
// uploads the document. The upload runs inside the transaction so a storage
// failure rolls the row changes back.
func (s *NoteItemService) DraftItem(ctx context.Context, studentID, projectID uuid.UUID, fileName, contentType string, file io.Reader) (*itemmodel.NoteItemModel, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Missing file name")
	}
	fileName = helperOSS.SafeFileName(fileName)
	if !configs.IsAllowedUploadMime(contentType) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Unsupported document type")
	}

	var out *itemmodel.NoteItemModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		sc, err := loadProjectScope(tx, projectID)
		if err != nil {
			return err
		}
		if sc.Project.ProjectStudentID != studentID {
			return fiber.NewError(fiber.StatusForbidden, "Project belongs to another student")
		}
		if sc.Project.ProjectIsApprovedForDefense {
			return fiber.NewError(fiber.StatusConflict, "Project is already approved for defense")
		}

		items, err := loadItemsOrdered(tx, projectID)
		if err != nil {
			return err
		}

		decision, err := DecideDraft(items, sc.RequiredChapters)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		var item *itemmodel.NoteItemModel
		var hist itemmodel.ItemHistoryModel

		if decision.Redraft != nil {
			item = decision.Redraft
			oldKey := helperOSS.NoteItemKey(studentID, projectID, item.NoteItemID, item.NoteItemFileName)
			hist, err = TransitionRedraft(item, studentID, fileName, now)
			if err != nil {
				return err
			}
			if err := tx.Save(item).Error; err != nil {
				return err
			}
			// Replace the stored document; a missing old object is fine.
			if err := s.Blob.Delete(ctx, oldKey); err != nil && !helperOSS.IsNotFound(err) {
				log.Printf("[BLOB] delete failed key=%s err=%v", oldKey, err)
			}
		} else {
			item = &itemmodel.NoteItemModel{
				NoteItemProjectID:   projectID,
				NoteItemOrderNumber: decision.OrderNumber,
				NoteItemStatus:      itemmodel.StatusDraft,
				NoteItemFileName:    fileName,
				NoteItemDraftedAt:   now,
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
			hist = FirstDraftHistory(item, studentID, now)
		}

		if err := tx.Create(&hist).Error; err != nil {
			return err
		}

		key := helperOSS.NoteItemKey(studentID, projectID, item.NoteItemID, fileName)
		if err := s.Blob.Put(ctx, key, file, contentType); err != nil {
			log.Printf("[BLOB] upload failed key=%s err=%v", key, err)
			return fiber.NewError(fiber.StatusBadGateway, "Failed to store document")
		}

		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* ============================================
   SUBMIT
============================================ */

func (s *NoteItemService) SubmitItem(ctx context.Context, studentID, itemID uuid.UUID) (*itemmodel.NoteItemModel, error) {
	var out *itemmodel.NoteItemModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, sc, err := s.lockItem(tx, itemID)
		if err != nil {
			return err
		}
		if sc.Project.ProjectStudentID != studentID {
			return fiber.NewError(fiber.StatusForbidden, "Item belongs to another student")
		}

		hist, err := TransitionSubmit(item, studentID, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		if err := tx.Create(&hist).Error; err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* ============================================
   APPROVE / REJECT
============================================ */

func (s *NoteItemService) ApproveItem(ctx context.Context, teacherID uuid.UUID, itemID uuid.UUID, comment *string) (*itemmodel.NoteItemModel, error) {
	var out *itemmodel.NoteItemModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, sc, err := s.lockItem(tx, itemID)
		if err != nil {
			return err
		}
		if sc.TeacherID != teacherID {
			return fiber.NewError(fiber.StatusForbidden, "Not the supervising teacher of this project")
		}

		hist, err := TransitionApprove(item, teacherID, comment, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		if err := tx.Create(&hist).Error; err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *NoteItemService) RejectItem(ctx context.Context, teacherID uuid.UUID, itemID uuid.UUID, comment string) (*itemmodel.NoteItemModel, error) {
	var out *itemmodel.NoteItemModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, sc, err := s.lockItem(tx, itemID)
		if err != nil {
			return err
		}
		if sc.TeacherID != teacherID {
			return fiber.NewError(fiber.StatusForbidden, "Not the supervising teacher of this project")
		}

		hist, err := TransitionReject(item, teacherID, comment, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		if err := tx.Create(&hist).Error; err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* ============================================
   READS
============================================ */

// GetItemFile streams the item's current document. Students may read their
// own items; the supervising teacher may read any item of their projects.
func (s *NoteItemService) GetItemFile(ctx context.Context, actorID uuid.UUID, actorRole string, itemID uuid.UUID) (io.ReadCloser, string, error) {
	var item itemmodel.NoteItemModel
	if err := s.DB.First(&item, "note_item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fiber.NewError(fiber.StatusNotFound, "Item not found")
		}
		return nil, "", err
	}

	sc, err := loadScopeUnlocked(s.DB, item.NoteItemProjectID)
	if err != nil {
		return nil, "", err
	}
	if !canSeeProject(actorID, actorRole, sc) {
		return nil, "", fiber.NewError(fiber.StatusForbidden, "No access to this item")
	}

	key := helperOSS.NoteItemKey(sc.Project.ProjectStudentID, item.NoteItemProjectID, item.NoteItemID, item.NoteItemFileName)
	rc, err := s.Blob.Get(ctx, key)
	if err != nil {
		if helperOSS.IsNotFound(err) {
			return nil, "", fiber.NewError(fiber.StatusNotFound, "Document not found in storage")
		}
		return nil, "", fiber.NewError(fiber.StatusBadGateway, "Failed to fetch document")
	}
	return rc, item.NoteItemFileName, nil
}

// ListItems returns the project's items in chapter order, with the access
// rules of GetItemFile.
func (s *NoteItemService) ListItems(actorID uuid.UUID, actorRole string, projectID uuid.UUID) ([]itemmodel.NoteItemModel, error) {
	sc, err := loadScopeUnlocked(s.DB, projectID)
	if err != nil {
		return nil, err
	}
	if !canSeeProject(actorID, actorRole, sc) {
		return nil, fiber.NewError(fiber.StatusForbidden, "No access to this project")
	}
	return loadItemsOrdered(s.DB, projectID)
}

// ItemHistory returns the item's audit trail oldest first.
func (s *NoteItemService) ItemHistory(actorID uuid.UUID, actorRole string, itemID uuid.UUID) ([]itemmodel.ItemHistoryModel, error) {
	var item itemmodel.NoteItemModel
	if err := s.DB.First(&item, "note_item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Item not found")
		}
		return nil, err
	}

	sc, err := loadScopeUnlocked(s.DB, item.NoteItemProjectID)
	if err != nil {
		return nil, err
	}
	if !canSeeProject(actorID, actorRole, sc) {
		return nil, fiber.NewError(fiber.StatusForbidden, "No access to this item")
	}

	var rows []itemmodel.ItemHistoryModel
	err = s.DB.
		Where("item_history_item_id = ?", itemID).
		Order("item_history_changed_at ASC, item_history_id ASC").
		Find(&rows).Error
	return rows, err
}

/* ============================================
   internals
============================================ */

// lockItem acquires the project row lock before the item row lock, the
// same order DraftItem uses, so concurrent workflow writes on one project
// cannot deadlock each other.
func (s *NoteItemService) lockItem(tx *gorm.DB, itemID uuid.UUID) (*itemmodel.NoteItemModel, *projectScope, error) {
	var item itemmodel.NoteItemModel
	if err := tx.First(&item, "note_item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Item not found")
		}
		return nil, nil, err
	}

	sc, err := loadProjectScope(tx, item.NoteItemProjectID)
	if err != nil {
		return nil, nil, err
	}

	// Re-read under the lock; the first read was only to find the project.
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, "note_item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Item not found")
		}
		return nil, nil, err
	}
	return &item, sc, nil
}

func loadScopeUnlocked(db *gorm.DB, projectID uuid.UUID) (*projectScope, error) {
	return loadScope(db, projectID, false)
}

func canSeeProject(actorID uuid.UUID, actorRole string, sc *projectScope) bool {
	switch actorRole {
	case constants.RoleAdmin:
		return true
	case constants.RoleTeacher:
		return sc.TeacherID == actorID
	default:
		return sc.Project.ProjectStudentID == actorID
	}
}
