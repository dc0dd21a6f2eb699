// file: internals/features/projects/note_items/controller/note_item_controller.go
package controller

import (
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stepwise_backend/internals/features/projects/note_items/dto"
	"stepwise_backend/internals/features/projects/note_items/service"
	helper "stepwise_backend/internals/helpers"
	helperAuth "stepwise_backend/internals/helpers/auth"
)

type NoteItemController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.NoteItemService
}

func NewNoteItemController(db *gorm.DB, v *validator.Validate, blob service.BlobStore) *NoteItemController {
	if v == nil {
		v = validator.New()
	}
	return &NoteItemController{
		DB:        db,
		Validator: v,
		Service:   service.NewNoteItemService(db, blob),
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
   DRAFT (student)
   POST /api/note-items/draft
   multipart: project_id + file
============================================ */

func (ctl *NoteItemController) Draft(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
	}

	projectID, err := uuid.Parse(strings.TrimSpace(c.FormValue("project_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid project_id")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing file")
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fh.Filename))
	}

	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read file")
	}
	defer f.Close()

	item, err := ctl.Service.DraftItem(c.UserContext(), studentID, projectID, fh.Filename, contentType, f)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Chapter drafted", dto.FromModel(item))
}

/* ============================================
   SUBMIT (student owner)
   POST /api/note-items/submit/:id
============================================ */

func (ctl *NoteItemController) Submit(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
	}
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	item, err := ctl.Service.SubmitItem(c.UserContext(), studentID, itemID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Chapter submitted", dto.FromModel(item))
}

/* ============================================
   APPROVE / REJECT (supervising teacher)
   POST /api/note-items/approve/:id
   POST /api/note-items/reject/:id
============================================ */

func (ctl *NoteItemController) Approve(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
	}
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	// Comment is optional on approval.
	var p dto.ItemReviewDTO
	_ = c.BodyParser(&p)
	var comment *string
	if v := strings.TrimSpace(p.Comment); v != "" {
		comment = &v
	}

	item, err := ctl.Service.ApproveItem(c.UserContext(), teacherID, itemID, comment)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Chapter approved", dto.FromModel(item))
}

func (ctl *NoteItemController) Reject(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
	}
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	var p dto.ItemReviewDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	item, err := ctl.Service.RejectItem(c.UserContext(), teacherID, itemID, p.Comment)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Chapter rejected", dto.FromModel(item))
}

/* ============================================
   READS
   GET /api/note-items?project_id=
   GET /api/note-items/file?item_id=
   GET /api/note-items/:id/history
============================================ */

func (ctl *NoteItemController) ListByProject(c *fiber.Ctx) error {
	actorID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
	}
	role, _ := helperAuth.GetRole(c)

	projectID, err := uuid.Parse(strings.TrimSpace(c.Query("project_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid project_id")
	}

	items, err := ctl.Service.ListItems(actorID, role, projectID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromModels(items))
}

func (ctl *NoteItemController) GetFile(c *fiber.Ctx) error {
	actorID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
	}
	role, _ := helperAuth.GetRole(c)

	itemID, err := uuid.Parse(strings.TrimSpace(c.Query("item_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item_id")
	}

	rc, fileName, err := ctl.Service.GetItemFile(c.UserContext(), actorID, role, itemID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to read document")
	}

	ct := mime.TypeByExtension(filepath.Ext(fileName))
	if ct == "" {
		ct = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, ct)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(body)
}

func (ctl *NoteItemController) History(c *fiber.Ctx) error {
	actorID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user identity")
	}
	role, _ := helperAuth.GetRole(c)

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	rows, err := ctl.Service.ItemHistory(actorID, role, itemID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.HistoryFromModels(rows))
}
