// file: internals/features/festival/events/controller/event_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"artsfest_backend/internals/constants"
	"artsfest_backend/internals/features/festival/events/dto"
	"artsfest_backend/internals/features/festival/events/model"
	helper "artsfest_backend/internals/helpers"
)

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validate: validator.New()}
}

/* ================= CREATE ================= */

func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dup int64
	if err := ctl.DB.Model(&model.Event{}).
		Where("event_code = ?", req.EventCode).
		Count(&dup).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa kode event")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusConflict, "Kode event sudah dipakai")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat event")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event berhasil dibuat", dto.FromModel(m))
}

/* ================= GET ALL ================= */

// GetAll mendukung filter ?category=&section=&search=.
// Filter section menerima section fisik dan memperluasnya ke virtual tag.
func (ctl *EventController) GetAll(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Event{})

	if v := strings.TrimSpace(c.Query("category")); v != "" {
		if !constants.IsValidCategory(v) {
			return helper.Error(c, fiber.StatusBadRequest, "category tidak valid")
		}
		q = q.Scopes(model.ScopeByCategory(v))
	}
	if v := strings.TrimSpace(c.Query("section")); v != "" {
		if !constants.IsValidSectionTag(v) {
			return helper.Error(c, fiber.StatusBadRequest, "section tidak valid")
		}
		tags := []string{v}
		if constants.IsPhysicalSection(v) {
			tags = constants.VirtualTags(v)
		}
		q = q.Scopes(model.ScopeBySectionTag(tags))
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Where("event_name ILIKE ? OR event_code ILIKE ?", "%"+v+"%", "%"+v+"%")
	}

	var list []model.Event
	if err := q.Order("event_name ASC").Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	// Jumlah peserta terdaftar per event (baris siswa saja)
	type cntRow struct {
		EventID uuid.UUID `gorm:"column:event_id"`
		N       int       `gorm:"column:n"`
	}
	var counts []cntRow
	if err := ctl.DB.Raw(`
		SELECT participation_event_id AS event_id, COUNT(*)::int AS n
		FROM participations
		WHERE participation_student_id IS NOT NULL
		GROUP BY participation_event_id
	`).Scan(&counts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung peserta")
	}
	byID := make(map[uuid.UUID]int, len(counts))
	for _, r := range counts {
		byID[r.EventID] = r.N
	}

	out := make([]dto.EventWithCountResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.EventWithCountResponse{
			EventResponse:    *dto.FromModel(&list[i]),
			ParticipantCount: byID[list[i].EventID],
		})
	}
	return helper.Success(c, "OK", out)
}

/* ================= GET BY ID ================= */

func (ctl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID event tidak valid")
	}

	var m model.Event
	if err := ctl.DB.First(&m, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}
	return helper.Success(c, "OK", dto.FromModel(&m))
}

/* ================= UPDATE ================= */

func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID event tidak valid")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Event
	if err := ctl.DB.First(&m, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	if req.EventCode != nil {
		var dup int64
		if err := ctl.DB.Model(&model.Event{}).
			Where("event_code = ? AND event_id <> ?", *req.EventCode, id).
			Count(&dup).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa kode event")
		}
		if dup > 0 {
			return helper.Error(c, fiber.StatusConflict, "Kode event sudah dipakai")
		}
	}

	req.ApplyTo(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui event")
	}
	return helper.Success(c, "Event berhasil diperbarui", dto.FromModel(&m))
}

/* ================= DELETE ================= */

func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID event tidak valid")
	}

	var affected int64
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM participations WHERE participation_event_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Event{}, "event_id = ?", id)
		affected = res.RowsAffected
		return res.Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}
	if affected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.Success(c, "Event berhasil dihapus", nil)
}
