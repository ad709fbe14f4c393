// file: internals/features/scoring/results/controller/result_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"artsfest_backend/internals/constants"
	eventModel "artsfest_backend/internals/features/festival/events/model"
	teamModel "artsfest_backend/internals/features/festival/teams/model"
	participationDTO "artsfest_backend/internals/features/festival/participations/dto"
	pModel "artsfest_backend/internals/features/festival/participations/model"
	"artsfest_backend/internals/features/scoring/results/dto"
	"artsfest_backend/internals/features/scoring/results/model"
	"artsfest_backend/internals/features/scoring/results/service"
	helper "artsfest_backend/internals/helpers"
)

type ResultController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db, Validate: validator.New()}
}

/* ================= EVENT PICKER ================= */

// GetScoringEvents: daftar event yang bisa dinilai (?section=&category=)
// plus tim dan tabel poin, sekali ambil untuk halaman scoring.
func (ctl *ResultController) GetScoringEvents(c *fiber.Ctx) error {
	q := ctl.DB.Model(&eventModel.Event{})
	if v := strings.TrimSpace(c.Query("category")); v != "" {
		if !constants.IsValidCategory(v) {
			return helper.Error(c, fiber.StatusBadRequest, "category tidak valid")
		}
		q = q.Scopes(eventModel.ScopeByCategory(v))
	}
	if v := strings.TrimSpace(c.Query("section")); v != "" {
		if !constants.IsValidSectionTag(v) {
			return helper.Error(c, fiber.StatusBadRequest, "section tidak valid")
		}
		tags := []string{v}
		if constants.IsPhysicalSection(v) {
			tags = constants.VirtualTags(v)
		}
		q = q.Scopes(eventModel.ScopeBySectionTag(tags))
	}

	var events []eventModel.Event
	if err := q.Order("event_name ASC").Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	var teams []teamModel.Team
	if err := ctl.DB.Order("team_name ASC").Find(&teams).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tim")
	}

	var settings []model.GradeSetting
	if err := ctl.DB.
		Order("grade_setting_grade_type ASC, grade_setting_position ASC").
		Find(&settings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tabel poin")
	}

	return helper.Success(c, "OK", fiber.Map{
		"events":         events,
		"teams":          teams,
		"grade_settings": settings,
	})
}

/* ================= SCOREBOARD ================= */

// GetScoreboard mengembalikan semua entri event plus saran mode scoring.
func (ctl *ResultController) GetScoreboard(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID event tidak valid")
	}

	var event eventModel.Event
	if err := ctl.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	var rows []pModel.Participation
	if err := ctl.DB.
		Scopes(pModel.ScopeByEvent(eventID)).
		Order("participation_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil entri")
	}

	return helper.Success(c, "OK", dto.ScoreboardResponse{
		EventID:       event.EventID,
		EventName:     event.EventName,
		GradeType:     event.EventGradeType,
		SuggestedMode: service.SuggestMode(rows),
		Entries:       participationDTO.FromModels(rows),
	})
}

/* ================= SAVE RESULTS ================= */

// SaveResults menyimpan hasil event dalam satu transaksi.
// INDIVIDUAL menulis ulang semua baris siswa (pemenang lama di-reset).
// TEAM membuang semua baris tim lama lalu menulis pemenang baru.
func (ctl *ResultController) SaveResults(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID event tidak valid")
	}

	var req dto.SaveResultsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var event eventModel.Event
	if err := ctl.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	var settings []model.GradeSetting
	if err := ctl.DB.Find(&settings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tabel poin")
	}
	pts := service.BuildPointsTable(settings, event.EventGradeType)
	if len(pts) == 0 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Tabel poin untuk grade "+event.EventGradeType+" belum diisi")
	}

	switch req.Mode {
	case service.ModeIndividual:
		return ctl.saveIndividual(c, eventID, req, pts)
	case service.ModeTeam:
		return ctl.saveTeam(c, eventID, req, pts)
	default:
		return helper.Error(c, fiber.StatusBadRequest, "Mode tidak dikenali")
	}
}

func (ctl *ResultController) saveIndividual(c *fiber.Ctx, eventID uuid.UUID, req dto.SaveResultsRequest, pts service.PointsTable) error {
	var rows []pModel.Participation
	if err := ctl.DB.
		Scopes(pModel.ScopeByEvent(eventID), pModel.ScopeStudentEntries).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil entri siswa")
	}

	// Setiap pemenang harus peserta terdaftar.
	registered := make(map[uuid.UUID]bool, len(rows))
	for i := range rows {
		registered[*rows[i].ParticipationStudentID] = true
	}
	placements := make([]service.IndividualPlacement, 0, len(req.Individual))
	seen := make(map[uuid.UUID]bool, len(req.Individual))
	for _, p := range req.Individual {
		if !registered[p.StudentID] {
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Pemenang harus peserta terdaftar di event ini")
		}
		if seen[p.StudentID] {
			return helper.Error(c, fiber.StatusBadRequest, "Satu siswa tidak boleh menempati dua posisi")
		}
		seen[p.StudentID] = true
		placements = append(placements, service.IndividualPlacement{StudentID: p.StudentID, Position: p.Position})
	}

	updated := service.ApplyIndividualResults(rows, placements, pts)

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for i := range updated {
			if err := tx.Model(&pModel.Participation{}).
				Where("participation_id = ?", updated[i].ParticipationID).
				Updates(map[string]interface{}{
					"participation_status":          updated[i].ParticipationStatus,
					"participation_result_position": updated[i].ParticipationResultPosition,
					"participation_points":          updated[i].ParticipationPoints,
					"participation_updated_at":      gorm.Expr("now()"),
				}).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan hasil")
	}

	return helper.Success(c, "Hasil tersimpan", participationDTO.FromModels(updated))
}

func (ctl *ResultController) saveTeam(c *fiber.Ctx, eventID uuid.UUID, req dto.SaveResultsRequest, pts service.PointsTable) error {
	placements := make([]service.TeamPlacement, 0, len(req.Teams))
	seen := make(map[uuid.UUID]bool, len(req.Teams))
	for _, p := range req.Teams {
		if seen[p.TeamID] {
			return helper.Error(c, fiber.StatusBadRequest, "Satu tim tidak boleh menempati dua posisi")
		}
		seen[p.TeamID] = true
		placements = append(placements, service.TeamPlacement{TeamID: p.TeamID, Position: p.Position})
	}
	newRows := service.BuildTeamResults(eventID, placements, pts)

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("participation_event_id = ? AND participation_student_id IS NULL", eventID).
			Delete(&pModel.Participation{}).Error; err != nil {
			return err
		}
		if len(newRows) == 0 {
			return nil
		}
		return tx.Create(&newRows).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan hasil")
	}

	return helper.Success(c, "Hasil tersimpan", participationDTO.FromModels(newRows))
}

/* ================= GRADE SETTINGS ================= */

func (ctl *ResultController) GetGradeSettings(c *fiber.Ctx) error {
	var list []model.GradeSetting
	if err := ctl.DB.
		Order("grade_setting_grade_type ASC, grade_setting_position ASC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tabel poin")
	}
	return helper.Success(c, "OK", list)
}

func (ctl *ResultController) UpsertGradeSetting(c *fiber.Ctx) error {
	var req dto.UpsertGradeSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.GradeSetting{
		GradeSettingGradeType: req.GradeType,
		GradeSettingPosition:  req.Position,
		GradeSettingPoints:    req.Points,
	}
	if err := ctl.DB.Exec(`
		INSERT INTO grade_settings (grade_setting_grade_type, grade_setting_position, grade_setting_points)
		VALUES (?, ?, ?)
		ON CONFLICT (grade_setting_grade_type, grade_setting_position)
		DO UPDATE SET grade_setting_points = EXCLUDED.grade_setting_points,
		              grade_setting_updated_at = now()
	`, req.GradeType, req.Position, req.Points).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan tabel poin")
	}
	return helper.Success(c, "Tabel poin tersimpan", m)
}
