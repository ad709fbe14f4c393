// file: internals/features/festival/teams/controller/team_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"artsfest_backend/internals/features/festival/teams/dto"
	"artsfest_backend/internals/features/festival/teams/model"
	helper "artsfest_backend/internals/helpers"
)

type TeamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db, Validate: validator.New()}
}

/* ================= CREATE ================= */

func (ctl *TeamController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.Error(c, fiber.StatusConflict, "Nama tim sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat tim")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tim berhasil dibuat", dto.FromModel(m))
}

/* ================= GET ALL ================= */

// GetAll mengembalikan semua tim beserta jumlah siswa dan total poin.
func (ctl *TeamController) GetAll(c *fiber.Ctx) error {
	var teams []model.Team
	if err := ctl.DB.Order("team_name ASC").Find(&teams).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data tim")
	}

	type statRow struct {
		TeamID       uuid.UUID `gorm:"column:team_id"`
		StudentCount int       `gorm:"column:student_count"`
		TotalPoints  int       `gorm:"column:total_points"`
	}
	var stats []statRow
	if err := ctl.DB.Raw(`
		SELECT t.team_id,
		       COUNT(DISTINCT s.student_id)                  AS student_count,
		       COALESCE(SUM(p.participation_points), 0)::int AS total_points
		FROM teams t
		LEFT JOIN students s       ON s.student_team_id = t.team_id
		LEFT JOIN participations p ON p.participation_team_id = t.team_id
		GROUP BY t.team_id
	`).Scan(&stats).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung statistik tim")
	}

	byID := make(map[uuid.UUID]statRow, len(stats))
	for _, s := range stats {
		byID[s.TeamID] = s
	}

	out := make([]dto.TeamWithStatsResponse, 0, len(teams))
	for i := range teams {
		s := byID[teams[i].TeamID]
		out = append(out, dto.TeamWithStatsResponse{
			TeamResponse: *dto.FromModel(&teams[i]),
			StudentCount: s.StudentCount,
			TotalPoints:  s.TotalPoints,
		})
	}
	return helper.Success(c, "OK", out)
}

/* ================= GET BY ID ================= */

func (ctl *TeamController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tim tidak valid")
	}

	var m model.Team
	if err := ctl.DB.First(&m, "team_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data tim")
	}
	return helper.Success(c, "OK", dto.FromModel(&m))
}

/* ================= UPDATE ================= */

func (ctl *TeamController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tim tidak valid")
	}

	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Team
	if err := ctl.DB.First(&m, "team_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data tim")
	}

	req.ApplyTo(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.Error(c, fiber.StatusConflict, "Nama tim sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui tim")
	}
	return helper.Success(c, "Tim berhasil diperbarui", dto.FromModel(&m))
}

/* ================= DELETE ================= */

func (ctl *TeamController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tim tidak valid")
	}

	// Tolak hapus jika masih ada siswa terdaftar.
	var count int64
	if err := ctl.DB.Table("students").Where("student_team_id = ?", id).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa tim")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Tim masih punya siswa terdaftar")
	}

	res := ctl.DB.Delete(&model.Team{}, "team_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus tim")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
	}
	return helper.Success(c, "Tim berhasil dihapus", nil)
}
