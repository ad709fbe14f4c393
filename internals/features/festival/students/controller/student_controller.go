// file: internals/features/festival/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"artsfest_backend/internals/features/festival/students/dto"
	"artsfest_backend/internals/features/festival/students/model"
	helper "artsfest_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// scopeForCaller membatasi query ke tim sendiri untuk captain.
func (ctl *StudentController) scopeForCaller(c *fiber.Ctx, q *gorm.DB) *gorm.DB {
	if helper.IsCaptain(c) {
		if teamID, ok := helper.GetTeamUUID(c); ok {
			return q.Where("student_team_id = ?", teamID)
		}
		// captain tanpa tim = tidak melihat apa pun
		return q.Where("1 = 0")
	}
	return q
}

// captainOwns menolak captain yang menyentuh siswa tim lain.
func (ctl *StudentController) captainOwns(c *fiber.Ctx, teamID uuid.UUID) bool {
	if !helper.IsCaptain(c) {
		return true
	}
	own, ok := helper.GetTeamUUID(c)
	return ok && own == teamID
}

/* ================= CREATE ================= */

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !ctl.captainOwns(c, req.StudentTeamID) {
		return helper.Error(c, fiber.StatusForbidden, "Hanya boleh mengelola siswa tim sendiri")
	}

	// Chest number unik lintas tim.
	var dup int64
	if err := ctl.DB.Model(&model.Student{}).
		Where("student_chest_no = ?", req.StudentChestNo).
		Count(&dup).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa nomor dada")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusConflict, "Nomor dada sudah dipakai")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat siswa")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa berhasil dibuat", dto.FromModel(m))
}

/* ================= GET ALL ================= */

// GetAll mendukung filter ?team_id=&section=&search= plus paginasi.
func (ctl *StudentController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.Student{})
	q = ctl.scopeForCaller(c, q)

	if v := strings.TrimSpace(c.Query("team_id")); v != "" {
		teamID, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "team_id tidak valid")
		}
		q = q.Scopes(model.ScopeByTeam(teamID))
	}
	if v := strings.TrimSpace(c.Query("section")); v != "" {
		q = q.Scopes(model.ScopeBySection(v))
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		like := "%" + v + "%"
		q = q.Where("student_name ILIKE ? OR student_chest_no ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var list []model.Student
	if err := q.Order("student_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.Success(c, "OK", fiber.Map{
		"students":   dto.FromModels(list),
		"pagination": helper.BuildPagination(p, total, len(list)),
	})
}

/* ================= GET BY ID ================= */

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var m model.Student
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	if !ctl.captainOwns(c, m.StudentTeamID) {
		return helper.Error(c, fiber.StatusForbidden, "Hanya boleh melihat siswa tim sendiri")
	}
	return helper.Success(c, "OK", dto.FromModel(&m))
}

/* ================= UPDATE ================= */

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Student
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	if !ctl.captainOwns(c, m.StudentTeamID) {
		return helper.Error(c, fiber.StatusForbidden, "Hanya boleh mengelola siswa tim sendiri")
	}
	// captain tidak boleh memindahkan siswa ke tim lain
	if req.StudentTeamID != nil && !ctl.captainOwns(c, *req.StudentTeamID) {
		return helper.Error(c, fiber.StatusForbidden, "Tidak boleh memindahkan siswa ke tim lain")
	}

	if req.StudentChestNo != nil && *req.StudentChestNo != m.StudentChestNo {
		var dup int64
		if err := ctl.DB.Model(&model.Student{}).
			Where("student_chest_no = ? AND student_id <> ?", *req.StudentChestNo, id).
			Count(&dup).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa nomor dada")
		}
		if dup > 0 {
			return helper.Error(c, fiber.StatusConflict, "Nomor dada sudah dipakai")
		}
	}

	req.ApplyTo(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui siswa")
	}
	return helper.Success(c, "Siswa berhasil diperbarui", dto.FromModel(&m))
}

/* ================= DELETE ================= */

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var m model.Student
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	if !ctl.captainOwns(c, m.StudentTeamID) {
		return helper.Error(c, fiber.StatusForbidden, "Hanya boleh mengelola siswa tim sendiri")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Entri partisipasi siswa ikut terhapus.
		if err := tx.Exec(`DELETE FROM participations WHERE participation_student_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Student{}, "student_id = ?", id).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}
	return helper.Success(c, "Siswa berhasil dihapus", nil)
}
