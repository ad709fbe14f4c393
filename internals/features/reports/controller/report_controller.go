// file: internals/features/reports/controller/report_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"artsfest_backend/internals/constants"
	assetModel "artsfest_backend/internals/features/assets/model"
	eventModel "artsfest_backend/internals/features/festival/events/model"
	studentModel "artsfest_backend/internals/features/festival/students/model"
	"artsfest_backend/internals/features/reports/service"
	helper "artsfest_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// renderer membangun PDFRenderer dengan header dari site asset.
func (ctl *ReportController) renderer() *service.PDFRenderer {
	var asset assetModel.SiteAsset
	r := &service.PDFRenderer{}
	if err := ctl.DB.First(&asset, "site_asset_key = ?", assetModel.KeyAdmitCardHeader).Error; err == nil {
		r.HeaderImageURL = asset.SiteAssetValue
	}
	return r
}

func sendPDF(c *fiber.Ctx, filename string, buf []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf)
}

/* ================= CALL SHEET ================= */

// GetCallSheet mencetak daftar panggil satu event (urut nomor dada).
func (ctl *ReportController) GetCallSheet(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID event tidak valid")
	}

	data, err := service.FetchCallSheet(ctl.DB, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data daftar panggil")
	}

	buf, err := ctl.renderer().RenderCallSheet(data)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}
	return sendPDF(c, "call-sheet.pdf", buf.Bytes())
}

// GetCallSheetsBulk mencetak daftar panggil banyak event sekaligus,
// opsional difilter ?category=.
func (ctl *ReportController) GetCallSheetsBulk(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	if category != "" && !constants.IsValidCategory(category) {
		return helper.Error(c, fiber.StatusBadRequest, "category tidak valid")
	}

	q := ctl.DB.Model(&eventModel.Event{})
	if category != "" {
		q = q.Scopes(eventModel.ScopeByCategory(category))
	}
	var events []eventModel.Event
	if err := q.Order("event_name ASC").Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	if len(events) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Tidak ada event untuk dicetak")
	}

	sheets := make([]*service.CallSheetData, 0, len(events))
	for i := range events {
		data, err := service.FetchCallSheet(ctl.DB, events[i].EventID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data daftar panggil")
		}
		sheets = append(sheets, data)
	}

	buf, err := ctl.renderer().RenderCallSheets(sheets)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}
	return sendPDF(c, "call-sheets.pdf", buf.Bytes())
}

/* ================= ADMIT CARDS ================= */

// GetTeamAdmitCards mencetak kartu peserta seluruh tim; captain hanya
// boleh mencetak timnya sendiri.
func (ctl *ReportController) GetTeamAdmitCards(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("team_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tim tidak valid")
	}
	if helper.IsCaptain(c) {
		own, ok := helper.GetTeamUUID(c)
		if !ok || own != teamID {
			return helper.Error(c, fiber.StatusForbidden, "Hanya boleh mencetak kartu tim sendiri")
		}
	}

	cards, err := service.FetchAdmitCards(ctl.DB, teamID, nil)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kartu")
	}
	if len(cards) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Tidak ada siswa dengan pendaftaran event")
	}

	buf, err := ctl.renderer().RenderAdmitCards(cards)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}
	return sendPDF(c, "admit-cards.pdf", buf.Bytes())
}

// GetStudentAdmitCard mencetak kartu satu siswa.
func (ctl *ReportController) GetStudentAdmitCard(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var student studentModel.Student
	if err := ctl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}
	if helper.IsCaptain(c) {
		own, ok := helper.GetTeamUUID(c)
		if !ok || own != student.StudentTeamID {
			return helper.Error(c, fiber.StatusForbidden, "Hanya boleh mencetak kartu tim sendiri")
		}
	}

	cards, err := service.FetchAdmitCards(ctl.DB, student.StudentTeamID, &studentID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kartu")
	}
	if len(cards) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Siswa belum terdaftar di event mana pun")
	}

	buf, err := ctl.renderer().RenderAdmitCards(cards)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}
	return sendPDF(c, "admit-card.pdf", buf.Bytes())
}

/* ================= STUDENT REPORT ================= */

func (ctl *ReportController) GetStudentReport(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var student studentModel.Student
	if err := ctl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	rows, err := service.FetchStudentReport(ctl.DB, studentID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data laporan")
	}

	if c.Query("format") == "pdf" {
		buf, err := ctl.renderer().RenderStudentReport(student.StudentName, rows)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
		}
		return sendPDF(c, "student-report.pdf", buf.Bytes())
	}

	total := 0
	for _, r := range rows {
		total += r.Points
	}
	return helper.Success(c, "OK", fiber.Map{
		"student_name": student.StudentName,
		"rows":         rows,
		"total_points": total,
	})
}

/* ================= ZERO PARTICIPATION ================= */

// GetZeroParticipation: daftar siswa yang belum mendaftar event apa pun,
// opsional ?team_id= dan ?q= (cari nama). ?format=pdf menghasilkan
// dokumen cetak, default JSON.
func (ctl *ReportController) GetZeroParticipation(c *fiber.Ctx) error {
	var teamID *uuid.UUID
	if v := strings.TrimSpace(c.Query("team_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "team_id tidak valid")
		}
		teamID = &id
	}

	rows, err := service.FetchZeroParticipation(ctl.DB, teamID, strings.TrimSpace(c.Query("q")))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if c.Query("format") == "pdf" {
		buf, err := ctl.renderer().RenderZeroParticipation(rows)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
		}
		return sendPDF(c, "zero-participation.pdf", buf.Bytes())
	}
	return helper.Success(c, "OK", rows)
}

/* ================= CATEGORY EXCLUSIVE ================= */

// GetCategoryExclusive: siswa yang hanya ikut satu kategori, dipisah
// per kategori; ?category= mengembalikan satu daftar saja.
func (ctl *ReportController) GetCategoryExclusive(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	if category != "" && !constants.IsValidCategory(category) {
		return helper.Error(c, fiber.StatusBadRequest, "category tidak valid")
	}

	rows, err := service.FetchCategoryExclusive(ctl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	onStage := make([]service.CategoryExclusiveRow, 0)
	offStage := make([]service.CategoryExclusiveRow, 0)
	for _, r := range rows {
		if r.Category == constants.CategoryOnStage {
			onStage = append(onStage, r)
		} else {
			offStage = append(offStage, r)
		}
	}

	switch category {
	case constants.CategoryOnStage:
		return helper.Success(c, "OK", fiber.Map{"on_stage_only": onStage})
	case constants.CategoryOffStage:
		return helper.Success(c, "OK", fiber.Map{"off_stage_only": offStage})
	default:
		return helper.Success(c, "OK", fiber.Map{
			"on_stage_only":  onStage,
			"off_stage_only": offStage,
		})
	}
}
