// file: internals/features/festival/participations/controller/participation_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"artsfest_backend/internals/constants"
	eventDTO "artsfest_backend/internals/features/festival/events/dto"
	eventModel "artsfest_backend/internals/features/festival/events/model"
	"artsfest_backend/internals/features/festival/participations/dto"
	"artsfest_backend/internals/features/festival/participations/model"
	"artsfest_backend/internals/features/festival/participations/service"
	studentDTO "artsfest_backend/internals/features/festival/students/dto"
	studentModel "artsfest_backend/internals/features/festival/students/model"
	helper "artsfest_backend/internals/helpers"
)

type ParticipationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewParticipationController(db *gorm.DB) *ParticipationController {
	return &ParticipationController{DB: db, Validate: validator.New()}
}

/* ================= MATRIX ================= */

// GetMatrix mengembalikan matriks satu tim untuk satu tab
// (?team_id=&section=&category=). Tab boleh virtual; event yang tampil
// adalah yang ber-kategori cocok DAN memuat section tab persis.
func (ctl *ParticipationController) GetMatrix(c *fiber.Ctx) error {
	section := strings.TrimSpace(c.Query("section"))
	category := strings.TrimSpace(c.Query("category"))
	if !constants.IsValidSectionTag(section) {
		return helper.Error(c, fiber.StatusBadRequest, "section tidak valid")
	}
	if !constants.IsValidCategory(category) {
		return helper.Error(c, fiber.StatusBadRequest, "category tidak valid")
	}

	var teamID uuid.UUID
	if helper.IsCaptain(c) {
		own, ok := helper.GetTeamUUID(c)
		if !ok {
			return helper.Error(c, fiber.StatusForbidden, "Captain tidak terhubung ke tim mana pun")
		}
		teamID = own
	} else {
		id, err := uuid.Parse(strings.TrimSpace(c.Query("team_id")))
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "team_id wajib diisi")
		}
		teamID = id
	}

	var events []eventModel.Event
	if err := ctl.DB.
		Scopes(eventModel.ScopeByCategory(category), eventModel.ScopeBySectionTag([]string{section})).
		Order("event_name ASC").
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	var students []studentModel.Student
	if err := ctl.DB.
		Scopes(studentModel.ScopeByTeam(teamID)).
		Where("student_section IN ?", constants.PhysicalSectionsForTab(section)).
		Order("student_name ASC").
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	var limits []studentModel.SectionLimit
	if err := ctl.DB.Find(&limits).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil batas section")
	}
	limit, _ := service.ResolveLimit(limits, section, category)

	eventIDs := make([]uuid.UUID, 0, len(events))
	for i := range events {
		eventIDs = append(eventIDs, events[i].EventID)
	}

	// Sel yang sudah dicentang (tim ini saja), dikelompokkan per siswa,
	// plus jumlah pendaftar tim per event
	regByStudent := make(map[uuid.UUID][]uuid.UUID)
	eventCounts := make(map[uuid.UUID]int, len(events))
	if len(eventIDs) > 0 {
		var rows []model.Participation
		if err := ctl.DB.
			Scopes(model.ScopeStudentEntries).
			Where("participation_team_id = ?", teamID).
			Where("participation_event_id IN ?", eventIDs).
			Find(&rows).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil partisipasi")
		}
		for i := range rows {
			sid := *rows[i].ParticipationStudentID
			regByStudent[sid] = append(regByStudent[sid], rows[i].ParticipationEventID)
			eventCounts[rows[i].ParticipationEventID]++
		}
	}

	out := dto.MatrixResponse{
		TeamID:      teamID,
		Section:     section,
		Category:    category,
		Limit:       limit,
		Events:      eventDTO.FromModels(events),
		EventCounts: eventCounts,
		Students:    make([]dto.MatrixStudentRow, 0, len(students)),
	}
	for i := range students {
		ids := regByStudent[students[i].StudentID]
		if ids == nil {
			ids = []uuid.UUID{}
		}
		remaining := limit - len(ids)
		if remaining < 0 {
			remaining = 0
		}
		out.Students = append(out.Students, dto.MatrixStudentRow{
			StudentResponse:    *studentDTO.FromModel(&students[i]),
			RegisteredEventIDs: ids,
			Remaining:          remaining,
		})
	}
	return helper.Success(c, "OK", out)
}

/* ================= TOGGLE ================= */

// Toggle mendaftarkan atau membatalkan satu sel matriks.
// Pendaftaran melewati evaluator; pelanggaran kuota dijawab 409 advisory
// dan klien boleh mengulang dengan confirmed=true.
func (ctl *ParticipationController) Toggle(c *fiber.Ctx) error {
	var req dto.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student studentModel.Student
	if err := ctl.DB.First(&student, "student_id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}
	if helper.IsCaptain(c) {
		teamID, ok := helper.GetTeamUUID(c)
		if !ok || teamID != student.StudentTeamID {
			return helper.Error(c, fiber.StatusForbidden, "Hanya boleh mengelola siswa tim sendiri")
		}
	}

	var event eventModel.Event
	if err := ctl.DB.First(&event, "event_id = ?", req.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	// Sudah terdaftar? Toggle berarti batal.
	var existing model.Participation
	err := ctl.DB.
		Scopes(model.ScopeByEvent(event.EventID), model.ScopeByStudent(student.StudentID)).
		First(&existing).Error
	switch {
	case err == nil:
		return ctl.unregister(c, &existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// lanjut daftar
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa partisipasi")
	}

	// Semua event yang sudah diikuti siswa, untuk hitung kuota
	type regRow struct {
		EventID  uuid.UUID `gorm:"column:event_id"`
		Category string    `gorm:"column:event_category"`
		Raw      string    `gorm:"column:sections_csv"`
	}
	var regs []regRow
	if err := ctl.DB.Raw(`
		SELECT e.event_id,
		       e.event_category,
		       array_to_string(e.event_applicable_section, ',') AS sections_csv
		FROM participations p
		JOIN events e ON e.event_id = p.participation_event_id
		WHERE p.participation_student_id = ?
	`, student.StudentID).Scan(&regs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat pendaftaran")
	}

	var limits []studentModel.SectionLimit
	if err := ctl.DB.Find(&limits).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil batas section")
	}

	// Pendaftar tim ini pada event yang sama, untuk kuota per tim
	var teamCount int64
	if err := ctl.DB.Model(&model.Participation{}).
		Scopes(model.ScopeByEvent(event.EventID), model.ScopeStudentEntries).
		Where("participation_team_id = ?", student.StudentTeamID).
		Count(&teamCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung pendaftar tim")
	}

	registered := make([]service.RegisteredEvent, 0, len(regs))
	for _, r := range regs {
		registered = append(registered, service.RegisteredEvent{
			EventID:  r.EventID.String(),
			Category: r.Category,
			Sections: strings.Split(r.Raw, ","),
		})
	}

	res := service.Evaluate(service.EvalInput{
		StudentSection:  student.StudentSection,
		TabSection:      req.Section,
		EventCategory:   event.EventCategory,
		EventSections:   []string(event.EventApplicableSection),
		Registered:      registered,
		Limits:          limits,
		EventMaxPerTeam: event.EventMaxPerTeam,
		EventTeamCount:  int(teamCount),
		Confirmed:       req.Confirmed,
	})
	if !res.Allowed {
		if res.Advisory {
			return helper.Advisory(c, res.Reason, fiber.Map{
				"current_count": res.CurrentCount,
				"limit":         res.Limit,
			})
		}
		return helper.Error(c, fiber.StatusUnprocessableEntity, res.Reason)
	}

	m := service.NewRegistration(event.EventID, student.StudentID, student.StudentTeamID)
	if err := ctl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.Error(c, fiber.StatusConflict, "Siswa sudah terdaftar di event ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mendaftarkan siswa")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa terdaftar", dto.FromModel(&m))
}

// unregister menghapus baris tanpa syarat; daftar ulang setelahnya
// selalu mulai dari keadaan bersih (registered, 0 poin).
func (ctl *ParticipationController) unregister(c *fiber.Ctx, p *model.Participation) error {
	if err := ctl.DB.Delete(&model.Participation{}, "participation_id = ?", p.ParticipationID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membatalkan pendaftaran")
	}
	return helper.Success(c, "Pendaftaran dibatalkan", nil)
}

/* ================= LIST BY STUDENT / EVENT ================= */

func (ctl *ParticipationController) GetByStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	var list []model.Participation
	if err := ctl.DB.
		Scopes(model.ScopeByStudent(id)).
		Order("participation_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil partisipasi")
	}
	return helper.Success(c, "OK", dto.FromModels(list))
}

func (ctl *ParticipationController) GetByEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID event tidak valid")
	}
	var list []model.Participation
	if err := ctl.DB.
		Scopes(model.ScopeByEvent(id)).
		Order("participation_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil partisipasi")
	}
	return helper.Success(c, "OK", dto.FromModels(list))
}

/* ================= ATTENDANCE ================= */

func (ctl *ParticipationController) UpdateAttendance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID partisipasi tidak valid")
	}
	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Participation
	if err := ctl.DB.First(&m, "participation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Partisipasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil partisipasi")
	}

	m.ParticipationAttendance = req.Attendance
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui kehadiran")
	}
	return helper.Success(c, "Kehadiran diperbarui", dto.FromModel(&m))
}

/* ================= PERFORMANCE GRADE ================= */

func (ctl *ParticipationController) UpdatePerformanceGrade(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID partisipasi tidak valid")
	}
	var req dto.UpdatePerformanceGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Participation
	if err := ctl.DB.First(&m, "participation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Partisipasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil partisipasi")
	}

	m.ParticipationPerformanceGrade = req.PerformanceGrade
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui nilai penampilan")
	}
	return helper.Success(c, "Nilai penampilan diperbarui", dto.FromModel(&m))
}
