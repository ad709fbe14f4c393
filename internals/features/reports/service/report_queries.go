// file: internals/features/reports/service/report_queries.go
package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==========================
   Row shapes
========================== */

type CallSheetRow struct {
	StudentName    string `gorm:"column:student_name"`
	StudentChestNo string `gorm:"column:student_chest_no"`
	StudentSection string `gorm:"column:student_section"`
	TeamName       string `gorm:"column:team_name"`
	Attendance     string `gorm:"column:attendance"`
}

type CallSheetData struct {
	EventName string
	EventCode string
	Category  string
	Venue     string
	StageTime string
	Rows      []CallSheetRow
}

type AdmitEventRow struct {
	EventName string `gorm:"column:event_name"`
	EventCode string `gorm:"column:event_code"`
	Category  string `gorm:"column:event_category"`
	Venue     string `gorm:"column:event_venue"`
	StageTime string `gorm:"column:event_stage_time"`
}

// AdmitCardData: satu kartu = satu (siswa, kategori).
type AdmitCardData struct {
	StudentName    string
	StudentChestNo string
	StudentSection string
	StudentClass   string
	TeamName       string
	Category       string
	Events         []AdmitEventRow
}

type StudentReportRow struct {
	EventName  string `gorm:"column:event_name"`
	Category   string `gorm:"column:event_category"`
	GradeType  string `gorm:"column:event_grade_type"`
	Status     string `gorm:"column:status"`
	Position   *int   `gorm:"column:position"`
	Points     int    `gorm:"column:points"`
	Attendance string `gorm:"column:attendance"`
}

// CategoryExclusiveRow: siswa yang seluruh pendaftarannya jatuh pada
// satu kategori saja.
type CategoryExclusiveRow struct {
	StudentName    string `gorm:"column:student_name"`
	StudentChestNo string `gorm:"column:student_chest_no"`
	StudentSection string `gorm:"column:student_section"`
	TeamName       string `gorm:"column:team_name"`
	Category       string `gorm:"column:category"`
	EventCount     int    `gorm:"column:event_count"`
}

type ZeroParticipationRow struct {
	StudentName    string `gorm:"column:student_name"`
	StudentChestNo string `gorm:"column:student_chest_no"`
	StudentSection string `gorm:"column:student_section"`
	TeamName       string `gorm:"column:team_name"`
}

/* ==========================
   Chest number ordering
========================== */

// chestNoSortKey: nomor dada diurutkan numerik; yang tidak bisa diparse
// dilempar ke belakang (999).
func chestNoSortKey(chestNo string) int {
	n, err := strconv.Atoi(strings.TrimSpace(chestNo))
	if err != nil {
		return 999
	}
	return n
}

// SortByChestNo mengurutkan baris call sheet sesuai nomor dada numerik.
func SortByChestNo(rows []CallSheetRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		ki, kj := chestNoSortKey(rows[i].StudentChestNo), chestNoSortKey(rows[j].StudentChestNo)
		if ki != kj {
			return ki < kj
		}
		return rows[i].StudentName < rows[j].StudentName
	})
}

/* ==========================
   Queries
========================== */

func FetchCallSheet(db *gorm.DB, eventID uuid.UUID) (*CallSheetData, error) {
	type eventRow struct {
		EventName string  `gorm:"column:event_name"`
		EventCode string  `gorm:"column:event_code"`
		Category  string  `gorm:"column:event_category"`
		Venue     *string `gorm:"column:event_venue"`
		StageTime *string `gorm:"column:event_stage_time"`
	}
	var ev eventRow
	if err := db.Raw(`
		SELECT event_name, event_code, event_category, event_venue, event_stage_time
		FROM events WHERE event_id = ?
	`, eventID).Scan(&ev).Error; err != nil {
		return nil, err
	}
	if ev.EventName == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var rows []CallSheetRow
	if err := db.Raw(`
		SELECT s.student_name,
		       s.student_chest_no,
		       s.student_section,
		       t.team_name,
		       p.participation_attendance AS attendance
		FROM participations p
		JOIN students s ON s.student_id = p.participation_student_id
		JOIN teams t    ON t.team_id = s.student_team_id
		WHERE p.participation_event_id = ?
		  AND p.participation_student_id IS NOT NULL
	`, eventID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	SortByChestNo(rows)

	out := &CallSheetData{
		EventName: ev.EventName,
		EventCode: ev.EventCode,
		Category:  ev.Category,
		Rows:      rows,
	}
	if ev.Venue != nil {
		out.Venue = *ev.Venue
	}
	if ev.StageTime != nil {
		out.StageTime = *ev.StageTime
	}
	return out, nil
}

// FetchAdmitCards mengambil kartu untuk semua siswa satu tim (atau satu
// siswa bila studentID != nil), dipecah per kategori event.
func FetchAdmitCards(db *gorm.DB, teamID uuid.UUID, studentID *uuid.UUID) ([]AdmitCardData, error) {
	type row struct {
		StudentID      uuid.UUID `gorm:"column:student_id"`
		StudentName    string    `gorm:"column:student_name"`
		StudentChestNo string    `gorm:"column:student_chest_no"`
		StudentSection string    `gorm:"column:student_section"`
		StudentClass   *string   `gorm:"column:student_class"`
		TeamName       string    `gorm:"column:team_name"`
		EventName      string    `gorm:"column:event_name"`
		EventCode      string    `gorm:"column:event_code"`
		Category       string    `gorm:"column:event_category"`
		Venue          *string   `gorm:"column:event_venue"`
		StageTime      *string   `gorm:"column:event_stage_time"`
	}

	q := db.Raw(`
		SELECT s.student_id, s.student_name, s.student_chest_no, s.student_section, s.student_class,
		       t.team_name,
		       e.event_name, e.event_code, e.event_category, e.event_venue, e.event_stage_time
		FROM participations p
		JOIN students s ON s.student_id = p.participation_student_id
		JOIN teams t    ON t.team_id = s.student_team_id
		JOIN events e   ON e.event_id = p.participation_event_id
		WHERE s.student_team_id = ?
		  AND (?::uuid IS NULL OR s.student_id = ?)
		ORDER BY s.student_chest_no, e.event_category, e.event_name
	`, teamID, studentID, studentID)

	var rows []row
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	// Satu kartu per (siswa, kategori)
	type cardKey struct {
		studentID uuid.UUID
		category  string
	}
	byKey := map[cardKey]*AdmitCardData{}
	order := make([]cardKey, 0)
	for _, r := range rows {
		k := cardKey{r.StudentID, r.Category}
		card, ok := byKey[k]
		if !ok {
			card = &AdmitCardData{
				StudentName:    r.StudentName,
				StudentChestNo: r.StudentChestNo,
				StudentSection: r.StudentSection,
				TeamName:       r.TeamName,
				Category:       r.Category,
			}
			if r.StudentClass != nil {
				card.StudentClass = *r.StudentClass
			}
			byKey[k] = card
			order = append(order, k)
		}
		ev := AdmitEventRow{EventName: r.EventName, EventCode: r.EventCode, Category: r.Category}
		if r.Venue != nil {
			ev.Venue = *r.Venue
		}
		if r.StageTime != nil {
			ev.StageTime = *r.StageTime
		}
		card.Events = append(card.Events, ev)
	}

	out := make([]AdmitCardData, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	// Urutan cetak mengikuti nomor dada
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := chestNoSortKey(out[i].StudentChestNo), chestNoSortKey(out[j].StudentChestNo)
		if ki != kj {
			return ki < kj
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func FetchStudentReport(db *gorm.DB, studentID uuid.UUID) ([]StudentReportRow, error) {
	var rows []StudentReportRow
	err := db.Raw(`
		SELECT e.event_name,
		       e.event_category,
		       e.event_grade_type,
		       p.participation_status          AS status,
		       p.participation_result_position AS position,
		       p.participation_points          AS points,
		       p.participation_attendance      AS attendance
		FROM participations p
		JOIN events e ON e.event_id = p.participation_event_id
		WHERE p.participation_student_id = ?
		ORDER BY e.event_category, e.event_name
	`, studentID).Scan(&rows).Error
	return rows, err
}

// FetchCategoryExclusive: siswa dengan minimal satu pendaftaran yang
// semuanya satu kategori.
func FetchCategoryExclusive(db *gorm.DB) ([]CategoryExclusiveRow, error) {
	var rows []CategoryExclusiveRow
	err := db.Raw(`
		SELECT s.student_name,
		       s.student_chest_no,
		       s.student_section,
		       t.team_name,
		       MIN(e.event_category) AS category,
		       COUNT(*)::int          AS event_count
		FROM participations p
		JOIN students s ON s.student_id = p.participation_student_id
		JOIN teams t    ON t.team_id = s.student_team_id
		JOIN events e   ON e.event_id = p.participation_event_id
		GROUP BY s.student_id, s.student_name, s.student_chest_no, s.student_section, t.team_name
		HAVING COUNT(DISTINCT e.event_category) = 1
		ORDER BY t.team_name, s.student_name
	`).Scan(&rows).Error
	return rows, err
}

// FetchZeroParticipation: siswa tanpa satu pun pendaftaran, opsional
// dibatasi satu tim dan pencarian nama.
func FetchZeroParticipation(db *gorm.DB, teamID *uuid.UUID, q string) ([]ZeroParticipationRow, error) {
	var rows []ZeroParticipationRow
	err := db.Raw(`
		SELECT s.student_name, s.student_chest_no, s.student_section, t.team_name
		FROM students s
		JOIN teams t ON t.team_id = s.student_team_id
		WHERE NOT EXISTS (
			SELECT 1 FROM participations p WHERE p.participation_student_id = s.student_id
		)
		  AND (?::uuid IS NULL OR s.student_team_id = ?)
		  AND (? = '' OR s.student_name ILIKE '%' || ? || '%')
		ORDER BY t.team_name, s.student_section, s.student_name
	`, teamID, teamID, q, q).Scan(&rows).Error
	return rows, err
}
