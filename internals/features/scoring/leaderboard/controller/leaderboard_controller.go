// file: internals/features/scoring/leaderboard/controller/leaderboard_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"artsfest_backend/internals/features/scoring/leaderboard/service"
	helper "artsfest_backend/internals/helpers"
)

type LeaderboardController struct {
	DB *gorm.DB
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{DB: db}
}

// scoredRows mengambil semua baris siswa berpoin, lengkap dengan
// atribut siswa dan event untuk agregasi di memori.
func (ctl *LeaderboardController) scoredRows() ([]service.ScoredRow, error) {
	type raw struct {
		StudentID      uuid.UUID `gorm:"column:student_id"`
		StudentName    string    `gorm:"column:student_name"`
		StudentChestNo string    `gorm:"column:student_chest_no"`
		StudentSection string    `gorm:"column:student_section"`
		TeamID         uuid.UUID `gorm:"column:team_id"`
		EventGradeType string    `gorm:"column:event_grade_type"`
		SectionsCSV    string    `gorm:"column:sections_csv"`
		Points         int       `gorm:"column:points"`
	}
	var rows []raw
	if err := ctl.DB.Raw(`
		SELECT s.student_id,
		       s.student_name,
		       s.student_chest_no,
		       s.student_section,
		       s.student_team_id AS team_id,
		       e.event_grade_type,
		       array_to_string(e.event_applicable_section, ',') AS sections_csv,
		       p.participation_points AS points
		FROM participations p
		JOIN students s ON s.student_id = p.participation_student_id
		JOIN events e   ON e.event_id = p.participation_event_id
		WHERE p.participation_student_id IS NOT NULL
		  AND p.participation_points > 0
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]service.ScoredRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, service.ScoredRow{
			StudentID:      r.StudentID,
			StudentName:    r.StudentName,
			StudentChestNo: r.StudentChestNo,
			StudentSection: r.StudentSection,
			TeamID:         r.TeamID,
			EventGradeType: r.EventGradeType,
			EventSections:  strings.Split(r.SectionsCSV, ","),
			Points:         r.Points,
		})
	}
	return out, nil
}

/* ================= TEAM LEADERBOARD ================= */

// GetTeamLeaderboard: total poin per tim, baris siswa dan baris tim
// dihitung semua (event General ikut).
func (ctl *LeaderboardController) GetTeamLeaderboard(c *fiber.Ctx) error {
	type teamRow struct {
		TeamID       uuid.UUID `gorm:"column:team_id"       json:"team_id"`
		TeamName     string    `gorm:"column:team_name"     json:"team_name"`
		TeamColorHex string    `gorm:"column:team_color_hex" json:"team_color_hex"`
		TotalPoints  int       `gorm:"column:total_points"  json:"total_points"`
		WinnerCount  int       `gorm:"column:winner_count"  json:"winner_count"`
	}
	var rows []teamRow
	if err := ctl.DB.Raw(`
		SELECT t.team_id,
		       t.team_name,
		       t.team_color_hex,
		       COALESCE(SUM(p.participation_points), 0)::int AS total_points,
		       COUNT(*) FILTER (WHERE p.participation_status = 'winner')::int AS winner_count
		FROM teams t
		LEFT JOIN participations p ON p.participation_team_id = t.team_id
		GROUP BY t.team_id, t.team_name, t.team_color_hex
		ORDER BY total_points DESC, t.team_name ASC
	`).Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung klasemen tim")
	}
	return helper.Success(c, "OK", rows)
}

/* ================= INDIVIDUAL LEADERBOARD ================= */

// GetIndividualLeaderboard: klasemen per section, default top 5.
func (ctl *LeaderboardController) GetIndividualLeaderboard(c *fiber.Ctx) error {
	topN := 5
	if v := c.Query("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return helper.Error(c, fiber.StatusBadRequest, "top tidak valid")
		}
		topN = n
	}

	rows, err := ctl.scoredRows()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data skor")
	}
	return helper.Success(c, "OK", service.IndividualLeaderboard(rows, topN))
}

// GetIndividualLeaderboardFlat: klasemen gabungan, default top 10.
// Dipertahankan untuk layar rekap lama.
func (ctl *LeaderboardController) GetIndividualLeaderboardFlat(c *fiber.Ctx) error {
	topN := 10
	if v := c.Query("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return helper.Error(c, fiber.StatusBadRequest, "top tidak valid")
		}
		topN = n
	}

	rows, err := ctl.scoredRows()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data skor")
	}
	return helper.Success(c, "OK", service.FlatIndividualLeaderboard(rows, topN))
}
