// file: internals/features/scoring/results/service/scoring_service.go
package service

import (
	"github.com/google/uuid"

	"artsfest_backend/internals/constants"
	pModel "artsfest_backend/internals/features/festival/participations/model"
	"artsfest_backend/internals/features/scoring/results/model"
)

const (
	ModeIndividual = "INDIVIDUAL"
	ModeTeam       = "TEAM"
)

// PointsTable memetakan posisi juara ke poin untuk satu grade type.
type PointsTable map[int]int

// BuildPointsTable menyaring grade settings ke tabel poin satu grade.
func BuildPointsTable(settings []model.GradeSetting, gradeType string) PointsTable {
	out := make(PointsTable)
	for _, s := range settings {
		if s.GradeSettingGradeType == gradeType {
			out[s.GradeSettingPosition] = s.GradeSettingPoints
		}
	}
	return out
}

type IndividualPlacement struct {
	StudentID uuid.UUID
	Position  int
}

type TeamPlacement struct {
	TeamID   uuid.UUID
	Position int
}

// ApplyIndividualResults menulis ulang hasil individual secara penuh:
// setiap baris siswa di-reset, lalu pemenang diberi posisi dan poin.
// Idempoten: submit ulang dengan input sama menghasilkan state sama.
func ApplyIndividualResults(rows []pModel.Participation, placements []IndividualPlacement, pts PointsTable) []pModel.Participation {
	posByStudent := make(map[uuid.UUID]int, len(placements))
	for _, p := range placements {
		posByStudent[p.StudentID] = p.Position
	}

	out := make([]pModel.Participation, len(rows))
	copy(out, rows)
	for i := range out {
		if out[i].ParticipationStudentID == nil {
			continue
		}
		pos, won := posByStudent[*out[i].ParticipationStudentID]
		if won {
			p := pos
			out[i].ParticipationStatus = constants.StatusWinner
			out[i].ParticipationResultPosition = &p
			out[i].ParticipationPoints = pts[pos]
		} else {
			out[i].ParticipationStatus = constants.StatusRegistered
			out[i].ParticipationResultPosition = nil
			out[i].ParticipationPoints = 0
		}
	}
	return out
}

// BuildTeamResults membangun baris pemenang mode TEAM. Pemanggil wajib
// menghapus semua baris tim lama untuk event ini terlebih dulu.
func BuildTeamResults(eventID uuid.UUID, placements []TeamPlacement, pts PointsTable) []pModel.Participation {
	out := make([]pModel.Participation, 0, len(placements))
	for _, p := range placements {
		pos := p.Position
		out = append(out, pModel.Participation{
			ParticipationEventID:        eventID,
			ParticipationStudentID:      nil,
			ParticipationTeamID:         p.TeamID,
			ParticipationStatus:         constants.StatusWinner,
			ParticipationResultPosition: &pos,
			ParticipationPoints:         pts[pos],
			ParticipationAttendance:     constants.AttendancePresent,
		})
	}
	return out
}

// SuggestMode menebak mode scoring dari state sekarang: TEAM jika ada
// baris tim yang sudah berposisi. Hanya saran tampilan; mode final selalu
// eksplisit dari request.
func SuggestMode(rows []pModel.Participation) string {
	for i := range rows {
		if rows[i].ParticipationStudentID == nil && rows[i].ParticipationResultPosition != nil {
			return ModeTeam
		}
	}
	return ModeIndividual
}
