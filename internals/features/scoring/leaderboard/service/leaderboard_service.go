// file: internals/features/scoring/leaderboard/service/leaderboard_service.go
package service

import (
	"sort"

	"github.com/google/uuid"

	"artsfest_backend/internals/constants"
)

// ScoredRow adalah satu baris partisipasi siswa yang sudah berpoin,
// di-join dengan atribut siswa dan event.
type ScoredRow struct {
	StudentID      uuid.UUID
	StudentName    string
	StudentChestNo string
	StudentSection string
	TeamID         uuid.UUID
	EventGradeType string
	EventSections  []string
	Points         int
}

// IndividualStanding adalah agregat satu siswa.
type IndividualStanding struct {
	StudentID      uuid.UUID `json:"student_id"`
	StudentName    string    `json:"student_name"`
	StudentChestNo string    `json:"student_chest_no"`
	StudentSection string    `json:"student_section"`
	TeamID         uuid.UUID `json:"team_id"`
	TotalPoints    int       `json:"total_points"`
	GradeAPoints   int       `json:"grade_a_points"`
	GradeBPoints   int       `json:"grade_b_points"`
	GradeCPoints   int       `json:"grade_c_points"`
}

// countsTowardIndividual: event bertag General adalah ajang bersama dan
// tidak dihitung di klasemen individu.
func countsTowardIndividual(eventSections []string) bool {
	for _, s := range eventSections {
		if s == constants.SectionGeneral {
			return false
		}
	}
	return true
}

// aggregate mengelompokkan baris per siswa. Baris event General dibuang.
func aggregate(rows []ScoredRow) []IndividualStanding {
	byStudent := make(map[uuid.UUID]*IndividualStanding)
	order := make([]uuid.UUID, 0)

	for _, r := range rows {
		if !countsTowardIndividual(r.EventSections) {
			continue
		}
		st, ok := byStudent[r.StudentID]
		if !ok {
			st = &IndividualStanding{
				StudentID:      r.StudentID,
				StudentName:    r.StudentName,
				StudentChestNo: r.StudentChestNo,
				StudentSection: r.StudentSection,
				TeamID:         r.TeamID,
			}
			byStudent[r.StudentID] = st
			order = append(order, r.StudentID)
		}
		st.TotalPoints += r.Points
		switch r.EventGradeType {
		case constants.GradeTypeA:
			st.GradeAPoints += r.Points
		case constants.GradeTypeB:
			st.GradeBPoints += r.Points
		case constants.GradeTypeC:
			st.GradeCPoints += r.Points
		}
	}

	out := make([]IndividualStanding, 0, len(order))
	for _, id := range order {
		out = append(out, *byStudent[id])
	}
	return out
}

// sortStandings: total desc, lalu nama asc, lalu id sebagai pemutus
// terakhir supaya urutan stabil.
func sortStandings(list []IndividualStanding) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].TotalPoints != list[j].TotalPoints {
			return list[i].TotalPoints > list[j].TotalPoints
		}
		if list[i].StudentName != list[j].StudentName {
			return list[i].StudentName < list[j].StudentName
		}
		return list[i].StudentID.String() < list[j].StudentID.String()
	})
}

// IndividualLeaderboard mempartisi klasemen per section fisik,
// masing-masing dipotong topN (topN<=0 berarti tanpa potong).
func IndividualLeaderboard(rows []ScoredRow, topN int) map[string][]IndividualStanding {
	out := make(map[string][]IndividualStanding, len(constants.PhysicalSections))
	standings := aggregate(rows)

	for _, section := range constants.PhysicalSections {
		part := make([]IndividualStanding, 0)
		for _, s := range standings {
			if s.StudentSection == section {
				part = append(part, s)
			}
		}
		sortStandings(part)
		if topN > 0 && len(part) > topN {
			part = part[:topN]
		}
		out[section] = part
	}
	return out
}

// FlatIndividualLeaderboard: klasemen gabungan lintas section.
func FlatIndividualLeaderboard(rows []ScoredRow, topN int) []IndividualStanding {
	standings := aggregate(rows)
	sortStandings(standings)
	if topN > 0 && len(standings) > topN {
		standings = standings[:topN]
	}
	return standings
}
