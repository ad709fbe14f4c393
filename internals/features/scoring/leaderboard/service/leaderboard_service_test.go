// file: internals/features/scoring/leaderboard/service/leaderboard_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
)

func row(student uuid.UUID, name, section, grade string, eventSections []string, points int) ScoredRow {
	return ScoredRow{
		StudentID:      student,
		StudentName:    name,
		StudentSection: section,
		TeamID:         uuid.New(),
		EventGradeType: grade,
		EventSections:  eventSections,
		Points:         points,
	}
}

func TestAggregateExcludesGeneralEvents(t *testing.T) {
	s1 := uuid.New()
	rows := []ScoredRow{
		row(s1, "Amina", "Senior", "A", []string{"Senior"}, 10),
		// ajang bersama: tidak masuk klasemen individu
		row(s1, "Amina", "Senior", "A", []string{"General"}, 7),
		row(s1, "Amina", "Senior", "B", []string{"Senior"}, 5),
	}

	got := FlatIndividualLeaderboard(rows, 0)
	if len(got) != 1 {
		t.Fatalf("standings = %d, want 1", len(got))
	}
	if got[0].TotalPoints != 15 {
		t.Errorf("total = %d, want 15 (general event excluded)", got[0].TotalPoints)
	}
	if got[0].GradeAPoints != 10 || got[0].GradeBPoints != 5 || got[0].GradeCPoints != 0 {
		t.Errorf("grade split = %d/%d/%d, want 10/5/0",
			got[0].GradeAPoints, got[0].GradeBPoints, got[0].GradeCPoints)
	}
}

func TestSortOrderAndTieBreak(t *testing.T) {
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()
	rows := []ScoredRow{
		row(s1, "Zara", "Senior", "A", []string{"Senior"}, 10),
		row(s2, "Amina", "Senior", "A", []string{"Senior"}, 10),
		row(s3, "Bilal", "Senior", "A", []string{"Senior"}, 12),
	}

	got := FlatIndividualLeaderboard(rows, 0)
	if len(got) != 3 {
		t.Fatalf("standings = %d, want 3", len(got))
	}
	if got[0].StudentName != "Bilal" {
		t.Errorf("first = %s, want Bilal (highest total)", got[0].StudentName)
	}
	// Seri 10 poin: nama asc
	if got[1].StudentName != "Amina" || got[2].StudentName != "Zara" {
		t.Errorf("tie order = %s, %s; want Amina, Zara", got[1].StudentName, got[2].StudentName)
	}
}

func TestIndividualLeaderboardPartitionsBySection(t *testing.T) {
	rows := []ScoredRow{
		row(uuid.New(), "Amina", "Senior", "A", []string{"Senior"}, 10),
		row(uuid.New(), "Bilal", "Junior", "A", []string{"Junior"}, 7),
		row(uuid.New(), "Chand", "Sub-Junior", "A", []string{"Foundation"}, 5),
	}

	got := IndividualLeaderboard(rows, 5)
	if len(got["Senior"]) != 1 || len(got["Junior"]) != 1 || len(got["Sub-Junior"]) != 1 {
		t.Errorf("partition sizes = %d/%d/%d, want 1/1/1",
			len(got["Senior"]), len(got["Junior"]), len(got["Sub-Junior"]))
	}
	if got["Sub-Junior"][0].TotalPoints != 5 {
		t.Errorf("foundation event must count for sub-junior individual, got %d", got["Sub-Junior"][0].TotalPoints)
	}
}

func TestTopNCut(t *testing.T) {
	rows := make([]ScoredRow, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, row(uuid.New(), "S", "Senior", "A", []string{"Senior"}, i))
	}

	flat := FlatIndividualLeaderboard(rows, 10)
	if len(flat) != 10 {
		t.Errorf("flat top = %d, want 10", len(flat))
	}
	perSection := IndividualLeaderboard(rows, 5)
	if len(perSection["Senior"]) != 5 {
		t.Errorf("senior top = %d, want 5", len(perSection["Senior"]))
	}
	if flat[0].TotalPoints != 11 {
		t.Errorf("best total = %d, want 11", flat[0].TotalPoints)
	}
}
