// file: internals/features/scoring/results/service/scoring_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	"artsfest_backend/internals/constants"
	pModel "artsfest_backend/internals/features/festival/participations/model"
	"artsfest_backend/internals/features/scoring/results/model"
)

func setting(grade string, pos, pts int) model.GradeSetting {
	return model.GradeSetting{
		GradeSettingGradeType: grade,
		GradeSettingPosition:  pos,
		GradeSettingPoints:    pts,
	}
}

func defaultSettings() []model.GradeSetting {
	return []model.GradeSetting{
		setting("A", 1, 10), setting("A", 2, 7), setting("A", 3, 5),
		setting("B", 1, 7), setting("B", 2, 5), setting("B", 3, 3),
		setting("C", 1, 5), setting("C", 2, 3), setting("C", 3, 1),
	}
}

func studentRow(eventID uuid.UUID, studentID uuid.UUID) pModel.Participation {
	sid := studentID
	return pModel.Participation{
		ParticipationID:         uuid.New(),
		ParticipationEventID:    eventID,
		ParticipationStudentID:  &sid,
		ParticipationTeamID:     uuid.New(),
		ParticipationStatus:     constants.StatusRegistered,
		ParticipationAttendance: constants.AttendancePending,
	}
}

func TestBuildPointsTable(t *testing.T) {
	pts := BuildPointsTable(defaultSettings(), "B")
	want := map[int]int{1: 7, 2: 5, 3: 3}
	for pos, w := range want {
		if pts[pos] != w {
			t.Errorf("grade B position %d = %d, want %d", pos, pts[pos], w)
		}
	}
	if len(pts) != 3 {
		t.Errorf("table size = %d, want 3", len(pts))
	}
}

func TestApplyIndividualResults(t *testing.T) {
	eventID := uuid.New()
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()
	rows := []pModel.Participation{
		studentRow(eventID, s1),
		studentRow(eventID, s2),
		studentRow(eventID, s3),
	}
	pts := BuildPointsTable(defaultSettings(), "A")

	placements := []IndividualPlacement{
		{StudentID: s1, Position: 1},
		{StudentID: s3, Position: 2},
	}
	got := ApplyIndividualResults(rows, placements, pts)

	byStudent := map[uuid.UUID]pModel.Participation{}
	for _, r := range got {
		byStudent[*r.ParticipationStudentID] = r
	}

	if r := byStudent[s1]; r.ParticipationPoints != 10 || r.ParticipationStatus != constants.StatusWinner {
		t.Errorf("winner 1: points=%d status=%s", r.ParticipationPoints, r.ParticipationStatus)
	}
	if r := byStudent[s3]; r.ParticipationPoints != 7 || *r.ParticipationResultPosition != 2 {
		t.Errorf("winner 2: points=%d", r.ParticipationPoints)
	}
	if r := byStudent[s2]; r.ParticipationPoints != 0 || r.ParticipationResultPosition != nil || r.ParticipationStatus != constants.StatusRegistered {
		t.Errorf("unplaced must be reset, got points=%d status=%s", r.ParticipationPoints, r.ParticipationStatus)
	}
}

// Submit ulang dengan pemenang berbeda harus menghapus jejak pemenang lama.
func TestApplyIndividualResultsIdempotentRewrite(t *testing.T) {
	eventID := uuid.New()
	s1, s2 := uuid.New(), uuid.New()
	rows := []pModel.Participation{
		studentRow(eventID, s1),
		studentRow(eventID, s2),
	}
	pts := BuildPointsTable(defaultSettings(), "A")

	first := ApplyIndividualResults(rows, []IndividualPlacement{{StudentID: s1, Position: 1}}, pts)
	second := ApplyIndividualResults(first, []IndividualPlacement{{StudentID: s2, Position: 1}}, pts)

	for _, r := range second {
		switch *r.ParticipationStudentID {
		case s1:
			if r.ParticipationPoints != 0 || r.ParticipationStatus != constants.StatusRegistered {
				t.Errorf("old winner not reset: points=%d status=%s", r.ParticipationPoints, r.ParticipationStatus)
			}
		case s2:
			if r.ParticipationPoints != 10 || r.ParticipationStatus != constants.StatusWinner {
				t.Errorf("new winner not applied: points=%d", r.ParticipationPoints)
			}
		}
	}
}

func TestBuildTeamResults(t *testing.T) {
	eventID := uuid.New()
	t1, t2 := uuid.New(), uuid.New()
	pts := BuildPointsTable(defaultSettings(), "C")

	got := BuildTeamResults(eventID, []TeamPlacement{
		{TeamID: t1, Position: 1},
		{TeamID: t2, Position: 3},
	}, pts)

	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	for _, r := range got {
		if r.ParticipationStudentID != nil {
			t.Error("team row must not carry a student id")
		}
		if r.ParticipationEventID != eventID {
			t.Error("wrong event id")
		}
		if r.ParticipationStatus != constants.StatusWinner {
			t.Errorf("status = %s, want winner", r.ParticipationStatus)
		}
	}
	if got[0].ParticipationPoints != 5 || got[1].ParticipationPoints != 1 {
		t.Errorf("points = %d, %d; want 5, 1", got[0].ParticipationPoints, got[1].ParticipationPoints)
	}
}

func TestSuggestMode(t *testing.T) {
	eventID := uuid.New()
	pos := 1

	teamRow := pModel.Participation{
		ParticipationEventID:        eventID,
		ParticipationTeamID:         uuid.New(),
		ParticipationResultPosition: &pos,
	}
	studentOnly := []pModel.Participation{studentRow(eventID, uuid.New())}

	if got := SuggestMode(studentOnly); got != ModeIndividual {
		t.Errorf("student rows only: got %s", got)
	}
	if got := SuggestMode(append(studentOnly, teamRow)); got != ModeTeam {
		t.Errorf("positioned team row present: got %s", got)
	}
	if got := SuggestMode(nil); got != ModeIndividual {
		t.Errorf("empty: got %s", got)
	}
}
