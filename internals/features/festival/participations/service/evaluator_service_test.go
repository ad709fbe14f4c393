// file: internals/features/festival/participations/service/evaluator_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	"artsfest_backend/internals/constants"
	studentModel "artsfest_backend/internals/features/festival/students/model"
)

func limit(section, category string, max int) studentModel.SectionLimit {
	return studentModel.SectionLimit{
		SectionLimitSection:  section,
		SectionLimitCategory: category,
		SectionLimitMax:      max,
	}
}

func TestResolveLimit(t *testing.T) {
	limits := []studentModel.SectionLimit{
		limit("Senior", "ON_STAGE", 3),
		limit("General", "ON_STAGE", 1),
		limit("Junior", "OFF_STAGE", 2),
		limit("Foundation", "OFF_STAGE", 100),
	}

	tests := []struct {
		name      string
		section   string
		category  string
		want      int
		wantFound bool
	}{
		{"exact match", "Senior", "ON_STAGE", 3, true},
		{"virtual tag has its own row", "General", "ON_STAGE", 1, true},
		{"stored 100 is still a stored row", "Foundation", "OFF_STAGE", 100, true},
		{"no row means unlimited", "Senior", "OFF_STAGE", constants.UnlimitedSectionLimit, false},
		{"unknown tag means unlimited", "Sub-Junior", "ON_STAGE", constants.UnlimitedSectionLimit, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ResolveLimit(limits, tt.section, tt.category)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("ResolveLimit(%s, %s) = (%d, %v), want (%d, %v)",
					tt.section, tt.category, got, found, tt.want, tt.wantFound)
			}
		})
	}
}

func TestCountInScope(t *testing.T) {
	registered := []RegisteredEvent{
		{EventID: "e1", Category: "ON_STAGE", Sections: []string{"Senior"}},
		{EventID: "e2", Category: "ON_STAGE", Sections: []string{"General"}},
		{EventID: "e3", Category: "OFF_STAGE", Sections: []string{"Senior"}},
		{EventID: "e4", Category: "ON_STAGE", Sections: []string{"Junior"}},
	}

	tests := []struct {
		name     string
		tab      string
		category string
		want     int
	}{
		// Kuota mengikuti tab: tab Senior hanya menghitung event ber-tag Senior
		{"senior tab excludes general events", "Senior", "ON_STAGE", 1},
		{"senior tab off stage", "Senior", "OFF_STAGE", 1},
		{"general tab counts only general events", "General", "ON_STAGE", 1},
		{"junior tab excludes general events", "Junior", "ON_STAGE", 1},
		{"foundation tab empty", "Foundation", "ON_STAGE", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountInScope(registered, tt.tab, tt.category); got != tt.want {
				t.Errorf("CountInScope(%s, %s) = %d, want %d", tt.tab, tt.category, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	limits := []studentModel.SectionLimit{
		limit("Senior", "ON_STAGE", 2),
		limit("General", "ON_STAGE", 1),
	}
	twoSeniorRegistered := []RegisteredEvent{
		{EventID: "e1", Category: "ON_STAGE", Sections: []string{"Senior"}},
		{EventID: "e2", Category: "ON_STAGE", Sections: []string{"Senior"}},
	}

	tests := []struct {
		name         string
		in           EvalInput
		wantAllowed  bool
		wantAdvisory bool
	}{
		{
			name: "clean registration",
			in: EvalInput{
				StudentSection: "Senior",
				TabSection:     "Senior",
				EventCategory:  "ON_STAGE",
				EventSections:  []string{"Senior"},
				Limits:         limits,
			},
			wantAllowed: true,
		},
		{
			name: "duplicate blocks hard",
			in: EvalInput{
				StudentSection:    "Senior",
				TabSection:        "Senior",
				EventCategory:     "ON_STAGE",
				EventSections:     []string{"Senior"},
				AlreadyRegistered: true,
				Confirmed:         true,
			},
			wantAllowed: false,
		},
		{
			name: "student outside tab blocks hard even confirmed",
			in: EvalInput{
				StudentSection: "Sub-Junior",
				TabSection:     "General",
				EventCategory:  "ON_STAGE",
				EventSections:  []string{"General"},
				Confirmed:      true,
			},
			wantAllowed: false,
		},
		{
			name: "event outside tab blocks hard even confirmed",
			in: EvalInput{
				StudentSection: "Senior",
				TabSection:     "Senior",
				EventCategory:  "ON_STAGE",
				EventSections:  []string{"General"},
				Confirmed:      true,
			},
			wantAllowed: false,
		},
		{
			name: "foundation tab serves sub junior",
			in: EvalInput{
				StudentSection: "Sub-Junior",
				TabSection:     "Foundation",
				EventCategory:  "OFF_STAGE",
				EventSections:  []string{"Foundation"},
			},
			wantAllowed: true,
		},
		{
			name: "limit reached is advisory only",
			in: EvalInput{
				StudentSection: "Senior",
				TabSection:     "Senior",
				EventCategory:  "ON_STAGE",
				EventSections:  []string{"Senior"},
				Registered:     twoSeniorRegistered,
				Limits:         limits,
			},
			wantAllowed:  false,
			wantAdvisory: true,
		},
		{
			name: "confirmed overrides limit",
			in: EvalInput{
				StudentSection: "Senior",
				TabSection:     "Senior",
				EventCategory:  "ON_STAGE",
				EventSections:  []string{"Senior"},
				Registered:     twoSeniorRegistered,
				Limits:         limits,
				Confirmed:      true,
			},
			wantAllowed: true,
		},
		{
			name: "general limit applies under general tab",
			in: EvalInput{
				StudentSection: "Senior",
				TabSection:     "General",
				EventCategory:  "ON_STAGE",
				EventSections:  []string{"General"},
				Registered: []RegisteredEvent{
					{EventID: "g1", Category: "ON_STAGE", Sections: []string{"General"}},
				},
				Limits: limits,
			},
			wantAllowed:  false,
			wantAdvisory: true,
		},
		{
			name: "general registrations do not consume the senior limit",
			in: EvalInput{
				StudentSection: "Senior",
				TabSection:     "Senior",
				EventCategory:  "ON_STAGE",
				EventSections:  []string{"Senior"},
				Registered: []RegisteredEvent{
					{EventID: "e1", Category: "ON_STAGE", Sections: []string{"Senior"}},
					{EventID: "g1", Category: "ON_STAGE", Sections: []string{"General"}},
				},
				Limits: limits,
			},
			wantAllowed: true,
		},
		{
			name: "stored limit of 100 is enforced",
			in: EvalInput{
				StudentSection: "Junior",
				TabSection:     "Junior",
				EventCategory:  "OFF_STAGE",
				EventSections:  []string{"Junior"},
				Registered: func() []RegisteredEvent {
					out := make([]RegisteredEvent, 100)
					for i := range out {
						out[i] = RegisteredEvent{EventID: "x", Category: "OFF_STAGE", Sections: []string{"Junior"}}
					}
					return out
				}(),
				Limits: []studentModel.SectionLimit{limit("Junior", "OFF_STAGE", 100)},
			},
			wantAllowed:  false,
			wantAdvisory: true,
		},
		{
			name: "stored limit of zero blocks the first registration",
			in: EvalInput{
				StudentSection: "Junior",
				TabSection:     "Junior",
				EventCategory:  "ON_STAGE",
				EventSections:  []string{"Junior"},
				Limits:         []studentModel.SectionLimit{limit("Junior", "ON_STAGE", 0)},
			},
			wantAllowed:  false,
			wantAdvisory: true,
		},
		{
			name: "other category not counted against limit",
			in: EvalInput{
				StudentSection: "Senior",
				TabSection:     "Senior",
				EventCategory:  "OFF_STAGE",
				EventSections:  []string{"Senior"},
				Registered:     twoSeniorRegistered,
				Limits:         limits,
			},
			wantAllowed: true,
		},
		{
			name: "team quota reached is advisory only",
			in: EvalInput{
				StudentSection:  "Senior",
				TabSection:      "Senior",
				EventCategory:   "ON_STAGE",
				EventSections:   []string{"Senior"},
				EventMaxPerTeam: 3,
				EventTeamCount:  3,
			},
			wantAllowed:  false,
			wantAdvisory: true,
		},
		{
			name: "confirmed overrides team quota",
			in: EvalInput{
				StudentSection:  "Senior",
				TabSection:      "Senior",
				EventCategory:   "ON_STAGE",
				EventSections:   []string{"Senior"},
				EventMaxPerTeam: 3,
				EventTeamCount:  3,
				Confirmed:       true,
			},
			wantAllowed: true,
		},
		{
			name: "zero max per team means unlimited",
			in: EvalInput{
				StudentSection: "Senior",
				TabSection:     "Senior",
				EventCategory:  "ON_STAGE",
				EventSections:  []string{"Senior"},
				EventTeamCount: 12,
			},
			wantAllowed: true,
		},
		{
			name: "no limit row means unlimited",
			in: EvalInput{
				StudentSection: "Junior",
				TabSection:     "Junior",
				EventCategory:  "ON_STAGE",
				EventSections:  []string{"Junior"},
				Registered: []RegisteredEvent{
					{EventID: "a", Category: "ON_STAGE", Sections: []string{"Junior"}},
					{EventID: "b", Category: "ON_STAGE", Sections: []string{"Junior"}},
					{EventID: "c", Category: "ON_STAGE", Sections: []string{"Junior"}},
				},
			},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.in)
			if got.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v (reason %q)", got.Allowed, tt.wantAllowed, got.Reason)
			}
			if got.Advisory != tt.wantAdvisory {
				t.Errorf("Advisory = %v, want %v", got.Advisory, tt.wantAdvisory)
			}
			if !got.Allowed && got.Reason == "" {
				t.Error("blocked result must carry a reason")
			}
		})
	}
}

// Daftar-cabut-daftar ulang harus menghasilkan baris bersih, bukan
// status juara sebelumnya.
func TestNewRegistrationStartsClean(t *testing.T) {
	eventID, studentID, teamID := uuid.New(), uuid.New(), uuid.New()

	m := NewRegistration(eventID, studentID, teamID)

	if m.ParticipationStatus != constants.StatusRegistered {
		t.Errorf("status = %q, want %q", m.ParticipationStatus, constants.StatusRegistered)
	}
	if m.ParticipationPoints != 0 {
		t.Errorf("points = %d, want 0", m.ParticipationPoints)
	}
	if m.ParticipationResultPosition != nil {
		t.Errorf("position = %v, want nil", *m.ParticipationResultPosition)
	}
	if m.ParticipationAttendance != constants.AttendancePending {
		t.Errorf("attendance = %q, want %q", m.ParticipationAttendance, constants.AttendancePending)
	}
	if m.ParticipationStudentID == nil || *m.ParticipationStudentID != studentID {
		t.Error("student id must be set on an individual registration")
	}
}
