// file: internals/features/festival/participations/service/evaluator_service.go
package service

import (
	"fmt"

	"github.com/google/uuid"

	"artsfest_backend/internals/constants"
	"artsfest_backend/internals/features/festival/participations/model"
	studentModel "artsfest_backend/internals/features/festival/students/model"
)

/* ==========================
   Registration evaluator
========================== */

// RegisteredEvent adalah ringkasan satu event yang sudah diikuti siswa,
// cukup untuk menghitung kuota per (tab section, category).
type RegisteredEvent struct {
	EventID  string
	Category string
	Sections []string
}

// EvalInput membawa semua fakta yang dibutuhkan evaluator.
// Evaluator murni: tidak menyentuh DB, mudah diuji.
//
// Kuota dikunci pada TAB yang aktif, bukan section fisik siswa:
// baris SectionLimit(General, ...) hanya berlaku di tab General, dan
// pendaftaran event ber-tag General tidak memakan kuota tab Senior.
type EvalInput struct {
	StudentSection string
	// Section tab aktif; boleh virtual (General/Foundation)
	TabSection    string
	EventCategory string
	EventSections []string
	// Sudah terdaftar pada event yang sama
	AlreadyRegistered bool
	// Event yang sudah diikuti siswa (semua kategori)
	Registered []RegisteredEvent
	// Batas per (section tag, category); tanpa baris berarti tanpa batas
	Limits []studentModel.SectionLimit
	// Kuota pendaftar per tim untuk event ini; 0 berarti tanpa batas
	EventMaxPerTeam int
	// Jumlah pendaftar tim ini pada event yang sama
	EventTeamCount int
	// Klien mengulangi request setelah peringatan kuota
	Confirmed bool
}

type EvalResult struct {
	Allowed bool
	// Allowed=false dan Advisory=true berarti boleh diulang dengan confirmed=true
	Advisory     bool
	Reason       string
	CurrentCount int
	Limit        int
}

func containsTag(sections []string, tag string) bool {
	for _, s := range sections {
		if s == tag {
			return true
		}
	}
	return false
}

// ResolveLimit mencari batas untuk (section tag, category). Baris yang
// tersimpan selalu dipakai apa adanya, termasuk nilai 0 dan 100; hanya
// ketiadaan baris yang berarti tanpa batas.
func ResolveLimit(limits []studentModel.SectionLimit, section, category string) (int, bool) {
	for _, l := range limits {
		if l.SectionLimitSection == section && l.SectionLimitCategory == category {
			return l.SectionLimitMax, true
		}
	}
	return constants.UnlimitedSectionLimit, false
}

// CountInScope menghitung event terdaftar siswa yang masuk skup kuota:
// kategori sama DAN section event memuat section tab yang aktif.
func CountInScope(registered []RegisteredEvent, tabSection, category string) int {
	n := 0
	for _, r := range registered {
		if r.Category != category {
			continue
		}
		if containsTag(r.Sections, tabSection) {
			n++
		}
	}
	return n
}

// Evaluate memutuskan apakah pendaftaran boleh jalan.
// Urutan: blokir keras dulu (duplikat, siswa/event di luar tab), baru kuota.
func Evaluate(in EvalInput) EvalResult {
	if in.AlreadyRegistered {
		return EvalResult{Reason: "Siswa sudah terdaftar di event ini"}
	}
	if !constants.SectionMatchesTab(in.StudentSection, in.TabSection) {
		return EvalResult{Reason: "Siswa tidak masuk tab section ini"}
	}
	if !containsTag(in.EventSections, in.TabSection) {
		return EvalResult{Reason: "Event tidak berlaku untuk tab section ini"}
	}

	limit, found := ResolveLimit(in.Limits, in.TabSection, in.EventCategory)
	count := CountInScope(in.Registered, in.TabSection, in.EventCategory)

	if found && count >= limit {
		if !in.Confirmed {
			return EvalResult{
				Advisory:     true,
				Reason:       fmt.Sprintf("Kuota %s %s tercapai (%d dari %d)", in.TabSection, in.EventCategory, count, limit),
				CurrentCount: count,
				Limit:        limit,
			}
		}
	}

	if in.EventMaxPerTeam > 0 && in.EventTeamCount >= in.EventMaxPerTeam {
		if !in.Confirmed {
			return EvalResult{
				Advisory:     true,
				Reason:       fmt.Sprintf("Kuota tim untuk event ini tercapai (%d dari %d)", in.EventTeamCount, in.EventMaxPerTeam),
				CurrentCount: in.EventTeamCount,
				Limit:        in.EventMaxPerTeam,
			}
		}
	}

	return EvalResult{Allowed: true, CurrentCount: count, Limit: limit}
}

// NewRegistration membangun baris pendaftaran baru. Pendaftaran ulang
// setelah dicabut selalu mulai dari keadaan bersih: registered, 0 poin,
// tanpa posisi.
func NewRegistration(eventID, studentID, teamID uuid.UUID) model.Participation {
	return model.Participation{
		ParticipationEventID:    eventID,
		ParticipationStudentID:  &studentID,
		ParticipationTeamID:     teamID,
		ParticipationStatus:     constants.StatusRegistered,
		ParticipationAttendance: constants.AttendancePending,
	}
}
