package constants

// Section fisik siswa. Immutable setelah di-assign.
const (
	SectionSenior    = "Senior"
	SectionJunior    = "Junior"
	SectionSubJunior = "Sub-Junior"
)

// Section virtual: hanya dipakai pada event_applicable_section & tab matrix,
// tidak pernah menjadi section siswa.
const (
	SectionGeneral    = "General"    // Senior + Junior
	SectionFoundation = "Foundation" // Sub-Junior
)

// Kategori event
const (
	CategoryOnStage  = "ON_STAGE"
	CategoryOffStage = "OFF_STAGE"
)

// Grade type event (menentukan skala poin)
const (
	GradeTypeA = "A"
	GradeTypeB = "B"
	GradeTypeC = "C"
)

// Status participation
const (
	StatusRegistered = "registered"
	StatusWinner     = "winner"
)

// Status kehadiran
const (
	AttendancePending = "pending"
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Sentinel "tanpa batas" untuk section limit yang tidak ditemukan.
const UnlimitedSectionLimit = 100

var (
	PhysicalSections = []string{SectionSenior, SectionJunior, SectionSubJunior}
	VirtualSections  = []string{SectionGeneral, SectionFoundation}
	AllSections      = []string{SectionSenior, SectionJunior, SectionSubJunior, SectionGeneral, SectionFoundation}
	Categories       = []string{CategoryOnStage, CategoryOffStage}
	GradeTypes       = []string{GradeTypeA, GradeTypeB, GradeTypeC}
)

// VirtualTags memetakan section fisik ke semua tag section yang bisa
// memuat siswa tersebut. Mapping ini satu-satunya sumber kebenaran:
// dipakai filter matrix, evaluator limit, dan eksklusi leaderboard.
func VirtualTags(physical string) []string {
	switch physical {
	case SectionSenior:
		return []string{SectionSenior, SectionGeneral}
	case SectionJunior:
		return []string{SectionJunior, SectionGeneral}
	case SectionSubJunior:
		return []string{SectionSubJunior, SectionFoundation}
	default:
		return nil
	}
}

// PhysicalSectionsForTab: section fisik siswa yang tampil di bawah
// satu tab section (kebalikan dari VirtualTags).
func PhysicalSectionsForTab(tab string) []string {
	switch tab {
	case SectionGeneral:
		return []string{SectionSenior, SectionJunior}
	case SectionFoundation:
		return []string{SectionSubJunior}
	default:
		if IsPhysicalSection(tab) {
			return []string{tab}
		}
		return nil
	}
}

// SectionMatchesTab: apakah siswa dengan section fisik `physical`
// boleh tampil di bawah tab section `tab`.
func SectionMatchesTab(physical, tab string) bool {
	for _, t := range VirtualTags(physical) {
		if t == tab {
			return true
		}
	}
	return false
}

func IsPhysicalSection(s string) bool {
	for _, p := range PhysicalSections {
		if p == s {
			return true
		}
	}
	return false
}

func IsValidSectionTag(s string) bool {
	for _, p := range AllSections {
		if p == s {
			return true
		}
	}
	return false
}

func IsValidCategory(c string) bool {
	return c == CategoryOnStage || c == CategoryOffStage
}
