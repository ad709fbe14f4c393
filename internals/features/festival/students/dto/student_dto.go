// file: internals/features/festival/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"artsfest_backend/internals/features/festival/students/model"
)

/* ===== Requests ===== */

type CreateStudentRequest struct {
	StudentTeamID  uuid.UUID `json:"student_team_id"  validate:"required"`
	StudentName    string    `json:"student_name"     validate:"required,min=2,max=120"`
	StudentChestNo string    `json:"student_chest_no" validate:"required,max=20"`
	StudentSection string    `json:"student_section"  validate:"required,oneof=Senior Junior Sub-Junior"`
	StudentClass   *string   `json:"student_class"    validate:"omitempty,max=30"`
}

type UpdateStudentRequest struct {
	StudentTeamID  *uuid.UUID `json:"student_team_id"`
	StudentName    *string    `json:"student_name"     validate:"omitempty,min=2,max=120"`
	StudentChestNo *string    `json:"student_chest_no" validate:"omitempty,max=20"`
	StudentSection *string    `json:"student_section"  validate:"omitempty,oneof=Senior Junior Sub-Junior"`
	StudentClass   *string    `json:"student_class"    validate:"omitempty,max=30"`
}

func (r *CreateStudentRequest) ToModel() *model.Student {
	return &model.Student{
		StudentTeamID:  r.StudentTeamID,
		StudentName:    r.StudentName,
		StudentChestNo: r.StudentChestNo,
		StudentSection: r.StudentSection,
		StudentClass:   r.StudentClass,
	}
}

func (r *UpdateStudentRequest) ApplyTo(m *model.Student) {
	if r.StudentTeamID != nil {
		m.StudentTeamID = *r.StudentTeamID
	}
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.StudentChestNo != nil {
		m.StudentChestNo = *r.StudentChestNo
	}
	if r.StudentSection != nil {
		m.StudentSection = *r.StudentSection
	}
	if r.StudentClass != nil {
		m.StudentClass = r.StudentClass
	}
}

/* ===== Responses ===== */

type StudentResponse struct {
	StudentID      uuid.UUID `json:"student_id"`
	StudentTeamID  uuid.UUID `json:"student_team_id"`
	StudentName    string    `json:"student_name"`
	StudentChestNo string    `json:"student_chest_no"`
	StudentSection string    `json:"student_section"`
	StudentClass   *string   `json:"student_class,omitempty"`
	StudentCreatedAt time.Time `json:"student_created_at"`
}

func FromModel(m *model.Student) *StudentResponse {
	return &StudentResponse{
		StudentID:        m.StudentID,
		StudentTeamID:    m.StudentTeamID,
		StudentName:      m.StudentName,
		StudentChestNo:   m.StudentChestNo,
		StudentSection:   m.StudentSection,
		StudentClass:     m.StudentClass,
		StudentCreatedAt: m.StudentCreatedAt,
	}
}

func FromModels(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

/* ===== Section limits ===== */

// Batas berlaku per tab section, termasuk tab virtual; max pointer agar
// nilai 0 eksplisit tetap lolos validasi.
type UpsertSectionLimitRequest struct {
	SectionLimitSection  string `json:"section_limit_section"  validate:"required,oneof=Senior Junior Sub-Junior General Foundation"`
	SectionLimitCategory string `json:"section_limit_category" validate:"required,oneof=ON_STAGE OFF_STAGE"`
	SectionLimitMax      *int   `json:"section_limit_max"      validate:"required,min=0,max=100"`
}
