package constants

import (
	"reflect"
	"testing"
)

func TestVirtualTags(t *testing.T) {
	tests := []struct {
		physical string
		want     []string
	}{
		{SectionSenior, []string{SectionSenior, SectionGeneral}},
		{SectionJunior, []string{SectionJunior, SectionGeneral}},
		{SectionSubJunior, []string{SectionSubJunior, SectionFoundation}},
		{SectionGeneral, nil},  // virtual tag bukan section siswa
		{"unknown", nil},
	}
	for _, tt := range tests {
		if got := VirtualTags(tt.physical); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("VirtualTags(%q) = %v, want %v", tt.physical, got, tt.want)
		}
	}
}

func TestPhysicalSectionsForTab(t *testing.T) {
	tests := []struct {
		tab  string
		want []string
	}{
		{SectionGeneral, []string{SectionSenior, SectionJunior}},
		{SectionFoundation, []string{SectionSubJunior}},
		{SectionSenior, []string{SectionSenior}},
		{"Primary", nil},
	}
	for _, tt := range tests {
		if got := PhysicalSectionsForTab(tt.tab); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PhysicalSectionsForTab(%q) = %v, want %v", tt.tab, got, tt.want)
		}
	}
}

func TestSectionMatchesTab(t *testing.T) {
	tests := []struct {
		physical string
		tab      string
		want     bool
	}{
		{SectionSenior, SectionSenior, true},
		{SectionSenior, SectionGeneral, true},
		{SectionSenior, SectionFoundation, false},
		{SectionJunior, SectionGeneral, true},
		{SectionSubJunior, SectionFoundation, true},
		{SectionSubJunior, SectionGeneral, false},
		{SectionJunior, SectionSubJunior, false},
	}
	for _, tt := range tests {
		if got := SectionMatchesTab(tt.physical, tt.tab); got != tt.want {
			t.Errorf("SectionMatchesTab(%q, %q) = %v, want %v", tt.physical, tt.tab, got, tt.want)
		}
	}
}

func TestSectionPredicates(t *testing.T) {
	if !IsPhysicalSection(SectionSenior) || IsPhysicalSection(SectionGeneral) {
		t.Error("IsPhysicalSection: Senior harus true, General harus false")
	}
	if !IsValidSectionTag(SectionFoundation) || IsValidSectionTag("Primary") {
		t.Error("IsValidSectionTag: Foundation harus true, Primary harus false")
	}
	if !IsValidCategory(CategoryOnStage) || IsValidCategory("on_stage") {
		t.Error("IsValidCategory: case sensitive")
	}
}
