// file: internals/features/reports/service/report_queries_test.go
package service

import "testing"

func TestChestNoSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"42", 42},
		{" 7 ", 7},
		{"A12", 999},
		{"", 999},
		{"12B", 999},
	}
	for _, tt := range tests {
		if got := chestNoSortKey(tt.in); got != tt.want {
			t.Errorf("chestNoSortKey(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSortByChestNo(t *testing.T) {
	rows := []CallSheetRow{
		{StudentName: "Chand", StudentChestNo: "10"},
		{StudentName: "Amina", StudentChestNo: "2"},
		{StudentName: "Bilal", StudentChestNo: "X9"}, // non-numerik ke belakang
		{StudentName: "Dina", StudentChestNo: "1"},
	}
	SortByChestNo(rows)

	wantOrder := []string{"Dina", "Amina", "Chand", "Bilal"}
	for i, w := range wantOrder {
		if rows[i].StudentName != w {
			t.Errorf("rows[%d] = %s, want %s", i, rows[i].StudentName, w)
		}
	}
}

func TestSortByChestNoStableOnTies(t *testing.T) {
	rows := []CallSheetRow{
		{StudentName: "Zara", StudentChestNo: "abc"},
		{StudentName: "Amina", StudentChestNo: "xyz"},
	}
	SortByChestNo(rows)
	// Dua-duanya 999: jatuh ke nama asc
	if rows[0].StudentName != "Amina" {
		t.Errorf("tie on non-numeric must fall back to name, got %s first", rows[0].StudentName)
	}
}
