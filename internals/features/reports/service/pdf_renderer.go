// file: internals/features/reports/service/pdf_renderer.go
package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/jung-kurt/gofpdf"
)

/* ==========================
   PDF renderer
========================== */

// PDFRenderer membangun dokumen cetak festival (A4, mm).
// HeaderImageURL diisi dari site asset admit_card_header; kosong berarti
// pakai banner polos.
type PDFRenderer struct {
	HeaderImageURL string
	// dicache setelah fetch pertama
	headerPNG []byte
}

const (
	pageWidth    = 210.0
	headerHeight = 35.0
	marginX      = 12.0
)

// fetchHeaderPNG mengunduh gambar header dan menormalkannya ke PNG.
// gofpdf tidak mengerti WebP, jadi hasil upload di-decode dulu.
func (r *PDFRenderer) fetchHeaderPNG() []byte {
	if r.headerPNG != nil || r.HeaderImageURL == "" {
		return r.headerPNG
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(r.HeaderImageURL)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var img image.Image
	if strings.Contains(r.HeaderImageURL, ".webp") ||
		strings.Contains(resp.Header.Get("Content-Type"), "webp") {
		img, err = webp.Decode(resp.Body)
	} else {
		img, _, err = image.Decode(resp.Body)
	}
	if err != nil {
		return nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	r.headerPNG = buf.Bytes()
	return r.headerPNG
}

// drawHeader menggambar banner full-width 210x35mm; fallback kotak gelap
// dengan judul bila gambar tidak tersedia.
func (r *PDFRenderer) drawHeader(pdf *gofpdf.Fpdf, title string) {
	if data := r.fetchHeaderPNG(); data != nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		if pdf.GetImageInfo("header") == nil {
			pdf.RegisterImageOptionsReader("header", opts, bytes.NewReader(data))
		}
		pdf.ImageOptions("header", 0, 0, pageWidth, headerHeight, false, opts, 0, "")
	} else {
		pdf.SetFillColor(24, 24, 32)
		pdf.Rect(0, 0, pageWidth, headerHeight, "F")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 20)
		pdf.SetXY(0, 12)
		pdf.CellFormat(pageWidth, 10, title, "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.SetXY(marginX, headerHeight+6)
}

func (r *PDFRenderer) newDoc() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginX, headerHeight+6, marginX)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		left := "Dicetak " + time.Now().Format("02 Jan 2006 15:04")
		pdf.CellFormat(90, 6, left, "", 0, "L", false, 0, "")
		pdf.CellFormat(96, 6, fmt.Sprintf("Halaman %d dari {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	return pdf
}

/* ==========================
   Admit cards
========================== */

// RenderAdmitCards: satu halaman per kartu (siswa x kategori).
func (r *PDFRenderer) RenderAdmitCards(cards []AdmitCardData) (*bytes.Buffer, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("tidak ada kartu untuk dicetak")
	}
	pdf := r.newDoc()

	for _, card := range cards {
		pdf.AddPage()
		r.drawHeader(pdf, "KARTU PESERTA")

		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 9, "KARTU PESERTA - "+categoryLabel(card.Category), "", 1, "C", false, 0, "")
		pdf.Ln(2)

		// Grid identitas dua kolom
		label := func(k, v string) {
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(110, 110, 110)
			pdf.CellFormat(28, 7, k, "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(65, 7, v, "", 0, "L", false, 0, "")
		}
		label("Nama", card.StudentName)
		label("No. Dada", card.StudentChestNo)
		pdf.Ln(8)
		label("Section", card.StudentSection)
		label("Kelas", card.StudentClass)
		pdf.Ln(8)
		label("Tim", card.TeamName)
		pdf.Ln(12)

		// Tabel event + kolom tanda tangan pengawas
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(235, 235, 240)
		pdf.CellFormat(10, 8, "No", "1", 0, "C", true, 0, "")
		pdf.CellFormat(18, 8, "Kode", "1", 0, "C", true, 0, "")
		pdf.CellFormat(60, 8, "Event", "1", 0, "L", true, 0, "")
		pdf.CellFormat(38, 8, "Tempat", "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 8, "Waktu", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 8, "Paraf Pengawas", "1", 1, "C", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for i, ev := range card.Events {
			pdf.CellFormat(10, 9, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
			pdf.CellFormat(18, 9, ev.EventCode, "1", 0, "C", false, 0, "")
			pdf.CellFormat(60, 9, ev.EventName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(38, 9, ev.Venue, "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 9, ev.StageTime, "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 9, "", "1", 1, "C", false, 0, "")
		}

		// Watermark tipis di bawah tabel
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(160, 160, 160)
		pdf.CellFormat(0, 5, "Kartu wajib dibawa saat tampil. Tanpa kartu, peserta dianggap absen.", "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	return outputBuffer(pdf)
}

/* ==========================
   Call sheet
========================== */

// RenderCallSheet: daftar panggil satu event, urut nomor dada.
func (r *PDFRenderer) RenderCallSheet(data *CallSheetData) (*bytes.Buffer, error) {
	pdf := r.newDoc()
	r.drawCallSheetPage(pdf, data)
	return outputBuffer(pdf)
}

// RenderCallSheets: satu dokumen, satu halaman per event.
func (r *PDFRenderer) RenderCallSheets(sheets []*CallSheetData) (*bytes.Buffer, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("tidak ada event untuk dicetak")
	}
	pdf := r.newDoc()
	for _, data := range sheets {
		r.drawCallSheetPage(pdf, data)
	}
	return outputBuffer(pdf)
}

func (r *PDFRenderer) drawCallSheetPage(pdf *gofpdf.Fpdf, data *CallSheetData) {
	pdf.AddPage()
	r.drawHeader(pdf, "DAFTAR PANGGIL")

	title := data.EventName
	if data.EventCode != "" {
		title = data.EventCode + " - " + title
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	sub := categoryLabel(data.Category)
	if data.Venue != "" {
		sub += "  |  " + data.Venue
	}
	if data.StageTime != "" {
		sub += "  |  " + data.StageTime
	}
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 240)
	pdf.CellFormat(12, 8, "No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 8, "No. Dada", "1", 0, "C", true, 0, "")
	pdf.CellFormat(68, 8, "Nama", "1", 0, "L", true, 0, "")
	pdf.CellFormat(36, 8, "Tim", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Section", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 8, "Hadir", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for i, row := range data.Rows {
		pdf.CellFormat(12, 8, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, row.StudentChestNo, "1", 0, "C", false, 0, "")
		pdf.CellFormat(68, 8, row.StudentName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(36, 8, row.TeamName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, row.StudentSection, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 8, "", "1", 1, "C", false, 0, "")
	}
}

/* ==========================
   Student report
========================== */

func (r *PDFRenderer) RenderStudentReport(studentName string, rows []StudentReportRow) (*bytes.Buffer, error) {
	pdf := r.newDoc()
	pdf.AddPage()
	r.drawHeader(pdf, "LAPORAN SISWA")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, studentName, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 240)
	pdf.CellFormat(70, 8, "Event", "1", 0, "L", true, 0, "")
	pdf.CellFormat(26, 8, "Kategori", "1", 0, "C", true, 0, "")
	pdf.CellFormat(18, 8, "Grade", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 8, "Posisi", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 8, "Poin", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Kehadiran", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	total := 0
	for _, row := range rows {
		pos := "-"
		if row.Position != nil {
			pos = fmt.Sprintf("%d", *row.Position)
		}
		pdf.CellFormat(70, 8, row.EventName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(26, 8, categoryLabel(row.Category), "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 8, row.GradeType, "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 8, pos, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", row.Points), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, row.Attendance, "1", 1, "C", false, 0, "")
		total += row.Points
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(136, 9, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 9, fmt.Sprintf("%d", total), "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 9, "", "1", 1, "C", false, 0, "")

	return outputBuffer(pdf)
}

/* ==========================
   Zero participation
========================== */

func (r *PDFRenderer) RenderZeroParticipation(rows []ZeroParticipationRow) (*bytes.Buffer, error) {
	pdf := r.newDoc()
	pdf.AddPage()
	r.drawHeader(pdf, "SISWA TANPA EVENT")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, "Siswa Tanpa Pendaftaran Event", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 240)
	pdf.CellFormat(12, 8, "No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 8, "No. Dada", "1", 0, "C", true, 0, "")
	pdf.CellFormat(80, 8, "Nama", "1", 0, "L", true, 0, "")
	pdf.CellFormat(44, 8, "Tim", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Section", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for i, row := range rows {
		pdf.CellFormat(12, 8, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, row.StudentChestNo, "1", 0, "C", false, 0, "")
		pdf.CellFormat(80, 8, row.StudentName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(44, 8, row.TeamName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, row.StudentSection, "1", 1, "C", false, 0, "")
	}

	return outputBuffer(pdf)
}

/* ==========================
   Util
========================== */

func categoryLabel(category string) string {
	switch category {
	case "ON_STAGE":
		return "On Stage"
	case "OFF_STAGE":
		return "Off Stage"
	default:
		return category
	}
}

func outputBuffer(pdf *gofpdf.Fpdf) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
