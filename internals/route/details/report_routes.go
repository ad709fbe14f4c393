// file: internals/route/details/report_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "artsfest_backend/internals/features/reports/controller"
)

// ReportUserRoutes: cetak dokumen; captain dibatasi ke tim sendiri di
// controller.
func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportController.NewReportController(db)

	r.Get("/reports/call-sheets", ctl.GetCallSheetsBulk)
	r.Get("/reports/call-sheet/:event_id", ctl.GetCallSheet)
	r.Get("/reports/admit-cards/team/:team_id", ctl.GetTeamAdmitCards)
	r.Get("/reports/admit-cards/student/:student_id", ctl.GetStudentAdmitCard)
	r.Get("/reports/student/:student_id", ctl.GetStudentReport)
}

// ReportAdminRoutes: rekap administratif.
func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportController.NewReportController(db)

	r.Get("/reports/zero-participation", ctl.GetZeroParticipation)
	r.Get("/reports/category-exclusive", ctl.GetCategoryExclusive)
}
