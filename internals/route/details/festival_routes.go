// file: internals/route/details/festival_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "artsfest_backend/internals/features/festival/events/controller"
	participationController "artsfest_backend/internals/features/festival/participations/controller"
	studentController "artsfest_backend/internals/features/festival/students/controller"
	teamController "artsfest_backend/internals/features/festival/teams/controller"
)

// FestivalUserRoutes: dibaca semua role login (captain dibatasi lewat
// scoping di controller).
func FestivalUserRoutes(r fiber.Router, db *gorm.DB) {
	teamCtl := teamController.NewTeamController(db)
	studentCtl := studentController.NewStudentController(db)
	eventCtl := eventController.NewEventController(db)
	participationCtl := participationController.NewParticipationController(db)

	r.Get("/teams", teamCtl.GetAll)
	r.Get("/teams/:id", teamCtl.GetByID)

	r.Get("/students", studentCtl.GetAll)
	r.Get("/students/:id", studentCtl.GetByID)
	r.Post("/students", studentCtl.Create)
	r.Put("/students/:id", studentCtl.Update)
	r.Delete("/students/:id", studentCtl.Delete)

	r.Get("/events", eventCtl.GetAll)
	r.Get("/events/:id", eventCtl.GetByID)

	r.Get("/participations/matrix", participationCtl.GetMatrix)
	r.Post("/participations/toggle", participationCtl.Toggle)
	r.Get("/participations/student/:student_id", participationCtl.GetByStudent)
	r.Get("/participations/event/:event_id", participationCtl.GetByEvent)
}

// FestivalAdminRoutes: mutasi master data, khusus admin.
func FestivalAdminRoutes(r fiber.Router, db *gorm.DB) {
	teamCtl := teamController.NewTeamController(db)
	eventCtl := eventController.NewEventController(db)
	limitCtl := studentController.NewSectionLimitController(db)

	r.Post("/teams", teamCtl.Create)
	r.Put("/teams/:id", teamCtl.Update)
	r.Delete("/teams/:id", teamCtl.Delete)

	r.Post("/events", eventCtl.Create)
	r.Put("/events/:id", eventCtl.Update)
	r.Delete("/events/:id", eventCtl.Delete)

	r.Get("/section-limits", limitCtl.GetAll)
	r.Post("/section-limits", limitCtl.Upsert)
	r.Delete("/section-limits", limitCtl.Delete)
}

// FestivalStaffRoutes: operasional hari-H (admin + scorer).
func FestivalStaffRoutes(r fiber.Router, db *gorm.DB) {
	participationCtl := participationController.NewParticipationController(db)

	r.Patch("/participations/:id/attendance", participationCtl.UpdateAttendance)
	r.Patch("/participations/:id/performance-grade", participationCtl.UpdatePerformanceGrade)
}
