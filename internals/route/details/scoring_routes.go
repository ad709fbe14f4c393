// file: internals/route/details/scoring_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leaderboardController "artsfest_backend/internals/features/scoring/leaderboard/controller"
	resultController "artsfest_backend/internals/features/scoring/results/controller"
)

// LeaderboardPublicRoutes: klasemen bisa dilihat tanpa login.
func LeaderboardPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := leaderboardController.NewLeaderboardController(db)

	r.Get("/leaderboard/teams", ctl.GetTeamLeaderboard)
	r.Get("/leaderboard/individual", ctl.GetIndividualLeaderboard)
	r.Get("/leaderboard/individual/flat", ctl.GetIndividualLeaderboardFlat)
}

// ScoringStaffRoutes: input hasil, untuk admin + scorer.
func ScoringStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewResultController(db)

	r.Get("/scoring/events", ctl.GetScoringEvents)
	r.Get("/scoring/events/:event_id", ctl.GetScoreboard)
	r.Post("/scoring/events/:event_id", ctl.SaveResults)
}

// ScoringAdminRoutes: tabel poin hanya admin.
func ScoringAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewResultController(db)

	r.Get("/grade-settings", ctl.GetGradeSettings)
	r.Post("/grade-settings", ctl.UpsertGradeSetting)
}
