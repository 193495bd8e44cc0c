package routes

import (
	"os"

	"github.com/go-chi/chi/v5"

	"planescheduler/flightline/internal/api"
	"planescheduler/flightline/internal/middleware"
)

// RegisterAPIRoutes wires every /api/v1 endpoint. All routes require an
// authenticated identity; write access tightens per group.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	jwtSecret := []byte(os.Getenv("AUTH_SECRET"))

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(deps.Services.Session, jwtSecret))

		// Reservations: any authenticated user can browse and book.
		// Ownership checks for edit/complete/delete live in the service.
		// The static usage-csv segment wins over {id} in chi's matcher.
		v1.With(middleware.IsMaintainerMiddleware()).
			Get("/reservations/usage-csv", api.UsageReportCSV(deps.Services.UsageReport))
		v1.Get("/reservations", api.ListReservations(deps.Services.Reservations))
		v1.Post("/reservations", api.CreateReservation(deps.Services.Reservations))
		v1.Get("/reservations/{id}", api.GetReservation(deps.Services.Reservations))
		v1.Put("/reservations/{id}", api.UpdateReservation(deps.Services.Reservations))
		v1.Post("/reservations/{id}/complete", api.CompleteReservation(deps.Services.Reservations))
		v1.Delete("/reservations/{id}", api.DeleteReservation(deps.Services.Reservations))

		// Aircraft registry: reads for everyone, writes for admins.
		v1.Get("/aircraft", api.ListAircraft(deps.Services.Aircraft))
		v1.Get("/aircraft/{id}", api.GetAircraft(deps.Services.Aircraft))
		v1.Group(func(admin chi.Router) {
			admin.Use(middleware.IsAdminMiddleware())
			admin.Post("/aircraft", api.CreateAircraft(deps.Services.Aircraft))
			admin.Put("/aircraft/{id}", api.UpdateAircraft(deps.Services.Aircraft))
			admin.Delete("/aircraft/{id}", api.DeleteAircraft(deps.Services.Aircraft))
		})

		// Subscriptions belong to the calling user.
		v1.Get("/subscriptions", api.ListSubscriptions(deps.Services.Subscriptions))
		v1.Post("/subscriptions/{aircraftId}", api.Subscribe(deps.Services.Subscriptions))
		v1.Delete("/subscriptions/{aircraftId}", api.Unsubscribe(deps.Services.Subscriptions))

		// Issues: anyone reports, maintainers and admins triage.
		v1.Get("/issues", api.ListIssues(deps.Services.Issues))
		v1.Post("/issues", api.CreateIssue(deps.Services.Issues))
		v1.Group(func(maint chi.Router) {
			maint.Use(middleware.IsMaintainerMiddleware())
			maint.Patch("/issues/{id}/status", api.UpdateIssueStatus(deps.Services.Issues))
			maint.Delete("/issues/{id}", api.DeleteIssue(deps.Services.Issues))
		})

		// User administration is admin only.
		v1.Group(func(admin chi.Router) {
			admin.Use(middleware.IsAdminMiddleware())
			admin.Get("/users", api.ListUsers(deps.Services.Users))
			admin.Get("/users/pending", api.ListPendingUsers(deps.Services.Users))
			admin.Post("/users", api.CreateUser(deps.Services.Users))
			admin.Put("/users/{id}", api.UpdateUser(deps.Services.Users))
			admin.Patch("/users/{id}/privileges", api.SetUserPrivileges(deps.Services.Users))
			admin.Delete("/users/{id}", api.DeleteUser(deps.Services.Users))
		})
	})
}
