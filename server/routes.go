package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"assetverse/models"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	//public routes
	r.Route("/api", func(api chi.Router) {
		api.Post("/users", srv.UserHandler.Register)
		api.Post("/auth/login", srv.UserHandler.SessionLogin)
		api.Post("/auth/google", srv.UserHandler.SessionLogin)
		api.Get("/packages", srv.PaymentHandler.GetPackages)

		//protected
		api.Group(func(protected chi.Router) {
			protected.Use(srv.Middleware.JWTAuthMiddleware())

			protected.Post("/auth/logout", srv.UserHandler.Logout)
			protected.Get("/users/{email}", srv.UserHandler.GetUser)
			protected.Put("/users/{email}", srv.UserHandler.UpdateUser)

			//hr routes
			protected.Group(func(hr chi.Router) {
				hr.Use(srv.Middleware.RequireRole(models.HRRole))

				hr.Post("/assets", srv.AssetHandler.AddAsset)
				hr.Get("/assets", srv.AssetHandler.GetAssets)
				hr.Get("/assets/{id}", srv.AssetHandler.GetAsset)
				hr.Patch("/assets/{id}", srv.AssetHandler.UpdateAsset)
				hr.Delete("/assets/{id}", srv.AssetHandler.DeleteAsset)

				hr.Get("/requests", srv.RequestHandler.GetHRRequests)
				hr.Patch("/requests/{id}", srv.RequestHandler.DecideRequest)

				hr.Patch("/users/remove/{id}", srv.UserHandler.RemoveEmployee)
				hr.Get("/my-employees", srv.UserHandler.GetMyEmployees)

				hr.Post("/payments/checkout", srv.PaymentHandler.Checkout)
				hr.Get("/payments", srv.PaymentHandler.GetPaymentHistory)

				hr.Get("/hr-pending-requests", srv.DashboardHandler.HRPendingRequests)
				hr.Get("/hr-limited-stock", srv.DashboardHandler.HRLimitedStock)
				hr.Get("/hr-stats", srv.DashboardHandler.HRStats)
				hr.Get("/hr-top-requests", srv.DashboardHandler.HRTopRequests)
			})

			//employee routes
			protected.Group(func(employee chi.Router) {
				employee.Use(srv.Middleware.RequireRole(models.EmployeeRole))

				employee.Get("/assets-available", srv.AssetHandler.GetAvailableAssets)

				employee.Post("/requests", srv.RequestHandler.SubmitRequest)
				employee.Delete("/requests/{id}", srv.RequestHandler.CancelRequest)
				employee.Patch("/requests/{id}/return", srv.RequestHandler.ReturnRequest)
				employee.Get("/my-requested-assets", srv.RequestHandler.GetMyRequests)

				employee.Get("/my-team", srv.UserHandler.GetMyTeam)

				employee.Get("/employee-pending-requests", srv.DashboardHandler.EmployeePendingRequests)
				employee.Get("/employee-monthly-requests", srv.DashboardHandler.EmployeeMonthlyRequests)
			})
		})
	})

	return r
}
