package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/factrack/factrack-backend-go/internal/handler/http/middleware"
	"github.com/factrack/factrack-backend-go/internal/handler/http/response"
	"github.com/factrack/factrack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Worker     WorkerHandler
	Machine    MachineHandler
	FixValue   FixValueHandler
	Production ProductionHandler
	Salary     SalaryHandler
	Brand      BrandHandler
	Challan    ChallanHandler
	Cutting    CuttingHandler
	WorkRecord WorkRecordHandler
	Check      CheckHandler
}

func NewRouter(jwtService jwt.Service, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "factrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.RequireAdmin)

			r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
				response.SuccessWithMessage(w, "Admin access granted", nil)
			})
		})

		r.Route("/workers", func(r chi.Router) {
			r.Get("/", h.Worker.List)
			r.Post("/", h.Worker.Create)
			r.Get("/{id}", h.Worker.GetByID)
			r.Put("/{id}", h.Worker.Update)
			r.Delete("/{id}", h.Worker.Delete)
		})

		r.Route("/machines", func(r chi.Router) {
			r.Get("/", h.Machine.List)
			r.Post("/", h.Machine.Create)
			r.Post("/frames", h.Machine.CreateFrame)
			r.Get("/{id}", h.Machine.GetByID)
			r.Put("/{id}", h.Machine.Update)
			r.Delete("/{id}", h.Machine.Delete)
			r.Get("/{id}/frames/{month}", h.Machine.GetFrame)
			r.Put("/{id}/frames/{month}", h.Machine.UpdateFrame)
			r.Delete("/{id}/frames/{month}", h.Machine.DeleteFrame)
		})

		r.Route("/fix-values", func(r chi.Router) {
			r.Post("/", h.FixValue.Create)
			r.Get("/{category}/{month}", h.FixValue.Get)
			r.Put("/{category}/{month}", h.FixValue.Update)
			r.Delete("/{category}/{month}", h.FixValue.Delete)
		})

		r.Route("/worker-productions", func(r chi.Router) {
			r.Get("/", h.Production.List)
			r.Post("/", h.Production.Create)
			r.Put("/{id}", h.Production.Update)
			r.Delete("/{id}", h.Production.Delete)
		})

		r.Get("/month-production-count", h.Salary.MonthProductionCount)

		r.Route("/thread-brands", func(r chi.Router) {
			r.Get("/", h.Brand.List)
			r.Post("/", h.Brand.Create)
			r.Put("/{id}", h.Brand.Update)
			r.Delete("/{id}", h.Brand.Delete)
		})

		r.Route("/thread-challans", func(r chi.Router) {
			r.Get("/", h.Challan.List)
			r.Post("/", h.Challan.Create)
			r.Get("/{id}", h.Challan.GetByID)
			r.Put("/{id}", h.Challan.Update)
			r.Delete("/{id}", h.Challan.Delete)
		})

		r.Get("/month-thread-count", h.Challan.MonthThreadCount)

		r.Route("/thread-prices", func(r chi.Router) {
			r.Get("/", h.Cutting.ListThreadPrices)
			r.Post("/", h.Cutting.CreateThreadPrice)
			r.Put("/{id}", h.Cutting.UpdateThreadPrice)
			r.Delete("/{id}", h.Cutting.DeleteThreadPrice)
		})

		r.Route("/cutting-users", func(r chi.Router) {
			r.Get("/", h.Cutting.ListCuttingUsers)
			r.Post("/", h.Cutting.CreateCuttingUser)
			r.Put("/{id}", h.Cutting.UpdateCuttingUser)
			r.Delete("/{id}", h.Cutting.DeleteCuttingUser)
		})

		r.Route("/cutting-data", func(r chi.Router) {
			r.Get("/", h.Cutting.ListCuttingData)
			r.Post("/", h.Cutting.CreateCuttingData)
			r.Put("/{id}", h.Cutting.UpdateCuttingData)
			r.Delete("/{id}", h.Cutting.DeleteCuttingData)
		})

		r.Get("/month-cutting-count", h.Cutting.MonthCuttingCount)

		r.Route("/work-records", func(r chi.Router) {
			r.Get("/search", h.WorkRecord.Search)
			r.Post("/", h.WorkRecord.Create)
			r.Put("/{id}", h.WorkRecord.Update)
			r.Delete("/{id}", h.WorkRecord.Delete)
			r.Get("/ref-machines/{workerId}", h.WorkRecord.RefMachines)
		})

		r.Route("/check", func(r chi.Router) {
			r.Get("/", h.Check.Get)
			r.Post("/", h.Check.Set)
		})
	})

	return r
}
