package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shiftlinehq/shiftline-backend/api/controllers"
	"github.com/shiftlinehq/shiftline-backend/api/middleware"
	"github.com/shiftlinehq/shiftline-backend/internal/attendance"
	"github.com/shiftlinehq/shiftline-backend/internal/scheduling"
	"github.com/shiftlinehq/shiftline-backend/internal/swaps"
	"github.com/shiftlinehq/shiftline-backend/internal/timeoff"
	"github.com/shiftlinehq/shiftline-backend/internal/users"
	"github.com/shiftlinehq/shiftline-backend/pkg/config"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
	"github.com/shiftlinehq/shiftline-backend/pkg/metrics"
	"github.com/shiftlinehq/shiftline-backend/pkg/redis"
)

// Services bundles the domain services the router wires to handlers.
type Services struct {
	Users      users.Service
	Scheduling scheduling.Service
	Swaps      swaps.Service
	TimeOff    timeoff.Service
	Attendance attendance.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger controllers.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		deps := map[string]controllers.Pinger{
			"database": dbPinger,
		}
		if redisClient != nil {
			deps["redis"] = redisClient
		}
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.Register(svcs.Users, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.Login(svcs.Users, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/users", func(r chi.Router) {
			r.Get("/profile", controllers.Profile(svcs.Users, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Require(enums.CapManageUsers, logg))
				r.Post("/", controllers.CreateUser(svcs.Users, logg))
				r.Get("/", controllers.ListUsers(svcs.Users, logg))
				r.Get("/{id}", controllers.GetUser(svcs.Users, logg))
				r.Put("/{id}", controllers.UpdateUser(svcs.Users, logg))
				r.Delete("/{id}", controllers.DeleteUser(svcs.Users, logg))
			})

			// Managers adjust availability when planning schedules, so the
			// nested windows use the shift capability rather than ManageUsers.
			r.Route("/{userId}/availability", func(r chi.Router) {
				r.Use(middleware.Require(enums.CapManageShifts, logg))
				r.Get("/", controllers.ListAvailability(svcs.Users, logg))
				r.Post("/", controllers.AddAvailability(svcs.Users, logg))
				r.Put("/{windowId}", controllers.UpdateAvailability(svcs.Users, logg))
				r.Delete("/{windowId}", controllers.RemoveAvailability(svcs.Users, logg))
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/userShifts", controllers.MyShifts(svcs.Scheduling, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Require(enums.CapManageShifts, logg))
				r.Post("/", controllers.CreateShift(svcs.Scheduling, logg))
				r.Get("/", controllers.ListShifts(svcs.Scheduling, logg))
				r.Get("/employees", controllers.AssignableEmployees(svcs.Users, logg))
				r.Get("/week/{date}", controllers.WeekShifts(svcs.Scheduling, logg))
				r.Get("/week/{date}/export", controllers.ExportWeekShifts(svcs.Scheduling, logg))
				r.Get("/user/{id}", controllers.UserShifts(svcs.Scheduling, logg))
				r.Put("/{id}/assign", controllers.ReassignShift(svcs.Scheduling, logg))
				r.Delete("/{id}", controllers.DeleteShift(svcs.Scheduling, logg))
			})
		})

		r.Route("/swapshift", func(r chi.Router) {
			r.Post("/", controllers.CreateSwap(svcs.Swaps, logg))
			r.Get("/user", controllers.MySwaps(svcs.Swaps, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Require(enums.CapApproveRequests, logg))
				r.Get("/", controllers.ListPendingSwaps(svcs.Swaps, logg))
				r.Put("/{id}/approve", controllers.ApproveSwap(svcs.Swaps, logg))
				r.Put("/{id}/reject", controllers.RejectSwap(svcs.Swaps, logg))
			})
		})

		r.Route("/timeoff", func(r chi.Router) {
			r.Post("/", controllers.CreateTimeOff(svcs.TimeOff, logg))
			r.Get("/user", controllers.MyTimeOff(svcs.TimeOff, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Require(enums.CapApproveRequests, logg))
				r.Get("/", controllers.ListPendingTimeOff(svcs.TimeOff, logg))
				r.Put("/{id}", controllers.DecideTimeOff(svcs.TimeOff, logg))
			})
		})

		r.Route("/clock", func(r chi.Router) {
			r.Get("/", controllers.MyAttendance(svcs.Attendance, logg))
			r.Post("/in", controllers.ClockIn(svcs.Attendance, logg))
			r.Post("/out", controllers.ClockOut(svcs.Attendance, logg))
		})
	})

	return r
}
