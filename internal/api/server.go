package api

import (
	"net/http"

	"github.com/duotrack/duotracker/internal/service"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	habitsService    service.HabitsServiceI
	streakService    service.StreakServiceI
	analyticsService service.AnalyticsServiceI
	financeService   service.FinanceServiceI
	jwtService       JWTServiceI
	freezeCost       int
}

type ServicesList struct {
	UserService      service.UserServiceI
	HabitsService    service.HabitsServiceI
	StreakService    service.StreakServiceI
	AnalyticsService service.AnalyticsServiceI
	FinanceService   service.FinanceServiceI
	JwtService       JWTServiceI
	FreezeCost       int
}

func New(servicesOptions *ServicesList) *Server {
	cost := servicesOptions.FreezeCost
	if cost < 1 {
		cost = service.DefaultFreezeCost
	}
	return &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		habitsService:    servicesOptions.HabitsService,
		streakService:    servicesOptions.StreakService,
		analyticsService: servicesOptions.AnalyticsService,
		financeService:   servicesOptions.FinanceService,
		jwtService:       servicesOptions.JwtService,
		freezeCost:       cost,
	}
}

func (s *Server) Routes() http.Handler {
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware)
		r.Use(s.SettingUpLoggerMiddleware)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/dashboard", s.Dashboard)
			r.Get("/streak", s.DailyStreak)
			r.Get("/leaderboard", s.Leaderboard)
			r.Get("/log", s.UserLog)
			r.Post("/shop/freeze", s.BuyFreeze)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits", s.GetHabits)
			r.Get("/habits/{id}", s.GetHabit)
			r.Post("/habits/{id}/done", s.MarkDone)
			r.Post("/habits/{id}/skip", s.MarkSkipped)
			r.Get("/habits/{id}/progress", s.GetProgress)
			r.Get("/habits/{id}/reminder", s.SuggestReminder)
			r.Get("/habits/{id}/risk", s.DropoutRisk)
			r.Put("/finance", s.SaveFinance)
			r.Post("/finance/payments", s.AddPayment)
			r.Get("/finance/payments", s.ListPayments)
			r.Get("/finance/summary", s.FinanceSummary)
		})
	})
	return s.mx
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.Routes())
}
