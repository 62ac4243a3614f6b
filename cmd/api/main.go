// @title Duo Tracker API
// @description API for the habit and finance tracker "Duo Tracker"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/duotrack/duotracker/internal/api"
	"github.com/duotrack/duotracker/internal/repository"
	"github.com/duotrack/duotracker/internal/service"
	"github.com/duotrack/duotracker/pkg/cleanup"
	"github.com/duotrack/duotracker/pkg/config"
	jwtservice "github.com/duotrack/duotracker/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	progressRepo := repository.NewProgressRepo(&dbCfg)
	financeRepo := repository.NewFinanceRepo(&dbCfg)

	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(usersRepo, habitsRepo),
		HabitsService:    service.NewHabitsService(habitsRepo, progressRepo),
		StreakService:    service.NewStreakService(usersRepo, habitsRepo, progressRepo),
		AnalyticsService: service.NewAnalyticsService(habitsRepo, progressRepo),
		FinanceService:   service.NewFinanceService(financeRepo),
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
		FreezeCost:       cfg.GetInt("FREEZE_COST_XP", service.DefaultFreezeCost),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
