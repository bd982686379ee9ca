package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-recon-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-recon-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-recon-go/internal/service/attendance"
	leaveService "github.com/cmlabs-hris/attendance-recon-go/internal/service/leave"
	reportService "github.com/cmlabs-hris/attendance-recon-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "attendance-recon"),
		slog.String("env", cfg.App.Env),
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	overrideRepo := postgresql.NewOverrideRepository(db)
	ruleRepo := postgresql.NewRuleRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	adjuster := leaveService.NewAdjuster()
	punchBuilder := attendanceService.NewPunchBuilder(
		time.Duration(cfg.Report.PunchConsolidationWindow) * time.Minute)
	aggregator := reportService.NewAggregator()

	reportSvc := reportService.NewReportService(
		employeeRepo,
		punchRepo,
		overrideRepo,
		ruleRepo,
		leaveRepo,
		adjuster,
		punchBuilder,
		aggregator,
		cfg.Report.Workers,
		logger,
	)

	authHandler := appHTTP.NewAuthHandler(jwtService, cfg.Auth.ClientID, cfg.Auth.ClientSecret)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, authHandler, reportHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
	}
}
