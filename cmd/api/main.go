package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/shiftly-hq/attendance-backend-go/internal/config"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/attendance"
	domainUser "github.com/shiftly-hq/attendance-backend-go/internal/domain/user"
	appHTTP "github.com/shiftly-hq/attendance-backend-go/internal/handler/http"
	"github.com/shiftly-hq/attendance-backend-go/internal/pkg/database"
	"github.com/shiftly-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/shiftly-hq/attendance-backend-go/internal/repository/memory"
	"github.com/shiftly-hq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftly-hq/attendance-backend-go/internal/service/attendance"
	authService "github.com/shiftly-hq/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/shiftly-hq/attendance-backend-go/internal/service/dashboard"
	empDashboardService "github.com/shiftly-hq/attendance-backend-go/internal/service/employee_dashboard"
	reportService "github.com/shiftly-hq/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	userRepo, attendanceRepo := newStore(cfg)

	loc := cfg.Location()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, loc)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, userRepo, loc)
	empDashboardSvc := empDashboardService.NewEmployeeDashboardService(attendanceRepo, attendanceSvc, loc)
	reportSvc := reportService.NewReportService(attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	empDashboardHandler := appHTTP.NewEmployeeDashboardHandler(empDashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		JWTService,
		authHandler,
		attendanceHandler,
		dashboardHandler,
		empDashboardHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

// newStore selects the storage backend: PostgreSQL when configured and
// reachable, otherwise the in-memory store. The fallback keeps the server
// usable (without durability) when the database is down.
func newStore(cfg *config.Config) (domainUser.UserRepository, attendance.AttendanceRepository) {
	if cfg.HasDatabase() {
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err == nil {
			if err := db.Bootstrap(context.Background()); err != nil {
				log.Fatal("Error bootstrapping database schema: ", err)
			}
			return postgresql.NewUserRepository(db), postgresql.NewAttendanceRepository(db)
		}
		log.Println("Database unavailable, falling back to in-memory store: ", err)
	} else {
		log.Println("No database configured, using in-memory store")
	}

	users := memory.NewUserRepository()
	return users, memory.NewAttendanceRepository(users)
}
