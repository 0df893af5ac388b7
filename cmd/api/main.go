package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/sistemacontrol/asistencia-backend-go/internal/config"
	appHTTP "github.com/sistemacontrol/asistencia-backend-go/internal/handler/http"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/database"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/jwt"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/oauth"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/storage"
	"github.com/sistemacontrol/asistencia-backend-go/internal/repository/postgresql"
	absenceService "github.com/sistemacontrol/asistencia-backend-go/internal/service/absence"
	attendanceService "github.com/sistemacontrol/asistencia-backend-go/internal/service/attendance"
	serviceAuth "github.com/sistemacontrol/asistencia-backend-go/internal/service/auth"
	employeeService "github.com/sistemacontrol/asistencia-backend-go/internal/service/employee"
	"github.com/sistemacontrol/asistencia-backend-go/internal/service/file"
	"github.com/sistemacontrol/asistencia-backend-go/internal/service/report"
	rosterService "github.com/sistemacontrol/asistencia-backend-go/internal/service/roster"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	recordRepo := postgresql.NewTimeRecordRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(userRepo, JWTService, GoogleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileService)
	recordSvc := attendanceService.NewTimeRecordService(recordRepo, employeeRepo)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, employeeRepo)
	rosterSvc := rosterService.NewRosterService(employeeRepo, recordRepo, fileService)
	reportSvc := report.NewRosterReportService(rosterSvc)

	authHandler := appHTTP.NewAuthHandler(authService, GoogleService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(recordSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc, reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppEnv:      cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
			UploadsDir:  cfg.Storage.BasePath,
		},
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		absenceHandler,
		rosterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
