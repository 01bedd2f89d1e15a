package main

import (
	"fmt"
	"net/http"

	"github.com/gpe-labs/payroll-backend-go/internal/config"
	appHTTP "github.com/gpe-labs/payroll-backend-go/internal/handler/http"
	"github.com/gpe-labs/payroll-backend-go/internal/pkg/database"
	"github.com/gpe-labs/payroll-backend-go/internal/pkg/jwt"
	"github.com/gpe-labs/payroll-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/gpe-labs/payroll-backend-go/internal/service/auth"
	serviceEmployee "github.com/gpe-labs/payroll-backend-go/internal/service/employee"
	serviceReport "github.com/gpe-labs/payroll-backend-go/internal/service/report"
	serviceUser "github.com/gpe-labs/payroll-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(db, userRepo, JWTService)
	userService := serviceUser.NewUserService(userRepo)
	employeeService := serviceEmployee.NewEmployeeService(employeeRepo)
	reportService := serviceReport.NewReportService(employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeService)
	reportHandler := appHTTP.NewReportHandler(reportService)
	userHandler := appHTTP.NewUserHandler(userService)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		authHandler,
		employeeHandler,
		reportHandler,
		userHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
