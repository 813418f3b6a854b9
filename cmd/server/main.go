package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/propside/backoffice/internal/app"
	"github.com/propside/backoffice/internal/auth"
	"github.com/propside/backoffice/internal/config"
	"github.com/propside/backoffice/internal/constants"
	"github.com/propside/backoffice/internal/controllers"
	"github.com/propside/backoffice/internal/metrics"
	"github.com/propside/backoffice/internal/repositories"
	"github.com/propside/backoffice/internal/routes"
	"github.com/propside/backoffice/internal/services"
	"github.com/propside/backoffice/internal/utils"
)

const appName = "backoffice"

func main() {
	utils.InitLogger(appName)

	cfg, err := config.Load()
	if err != nil {
		utils.Logger.Fatal("Failed to load config:", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize backoffice:", err)
	}
	defer application.Close()

	// Repositories
	orgRepo := repositories.NewOrganizationRepository(application.DB)
	entityRepo := repositories.NewEntityRepository(application.DB)
	propertyRepo := repositories.NewPropertyRepository(application.DB)
	spaceRepo := repositories.NewSpaceRepository(application.DB)
	tenantRepo := repositories.NewTenantRepository(application.DB)
	leaseRepo := repositories.NewLeaseRepository(application.DB)
	invoiceRepo := repositories.NewInvoiceRepository(application.DB)
	paymentRepo := repositories.NewPaymentRepository(application.DB)
	expenseRepo := repositories.NewExpenseRepository(application.DB)
	maintenanceRepo := repositories.NewMaintenanceRepository(application.DB)
	userRepo := repositories.NewUserRepository(application.DB)

	if cfg.SeedDemoData {
		seeder := &app.Seeder{
			OrgRepo:         orgRepo,
			EntityRepo:      entityRepo,
			PropertyRepo:    propertyRepo,
			SpaceRepo:       spaceRepo,
			TenantRepo:      tenantRepo,
			LeaseRepo:       leaseRepo,
			InvoiceRepo:     invoiceRepo,
			PaymentRepo:     paymentRepo,
			ExpenseRepo:     expenseRepo,
			MaintenanceRepo: maintenanceRepo,
			UserRepo:        userRepo,
		}
		if err := seeder.SeedDemoData(context.Background()); err != nil {
			utils.Logger.Fatal("Failed to seed demo data:", err)
		}
	}

	// Services
	resolver := auth.NewScopeResolver(entityRepo, propertyRepo)
	reportService := services.NewReportService(resolver, spaceRepo, paymentRepo, expenseRepo, maintenanceRepo, invoiceRepo)
	spaceService := services.NewSpaceService(resolver, spaceRepo, leaseRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	sweepService := services.NewInvoiceSweepService(invoiceRepo)

	// Controllers
	healthController := controllers.NewHealthController(application.DB)
	authController := controllers.NewAuthController(authService)
	reportsController := controllers.NewReportsController(reportService)
	spacesController := controllers.NewSpacesController(spaceService)

	// Router setup
	httpMetrics := metrics.NewHTTPMetrics()

	router := mux.NewRouter()
	router.Use(httpMetrics.Middleware)

	// Public routes
	router.HandleFunc(routes.Health, healthController.HealthHandler).Methods(http.MethodGet)
	router.Handle(routes.Metrics, promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods(http.MethodPost)

	// Secured routes
	secured := router.NewRoute().Subrouter()
	secured.Use(auth.Middleware(cfg.JWTSecret))

	secured.HandleFunc(routes.ReportProfitLoss, reportsController.ProfitLossHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ReportOccupancy, reportsController.OccupancyHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ReportMaintenance, reportsController.MaintenanceHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ReportAging, reportsController.AgingHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ReportDashboard, reportsController.DashboardHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.SpacesBase, spacesController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.SpacesBase, spacesController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.SpaceByID, spacesController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.SpaceByID, spacesController.UpdateHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.SpaceByID, spacesController.DeleteHandler).Methods(http.MethodDelete)

	// Cron job setup
	c := cron.New(cron.WithLocation(time.UTC))

	_, err = c.AddFunc(constants.InvoiceSweepCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.InvoiceSweepJobTimeout)
		defer cancel()
		utils.Logger.Info("Starting overdue invoice sweep cron job...")
		if err := sweepService.Run(ctx); err != nil {
			utils.Logger.WithError(err).Error("Failed to sweep overdue invoices")
		}
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule overdue invoice sweep cron")
	}

	c.Start()
	defer c.Stop()
	utils.Logger.Info("Scheduled overdue invoice sweep cron job")

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSAllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", appName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("backoffice failed to start:", err)
	}
}
