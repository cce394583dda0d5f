package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hris/internal/domain/attendance"
	"hris/internal/domain/audit"
	"hris/internal/domain/auth"
	"hris/internal/domain/dashboard"
	"hris/internal/domain/employee"
	"hris/internal/domain/leave"
	"hris/internal/domain/payroll"
	"hris/internal/domain/performance"
	"hris/internal/domain/recruitment"
	"hris/internal/platform/authz"
	"hris/internal/platform/calendar"
	"hris/internal/platform/config"
	"hris/internal/platform/db"
	"hris/internal/platform/email"
	"hris/internal/platform/jobs"
	"hris/internal/platform/metrics"
	"hris/internal/platform/tracing"
	attendancehandler "hris/internal/transport/http/handlers/attendance"
	audithandler "hris/internal/transport/http/handlers/audit"
	authhandler "hris/internal/transport/http/handlers/auth"
	dashboardhandler "hris/internal/transport/http/handlers/dashboard"
	employeehandler "hris/internal/transport/http/handlers/employee"
	leavehandler "hris/internal/transport/http/handlers/leave"
	payrollhandler "hris/internal/transport/http/handlers/payroll"
	performancehandler "hris/internal/transport/http/handlers/performance"
	recruitmenthandler "hris/internal/transport/http/handlers/recruitment"
	"hris/internal/transport/http/middleware"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Jobs    *jobs.Service
	Metrics *metrics.Collector
	Router  http.Handler

	shutdownTracing func(context.Context) error
}

// New connects to Postgres, prepares the schema and wires every domain behind the router.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	shutdownTracing, err := tracing.Init(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	authorizer, err := authz.New()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("authz: %w", err)
	}
	guard := middleware.NewGuard(authorizer)
	auditor := audit.New(pool)
	collector := metrics.New()

	jobsSvc := jobs.New(pool)
	jobsSvc.OnFinish = collector.RecordJob

	employeeSvc := employee.NewService(employee.NewStore(pool))
	attendanceSvc := attendance.NewService(attendance.NewStore(pool), employeeSvc, loc)
	leaveSvc := leave.NewService(leave.NewStore(pool), employeeSvc, email.New(cfg), cfg.EmailFrom)
	payrollSvc := payroll.NewService(payroll.NewStore(pool), employeeSvc, jobsSvc)
	performanceSvc := performance.NewService(performance.NewStore(pool), employeeSvc, loc)
	recruitmentSvc := recruitment.NewService(recruitment.NewStore(pool), loc)
	dashboardSvc := dashboard.NewService(dashboard.NewStore(pool), loc)
	authSvc := auth.NewService(auth.NewStore(pool), cfg.JWTSecret)

	jobsSvc.Every(jobs.JobPayrollMonthly, cfg.PayrollAutorunInterval, func(now time.Time) jobs.RunFunc {
		month := calendar.DateOf(now, loc)
		return payrollSvc.MonthlyJob(month.Year(), month.Month())
	})

	var recorder middleware.RequestRecorder
	if cfg.MetricsEnabled {
		recorder = collector
	}
	router := NewRouter(Routes{
		Config:   cfg,
		DB:       pool,
		Recorder: recorder,
		Metrics:  collector,
		Handlers: []Registrar{
			authhandler.NewHandler(authSvc),
			employeehandler.NewHandler(employeeSvc, guard, auditor),
			attendancehandler.NewHandler(attendanceSvc, guard),
			leavehandler.NewHandler(leaveSvc, guard, auditor),
			payrollhandler.NewHandler(payrollSvc, guard, auditor),
			performancehandler.NewHandler(performanceSvc, guard),
			recruitmenthandler.NewHandler(recruitmentSvc, guard, auditor),
			dashboardhandler.NewHandler(dashboardSvc, guard),
			audithandler.NewHandler(auditor, guard),
		},
	})

	return &App{
		Config:          cfg,
		DB:              pool,
		Jobs:            jobsSvc,
		Metrics:         collector,
		Router:          router,
		shutdownTracing: shutdownTracing,
	}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	a.Jobs.Start(ctx)

	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HRIS server listening", "addr", a.Config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (a *App) Close() {
	if a.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.shutdownTracing(ctx); err != nil {
			slog.Warn("tracing shutdown failed", "err", err)
		}
	}
	a.DB.Close()
}
