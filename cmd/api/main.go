package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/workdayhq/workday-backend-go/internal/config"
	"github.com/workdayhq/workday-backend-go/internal/domain/holiday"
	appHTTP "github.com/workdayhq/workday-backend-go/internal/handler/http"
	"github.com/workdayhq/workday-backend-go/internal/pkg/database"
	"github.com/workdayhq/workday-backend-go/internal/pkg/jobs"
	"github.com/workdayhq/workday-backend-go/internal/pkg/notify"
	"github.com/workdayhq/workday-backend-go/internal/repository/postgresql"
	reportService "github.com/workdayhq/workday-backend-go/internal/service/report"
	workdayService "github.com/workdayhq/workday-backend-go/internal/service/workday"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

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

	workdayRepo := postgresql.NewWorkdayRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	scheduleRepo := postgresql.NewWeeklyScheduleRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	// The holiday lookup is a platform capability; it is resolved here and
	// injected, never probed inside the service.
	var holidayCalendar holiday.Calendar
	if cfg.Holiday.LookupEnabled {
		holidayCalendar = postgresql.NewHolidayCalendar(db)
	}

	queue := jobs.NewQueue(cfg.Jobs.QueueSize)
	queue.Start()
	defer queue.Stop()

	notifier := notify.NewLog()

	workdaySvc := workdayService.NewWorkdayService(
		db,
		workdayRepo,
		employeeRepo,
		timesheetRepo,
		scheduleRepo,
		holidayCalendar,
		queue,
		notifier,
	)
	reportSvc := reportService.NewReportService(reportRepo)

	workdayHandler := appHTTP.NewWorkdayHandler(workdaySvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(workdayHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
