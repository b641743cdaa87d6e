package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/seclens/insight-backend-go/internal/config"
	"github.com/seclens/insight-backend-go/internal/domain/attendance"
	"github.com/seclens/insight-backend-go/internal/domain/netlog"
	"github.com/seclens/insight-backend-go/internal/domain/profile"
	appHTTP "github.com/seclens/insight-backend-go/internal/handler/http"
	"github.com/seclens/insight-backend-go/internal/pkg/database"
	"github.com/seclens/insight-backend-go/internal/repository/jsonfile"
	"github.com/seclens/insight-backend-go/internal/repository/postgresql"
	"github.com/seclens/insight-backend-go/internal/repository/sqlite"
	attendanceService "github.com/seclens/insight-backend-go/internal/service/attendance"
	dashboardService "github.com/seclens/insight-backend-go/internal/service/dashboard"
	netlogService "github.com/seclens/insight-backend-go/internal/service/netlog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var (
		profileRepo    profile.ProfileRepository
		attendanceRepo attendance.AttendanceRepository
		netlogRepo     netlog.NetlogRepository
	)

	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		profileRepo = postgresql.NewProfileRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
		netlogRepo = postgresql.NewNetlogRepository(db)
	case config.SourceSQLite:
		store, err := sqlite.NewStore(cfg.Dataset.SQLitePath)
		if err != nil {
			log.Fatal("Failed to open sqlite dataset: ", err)
		}
		profileRepo = sqlite.NewProfileRepository(store)
		attendanceRepo = sqlite.NewAttendanceRepository(store)
		netlogRepo = sqlite.NewNetlogRepository(store)
	case config.SourceJSONFile:
		dataset, err := jsonfile.NewDataset(cfg.Dataset.Dir)
		if err != nil {
			log.Fatal("Failed to open dataset directory: ", err)
		}
		profileRepo = jsonfile.NewProfileRepository(dataset)
		attendanceRepo = jsonfile.NewAttendanceRepository(dataset)
		netlogRepo = jsonfile.NewNetlogRepository(dataset)
	default:
		log.Fatal("Unsupported dataset source: ", cfg.Dataset.Source)
	}

	attendanceSvc := attendanceService.NewAttendanceService(profileRepo, attendanceRepo)
	netlogSvc := netlogService.NewNetlogService(profileRepo, netlogRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceSvc, netlogSvc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	netlogHandler := appHTTP.NewNetlogHandler(netlogSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		attendanceHandler,
		netlogHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
