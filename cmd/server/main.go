package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"pmu/config"
	"pmu/database"
	"pmu/router"

	// Auth
	authCtrlImp "pmu/pkg/auth/controllerImp"
	authSvcImp "pmu/pkg/auth/serviceImp"

	// Workstreams + workplans
	wsCtrlImp "pmu/pkg/workstream/controllerImp"
	wsRepoImp "pmu/pkg/workstream/repositoryImp"

	// Targets
	targetCtrlImp "pmu/pkg/target/controllerImp"
	targetRepoImp "pmu/pkg/target/repositoryImp"

	// Programs
	programCtrlImp "pmu/pkg/program/controllerImp"
	programRepoImp "pmu/pkg/program/repositoryImp"

	// Field teams + tasks
	teamCtrlImp "pmu/pkg/fieldteam/controllerImp"
	teamRepoImp "pmu/pkg/fieldteam/repositoryImp"

	// Scheduling
	schedCtrlImp "pmu/pkg/schedule/controllerImp"
	schedRepoImp "pmu/pkg/schedule/repositoryImp"

	// Status lifecycle
	statusCtrlImp "pmu/pkg/status/controllerImp"
	statusSvcImp "pmu/pkg/status/serviceImp"

	// Reports
	reportCtrlImp "pmu/pkg/report/controllerImp"
	reportSvcImp "pmu/pkg/report/serviceImp"

	// Tools
	popCtrlImp "pmu/pkg/population/controllerImp"

	// Health
	healthCtrlImp "pmu/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + roster preload
	db := database.OpenSQLite(cfg.DBPath)
	if err := database.PreloadEmployees(db, cfg.SeedPassword); err != nil {
		log.Fatalf("preload employees: %v", err)
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// 4) Repos/services/controllers
	authSvc := authSvcImp.New(db, cfg.JWTSecret)
	authCtrl := authCtrlImp.New(authSvc)

	wsCtrl := wsCtrlImp.New(wsRepoImp.New(db))
	tCtrl := targetCtrlImp.New(targetRepoImp.New(db))
	pCtrl := programCtrlImp.New(programRepoImp.New(db))
	ftCtrl := teamCtrlImp.New(teamRepoImp.New(db))
	scCtrl := schedCtrlImp.New(schedRepoImp.New(db))

	stCtrl := statusCtrlImp.New(statusSvcImp.New(db))
	repCtrl := reportCtrlImp.New(reportSvcImp.New(db))
	popCtrl := popCtrlImp.New()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 5) Router
	r := router.New(
		e,
		cfg.JWTSecret,
		authCtrl,
		wsCtrl,
		tCtrl,
		pCtrl,
		ftCtrl,
		scCtrl,
		stCtrl.Patch, // pass functions
		repCtrl,
		popCtrl.Calculate,
		hCtrl,
	)

	// 6) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
