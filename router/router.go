package router

import (
	"github.com/labstack/echo/v4"

	"pmu/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Login(echo.Context) error
		WhoAmI(echo.Context) error
	},
	wsCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
		CreateWorkPlan(echo.Context) error
		ListWorkPlans(echo.Context) error
		DeleteWorkPlan(echo.Context) error
	},
	targetCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
	},
	programCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	teamCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
		CreateTask(echo.Context) error
		ListTasks(echo.Context) error
		DeleteTask(echo.Context) error
		Board(echo.Context) error
	},
	schedCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	statusPatch func(echo.Context) error,
	reportCtrl interface {
		Employees(echo.Context) error
		ExportXLSX(echo.Context) error
	},
	popCalculate func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.POST("/login", authCtrl.Login)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("", middleware.Session(jwtSecret))

	api.GET("/whoami", authCtrl.WhoAmI)

	api.POST("/workstreams", wsCtrl.Create)
	api.GET("/workstreams", wsCtrl.List)
	api.DELETE("/workstreams/:id", wsCtrl.Delete)
	api.POST("/workstreams/:id/workplans", wsCtrl.CreateWorkPlan)
	api.GET("/workstreams/:id/workplans", wsCtrl.ListWorkPlans)
	api.DELETE("/workplans/:id", wsCtrl.DeleteWorkPlan)

	api.POST("/targets", targetCtrl.Create)
	api.GET("/targets", targetCtrl.List)
	api.DELETE("/targets/:id", targetCtrl.Delete)

	api.POST("/programs", programCtrl.Create)
	api.GET("/programs", programCtrl.List)
	api.PATCH("/programs/:id", programCtrl.Patch)
	api.DELETE("/programs/:id", programCtrl.Delete)

	api.POST("/teams", teamCtrl.Create)
	api.GET("/teams", teamCtrl.List)
	api.DELETE("/teams/:id", teamCtrl.Delete)
	api.POST("/teams/:id/tasks", teamCtrl.CreateTask)
	api.GET("/teams/:id/tasks", teamCtrl.ListTasks)
	api.GET("/teams/:id/board", teamCtrl.Board)
	api.DELETE("/tasks/:task_id", teamCtrl.DeleteTask)

	api.POST("/schedules", schedCtrl.Create)
	api.GET("/schedules", schedCtrl.List)

	api.PATCH("/status/:kind/:id", statusPatch)

	api.GET("/reports/employees", reportCtrl.Employees)
	api.GET("/reports/employees/export", reportCtrl.ExportXLSX)

	api.POST("/tools/population", popCalculate)

	return e
}
