package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bharathz8/Nutri-Go/controllers"
	"github.com/bharathz8/Nutri-Go/middlewares"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Meta      *controllers.MetaController
	Users     *controllers.UserController
	Analyze   *controllers.AnalyzeController
	Intake    *controllers.IntakeController
	Translate *controllers.TranslateController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())
	r.Use(cors.Default()) // the API is consumed from browser frontends

	r.GET("/", ctrl.Meta.Root)
	r.GET("/languages", ctrl.Meta.Languages)
	r.GET("/health", ctrl.Meta.Health)

	r.POST("/register", ctrl.Users.Register)
	r.GET("/user/:user_id", ctrl.Users.GetUser)

	r.POST("/analyze-nutrition", ctrl.Analyze.AnalyzeNutrition)

	r.GET("/daily-intake/:user_id", ctrl.Intake.DailyIntake)
	r.GET("/weekly-summary/:user_id", ctrl.Intake.WeeklySummary)

	r.POST("/translate", ctrl.Translate.Translate)

	return r
}
