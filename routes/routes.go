package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-suraksha/alerts"
	"go-suraksha/assistant"
	"go-suraksha/earthquakes"
	"go-suraksha/handlers"
	"go-suraksha/observability"
	"go-suraksha/registry"
	"go-suraksha/reports"
	"go-suraksha/risk"
	"go-suraksha/safety"
	"go-suraksha/sms"
	"go-suraksha/weather"
)

// Deps holds everything the handlers need. main builds one of these and
// hands it over so the router stays free of construction logic.
type Deps struct {
	Weather     *weather.Client
	Risk        *risk.Assessor
	Safety      *safety.Builder
	Earthquakes *earthquakes.Service
	Alerts      *alerts.Register
	Numbers     registry.Store
	Sender      sms.Sender
	Assistant   *assistant.Assistant
	Reports     *reports.Service
	Metrics     *observability.Metrics
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Suraksha disaster safety API",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// api routes
	api := r.Group("/api")
	{
		api.GET("/weather", func(c *gin.Context) {
			handlers.GetWeather(c, deps.Weather, deps.Metrics)
		})
		api.POST("/risk-assessment", func(c *gin.Context) {
			handlers.AssessRisk(c, deps.Risk, deps.Metrics)
		})
		api.GET("/shelters", handlers.GetShelters)
		api.GET("/earthquakes", func(c *gin.Context) {
			handlers.GetEarthquakes(c, deps.Earthquakes, deps.Metrics)
		})
		api.GET("/safety-view", func(c *gin.Context) {
			handlers.GetSafetyView(c, deps.Safety, deps.Metrics)
		})

		api.GET("/alerts/active", func(c *gin.Context) {
			handlers.GetActiveAlert(c, deps.Alerts)
		})
		api.POST("/alerts/active", func(c *gin.Context) {
			handlers.SetActiveAlert(c, deps.Alerts, deps.Metrics)
		})

		api.POST("/sms", func(c *gin.Context) {
			handlers.SendSMS(c, deps.Sender, deps.Metrics)
		})
		api.POST("/sms/register", func(c *gin.Context) {
			handlers.RegisterNumber(c, deps.Numbers, deps.Sender, deps.Metrics)
		})

		api.GET("/safety-tips", handlers.GetSafetyTips)
		api.GET("/disaster-history", handlers.GetDisasterHistory)

		api.POST("/chat", func(c *gin.Context) {
			handlers.Chat(c, deps.Assistant)
		})

		api.GET("/reports", func(c *gin.Context) {
			handlers.ListReports(c, deps.Reports)
		})
		api.POST("/reports", func(c *gin.Context) {
			handlers.SubmitReport(c, deps.Reports)
		})
	}

	return r
}
