package cronjobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"go-suraksha/earthquakes"
)

// InitCronJobs schedules the background refresh work. The earthquake
// cache is warmed on a fixed interval so requests rarely pay the
// upstream fetch themselves.
func InitCronJobs(quakes *earthquakes.Service) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Earthquake Feed: refresh every 10 minutes
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("\nCronJob: EarthQuake Feed Refresh Running")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_, degraded := quakes.Refresh(ctx)
		if degraded {
			log.Println("CronJob: earthquake refresh fell back to cached/mock data")
		}
	})
	if err != nil {
		log.Println("Error scheduling EarthQuake Feed:", err)
	}

	c.Start()
}
