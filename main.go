package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"go-suraksha/alerts"
	"go-suraksha/assistant"
	"go-suraksha/config"
	"go-suraksha/cronjobs"
	"go-suraksha/db"
	"go-suraksha/earthquakes"
	"go-suraksha/geocode"
	"go-suraksha/nlp"
	"go-suraksha/observability"
	"go-suraksha/registry"
	"go-suraksha/reports"
	"go-suraksha/risk"
	"go-suraksha/routes"
	"go-suraksha/safety"
	"go-suraksha/sms"
	"go-suraksha/weather"

	language "cloud.google.com/go/language/apiv2"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	fmt.Println("Configuration loaded")

	// Geocoding
	mapsClient, err := geocode.InitMapsClient()
	if err != nil {
		log.Fatalf("Failed to create maps client: %v", err)
	}
	resolver := geocode.NewResolver(mapsClient)

	// Upstream clients
	weatherClient := weather.NewClient(cfg.WeatherAPIKey, cfg.WeatherBaseURL, cfg.UpstreamTimeout)
	assessor := risk.NewAssessor(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	chat := assistant.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.ChatModel)
	sender := sms.NewTwilioSender(cfg.TwilioSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	quakes := earthquakes.NewService(cfg.EarthquakeFeedURL, cfg.UpstreamTimeout)

	// Persistence: Firestore when credentials are present, memory otherwise
	var numbers registry.Store = registry.NewMemoryStore()
	var reportStore reports.Store = reports.NewMemoryStore()
	if cfg.FirebaseCredentials != "" {
		firestoreClient, err := db.InitFirestore()
		if err != nil {
			log.Fatalf("Failed to initialize Firestore: %v", err)
		}
		defer db.CloseFirestore()
		numbers = registry.NewFirestoreStore(firestoreClient)
		reportStore = reports.NewFirestoreStore(firestoreClient)
		fmt.Println("Firestore persistence enabled")
	}

	// Entity extraction is optional
	var langClient *language.Client
	if cfg.NaturalLanguageCredentials != "" {
		langClient, err = nlp.InitLanguageClient()
		if err != nil {
			log.Printf("Natural Language client unavailable: %v", err)
		} else {
			defer langClient.Close()
		}
	}

	register := alerts.NewRegister(numbers, sender)
	metrics := observability.NewMetrics()
	builder := safety.NewBuilder(resolver, weatherClient, assessor)
	reportSvc := reports.NewService(reportStore, resolver, langClient)

	// Initialize cron jobs
	cronjobs.InitCronJobs(quakes)

	r := routes.SetupRouter(routes.Deps{
		Weather:     weatherClient,
		Risk:        assessor,
		Safety:      builder,
		Earthquakes: quakes,
		Alerts:      register,
		Numbers:     numbers,
		Sender:      sender,
		Assistant:   chat,
		Reports:     reportSvc,
		Metrics:     metrics,
	})
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
