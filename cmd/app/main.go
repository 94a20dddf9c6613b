package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"freightmatch/cmd"
	httpadapter "freightmatch/internal/adapters/in/http"
	"freightmatch/internal/adapters/out/notifications"
	"freightmatch/internal/adapters/out/postgres/carrierrepo"
	"freightmatch/internal/adapters/out/postgres/matchrepo"
	"freightmatch/internal/adapters/out/postgres/pricingrepo"
	"freightmatch/internal/adapters/out/postgres/quoterepo"
	"freightmatch/internal/adapters/out/postgres/shipmentrequestrepo"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/pricing"
	"freightmatch/internal/generated/servers"
	"freightmatch/internal/jobs"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)
	mustSeedPricingRules(gormDB)

	notifier := createNotifier(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := jobs.NewJobManager(
		app.ShipmentRequestUoWFactory(),
		app.DispatchUoWFactory(),
		app.CreateRunMatchingCommandHandler(),
		app.CreateDispatchInvitationsCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		AWSRegion:        goDotEnvVariable("AWS_REGION"),
		SESSenderAddress: goDotEnvVariable("SES_SENDER_ADDRESS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&shipmentrequestrepo.ShipmentRequestDTO{},
		&carrierrepo.CarrierDTO{},
		&matchrepo.CarrierRequestDTO{},
		&quoterepo.QuoteDTO{},
		&quoterepo.LineItemDTO{},
		&pricingrepo.PricingRuleDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// mustSeedPricingRules installs the default rate card on an empty database so
// quote calculation works out of the box. Existing rules are never touched.
func mustSeedPricingRules(gormDB *gorm.DB) {
	var count int64
	if err := gormDB.Model(&pricingrepo.PricingRuleDTO{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to inspect pricing rules: %v", err)
	}
	if count > 0 {
		return
	}

	defaults := []struct {
		vehicleType  string
		ratePerKm    float64
		minimumCents int64
	}{
		{"transporter", 1.05, 4000},
		{"lkw", 1.50, 5000},
	}

	for _, d := range defaults {
		rule, err := pricing.NewRule(kernel.NewUUID(), d.vehicleType, d.ratePerKm,
			kernel.MoneyFromCents(d.minimumCents), 20, 30, true)
		if err != nil {
			log.Fatalf("Failed to build default pricing rule: %v", err)
		}

		dto := pricingrepo.FromDomain(rule)
		if err := gormDB.Create(&dto).Error; err != nil {
			log.Fatalf("Failed to seed pricing rules: %v", err)
		}
	}
}

func createNotifier(configs cmd.Config, logger *slog.Logger) *notifications.SESInvitationNotifier {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(configs.AWSRegion))
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}

	return notifications.NewSESInvitationNotifier(
		sesv2.NewFromConfig(awsCfg),
		configs.SESSenderAddress,
		logger,
	)
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateShipmentRequestCommandHandler(),
		app.CreateCreateCarrierCommandHandler(),
		app.CreateCalculateQuoteCommandHandler(),
		app.CreateAcceptQuoteCommandHandler(),
		app.CreateDeclineQuoteCommandHandler(),
		app.CreateRunMatchingCommandHandler(),
		app.CreateDispatchInvitationsCommandHandler(),
		app.CreateSubmitOfferCommandHandler(),
		app.CreateAcceptOfferCommandHandler(),
		app.CreateCancelShipmentRequestCommandHandler(),
		app.CreateGetUncompletedRequestsQueryHandler(),
		app.CreateGetMatchesForRequestQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
