package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	"github.com/streadway/amqp"

	"skillgapworker/internal/database"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dbUrl := mustEnv("DB_URL")
	rabbitmqUrl := mustEnv("RABBITMQ_URL")
	googleApiKey := mustEnv("GOOGLE_API_KEY")
	r2AccountId := mustEnv("R2_ACCOUNT_ID")
	r2Bucket := mustEnv("R2_BUCKET")
	r2AccessKey := mustEnv("R2_ACCESS_KEY")
	r2SecretKey := mustEnv("R2_SECRET_KEY")

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		log.Fatal("error opening db. err: ", err)
	}
	dbqueries := database.New(db)

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2AccessKey, r2SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config", err)
	}
	storage := NewR2Storage(awsConfig, r2AccountId, r2Bucket)

	completer, err := NewAgentCompleter(googleApiKey, "skill gap assistant")
	if err != nil {
		log.Fatalf("failed to create agent: %v", err)
	}
	embedder, err := NewGeminiEmbedder(context.Background(), googleApiKey)
	if err != nil {
		log.Fatalf("failed to create embedder: %v", err)
	}

	jobs := NewJobClient(
		os.Getenv("ADZUNA_APP_ID"),
		os.Getenv("ADZUNA_APP_KEY"),
		envOr("JOBS_COUNTRY", "in"),
	)
	if jobs.AppID == "" || jobs.AppKey == "" {
		slog.Warn("Adzuna credentials missing, job searches will find no postings")
	}

	smtpPort, _ := strconv.Atoi(envOr("SMTP_PORT", "587"))
	mailer := NewSMTPMailer(
		os.Getenv("SMTP_HOST"),
		smtpPort,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASSWORD"),
		os.Getenv("MAIL_FROM"),
	)

	resources, err := LoadResourceDB(envOr("RESOURCE_DB_PATH", "resources.json"))
	if err != nil {
		log.Fatalf("failed to load resource database: %v", err)
	}

	pipeline := &Pipeline{
		Store:     dbqueries,
		Storage:   storage,
		Completer: completer,
		Embedder:  embedder,
		Jobs:      jobs,
		Mailer:    mailer,
		Resources: resources,
	}

	scheduler, err := NewScheduler(pipeline, envOr("DAILY_CRON", "0 8 * * *"), envOr("WEEKLY_CRON", "0 9 * * 1"))
	if err != nil {
		log.Fatalf("failed to create scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("batch scheduler started")

	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		log.Fatalf("error connecting to RabbitMQ. err:  %v", err)
	}
	consumerConfig := ConsumerConfig{
		Pipeline:    pipeline,
		RABBITMQUrl: rabbitmqUrl,
		RabbitConn:  conn,
	}

	slog.Info("starting consumer worker pool", "workers", 3)
	consumerConfig.StartConsumerWorkerPool(3)
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("empty %s in environment", key)
	}
	return v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
