package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	HTTPAddr        string
	SalesHTTPAddr   string
	GatewayHTTPAddr string

	PublicBaseURL string
	JWTSecret     string
	KafkaTopic    string

	AccessTokenTTL time.Duration

	Payment PaymentConfig
	SMTP    SMTPConfig

	NotifyMarkerTTL time.Duration

	OrderSvcURL string
	SalesSvcURL string
}

type PaymentConfig struct {
	SecretKey     string
	WebhookSecret string
	APIURL        string
	Currency      string
	Timeout       time.Duration
	SuccessURL    string
	CancelURL     string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// Load reads the service configuration from the environment, falling back to
// development defaults for anything unset.
func Load() Config {
	return Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8081"),
		SalesHTTPAddr:   getEnv("SALES_HTTP_ADDR", ":8082"),
		GatewayHTTPAddr: getEnv("GATEWAY_HTTP_ADDR", ":8080"),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "orders"),

		AccessTokenTTL: getDuration("ACCESS_TOKEN_TTL", 30*time.Minute),

		Payment: PaymentConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
			APIURL:        os.Getenv("STRIPE_API_URL"),
			Currency:      getEnv("PAYMENT_CURRENCY", "inr"),
			Timeout:       getDuration("PAYMENT_TIMEOUT", 10*time.Second),
			SuccessURL:    getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:8080/payment/success"),
			CancelURL:     getEnv("CHECKOUT_CANCEL_URL", "http://localhost:8080/payment/cancel"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("EMAIL_FROM", "orders@localhost"),
			Timeout:  getDuration("SMTP_TIMEOUT", 10*time.Second),
		},
		NotifyMarkerTTL: getDuration("NOTIFY_MARKER_TTL", 7*24*time.Hour),
		OrderSvcURL:     getEnv("ORDER_SVC_URL", "http://order-svc:8081"),
		SalesSvcURL:     getEnv("SALES_SVC_URL", "http://sales-svc:8082"),
	}
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

// NewKafkaWriter returns an asynchronous writer: WriteMessages never blocks the
// caller on broker round-trips, delivery errors are reported to completion.
func NewKafkaWriter(topic string, completion func(messages []kafka.Message, err error)) *kafka.Writer {
	return &kafka.Writer{
		Addr:       kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:      topic,
		Balancer:   &kafka.Hash{},
		Async:      true,
		Completion: completion,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
