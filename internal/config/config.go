package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port           string
	ProductionType string
	LogPath        string
	MigrationsPath string

	AdminToken string
	UserToken  string

	Database Database
	GitHub   GitHub
	Twitter  Twitter
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// GitHub - доступ к API провайдера для обновления состояния PR
type GitHub struct {
	Token   string
	BaseURL string // пусто для github.com
}

// Twitter - ключи приложения; токены пользователей хранятся в БД
type Twitter struct {
	ConsumerKey    string
	ConsumerSecret string
	BaseURL        string
}

func NewEnvConfig() *Config {
	return &Config{
		Port:           os.Getenv("APP_PORT"),
		ProductionType: os.Getenv("APP_PRODUCTION_TYPE"),
		LogPath:        os.Getenv("APP_LOG_PATH"),
		MigrationsPath: getEnv("APP_MIGRATIONS_PATH", "migrations"),

		AdminToken: os.Getenv("ADMIN_TOKEN"),
		UserToken:  os.Getenv("USER_TOKEN"),

		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},

		GitHub: GitHub{
			Token:   os.Getenv("GITHUB_TOKEN"),
			BaseURL: os.Getenv("GITHUB_BASE_URL"),
		},

		Twitter: Twitter{
			ConsumerKey:    os.Getenv("TWITTER_CONSUMER_KEY"),
			ConsumerSecret: os.Getenv("TWITTER_CONSUMER_SECRET"),
			BaseURL:        getEnv("TWITTER_BASE_URL", "https://api.twitter.com"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func (config *Config) PrintConfigWithHiddenSecrets() {
	// Функция для маскировки секретов
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return strings.Repeat("*", len(s))
	}

	fmt.Println("========== Configuration ==========")

	fmt.Println("\nApp Configuration:")
	fmt.Printf("\tPort: %s\n", config.Port)
	fmt.Printf("\tProductionType: %s\n", config.ProductionType)
	fmt.Printf("\tLogPath: %s\n", config.LogPath)
	fmt.Printf("\tMigrationsPath: %s\n", config.MigrationsPath)
	fmt.Printf("\tAdminToken: %s\n", mask(config.AdminToken))
	fmt.Printf("\tUserToken: %s\n", mask(config.UserToken))

	fmt.Println("\nDatabase Configuration:")
	fmt.Printf("\tHost: %s\n", config.Database.Host)
	fmt.Printf("\tPort: %s\n", config.Database.Port)
	fmt.Printf("\tUser: %s\n", config.Database.User)
	fmt.Printf("\tPassword: %s\n", mask(config.Database.Password))
	fmt.Printf("\tName: %s\n", config.Database.Name)
	fmt.Printf("\tSSLMode: %s\n", config.Database.SSLMode)

	fmt.Println("\nGitHub Configuration:")
	fmt.Printf("\tToken: %s\n", mask(config.GitHub.Token))
	fmt.Printf("\tBaseURL: %s\n", config.GitHub.BaseURL)

	fmt.Println("\nTwitter Configuration:")
	fmt.Printf("\tConsumerKey: %s\n", mask(config.Twitter.ConsumerKey))
	fmt.Printf("\tConsumerSecret: %s\n", mask(config.Twitter.ConsumerSecret))
	fmt.Printf("\tBaseURL: %s\n", config.Twitter.BaseURL)

	fmt.Println("\n===================================")
}
