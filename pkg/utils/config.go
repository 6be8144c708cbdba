package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Email     EmailConfig
	Inference InferenceConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	BaseURL string
}

type StorageConfig struct {
	Driver   string // memory | json | postgres
	JSONPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type AuthConfig struct {
	SessionSecret         string
	SessionExpiryHours    int
	ActivationSecret      string
	ActivationExpiryHours int
	AdminUsername         string
	AdminPassword         string
}

type EmailConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type InferenceConfig struct {
	Endpoint       string
	Model          string
	TimeoutSeconds int
	MaxPromptChars int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "legal-assistant")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BASE_URL", "http://localhost:8000")
	viper.SetDefault("STORAGE_DRIVER", "json")
	viper.SetDefault("STORAGE_JSON_PATH", "users.json")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("AUTH_SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("AUTH_ACTIVATION_EXPIRY_HOURS", 48)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("EMAIL_ENABLED", false)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("INFERENCE_ENDPOINT", "http://localhost:11434")
	viper.SetDefault("INFERENCE_MODEL", "mistral")
	viper.SetDefault("INFERENCE_TIMEOUT_SECONDS", 120)
	viper.SetDefault("INFERENCE_MAX_PROMPT_CHARS", 24000)

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional; environment variables alone are enough
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			BaseURL: viper.GetString("BASE_URL"),
		},
		Storage: StorageConfig{
			Driver:   viper.GetString("STORAGE_DRIVER"),
			JSONPath: viper.GetString("STORAGE_JSON_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			SessionSecret:         viper.GetString("AUTH_SESSION_SECRET"),
			SessionExpiryHours:    viper.GetInt("AUTH_SESSION_EXPIRY_HOURS"),
			ActivationSecret:      viper.GetString("AUTH_ACTIVATION_SECRET"),
			ActivationExpiryHours: viper.GetInt("AUTH_ACTIVATION_EXPIRY_HOURS"),
			AdminUsername:         viper.GetString("ADMIN_USERNAME"),
			AdminPassword:         viper.GetString("ADMIN_PASSWORD"),
		},
		Email: EmailConfig{
			Enabled:  viper.GetBool("EMAIL_ENABLED"),
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Inference: InferenceConfig{
			Endpoint:       viper.GetString("INFERENCE_ENDPOINT"),
			Model:          viper.GetString("INFERENCE_MODEL"),
			TimeoutSeconds: viper.GetInt("INFERENCE_TIMEOUT_SECONDS"),
			MaxPromptChars: viper.GetInt("INFERENCE_MAX_PROMPT_CHARS"),
		},
	}

	return config, nil
}
