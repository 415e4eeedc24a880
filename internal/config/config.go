package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the portfolio API.
type Config struct {
	AppName        string
	AppEnv         string
	AppPort        string
	FrontendOrigin string
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPTLS        bool
	MailSender     string
	MailRecipient  string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
//
// SMTP settings are deliberately not validated here: an incomplete mail
// configuration surfaces as a delivery failure at send time, not at startup.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Portfolio API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("frontend.origin", "http://localhost:3000")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.tls", true)

	cfg := Config{
		AppName:        v.GetString("app.name"),
		AppEnv:         v.GetString("app.env"),
		AppPort:        v.GetString("app.port"),
		FrontendOrigin: v.GetString("frontend.origin"),
		SMTPHost:       v.GetString("smtp.host"),
		SMTPPort:       v.GetInt("smtp.port"),
		SMTPUsername:   v.GetString("smtp.username"),
		SMTPPassword:   v.GetString("smtp.password"),
		SMTPTLS:        v.GetBool("smtp.tls"),
		MailSender:     v.GetString("mail.sender"),
		MailRecipient:  v.GetString("mail.recipient"),
	}

	if cfg.SMTPPort <= 0 {
		cfg.SMTPPort = 587
	}

	if cfg.MailSender == "" {
		cfg.MailSender = cfg.SMTPUsername
	}

	return cfg, nil
}
