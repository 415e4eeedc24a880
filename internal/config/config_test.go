package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/portfolio-go-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "Portfolio API", cfg.AppName)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, 587, cfg.SMTPPort)
	require.True(t, cfg.SMTPTLS)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FOLIO_APP_PORT", "9090")
	t.Setenv("FOLIO_SMTP_HOST", "smtp.example.com")
	t.Setenv("FOLIO_SMTP_USERNAME", "relay@example.com")
	t.Setenv("FOLIO_MAIL_RECIPIENT", "me@example.com")
	t.Setenv("FOLIO_FRONTEND_ORIGIN", "https://portfolio.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTPAddress())
	require.Equal(t, "smtp.example.com", cfg.SMTPHost)
	require.Equal(t, "me@example.com", cfg.MailRecipient)
	require.Equal(t, "https://portfolio.example.com", cfg.FrontendOrigin)
	require.Equal(t, "relay@example.com", cfg.MailSender, "sender falls back to the SMTP username")
}

func TestHTTPAddressKeepsExplicitColon(t *testing.T) {
	cfg := config.Config{AppPort: ":3000"}
	require.Equal(t, ":3000", cfg.HTTPAddress())
}
