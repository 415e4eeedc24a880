package mailer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMailHeaders(t *testing.T) {
	m := buildMail(Message{
		From:     "portfolio@example.com",
		To:       "me@example.com",
		ReplyTo:  "ana@x.com",
		Subject:  "Portfolio Contact: Ana",
		TextBody: "plain body",
		HTMLBody: "<p>html body</p>",
	})

	require.Equal(t, []string{"portfolio@example.com"}, m.GetHeader("From"))
	require.Equal(t, []string{"me@example.com"}, m.GetHeader("To"))
	require.Equal(t, []string{"ana@x.com"}, m.GetHeader("Reply-To"))
	require.Equal(t, []string{"Portfolio Contact: Ana"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	rendered := buf.String()
	require.Contains(t, rendered, "text/plain")
	require.Contains(t, rendered, "text/html")
	require.Contains(t, rendered, "plain body")
}

func TestBuildMailOmitsEmptyOptionalParts(t *testing.T) {
	m := buildMail(Message{
		From:     "portfolio@example.com",
		To:       "me@example.com",
		Subject:  "Portfolio Contact: Ana",
		TextBody: "plain body",
	})

	require.Empty(t, m.GetHeader("Reply-To"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "text/html")
}
