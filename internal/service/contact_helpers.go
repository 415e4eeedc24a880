package service

import (
	"fmt"
	"html"
	"strings"

	"github.com/noah-isme/portfolio-go-api/internal/dto"
)

// renderTextBody produces the plain-text rendering of a submission.
// The message value is carried verbatim, line breaks included.
func renderTextBody(req dto.ContactRequest) string {
	var b strings.Builder
	b.WriteString("New contact form submission from your portfolio:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	if req.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	}
	b.WriteString("Message:\n")
	b.WriteString(req.Message)
	b.WriteString("\n")
	return b.String()
}

// renderHTMLBody produces the HTML rendering of the same fields. Values are
// escaped and line breaks within the message become <br> tags.
func renderHTMLBody(req dto.ContactRequest) string {
	var b strings.Builder
	b.WriteString("<h2>New contact form submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(req.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(req.Email))
	if req.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(req.Phone))
	}
	fmt.Fprintf(&b, "<p><strong>Message:</strong></p><p>%s</p>", nl2br(req.Message))
	return b.String()
}

func nl2br(value string) string {
	escaped := html.EscapeString(value)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

func maskEmailAddress(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	domain := parts[1]
	// Presence-only validation admits addresses with an empty local part.
	if local == "" {
		return "***@" + domain
	}
	if len(local) <= 2 {
		local = local[:1] + "***"
	} else {
		local = local[:1] + "***" + local[len(local)-1:]
	}
	return local + "@" + domain
}
