package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/portfolio-go-api/internal/config"
	"github.com/noah-isme/portfolio-go-api/internal/dto"
	"github.com/noah-isme/portfolio-go-api/internal/mailer"
	"github.com/noah-isme/portfolio-go-api/internal/observability"
)

// ErrDelivery indicates the mail transport could not deliver the message.
// The underlying cause is logged server-side and never shown to the caller.
var ErrDelivery = errors.New("contact delivery failed")

// ValidationError carries a human-readable reason safe to show the submitter.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ConfirmationMessage is returned to the submitter after a successful relay.
const ConfirmationMessage = "Thank you for your message! I'll get back to you soon."

// ContactService exposes the contact submission workflow.
type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactReceipt, error)
}

type contactService struct {
	cfg       config.Config
	validator *validator.Validate
	mailer    mailer.Mailer
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewContactService constructs a contact submission service.
func NewContactService(cfg config.Config, validate *validator.Validate, m mailer.Mailer, logger zerolog.Logger) ContactService {
	return &contactService{
		cfg:       cfg,
		validator: validate,
		mailer:    m,
		logger:    logger.With().Str("component", "contact_service").Logger(),
		tracer:    otel.Tracer("github.com/noah-isme/portfolio-go-api/internal/service/contact"),
	}
}

// Submit validates the request, builds the outbound email and performs
// exactly one delivery attempt. No state is retained across submissions.
func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactReceipt, error) {
	ctx, span := s.tracer.Start(ctx, "contact.submit")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		observability.ContactSubmissions().WithLabelValues("invalid").Inc()
		return dto.ContactReceipt{}, &ValidationError{Reason: validationReason(err)}
	}

	referenceID := uuid.New().String()
	span.SetAttributes(attribute.String("contact.reference_id", referenceID))

	msg := s.buildMessage(req)

	if err := s.mailer.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		observability.ContactSubmissions().WithLabelValues("failed").Inc()
		s.logger.Error().Err(err).Str("reference_id", referenceID).Msg("contact delivery failed")
		return dto.ContactReceipt{}, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	observability.ContactSubmissions().WithLabelValues("sent").Inc()
	s.logger.Info().
		Str("reference_id", referenceID).
		Str("email", maskEmailAddress(req.Email)).
		Msg("contact submission relayed")
	span.SetStatus(codes.Ok, "delivered")

	return dto.ContactReceipt{ReferenceID: referenceID, Confirmation: ConfirmationMessage}, nil
}

func (s *contactService) buildMessage(req dto.ContactRequest) mailer.Message {
	name := strings.TrimSpace(req.Name)

	return mailer.Message{
		From:     s.cfg.MailSender,
		To:       s.cfg.MailRecipient,
		ReplyTo:  strings.TrimSpace(req.Email),
		Subject:  fmt.Sprintf("Portfolio Contact: %s", name),
		TextBody: renderTextBody(req),
		HTMLBody: renderHTMLBody(req),
	}
}

func validationReason(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "invalid submission"
	}

	field := strings.ToLower(fieldErrors[0].Field())
	return fmt.Sprintf("%s is required", field)
}
