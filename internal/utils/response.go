package utils

import "github.com/gofiber/fiber/v2"

// MessageResponse is the body returned on success.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body returned on any failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendMessage sends a 200 JSON response carrying a confirmation message.
func SendMessage(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "success"
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: message})
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}
