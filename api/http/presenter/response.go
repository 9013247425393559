package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body of every failed JSON call.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ListResponse wraps a page of items for JSON endpoints.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func List[T any](c *fiber.Ctx, items []T, limit, offset int) error {
	if items == nil {
		items = []T{}
	}
	return JSON(c, fiber.StatusOK, ListResponse[T]{Items: items, Limit: limit, Offset: offset})
}
