package api

import (
	"github.com/gofiber/fiber/v3"
)

// Every API response uses the same envelope: {"status":"ok","data":...} on
// success, {"status":"error","error":...} on failure. Clients branch on the
// status field, so handlers must never write bare JSON.
const (
	statusOK    = "ok"
	statusError = "error"
)

// jsonSuccess wraps data in the success envelope with a 200 status.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": statusOK,
		"data":   data,
	})
}

// jsonError wraps message in the error envelope under the given HTTP code.
func jsonError(c fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status": statusError,
		"error":  message,
	})
}
