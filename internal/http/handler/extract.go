package handler

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pdfmeta/internal/service"
)

// defaultFilename is used when the JSON payload omits the filename field.
const defaultFilename = "upload.pdf"

// extractRequest is the JSON payload accepted by the extract endpoint.
type extractRequest struct {
	FileBase64 string `json:"file_base64"`
	Filename   string `json:"filename"`
}

// Extract is the stateless JSON front end. It answers the CORS pre-flight,
// rejects every method but POST, and otherwise decodes the base64 payload
// and runs extraction with IST date normalization.
//
// @Summary      Extract PDF metadata
// @Accept       json
// @Produce      json
// @Param        payload  body  extractRequest  true  "base64-encoded PDF"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      405  {object}  map[string]any
// @Router       /api/extract [post]
func Extract(svc service.Extractor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodOptions:
			return respond(c, fiber.StatusOK, fiber.Map{"ok": true})
		case fiber.MethodPost:
			// handled below
		default:
			return respond(c, fiber.StatusMethodNotAllowed, fiber.Map{"error": "Use POST"})
		}

		body := c.Body()
		// Transports that mark the body as binary-encoded wrap it in one
		// more base64 layer.
		if strings.EqualFold(c.Get("Content-Transfer-Encoding"), "base64") {
			decoded, err := base64.StdEncoding.DecodeString(string(body))
			if err != nil {
				return respond(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid JSON body"})
			}
			body = decoded
		}

		var payload extractRequest
		if err := json.Unmarshal(body, &payload); err != nil {
			return respond(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid JSON body"})
		}

		if payload.FileBase64 == "" {
			return respond(c, fiber.StatusBadRequest, fiber.Map{"error": "Missing file_base64"})
		}
		filename := payload.Filename
		if filename == "" {
			filename = defaultFilename
		}

		raw, err := base64.StdEncoding.DecodeString(payload.FileBase64)
		if err != nil {
			return respond(c, fiber.StatusBadRequest, fiber.Map{"error": "Failed to read PDF metadata: " + err.Error()})
		}

		result, err := svc.Extract(c.UserContext(), raw, filename, true)
		if err != nil {
			return respond(c, fiber.StatusBadRequest, fiber.Map{"error": err.Error()})
		}

		return respond(c, fiber.StatusOK, fiber.Map{"ok": true, "result": result})
	}
}

// respond writes a JSON body with the permissive CORS headers every extract
// response carries.
func respond(c *fiber.Ctx, status int, body any) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
	c.Set(fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS")
	return c.Status(status).JSON(body)
}
