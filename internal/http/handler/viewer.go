package handler

import (
	"bytes"
	"io"

	"github.com/gofiber/fiber/v2"

	"pdfmeta/internal/service"
)

// ViewerPage serves the empty upload form.
func ViewerPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return renderViewer(c, viewerData{})
	}
}

// ViewerSubmit handles the multipart upload from the viewer form and renders
// the extraction report, or the error line, back into the same page.
// The HTML path leaves date fields raw; only the JSON endpoint normalizes.
func ViewerSubmit(svc service.Extractor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := viewerData{}

		fh, err := c.FormFile("pdf")
		if err != nil || fh == nil || fh.Filename == "" {
			data.Error = "Please choose a PDF file."
			return renderViewer(c, data)
		}

		f, err := fh.Open()
		if err != nil {
			data.Error = "Please choose a PDF file."
			return renderViewer(c, data)
		}
		defer f.Close()

		raw, err := io.ReadAll(f)
		if err != nil {
			data.Error = "Please choose a PDF file."
			return renderViewer(c, data)
		}

		result, err := svc.Extract(c.UserContext(), raw, fh.Filename, false)
		if err != nil {
			data.Error = err.Error()
			return renderViewer(c, data)
		}

		data.Result = result
		if result.XMPXML != nil {
			data.XMPXML = *result.XMPXML
		}
		return renderViewer(c, data)
	}
}

// renderViewer executes the page template. Errors are reported through the
// page itself, so every render responds 200.
func renderViewer(c *fiber.Ctx, data viewerData) error {
	var buf bytes.Buffer
	if err := viewerTemplate.Execute(&buf, data); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "template render failed")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
