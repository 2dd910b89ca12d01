package httpapi

import (
	_ "embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

//go:embed web/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	Currency string
}

func (h *handler) index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return indexTemplate.Execute(c, pageData{Currency: h.currency})
}
