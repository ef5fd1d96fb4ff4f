package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"dealerapi/internal/service"
	"dealerapi/internal/storage"
)

// The asset proxy keeps the raw body shapes its existing consumers parse
// (JSON {fileUrl}/{error} on upload, plain text on fetch) instead of the API
// error envelope.

// UploadAsset accepts a multipart upload (field "file", optional field
// "type") and responds with the proxy-form URL of the stored object.
func UploadAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
		}

		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot open uploaded file"})
		}
		defer f.Close()

		key, err := svc.Upload(c.UserContext(), f, fh.Filename, fh.Header.Get("Content-Type"), fh.Size, c.FormValue("type"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		fileURL := requestScheme(c) + "://" + c.Hostname() + "/" + key
		return c.JSON(fiber.Map{"fileUrl": fileURL})
	}
}

// ServeAsset maps the request path (minus the leading slash) straight to an
// object key and streams the object back, cacheable for one year.
func ServeAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := strings.TrimPrefix(c.Path(), "/")
		if key == "" {
			return c.Status(fiber.StatusBadRequest).SendString("No key provided")
		}

		body, info, err := svc.Fetch(c.UserContext(), key)
		if err != nil {
			if storage.IsNotFound(err) {
				return c.Status(fiber.StatusNotFound).SendString("Image not found")
			}
			return c.Status(fiber.StatusInternalServerError).SendString("Internal server error")
		}

		ct := info.ContentType
		if ct == "" {
			ct = "image/jpeg"
		}
		c.Set(fiber.HeaderContentType, ct)
		c.Set(fiber.HeaderCacheControl, "public, max-age=31536000") // cache for 1 year

		// fasthttp closes the stream after the response is written.
		if info.Size > 0 {
			return c.SendStream(body, int(info.Size))
		}
		return c.SendStream(body)
	}
}

// MethodNotAllowed answers anything the asset routes did not match.
func MethodNotAllowed() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusMethodNotAllowed).SendString("Method not allowed")
	}
}

// requestScheme honors X-Forwarded-Proto so URLs minted behind a TLS
// terminator keep the public scheme.
func requestScheme(c *fiber.Ctx) string {
	scheme := c.Protocol()
	if proto := c.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	return scheme
}
