package handlers

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bikeverse/api/internal/services"
	"github.com/bikeverse/api/internal/storage"
	"github.com/bikeverse/api/internal/store"
)

const imageURLExpiry = 10 * time.Minute

type PartHandler struct {
	parts  *services.PartService
	images storage.ObjectStore
}

func NewPartHandler(parts *services.PartService, images storage.ObjectStore) *PartHandler {
	return &PartHandler{parts: parts, images: images}
}

// List returns the catalog. A positive size query selects one zero-based
// page, so page=0&size=10 is the first page, not the full collection.
func (h *PartHandler) List(c *fiber.Ctx) error {
	var page *store.Pagination
	if size, err := strconv.ParseInt(c.Query("size"), 10, 64); err == nil && size > 0 {
		p, _ := strconv.ParseInt(c.Query("page"), 10, 64)
		page = &store.Pagination{Page: p, Size: size}
	}

	parts, err := h.parts.List(c.Context(), page)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(parts)
}

func (h *PartHandler) Count(c *fiber.Ctx) error {
	count, err := h.parts.Count(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *PartHandler) Featured(c *fiber.Ctx) error {
	parts, err := h.parts.Featured(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(parts)
}

func (h *PartHandler) ByCategory(c *fiber.Ctx) error {
	parts, err := h.parts.ByCategory(c.Context(), c.Query("category"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(parts)
}

func (h *PartHandler) Get(c *fiber.Ctx) error {
	part, err := h.parts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(part)
}

func (h *PartHandler) UpdateStock(c *fiber.Ctx) error {
	var body struct {
		NewStock int `json:"newStock"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.parts.SetStock(c.Context(), c.Params("id"), body.NewStock)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(result)
}

func (h *PartHandler) Create(c *fiber.Ctx) error {
	var doc bson.M
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	id, err := h.parts.Create(c.Context(), doc)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"insertedId": id})
}

func (h *PartHandler) Delete(c *fiber.Ctx) error {
	if err := h.parts.Delete(c.Context(), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"message": "Part deleted successfully"})
}

// UploadImage stores the uploaded file and records it on the part. The
// stored object is removed again when the part turns out not to exist.
func (h *PartHandler) UploadImage(c *fiber.Ctx) error {
	id := c.Params("id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing image file"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to open image file"})
	}
	defer file.Close()

	object := fmt.Sprintf("%s_%s%s", id, uuid.NewString(), filepath.Ext(fileHeader.Filename))
	url, err := h.images.Put(c.Context(), object, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return respondErr(c, err)
	}

	if err := h.parts.AttachImage(c.Context(), id, url, object); err != nil {
		// The part is gone or the id was bad; don't keep the orphan object.
		if rmErr := h.images.Remove(context.Background(), object); rmErr != nil {
			log.Printf("orphan image %s not removed: %v", object, rmErr)
		}
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{"image_url": url})
}

func (h *PartHandler) ImageURL(c *fiber.Ctx) error {
	part, err := h.parts.Image(c.Context(), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}

	url, err := h.images.PresignedURL(c.Context(), part.ImageObject, imageURLExpiry)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}
