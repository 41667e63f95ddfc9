package controller

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"spis_backend/internals/configs"
	helper "spis_backend/internals/helpers"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type FileUploadController struct{}

func NewFileUploadController() *FileUploadController {
	return &FileUploadController{}
}

// UploadImage stores an adviser or SP image. The file is re-encoded to WebP
// so the stored copy is always bounded in size and format.
func (ctl *FileUploadController) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing image file in field 'file'")
	}
	if fileHeader.Size > maxUploadBytes {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Image exceeds the 10 MB limit")
	}

	webpBytes, err := helper.ConvertImageToWebP(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File is not a supported image")
	}

	if err := os.MkdirAll(configs.UploadDir, 0o755); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to prepare upload directory")
	}

	base := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	filename := helper.GenerateUniqueFilename(base) + ".webp"
	fullPath := filepath.Join(configs.UploadDir, filename)

	if err := os.WriteFile(fullPath, webpBytes, 0o644); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store image")
	}

	return helper.JsonCreated(c, "image uploaded", fiber.Map{
		"imagePath": "/api/files/images/" + filename,
		"filename":  filename,
	})
}

// ServeImage streams a stored image back. Filenames are generated by us, so
// anything with a path separator is rejected outright.
func (ctl *FileUploadController) ServeImage(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if filename == "" || strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid filename")
	}

	fullPath := filepath.Join(configs.UploadDir, filename)
	if _, err := os.Stat(fullPath); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Image not found")
	}

	return c.SendFile(fullPath)
}
