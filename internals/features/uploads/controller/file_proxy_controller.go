package controller

import (
	"fmt"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"

	helper "spis_backend/internals/helpers"
)

// Google Drive file IDs are url-safe base64-ish tokens.
var driveFileIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,128}$`)

// FileProxyController fronts Google Drive so the browser never talks to
// Drive directly. SP documents live on Drive; their stored documentPath is
// the Drive file ID.
type FileProxyController struct{}

func NewFileProxyController() *FileProxyController {
	return &FileProxyController{}
}

func validDriveID(c *fiber.Ctx) (string, error) {
	fileID := c.Params("fileId")
	if !driveFileIDPattern.MatchString(fileID) {
		return "", helper.JsonError(c, fiber.StatusBadRequest, "Invalid Drive file ID")
	}
	return fileID, nil
}

// Thumbnail proxies the Drive-generated preview image.
func (ctl *FileProxyController) Thumbnail(c *fiber.Ctx) error {
	fileID, err := validDriveID(c)
	if fileID == "" {
		return err
	}
	url := fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w640", fileID)
	if err := proxy.Do(c, url); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Drive thumbnail unavailable")
	}
	c.Response().Header.Del(fiber.HeaderServer)
	return nil
}

// Download proxies the direct-download endpoint.
func (ctl *FileProxyController) Download(c *fiber.Ctx) error {
	fileID, err := validDriveID(c)
	if fileID == "" {
		return err
	}
	url := fmt.Sprintf("https://drive.google.com/uc?export=download&id=%s", fileID)
	if err := proxy.Do(c, url); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Drive download unavailable")
	}
	c.Response().Header.Del(fiber.HeaderServer)
	return nil
}

// Preview redirects to the embeddable Drive viewer.
func (ctl *FileProxyController) Preview(c *fiber.Ctx) error {
	fileID, err := validDriveID(c)
	if fileID == "" {
		return err
	}
	return c.Redirect(fmt.Sprintf("https://drive.google.com/file/d/%s/preview", fileID), fiber.StatusFound)
}
