package route

import (
	"github.com/gofiber/fiber/v2"

	uploadsController "spis_backend/internals/features/uploads/controller"
	"spis_backend/internals/middlewares"
)

// FilePublicRoutes: serving stored images and proxying Drive documents.
func FilePublicRoutes(r fiber.Router) {
	uploadCtl := uploadsController.NewFileUploadController()
	proxyCtl := uploadsController.NewFileProxyController()

	files := r.Group("/files")
	files.Get("/images/:filename", uploadCtl.ServeImage) // GET /api/files/images/:filename

	drive := files.Group("/drive")
	drive.Get("/:fileId/thumbnail", proxyCtl.Thumbnail) // GET /api/files/drive/:fileId/thumbnail
	drive.Get("/:fileId/download", proxyCtl.Download)   // GET /api/files/drive/:fileId/download
	drive.Get("/:fileId/preview", proxyCtl.Preview)     // GET /api/files/drive/:fileId/preview
}

// FileAdminRoutes: image uploads, auth handled at the group mount.
func FileAdminRoutes(r fiber.Router) {
	uploadCtl := uploadsController.NewFileUploadController()

	files := r.Group("/files")
	files.Post("/images", middlewares.UploadRateLimiter(), uploadCtl.UploadImage) // POST /api/a/files/images
}
