package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagController "spis_backend/internals/features/academics/tags/controller"
)

func TagPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := tagController.NewTagController(db)

	tags := r.Group("/tags")
	tags.Get("/", ctl.GetTags)                      // GET /api/tags
	tags.Get("/view-counts", ctl.GetTagViewCounts)  // GET /api/tags/view-counts
	tags.Get("/:id", ctl.GetTag)                    // GET /api/tags/:id
}

func TagAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := tagController.NewTagController(db)

	tags := r.Group("/tags")
	tags.Post("/", ctl.CreateTag)      // POST   /api/a/tags
	tags.Delete("/:id", ctl.DeleteTag) // DELETE /api/a/tags/:id
}
