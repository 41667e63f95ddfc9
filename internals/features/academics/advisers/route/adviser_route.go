package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adviserController "spis_backend/internals/features/academics/advisers/controller"
)

func AdviserPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := adviserController.NewAdviserController(db)

	advisers := r.Group("/advisers")
	advisers.Get("/", ctl.GetAdvisers)                           // GET /api/advisers
	advisers.Get("/all", ctl.GetAllAdvisers)                     // GET /api/advisers/all
	advisers.Get("/faculty/:facultyId", ctl.GetAdvisersByFaculty) // GET /api/advisers/faculty/:facultyId
	advisers.Get("/sp/:spId", ctl.GetAdviserOfSP)                // GET /api/advisers/sp/:spId
	advisers.Get("/:id", ctl.GetAdviser)                         // GET /api/advisers/:id
}

func AdviserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := adviserController.NewAdviserController(db)

	advisers := r.Group("/advisers")
	advisers.Put("/:id", ctl.UpdateAdviser) // PUT /api/a/advisers/:id
}
