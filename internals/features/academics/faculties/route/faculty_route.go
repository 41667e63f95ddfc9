package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyController "spis_backend/internals/features/academics/faculties/controller"
)

func FacultyPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := facultyController.NewFacultyController(db)

	faculties := r.Group("/faculties")
	faculties.Get("/", ctl.GetFaculties)  // GET /api/faculties
	faculties.Get("/:id", ctl.GetFaculty) // GET /api/faculties/:id
}
