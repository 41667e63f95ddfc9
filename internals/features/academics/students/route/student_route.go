package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "spis_backend/internals/features/academics/students/controller"
)

func StudentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Get("/", ctl.GetStudents)                           // GET /api/students
	students.Get("/faculty/:facultyId", ctl.GetStudentsByFaculty) // GET /api/students/faculty/:facultyId
	students.Get("/group/:groupId", ctl.GetStudentsByGroup)       // GET /api/students/group/:groupId
	students.Get("/:id", ctl.GetStudent)                          // GET /api/students/:id
}

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Post("/", ctl.CreateStudent)       // POST   /api/a/students
	students.Put("/:id", ctl.UpdateStudent)     // PUT    /api/a/students/:id
	students.Delete("/:id", ctl.DeleteStudent)  // DELETE /api/a/students/:id
}
