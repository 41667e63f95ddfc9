package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adviserRoute "spis_backend/internals/features/academics/advisers/route"
	facultyRoute "spis_backend/internals/features/academics/faculties/route"
	spRoute "spis_backend/internals/features/academics/sp/route"
	studentRoute "spis_backend/internals/features/academics/students/route"
	tagRoute "spis_backend/internals/features/academics/tags/route"
	uploadsRoute "spis_backend/internals/features/uploads/route"
	authRoute "spis_backend/internals/features/users/auth/route"
	authMiddleware "spis_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	spRoute.SPPublicRoutes(public, db)
	adviserRoute.AdviserPublicRoutes(public, db)
	studentRoute.StudentPublicRoutes(public, db)
	tagRoute.TagPublicRoutes(public, db)
	facultyRoute.FacultyPublicRoutes(public, db)
	uploadsRoute.FilePublicRoutes(public)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRole("faculty", "staff"),
	)

	spRoute.SPAdminRoutes(admin, db)
	adviserRoute.AdviserAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	tagRoute.TagAdminRoutes(admin, db)
	uploadsRoute.FileAdminRoutes(admin)

	log.Println("[INFO] All routes mounted")
}
