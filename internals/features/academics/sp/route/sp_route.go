package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	spController "spis_backend/internals/features/academics/sp/controller"
	"spis_backend/internals/middlewares"
)

// SPPublicRoutes: browsing and analytics, no auth required.
func SPPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := spController.NewSPController(db)

	sp := r.Group("/sp")
	sp.Get("/", ctl.GetAllSP)                             // GET /api/sp
	sp.Get("/filter", ctl.FilterSPs)                      // GET /api/sp/filter?adviserIds=&tagIds=&facultyId=&searchTerm=
	sp.Get("/tagged", ctl.GetSPsWithTags)                 // GET /api/sp/tagged?tagIds=1,2
	sp.Get("/top-sps", ctl.GetMostViewedSPs)              // GET /api/sp/top-sps?limit=50
	sp.Get("/top-advisers", ctl.GetTopAdvisersByViews)    // GET /api/sp/top-advisers
	sp.Get("/adviser/:adviserId", ctl.GetSPFromAdviser)   // GET /api/sp/adviser/:adviserId
	sp.Get("/student/:studentId", ctl.GetSPFromStudent)   // GET /api/sp/student/:studentId
	sp.Get("/faculty/:facultyId", ctl.GetSPFromFaculty)   // GET /api/sp/faculty/:facultyId
	sp.Get("/:id", ctl.GetSP)                             // GET /api/sp/:id (counts the view)
	sp.Get("/:id/view-count", ctl.GetSPViewCount)         // GET /api/sp/:id/view-count
	sp.Post("/:id/view", ctl.IncrementViewCount)          // POST /api/sp/:id/view
}

// SPAdminRoutes: mutations, requires a logged-in admin.
func SPAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := spController.NewSPController(db)
	importCtl := spController.NewSPImportController(db)

	sp := r.Group("/sp")
	sp.Post("/", ctl.CreateSP)    // POST /api/a/sp
	sp.Put("/:id", ctl.UpdateSP)  // PUT  /api/a/sp/:id

	// Bulk CSV upload, rate limited separately from the global limiter.
	sp.Post("/upload", middlewares.UploadRateLimiter(), importCtl.UploadCSV) // POST /api/a/sp/upload
}
