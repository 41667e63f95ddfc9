package seeds

import (
	"log"

	"gorm.io/gorm"

	"spis_backend/internals/constants"
	facultyModel "spis_backend/internals/features/academics/faculties/model"
)

// SeedFaculties inserts the fixed faculty rows. The importer maps CSV faculty
// codes to these IDs, so the rows must exist with exactly these IDs before
// the first upload.
func SeedFaculties(db *gorm.DB) error {
	for code, id := range constants.FacultyCodes {
		name := constants.FacultyNames[id-1]

		var existing facultyModel.FacultyModel
		err := db.First(&existing, "faculty_id = ?", id).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		faculty := facultyModel.FacultyModel{FacultyID: id, FacultyName: name}
		if err := db.Create(&faculty).Error; err != nil {
			return err
		}
		log.Printf("[INFO] Seeded faculty %d (%s) %s", id, code, name)
	}
	return nil
}
