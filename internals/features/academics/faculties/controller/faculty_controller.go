package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyModel "spis_backend/internals/features/academics/faculties/model"
	helper "spis_backend/internals/helpers"
)

type FacultyController struct {
	DB *gorm.DB
}

func NewFacultyController(db *gorm.DB) *FacultyController {
	return &FacultyController{DB: db}
}

// GetFaculties returns the fixed faculty list seeded at startup.
func (ctl *FacultyController) GetFaculties(c *fiber.Ctx) error {
	var faculties []facultyModel.FacultyModel
	if err := ctl.DB.Order("faculty_id ASC").Find(&faculties).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load faculties")
	}
	return helper.JsonOK(c, "", faculties)
}

func (ctl *FacultyController) GetFaculty(c *fiber.Ctx) error {
	facultyID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty ID")
	}

	var faculty facultyModel.FacultyModel
	if err := ctl.DB.First(&faculty, "faculty_id = ?", facultyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load faculty")
	}

	return helper.JsonOK(c, "", faculty)
}
