package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adviserDTO "spis_backend/internals/features/academics/advisers/dto"
	adminModel "spis_backend/internals/features/academics/advisers/model"
	spModel "spis_backend/internals/features/academics/sp/model"
	helper "spis_backend/internals/helpers"
)

var validate = validator.New()

type AdviserController struct {
	DB *gorm.DB
}

func NewAdviserController(db *gorm.DB) *AdviserController {
	return &AdviserController{DB: db}
}

// GetAdvisers lists admins holding the faculty role, paginated.
func (ctl *AdviserController) GetAdvisers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctl.DB.Model(&adminModel.AdminModel{}).Where("role = ?", "faculty")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count advisers")
	}

	var advisers []adminModel.AdminModel
	if err := ctl.DB.
		Where("role = ?", "faculty").
		Order("last_name ASC, first_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&advisers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load advisers")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", adviserDTO.FromAdminModels(advisers), &pagination)
}

// GetAllAdvisers returns every faculty admin without pagination, for
// filter dropdowns.
func (ctl *AdviserController) GetAllAdvisers(c *fiber.Ctx) error {
	var advisers []adminModel.AdminModel
	if err := ctl.DB.
		Where("role = ?", "faculty").
		Order("last_name ASC, first_name ASC").
		Find(&advisers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load advisers")
	}
	return helper.JsonOK(c, "", adviserDTO.FromAdminModels(advisers))
}

func (ctl *AdviserController) GetAdviser(c *fiber.Ctx) error {
	adviserID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid adviser ID")
	}

	var adviser adminModel.AdminModel
	if err := ctl.DB.First(&adviser, "admin_id = ?", adviserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Adviser not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load adviser")
	}

	return helper.JsonOK(c, "", adviserDTO.FromAdminModel(&adviser))
}

func (ctl *AdviserController) GetAdvisersByFaculty(c *fiber.Ctx) error {
	facultyID, err := c.ParamsInt("facultyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty ID")
	}

	var advisers []adminModel.AdminModel
	if err := ctl.DB.
		Where("role = ? AND faculty_id = ?", "faculty", facultyID).
		Order("last_name ASC, first_name ASC").
		Find(&advisers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load advisers")
	}

	return helper.JsonOK(c, "", adviserDTO.FromAdminModels(advisers))
}

// GetAdviserOfSP resolves the adviser through the SP record.
func (ctl *AdviserController) GetAdviserOfSP(c *fiber.Ctx) error {
	spID, err := c.ParamsInt("spId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid SP ID")
	}

	var sp spModel.SPModel
	if err := ctl.DB.Select("sp_id", "adviser_id").First(&sp, "sp_id = ?", spID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "SP not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load SP")
	}
	if sp.AdviserID == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "SP has no adviser")
	}

	var adviser adminModel.AdminModel
	if err := ctl.DB.First(&adviser, "admin_id = ?", *sp.AdviserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Adviser not found")
	}

	return helper.JsonOK(c, "", adviserDTO.FromAdminModel(&adviser))
}

// UpdateAdviser applies a partial update to the admin profile.
func (ctl *AdviserController) UpdateAdviser(c *fiber.Ctx) error {
	adviserID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid adviser ID")
	}

	var req adviserDTO.UpdateAdviserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var adviser adminModel.AdminModel
	if err := ctl.DB.First(&adviser, "admin_id = ?", adviserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Adviser not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load adviser")
	}

	if req.FirstName != nil {
		adviser.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		adviser.LastName = *req.LastName
	}
	if req.MiddleName != nil {
		adviser.MiddleName = req.MiddleName
	}
	if req.Role != nil {
		adviser.Role = req.Role
	}
	if req.FacultyID != nil {
		adviser.FacultyID = req.FacultyID
	}
	if req.ImagePath != nil {
		adviser.ImagePath = req.ImagePath
	}
	if req.Description != nil {
		adviser.Description = req.Description
	}

	if err := ctl.DB.Save(&adviser).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update adviser")
	}

	return helper.JsonUpdated(c, "Adviser updated", adviserDTO.FromAdminModel(&adviser))
}
