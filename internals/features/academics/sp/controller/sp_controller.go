package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminModel "spis_backend/internals/features/academics/advisers/model"
	spDTO "spis_backend/internals/features/academics/sp/dto"
	spModel "spis_backend/internals/features/academics/sp/model"
	studentModel "spis_backend/internals/features/academics/students/model"
	tagModel "spis_backend/internals/features/academics/tags/model"
	helper "spis_backend/internals/helpers"
)

var validate = validator.New()

type SPController struct {
	DB *gorm.DB
}

func NewSPController(db *gorm.DB) *SPController {
	return &SPController{DB: db}
}

func (ctl *SPController) withRelations() *gorm.DB {
	return ctl.DB.Preload("Tags").Preload("Students")
}

// GetSP returns one SP and counts the visit.
func (ctl *SPController) GetSP(c *fiber.Ctx) error {
	spID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid SP ID")
	}

	var sp spModel.SPModel
	if err := ctl.withRelations().First(&sp, "sp_id = ?", spID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "SP not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load SP")
	}

	if err := ctl.DB.Model(&spModel.SPModel{}).
		Where("sp_id = ?", spID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count view")
	}
	sp.ViewCount++

	return helper.JsonOK(c, "", spDTO.FromSPModel(&sp))
}

// GetAllSP lists SPs with pagination.
func (ctl *SPController) GetAllSP(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&spModel.SPModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count SPs")
	}

	var sps []spModel.SPModel
	if err := ctl.withRelations().
		Order("sp_id DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&sps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load SPs")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", spDTO.FromSPModels(sps), &pagination)
}

// FilterSPs applies the combined adviser/tag/faculty/search filter.
func (ctl *SPController) FilterSPs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctl.DB.Model(&spModel.SPModel{})

	if adviserIDs := parseIDList(c.Query("adviserIds")); len(adviserIDs) > 0 {
		query = query.Where("adviser_id IN ?", adviserIDs)
	}
	if tagIDs := parseIDList(c.Query("tagIds")); len(tagIDs) > 0 {
		query = query.Where("sp_id IN (SELECT sp_id FROM sp_tags WHERE tag_id IN ?)", tagIDs)
	}
	if facultyID, err := strconv.Atoi(c.Query("facultyId")); err == nil && facultyID > 0 {
		query = query.Where("faculty_id = ?", facultyID)
	}
	if term := strings.TrimSpace(c.Query("searchTerm")); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(abstract_text) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count SPs")
	}

	var sps []spModel.SPModel
	if err := query.
		Preload("Tags").Preload("Students").
		Order("sp_id DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&sps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to filter SPs")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", spDTO.FromSPModels(sps), &pagination)
}

func (ctl *SPController) GetSPFromAdviser(c *fiber.Ctx) error {
	adviserID, err := c.ParamsInt("adviserId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid adviser ID")
	}
	return ctl.listWhere(c, "adviser_id = ?", adviserID)
}

func (ctl *SPController) GetSPFromFaculty(c *fiber.Ctx) error {
	facultyID, err := c.ParamsInt("facultyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty ID")
	}
	return ctl.listWhere(c, "faculty_id = ?", facultyID)
}

func (ctl *SPController) GetSPFromStudent(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}
	return ctl.listWhere(c, "sp_id IN (SELECT sp_id FROM sp_students WHERE student_id = ?)", studentID)
}

// GetSPsWithTags lists SPs carrying any of the given tags; with no tagIds it
// behaves like the plain list.
func (ctl *SPController) GetSPsWithTags(c *fiber.Ctx) error {
	tagIDs := parseIDList(c.Query("tagIds"))
	if len(tagIDs) == 0 {
		return ctl.GetAllSP(c)
	}
	return ctl.listWhere(c, "sp_id IN (SELECT sp_id FROM sp_tags WHERE tag_id IN ?)", tagIDs)
}

func (ctl *SPController) listWhere(c *fiber.Ctx, cond string, args ...any) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&spModel.SPModel{}).Where(cond, args...).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count SPs")
	}

	var sps []spModel.SPModel
	if err := ctl.withRelations().
		Where(cond, args...).
		Order("sp_id DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&sps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load SPs")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", spDTO.FromSPModels(sps), &pagination)
}

// CreateSP creates an SP from already-persisted related IDs.
func (ctl *SPController) CreateSP(c *fiber.Ctx) error {
	var req spDTO.CreateSPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	dateIssued, err := spDTO.ParseDateIssued(req.DateIssued)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid dateIssued: expected yyyy-MM-dd")
	}

	sp := spModel.SPModel{
		Title:        req.Title,
		Year:         req.Year,
		Semester:     req.Semester,
		AbstractText: req.AbstractText,
		URI:          req.URI,
		DocumentPath: req.DocumentPath,
		DateIssued:   dateIssued,
		ViewCount:    0,
		UploadedByID: req.UploadedByID,
		AdviserID:    req.AdviserID,
		FacultyID:    req.FacultyID,
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var uploader adminModel.AdminModel
		if err := tx.First(&uploader, "admin_id = ?", req.UploadedByID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Uploader admin not found")
		}
		if req.AdviserID != nil {
			var adviser adminModel.AdminModel
			if err := tx.First(&adviser, "admin_id = ?", *req.AdviserID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Adviser not found")
			}
		}

		tags, err := findTagsByIDs(tx, req.TagIDs)
		if err != nil {
			return err
		}
		students, err := findStudentsByIDs(tx, req.StudentIDs)
		if err != nil {
			return err
		}
		sp.Tags = tags
		sp.Students = students

		return tx.Create(&sp).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create SP")
	}

	return helper.JsonCreated(c, "SP created", spDTO.FromSPModel(&sp))
}

// UpdateSP applies a field-wise update; nil request fields keep the stored
// value, except adviser/tags/students which follow the request verbatim.
func (ctl *SPController) UpdateSP(c *fiber.Ctx) error {
	spID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid SP ID")
	}

	var req spDTO.UpdateSPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var sp spModel.SPModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Tags").Preload("Students").First(&sp, "sp_id = ?", spID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "SP not found")
			}
			return err
		}

		if req.Title != nil {
			sp.Title = *req.Title
		}
		if req.Year != nil {
			sp.Year = req.Year
		}
		if req.Semester != nil {
			sp.Semester = req.Semester
		}
		if req.AbstractText != nil {
			sp.AbstractText = req.AbstractText
		}
		if req.URI != nil {
			sp.URI = req.URI
		}
		if req.DocumentPath != nil {
			sp.DocumentPath = req.DocumentPath
		}
		if req.DateIssued != nil {
			dateIssued, err := spDTO.ParseDateIssued(req.DateIssued)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid dateIssued: expected yyyy-MM-dd")
			}
			sp.DateIssued = dateIssued
		}
		if req.FacultyID != nil {
			sp.FacultyID = req.FacultyID
		}

		if req.AdviserID != nil {
			var adviser adminModel.AdminModel
			if err := tx.First(&adviser, "admin_id = ?", *req.AdviserID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Adviser not found")
			}
		}
		sp.AdviserID = req.AdviserID

		tags, err := findTagsByIDs(tx, req.TagIDs)
		if err != nil {
			return err
		}
		students, err := findStudentsByIDs(tx, req.StudentIDs)
		if err != nil {
			return err
		}

		if err := tx.Model(&sp).Association("Tags").Replace(tags); err != nil {
			return err
		}
		if err := tx.Model(&sp).Association("Students").Replace(students); err != nil {
			return err
		}
		sp.Tags = tags
		sp.Students = students

		return tx.Save(&sp).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update SP")
	}

	return helper.JsonUpdated(c, "SP updated", spDTO.FromSPModel(&sp))
}

// IncrementViewCount bumps the view counter by one.
func (ctl *SPController) IncrementViewCount(c *fiber.Ctx) error {
	spID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid SP ID")
	}

	res := ctl.DB.Model(&spModel.SPModel{}).
		Where("sp_id = ?", spID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count view")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "SP not found")
	}

	return helper.JsonOK(c, "view counted", nil)
}

func (ctl *SPController) GetSPViewCount(c *fiber.Ctx) error {
	spID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid SP ID")
	}

	var sp spModel.SPModel
	if err := ctl.DB.Select("sp_id", "view_count").First(&sp, "sp_id = ?", spID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "SP not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load SP")
	}

	return helper.JsonOK(c, "", fiber.Map{"spId": sp.SPID, "viewCount": sp.ViewCount})
}

// GetMostViewedSPs returns the most viewed SPs, default top 50.
func (ctl *SPController) GetMostViewedSPs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 100 {
		limit = 50
	}

	var sps []spModel.SPModel
	if err := ctl.withRelations().
		Order("view_count DESC").
		Limit(limit).
		Find(&sps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load top SPs")
	}

	return helper.JsonOK(c, "", spDTO.FromSPModels(sps))
}

type topAdviserRow struct {
	AdminID    int
	TotalViews int64
}

// GetTopAdvisersByViews returns the five advisers whose SPs gathered the
// most views, excluding advisers with zero views.
func (ctl *SPController) GetTopAdvisersByViews(c *fiber.Ctx) error {
	var rows []topAdviserRow
	if err := ctl.DB.
		Table("sp").
		Select("adviser_id AS admin_id, SUM(view_count) AS total_views").
		Where("adviser_id IS NOT NULL").
		Group("adviser_id").
		Having("SUM(view_count) > 0").
		Order("total_views DESC").
		Limit(5).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load top advisers")
	}

	result := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		var adviser adminModel.AdminModel
		if err := ctl.DB.First(&adviser, "admin_id = ?", row.AdminID).Error; err != nil {
			continue
		}
		result = append(result, fiber.Map{
			"adminId":    adviser.AdminID,
			"firstName":  adviser.FirstName,
			"lastName":   adviser.LastName,
			"middleName": adviser.MiddleName,
			"facultyId":  adviser.FacultyID,
			"email":      adviser.Email,
			"imagePath":  adviser.ImagePath,
			"role":       adviser.Role,
			"totalViews": row.TotalViews,
		})
	}

	return helper.JsonOK(c, "", result)
}

/* =========================================================
   helpers
   ========================================================= */

func parseIDList(raw string) []int {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	out := []int{}
	for _, part := range strings.Split(raw, ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && id > 0 {
			out = append(out, id)
		}
	}
	return out
}

func findTagsByIDs(tx *gorm.DB, ids []int) ([]tagModel.TagModel, error) {
	tags := []tagModel.TagModel{}
	if len(ids) == 0 {
		return tags, nil
	}
	if err := tx.Where("tag_id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, fiber.NewError(fiber.StatusNotFound, "One or more tags not found")
	}
	return tags, nil
}

func findStudentsByIDs(tx *gorm.DB, ids []int) ([]studentModel.StudentModel, error) {
	students := []studentModel.StudentModel{}
	if len(ids) == 0 {
		return students, nil
	}
	if err := tx.Where("student_id IN ?", ids).Find(&students).Error; err != nil {
		return nil, err
	}
	if len(students) != len(ids) {
		return nil, fiber.NewError(fiber.StatusNotFound, "One or more students not found")
	}
	return students, nil
}
