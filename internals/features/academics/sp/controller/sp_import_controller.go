package controller

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	spService "spis_backend/internals/features/academics/sp/service"
	helper "spis_backend/internals/helpers"
)

type SPImportController struct {
	Service *spService.ImportService
}

func NewSPImportController(db *gorm.DB) *SPImportController {
	return &SPImportController{Service: spService.NewImportService(db)}
}

// UploadCSV receives a multipart CSV and runs the bulk import. Row failures
// are reported in the summary body, so the request still returns 200 when
// some or even all rows are skipped.
func (ctl *SPImportController) UploadCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing csv file in field 'file'")
	}
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".csv" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only .csv files are accepted")
	}

	uploadedByID, err := strconv.Atoi(c.FormValue("uploadedById"))
	if err != nil || uploadedByID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid or missing uploadedById")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not open uploaded file")
	}
	defer file.Close()

	summary, err := ctl.Service.ProcessUpload(file, uploadedByID)
	if err != nil {
		switch {
		case errors.Is(err, spService.ErrUploaderNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Uploading admin not found")
		case errors.Is(err, spService.ErrMissingHeader):
			return helper.JsonError(c, fiber.StatusBadRequest, "CSV file is empty or missing its header row")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process csv upload")
		}
	}

	return helper.JsonOK(c, "upload processed", summary)
}
