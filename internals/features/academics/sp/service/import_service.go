package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	adminModel "spis_backend/internals/features/academics/advisers/model"
	spModel "spis_backend/internals/features/academics/sp/model"
)

// Batch-fatal conditions. Everything else is reported per row.
var (
	ErrUploaderNotFound = errors.New("uploading admin not found")
	ErrMissingHeader    = errors.New("csv file is empty or header row is missing")
)

// ImportSummary is the caller-facing result of one bulk upload.
type ImportSummary struct {
	SuccessCount  int      `json:"successCount"`
	ErrorCount    int      `json:"errorCount"`
	Errors        []string `json:"errors"`
	ProcessedRows int      `json:"processedRows"`
}

// ImportService drives the CSV bulk upload: stream the file, validate and
// resolve each row, and persist one SP aggregate per valid row. Each row runs
// in its own transaction, so a skipped row leaves no advisers, students or
// tags behind. Batch-fatal checks all happen before the first row.
type ImportService struct {
	DB *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{DB: db}
}

func (s *ImportService) ProcessUpload(r io.Reader, uploadedByID int) (*ImportSummary, error) {
	var uploader adminModel.AdminModel
	if err := s.DB.First(&uploader, "admin_id = ?", uploadedByID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploaderNotFound
		}
		return nil, fmt.Errorf("uploader lookup failed: %w", err)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // column-count problems are row errors, not file errors

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingHeader
		}
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	summary := &ImportSummary{Errors: []string{}}
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		summary.ProcessedRows++
		rowNum := summary.ProcessedRows

		if err != nil {
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("Row %d: unreadable csv line: %v. Skipping row.", rowNum, err))
			continue
		}

		s.importRow(cells, rowNum, uploader.AdminID, summary)
	}

	summary.ErrorCount = len(summary.Errors)
	log.Printf("[INFO] SP upload finished. Processed: %d, Succeeded: %d, Failed: %d",
		summary.ProcessedRows, summary.SuccessCount, summary.ErrorCount)
	return summary, nil
}

func (s *ImportService) importRow(cells []string, rowNum, uploaderID int, summary *ImportSummary) {
	// Author-token problems are reported even when the rest of the row
	// succeeds, so they are collected outside the transaction.
	rowErrs := []string{}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		row, err := ParseRow(cells)
		if err != nil {
			return err
		}

		adviser, err := ResolveAdviser(tx, row.AdviserRaw)
		if err != nil {
			return err
		}

		students, err := ResolveStudents(tx, row.AuthorsRaw, rowNum, &rowErrs)
		if err != nil {
			return err
		}
		if len(students) == 0 && row.AuthorsRaw != "" {
			return rowErrorf("no valid students could be resolved from %q", row.AuthorsRaw)
		}

		tags, err := ResolveTags(tx, row.TagsRaw)
		if err != nil {
			return err
		}

		sp := spModel.SPModel{
			Title:        row.Title,
			Year:         row.Year,
			Semester:     row.Semester,
			ViewCount:    0,
			UploadedByID: uploaderID,
			FacultyID:    &row.FacultyID,
			Tags:         tags,
			Students:     students,
		}
		if row.AbstractText != "" {
			sp.AbstractText = &row.AbstractText
		}
		if row.URI != "" {
			sp.URI = &row.URI
		}
		if row.DocumentPath != "" {
			sp.DocumentPath = &row.DocumentPath
		}
		if row.DateIssued != nil {
			d := datatypes.Date(*row.DateIssued)
			sp.DateIssued = &d
		}
		if adviser != nil {
			sp.AdviserID = &adviser.AdminID
		}

		if err := tx.Create(&sp).Error; err != nil {
			return fmt.Errorf("failed to save SP: %w", err)
		}
		return nil
	})

	summary.Errors = append(summary.Errors, rowErrs...)

	if err != nil {
		reason := err.Error()
		if !IsRowError(err) {
			log.Printf("[ERROR] Row %d: unexpected error: %v", rowNum, err)
			reason = "unexpected error processing row - " + reason
		}
		summary.Errors = append(summary.Errors,
			fmt.Sprintf("Row %d: %s. Skipping row.", rowNum, reason))
		return
	}

	summary.SuccessCount++
}
