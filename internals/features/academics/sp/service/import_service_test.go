package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	adminModel "spis_backend/internals/features/academics/advisers/model"
	spModel "spis_backend/internals/features/academics/sp/model"
	studentModel "spis_backend/internals/features/academics/students/model"
	tagModel "spis_backend/internals/features/academics/tags/model"
)

const csvHeader = "title,authors,adviser,dateIssued,uri,abstractText,documentPath,tags,year,semester,faculty"

func seedUploader(t *testing.T, db *gorm.DB) adminModel.AdminModel {
	t.Helper()
	uploader := adminModel.AdminModel{FirstName: "Admin", LastName: "Uploader", Role: strPtr("staff")}
	require.NoError(t, db.Create(&uploader).Error)
	return uploader
}

func buildCSV(rows ...string) string {
	return csvHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestProcessUploadUploaderNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewImportService(db)

	_, err := svc.ProcessUpload(strings.NewReader(buildCSV()), 999)
	require.ErrorIs(t, err, ErrUploaderNotFound)
}

func TestProcessUploadEmptyFile(t *testing.T) {
	db := setupTestDB(t)
	uploader := seedUploader(t, db)
	svc := NewImportService(db)

	_, err := svc.ProcessUpload(strings.NewReader(""), uploader.AdminID)
	require.ErrorIs(t, err, ErrMissingHeader)
}

func TestProcessUploadHeaderOnly(t *testing.T) {
	db := setupTestDB(t)
	uploader := seedUploader(t, db)
	svc := NewImportService(db)

	summary, err := svc.ProcessUpload(strings.NewReader(csvHeader+"\n"), uploader.AdminID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ProcessedRows)
	assert.Equal(t, 0, summary.SuccessCount)
	assert.Equal(t, 0, summary.ErrorCount)
	assert.Empty(t, summary.Errors)
}

func TestProcessUploadValidAndInvalidRow(t *testing.T) {
	db := setupTestDB(t)
	uploader := seedUploader(t, db)
	svc := NewImportService(db)

	csv := buildCSV(
		`"Protein Folding Prediction","Dela Cruz, Maria;Santos, Jose","Reyes, Ana",2023-09,https://hdl.example.org/123,An abstract.,1aBcDeFgHiJkLmNo,"Machine Learning;Bioinformatics",2023,1st,BSCS`,
		`,"Santos, Jose","Reyes, Ana",2023-09,,,,Genomics,2023,1st,BSCS`,
	)

	summary, err := svc.ProcessUpload(strings.NewReader(csv), uploader.AdminID)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ProcessedRows)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 1, summary.ErrorCount)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "Row 2")
	assert.Contains(t, summary.Errors[0], "title")

	var sp spModel.SPModel
	require.NoError(t, db.Preload("Tags").Preload("Students").First(&sp).Error)
	assert.Equal(t, "Protein Folding Prediction", sp.Title)
	assert.Equal(t, 0, sp.ViewCount)
	assert.Equal(t, uploader.AdminID, sp.UploadedByID)
	require.NotNil(t, sp.FacultyID)
	assert.Equal(t, 2, *sp.FacultyID)
	require.NotNil(t, sp.AdviserID)
	assert.Len(t, sp.Tags, 2)
	assert.Len(t, sp.Students, 2)

	require.NotNil(t, sp.DateIssued)
	issued := time.Time(*sp.DateIssued)
	assert.Equal(t, 2023, issued.Year())
	assert.Equal(t, time.September, issued.Month())
	assert.Equal(t, 1, issued.Day())

	// the failed second row must not have created its tag
	var genomicsCount int64
	require.NoError(t, db.Model(&tagModel.TagModel{}).Where("LOWER(tag_name) = ?", "genomics").Count(&genomicsCount).Error)
	assert.EqualValues(t, 0, genomicsCount)
}

func TestProcessUploadAccounting(t *testing.T) {
	db := setupTestDB(t)
	uploader := seedUploader(t, db)
	svc := NewImportService(db)

	csv := buildCSV(
		`Alpha,"Santos, Jose",,,,,,Tag A,2023,1st,BSBC`,
		`Beta,"Santos, Jose",,,,,,Tag B,2023,9th,BSBC`,  // bad semester
		`Gamma,"Santos, Jose",,,,,,Tag C,2023,2nd,BSXX`, // bad faculty
		`Delta,"Santos, Jose",,,,,,Tag D,2023,2nd,BSAP`,
	)

	summary, err := svc.ProcessUpload(strings.NewReader(csv), uploader.AdminID)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.ProcessedRows)
	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 2, summary.ErrorCount)

	var spCount int64
	require.NoError(t, db.Model(&spModel.SPModel{}).Count(&spCount).Error)
	assert.EqualValues(t, 2, spCount)
}

func TestProcessUploadSkippedRowPersistsNothing(t *testing.T) {
	db := setupTestDB(t)
	uploader := seedUploader(t, db)
	svc := NewImportService(db)

	// adviser would be created, then the row fails because no author resolves
	csv := buildCSV(
		`Orphan Row,JustOneName,"Lim, Carlos",,,,,,2023,1st,BSCS`,
	)

	summary, err := svc.ProcessUpload(strings.NewReader(csv), uploader.AdminID)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ProcessedRows)
	assert.Equal(t, 0, summary.SuccessCount)
	// one author warning plus the row failure itself
	assert.Equal(t, 2, summary.ErrorCount)

	var adviserCount int64
	require.NoError(t, db.Model(&adminModel.AdminModel{}).Where("last_name = ?", "Lim").Count(&adviserCount).Error)
	assert.EqualValues(t, 0, adviserCount, "rolled-back row must not leave an adviser behind")

	var spCount int64
	require.NoError(t, db.Model(&spModel.SPModel{}).Count(&spCount).Error)
	assert.EqualValues(t, 0, spCount)
}

func TestProcessUploadAuthorWarningOnSuccessfulRow(t *testing.T) {
	db := setupTestDB(t)
	uploader := seedUploader(t, db)
	svc := NewImportService(db)

	csv := buildCSV(
		`Mixed Authors,"BadToken;Santos, Jose",,,,,,Robotics,2023,1st,BSCS`,
	)

	summary, err := svc.ProcessUpload(strings.NewReader(csv), uploader.AdminID)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 1, summary.ErrorCount)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "BadToken")
	assert.Contains(t, summary.Errors[0], "Skipping this author")

	var sp spModel.SPModel
	require.NoError(t, db.Preload("Students").First(&sp).Error)
	require.Len(t, sp.Students, 1)
	assert.Equal(t, "Santos", sp.Students[0].LastName)
}

func TestProcessUploadRowWithoutAuthorsSucceeds(t *testing.T) {
	db := setupTestDB(t)
	uploader := seedUploader(t, db)
	svc := NewImportService(db)

	csv := buildCSV(
		`No Authors Yet,,,,,,,,2024,2nd,BSBC`,
	)

	summary, err := svc.ProcessUpload(strings.NewReader(csv), uploader.AdminID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 0, summary.ErrorCount)

	var sp spModel.SPModel
	require.NoError(t, db.Preload("Students").First(&sp).Error)
	assert.Empty(t, sp.Students)
	assert.Nil(t, sp.AdviserID)
}

func TestProcessUploadReusesEntitiesAcrossRows(t *testing.T) {
	db := setupTestDB(t)
	uploader := seedUploader(t, db)
	svc := NewImportService(db)

	csv := buildCSV(
		`First,"Santos, Jose","Reyes, Ana",,,,,AI,2023,1st,BSCS`,
		`Second,"santos, JOSE","Reyes, Ana",,,,,ai,2023,2nd,BSCS`,
	)

	summary, err := svc.ProcessUpload(strings.NewReader(csv), uploader.AdminID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.SuccessCount)

	var studentCount, tagCount, adviserCount int64
	require.NoError(t, db.Model(&studentModel.StudentModel{}).Count(&studentCount).Error)
	require.NoError(t, db.Model(&tagModel.TagModel{}).Count(&tagCount).Error)
	require.NoError(t, db.Model(&adminModel.AdminModel{}).Where("role = ?", "faculty").Count(&adviserCount).Error)

	assert.EqualValues(t, 1, studentCount)
	assert.EqualValues(t, 1, tagCount)
	assert.EqualValues(t, 1, adviserCount)
}
