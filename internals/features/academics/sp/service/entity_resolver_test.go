package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	adminModel "spis_backend/internals/features/academics/advisers/model"
	facultyModel "spis_backend/internals/features/academics/faculties/model"
	spModel "spis_backend/internals/features/academics/sp/model"
	studentModel "spis_backend/internals/features/academics/students/model"
	tagModel "spis_backend/internals/features/academics/tags/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&facultyModel.FacultyModel{},
		&adminModel.AdminModel{},
		&studentModel.GroupModel{},
		&studentModel.StudentModel{},
		&tagModel.TagModel{},
		&spModel.SPModel{},
	))
	return db
}

func strPtr(s string) *string { return &s }

func TestResolveAdviserEmptyInput(t *testing.T) {
	db := setupTestDB(t)

	adviser, err := ResolveAdviser(db, "   ")
	require.NoError(t, err)
	assert.Nil(t, adviser)
}

func TestResolveAdviserCreatesFacultyAccount(t *testing.T) {
	db := setupTestDB(t)

	adviser, err := ResolveAdviser(db, "Reyes, Ana")
	require.NoError(t, err)
	require.NotNil(t, adviser)
	assert.Equal(t, "Reyes", adviser.LastName)
	assert.Equal(t, "Ana", adviser.FirstName)
	require.NotNil(t, adviser.Role)
	assert.Equal(t, "faculty", *adviser.Role)

	var count int64
	require.NoError(t, db.Model(&adminModel.AdminModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveAdviserPrefersFacultyRole(t *testing.T) {
	db := setupTestDB(t)

	staff := adminModel.AdminModel{FirstName: "Ana", LastName: "Reyes", Role: strPtr("staff")}
	require.NoError(t, db.Create(&staff).Error)
	faculty := adminModel.AdminModel{FirstName: "Ana", LastName: "Reyes", Role: strPtr("faculty")}
	require.NoError(t, db.Create(&faculty).Error)

	adviser, err := ResolveAdviser(db, "Reyes, Ana")
	require.NoError(t, err)
	require.NotNil(t, adviser)
	assert.Equal(t, faculty.AdminID, adviser.AdminID)
}

func TestResolveAdviserNeverRepurposesStaffAccount(t *testing.T) {
	db := setupTestDB(t)

	staff := adminModel.AdminModel{FirstName: "Ana", LastName: "Reyes", Role: strPtr("staff")}
	require.NoError(t, db.Create(&staff).Error)

	adviser, err := ResolveAdviser(db, "Reyes, Ana")
	require.NoError(t, err)
	require.NotNil(t, adviser)
	assert.NotEqual(t, staff.AdminID, adviser.AdminID)
	require.NotNil(t, adviser.Role)
	assert.Equal(t, "faculty", *adviser.Role)
}

func TestResolveAdviserMalformedName(t *testing.T) {
	db := setupTestDB(t)

	_, err := ResolveAdviser(db, "NoCommaHere")
	require.Error(t, err)
	assert.True(t, IsRowError(err))
}

func TestResolveStudentsMatchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)

	existing := studentModel.StudentModel{FirstName: "Maria", LastName: "Dela Cruz"}
	require.NoError(t, db.Create(&existing).Error)

	var rowErrs []string
	students, err := ResolveStudents(db, "DELA CRUZ, maria", 1, &rowErrs)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, existing.StudentID, students[0].StudentID)
	assert.Empty(t, rowErrs)

	var count int64
	require.NoError(t, db.Model(&studentModel.StudentModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveStudentsCreatesMissing(t *testing.T) {
	db := setupTestDB(t)

	var rowErrs []string
	students, err := ResolveStudents(db, "Dela Cruz, Maria;Santos, Jose", 1, &rowErrs)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Empty(t, rowErrs)

	var count int64
	require.NoError(t, db.Model(&studentModel.StudentModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestResolveStudentsSkipsMalformedToken(t *testing.T) {
	db := setupTestDB(t)

	var rowErrs []string
	students, err := ResolveStudents(db, "JustOneName;Santos, Jose", 4, &rowErrs)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Santos", students[0].LastName)

	require.Len(t, rowErrs, 1)
	assert.Contains(t, rowErrs[0], "Row 4")
	assert.Contains(t, rowErrs[0], "JustOneName")
}

func TestResolveStudentsEmptyInput(t *testing.T) {
	db := setupTestDB(t)

	var rowErrs []string
	students, err := ResolveStudents(db, "", 1, &rowErrs)
	require.NoError(t, err)
	assert.Empty(t, students)
	assert.Empty(t, rowErrs)
}

func TestResolveTagsMatchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)

	existing := tagModel.TagModel{TagName: "Machine Learning"}
	require.NoError(t, db.Create(&existing).Error)

	tags, err := ResolveTags(db, "machine learning")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, existing.TagID, tags[0].TagID)

	var count int64
	require.NoError(t, db.Model(&tagModel.TagModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveTagsDedupesWithinRow(t *testing.T) {
	db := setupTestDB(t)

	tags, err := ResolveTags(db, "Genomics;genomics;GENOMICS")
	require.NoError(t, err)
	require.Len(t, tags, 1)

	var count int64
	require.NoError(t, db.Model(&tagModel.TagModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveTagsCreatesWithOriginalCasing(t *testing.T) {
	db := setupTestDB(t)

	tags, err := ResolveTags(db, "Natural Language Processing")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Natural Language Processing", tags[0].TagName)
}
