package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCells() []string {
	return []string{
		"Protein Folding Prediction",                 // title
		"Dela Cruz, Maria;Santos, Jose",              // authors
		"Reyes, Ana",                                 // adviser
		"2023-09",                                    // dateIssued
		"https://hdl.example.org/123",                // uri
		"We predict protein folds.",                  // abstractText
		"1aBcDeFgHiJkLmNo",                           // documentPath
		"Machine Learning;Bioinformatics",            // tags
		"2023",                                       // year
		"1st",                                        // semester
		"BSCS",                                       // faculty
	}
}

func TestParseRowValid(t *testing.T) {
	row, err := ParseRow(validCells())
	require.NoError(t, err)

	assert.Equal(t, "Protein Folding Prediction", row.Title)
	assert.Equal(t, "Dela Cruz, Maria;Santos, Jose", row.AuthorsRaw)
	assert.Equal(t, "Reyes, Ana", row.AdviserRaw)
	assert.Equal(t, "Machine Learning;Bioinformatics", row.TagsRaw)
	assert.Equal(t, 2, row.FacultyID)

	require.NotNil(t, row.Year)
	assert.Equal(t, 2023, *row.Year)
	require.NotNil(t, row.Semester)
	assert.Equal(t, "1st", *row.Semester)

	require.NotNil(t, row.DateIssued)
	assert.Equal(t, 2023, row.DateIssued.Year())
	assert.Equal(t, time.September, row.DateIssued.Month())
	assert.Equal(t, 1, row.DateIssued.Day())
}

func TestParseRowTrimsWhitespace(t *testing.T) {
	cells := validCells()
	cells[0] = "  Protein Folding Prediction  "
	cells[10] = " bscs "

	row, err := ParseRow(cells)
	require.NoError(t, err)
	assert.Equal(t, "Protein Folding Prediction", row.Title)
	assert.Equal(t, 2, row.FacultyID)
}

func TestParseRowMissingTitle(t *testing.T) {
	cells := validCells()
	cells[0] = "   "

	_, err := ParseRow(cells)
	require.Error(t, err)
	assert.True(t, IsRowError(err))
	assert.Contains(t, err.Error(), "title")
}

func TestParseRowTooFewColumns(t *testing.T) {
	_, err := ParseRow([]string{"only", "four", "cells", "here"})
	require.Error(t, err)
	assert.True(t, IsRowError(err))
}

func TestParseRowInvalidDate(t *testing.T) {
	cells := validCells()
	cells[3] = "2023-13"

	_, err := ParseRow(cells)
	require.Error(t, err)
	assert.True(t, IsRowError(err))
	assert.Contains(t, err.Error(), "dateIssued")
}

func TestParseRowEmptyDateAllowed(t *testing.T) {
	cells := validCells()
	cells[3] = ""

	row, err := ParseRow(cells)
	require.NoError(t, err)
	assert.Nil(t, row.DateIssued)
}

func TestParseRowInvalidYear(t *testing.T) {
	cells := validCells()
	cells[8] = "twenty-three"

	_, err := ParseRow(cells)
	require.Error(t, err)
	assert.True(t, IsRowError(err))
}

func TestParseRowSemesterCaseInsensitive(t *testing.T) {
	cells := validCells()
	cells[9] = "MIDYEAR"

	row, err := ParseRow(cells)
	require.NoError(t, err)
	require.NotNil(t, row.Semester)
	assert.Equal(t, "MIDYEAR", *row.Semester)
}

func TestParseRowInvalidSemester(t *testing.T) {
	cells := validCells()
	cells[9] = "3rd"

	_, err := ParseRow(cells)
	require.Error(t, err)
	assert.True(t, IsRowError(err))
}

func TestParseRowFacultyCodes(t *testing.T) {
	cells := validCells()
	cells[10] = "BSAP"
	row, err := ParseRow(cells)
	require.NoError(t, err)
	assert.Equal(t, 3, row.FacultyID)

	cells[10] = "BSXX"
	_, err = ParseRow(cells)
	require.Error(t, err)
	assert.True(t, IsRowError(err))

	cells[10] = ""
	_, err = ParseRow(cells)
	require.Error(t, err)
	assert.True(t, IsRowError(err))
}

func TestSplitName(t *testing.T) {
	last, first, err := splitName("Dela Cruz, Maria")
	require.NoError(t, err)
	assert.Equal(t, "Dela Cruz", last)
	assert.Equal(t, "Maria", first)

	// second comma belongs to the first name
	last, first, err = splitName("Santos, Jose, Jr.")
	require.NoError(t, err)
	assert.Equal(t, "Santos", last)
	assert.Equal(t, "Jose, Jr.", first)

	_, _, err = splitName("NoCommaHere")
	require.Error(t, err)

	_, _, err = splitName(", Maria")
	require.Error(t, err)
}
