package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"spis_backend/internals/constants"
)

// ExpectedColumns is the CSV layout the bulk upload accepts:
// title, authors, adviser, dateIssued, uri, abstractText, documentPath,
// tags, year, semester, faculty.
const ExpectedColumns = 11

// RowError marks a validation problem scoped to a single CSV row. Rows
// failing with a RowError are skipped and reported; anything else is an
// infrastructure fault.
type RowError struct {
	Reason string
}

func (e *RowError) Error() string { return e.Reason }

func rowErrorf(format string, args ...any) error {
	return &RowError{Reason: fmt.Sprintf(format, args...)}
}

// IsRowError reports whether err is a row-scoped validation error.
func IsRowError(err error) bool {
	_, ok := err.(*RowError)
	return ok
}

// ParsedRow holds the typed, validated fields of one CSV row.
type ParsedRow struct {
	Title        string
	AuthorsRaw   string // "Last, First;Last, First", may be empty
	AdviserRaw   string // "Last, First", may be empty
	DateIssued   *time.Time
	URI          string
	AbstractText string
	DocumentPath string
	TagsRaw      string // "tag1;tag2", may be empty
	Year         *int
	Semester     *string
	FacultyID    int
}

var validSemesters = map[string]struct{}{
	"1st":     {},
	"2nd":     {},
	"midyear": {},
}

// ParseRow validates one raw CSV row and converts it into typed fields.
// Every failure is a RowError; the caller decides how to report it.
func ParseRow(cells []string) (*ParsedRow, error) {
	if len(cells) < ExpectedColumns {
		return nil, rowErrorf("expected %d columns, got %d", ExpectedColumns, len(cells))
	}

	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	row := &ParsedRow{
		Title:        cells[0],
		AuthorsRaw:   cells[1],
		AdviserRaw:   cells[2],
		URI:          cells[4],
		AbstractText: cells[5],
		DocumentPath: cells[6],
		TagsRaw:      cells[7],
	}

	if row.Title == "" {
		return nil, rowErrorf("title is missing")
	}

	if dateStr := cells[3]; dateStr != "" {
		// yyyy-MM, normalized to the first day of that month
		t, err := time.Parse("2006-01", dateStr)
		if err != nil {
			return nil, rowErrorf("invalid dateIssued %q: expected yyyy-MM", dateStr)
		}
		row.DateIssued = &t
	}

	if yearStr := cells[8]; yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, rowErrorf("invalid year %q: not a number", yearStr)
		}
		row.Year = &year
	}

	if semester := cells[9]; semester != "" {
		if _, ok := validSemesters[strings.ToLower(semester)]; !ok {
			return nil, rowErrorf("invalid semester %q: expected 1st, 2nd or midyear", semester)
		}
		row.Semester = &semester
	}

	facultyCode := cells[10]
	if facultyCode == "" {
		return nil, rowErrorf("faculty code is missing")
	}
	facultyID, ok := constants.FacultyIDFromCode(facultyCode)
	if !ok {
		return nil, rowErrorf("unknown faculty code %q", facultyCode)
	}
	row.FacultyID = facultyID

	return row, nil
}

// splitName splits a "LastName, FirstName" token on the first comma.
func splitName(raw string) (lastName, firstName string, err error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return "", "", rowErrorf("invalid name format %q: expected 'LastName, FirstName'", raw)
	}
	lastName = strings.TrimSpace(parts[0])
	firstName = strings.TrimSpace(parts[1])
	if lastName == "" || firstName == "" {
		return "", "", rowErrorf("invalid name format %q: empty name part", raw)
	}
	return lastName, firstName, nil
}
