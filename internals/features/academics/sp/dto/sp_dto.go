package dto

import (
	"time"

	"gorm.io/datatypes"

	spModel "spis_backend/internals/features/academics/sp/model"
)

/* =========================================================
   RESPONSE DTO
   ========================================================= */

// SPDTO flattens an SP aggregate for the frontend: related entities are
// carried as ID lists plus a preformatted "Last, First" author list.
type SPDTO struct {
	SPID         int     `json:"spId"`
	Title        string  `json:"title"`
	Year         *int    `json:"year,omitempty"`
	Semester     *string `json:"semester,omitempty"`
	AbstractText *string `json:"abstractText,omitempty"`
	URI          *string `json:"uri,omitempty"`
	DocumentPath *string `json:"documentPath,omitempty"`
	DateIssued   *string `json:"dateIssued,omitempty"` // yyyy-MM-dd
	UploadedByID int     `json:"uploadedById"`
	AdviserID    *int    `json:"adviserId,omitempty"`
	FacultyID    *int    `json:"facultyId,omitempty"`
	TagIDs       []int   `json:"tagIds"`
	StudentIDs   []int   `json:"studentIds"`
	Authors      []string `json:"authors"`
	ViewCount    int     `json:"viewCount"`
}

func FromSPModel(m *spModel.SPModel) SPDTO {
	dto := SPDTO{
		SPID:         m.SPID,
		Title:        m.Title,
		Year:         m.Year,
		Semester:     m.Semester,
		AbstractText: m.AbstractText,
		URI:          m.URI,
		DocumentPath: m.DocumentPath,
		UploadedByID: m.UploadedByID,
		AdviserID:    m.AdviserID,
		FacultyID:    m.FacultyID,
		TagIDs:       make([]int, 0, len(m.Tags)),
		StudentIDs:   make([]int, 0, len(m.Students)),
		Authors:      make([]string, 0, len(m.Students)),
		ViewCount:    m.ViewCount,
	}

	if m.DateIssued != nil {
		s := time.Time(*m.DateIssued).Format("2006-01-02")
		dto.DateIssued = &s
	}

	for _, t := range m.Tags {
		dto.TagIDs = append(dto.TagIDs, t.TagID)
	}
	for _, st := range m.Students {
		dto.StudentIDs = append(dto.StudentIDs, st.StudentID)
		author := st.LastName
		if st.FirstName != "" {
			author += ", " + st.FirstName
		}
		dto.Authors = append(dto.Authors, author)
	}

	return dto
}

func FromSPModels(models []spModel.SPModel) []SPDTO {
	out := make([]SPDTO, 0, len(models))
	for i := range models {
		out = append(out, FromSPModel(&models[i]))
	}
	return out
}

/* =========================================================
   REQUEST DTO
   ========================================================= */

type CreateSPRequest struct {
	Title        string  `json:"title" validate:"required,min=1"`
	Year         *int    `json:"year" validate:"omitempty,min=1900,max=2200"`
	Semester     *string `json:"semester" validate:"omitempty"`
	AbstractText *string `json:"abstractText" validate:"omitempty"`
	URI          *string `json:"uri" validate:"omitempty"`
	DocumentPath *string `json:"documentPath" validate:"omitempty"`
	DateIssued   *string `json:"dateIssued" validate:"omitempty,datetime=2006-01-02"`
	UploadedByID int     `json:"uploadedById" validate:"required,min=1"`
	AdviserID    *int    `json:"adviserId" validate:"omitempty,min=1"`
	FacultyID    *int    `json:"facultyId" validate:"omitempty,min=1"`
	TagIDs       []int   `json:"tagIds" validate:"omitempty,dive,min=1"`
	StudentIDs   []int   `json:"studentIds" validate:"omitempty,dive,min=1"`
}

type UpdateSPRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1"`
	Year         *int    `json:"year" validate:"omitempty,min=1900,max=2200"`
	Semester     *string `json:"semester" validate:"omitempty"`
	AbstractText *string `json:"abstractText" validate:"omitempty"`
	URI          *string `json:"uri" validate:"omitempty"`
	DocumentPath *string `json:"documentPath" validate:"omitempty"`
	DateIssued   *string `json:"dateIssued" validate:"omitempty,datetime=2006-01-02"`
	AdviserID    *int    `json:"adviserId" validate:"omitempty,min=1"`
	FacultyID    *int    `json:"facultyId" validate:"omitempty,min=1"`
	TagIDs       []int   `json:"tagIds" validate:"omitempty,dive,min=1"`
	StudentIDs   []int   `json:"studentIds" validate:"omitempty,dive,min=1"`
}

// ParseDateIssued converts the yyyy-MM-dd request field to the stored type.
func ParseDateIssued(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}
