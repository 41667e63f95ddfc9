package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	adminModel "spis_backend/internals/features/academics/advisers/model"
	studentModel "spis_backend/internals/features/academics/students/model"
	tagModel "spis_backend/internals/features/academics/tags/model"
	"spis_backend/internals/constants"
)

// ResolveAdviser maps a "LastName, FirstName" token to an Admin with the
// faculty role, creating one when no faculty match exists. A same-named Admin
// with a different role is never repurposed. Empty input resolves to nil.
func ResolveAdviser(tx *gorm.DB, raw string) (*adminModel.AdminModel, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	lastName, firstName, err := splitName(raw)
	if err != nil {
		return nil, rowErrorf("invalid adviser format %q: expected 'LastName, FirstName'", raw)
	}

	var candidates []adminModel.AdminModel
	if err := tx.
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("adviser lookup failed: %w", err)
	}

	for i := range candidates {
		if candidates[i].IsFaculty() {
			return &candidates[i], nil
		}
	}

	role := constants.RoleFaculty
	adviser := adminModel.AdminModel{
		FirstName: firstName,
		LastName:  lastName,
		Role:      &role,
	}
	if err := tx.Create(&adviser).Error; err != nil {
		return nil, fmt.Errorf("failed to create adviser %q: %w", raw, err)
	}
	return &adviser, nil
}

// ResolveStudents maps a semicolon-delimited author list to Student records,
// creating missing ones. The match is case-insensitive but field-exact on
// (lastName, firstName). Malformed tokens are appended to rowErrs and
// skipped; they do not fail the whole row by themselves.
func ResolveStudents(tx *gorm.DB, raw string, rowNum int, rowErrs *[]string) ([]studentModel.StudentModel, error) {
	students := []studentModel.StudentModel{}
	if strings.TrimSpace(raw) == "" {
		return students, nil
	}

	for _, token := range strings.Split(raw, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		lastName, firstName, err := splitName(token)
		if err != nil {
			*rowErrs = append(*rowErrs,
				fmt.Sprintf("Row %d: invalid author format %q. Expected 'LastName, FirstName'. Skipping this author.", rowNum, token))
			continue
		}

		var student studentModel.StudentModel
		err = tx.
			Where("LOWER(last_name) = ? AND LOWER(first_name) = ?",
				strings.ToLower(lastName), strings.ToLower(firstName)).
			First(&student).Error
		switch {
		case err == nil:
			students = append(students, student)
		case errors.Is(err, gorm.ErrRecordNotFound):
			student = studentModel.StudentModel{
				FirstName: firstName,
				LastName:  lastName,
			}
			if err := tx.Create(&student).Error; err != nil {
				return nil, fmt.Errorf("failed to create student %q: %w", token, err)
			}
			students = append(students, student)
		default:
			return nil, fmt.Errorf("student lookup failed: %w", err)
		}
	}

	return students, nil
}

// ResolveTags maps a semicolon-delimited tag list to Tag records, matching
// case-insensitively and creating missing ones. A unique-constraint conflict
// from a concurrent upload falls back to a second lookup instead of failing.
func ResolveTags(tx *gorm.DB, raw string) ([]tagModel.TagModel, error) {
	tags := []tagModel.TagModel{}
	if strings.TrimSpace(raw) == "" {
		return tags, nil
	}

	seen := map[string]struct{}{}
	for _, name := range strings.Split(raw, ";") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		normalized := strings.ToLower(name)
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}

		tag, err := findOrCreateTag(tx, name, normalized)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}

func findOrCreateTag(tx *gorm.DB, name, normalized string) (*tagModel.TagModel, error) {
	var tag tagModel.TagModel
	err := tx.Where("LOWER(tag_name) = ?", normalized).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("tag lookup failed: %w", err)
	}

	tag = tagModel.TagModel{TagName: name}
	if err := tx.Create(&tag).Error; err != nil {
		// lost a create race with a concurrent upload; the winner's row is fine
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			var existing tagModel.TagModel
			if lookupErr := tx.Where("LOWER(tag_name) = ?", normalized).First(&existing).Error; lookupErr == nil {
				return &existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return &tag, nil
}
