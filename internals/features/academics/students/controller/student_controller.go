package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentDTO "spis_backend/internals/features/academics/students/dto"
	studentModel "spis_backend/internals/features/academics/students/model"
	helper "spis_backend/internals/helpers"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

func (ctl *StudentController) GetStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []studentModel.StudentModel
	if err := ctl.DB.
		Order("last_name ASC, first_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", studentDTO.FromStudentModels(students), &pagination)
}

func (ctl *StudentController) GetStudent(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student studentModel.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	return helper.JsonOK(c, "", studentDTO.FromStudentModel(&student))
}

func (ctl *StudentController) GetStudentsByFaculty(c *fiber.Ctx) error {
	facultyID, err := c.ParamsInt("facultyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty ID")
	}

	var students []studentModel.StudentModel
	if err := ctl.DB.
		Where("faculty_id = ?", facultyID).
		Order("last_name ASC, first_name ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	return helper.JsonOK(c, "", studentDTO.FromStudentModels(students))
}

func (ctl *StudentController) GetStudentsByGroup(c *fiber.Ctx) error {
	groupID, err := c.ParamsInt("groupId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group ID")
	}

	var students []studentModel.StudentModel
	if err := ctl.DB.
		Where("group_id = ?", groupID).
		Order("last_name ASC, first_name ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	return helper.JsonOK(c, "", studentDTO.FromStudentModels(students))
}

func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student := req.ToModel()
	if err := ctl.DB.Create(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created", studentDTO.FromStudentModel(&student))
}

func (ctl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.MiddleName = req.MiddleName
	student.FacultyID = req.FacultyID
	student.GroupID = req.GroupID

	if err := ctl.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.JsonUpdated(c, "Student updated", studentDTO.FromStudentModel(&student))
}

func (ctl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.First(&student, "student_id = ?", studentID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM sp_students WHERE student_id = ?", studentID).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.JsonDeleted(c, "Student deleted", nil)
}
