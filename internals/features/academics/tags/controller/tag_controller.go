package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagDTO "spis_backend/internals/features/academics/tags/dto"
	tagModel "spis_backend/internals/features/academics/tags/model"
	helper "spis_backend/internals/helpers"
)

var validate = validator.New()

type TagController struct {
	DB *gorm.DB
}

func NewTagController(db *gorm.DB) *TagController {
	return &TagController{DB: db}
}

func (ctl *TagController) GetTags(c *fiber.Ctx) error {
	var tags []tagModel.TagModel
	if err := ctl.DB.Order("tag_name ASC").Find(&tags).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tags")
	}
	return helper.JsonOK(c, "", tagDTO.FromTagModels(tags))
}

func (ctl *TagController) GetTag(c *fiber.Ctx) error {
	tagID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid tag ID")
	}

	var tag tagModel.TagModel
	if err := ctl.DB.First(&tag, "tag_id = ?", tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tag not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tag")
	}

	return helper.JsonOK(c, "", tagDTO.FromTagModel(&tag))
}

// CreateTag reuses an existing tag on a case-insensitive name match instead
// of failing on the unique constraint.
func (ctl *TagController) CreateTag(c *fiber.Ctx) error {
	var req tagDTO.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.TagName = strings.TrimSpace(req.TagName)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing tagModel.TagModel
	err := ctl.DB.Where("LOWER(tag_name) = ?", strings.ToLower(req.TagName)).First(&existing).Error
	if err == nil {
		return helper.JsonOK(c, "Tag already exists", tagDTO.FromTagModel(&existing))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up tag")
	}

	tag := tagModel.TagModel{TagName: req.TagName}
	if err := ctl.DB.Create(&tag).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create tag")
	}

	return helper.JsonCreated(c, "Tag created", tagDTO.FromTagModel(&tag))
}

func (ctl *TagController) DeleteTag(c *fiber.Ctx) error {
	tagID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid tag ID")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var tag tagModel.TagModel
		if err := tx.First(&tag, "tag_id = ?", tagID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM sp_tags WHERE tag_id = ?", tagID).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tag not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete tag")
	}

	return helper.JsonDeleted(c, "Tag deleted", nil)
}

// GetTagViewCounts sums SP view counts per tag, most viewed first. Tags with
// no tagged SPs come back with zero.
func (ctl *TagController) GetTagViewCounts(c *fiber.Ctx) error {
	var rows []tagDTO.TagViewCountDTO
	if err := ctl.DB.
		Table("tag").
		Select("tag.tag_id, tag.tag_name, COALESCE(SUM(sp.view_count), 0) AS total_views").
		Joins("LEFT JOIN sp_tags ON sp_tags.tag_id = tag.tag_id").
		Joins("LEFT JOIN sp ON sp.sp_id = sp_tags.sp_id").
		Group("tag.tag_id, tag.tag_name").
		Order("total_views DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tag view counts")
	}

	return helper.JsonOK(c, "", rows)
}
