package dto

import (
	tagModel "spis_backend/internals/features/academics/tags/model"
)

type TagDTO struct {
	TagID   int    `json:"tagId"`
	TagName string `json:"tagName"`
}

func FromTagModel(m *tagModel.TagModel) TagDTO {
	return TagDTO{TagID: m.TagID, TagName: m.TagName}
}

func FromTagModels(models []tagModel.TagModel) []TagDTO {
	out := make([]TagDTO, 0, len(models))
	for i := range models {
		out = append(out, FromTagModel(&models[i]))
	}
	return out
}

type CreateTagRequest struct {
	TagName string `json:"tagName" validate:"required,min=1,max=120"`
}

// TagViewCountDTO is one row of the tag analytics endpoint: a tag plus the
// summed view counts of every SP carrying it.
type TagViewCountDTO struct {
	TagID      int    `json:"tagId"`
	TagName    string `json:"tagName"`
	TotalViews int64  `json:"totalViews"`
}
