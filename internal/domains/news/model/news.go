package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"foodee-backend/internal/shared"
)

type News struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	CreatedAt   time.Time
}

type NewsDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
}

func (n *News) ToDTO() NewsDTO {
	return NewsDTO{
		ID:          n.ID,
		Title:       n.Title,
		Timestamp:   n.CreatedAt,
		Description: n.Description,
		ImageURL:    n.ImageURL,
	}
}

func ToDTOs(list []News) []NewsDTO {
	out := make([]NewsDTO, 0, len(list))
	for i := range list {
		out = append(out, list[i].ToDTO())
	}
	return out
}

// NewsRequest - body của POST/PUT; Timestamp rỗng thì lấy thời điểm hiện tại
type NewsRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	Timestamp   *time.Time `json:"timestamp"`
}

// Validate - Title đã được trim ở service
func (r NewsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("Tiêu đề tin tức không được để trống"),
			validation.RuneLength(0, 255).Error("Tiêu đề tin tức không được vượt quá 255 ký tự"),
		),
		validation.Field(&r.ImageURL,
			is.URL.Error("URL hình ảnh không hợp lệ"),
			validation.RuneLength(0, 500).Error("URL hình ảnh không được vượt quá 500 ký tự"),
		),
	)
}

var (
	ErrNewsNotFound     = shared.NotFound("NEW001", "Tin tức không tồn tại")
	ErrNewsTitleExists  = shared.Conflict("NEW002", "Tin tức với tiêu đề này đã tồn tại")
	ErrEmptySearchTitle = shared.Validation("NEW003", "Tiêu đề tin tức không được để trống")
)
