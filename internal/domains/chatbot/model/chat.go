package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	catalog "foodee-backend/internal/domains/catalog/model"
)

const (
	MessageEmptyQuery = "Câu hỏi không được để trống"
	MessageSuccess    = "Tư vấn thành công"
	MessageNoMatch    = "Không tìm thấy sản phẩm phù hợp"
	MessageFailedFmt  = "Lỗi khi xử lý câu hỏi: %s"
)

type ChatRequest struct {
	Message string `json:"message"`
}

// Validate chỉ giới hạn độ dài; câu hỏi rỗng được service trả lời bằng MessageEmptyQuery
func (r ChatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message, validation.RuneLength(0, 1000).Error("Câu hỏi không được vượt quá 1000 ký tự")),
	)
}

type ChatResponse struct {
	Reply    string               `json:"reply"`
	Message  string               `json:"message"`
	Products []catalog.ProductDTO `json:"products"`
}
