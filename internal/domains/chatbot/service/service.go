package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/shopspring/decimal"

	catalog "foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/domains/chatbot/model"
	"foodee-backend/pkg/logger"
)

const maxProducts = 5

const promptTemplate = "Bạn là một chatbot tư vấn món ăn. Dựa trên câu hỏi của người dùng và danh sách sản phẩm dưới đây, " +
	"hãy đưa ra gợi ý món ăn hoặc loại món ăn phù hợp. Trả lời bằng tiếng Việt, ngắn gọn, thân thiện và tự nhiên, " +
	"như một nhân viên nhà hàng nhiệt tình. Nếu gợi ý sản phẩm cụ thể, chỉ bao gồm tên sản phẩm trong phản hồi, " +
	"không bao gồm ID. Nếu không tìm thấy món phù hợp, trả lời lịch sự.\n\n" +
	"Câu hỏi người dùng: %s\n\n" +
	"Danh sách sản phẩm:\n%s\n\n" +
	"Trả lời:"

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ProductReader interface {
	ListByStatus(ctx context.Context, status catalog.ProductStatus) ([]catalog.Product, error)
}

type ProductTypeReader interface {
	List(ctx context.Context) ([]catalog.ProductType, error)
}

type CategoryReader interface {
	List(ctx context.Context) ([]catalog.Category, error)
}

type ServiceInterface interface {
	Chat(ctx context.Context, query string) model.ChatResponse
}

type Service struct {
	llm        Completer
	products   ProductReader
	types      ProductTypeReader
	categories CategoryReader
	shuffle    func(n int, swap func(i, j int))
}

func NewChatbotService(llm Completer, products ProductReader, types ProductTypeReader, categories CategoryReader) *Service {
	return &Service{
		llm:        llm,
		products:   products,
		types:      types,
		categories: categories,
		shuffle:    rand.Shuffle,
	}
}

// Chat không trả error: mọi lỗi được báo trong Message, Reply rỗng
func (s *Service) Chat(ctx context.Context, query string) model.ChatResponse {
	if strings.TrimSpace(query) == "" {
		logger.Warn("Empty chatbot query", nil)
		return model.ChatResponse{Message: model.MessageEmptyQuery, Products: []catalog.ProductDTO{}}
	}

	products, err := s.relevantProducts(ctx, query)
	if err != nil {
		return s.failed(err)
	}

	reply, err := s.llm.Complete(ctx, buildPrompt(query, products))
	if err != nil {
		return s.failed(err)
	}

	msg := model.MessageSuccess
	if len(products) == 0 {
		msg = model.MessageNoMatch
	}
	logger.Info("Chatbot replied", map[string]interface{}{
		"products": len(products),
	})
	return model.ChatResponse{
		Reply:    reply,
		Message:  msg,
		Products: catalog.ToProductDTOs(products),
	}
}

func (s *Service) failed(err error) model.ChatResponse {
	logger.Error("Chatbot query failed", err)
	return model.ChatResponse{
		Message:  fmt.Sprintf(model.MessageFailedFmt, err.Error()),
		Products: []catalog.ProductDTO{},
	}
}

func (s *Service) relevantProducts(ctx context.Context, query string) ([]catalog.Product, error) {
	available, err := s.products.ListByStatus(ctx, catalog.ProductAvailable)
	if err != nil {
		return nil, fmt.Errorf("list available products: %w", err)
	}

	lower := strings.ToLower(strings.TrimSpace(query))
	var matched []catalog.Product
	if hasSearchIntent(lower) {
		if term := searchTerm(lower); term != "" {
			types, err := s.types.List(ctx)
			if err != nil {
				return nil, fmt.Errorf("list product types: %w", err)
			}
			categories, err := s.categories.List(ctx)
			if err != nil {
				return nil, fmt.Errorf("list categories: %w", err)
			}
			matched = matchProducts(term, available, types, categories)
		}
	}

	if len(matched) == 0 {
		logger.Debug("No keyword match, using random products", map[string]interface{}{"query": lower})
		matched = available
	}
	return s.pick(matched), nil
}

// pick xáo trộn bản sao rồi lấy tối đa maxProducts
func (s *Service) pick(list []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, len(list))
	copy(out, list)
	s.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if len(out) > maxProducts {
		out = out[:maxProducts]
	}
	return out
}

func buildPrompt(query string, products []catalog.Product) string {
	return fmt.Sprintf(promptTemplate, query, productSummary(products))
}

func productSummary(products []catalog.Product) string {
	if len(products) == 0 {
		return "Không có sản phẩm nào đang có sẵn."
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		typeName := orDefault(p.ProductTypeName, "Không xác định")
		categoryName := orDefault(p.CategoryName, "Không có")
		discounted := "Không có"
		if p.DiscountedPrice.GreaterThan(decimal.Zero) {
			discounted = formatVND(p.DiscountedPrice)
		}
		lines = append(lines, fmt.Sprintf("Tên: %s, Loại: %s, Danh mục: %s, Giá: %s VND, Giá giảm: %s VND, Trạng thái: %s",
			p.Name, typeName, categoryName, formatVND(p.OriginalPrice), discounted, p.Status))
	}
	return strings.Join(lines, "\n")
}

// formatVND: 1234567.6 -> "1,234,568"
func formatVND(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
