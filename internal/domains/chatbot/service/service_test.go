package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/domains/chatbot/model"
)

type stubCompleter struct {
	prompt string
	reply  string
	err    error
	calls  int
}

func (c *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	c.calls++
	c.prompt = prompt
	return c.reply, c.err
}

type stubProducts struct {
	items []catalog.Product
	err   error
}

func (s stubProducts) ListByStatus(_ context.Context, status catalog.ProductStatus) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range s.items {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, s.err
}

type stubTypes []catalog.ProductType

func (s stubTypes) List(context.Context) ([]catalog.ProductType, error) { return s, nil }

type stubCategories []catalog.Category

func (s stubCategories) List(context.Context) ([]catalog.Category, error) { return s, nil }

func int64Ptr(v int64) *int64 { return &v }

func fixtureProducts() []catalog.Product {
	drinks := int64Ptr(2)
	return []catalog.Product{
		{ID: 1, Name: "Phở bò", Status: catalog.ProductAvailable, ProductTypeID: 1, ProductTypeName: "Món nước", OriginalPrice: decimal.NewFromInt(50000)},
		{ID: 2, Name: "Phở gà", Status: catalog.ProductAvailable, ProductTypeID: 1, ProductTypeName: "Món nước", OriginalPrice: decimal.NewFromInt(45000), DiscountedPrice: decimal.NewFromInt(40000)},
		{ID: 3, Name: "Bún chả", Status: catalog.ProductAvailable, ProductTypeID: 1, ProductTypeName: "Món nước", OriginalPrice: decimal.NewFromInt(55000)},
		{ID: 4, Name: "Trà đào", Status: catalog.ProductAvailable, ProductTypeID: 3, ProductTypeName: "Đồ uống", CategoryID: drinks, CategoryName: "Giải khát", OriginalPrice: decimal.NewFromInt(30000)},
		{ID: 5, Name: "Phở cuốn", Status: catalog.ProductDiscontinued, ProductTypeID: 1, OriginalPrice: decimal.NewFromInt(60000)},
		{ID: 6, Name: "Nước cam", Status: catalog.ProductAvailable, ProductTypeID: 3, ProductTypeName: "Đồ uống", CategoryID: drinks, CategoryName: "Giải khát", OriginalPrice: decimal.NewFromInt(25000)},
		{ID: 7, Name: "Cơm tấm", Status: catalog.ProductAvailable, ProductTypeID: 4, ProductTypeName: "Cơm", OriginalPrice: decimal.NewFromInt(50000)},
		{ID: 8, Name: "Bánh mì", Status: catalog.ProductAvailable, ProductTypeID: 5, ProductTypeName: "Ăn sáng", OriginalPrice: decimal.NewFromInt(20000)},
	}
}

func newTestService(llm *stubCompleter, products []catalog.Product) *Service {
	s := NewChatbotService(llm,
		stubProducts{items: products},
		stubTypes{{ID: 1, Name: "Món nước"}, {ID: 3, Name: "Đồ uống"}, {ID: 4, Name: "Cơm"}},
		stubCategories{{ID: 2, Name: "Giải khát"}},
	)
	s.shuffle = func(int, func(i, j int)) {}
	return s
}

func ids(dtos []catalog.ProductDTO) []int64 {
	out := make([]int64, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.ID)
	}
	return out
}

func TestSearchTerm(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"tìm món phở?", "phở"},
		{"gợi ý cho tôi vài món đồ uống", "cho đồ uống"},
		{"nhà hàng có món cơm không", "cơm"},
		{"tư vấn", ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, searchTerm(tt.query))
		})
	}

	assert.True(t, hasSearchIntent("có phở không"))
	assert.False(t, hasSearchIntent("xin chào"))
}

func TestChatEmptyQueryDoesNotCallAPI(t *testing.T) {
	llm := &stubCompleter{reply: "x"}
	resp := newTestService(llm, fixtureProducts()).Chat(context.Background(), "   ")

	assert.Equal(t, model.MessageEmptyQuery, resp.Message)
	assert.Empty(t, resp.Reply)
	assert.NotNil(t, resp.Products)
	assert.Empty(t, resp.Products)
	assert.Equal(t, 0, llm.calls)
}

func TestChatMatchesByNameOnlyAvailable(t *testing.T) {
	llm := &stubCompleter{reply: "Bạn thử Phở bò nhé!"}
	resp := newTestService(llm, fixtureProducts()).Chat(context.Background(), "Tìm món Phở")

	assert.Equal(t, model.MessageSuccess, resp.Message)
	assert.Equal(t, "Bạn thử Phở bò nhé!", resp.Reply)
	assert.Equal(t, []int64{1, 2}, ids(resp.Products))

	assert.Contains(t, llm.prompt, "Câu hỏi người dùng: Tìm món Phở")
	assert.Contains(t, llm.prompt, "Tên: Phở bò, Loại: Món nước, Danh mục: Không có, Giá: 50,000 VND, Giá giảm: Không có VND, Trạng thái: AVAILABLE")
	assert.Contains(t, llm.prompt, "Giá giảm: 40,000 VND")
	assert.NotContains(t, llm.prompt, "Phở cuốn")
}

func TestChatMatchesByTypeAndCategory(t *testing.T) {
	llm := &stubCompleter{reply: "ok"}
	s := newTestService(llm, fixtureProducts())

	resp := s.Chat(context.Background(), "gợi ý đồ uống")
	assert.ElementsMatch(t, []int64{4, 6}, ids(resp.Products))

	resp = s.Chat(context.Background(), "có món giải khát không")
	assert.ElementsMatch(t, []int64{4, 6}, ids(resp.Products))
}

func TestChatFallbackRandomCappedAtFive(t *testing.T) {
	llm := &stubCompleter{reply: "ok"}
	s := newTestService(llm, fixtureProducts())

	resp := s.Chat(context.Background(), "xin chào")
	assert.Len(t, resp.Products, maxProducts)
	for _, p := range resp.Products {
		assert.NotEqual(t, int64(5), p.ID)
	}

	resp = s.Chat(context.Background(), "tìm món lẩu")
	assert.Len(t, resp.Products, maxProducts)
	assert.Equal(t, model.MessageSuccess, resp.Message)
}

func TestChatNoProducts(t *testing.T) {
	llm := &stubCompleter{reply: "Xin lỗi"}
	resp := newTestService(llm, nil).Chat(context.Background(), "tìm phở")

	assert.Equal(t, model.MessageNoMatch, resp.Message)
	assert.Empty(t, resp.Products)
	assert.Contains(t, llm.prompt, "Không có sản phẩm nào đang có sẵn.")
}

func TestChatCompletionError(t *testing.T) {
	llm := &stubCompleter{err: errors.New("Vượt quá giới hạn yêu cầu API")}
	resp := newTestService(llm, fixtureProducts()).Chat(context.Background(), "tìm phở")

	assert.Equal(t, "Lỗi khi xử lý câu hỏi: Vượt quá giới hạn yêu cầu API", resp.Message)
	assert.Empty(t, resp.Reply)
	assert.Empty(t, resp.Products)
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0", formatVND(decimal.Zero))
	assert.Equal(t, "950", formatVND(decimal.NewFromInt(950)))
	assert.Equal(t, "1,234,568", formatVND(decimal.RequireFromString("1234567.6")))
	assert.Equal(t, "100,000", formatVND(decimal.NewFromInt(100000)))
}

func TestPickDoesNotMutateInput(t *testing.T) {
	s := newTestService(&stubCompleter{}, nil)
	s.shuffle = func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	}
	in := fixtureProducts()
	out := s.pick(in)
	require.Len(t, out, maxProducts)
	assert.Equal(t, int64(8), out[0].ID)
	assert.Equal(t, int64(1), in[0].ID)
}

func TestMatchProductsIgnoresDiacritics(t *testing.T) {
	var available []catalog.Product
	for _, p := range fixtureProducts() {
		if p.Status == catalog.ProductAvailable {
			available = append(available, p)
		}
	}
	types := []catalog.ProductType{{ID: 3, Name: "Đồ uống"}}

	got := matchProducts("pho", available, types, nil)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)

	got = matchProducts("do uong", available, types, nil)
	require.Len(t, got, 2)
	assert.Equal(t, int64(4), got[0].ID)
	assert.Equal(t, int64(6), got[1].ID)

	assert.Empty(t, matchProducts("", available, types, nil))
}
