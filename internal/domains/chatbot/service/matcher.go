package service

import (
	"regexp"
	"strings"

	catalog "foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/shared/utils"
)

var intentKeywords = []string{"tìm", "món", "ăn gì", "nhà hàng", "gợi ý", "tư vấn", "có", "không"}

// cụm nhiều từ phải bỏ trước từ đơn
var stopPhrases = []string{"nhà hàng", "gợi ý", "tư vấn", "đề xuất"}

var stopWords = map[string]struct{}{
	"tìm": {}, "món": {}, "ăn": {}, "gì": {}, "các": {}, "của": {}, "nào": {}, "nhất": {},
	"có": {}, "không": {}, "1": {}, "vài": {}, "một": {}, "tôi": {}, "mình": {}, "về": {},
}

var punctuation = regexp.MustCompile(`[?!.,;:]+`)

func hasSearchIntent(query string) bool {
	for _, kw := range intentKeywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

// searchTerm bỏ stop-word và dấu câu, query đã lowercase
func searchTerm(query string) string {
	q := punctuation.ReplaceAllString(query, " ")
	for _, phrase := range stopPhrases {
		q = strings.ReplaceAll(q, phrase, " ")
	}

	words := strings.Fields(q)
	kept := words[:0]
	for _, w := range words {
		if _, stop := stopWords[w]; !stop {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// matchProducts: theo tên, rồi loại đầu tiên khớp, rồi danh mục đầu tiên khớp; giữ lần xuất hiện đầu
// So khớp không phân biệt dấu ("pho" khớp "Phở")
func matchProducts(term string, available []catalog.Product, types []catalog.ProductType, categories []catalog.Category) []catalog.Product {
	term = utils.NormalizeSearchText(term)
	if term == "" {
		return nil
	}
	contains := func(name string) bool {
		return strings.Contains(utils.NormalizeSearchText(name), term)
	}

	seen := make(map[int64]struct{})
	var out []catalog.Product
	add := func(keep func(p *catalog.Product) bool) {
		for i := range available {
			p := &available[i]
			if _, dup := seen[p.ID]; dup || !keep(p) {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, *p)
		}
	}

	add(func(p *catalog.Product) bool {
		return contains(p.Name)
	})

	for _, pt := range types {
		if contains(pt.Name) {
			typeID := pt.ID
			add(func(p *catalog.Product) bool { return p.ProductTypeID == typeID })
			break
		}
	}

	for _, c := range categories {
		if contains(c.Name) {
			catID := c.ID
			add(func(p *catalog.Product) bool { return p.CategoryID != nil && *p.CategoryID == catID })
			break
		}
	}
	return out
}
