package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/domains/chatbot/model"
)

type stubService struct {
	query string
}

func (s *stubService) Chat(_ context.Context, query string) model.ChatResponse {
	s.query = query
	return model.ChatResponse{
		Reply:    "Thử phở nhé",
		Message:  model.MessageSuccess,
		Products: []catalog.ProductDTO{{ID: 1, Name: "Phở bò"}},
	}
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubService{}
	r := gin.New()
	r.POST("/api/chatbot", NewChatbotHandler(svc).Chat)

	w := post(r, `{"message":"tìm món phở"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tìm món phở", svc.query)

	var body struct {
		Data model.ChatResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Thử phở nhé", body.Data.Reply)
	assert.Len(t, body.Data.Products, 1)

	assert.Equal(t, http.StatusBadRequest, post(r, `{"message":`).Code)
	assert.Equal(t, http.StatusBadRequest, post(r, `{"message":"`+strings.Repeat("a", 1001)+`"}`).Code)
}
