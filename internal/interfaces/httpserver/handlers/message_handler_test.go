package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"caresma-server/internal/domain/message"
	"caresma-server/internal/interfaces/httpserver/handlers"
	"caresma-server/internal/utils/platformerrors"
)

// MockMessageService is a mock implementation of message.Service for testing.
type MockMessageService struct {
	CreateMessageFunc     func(ctx context.Context, threadID uuid.UUID, role message.Role, content string) (*message.Message, error)
	GetThreadMessagesFunc func(ctx context.Context, threadID uuid.UUID, limit int) ([]*message.Message, error)
	GetMessageCountFunc   func(ctx context.Context, threadID uuid.UUID) (message.Count, error)
}

func (m *MockMessageService) CreateMessage(ctx context.Context, threadID uuid.UUID, role message.Role, content string) (*message.Message, error) {
	if m.CreateMessageFunc != nil {
		return m.CreateMessageFunc(ctx, threadID, role, content)
	}
	return nil, nil
}

func (m *MockMessageService) GetThreadMessages(ctx context.Context, threadID uuid.UUID, limit int) ([]*message.Message, error) {
	if m.GetThreadMessagesFunc != nil {
		return m.GetThreadMessagesFunc(ctx, threadID, limit)
	}
	return nil, nil
}

func (m *MockMessageService) GetMessageCount(ctx context.Context, threadID uuid.UUID) (message.Count, error) {
	if m.GetMessageCountFunc != nil {
		return m.GetMessageCountFunc(ctx, threadID)
	}
	return message.Count{}, nil
}

func setupMessageTestRouter(handler *handlers.MessageHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1/threads/:thread_id/messages")
	{
		v1.POST("", handler.Create)
		v1.GET("", handler.List)
		v1.GET("/count", handler.Count)
	}
	return r
}

func TestMessageHandler_Create(t *testing.T) {
	threadID := uuid.New()
	mockService := &MockMessageService{
		CreateMessageFunc: func(ctx context.Context, tid uuid.UUID, role message.Role, content string) (*message.Message, error) {
			return &message.Message{
				ID:        uuid.New(),
				ThreadID:  tid,
				Role:      role,
				Content:   content,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}

	handler := handlers.NewMessageHandler(mockService, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	body, _ := json.Marshal(map[string]string{"role": "user", "content": "hello"})
	req, _ := http.NewRequest("POST", "/v1/threads/"+threadID.String()+"/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["thread_id"] != threadID.String() {
		t.Errorf("Expected thread_id %s, got %v", threadID, resp["thread_id"])
	}
	if resp["role"] != "user" {
		t.Errorf("Expected role user, got %v", resp["role"])
	}
	if resp["content"] != "hello" {
		t.Errorf("Expected content hello, got %v", resp["content"])
	}
}

func TestMessageHandler_Create_InvalidRole(t *testing.T) {
	mockService := &MockMessageService{
		CreateMessageFunc: func(ctx context.Context, tid uuid.UUID, role message.Role, content string) (*message.Message, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "invalid role", nil)
		},
	}

	handler := handlers.NewMessageHandler(mockService, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	body, _ := json.Marshal(map[string]string{"role": "system", "content": "hello"})
	req, _ := http.NewRequest("POST", "/v1/threads/"+uuid.NewString()+"/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestMessageHandler_Create_InvalidThreadID(t *testing.T) {
	called := false
	mockService := &MockMessageService{
		CreateMessageFunc: func(ctx context.Context, tid uuid.UUID, role message.Role, content string) (*message.Message, error) {
			called = true
			return nil, nil
		},
	}

	handler := handlers.NewMessageHandler(mockService, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	body, _ := json.Marshal(map[string]string{"role": "user", "content": "hello"})
	req, _ := http.NewRequest("POST", "/v1/threads/not-a-uuid/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if called {
		t.Error("Service should not be called for an invalid thread id")
	}
}

func TestMessageHandler_Create_MissingFields(t *testing.T) {
	handler := handlers.NewMessageHandler(&MockMessageService{}, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	req, _ := http.NewRequest("POST", "/v1/threads/"+uuid.NewString()+"/messages", bytes.NewReader([]byte(`{"role":"user"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestMessageHandler_List(t *testing.T) {
	threadID := uuid.New()
	var gotLimit int
	mockService := &MockMessageService{
		GetThreadMessagesFunc: func(ctx context.Context, tid uuid.UUID, limit int) ([]*message.Message, error) {
			gotLimit = limit
			return []*message.Message{
				{ID: uuid.New(), ThreadID: tid, Role: message.RoleUser, Content: "hello", CreatedAt: time.Now().UTC()},
				{ID: uuid.New(), ThreadID: tid, Role: message.RoleAssistant, Content: "hi there", CreatedAt: time.Now().UTC()},
			}, nil
		},
	}

	handler := handlers.NewMessageHandler(mockService, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/threads/"+threadID.String()+"/messages?limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotLimit != 10 {
		t.Errorf("Expected limit 10 passed through, got %d", gotLimit)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("Expected 2 messages, got %d", len(resp.Data))
	}
	if resp.Data[0]["content"] != "hello" {
		t.Errorf("Expected first message hello, got %v", resp.Data[0]["content"])
	}
}

func TestMessageHandler_List_EmptyThread(t *testing.T) {
	handler := handlers.NewMessageHandler(&MockMessageService{}, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/threads/"+uuid.NewString()+"/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"data":[]}` {
		t.Errorf("Expected empty data array, got %s", body)
	}
}

func TestMessageHandler_Count(t *testing.T) {
	mockService := &MockMessageService{
		GetMessageCountFunc: func(ctx context.Context, tid uuid.UUID) (message.Count, error) {
			return message.Count{Total: 5, UserMessages: 3, AssistantMessages: 2}, nil
		},
	}

	handler := handlers.NewMessageHandler(mockService, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/threads/"+uuid.NewString()+"/messages/count", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var count message.Count
	if err := json.Unmarshal(w.Body.Bytes(), &count); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if count.Total != 5 || count.UserMessages != 3 || count.AssistantMessages != 2 {
		t.Errorf("Unexpected count payload: %+v", count)
	}
	if count.Total != count.UserMessages+count.AssistantMessages {
		t.Errorf("Total should equal user + assistant: %+v", count)
	}
}
