package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hireflow/internal/entity"
	"hireflow/internal/usecase"
	"hireflow/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifications struct {
	listFn        func(receiverID string, limit, offset int) ([]*entity.Notification, int64, error)
	unreadFn      func(receiverID string) (int64, error)
	markReadFn    func(id string) error
	markAllReadFn func(receiverID string) error
	deleteFn      func(id string) error
}

func (s *stubNotifications) Create(in usecase.CreateNotificationInput) (*entity.Notification, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubNotifications) ResolveActions(entityID, entityType, message string) ([]*entity.Notification, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubNotifications) GetNotifications(receiverID string, limit, offset int) ([]*entity.Notification, int64, error) {
	return s.listFn(receiverID, limit, offset)
}

func (s *stubNotifications) GetUnreadCount(receiverID string) (int64, error) {
	return s.unreadFn(receiverID)
}

func (s *stubNotifications) MarkRead(id string) error {
	return s.markReadFn(id)
}

func (s *stubNotifications) MarkAllRead(receiverID string) error {
	return s.markAllReadFn(receiverID)
}

func (s *stubNotifications) Delete(id string) error {
	return s.deleteFn(id)
}

func setupNotificationRouter(notifications usecase.NotificationUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewNotificationHandler(notifications, logger.New())
	r.GET("/notifications/:receiverId", handler.GetNotifications)
	r.GET("/notifications/:receiverId/unread-count", handler.GetUnreadCount)
	r.PUT("/notifications/:id/read", handler.MarkRead)
	r.PUT("/notifications/:id/read-all", handler.MarkAllRead)
	r.DELETE("/notifications/:id", handler.DeleteNotification)
	return r
}

func TestGetNotifications(t *testing.T) {
	entityType := entity.EntityTypeHiringRequest
	entityID := "req-1"
	router := setupNotificationRouter(&stubNotifications{
		listFn: func(receiverID string, limit, offset int) ([]*entity.Notification, int64, error) {
			assert.Equal(t, "alice", receiverID)
			assert.Equal(t, 50, limit)
			return []*entity.Notification{
				{
					ID:         "notif-1",
					ReceiverID: receiverID,
					Message:    "approval needed",
					Type:       entity.NotificationActionRequired,
					EntityType: &entityType,
					EntityID:   &entityID,
					Actions:    []string{"APPROVE", "REJECT"},
				},
			}, 1, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications/alice", nil)

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["total"])

	notifications := response["notifications"].([]interface{})
	require.Len(t, notifications, 1)
	first := notifications[0].(map[string]interface{})
	assert.Equal(t, "ACTION_REQUIRED", first["type"])
	assert.Equal(t, "HIRING_REQUEST", first["entityType"])
	assert.Equal(t, []interface{}{"APPROVE", "REJECT"}, first["actions"])
}

func TestGetUnreadCount(t *testing.T) {
	router := setupNotificationRouter(&stubNotifications{
		unreadFn: func(receiverID string) (int64, error) {
			assert.Equal(t, "alice", receiverID)
			return 3, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications/alice/unread-count", nil)

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(3), response["count"])
}

func TestMarkRead_NotFound(t *testing.T) {
	router := setupNotificationRouter(&stubNotifications{
		markReadFn: func(id string) error {
			return fmt.Errorf("notification %s: %w", id, entity.ErrNotFound)
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/notifications/nope/read", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkRead_Success(t *testing.T) {
	var marked string
	router := setupNotificationRouter(&stubNotifications{
		markReadFn: func(id string) error {
			marked = id
			return nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/notifications/notif-1/read", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "notif-1", marked)
}

func TestMarkAllRead(t *testing.T) {
	var receiver string
	router := setupNotificationRouter(&stubNotifications{
		markAllReadFn: func(receiverID string) error {
			receiver = receiverID
			return nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/notifications/alice/read-all", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", receiver)
}

func TestDeleteNotification_NotFound(t *testing.T) {
	router := setupNotificationRouter(&stubNotifications{
		deleteFn: func(id string) error {
			return fmt.Errorf("notification %s: %w", id, entity.ErrNotFound)
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/notifications/nope", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteNotification_Success(t *testing.T) {
	router := setupNotificationRouter(&stubNotifications{
		deleteFn: func(id string) error {
			return nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/notifications/notif-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
