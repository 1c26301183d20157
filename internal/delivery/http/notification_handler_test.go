package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Consulter(ctx context.Context) ([]*domain.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Notification), args.Error(1)
}

func (m *MockNotificationService) MarquerCommeLue(ctx context.Context, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationService) NombreNonLues(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func testNotification(t *testing.T, lu bool) *domain.Notification {
	t.Helper()
	piece, err := domain.NewPiece(domain.PieceProps{ID: 1, Nom: "Bougie", Prix: 8})
	require.NoError(t, err)
	n, err := domain.NewNotification(domain.NotificationProps{
		ID:               1,
		Piece:            piece,
		Client:           domain.NewGestionnaire(),
		Message:          "Alerte Stock",
		DateNotification: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EstLu:            lu,
	})
	require.NoError(t, err)
	return n
}

func TestNotificationHandler_Consulter(t *testing.T) {
	notifications := new(MockNotificationService)
	notifications.On("Consulter", mock.Anything).Return([]*domain.Notification{testNotification(t, false)}, nil)
	notifications.On("NombreNonLues", mock.Anything).Return(1, nil)
	handler := NewNotificationHandler(notifications, logger.NewNoop())

	w := httptest.NewRecorder()
	handler.Consulter(w, httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	AssertSuccess(t, resp)
	assert.Equal(t, float64(1), resp["unread"])
	assert.Len(t, resp["data"], 1)
}

func TestNotificationHandler_MarquerCommeLue(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockSetup      func(*MockNotificationService)
		expectedStatus int
	}{
		{
			name: "succès",
			id:   "1",
			mockSetup: func(m *MockNotificationService) {
				m.On("MarquerCommeLue", mock.Anything, int64(1)).Return(testNotification(t, true), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "inconnue",
			id:   "2",
			mockSetup: func(m *MockNotificationService) {
				m.On("MarquerCommeLue", mock.Anything, int64(2)).Return(nil, domain.NewNotFound("notification", 2))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "identifiant nul",
			id:             "0",
			mockSetup:      func(m *MockNotificationService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifications := new(MockNotificationService)
			tt.mockSetup(notifications)
			handler := NewNotificationHandler(notifications, logger.NewNoop())

			req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/notifications/"+tt.id+"/lu", nil), "id", tt.id)
			w := httptest.NewRecorder()
			handler.MarquerCommeLue(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			notifications.AssertExpectations(t)
		})
	}
}
