package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/usecase/client"
	"github.com/frontandrew/motofleet/internal/usecase/moto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClientService - mock du service client
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Gerer(ctx context.Context, req *client.GererRequest) (*domain.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context) ([]*domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockMotoService - mock du service moto
type MockMotoService struct {
	mock.Mock
}

func (m *MockMotoService) GererModele(ctx context.Context, req *moto.ModeleRequest) (*domain.ModeleMoto, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModeleMoto), args.Error(1)
}

func (m *MockMotoService) ListModeles(ctx context.Context) ([]*domain.ModeleMoto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ModeleMoto), args.Error(1)
}

func (m *MockMotoService) DeleteModele(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMotoService) Gerer(ctx context.Context, req *moto.GererRequest) (*domain.Moto, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Moto), args.Error(1)
}

func (m *MockMotoService) Get(ctx context.Context, id int64) (*domain.Moto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Moto), args.Error(1)
}

func (m *MockMotoService) List(ctx context.Context) ([]*domain.Moto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Moto), args.Error(1)
}

func (m *MockMotoService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func testClient(t *testing.T, id int64) *domain.Client {
	t.Helper()
	c, err := domain.NewClient(domain.ClientProps{Nom: "Garage Dupont", Type: "professionnel"})
	require.NoError(t, err)
	return c.WithID(id)
}

func TestFleetHandler_GererClient(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockClientService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name:        "création",
			requestBody: client.GererRequest{Nom: "Garage Dupont", Type: "professionnel"},
			mockSetup: func(m *MockClientService) {
				m.On("Gerer", mock.Anything, mock.AnythingOfType("*client.GererRequest")).
					Return(testClient(t, 1), nil)
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				AssertSuccess(t, resp)
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "Garage Dupont", data["nom"])
				assert.Equal(t, float64(1), data["id"])
			},
		},
		{
			name:        "mise à jour",
			requestBody: client.GererRequest{ID: 1, Nom: "Garage Dupont", Type: "professionnel"},
			mockSetup: func(m *MockClientService) {
				m.On("Gerer", mock.Anything, mock.MatchedBy(func(req *client.GererRequest) bool {
					return req.ID == 1
				})).Return(testClient(t, 1), nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				AssertSuccess(t, resp)
			},
		},
		{
			name:        "client inconnu",
			requestBody: client.GererRequest{ID: 9, Nom: "X", Type: "particulier"},
			mockSetup: func(m *MockClientService) {
				m.On("Gerer", mock.Anything, mock.Anything).Return(nil, domain.NewNotFound("client", 9))
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				AssertError(t, resp)
				assert.Equal(t, "client with id 9 not found", resp["error"])
			},
		},
		{
			name:           "nom manquant",
			requestBody:    client.GererRequest{Type: "particulier"},
			mockSetup:      func(m *MockClientService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				AssertError(t, resp)
			},
		},
		{
			name:           "JSON invalide",
			requestBody:    "invalid",
			mockSetup:      func(m *MockClientService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				AssertError(t, resp)
				assert.Equal(t, "invalid request body", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients := new(MockClientService)
			tt.mockSetup(clients)
			handler := NewFleetHandler(clients, new(MockMotoService), logger.NewNoop())

			w := httptest.NewRecorder()
			handler.GererClient(w, newJSONRequest(t, http.MethodPost, "/api/v1/clients", tt.requestBody))

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkResponse(t, decodeBody(t, w))
			clients.AssertExpectations(t)
		})
	}
}

func TestFleetHandler_GetMoto(t *testing.T) {
	modele, err := domain.NewModeleMoto(domain.ModeleMotoProps{Nom: "MT-07", IntervalleKm: 10000, IntervalleAnnees: 1})
	require.NoError(t, err)
	m, err := domain.NewMoto(domain.MotoProps{
		Modele:      modele.WithID(1),
		NumeroSerie: "JYARM1234",
		Statut:      domain.StatutDisponible,
	})
	require.NoError(t, err)

	tests := []struct {
		name           string
		id             string
		mockSetup      func(*MockMotoService)
		expectedStatus int
	}{
		{
			name: "trouvée",
			id:   "3",
			mockSetup: func(s *MockMotoService) {
				s.On("Get", mock.Anything, int64(3)).Return(m.WithID(3), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "absente",
			id:   "4",
			mockSetup: func(s *MockMotoService) {
				s.On("Get", mock.Anything, int64(4)).Return(nil, domain.NewNotFound("moto", 4))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "identifiant invalide",
			id:             "abc",
			mockSetup:      func(s *MockMotoService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			motos := new(MockMotoService)
			tt.mockSetup(motos)
			handler := NewFleetHandler(new(MockClientService), motos, logger.NewNoop())

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/motos/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()
			handler.GetMoto(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			motos.AssertExpectations(t)
		})
	}
}

func TestFleetHandler_DeleteClient(t *testing.T) {
	clients := new(MockClientService)
	clients.On("Delete", mock.Anything, int64(5)).Return(nil)
	clients.On("Delete", mock.Anything, int64(6)).Return(domain.NewNotFound("client", 6))
	handler := NewFleetHandler(clients, new(MockMotoService), logger.NewNoop())

	w := httptest.NewRecorder()
	handler.DeleteClient(w, withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/clients/5", nil), "id", "5"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.DeleteClient(w, withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/clients/6", nil), "id", "6"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	clients.AssertExpectations(t)
}

func TestFleetHandler_ListModeles_InternalError(t *testing.T) {
	motos := new(MockMotoService)
	motos.On("ListModeles", mock.Anything).Return(nil, assert.AnError)
	handler := NewFleetHandler(new(MockClientService), motos, logger.NewNoop())

	w := httptest.NewRecorder()
	handler.ListModeles(w, httptest.NewRequest(http.MethodGet, "/api/v1/modeles", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeBody(t, w)
	AssertError(t, resp)
	assert.Equal(t, "Failed to list modeles", resp["error"])
}
