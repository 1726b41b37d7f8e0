package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamecharge/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetGames(ctx context.Context) ([]model.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Game), args.Error(1)
}

func (m *MockCatalogService) GetGame(ctx context.Context, id int) (*model.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Game), args.Error(1)
}

func (m *MockCatalogService) CreateGame(ctx context.Context, req model.CreateGameRequest) (*model.Game, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Game), args.Error(1)
}

func (m *MockCatalogService) UpdateGame(ctx context.Context, id int, req model.UpdateGameRequest) (*model.Game, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Game), args.Error(1)
}

func (m *MockCatalogService) DeleteGame(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) GetAllPriceOptions(ctx context.Context) ([]model.PriceOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PriceOption), args.Error(1)
}

func (m *MockCatalogService) GetPriceOptionsByGameID(ctx context.Context, gameID int) ([]model.PriceOption, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PriceOption), args.Error(1)
}

func (m *MockCatalogService) GetPriceOption(ctx context.Context, id int) (*model.PriceOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceOption), args.Error(1)
}

func (m *MockCatalogService) CreatePriceOption(ctx context.Context, req model.CreatePriceOptionRequest) (*model.PriceOption, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceOption), args.Error(1)
}

func (m *MockCatalogService) UpdatePriceOption(ctx context.Context, id int, req model.UpdatePriceOptionRequest) (*model.PriceOption, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceOption), args.Error(1)
}

func (m *MockCatalogService) DeletePriceOption(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGameHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("GetGames", mock.Anything).Return([]model.Game{
			{ID: 1, Name: "PUBG Mobile"},
			{ID: 2, Name: "Free Fire"},
		}, nil)
		handler := NewGameHandler(mockService, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []model.Game
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Len(t, got, 2)
	})

	t.Run("empty catalog serialises as empty array", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("GetGames", mock.Anything).Return(nil, nil)
		handler := NewGameHandler(mockService, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestGameHandler_GetByID(t *testing.T) {
	newRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/games/"+id, nil)
		req.SetPathValue("id", id)
		return req
	}

	t.Run("success", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("GetGame", mock.Anything, 1).Return(&model.Game{ID: 1, Name: "PUBG Mobile"}, nil)
		handler := NewGameHandler(mockService, zerolog.Nop())

		rec := httptest.NewRecorder()
		handler.GetByID(rec, newRequest("1"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("GetGame", mock.Anything, 99).Return(nil, model.ErrGameNotFound)
		handler := NewGameHandler(mockService, zerolog.Nop())

		rec := httptest.NewRecorder()
		handler.GetByID(rec, newRequest("99"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewGameHandler(mockService, zerolog.Nop())

		rec := httptest.NewRecorder()
		handler.GetByID(rec, newRequest("zero"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetGame", mock.Anything, mock.Anything)
	})
}

func TestGameHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("CreateGame", mock.Anything, model.CreateGameRequest{
			Name:     "Mobile Legends",
			ImageURL: "https://cdn.example.com/ml.png",
		}).Return(&model.Game{ID: 3, Name: "Mobile Legends"}, nil)
		handler := NewGameHandler(mockService, zerolog.Nop())

		body := []byte(`{"name":"Mobile Legends","imageUrl":"https://cdn.example.com/ml.png"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/games", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewGameHandler(mockService, zerolog.Nop())

		body := []byte(`{"imageUrl":"https://cdn.example.com/ml.png"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/games", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateGame", mock.Anything, mock.Anything)
	})
}

func TestGameHandler_Update(t *testing.T) {
	mockService := new(MockCatalogService)
	mockService.On("UpdateGame", mock.Anything, 1, mock.MatchedBy(func(req model.UpdateGameRequest) bool {
		return req.Name != nil && *req.Name == "PUBG" && req.ImageURL == nil
	})).Return(&model.Game{ID: 1, Name: "PUBG"}, nil)
	handler := NewGameHandler(mockService, zerolog.Nop())

	body := []byte(`{"name":"PUBG"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/games/1", bytes.NewReader(body))
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestGameHandler_Delete(t *testing.T) {
	newRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/games/"+id, nil)
		req.SetPathValue("id", id)
		return req
	}

	t.Run("success", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("DeleteGame", mock.Anything, 1).Return(nil)
		handler := NewGameHandler(mockService, zerolog.Nop())

		rec := httptest.NewRecorder()
		handler.Delete(rec, newRequest("1"))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("blocked by existing orders", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("DeleteGame", mock.Anything, 1).Return(model.ErrGameHasOrders)
		handler := NewGameHandler(mockService, zerolog.Nop())

		rec := httptest.NewRecorder()
		handler.Delete(rec, newRequest("1"))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
