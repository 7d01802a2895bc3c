package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"breed_backend/internal/feature/catalog/domain/entity"
	"breed_backend/internal/feature/catalog/transport/handler"
	"breed_backend/internal/feature/catalog/usecase"
)

// mockCatalogUsecase is a mock implementation of the CatalogUsecase interface.
type mockCatalogUsecase struct {
	GetBreedFunc   func(ctx context.Context, name string) (entity.Breed, error)
	ListByTypeFunc func(ctx context.Context, breedType string) ([]string, error)
	GroupsFunc     func(ctx context.Context) (cattle, buffalo []string)
	AdviseFunc     func(ctx context.Context, name string) (string, error)
}

func (m *mockCatalogUsecase) GetBreed(ctx context.Context, name string) (entity.Breed, error) {
	return m.GetBreedFunc(ctx, name)
}

func (m *mockCatalogUsecase) ListByType(ctx context.Context, breedType string) ([]string, error) {
	return m.ListByTypeFunc(ctx, breedType)
}

func (m *mockCatalogUsecase) Groups(ctx context.Context) (cattle, buffalo []string) {
	return m.GroupsFunc(ctx)
}

func (m *mockCatalogUsecase) Advise(ctx context.Context, name string) (string, error) {
	return m.AdviseFunc(ctx, name)
}

func setupRouter(uc handler.CatalogUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewCatalogHandler(uc)
	r := gin.New()
	r.GET("/breeds", h.List)
	r.GET("/breeds/:name", h.Get)
	r.POST("/advice", h.Advise)
	return r
}

func TestCatalogHandler_List(t *testing.T) {
	uc := &mockCatalogUsecase{
		GroupsFunc: func(ctx context.Context) ([]string, []string) {
			return []string{"Gir", "Sahiwal"}, []string{"Murrah"}
		},
		ListByTypeFunc: func(ctx context.Context, breedType string) ([]string, error) {
			if strings.EqualFold(breedType, "cattle") {
				return []string{"Gir", "Sahiwal"}, nil
			}
			return nil, usecase.ErrInvalidBreedType
		},
	}
	r := setupRouter(uc)

	t.Run("grouped listing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/breeds", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"cattle":["Gir","Sahiwal"],"buffalo":["Murrah"]}`, w.Body.String())
	})

	t.Run("type filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/breeds?type=cattle", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `["Gir","Sahiwal"]`, w.Body.String())
	})

	t.Run("invalid type filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/breeds?type=goat", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogHandler_Get(t *testing.T) {
	uc := &mockCatalogUsecase{
		GetBreedFunc: func(ctx context.Context, name string) (entity.Breed, error) {
			if name == "Gir" {
				return entity.Breed{Name: "Gir", Type: "cattle", Origin: "Gujarat", Description: "Hardy dairy cattle."}, nil
			}
			return entity.Breed{}, usecase.ErrBreedNotFound
		},
	}
	r := setupRouter(uc)

	t.Run("existing breed", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/breeds/Gir", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"name":"Gir","type":"cattle","origin":"Gujarat","description":"Hardy dairy cattle."}`, w.Body.String())
	})

	t.Run("unknown breed", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/breeds/Unknown", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCatalogHandler_Advise(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		adviseFunc     func(ctx context.Context, name string) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"breed":"Gir"}`,
			adviseFunc: func(ctx context.Context, name string) (string, error) {
				return "1. Feed well.", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"breed":"Gir","advice":"1. Feed well."}`,
		},
		{
			name:           "missing breed name",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"breed name is required"}`,
		},
		{
			name: "unknown breed",
			body: `{"breed":"Unknown"}`,
			adviseFunc: func(ctx context.Context, name string) (string, error) {
				return "", usecase.ErrBreedNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"unknown breed"}`,
		},
		{
			name: "upstream failure",
			body: `{"breed":"Gir"}`,
			adviseFunc: func(ctx context.Context, name string) (string, error) {
				return "", context.DeadlineExceeded
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"advice generation failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockCatalogUsecase{AdviseFunc: tt.adviseFunc})

			req := httptest.NewRequest(http.MethodPost, "/advice", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
