package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"barbearia/internal/adapter/http/handlers/mocks"
	"barbearia/internal/domain/entities"
	"barbearia/internal/infrastructure/auth"
	"barbearia/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_IssueToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewService("secret", time.Hour, "barbearia-api")

	t.Run("valid key and employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mocks.NewMockIEmployeeUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/auth/token", NewAuthHandler(employees, tokens, "key", time.Hour).IssueToken)

		employees.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Employee{ID: "e1", AccessLevel: entities.AccessLevelAdmin}, nil)

		w := doJSON(r, http.MethodPost, "/v1/auth/token", `{"employee_id":"e1","api_key":"key"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		tok, _ := body["access_token"].(string)
		claims, err := tokens.ValidateToken(tok)
		if err != nil || claims.AccessLevel != entities.AccessLevelAdmin || body["expires_in"] != 3600.0 {
			t.Fatalf("unexpected token response %s (%v)", w.Body.String(), err)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mocks.NewMockIEmployeeUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/auth/token", NewAuthHandler(employees, tokens, "key", time.Hour).IssueToken)

		if w := doJSON(r, http.MethodPost, "/v1/auth/token", `{"employee_id":"e1","api_key":"nope"}`); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown employee and storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mocks.NewMockIEmployeeUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/auth/token", NewAuthHandler(employees, tokens, "key", time.Hour).IssueToken)

		employees.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Employee{}, usecase.ErrEmployeeNotFound)
		employees.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Employee{}, errors.New("timeout"))

		if w := doJSON(r, http.MethodPost, "/v1/auth/token", `{"employee_id":"ghost","api_key":"key"}`); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/auth/token", `{"employee_id":"e1","api_key":"key"}`); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := gin.New()
		r.POST("/v1/auth/token", NewAuthHandler(mocks.NewMockIEmployeeUseCase(ctrl), nil, "", time.Hour).IssueToken)

		if w := doJSON(r, http.MethodPost, "/v1/auth/token", `{"employee_id":"e1","api_key":"key"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
