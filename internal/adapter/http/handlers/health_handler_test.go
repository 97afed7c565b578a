package handlers

import (
	"net/http"
	"testing"

	"fmrental_prestige/internal/adapter/http/handlers/mocks"
	"fmrental_prestige/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDiagnosticsUseCase(ctrl)
	h := NewHealthHandler(uc)

	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/test", h.Diagnostics)
	r.GET("/ping", h.Ping)

	if w := serve(r, http.MethodGet, "/", ""); w.Body.String() != `{"message":"FMRENTALPRESTIGE Backend attivo"}` {
		t.Fatalf("unexpected root body: %s", w.Body.String())
	}
	if w := serve(r, http.MethodGet, "/ping", ""); w.Code != http.StatusOK || decode(t, w)["message"] != "pong" {
		t.Fatalf("unexpected ping: %s", w.Body.String())
	}

	uc.EXPECT().Report(gomock.Any()).Return(usecase.DiagnosticsReport{
		Backend:          "Running",
		Database:         "Connected & Working",
		ConnectionStatus: "Connected",
		Collections:      []string{"reservation", "review"},
	})
	w := serve(r, http.MethodGet, "/test", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["backend"] != "Running" || len(body["collections"].([]any)) != 2 {
		t.Fatalf("unexpected diagnostics: %s", w.Body.String())
	}
}
