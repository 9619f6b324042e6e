package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ridehail/internal/services"
	"ridehail/pkg/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleErrorMapsKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"bad request", services.BadRequest("Email and password are required."), http.StatusBadRequest, "Email and password are required."},
		{"conflict", services.Conflict("dup"), http.StatusConflict, "dup"},
		{"not found", services.NotFound("Complaint not found."), http.StatusNotFound, "Complaint not found."},
		{"unauthorized", services.Unauthorized("Invalid credentials."), http.StatusUnauthorized, "Invalid credentials."},
		{"internal hides cause", services.Internal("Internal Server Error booking ride.", errors.New("socket closed")), http.StatusInternalServerError, "Internal Server Error booking ride."},
		{"wrapped app error", fmt.Errorf("ctx: %w", services.NotFound("gone")), http.StatusNotFound, "gone"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, MessageInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, logger.NewNop(), tt.err)

			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestCreatedResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	CreatedResponse(c, "Ride requested successfully", "ride_id", "abc")

	if w.Code != http.StatusCreated {
		t.Fatalf("code = %d", w.Code)
	}
	want := `{"message":"Ride requested successfully","ride_id":"abc"}`
	if w.Body.String() != want {
		t.Fatalf("body = %s, want %s", w.Body.String(), want)
	}
}
