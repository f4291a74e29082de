package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communitysite/internal/delivery/http/helpers"
	"communitysite/internal/domain"
)

func TestDraftController_Generate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeDraftService
		wantStatus int
		wantCode   string
	}{
		{"draft", `{"prompt":"Pongal celebration"}`, &fakeDraftService{text: "Join us for Pongal!"}, http.StatusOK, ""},
		{"blank prompt", `{"prompt":"   "}`, &fakeDraftService{}, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{
			"model failure",
			`{"prompt":"Pongal"}`,
			&fakeDraftService{err: fmt.Errorf("%w: quota exceeded", domain.ErrGenerationFailed)},
			http.StatusBadGateway,
			helpers.ErrCodeUpstream,
		},
		{"unexpected", `{"prompt":"Pongal"}`, &fakeDraftService{err: errors.New("boom")}, http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDraftController(testLogger, tt.svc)
			rec := httptest.NewRecorder()

			c.Generate(rec, httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			assert.JSONEq(t, `{"text":"Join us for Pongal!"}`, string(env.Data))
		})
	}
}

func TestLiveness(t *testing.T) {
	rec := httptest.NewRecorder()
	Liveness("Tamil Sangam")(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, "Tamil Sangam API is running", string(body))
}
