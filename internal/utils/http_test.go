package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type lock struct {
		Locked  bool   `json:"locked"`
		Message string `json:"message,omitempty"`
	}

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{"struct", lock{Locked: true, Message: "release"}, http.StatusOK, `{"locked":true,"message":"release"}`},
		{"created", map[string]int{"uid": 12}, http.StatusCreated, `{"uid":12}`},
		{"nil", nil, http.StatusOK, `null`},
		{"empty slice", []string{}, http.StatusOK, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, rec.Body.Len(), n)
		})
	}
}

func TestWriteJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]any{"ch": make(chan int)}, http.StatusOK)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
