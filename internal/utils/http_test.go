package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := []string{"Chile", "Japan"}

	n, err := WriteJSON(w, data, http.StatusOK)

	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `["Chile","Japan"]`, w.Body.String())
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"message": "User created"}, http.StatusCreated)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteError(w, "Volcano with ID: 9999 not found", http.StatusNotFound)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "Volcano with ID: 9999 not found", body["message"])
}
