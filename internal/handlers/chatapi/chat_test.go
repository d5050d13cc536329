package chatapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleChat_StoresExchange(t *testing.T) {
	_, router, _, token := setupTestHandlers(t)

	rec := doJSON(t, router, http.MethodPost, "/chat", token, map[string]string{
		"message": "I feel stressed about work",
	})
	require.Equal(t, http.StatusOK, rec.Code, "Body: %s", rec.Body.String())

	resp := &chatMessageResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "I feel stressed about work", resp.Message)
	assert.NotEmpty(t, resp.Response)
}

func TestHandleChat_Error(t *testing.T) {
	_, router, _, token := setupTestHandlers(t)

	rec := doJSON(t, router, http.MethodPost, "/chat", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/chat", "", map[string]string{"message": "hi"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleChatHistory_OldestFirst(t *testing.T) {
	_, router, _, token := setupTestHandlers(t)

	for _, msg := range []string{"first message", "second message", "third message"} {
		rec := doJSON(t, router, http.MethodPost, "/chat", token, map[string]string{"message": msg})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/chat/history", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var msgs []chatMessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msgs))
	require.Len(t, msgs, 3)
	assert.Equal(t, "first message", msgs[0].Message)
	assert.Equal(t, "third message", msgs[2].Message)
}
