package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pippali-pos/entity"
	"pippali-pos/pkg/apperr"
	"pippali-pos/repository"
)

func newChatService(t *testing.T, handler http.HandlerFunc) *ChatService {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, db.Create(&entity.MenuItem{
		Name: "Butter Chicken", BasePrice: 129, IsActive: true, IsAvailable: true,
	}).Error)

	svc := NewChatService(repository.NewMenuRepository(db), "test-key")
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		svc.Endpoint = srv.URL
	}
	return svc
}

func TestChatReturnsModelReply(t *testing.T) {
	var gotPrompt string
	svc := newChatService(t, func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPrompt = req.Contents[0].Parts[0].Text
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Parts: []geminiPart{{Text: "Try the Butter Chicken!"}}}},
			},
		})
	})

	reply, err := svc.Chat("what do you recommend?")
	require.NoError(t, err)
	assert.Equal(t, "Try the Butter Chicken!", reply)
	assert.Contains(t, gotPrompt, "Butter Chicken")
	assert.Contains(t, gotPrompt, "what do you recommend?")
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := newChatService(t, nil)

	_, err := svc.Chat("   ")
	assert.True(t, apperr.IsValidation(err))
}

func TestChatUpstreamFailure(t *testing.T) {
	svc := newChatService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := svc.Chat("hello")
	assert.Error(t, err)
}

func TestChatMissingAPIKey(t *testing.T) {
	svc := newChatService(t, nil)
	svc.APIKey = ""

	_, err := svc.Chat("hello")
	assert.Error(t, err)
}
