package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"promptmaster/models"
	"promptmaster/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModelClient struct {
	textResp string
	jsonResp string
}

func (c stubModelClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.textResp, nil
}

func (c stubModelClient) GenerateStructured(ctx context.Context, prompt string) (string, error) {
	return c.jsonResp, nil
}

func newTestRouter(client services.ModelClient) *mux.Router {
	sessions := services.NewSessionService(client)

	router := mux.NewRouter()
	NewSessionHandler(sessions).RegisterRoutes(router)
	NewBuilderHandler(sessions).RegisterRoutes(router)
	NewQuizHandler(sessions).RegisterRoutes(router)
	NewLearnHandler(services.NewLearnService()).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path, body string, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func createSession(t *testing.T, router *mux.Router) string {
	t.Helper()

	var resp SessionResponse
	rec := doJSON(t, router, http.MethodPost, "/sessions", "", &resp)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestUnknownSessionIs404(t *testing.T) {
	router := newTestRouter(stubModelClient{})

	rec := doJSON(t, router, http.MethodGet, "/sessions/nope/builder", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/sessions/nope/quiz/answer", `{"choice":0}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuilderDraftAndRunFlow(t *testing.T) {
	router := newTestRouter(stubModelClient{textResp: "model says hi"})
	id := createSession(t, router)
	base := fmt.Sprintf("/sessions/%s/builder", id)

	var state models.BuilderState
	rec := doJSON(t, router, http.MethodPut, base+"/draft",
		`{"persona":"p","task":"t","context":"c","format":"f"}`, &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "You are a p. t c. Please format the output as f.", state.AssembledPrompt)

	rec = doJSON(t, router, http.MethodPost, base+"/run", "", &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "model says hi", state.GenerationResult)
	assert.Empty(t, state.Error)
}

func TestBuilderDraftUpdateRejectsInvalidJSON(t *testing.T) {
	router := newTestRouter(stubModelClient{})
	id := createSession(t, router)

	rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/sessions/%s/builder/draft", id), "not json", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuilderOptimizeMergesFields(t *testing.T) {
	router := newTestRouter(stubModelClient{jsonResp: `{"task":"rewritten"}`})
	id := createSession(t, router)
	base := fmt.Sprintf("/sessions/%s/builder", id)

	var state models.BuilderState
	doJSON(t, router, http.MethodPut, base+"/draft", `{"persona":"X"}`, nil)
	rec := doJSON(t, router, http.MethodPost, base+"/optimize", "", &state)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.PromptDraft{Persona: "X", Task: "rewritten"}, state.Draft)
}

func TestQuizAnswerAdvanceFlow(t *testing.T) {
	router := newTestRouter(stubModelClient{})
	id := createSession(t, router)
	base := fmt.Sprintf("/sessions/%s/quiz", id)

	var state models.QuizState
	rec := doJSON(t, router, http.MethodGet, base, "", &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, state.TotalQuestions)
	require.NotNil(t, state.Question)
	assert.Nil(t, state.Question.Correct, "correct index hidden before answering")

	rec = doJSON(t, router, http.MethodPost, base+"/answer", `{"choice":2}`, &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, state.Score)
	require.NotNil(t, state.Question.Correct)

	rec = doJSON(t, router, http.MethodPost, base+"/advance", "", &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, state.CurrentIndex)
	assert.False(t, state.Answered)

	rec = doJSON(t, router, http.MethodPost, base+"/reset", "", &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, state.CurrentIndex)
	assert.Equal(t, 0, state.Score)
}

func TestQuizRegenerateFailureKeepsDefaults(t *testing.T) {
	router := newTestRouter(stubModelClient{jsonResp: `{}`})
	id := createSession(t, router)
	base := fmt.Sprintf("/sessions/%s/quiz", id)

	var state models.QuizState
	rec := doJSON(t, router, http.MethodPost, base+"/regenerate", "", &state)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, state.TotalQuestions)
	assert.Equal(t, "Failed to generate quiz. Using default questions.", state.Error)
}

func TestLearnContent(t *testing.T) {
	router := newTestRouter(stubModelClient{})

	var content models.LearnContent
	rec := doJSON(t, router, http.MethodGet, "/learn", "", &content)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, content.Pillars, 4)
	assert.Len(t, content.ProTips, 3)
}
