package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viltrumflow/taskflow-api/internal/constants"
	"github.com/viltrumflow/taskflow-api/internal/dto"
)

func TestCommentHandler_Lifecycle(t *testing.T) {
	srv := newTestServer(t)
	alice, aliceToken := srv.register("alice")
	_, bobToken := srv.register("bob")
	task := srv.createTask(aliceToken, map[string]interface{}{"title": "Discuss"})

	w := srv.do(http.MethodPost, "/comments", aliceToken, map[string]interface{}{"task_id": task.ID, "content": "first"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var comment dto.CommentResponse
	decode(t, w, &comment)
	assert.Equal(t, "first", comment.Content)
	assert.Equal(t, alice.ID, comment.Author.ID)

	w = srv.do(http.MethodPut, idPath("/comments", comment.ID), bobToken, map[string]interface{}{"content": "hijack"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(http.MethodPut, idPath("/comments", comment.ID), aliceToken, map[string]interface{}{"content": "edited"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &comment)
	assert.Equal(t, "edited", comment.Content)

	w = srv.do(http.MethodGet, idPath("/comments", comment.ID), bobToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(http.MethodDelete, idPath("/comments", comment.ID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(http.MethodDelete, idPath("/comments", comment.ID), aliceToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = srv.do(http.MethodGet, idPath("/comments", comment.ID), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentHandler_Create(t *testing.T) {
	srv := newTestServer(t)
	_, token := srv.register("alice")
	task := srv.createTask(token, map[string]interface{}{"title": "Discuss"})

	tests := []struct {
		name   string
		body   map[string]interface{}
		status int
	}{
		{name: "empty content", body: map[string]interface{}{"task_id": task.ID, "content": ""}, status: http.StatusUnprocessableEntity},
		{name: "missing task id", body: map[string]interface{}{"content": "x"}, status: http.StatusUnprocessableEntity},
		{name: "unknown task", body: map[string]interface{}{"task_id": 999, "content": "x"}, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(http.MethodPost, "/comments", token, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestCommentHandler_ListByTask(t *testing.T) {
	srv := newTestServer(t)
	_, token := srv.register("alice")
	task := srv.createTask(token, map[string]interface{}{"title": "Discuss"})
	other := srv.createTask(token, map[string]interface{}{"title": "Elsewhere"})

	for _, content := range []string{"one", "two", "three"} {
		w := srv.do(http.MethodPost, "/comments", token, map[string]interface{}{"task_id": task.ID, "content": content})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := srv.do(http.MethodPost, "/comments", token, map[string]interface{}{"task_id": other.ID, "content": "noise"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = srv.do(http.MethodGet, idPath("/comments/task", task.ID)+"?limit=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "3", w.Header().Get(constants.HeaderTotalCount))

	var comments []dto.CommentResponse
	decode(t, w, &comments)
	require.Len(t, comments, 2)
	assert.Equal(t, "three", comments[0].Content)
	assert.Equal(t, "two", comments[1].Content)

	w = srv.do(http.MethodGet, "/comments/task/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
