package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFooterComments(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/wiki/api/v2/pages/12345/footer-comments", r.URL.Path)
		w.Write([]byte(`{"results":[
			{"id":"c1","body":{"plain":{"value":"first"}}},
			{"id":"c2","body":{}},
			{"id":"c3"}
		]}`))
	})

	comments, err := client.FooterComments(context.Background(), "12345")
	require.NoError(t, err)
	require.Len(t, comments, 3)

	text, ok := comments[0].PlainText()
	assert.True(t, ok)
	assert.Equal(t, "first", text)

	_, ok = comments[1].PlainText()
	assert.False(t, ok)
	_, ok = comments[2].PlainText()
	assert.False(t, ok)
}

func TestFooterCommentsEscapesPageID(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wiki/api/v2/pages/a%2Fb/footer-comments", r.URL.EscapedPath())
		w.Write([]byte(`{"results":[]}`))
	})

	comments, err := client.FooterComments(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestPageMetadata(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wiki/rest/api/content/12345", r.URL.Path)
		assert.Equal(t, "version", r.URL.Query().Get("expand"))
		w.Write([]byte(`{"id":"12345","title":"Runbook","version":{"number":7,"when":"2024-01-01T00:00:00Z"}}`))
	})

	meta, err := client.PageMetadata(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, "Runbook", meta.Title)
	assert.Equal(t, "2024-01-01T00:00:00Z", meta.LastUpdated())
}

func TestPageMetadataWithoutVersion(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"12345"}`))
	})

	meta, err := client.PageMetadata(context.Background(), "12345")
	require.NoError(t, err)
	assert.Nil(t, meta.Version)
	assert.Empty(t, meta.LastUpdated())
}
