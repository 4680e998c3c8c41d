package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadAttachment(t *testing.T) {
	payload := []byte("fake image bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	data, err := DownloadAttachment(srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestDownloadAttachmentBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := DownloadAttachment(srv.Client(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad status")
}

func TestDownloadAttachmentTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := DownloadAttachment(http.DefaultClient, srv.URL)
	require.Error(t, err)
}
