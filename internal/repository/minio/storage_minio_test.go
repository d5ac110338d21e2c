package minio

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedBody = `{"homeworlds":[{"name":"Dagobah"}]}`

// fakeS3 answers HEAD and GET for a single object in path-style addressing.
func fakeS3(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seeds/catalog.json" {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			if r.Method != http.MethodHead {
				_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`)
			}
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", strconv.Itoa(len(seedBody)))
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.Header().Set("Last-Modified", time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC).Format(http.TimeFormat))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = io.WriteString(w, seedBody)
		}
	}))
}

func newTestStorage(t *testing.T, srv *httptest.Server) *Storage {
	t.Helper()
	client, err := NewClient(Options{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		AccessKey: "minio",
		SecretKey: "minio123",
		Region:    "us-east-1",
	})
	require.NoError(t, err)
	return NewStorage(client)
}

func TestStorageOpen(t *testing.T) {
	srv := fakeS3(t)
	defer srv.Close()

	body, err := newTestStorage(t, srv).Open(context.Background(), "seeds", "catalog.json")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, seedBody, string(data))
}

func TestStorageOpenMissingObject(t *testing.T) {
	srv := fakeS3(t)
	defer srv.Close()

	_, err := newTestStorage(t, srv).Open(context.Background(), "seeds", "missing.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrObjectNotFound), "got %v", err)
}
