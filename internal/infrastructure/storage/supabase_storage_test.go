package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupabaseStorage_Upload(t *testing.T) {
	var gotPath, gotType, gotUpsert, gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotUpsert = r.Header.Get("x-upsert")
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"Key":"Archivos/site/home/logo.png"}`))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "service-key", "Archivos")
	obj, err := s.Upload(context.Background(), "site/home/logo.png", []byte("png"), "image/png")

	require.NoError(t, err)
	assert.Equal(t, "/storage/v1/object/Archivos/site/home/logo.png", gotPath)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, "true", gotUpsert)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, []byte("png"), gotBody)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/Archivos/site/home/logo.png", obj.URL)
}

func TestSupabaseStorage_Upload_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewSupabaseStorage(srv.URL, "k", "Archivos").Upload(context.Background(), "a.png", nil, "image/png")

	assert.Error(t, err)
}

func TestSupabaseStorage_DeleteByURL(t *testing.T) {
	var prefixes []string
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		var body map[string][]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		prefixes = body["prefixes"]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "k", "Archivos")
	err := s.DeleteByURL(context.Background(), s.PublicURL("productos/1-gorra azul.png"))

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, []string{"productos/1-gorra azul.png"}, prefixes)
}

func TestSupabaseStorage_DeleteByURL_AjenaSeIgnora(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "k", "Archivos")
	err := s.DeleteByURL(context.Background(), "https://cdn.otro.com/imagen.png")

	assert.NoError(t, err)
	assert.False(t, called)
}
