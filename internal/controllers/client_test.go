package controllers_test

import (
	"context"
	"errors"
	"fuelprice/internal/controllers"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fuel-prices/diesel-price-in-all-state":
			_, _ = w.Write([]byte("<table></table>"))
		case "/fuel-prices/moved":
			http.Redirect(w, r, "/fuel-prices/diesel-price-in-all-state", http.StatusFound)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	clientController := controllers.NewClientController(srv.Client(), newTestLogger())

	t.Run("ok", func(t *testing.T) {
		u, err := url.Parse(srv.URL + "/fuel-prices/diesel-price-in-all-state")
		require.NoError(t, err)

		body, err := clientController.Fetch(context.Background(), u)
		assert.NoError(t, err)
		assert.Equal(t, "<table></table>", body)
	})

	t.Run("redirect", func(t *testing.T) {
		u, err := url.Parse(srv.URL + "/fuel-prices/moved")
		require.NoError(t, err)

		body, err := clientController.Fetch(context.Background(), u)
		assert.NoError(t, err)
		assert.Equal(t, "<table></table>", body)
	})

	t.Run("not found", func(t *testing.T) {
		u, err := url.Parse(srv.URL + "/fuel-prices/diesel-price-in-atlantis-city")
		require.NoError(t, err)

		body, err := clientController.Fetch(context.Background(), u)
		assert.Empty(t, body)

		var fetchErr *controllers.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
		assert.Equal(t, u.String(), fetchErr.URL)
	})
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	clientController := controllers.NewClientController(srv.Client(), newTestLogger())

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	_, err = clientController.Fetch(context.Background(), u)

	var fetchErr *controllers.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	srv.Close()

	clientController := controllers.NewClientController(&http.Client{}, newTestLogger())

	_, err = clientController.Fetch(context.Background(), u)
	assert.Error(t, err)

	var fetchErr *controllers.FetchError
	assert.False(t, errors.As(err, &fetchErr))
}
