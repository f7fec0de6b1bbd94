package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T, config HttpConfig) *HttpServer {
	return NewHttpServer(HttpServerParams{
		Config: config,
		Handlers: []*HttpHandler{
			AsHttpHandler("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("root\n"))
			})).Handler,
			AsHttpHandler("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("OK\n"))
			})).Handler,
		},
		Logger: zaptest.NewLogger(t),
	})
}

func TestHttpServer_Addr_AllInterfaces(t *testing.T) {
	s := newTestServer(t, HttpConfig{Port: 8080})

	assert.Equal(t, ":8080", s.addr)
}

func TestHttpServer_Routes(t *testing.T) {
	s := newTestServer(t, HttpConfig{Port: 8080})

	tests := map[string]string{
		"/health": "OK\n",
		"/":       "root\n",
		"/other":  "root\n",
	}

	for path, expected := range tests {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			s.server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, expected, w.Body.String())
		})
	}
}

func TestHttpServer_ListenAndServe(t *testing.T) {
	s := newTestServer(t, HttpConfig{Host: "127.0.0.1", Port: 0})

	listener, err := s.Listen(context.Background())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- s.Serve(listener)
	}()

	res, err := http.Get("http://" + listener.Addr().String() + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "OK\n", string(body))

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}

func TestHttpServer_Listen_AddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	port := occupied.Addr().(*net.TCPAddr).Port

	s := newTestServer(t, HttpConfig{Host: "127.0.0.1", Port: port})

	_, err = s.Listen(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), strconv.Itoa(port))
}

func TestNewRootHandler_CatchAllKeepsRawPath(t *testing.T) {
	var seen string

	root := NewRootHandler([]*HttpHandler{
		AsHttpHandler("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r.URL.Path
		})).Handler,
	})

	for _, path := range []string{"//foo", "/a/../foo", "/./health"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			root.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, path, seen)
		})
	}
}

func TestNewRootHandler_MultipleRoutes(t *testing.T) {
	s := newTestServer(t, HttpConfig{Port: 8080})

	_, ok := s.server.Handler.(*http.ServeMux)
	assert.True(t, ok)
}

func TestHttpConfig_Validate(t *testing.T) {
	assert.NoError(t, HttpConfig{Port: 8080}.Validate())
	assert.NoError(t, HttpConfig{Port: 65535}.Validate())

	for _, port := range []int{0, -1, 65536} {
		err := HttpConfig{Port: port}.Validate()
		assert.ErrorIs(t, err, ErrInvalidPort, strconv.Itoa(port))
	}
}
