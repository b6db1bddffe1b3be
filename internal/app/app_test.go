package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/amaumene/responder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(addr string) *config.Config {
	cfg := config.New("Custom Message", "test-key-123", "2.0")
	cfg.ServerAddr = addr
	return cfg
}

func TestApp_RunServesAndShutsDown(t *testing.T) {
	a := New(testConfig("127.0.0.1:0"))
	require.NoError(t, a.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	resp, err := http.Get("http://" + a.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Custom Messageversion=2.0\n", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestApp_RunFailsWhenAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	a := New(testConfig(ln.Addr().String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = a.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
	assert.Nil(t, a.Addr())
}

func TestNew_UsesServerTimeouts(t *testing.T) {
	a := New(testConfig("127.0.0.1:0"))

	assert.Equal(t, "127.0.0.1:0", a.server.Addr)
	assert.Equal(t, readTimeout, a.server.ReadTimeout)
	assert.Equal(t, writeTimeout, a.server.WriteTimeout)
	assert.Equal(t, idleTimeout, a.server.IdleTimeout)
}
