package mcp

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil parse service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingParseService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Parse: &mockParseService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil parse service returns error", func(t *testing.T) {
		ports := &Ports{Items: &mockItemService{}}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingParseService)
	})

	t.Run("parse only is valid", func(t *testing.T) {
		ports := &Ports{
			Parse: &mockParseService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Parse:   &mockParseService{},
			Items:   &mockItemService{},
			Catalog: &mockCatalogService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}

func TestInstructions(t *testing.T) {
	t.Run("parse only mentions classification", func(t *testing.T) {
		text := instructions(&Ports{Parse: &mockParseService{}})
		assert.Contains(t, text, "classify_path")
		assert.NotContains(t, text, "list_items")
		assert.NotContains(t, text, "apuntes://courses")
	})

	t.Run("all ports mention every surface", func(t *testing.T) {
		text := instructions(&Ports{
			Parse:   &mockParseService{},
			Items:   &mockItemService{},
			Catalog: &mockCatalogService{},
		})
		assert.Contains(t, text, "list_items")
		assert.Contains(t, text, "apuntes://items/{itemId}")
		assert.Contains(t, text, "apuntes://courses")
	})
}

func TestLoopbackAddr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", LoopbackAddr(8080))
}

func TestServer_Serve(t *testing.T) {
	server, err := NewServer(&Ports{Parse: &mockParseService{}})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", LoopbackAddr(0))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, ln)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}
