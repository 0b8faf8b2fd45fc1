//nolint:noctx // Test file uses http.Get for convenience; context not required in tests
package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func startServer(t *testing.T, state string) *CallbackServer {
	t.Helper()
	server := NewCallbackServer(0, state)
	require.NoError(t, server.Start())
	t.Cleanup(func() { _ = server.Stop() })
	return server
}

func get(t *testing.T, rawURL string) string {
	t.Helper()
	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))
	return string(body)
}

func TestNewCallbackServer(t *testing.T) {
	server := NewCallbackServer(8080, "state")

	require.NotNil(t, server)
	assert.Equal(t, 8080, server.port)
	assert.Equal(t, "state", server.expectedState)
	assert.Nil(t, server.server)
}

func TestCallbackServer_Start_RandomPort(t *testing.T) {
	server := startServer(t, "state")

	assert.NotZero(t, server.Port())
	assert.Equal(t, fmt.Sprintf("http://127.0.0.1:%d/callback", server.Port()), server.RedirectURI())
}

func TestCallbackServer_Start_PortInUse(t *testing.T) {
	first := startServer(t, "one")

	second := NewCallbackServer(first.Port(), "two")
	assert.Error(t, second.Start())
}

func TestCallbackServer_Stop_NotStarted(t *testing.T) {
	assert.NoError(t, NewCallbackServer(0, "state").Stop())
}

func TestCallbackServer_Success(t *testing.T) {
	server := startServer(t, "expected")

	body := get(t, server.RedirectURI()+"?code=the-code&state=expected")
	assert.Contains(t, body, "Authorization successful")

	code, err := server.WaitForCode(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "the-code", code)
}

func TestCallbackServer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{name: "state mismatch", query: "code=c&state=wrong", wantErr: "state mismatch"},
		{name: "missing code", query: "state=expected", wantErr: "no authorization code"},
		{name: "provider error", query: "error=access_denied&error_description=denied", wantErr: "access_denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := startServer(t, "expected")

			body := get(t, server.RedirectURI()+"?"+tt.query)
			assert.Contains(t, body, "Authorization failed")

			_, err := server.WaitForCode(context.Background(), time.Second)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCallbackServer_WaitForCode_Timeout(t *testing.T) {
	server := startServer(t, "state")

	_, err := server.WaitForCode(context.Background(), 20*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResultHTML_Escapes(t *testing.T) {
	out := resultHTML("<b>", "a & b")
	assert.Contains(t, out, "&lt;b&gt;")
	assert.Contains(t, out, "a &amp; b")
}

func TestFlow_Run(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.NotEmpty(t, r.PostForm.Get("code_verifier"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"access","refresh_token":"refresh","token_type":"Bearer","expires_in":3600}`)
	}))
	defer tokenSrv.Close()

	var out strings.Builder
	flow := &Flow{
		Config: &oauth2.Config{
			ClientID:     "client",
			ClientSecret: "secret",
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://accounts.example.com/auth",
				TokenURL: tokenSrv.URL,
			},
		},
		Out:     &out,
		Timeout: 5 * time.Second,
		Open: func(authURL string) error {
			u, err := url.Parse(authURL)
			if err != nil {
				return err
			}
			q := u.Query()
			go func() {
				resp, err := http.Get(q.Get("redirect_uri") + "?code=the-code&state=" + url.QueryEscape(q.Get("state")))
				if err == nil {
					resp.Body.Close()
				}
			}()
			return nil
		},
	}

	tok, err := flow.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access", tok.AccessToken)
	assert.Equal(t, "refresh", tok.RefreshToken)
	assert.Contains(t, out.String(), "https://accounts.example.com/auth")
}

func TestFlow_Run_NoConfig(t *testing.T) {
	_, err := (&Flow{}).Run(context.Background())
	assert.Error(t, err)
}
