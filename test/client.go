package test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// doRequest calls the running test server and decodes a JSON reply into dest when given.
func doRequest(ctx context.Context, t *testing.T, client *http.Client, method, path, body, loveToken string, dest any) int {
	t.Helper()

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, bodyReader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if loveToken != "" {
		req.Header.Set("X-LOVE-TOKEN", loveToken)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if dest != nil && len(respBytes) > 0 {
		require.NoError(t, json.Unmarshal(respBytes, dest), string(respBytes))
	}
	return resp.StatusCode
}

func unlockLove(ctx context.Context, t *testing.T, client *http.Client, passcode string) string {
	t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	status := doRequest(ctx, t, client, http.MethodPost, "/love/unlock", `{"passcode":"`+passcode+`"}`, "", &resp)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
