// internal/common/metrics/server_test.go
package metrics

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suada-mcp/internal/common/logger"
)

func TestServer_ServesMetricsAndShutsDown(t *testing.T) {
	ToolCallsTotal.WithLabelValues("test_tool").Inc()

	srv, err := NewServer(0, logger.NewTestLogger(t))
	require.NoError(t, err)
	srv.Start()

	_, port, err := net.SplitHostPort(srv.Addr())
	require.NoError(t, err)
	url := fmt.Sprintf("http://127.0.0.1:%s/metrics", port)

	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "suada_tool_calls_total")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	_, err = http.Get(url)
	assert.Error(t, err)
}

func TestNewServer_PortConflict(t *testing.T) {
	first, err := NewServer(0, logger.NewTestLogger(t))
	require.NoError(t, err)
	defer first.Shutdown(context.Background())

	_, portStr, err := net.SplitHostPort(first.Addr())
	require.NoError(t, err)

	var port int
	_, err = fmt.Sscanf(portStr, "%d", &port)
	require.NoError(t, err)

	_, err = NewServer(port, logger.NewTestLogger(t))
	assert.Error(t, err)
}
