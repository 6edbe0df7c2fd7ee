package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abcstark/team-wellbeing/internal/datasource"
	"github.com/abcstark/team-wellbeing/internal/store"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	r := New(nil)
	ctx := context.Background()

	r.Observe(ctx, TransportMCP, "get_channels", true, 5*time.Millisecond)
	r.Observe(ctx, TransportMCP, "get_channels", true, 5*time.Millisecond)
	r.Observe(ctx, TransportHTTP, "collect_data", false, time.Millisecond)
	r.Observe(ctx, TransportHTTP, "", true, time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(r.operations.WithLabelValues("mcp", "get_channels", "success")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("http", "collect_data", "error")))
	require.Equal(t, 2, testutil.CollectAndCount(r.operations))
}

func TestObserveCollection(t *testing.T) {
	r := New(nil)
	r.ObserveCollection("scheduled", "success")
	r.ObserveCollection("scheduled", "error")
	r.ObserveCollection("scheduled", "success")

	require.Equal(t, 2.0, testutil.ToFloat64(r.collections.WithLabelValues("scheduled", "success")))
}

func TestStoreGauges(t *testing.T) {
	st := store.New(datasource.NewFixture(), nil)
	_, err := st.Reset(context.Background())
	require.NoError(t, err)
	r := New(st)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Contains(t, string(body), `wellbeing_store_records{collection="messages"} 3`)
	require.Contains(t, string(body), `wellbeing_store_records{collection="issues_b"} 3`)

	st.Clear()
	count, err := testutil.GatherAndCount(r.Registry(), "wellbeing_store_records")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}
