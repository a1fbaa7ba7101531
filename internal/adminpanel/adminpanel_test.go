package adminpanel

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/javi11/poolkeeper/internal/adminpanel/handlers"
	"github.com/javi11/poolkeeper/internal/failurelog"
	"github.com/javi11/poolkeeper/internal/metrics"
	"github.com/javi11/poolkeeper/internal/serverinfo"
	"github.com/javi11/poolkeeper/pkg/resourcepool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPanel struct {
	handler http.Handler
	si      *serverinfo.MockServerInfo
	pm      *handlers.MockPoolMaintainer
	fl      *failurelog.MockFailureLog
}

type staticStats []resourcepool.Stats

func (s staticStats) Stats() []resourcepool.Stats { return s }

func newTestPanel(t *testing.T) testPanel {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	tp := testPanel{
		si: serverinfo.NewMockServerInfo(ctrl),
		pm: handlers.NewMockPoolMaintainer(ctrl),
		fl: failurelog.NewMockFailureLog(ctrl),
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := metrics.NewRegistry(staticStats{{Key: resourcepool.NewKey("a"), Size: 1}})
	tp.handler = New(tp.si, tp.pm, tp.fl, reg, log).Handler()

	return tp
}

func (tp testPanel) do(method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	tp.handler.ServeHTTP(w, httptest.NewRequest(method, target, nil))

	return w
}

func TestGetPools(t *testing.T) {
	tp := newTestPanel(t)
	key := resourcepool.NewKey("a")

	tp.si.EXPECT().GetGlobalInfo().Return(serverinfo.GlobalInfo{Pools: 1, Resources: 2})
	tp.si.EXPECT().GetPoolsInfo().Return([]serverinfo.PoolInfo{{Stats: resourcepool.Stats{Key: key, Size: 2}, Host: "news"}})

	w := tp.do(http.MethodGet, "/api/v1/pools")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Global serverinfo.GlobalInfo `json:"global"`
		Pools  []serverinfo.PoolInfo `json:"pools"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Global.Resources)
	require.Len(t, body.Pools, 1)
	assert.Equal(t, key, body.Pools[0].Key)
	assert.Equal(t, "news", body.Pools[0].Host)
}

func TestGetPool(t *testing.T) {
	tp := newTestPanel(t)
	key := resourcepool.NewKey("a")

	tp.si.EXPECT().GetPoolInfo(key).Return(serverinfo.PoolInfo{Stats: resourcepool.Stats{Key: key}}, true)
	w := tp.do(http.MethodGet, "/api/v1/pools/"+key.String())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), key.String())

	tp.si.EXPECT().GetPoolInfo(resourcepool.Key("missing")).Return(serverinfo.PoolInfo{}, false)
	w = tp.do(http.MethodGet, "/api/v1/pools/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExpirePools(t *testing.T) {
	tp := newTestPanel(t)

	tp.pm.EXPECT().ExpireIdle(time.Minute).Return(3)
	w := tp.do(http.MethodPost, "/api/v1/pools/expire?max_idle=1m")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"discarded":3}`, w.Body.String())

	tp.pm.EXPECT().ExpireIdle(time.Duration(0)).Return(0)
	w = tp.do(http.MethodPost, "/api/v1/pools/expire")
	assert.Equal(t, http.StatusOK, w.Code)

	w = tp.do(http.MethodPost, "/api/v1/pools/expire?max_idle=soon")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRetirePool(t *testing.T) {
	tp := newTestPanel(t)

	tp.pm.EXPECT().Retire(resourcepool.Key("a")).Return(true, nil)
	assert.Equal(t, http.StatusNoContent, tp.do(http.MethodDelete, "/api/v1/pools/a").Code)

	tp.pm.EXPECT().Retire(resourcepool.Key("b")).Return(false, nil)
	assert.Equal(t, http.StatusNotFound, tp.do(http.MethodDelete, "/api/v1/pools/b").Code)

	tp.pm.EXPECT().Retire(resourcepool.Key("c")).Return(true, errors.New("close failed"))
	w := tp.do(http.MethodDelete, "/api/v1/pools/c")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "close failed")
}

func TestGetFailures(t *testing.T) {
	tp := newTestPanel(t)

	tp.fl.EXPECT().List(gomock.Any(), 20, 0, nil, nil).Return(failurelog.Result{
		Entries:    []failurelog.Failure{{ID: 1, Reason: "refused"}},
		TotalCount: 1,
		Limit:      20,
	}, nil)
	w := tp.do(http.MethodGet, "/api/v1/failures")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "refused")

	tp.fl.EXPECT().List(gomock.Any(), 5, 10, gomock.Any(), nil).
		DoAndReturn(func(_ any, _, _ int, filters *failurelog.Filters, _ *failurelog.SortBy) (failurelog.Result, error) {
			assert.Equal(t, "news", filters.Target.Value)
			return failurelog.Result{Entries: []failurelog.Failure{}}, nil
		})
	w = tp.do(http.MethodGet, "/api/v1/failures?limit=5&offset=10&target=news")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusBadRequest, tp.do(http.MethodGet, "/api/v1/failures?limit=-1").Code)
	assert.Equal(t, http.StatusBadRequest, tp.do(http.MethodGet, "/api/v1/failures?offset=x").Code)

	tp.fl.EXPECT().List(gomock.Any(), 20, 0, nil, nil).Return(failurelog.Result{}, errors.New("db is locked"))
	assert.Equal(t, http.StatusInternalServerError, tp.do(http.MethodGet, "/api/v1/failures").Code)
}

func TestDeleteFailure(t *testing.T) {
	tp := newTestPanel(t)

	tp.fl.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	assert.Equal(t, http.StatusNoContent, tp.do(http.MethodDelete, "/api/v1/failures/1").Code)

	tp.fl.EXPECT().Delete(gomock.Any(), int64(2)).Return(failurelog.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, tp.do(http.MethodDelete, "/api/v1/failures/2").Code)

	assert.Equal(t, http.StatusBadRequest, tp.do(http.MethodDelete, "/api/v1/failures/abc").Code)
}

func TestMetrics(t *testing.T) {
	tp := newTestPanel(t)

	w := tp.do(http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "poolkeeper_pool_resources"))
}
