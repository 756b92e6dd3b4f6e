package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakegate/ledgersync/internal/api/rest"
	"github.com/stakegate/ledgersync/internal/domain"
	"github.com/stakegate/ledgersync/internal/entries"
	"github.com/stakegate/ledgersync/internal/epoch"
	"github.com/stakegate/ledgersync/internal/logger"
	"github.com/stakegate/ledgersync/internal/mocks"
)

const testAssetID = "d5e6bf0500378d4f0da4e8dde6becec7621cd8cbf5cbb9b87013d4cc4d794e4654"

type handlerMocks struct {
	ctrl       *gomock.Controller
	resolver   *mocks.MockResolver
	epochs     *mocks.MockService
	aggregator *mocks.MockAggregator
	sweep      *mocks.MockSweepRunner
	clock      *mocks.MockClock
}

// setupHandler builds the handler on a bare gin engine with no auth
// middleware, routes registered by hand per test
func setupHandler(t *testing.T) (rest.Handler, *handlerMocks) {
	err := logger.Initialize(logger.Config{Debug: true})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		ctrl:       ctrl,
		resolver:   mocks.NewMockResolver(ctrl),
		epochs:     mocks.NewMockService(ctrl),
		aggregator: mocks.NewMockAggregator(ctrl),
		sweep:      mocks.NewMockSweepRunner(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	h := rest.NewHandler(m.resolver, m.epochs, m.aggregator, m.sweep, m.clock)
	return h, m
}

// perform runs a single handler against a recorded request
func perform(handlerFunc gin.HandlerFunc, method, path string, params gin.Params) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	c.Params = params
	handlerFunc(c)
	c.Writer.WriteHeaderNow()
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetAssetOwners(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	m.resolver.EXPECT().
		ResolveOwners(gomock.Any(), domain.AssetID(testAssetID)).
		Return([]domain.Owner{
			{StakeKey: "stake1u9example0", Quantity: 2, Addresses: []string{"addr1qqq"}},
		}, nil)

	w := perform(h.GetAssetOwners, http.MethodGet, "/api/v1/assets/"+testAssetID+"/owners",
		gin.Params{{Key: "asset_id", Value: testAssetID}})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, testAssetID, body["tokenId"])
	owners, ok := body["owners"].([]interface{})
	require.True(t, ok)
	require.Len(t, owners, 1)
	owner := owners[0].(map[string]interface{})
	assert.Equal(t, "stake1u9example0", owner["stakeKey"])
}

func TestGetAssetOwners_Paged(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	m.resolver.EXPECT().
		ResolveOwnersPage(gomock.Any(), domain.AssetID(testAssetID), 3).
		Return(nil, nil)

	w := perform(h.GetAssetOwners, http.MethodGet, "/api/v1/assets/"+testAssetID+"/owners?page=3",
		gin.Params{{Key: "asset_id", Value: testAssetID}})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["page"])
	// A nil owner slice still serializes as an empty array
	assert.Equal(t, []interface{}{}, body["owners"])
}

func TestGetAssetOwners_InvalidAssetID(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	w := perform(h.GetAssetOwners, http.MethodGet, "/api/v1/assets/nope/owners",
		gin.Params{{Key: "asset_id", Value: "nope"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAssetOwners_InvalidPage(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	w := perform(h.GetAssetOwners, http.MethodGet, "/api/v1/assets/"+testAssetID+"/owners?page=zero",
		gin.Params{{Key: "asset_id", Value: testAssetID}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAssetOwners_NotFound(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	m.resolver.EXPECT().
		ResolveOwners(gomock.Any(), domain.AssetID(testAssetID)).
		Return(nil, domain.ErrNotFound)

	w := perform(h.GetAssetOwners, http.MethodGet, "/api/v1/assets/"+testAssetID+"/owners",
		gin.Params{{Key: "asset_id", Value: testAssetID}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCurrentEpoch(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	m.epochs.EXPECT().Status(gomock.Any()).Return(&epoch.Status{
		Epoch:          512,
		StartTime:      now.Add(-time.Hour).UnixMilli(),
		EndTime:        now.Add(time.Hour).UnixMilli(),
		ElapsedPercent: 50,
	}, nil)
	m.clock.EXPECT().Now().Return(now)

	w := perform(h.GetCurrentEpoch, http.MethodGet, "/api/v1/epochs/current", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(512), body["epoch"])
	assert.Equal(t, float64(50), body["percent"])
	assert.Equal(t, float64(now.UnixMilli()), body["nowTime"])
	assert.Contains(t, body, "startTime")
	assert.Contains(t, body, "endTime")
}

func TestGetCurrentEpoch_Error(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	m.epochs.EXPECT().Status(gomock.Any()).Return(nil, errors.New("db down"))

	w := perform(h.GetCurrentEpoch, http.MethodGet, "/api/v1/epochs/current", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTriggerSweep(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	m.sweep.EXPECT().RunSweepCycle(gomock.Any()).Return(nil)

	w := perform(h.TriggerSweep, http.MethodPost, "/api/v1/swaps/sweep", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTriggerSweep_Error(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	m.sweep.EXPECT().RunSweepCycle(gomock.Any()).Return(errors.New("sweep broke"))

	w := perform(h.TriggerSweep, http.MethodPost, "/api/v1/swaps/sweep", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBuildPollEntries(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	set := &entries.EntrySet{TotalEntries: 42}
	m.aggregator.EXPECT().BuildEntrySet(gomock.Any()).Return(set, nil)
	m.aggregator.EXPECT().SaveSnapshot(gomock.Any(), "poll-1", set).Return(nil)

	w := perform(h.BuildPollEntries, http.MethodPost, "/api/v1/polls/poll-1/entries",
		gin.Params{{Key: "id", Value: "poll-1"}})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "poll-1", body["pollId"])
	assert.Equal(t, float64(42), body["totalEntries"])
}

func TestBuildPollEntries_BuildError(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	m.aggregator.EXPECT().BuildEntrySet(gomock.Any()).Return(nil, errors.New("resolver failed"))

	w := perform(h.BuildPollEntries, http.MethodPost, "/api/v1/polls/poll-1/entries",
		gin.Params{{Key: "id", Value: "poll-1"}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFinalizePollEntries(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	m.aggregator.EXPECT().Finalize(gomock.Any(), "poll-1").Return(nil)

	w := perform(h.FinalizePollEntries, http.MethodPost, "/api/v1/polls/poll-1/finalize",
		gin.Params{{Key: "id", Value: "poll-1"}})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "finalized", body["status"])
}

func TestFinalizePollEntries_AlreadyFinalized(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	m.aggregator.EXPECT().Finalize(gomock.Any(), "poll-1").Return(domain.ErrSnapshotFinalized)

	w := perform(h.FinalizePollEntries, http.MethodPost, "/api/v1/polls/poll-1/finalize",
		gin.Params{{Key: "id", Value: "poll-1"}})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFinalizePollEntries_NotFound(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	m.aggregator.EXPECT().Finalize(gomock.Any(), "poll-1").Return(domain.ErrNotFound)

	w := perform(h.FinalizePollEntries, http.MethodPost, "/api/v1/polls/poll-1/finalize",
		gin.Params{{Key: "id", Value: "poll-1"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	h, m := setupHandler(t)
	defer m.ctrl.Finish()

	w := perform(h.HealthCheck, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
}
