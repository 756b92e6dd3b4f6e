package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stakegate/ledgersync/internal/adapter"
	"github.com/stakegate/ledgersync/internal/domain"
	"github.com/stakegate/ledgersync/internal/entries"
	"github.com/stakegate/ledgersync/internal/epoch"
	"github.com/stakegate/ledgersync/internal/ownership"
)

// SweepRunner runs one escrow sweep pass on demand
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler,SweepRunner=MockSweepRunner
type SweepRunner interface {
	RunSweepCycle(ctx context.Context) error
}

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// GetAssetOwners resolves the current holders of an asset
	// GET /api/v1/assets/:asset_id/owners?page=<page>
	GetAssetOwners(c *gin.Context)

	// GetCurrentEpoch returns the active epoch with elapsed progress
	// GET /api/v1/epochs/current
	GetCurrentEpoch(c *gin.Context)

	// TriggerSweep runs one escrow sweep pass (requires authentication)
	// POST /api/v1/swaps/sweep
	TriggerSweep(c *gin.Context)

	// BuildPollEntries builds and saves the entry snapshot for a poll
	// (requires authentication)
	// POST /api/v1/polls/:id/entries
	BuildPollEntries(c *gin.Context)

	// FinalizePollEntries truncates a poll's snapshot detail (requires
	// authentication)
	// POST /api/v1/polls/:id/finalize
	FinalizePollEntries(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	resolver   ownership.Resolver
	epochs     epoch.Service
	aggregator entries.Aggregator
	sweep      SweepRunner
	clock      adapter.Clock
}

// NewHandler creates a new REST API handler
func NewHandler(
	resolver ownership.Resolver,
	epochs epoch.Service,
	aggregator entries.Aggregator,
	sweep SweepRunner,
	clock adapter.Clock,
) Handler {
	return &handler{
		resolver:   resolver,
		epochs:     epochs,
		aggregator: aggregator,
		sweep:      sweep,
		clock:      clock,
	}
}

// GetAssetOwners resolves the current holders of an asset
func (h *handler) GetAssetOwners(c *gin.Context) {
	assetID := domain.AssetID(c.Param("asset_id"))
	if !assetID.Valid() {
		respondValidationError(c, "asset_id must be a policy ID followed by a hex-encoded asset name")
		return
	}

	var (
		owners []domain.Owner
		page   int
		err    error
	)
	if pageParam := c.Query("page"); pageParam != "" {
		page, err = strconv.Atoi(pageParam)
		if err != nil || page < 1 {
			respondValidationError(c, "page must be a positive integer")
			return
		}
		owners, err = h.resolver.ResolveOwnersPage(c.Request.Context(), assetID, page)
	} else {
		owners, err = h.resolver.ResolveOwners(c.Request.Context(), assetID)
	}

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(c, "Asset not found", assetID.String())
			return
		}
		respondInternalError(c, err, "Failed to resolve asset owners", zap.String("asset_id", assetID.String()))
		return
	}

	if owners == nil {
		owners = []domain.Owner{}
	}
	c.JSON(http.StatusOK, gin.H{
		"tokenId": assetID.String(),
		"page":    page,
		"owners":  owners,
	})
}

// GetCurrentEpoch returns the active epoch with elapsed progress
func (h *handler) GetCurrentEpoch(c *gin.Context) {
	status, err := h.epochs.Status(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to resolve current epoch")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"epoch":     status.Epoch,
		"percent":   status.ElapsedPercent,
		"startTime": status.StartTime,
		"endTime":   status.EndTime,
		"nowTime":   h.clock.Now().UnixMilli(),
	})
}

// TriggerSweep runs one escrow sweep pass
func (h *handler) TriggerSweep(c *gin.Context) {
	if err := h.sweep.RunSweepCycle(c.Request.Context()); err != nil {
		respondInternalError(c, err, "Sweep pass failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// BuildPollEntries builds and saves the entry snapshot for a poll
func (h *handler) BuildPollEntries(c *gin.Context) {
	pollID := c.Param("id")
	if pollID == "" {
		respondBadRequest(c, "Poll ID is required")
		return
	}

	set, err := h.aggregator.BuildEntrySet(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to build entry set", zap.String("poll_id", pollID))
		return
	}

	if err := h.aggregator.SaveSnapshot(c.Request.Context(), pollID, set); err != nil {
		respondInternalError(c, err, "Failed to save entry snapshot", zap.String("poll_id", pollID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"pollId":       pollID,
		"totalEntries": set.TotalEntries,
	})
}

// FinalizePollEntries truncates a poll's snapshot detail
func (h *handler) FinalizePollEntries(c *gin.Context) {
	pollID := c.Param("id")
	if pollID == "" {
		respondBadRequest(c, "Poll ID is required")
		return
	}

	if err := h.aggregator.Finalize(c.Request.Context(), pollID); err != nil {
		switch {
		case errors.Is(err, domain.ErrSnapshotFinalized):
			respondConflict(c, "Snapshot already finalized", pollID)
		case errors.Is(err, domain.ErrNotFound):
			respondNotFound(c, "Snapshot not found", pollID)
		default:
			respondInternalError(c, err, "Failed to finalize entry snapshot", zap.String("poll_id", pollID))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pollId": pollID,
		"status": "finalized",
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "ledgersync-api",
	})
}
