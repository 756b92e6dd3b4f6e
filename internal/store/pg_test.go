package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/stakegate/ledgersync/internal/domain"
	"github.com/stakegate/ledgersync/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			terminateContainer(ctx)
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	// Initialize the database schema
	if err := initializeTestDatabase(testDB); err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	terminateContainer(ctx)
	os.Exit(code)
}

func terminateContainer(ctx context.Context) {
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}
}

// initializeTestDatabase runs the schema initialization SQL
func initializeTestDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	schemaPath := filepath.Join("..", "..", "db", "init_pg_db.sql")
	schemaSQL, err := os.ReadFile(schemaPath) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// initPGTestDB wraps each test in a transaction for isolation
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

// buildTestSwap creates a swap record in the given state
func buildTestSwap(state schema.SwapState, createdAt time.Time) *schema.Swap {
	return &schema.Swap{
		ID:                  uuid.New().String(),
		State:               state,
		AssetID:             "d5e6bf0500378d4f0da4e8dde6becec7621cd8cbf5cbb9b87013d4cc4d794e4654",
		CollectionID:        "d5e6bf0500378d4f0da4e8dde6becec7621cd8cbf5cbb9b87013d4cc",
		EscrowAddress:       "addr1escrow",
		CounterpartyAddress: "addr1counterparty",
		Counterpart:         datatypes.JSON([]byte(`{"kind":"mint_pass"}`)),
		CreatedAt:           createdAt,
	}
}

func TestPGCreateAndGetSwap(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	swap := buildTestSwap(schema.SwapStateAwaitingDeposit, time.Now().UTC())
	require.NoError(t, st.CreateSwap(ctx, swap))

	got, err := st.GetSwap(ctx, swap.ID)
	require.NoError(t, err)
	assert.Equal(t, swap.ID, got.ID)
	assert.Equal(t, schema.SwapStateAwaitingDeposit, got.State)
	assert.Equal(t, swap.AssetID, got.AssetID)
	assert.Nil(t, got.DepositTxHash)
}

func TestPGGetSwap_NotFound(t *testing.T) {
	st := initPGTestDB(t)

	_, err := st.GetSwap(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrSwapNotFound)
}

func TestPGListSwapsCreatedBefore(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	old := buildTestSwap(schema.SwapStateAwaitingDeposit, now.Add(-30*time.Minute))
	older := buildTestSwap(schema.SwapStateDeposited, now.Add(-time.Hour))
	young := buildTestSwap(schema.SwapStateAwaitingDeposit, now.Add(-time.Minute))
	for _, swap := range []*schema.Swap{old, older, young} {
		require.NoError(t, st.CreateSwap(ctx, swap))
	}

	swaps, err := st.ListSwapsCreatedBefore(ctx, now.Add(-15*time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, swaps, 2)
	// Oldest first
	assert.Equal(t, older.ID, swaps[0].ID)
	assert.Equal(t, old.ID, swaps[1].ID)

	limited, err := st.ListSwapsCreatedBefore(ctx, now.Add(-15*time.Minute), 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, older.ID, limited[0].ID)
}

func TestPGMarkSwapDeposited(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	swap := buildTestSwap(schema.SwapStateAwaitingDeposit, time.Now().UTC())
	require.NoError(t, st.CreateSwap(ctx, swap))

	txHash := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	updated, err := st.MarkSwapDeposited(ctx, swap.ID, txHash)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := st.GetSwap(ctx, swap.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.SwapStateDeposited, got.State)
	require.NotNil(t, got.DepositTxHash)
	assert.Equal(t, txHash, *got.DepositTxHash)

	// Re-application is a no-op
	updated, err = st.MarkSwapDeposited(ctx, swap.ID, txHash)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestPGClaimSwapForSettlement(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	swap := buildTestSwap(schema.SwapStateDeposited, time.Now().UTC())
	require.NoError(t, st.CreateSwap(ctx, swap))

	now := time.Now().UTC()
	lease := 2 * time.Minute

	claimed, err := st.ClaimSwapForSettlement(ctx, swap.ID, now, lease)
	require.NoError(t, err)
	assert.True(t, claimed)

	// A second claim inside the lease window loses
	claimed, err = st.ClaimSwapForSettlement(ctx, swap.ID, now.Add(time.Minute), lease)
	require.NoError(t, err)
	assert.False(t, claimed)

	// Once the lease is stale the claim can be re-taken
	claimed, err = st.ClaimSwapForSettlement(ctx, swap.ID, now.Add(3*time.Minute), lease)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestPGClaimSwapForSettlement_WithdrawnBlocksClaim(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	swap := buildTestSwap(schema.SwapStateDeposited, time.Now().UTC())
	require.NoError(t, st.CreateSwap(ctx, swap))

	txHash := "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	require.NoError(t, st.MarkSwapWithdrawn(ctx, swap.ID, txHash))

	claimed, err := st.ClaimSwapForSettlement(ctx, swap.ID, time.Now().UTC(), time.Minute)
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestPGMarkSwapWithdrawn(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	swap := buildTestSwap(schema.SwapStateDeposited, time.Now().UTC())
	require.NoError(t, st.CreateSwap(ctx, swap))

	txHash := "cccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc"
	require.NoError(t, st.MarkSwapWithdrawn(ctx, swap.ID, txHash))

	got, err := st.GetSwap(ctx, swap.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.SwapStateWithdrawn, got.State)
	require.NotNil(t, got.WithdrawTxHash)
	assert.Equal(t, txHash, *got.WithdrawTxHash)

	// Terminal state cannot be re-advanced
	err = st.MarkSwapWithdrawn(ctx, swap.ID, txHash)
	assert.ErrorIs(t, err, domain.ErrSwapNotFound)
}

func TestPGDeleteSwap(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	swap := buildTestSwap(schema.SwapStateAwaitingDeposit, time.Now().UTC())
	require.NoError(t, st.CreateSwap(ctx, swap))
	require.NoError(t, st.DeleteSwap(ctx, swap.ID))

	_, err := st.GetSwap(ctx, swap.ID)
	assert.ErrorIs(t, err, domain.ErrSwapNotFound)
}

func TestPGGetActiveEpoch(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	nowMillis := time.Now().UnixMilli()

	// Empty cache
	epoch, err := st.GetActiveEpoch(ctx, nowMillis)
	require.NoError(t, err)
	assert.Nil(t, epoch)

	stale := &schema.Epoch{Epoch: 511, StartTime: nowMillis - 2_000_000, EndTime: nowMillis - 1_000_000}
	live := &schema.Epoch{Epoch: 512, StartTime: nowMillis - 1_000_000, EndTime: nowMillis + 1_000_000}
	require.NoError(t, st.InsertEpoch(ctx, stale))
	require.NoError(t, st.InsertEpoch(ctx, live))

	epoch, err = st.GetActiveEpoch(ctx, nowMillis)
	require.NoError(t, err)
	require.NotNil(t, epoch)
	assert.Equal(t, uint64(512), epoch.Epoch)

	// Everything expired again
	epoch, err = st.GetActiveEpoch(ctx, nowMillis+2_000_000)
	require.NoError(t, err)
	assert.Nil(t, epoch)
}

func TestPGEntrySnapshotLifecycle(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	snapshot := &schema.EntrySnapshot{
		PollID:          "poll-1",
		Status:          schema.EntrySnapshotStatusOpen,
		FungibleHolders: datatypes.JSON([]byte(`[]`)),
		UsedUnits:       datatypes.JSON([]byte(`["unit1"]`)),
		Entries:         datatypes.JSON([]byte(`[{"source":"unit1","weight":1}]`)),
		TotalEntries:    1,
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, st.SaveEntrySnapshot(ctx, snapshot))

	got, err := st.GetEntrySnapshot(ctx, "poll-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, schema.EntrySnapshotStatusOpen, got.Status)
	assert.Equal(t, int64(1), got.TotalEntries)

	now := time.Now().UTC()
	require.NoError(t, st.FinalizeEntrySnapshot(ctx, "poll-1", now))

	got, err = st.GetEntrySnapshot(ctx, "poll-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, schema.EntrySnapshotStatusFinalized, got.Status)
	// Detail is gone, the total survives
	assert.Empty(t, got.Entries)
	assert.Empty(t, got.UsedUnits)
	assert.Equal(t, int64(1), got.TotalEntries)
	require.NotNil(t, got.FinalizedAt)

	// Finalization is one-shot
	err = st.FinalizeEntrySnapshot(ctx, "poll-1", now)
	assert.ErrorIs(t, err, domain.ErrSnapshotFinalized)
}

func TestPGFinalizeEntrySnapshot_NotFound(t *testing.T) {
	st := initPGTestDB(t)

	err := st.FinalizeEntrySnapshot(context.Background(), "missing", time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
