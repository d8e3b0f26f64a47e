package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AlexZinkM/sentinel/internal/model"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// walletModel maps the `wallets` table.
type walletModel struct {
	bun.BaseModel `bun:"table:wallets"`

	ID                  int64     `bun:"id,pk,autoincrement"`
	PublicKey           string    `bun:"pubkey,unique,notnull"`
	EncryptedPrivateKey []byte    `bun:"encrypted_private_key,notnull"`
	Label               *string   `bun:"label"`
	CreatedAt           time.Time `bun:"created_at,notnull"`
}

// kdfParamsModel maps the single-row `kdf_params` table.
type kdfParamsModel struct {
	bun.BaseModel `bun:"table:kdf_params"`

	ID        int64     `bun:"id,pk"`
	Algorithm string    `bun:"algorithm,notnull"`
	Salt      []byte    `bun:"salt,notnull"`
	TimeCost  uint32    `bun:"time_cost,notnull"`
	MemoryKiB uint32    `bun:"memory_kib,notnull"`
	Threads   uint8     `bun:"threads,notnull"`
	Verifier  []byte    `bun:"verifier,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

const kdfParamsRowID = 1

// SQLiteStore implements CredentialStore and ParamsStore on a single SQLite
// connection. Writes are serialized by mu.
type SQLiteStore struct {
	mu  sync.Mutex
	db  *bun.DB
	log *zap.Logger
}

var (
	_ CredentialStore = (*SQLiteStore)(nil)
	_ ParamsStore     = (*SQLiteStore)(nil)
)

// NewSQLiteStore opens (or creates) the database at path and creates tables if needed.
func NewSQLiteStore(ctx context.Context, path string, log *zap.Logger) (*SQLiteStore, error) {
	sqlDB, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One shared connection; also keeps ":memory:" databases visible to every query.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	s := &SQLiteStore{
		db:  bun.NewDB(sqlDB, sqlitedialect.New()),
		log: log,
	}
	if err := s.initTables(ctx); err != nil {
		_ = s.db.Close()
		return nil, err
	}
	return s, nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" || strings.Contains(path, "?") {
		return path
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)"
}

func (s *SQLiteStore) initTables(ctx context.Context) error {
	models := []interface{}{
		(*walletModel)(nil),
		(*kdfParamsModel)(nil),
	}
	for _, m := range models {
		if _, err := s.db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Close closes the underlying connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save inserts a wallet record and sets its CreatedAt.
func (s *SQLiteStore) Save(ctx context.Context, record *model.WalletRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := &walletModel{
		PublicKey:           record.PublicKey,
		EncryptedPrivateKey: record.Envelope,
		Label:               record.Label,
		CreatedAt:           time.Now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return conflictError(fmt.Sprintf("wallet %s already exists", record.PublicKey), nil)
		}
		return fmt.Errorf("failed to insert wallet: %w", err)
	}

	record.CreatedAt = row.CreatedAt
	s.log.Debug("wallet saved", zap.String("pubkey", record.PublicKey))
	return nil
}

// Get returns the wallet record for publicKey.
func (s *SQLiteStore) Get(ctx context.Context, publicKey string) (*model.WalletRecord, error) {
	var row walletModel
	err := s.db.NewSelect().Model(&row).Where("pubkey = ?", publicKey).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.NewError(model.KindNotFound, fmt.Sprintf("wallet %s not found", publicKey), nil)
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	record := walletModelToRecord(row)
	return &record, nil
}

// List returns all wallet records in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]model.WalletRecord, error) {
	var rows []walletModel
	if err := s.db.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	records := make([]model.WalletRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, walletModelToRecord(row))
	}
	return records, nil
}

// LoadKDFParams returns the stored derivation parameters.
func (s *SQLiteStore) LoadKDFParams(ctx context.Context) (*model.KDFParams, error) {
	var row kdfParamsModel
	err := s.db.NewSelect().Model(&row).Where("id = ?", kdfParamsRowID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.NewError(model.KindNotFound, "no key derivation parameters stored", nil)
		}
		return nil, fmt.Errorf("failed to load KDF parameters: %w", err)
	}

	return &model.KDFParams{
		Algorithm: row.Algorithm,
		Salt:      row.Salt,
		TimeCost:  row.TimeCost,
		MemoryKiB: row.MemoryKiB,
		Threads:   row.Threads,
		Verifier:  row.Verifier,
		CreatedAt: row.CreatedAt,
	}, nil
}

// SaveKDFParams stores derivation parameters once per installation.
func (s *SQLiteStore) SaveKDFParams(ctx context.Context, params *model.KDFParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := &kdfParamsModel{
		ID:        kdfParamsRowID,
		Algorithm: params.Algorithm,
		Salt:      params.Salt,
		TimeCost:  params.TimeCost,
		MemoryKiB: params.MemoryKiB,
		Threads:   params.Threads,
		Verifier:  params.Verifier,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return conflictError("key derivation parameters already stored", nil)
		}
		return fmt.Errorf("failed to insert KDF parameters: %w", err)
	}

	params.CreatedAt = row.CreatedAt
	s.log.Info("key derivation parameters stored", zap.String("algorithm", params.Algorithm))
	return nil
}

func walletModelToRecord(row walletModel) model.WalletRecord {
	return model.WalletRecord{
		PublicKey: row.PublicKey,
		Envelope:  row.EncryptedPrivateKey,
		Label:     row.Label,
		CreatedAt: row.CreatedAt,
	}
}
