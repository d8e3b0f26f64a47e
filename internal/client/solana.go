package client

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexZinkM/sentinel/internal/config"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient *rpc.Client
	timeout   time.Duration
}

// NewSolanaClient creates a new Solana client from configuration.
func NewSolanaClient(cfg *config.Config) *SolanaClient {
	return &SolanaClient{
		rpcClient: rpc.New(cfg.RPCEndpoint()),
		timeout:   cfg.RPCTimeout,
	}
}

// GetBalance gets SOL balance in lamports for owner
func (c *SolanaClient) GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	balance, err := c.rpcClient.GetBalance(ctx, owner, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return balance.Value, nil
}

// LatestBlockhash fetches the latest finalized blockhash, used to test the connection.
func (c *SolanaClient) LatestBlockhash(ctx context.Context) (solana.Hash, uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// GetRecentBlockhash is deprecated, use GetLatestBlockhash
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, 0, fmt.Errorf("failed to get latest blockhash: %w", err)
	}
	return recent.Value.Blockhash, recent.Value.LastValidBlockHeight, nil
}
