package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/sentinel/internal/common"
	"github.com/AlexZinkM/sentinel/internal/model"

	"github.com/gagliardetto/solana-go"
)

// BalanceClient fetches SOL balances in lamports.
type BalanceClient interface {
	GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error)
}

// GetBalance gets wallet SOL balance
func GetBalance(ctx context.Context, client BalanceClient, address string) (*model.BalanceResponse, error) {
	owner, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, model.NewError(model.KindEncoding, "invalid Solana address", err)
	}

	lamports, err := client.GetBalance(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	// Convert to display string (no float precision loss)
	return &model.BalanceResponse{
		Address: address,
		SOL:     common.LamportsToSOL(lamports),
	}, nil
}
