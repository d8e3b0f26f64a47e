package solana

import (
	"context"
	"errors"
	"testing"

	"github.com/AlexZinkM/sentinel/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBalanceClient struct {
	lamports uint64
	err      error
	owner    solana.PublicKey
}

func (f *fakeBalanceClient) GetBalance(_ context.Context, owner solana.PublicKey) (uint64, error) {
	f.owner = owner
	return f.lamports, f.err
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	address := solana.SystemProgramID.String()

	client := &fakeBalanceClient{lamports: 1_500_000_000}
	resp, err := GetBalance(ctx, client, address)
	require.NoError(t, err)
	assert.Equal(t, "1.500000000", resp.SOL)
	assert.Equal(t, address, resp.Address)
	assert.Equal(t, solana.SystemProgramID, client.owner)

	_, err = GetBalance(ctx, client, "not-an-address")
	require.ErrorIs(t, err, model.ErrEncoding)

	rpcErr := errors.New("rpc down")
	_, err = GetBalance(ctx, &fakeBalanceClient{err: rpcErr}, address)
	require.ErrorIs(t, err, rpcErr)
}

func TestAddressQR(t *testing.T) {
	qr, err := AddressQR(solana.SystemProgramID.String())
	require.NoError(t, err)
	assert.NotEmpty(t, qr)
}
