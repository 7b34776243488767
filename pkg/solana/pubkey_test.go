package solana

import (
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MPC_EdDSA/pkg/curve"
)

func TestPublicKeyBase58RoundTrip(t *testing.T) {
	pk := fillKey(0x11)
	decoded, err := PublicKeyFromBase58(pk.String())
	require.NoError(t, err)
	assert.Equal(t, pk, decoded)
}

func TestPublicKeyFromBytesRejectsWrongLength(t *testing.T) {
	_, err := PublicKeyFromBytes(make([]byte, 31))
	assert.Error(t, err)
}

func TestProgramIDConstantsDecode(t *testing.T) {
	// MustPublicKey already ran at package init; spot-check the round trip.
	assert.Equal(t, "11111111111111111111111111111111", SystemProgramID.String())
	assert.Equal(t, "Stake11111111111111111111111111111111111111", StakeProgramID.String())
	assert.Equal(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", TokenProgramID.String())
	assert.Equal(t, "MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr", MemoProgramID.String())
}

func TestCreateWithSeed(t *testing.T) {
	base := fillKey(1)
	derived, err := CreateWithSeed(base, "stake:0", StakeProgramID)
	require.NoError(t, err)

	h := sha256.New()
	h.Write(base[:])
	h.Write([]byte("stake:0"))
	h.Write(StakeProgramID[:])
	expected, err := PublicKeyFromBytes(h.Sum(nil))
	require.NoError(t, err)
	assert.Equal(t, expected, derived)

	other, err := CreateWithSeed(base, "stake:1", StakeProgramID)
	require.NoError(t, err)
	assert.NotEqual(t, derived, other)
}

func TestCreateWithSeedRejectsLongSeed(t *testing.T) {
	_, err := CreateWithSeed(fillKey(1), strings.Repeat("a", MaxSeedLength+1), StakeProgramID)
	assert.Error(t, err)
}

func TestFindProgramAddressIsOffCurve(t *testing.T) {
	wallet := fillKey(3)
	mint := fillKey(4)

	addr, bump, err := FindProgramAddress(
		[][]byte{wallet[:], TokenProgramID[:], mint[:]},
		AssociatedTokenProgramID,
	)
	require.NoError(t, err)
	assert.False(t, curve.IsOnCurve(addr[:]), "program derived addresses must be off the curve")
	assert.LessOrEqual(t, bump, uint8(255))

	again, bumpAgain, err := FindProgramAddress(
		[][]byte{wallet[:], TokenProgramID[:], mint[:]},
		AssociatedTokenProgramID,
	)
	require.NoError(t, err)
	assert.Equal(t, addr, again)
	assert.Equal(t, bump, bumpAgain)
}

func TestFindAssociatedTokenAddressDiffersPerMint(t *testing.T) {
	wallet := fillKey(3)

	a, err := FindAssociatedTokenAddress(wallet, fillKey(4))
	require.NoError(t, err)
	b, err := FindAssociatedTokenAddress(wallet, fillKey(5))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParseTokenAccountAmount(t *testing.T) {
	data := make([]byte, 165)
	data[64] = 0x39
	data[65] = 0x30
	amount, err := ParseTokenAccountAmount(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), amount)

	_, err = ParseTokenAccountAmount(data[:64])
	assert.Error(t, err)
}

func TestParseMintDecimals(t *testing.T) {
	data := make([]byte, 82)
	data[44] = 6
	decimals, err := ParseMintDecimals(data)
	require.NoError(t, err)
	assert.Equal(t, uint8(6), decimals)

	_, err = ParseMintDecimals(data[:44])
	assert.Error(t, err)
}

func TestSolToLamports(t *testing.T) {
	assert.Equal(t, uint64(1_000_000_000), SolToLamports(1))
	assert.Equal(t, uint64(1_500_000_000), SolToLamports(1.5))
	assert.Equal(t, uint64(0), SolToLamports(0))
}

func TestTokenUnitsTruncates(t *testing.T) {
	assert.Equal(t, uint64(1_500_000), TokenUnits(1.5, 6))
	assert.Equal(t, uint64(12), TokenUnits(0.0123, 3))
}
