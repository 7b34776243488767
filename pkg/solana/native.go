package solana

import "math"

// LamportsPerSol is the number of lamports in one SOL.
const LamportsPerSol = 1_000_000_000

// SolToLamports converts a SOL amount to lamports, truncating like the
// chain's own native_token conversion does.
func SolToLamports(sol float64) uint64 {
	return uint64(sol * LamportsPerSol)
}

// LamportsToSol converts lamports to a SOL amount.
func LamportsToSol(lamports uint64) float64 {
	return float64(lamports) / LamportsPerSol
}

// TokenUnits scales a user-level token amount by the mint's decimals,
// truncating fractional units.
func TokenUnits(amount float64, decimals uint8) uint64 {
	return uint64(amount * math.Pow10(int(decimals)))
}
