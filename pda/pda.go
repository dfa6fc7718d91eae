// Package pda derives program addresses: public keys that are guaranteed to
// lie off the ed25519 curve and therefore have no private key.
package pda

import (
	"crypto/sha256"
	"math"

	"filippo.io/edwards25519"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

const (
	MaxSeeds      = 16
	MaxSeedLength = 32

	pdaMarker = "ProgramDerivedAddress"
)

var (
	ErrTooManySeeds          = errors.New("too many seeds")
	ErrMaxSeedLengthExceeded = errors.New("max seed length exceeded")
	ErrInvalidPublicKey      = errors.New("invalid public key")

	// ErrBumpSeedNotFound means no bump in [0, 255] produced an off-curve
	// address. It indicates a broken seed set, not a transient condition.
	ErrBumpSeedNotFound = errors.New("unable to find a viable program address bump seed")
)

// CreateProgramAddress hashes seeds, the program id and the PDA marker.
// The result is rejected with ErrInvalidPublicKey when it is a valid curve point.
func CreateProgramAddress(seeds [][]byte, programID solanago.PublicKey) (solanago.PublicKey, error) {
	if len(seeds) > MaxSeeds {
		return solanago.PublicKey{}, ErrTooManySeeds
	}

	h := sha256.New()
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return solanago.PublicKey{}, ErrMaxSeedLengthExceeded
		}
		if _, err := h.Write(s); err != nil {
			return solanago.PublicKey{}, errors.Wrap(err, "failed to hash seed")
		}
	}
	h.Write(programID[:])
	h.Write([]byte(pdaMarker))

	var pub solanago.PublicKey
	copy(pub[:], h.Sum(nil))

	if IsOnCurve(pub[:]) {
		return solanago.PublicKey{}, ErrInvalidPublicKey
	}
	return pub, nil
}

// Derive searches bump seeds from 255 down to 0 and returns the first
// off-curve address together with its bump.
func Derive(seeds [][]byte, programID solanago.PublicKey) (solanago.PublicKey, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := math.MaxUint8; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}

		pub, err := CreateProgramAddress(withBump, programID)
		if err == nil {
			return pub, uint8(bump), nil
		}
		if err != ErrInvalidPublicKey {
			return solanago.PublicKey{}, 0, err
		}
	}
	return solanago.PublicKey{}, 0, ErrBumpSeedNotFound
}

// MustDerive is Derive for seed sets fixed at compile time.
func MustDerive(seeds [][]byte, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, err := Derive(seeds, programID)
	if err != nil {
		panic(err)
	}
	return pub
}

// IsOnCurve reports whether b decodes to a point on the ed25519 curve.
func IsOnCurve(b []byte) bool {
	if len(b) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
