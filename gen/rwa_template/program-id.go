package rwa_template

import solanago "github.com/gagliardetto/solana-go"

// ProgramID is the RWA template program address on devnet.
var ProgramID = solanago.MustPublicKeyFromBase58("jEXgKE9NWJihHqLVAoXZ4e2TSZ7KkV7kub8j4ojcmZC")
