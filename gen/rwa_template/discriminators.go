package rwa_template

// Account discriminators.
var (
	Account_AssetRegistry = [8]byte{60, 94, 213, 134, 205, 170, 175, 68}
)

// Instruction discriminators.
var (
	Instruction_InitializeAsset = [8]byte{214, 153, 49, 248, 95, 248, 208, 179}
	Instruction_MintSupply      = [8]byte{197, 42, 123, 102, 207, 206, 148, 45}
)
