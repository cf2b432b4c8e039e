package encoder

// Bit-field shift positions shared across instruction classes, adapted from
// the teacher project's vm/arch_constants.go.
const (
	conditionShift = 28
	opcodeShift    = 21
	sBitShift      = 20
	iBitShift      = 25
	rnShift        = 16
	rdShift        = 12
	rsShift        = 8

	pBitShift = 24
	uBitShift = 23
	bBitShift = 22
	wBitShift = 21
	lBitShift = 20

	branchTypeShift = 25
	branchLinkShift = 24

	mask4Bit  = 0xF
	mask5Bit  = 0x1F
	mask12Bit = 0xFFF
	mask24Bit = 0xFFFFFF

	maxImm12 = 4095
	maxImm5  = 31
)
