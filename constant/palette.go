package constant

// ConfettiPalette is the fixed 5-color palette (0xRRGGBB) shared by both
// effect families.
var ConfettiPalette = [5]uint32{
	0xFF595E, // red
	0xFFCA3A, // yellow
	0x8AC926, // green
	0x1982C4, // blue
	0x6A4C93, // purple
}
