package serialsink

// Frame markers and the set-color command understood by the LED controller.
const (
	SOF0        = 0xAA
	SOF1        = 0x55
	CmdSetColor = 0x20
)

// Frame is one set-color command for the LED controller.
type Frame struct {
	R, G, B byte
}

// Encode builds the on-wire representation:
//
//	[SOF0][SOF1][LEN][CMD][R][G][B][CKS]
//
// LEN counts CMD plus the payload; CKS is the XOR of LEN, CMD and the payload.
func (f Frame) Encode() []byte {
	payload := []byte{f.R, f.G, f.B}

	length := byte(len(payload) + 1)
	cks := length ^ CmdSetColor
	for _, b := range payload {
		cks ^= b
	}

	out := []byte{SOF0, SOF1, length, CmdSetColor}
	out = append(out, payload...)
	return append(out, cks)
}
