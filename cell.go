package dawg

// Packed cell layout (spec §3): bits 0-7 the ASCII letter, bit 8
// terminal, bit 9 last-sibling, bits 10-31 the index of the first child
// (or -1, all-ones in that field, if the node has no children).
const (
	letterBits      = 8
	letterMask      = 1<<letterBits - 1
	terminalBit     = 8
	lastSiblingBit  = 9
	firstChildShift = 10
)

// cell is one packed node of the minimized automaton, fixed at 32 bits so
// that a node is identified by a single array index into the cell array.
type cell uint32

func makeCell(letter byte, terminal, lastSibling bool, firstChild int32) cell {
	v := uint32(letter) & letterMask
	if terminal {
		v |= 1 << terminalBit
	}
	if lastSibling {
		v |= 1 << lastSiblingBit
	}
	v |= uint32(firstChild) << firstChildShift
	return cell(v)
}

func (c cell) letter() byte      { return byte(c) & letterMask }
func (c cell) terminal() bool    { return c&(1<<terminalBit) != 0 }
func (c cell) lastSibling() bool { return c&(1<<lastSiblingBit) != 0 }

// firstChild returns the index of the node's first child, or a negative
// value (-1 when the node has no children) via an arithmetic shift that
// sign-extends the top 22 bits of the cell.
func (c cell) firstChild() int32 { return int32(c) >> firstChildShift }

// cellSource abstracts over an in-memory packed array (Builder.Build) and
// a memory-mapped one (LoadFile) so that Dawg's query path does not care
// which one it is reading from.
type cellSource interface {
	at(i int32) cell
	len() int
}

// sliceCells is the eagerly-materialized cellSource produced by Build and
// by Load.
type sliceCells []cell

func (s sliceCells) at(i int32) cell { return s[i] }
func (s sliceCells) len() int        { return len(s) }
