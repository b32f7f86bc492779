package board

import "fmt"

// Square represents a square on the board, A1=0 .. H8=63. File = sq mod 8,
// Rank = sq div 8. This numbering matches a direct 64-bit bitboard
// interpretation: bit i of a Bitboard corresponds to Square(i).
type Square int8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	ZeroSquare  Square = 0
	NumSquares  Square = 64
	NoSquare    Square = -1
	NumFiles           = 8
	NumRanks           = 8
)

// NewSquare builds a square from a zero-based file (0=a) and rank (0=1).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the zero-based file (0=a .. 7=h).
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the zero-based rank (0=rank1 .. 7=rank8).
func (s Square) Rank() int {
	return int(s) / 8
}

// IsValid reports whether s is within a1..h8.
func (s Square) IsValid() bool {
	return s >= A1 && s < NumSquares
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+rune(s.File()), '1'+rune(s.Rank()))
}

// ParseSquare parses a UCI-style coordinate, such as "e4".
func ParseSquare(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return A1, fmt.Errorf("%w: invalid square %q", ErrInvalidSquare, str)
	}

	f, r := runes[0], runes[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return A1, fmt.Errorf("%w: invalid square %q", ErrInvalidSquare, str)
	}
	return NewSquare(int(f-'a'), int(r-'1')), nil
}
