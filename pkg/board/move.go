package board

import (
	"fmt"
	"sort"
)

// Move is a from/to pair annotated with the kind of piece that moves, the
// kind of piece captured (NoPiece if none), and the promotion kind (NoPiece
// if none). En-passant captures carry Captured=Pawn even though the
// destination square is empty; castling is a King move of two files. No
// extra move-type tag is needed: Make/Unmake derive special-case handling
// from these fields and the board state they are applied to.
type Move struct {
	From, To  Square
	Mover     PieceKind
	Captured  PieceKind
	Promotion PieceKind
}

// Equals reports whether two moves name the same from/to/promotion, the
// comparison UCI equality is defined over.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// UCI renders the move in the four/five-character UCI wire format.
func (m Move) UCI() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

func (m Move) String() string {
	return m.UCI()
}

// ParseUCIMove parses str as a UCI move and resolves it against the legal
// moves of pos, filling in Mover/Captured from whichever legal move matches.
// Returns ErrIllegalMove if no legal move matches.
func ParseUCIMove(pos *Position, str string) (Move, error) {
	from, to, promo, err := parseUCICoordinates(str)
	if err != nil {
		return Move{}, err
	}

	for _, m := range pos.LegalMoves() {
		if m.From == from && m.To == to && m.Promotion == promo {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, str)
}

func parseUCICoordinates(str string) (from, to Square, promo PieceKind, err error) {
	promo = NoPiece

	runes := []rune(str)
	if len(runes) != 4 && len(runes) != 5 {
		return A1, A1, NoPiece, fmt.Errorf("%w: invalid move %q", ErrIllegalMove, str)
	}

	from, err = ParseSquare(string(runes[0:2]))
	if err != nil {
		return A1, A1, NoPiece, err
	}
	to, err = ParseSquare(string(runes[2:4]))
	if err != nil {
		return A1, A1, NoPiece, err
	}
	if len(runes) == 5 {
		p, ok := ParsePieceKind(runes[4])
		if !ok || p == Pawn || p == King {
			return A1, A1, NoPiece, fmt.Errorf("%w: invalid promotion in %q", ErrIllegalMove, str)
		}
		promo = p
	}
	return from, to, promo, nil
}

// SortMoves orders moves by (From, To, Promotion), the sort key legal_moves
// uses to produce a deterministic, duplicate-free sequence. Stable, so moves
// that compare equal keep their generation order.
func SortMoves(moves []Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		return a.Promotion < b.Promotion
	})
}
