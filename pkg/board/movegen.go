package board

import "math/rand"

// promotionKinds are generated in this fixed order so that, combined with
// SortMoves's (From, To, Promotion) key, all four promotions of a pawn push
// or capture come out Knight < Bishop < Rook < Queen (PieceKind order).
var promotionKinds = [4]PieceKind{Knight, Bishop, Rook, Queen}

// pseudoLegalMoves enumerates moves for the side to move without filtering
// for self-check, but including special-move geometry (en passant, castling,
// promotions).
func (p *Position) pseudoLegalMoves() []Move {
	var moves []Move
	us := p.sideToMove
	own := p.Occupied(us)
	enemy := p.Occupied(us.Opponent())

	moves = append(moves, p.pawnMoves(us, enemy)...)

	for _, k := range [...]PieceKind{Knight, Bishop, Rook, Queen, King} {
		bb := p.pieces[us][k]
		for bb != 0 {
			var from Square
			from, bb = bb.PopLSB()

			var targets Bitboard
			switch k {
			case Knight:
				targets = KnightAttacks(from)
			case Bishop:
				targets = BishopAttacks(from, p.all)
			case Rook:
				targets = RookAttacks(from, p.all)
			case Queen:
				targets = QueenAttacks(from, p.all)
			case King:
				targets = KingAttacks(from)
			}
			targets &^= own

			for targets != 0 {
				var to Square
				to, targets = targets.PopLSB()
				moves = append(moves, p.captureOrQuietMove(from, to, k))
			}
		}
	}

	moves = append(moves, p.castlingMoves(us)...)

	SortMoves(moves)
	return moves
}

func (p *Position) captureOrQuietMove(from, to Square, mover PieceKind) Move {
	captured := NoPiece
	if _, k, ok := p.PieceAt(to); ok {
		captured = k
	}
	return Move{From: from, To: to, Mover: mover, Captured: captured, Promotion: NoPiece}
}

func (p *Position) pawnMoves(us Color, enemy Bitboard) []Move {
	var moves []Move
	promoRank := 7
	if us == Black {
		promoRank = 0
	}

	pawns := p.pieces[us][Pawn]
	for pawns != 0 {
		var from Square
		from, pawns = pawns.PopLSB()

		// Non-promotion pushes come straight from the table, masked by
		// empty squares: a single push requires the immediate square to be
		// empty, the double push additionally requires the square it passes
		// through to be empty.
		pushes := PawnPushes(us, from)
		single := behind2(from, us)
		if p.isOccupied(single) {
			pushes = 0
		} else if double := doublePushTarget(from, us); pushes.IsSet(double) && p.isOccupied(double) {
			pushes &^= BitMask(double)
		}
		for pushes != 0 {
			var to Square
			to, pushes = pushes.PopLSB()
			moves = append(moves, Move{From: from, To: to, Mover: Pawn, Captured: NoPiece, Promotion: NoPiece})
		}

		// The push table excludes the promotion rank; a pawn one step from
		// promoting is handled here instead, expanding into all four
		// promotion pieces.
		if single.IsValid() && single.Rank() == promoRank && !p.isOccupied(single) {
			moves = append(moves, p.pawnMoveOrPromotions(from, single, NoPiece, promoRank)...)
		}

		captures := PawnCaptures(us, from) & enemy
		for captures != 0 {
			var to Square
			to, captures = captures.PopLSB()
			_, captured, _ := p.PieceAt(to)
			moves = append(moves, p.pawnMoveOrPromotions(from, to, captured, promoRank)...)
		}

		if ep := p.epTarget; ep != NoSquare && PawnCaptures(us, from).IsSet(ep) {
			moves = append(moves, Move{From: from, To: ep, Mover: Pawn, Captured: Pawn, Promotion: NoPiece})
		}
	}
	return moves
}

func (p *Position) pawnMoveOrPromotions(from, to Square, captured PieceKind, promoRank int) []Move {
	if to.Rank() != promoRank {
		return []Move{{From: from, To: to, Mover: Pawn, Captured: captured, Promotion: NoPiece}}
	}
	moves := make([]Move, 0, 4)
	for _, promo := range promotionKinds {
		moves = append(moves, Move{From: from, To: to, Mover: Pawn, Captured: captured, Promotion: promo})
	}
	return moves
}

func behind2(from Square, us Color) Square {
	if us == White {
		return from + 8
	}
	return from - 8
}

func doublePushTarget(from Square, us Color) Square {
	if us == White {
		return from + 16
	}
	return from - 16
}

func (p *Position) castlingMoves(us Color) []Move {
	var moves []Move

	if p.IsInCheck(us == White) {
		return nil
	}

	if us == White {
		if p.castling.Has(WhiteKingSide) && p.emptyAndUnattacked(us, F1, G1) {
			moves = append(moves, Move{From: E1, To: G1, Mover: King, Captured: NoPiece, Promotion: NoPiece})
		}
		if p.castling.Has(WhiteQueenSide) && p.isOccEmpty(B1) && p.emptyAndUnattacked(us, D1, C1) {
			moves = append(moves, Move{From: E1, To: C1, Mover: King, Captured: NoPiece, Promotion: NoPiece})
		}
	} else {
		if p.castling.Has(BlackKingSide) && p.emptyAndUnattacked(us, F8, G8) {
			moves = append(moves, Move{From: E8, To: G8, Mover: King, Captured: NoPiece, Promotion: NoPiece})
		}
		if p.castling.Has(BlackQueenSide) && p.isOccEmpty(B8) && p.emptyAndUnattacked(us, D8, C8) {
			moves = append(moves, Move{From: E8, To: C8, Mover: King, Captured: NoPiece, Promotion: NoPiece})
		}
	}
	return moves
}

func (p *Position) isOccEmpty(sq Square) bool {
	return !p.isOccupied(sq)
}

// emptyAndUnattacked reports whether every given square is both empty and
// not attacked by the opponent of us -- the pass-through/landing squares a
// castling move requires.
func (p *Position) emptyAndUnattacked(us Color, squares ...Square) bool {
	for _, sq := range squares {
		if p.isOccupied(sq) {
			return false
		}
		if p.IsAttacked(sq, us.Opponent()) {
			return false
		}
	}
	return true
}

// LegalMoves returns the sorted, duplicate-free list of legal moves for the
// side to move: pseudo-legal moves filtered by making each move and
// rejecting it if the mover's king ends up attacked.
func (p *Position) LegalMoves() []Move {
	us := p.sideToMove
	pseudo := p.pseudoLegalMoves()

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		p.Make(m)
		ok := !p.IsInCheck(us == White)
		_ = p.Unmake(m)
		if ok {
			legal = append(legal, m)
		}
	}
	return legal
}

// Result is a terminal game-result code: 1 = white win, -1 = black win,
// 0 = draw, 2 = ongoing.
type Result int

const (
	BlackWins Result = -1
	Draw      Result = 0
	WhiteWins Result = 1
	Ongoing   Result = 2
)

// GameResult reports the result of the position given its legal moves. The
// half-move clock is tracked but never interpreted as a draw condition here
// (see Non-goals); callers wanting threefold-repetition or fifty-move draws
// must implement them against ZobristHash/HalfMoveClock themselves.
func (p *Position) GameResult() Result {
	if len(p.LegalMoves()) > 0 {
		return Ongoing
	}
	if p.IsInCheck(p.WhiteToMove()) {
		if p.WhiteToMove() {
			return BlackWins
		}
		return WhiteWins
	}
	return Draw
}

// RandomPlayout repeatedly makes a uniformly random legal move until the
// game ends, returning the terminal result. The position is left at the
// terminal state; callers that need the starting position back should clone
// beforehand.
func RandomPlayout(p *Position, rng *rand.Rand) Result {
	for {
		moves := p.LegalMoves()
		if len(moves) == 0 {
			if p.IsInCheck(p.WhiteToMove()) {
				if p.WhiteToMove() {
					return BlackWins
				}
				return WhiteWins
			}
			return Draw
		}
		p.Make(moves[rng.Intn(len(moves))])
	}
}

// Clone returns a deep copy of p, including its undo stack, suitable for
// exploratory search that must not mutate the original.
func (p *Position) Clone() *Position {
	c := *p
	c.undo = append([]undoEntry(nil), p.undo...)
	return &c
}
