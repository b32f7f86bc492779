package board

import (
	"math/rand"
	"sync"
)

// zobristSeed is the fixed seed driving the process-wide key tables, so that
// hashes are reproducible across runs. See the Zobrist hashing scheme:
// https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
const zobristSeed = 0x5EED5EEDC0FFEE

var (
	pieceKeys    [NumColors][NumPieceKinds][NumSquares]uint64
	castlingKeys [4]uint64
	enPassantKeys [NumFiles]uint64
	sideKey      uint64

	initZobristOnce sync.Once
)

// InitZobrist populates the process-wide Zobrist key tables. It is
// idempotent: calling it more than once, from any number of goroutines, is
// safe and only the first call has any effect. Position callers need not
// invoke it explicitly; it runs lazily on first use.
func InitZobrist() {
	initZobristOnce.Do(func() {
		r := rand.New(rand.NewSource(zobristSeed))
		for c := ZeroColor; c < NumColors; c++ {
			for p := 0; p < NumPieceKinds; p++ {
				for sq := ZeroSquare; sq < NumSquares; sq++ {
					pieceKeys[c][p][sq] = r.Uint64()
				}
			}
		}
		for i := range castlingKeys {
			castlingKeys[i] = r.Uint64()
		}
		for f := 0; f < NumFiles; f++ {
			enPassantKeys[f] = r.Uint64()
		}
		sideKey = r.Uint64()
	})
}

// zobristCastlingEnPassant returns the XOR contribution of the given
// castling rights and en-passant target (NoSquare if none) to the hash.
func zobristCastlingEnPassant(rights Castling, ep Square) uint64 {
	InitZobrist()

	var h uint64
	for bit := 0; bit < 4; bit++ {
		if rights&(Castling(1)<<uint(bit)) != 0 {
			h ^= castlingKeys[bit]
		}
	}
	if ep != NoSquare {
		h ^= enPassantKeys[ep.File()]
	}
	return h
}

func zobristPiece(c Color, p PieceKind, sq Square) uint64 {
	InitZobrist()
	return pieceKeys[c][p][sq]
}

func zobristSide() uint64 {
	InitZobrist()
	return sideKey
}

// HashFromScratch recomputes the Zobrist hash of pos from its attributes,
// ignoring any incrementally maintained value. Used by tests to verify
// incremental-hash consistency and by FEN loading.
func HashFromScratch(pos *Position) uint64 {
	InitZobrist()

	var h uint64
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		c, p, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		h ^= zobristPiece(c, p, sq)
	}
	if pos.sideToMove == Black {
		h ^= sideKey
	}
	h ^= zobristCastlingEnPassant(pos.castling, pos.epTarget)
	return h
}
