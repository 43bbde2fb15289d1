package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	chesserrors "github.com/lgbarn/chessgeo-go/internal/errors"
	"github.com/lgbarn/chessgeo-go/internal/fen"
	"github.com/lgbarn/chessgeo-go/internal/testutil"
)

func TestIsKingChecked(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", fen.InitialPosition, chess.White, false},
		{"initial black", fen.InitialPosition, chess.Black, false},
		{"bishop diagonal", "7k/8/8/8/3B4/8/5K2/8 w - - 0 1", chess.Black, true},
		{"rook on rank", "8/8/8/3R3k/3K4/8/8/8 w - - 0 1", chess.Black, true},
		{"rook blocked", "8/8/8/3R1n1k/3K4/8/8/8 w - - 0 1", chess.Black, false},
		{"knight blocks rook", "8/8/8/3R1N1k/3K4/8/8/8 w - - 0 1", chess.Black, false},
		{"queen on file", "4k3/8/8/8/8/8/8/4QK2 b - - 0 1", chess.Black, true},
		{"knight", "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"white pawn checks black king", "7k/p5P1/8/8/8/8/8/K7 b - - 0 1", chess.Black, true},
		{"white pawn behind black king", "8/p5P1/5k2/8/8/8/8/K7 b - - 0 1", chess.Black, false},
		{"black pawn checks white king", "k7/8/8/8/8/3p4/4K3/8 w - - 0 1", chess.White, true},
		{"black pawn behind white king", "k7/8/8/8/8/8/4K3/3p4 w - - 0 1", chess.White, false},
		{"pawn straight ahead", "k7/8/8/8/8/4p3/4K3/8 w - - 0 1", chess.White, false},
		{"adjacent kings", "8/8/8/8/8/3k4/4K3/8 w - - 0 1", chess.White, true},
		{"king two squares away", "8/8/8/8/3k4/8/4K3/8 w - - 0 1", chess.White, false},
		{"bishop does not move straight", "4k3/8/8/8/8/8/8/4BK2 b - - 0 1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsKingChecked(mustBuild(t, tt.fen), tt.colour)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestIsKingCheckedNoKing(t *testing.T) {
	b := testutil.MustBoard(t, "Ke1")
	_, err := IsKingChecked(b, chess.Black)
	testutil.AssertErrorIs(t, err, chesserrors.ErrKingNotFound)
	_, err = WouldPositionBeChecked(b, chess.Pos('e', 4), chess.Black)
	testutil.AssertErrorIs(t, err, chesserrors.ErrKingNotFound)
	_, err = IsCheckMate(b, chess.Black)
	testutil.AssertErrorIs(t, err, chesserrors.ErrKingNotFound)
	_, err = IsStaleMate(b, chess.Black)
	testutil.AssertErrorIs(t, err, chesserrors.ErrKingNotFound)
}

func TestIsPositionAttackedEmptySquares(t *testing.T) {
	b := mustBuild(t, "rn1qk2r/pppppppp/6n1/8/8/N1Q5/PPbPPP2/R3KB1R w kq - 0 1")

	for _, sq := range []string{"d1", "b1"} {
		pos := testutil.MustPosition(t, sq)
		testutil.AssertTrue(t, IsPositionAttacked(b, pos, chess.White), "%s attacked", sq)
	}
	testutil.AssertFalse(t, IsPositionAttacked(b, testutil.MustPosition(t, "g1"), chess.White), "g1 not attacked")
}

func TestWouldPositionBeChecked(t *testing.T) {
	// The a1 rook sweeps the first rank up to the king on e1.
	b := mustBuild(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")

	f1 := testutil.MustPosition(t, "f1")
	testutil.AssertFalse(t, IsPositionAttacked(b, f1, chess.White), "king shields f1")

	got, err := WouldPositionBeChecked(b, f1, chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, got, "f1 attacked once the king steps off e1")
}

func TestMateAndStalemate(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		colour    chess.Colour
		checkmate bool
		stalemate bool
	}{
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1", chess.Black, false, false},
		{"rook mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", chess.Black, true, false},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Black, false, true},
		{"rook and king mate", "R6k/8/7K/8/8/8/8/8 b - - 0 1", chess.Black, true, false},
		{"king can capture", "6Rk/8/8/8/8/8/8/K7 b - - 0 1", chess.Black, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBuild(t, tt.fen)
			mate, err := IsCheckMate(b, tt.colour)
			testutil.AssertNoError(t, err)
			stale, err := IsStaleMate(b, tt.colour)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, mate, tt.checkmate, "checkmate")
			testutil.AssertEqual(t, stale, tt.stalemate, "stalemate")
		})
	}
}

// oracleFENs are cross-checked against dragontoothmg.
var oracleFENs = []string{
	fen.InitialPosition,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"7k/8/8/8/3B4/8/5K2/8 b - - 0 1",
	"8/8/8/3R3k/3K4/8/8/8 b - - 0 1",
	"4k3/8/3N4/8/8/8/8/4K3 b - - 0 1",
	"k7/8/8/8/8/3p4/4K3/8 w - - 0 1",
}

func oracleIndex(pos chess.Position) uint8 {
	row, col := PositionToCoordinate(pos)
	return uint8((row-1)*8 + (col - 1))
}

func TestIsKingCheckedAgainstOracle(t *testing.T) {
	for _, f := range oracleFENs {
		t.Run(f, func(t *testing.T) {
			rec, err := fen.Parse(f)
			testutil.AssertNoError(t, err)

			got, err := IsKingChecked(mustBuild(t, f), rec.ActiveColour)
			testutil.AssertNoError(t, err)

			oracle := dragontoothmg.ParseFen(f)
			testutil.AssertEqual(t, got, oracle.OurKingInCheck())
		})
	}
}

func TestKingMovesAgainstOracle(t *testing.T) {
	for _, f := range oracleFENs {
		t.Run(f, func(t *testing.T) {
			rec, err := fen.Parse(f)
			testutil.AssertNoError(t, err)
			b := mustBuild(t, f)
			king, ok := b.FindKing(rec.ActiveColour)
			testutil.AssertTrue(t, ok, "king present")

			moves, err := KingMoves(b, king, 0)
			testutil.AssertNoError(t, err)
			got := map[uint8]bool{}
			for _, m := range moves {
				got[oracleIndex(m.Position)] = true
			}

			oracle := dragontoothmg.ParseFen(f)
			from := oracleIndex(king)
			want := map[uint8]bool{}
			for _, m := range oracle.GenerateLegalMoves() {
				if m.From() != from {
					continue
				}
				// Castling moves the king two files.
				if d := int(m.To()%8) - int(from%8); d == 2 || d == -2 {
					continue
				}
				want[m.To()] = true
			}

			testutil.AssertEqual(t, got, want)
		})
	}
}
