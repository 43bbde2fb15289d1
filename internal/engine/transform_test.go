package engine

import (
	"testing"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	chesserrors "github.com/lgbarn/chessgeo-go/internal/errors"
	"github.com/lgbarn/chessgeo-go/internal/testutil"
)

func TestColumnToIndex(t *testing.T) {
	for i, c := range []chess.Column{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'} {
		testutil.AssertEqual(t, ColumnToIndex(c), i+1, "column %c", c)
	}
	testutil.AssertEqual(t, ColumnToIndex('i'), 0)
	testutil.AssertEqual(t, EnPassantColumnToIndex(chess.NoEnPassant), 0)
	testutil.AssertEqual(t, EnPassantColumnToIndex('d'), 4)
	testutil.AssertEqual(t, RowToIndex(5), 5)
}

func TestCoordinateToPosition(t *testing.T) {
	tests := []struct {
		x, y    int
		want    chess.Position
		wantErr bool
	}{
		{1, 1, chess.Pos('a', 1), false},
		{8, 8, chess.Pos('h', 8), false},
		{5, 4, chess.Pos('e', 4), false},
		{0, 4, chess.Position{}, true},
		{9, 4, chess.Position{}, true},
		{4, 0, chess.Position{}, true},
		{4, 9, chess.Position{}, true},
	}

	for _, tt := range tests {
		got, err := CoordinateToPosition(tt.x, tt.y)
		if tt.wantErr {
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidCoordinate, "(%d,%d)", tt.x, tt.y)
			continue
		}
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, tt.want)

		row, col := PositionToCoordinate(got)
		testutil.AssertEqual(t, [2]int{col, row}, [2]int{tt.x, tt.y}, "round trip")
	}
}

func TestLetterFigureCodec(t *testing.T) {
	letters := "PNBRQKpnbrqk"
	for i := 0; i < len(letters); i++ {
		letter := letters[i]
		t.Run(string(letter), func(t *testing.T) {
			p, err := LetterToFigure(letter)
			testutil.AssertNoError(t, err)
			wantColour := chess.White
			if letter >= 'a' {
				wantColour = chess.Black
			}
			testutil.AssertEqual(t, p.Colour, wantColour)

			back, err := FigureToLetter(p)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, back, letter)
		})
	}

	if _, err := LetterToFigure('x'); err == nil {
		t.Error("LetterToFigure('x') accepted an unknown letter")
	} else {
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFigureLetter)
	}

	_, err := FigureToLetter(chess.Empty)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidPiece, "empty piece")
	_, err = FigureToLetter(chess.Piece{Figure: chess.Queen, Colour: chess.NoColour})
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidPiece, "colourless queen")
}
