package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessgeo-go/internal/config"
	"github.com/lgbarn/chessgeo-go/internal/fen"
	"github.com/lgbarn/chessgeo-go/internal/processing"
	"github.com/lgbarn/chessgeo-go/internal/testutil"
	"github.com/lgbarn/chessgeo-go/internal/worker"
)

func analysedResult(t *testing.T, index int, text string) worker.ProcessResult {
	t.Helper()
	analysis, err := processing.AnalyzePosition(text)
	testutil.AssertNoError(t, err)
	return worker.ProcessResult{Index: index, FEN: text, Analysis: analysis}
}

// TestTextWriter_WritePosition verifies the text report layout
func TestTextWriter_WritePosition(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.Output.ShowBoard = true

	writer := NewTextWriter(&buf, cfg)
	r := analysedResult(t, 0, fen.InitialPosition)
	r.Line = 3
	testutil.AssertNoError(t, writer.WritePosition(r))

	out := buf.String()
	testutil.AssertContains(t, out, "line 3: "+fen.InitialPosition)
	testutil.AssertContains(t, out, "white to move, ongoing")
	testutil.AssertContains(t, out, "legal moves (20):")
	testutil.AssertContains(t, out, "Nb1 a3 c3")
	testutil.AssertContains(t, out, "8| r n b q k b n r |")
	testutil.AssertContains(t, out, "4| . . . . . . . . |")
}

// TestTextWriter_ErrorAndDuplicate verifies short reports for failed or repeated positions
func TestTextWriter_ErrorAndDuplicate(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, config.NewConfig())

	testutil.AssertNoError(t, writer.WritePosition(worker.ProcessResult{FEN: "bad", Error: fmt.Errorf("boom")}))
	testutil.AssertNoError(t, writer.WritePosition(worker.ProcessResult{FEN: fen.InitialPosition, Duplicate: true}))

	out := buf.String()
	testutil.AssertContains(t, out, "error: boom")
	testutil.AssertContains(t, out, "duplicate position")
	testutil.AssertNotContains(t, out, "legal moves")
}

// TestTextWriter_HidesMoves verifies ShowMoves=false omits the move list
func TestTextWriter_HidesMoves(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.Output.ShowMoves = false

	testutil.AssertNoError(t, NewTextWriter(&buf, cfg).WritePosition(analysedResult(t, 0, fen.InitialPosition)))
	testutil.AssertNotContains(t, buf.String(), "legal moves")
}

// TestJSONWriter_WritePosition verifies batched JSON output
func TestJSONWriter_WritePosition(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.Output.ShowBoard = true

	writer := NewJSONWriter(&buf, cfg)
	testutil.AssertNoError(t, writer.WritePosition(analysedResult(t, 0, fen.InitialPosition)))
	testutil.AssertNoError(t, writer.WritePosition(analysedResult(t, 1, "4k3/8/8/8/8/8/8/4RK2 b - - 0 1")))
	testutil.AssertEqual(t, buf.Len(), 0, "nothing written before Flush")

	testutil.AssertNoError(t, writer.Close())

	var decoded JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, len(decoded.Positions), 2)

	first := decoded.Positions[0]
	testutil.AssertEqual(t, first.Turn, "white")
	testutil.AssertEqual(t, first.Castling, "KQkq")
	testutil.AssertEqual(t, first.MoveCount, 20)
	testutil.AssertEqual(t, first.Board[0], "rnbqkbnr")
	testutil.AssertEqual(t, len(first.Pieces), 10)
	testutil.AssertEqual(t, first.Pieces[0].Square, "b1")
	testutil.AssertEqual(t, first.Pieces[0].Piece, "knight")

	second := decoded.Positions[1]
	testutil.AssertEqual(t, second.Index, 1)
	testutil.AssertTrue(t, second.Check, "black is checked")
	testutil.AssertContains(t, buf.String(), `"status": "check"`)
}

// TestJSONWriterSingle verifies immediate JSON output
func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf, config.NewConfig())

	testutil.AssertNoError(t, writer.WritePosition(worker.ProcessResult{Index: 4, FEN: "bad", Error: fmt.Errorf("boom")}))
	testutil.AssertTrue(t, buf.Len() > 0, "written immediately")

	var decoded JSONPosition
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, decoded.Index, 4)
	testutil.AssertEqual(t, decoded.Error, "boom")
	testutil.AssertNil(t, decoded.Status)
}

// TestPositionWriter_Interface verifies that writers implement the interface
func TestPositionWriter_Interface(t *testing.T) {
	cfg := config.NewConfig()
	var buf bytes.Buffer

	writers := map[string]PositionWriter{
		"text": NewTextWriter(&buf, cfg),
		"json": NewJSONWriter(&buf, cfg),
	}
	for name, w := range writers {
		t.Run(name, func(t *testing.T) {
			testutil.AssertNoError(t, w.Flush())
			testutil.AssertNoError(t, w.Close())
		})
	}

	cfg.Output.JSON = true
	_, ok := NewWriter(&buf, cfg).(*JSONWriter)
	testutil.AssertTrue(t, ok, "JSON config selects the JSON writer")
}

func TestBoardString(t *testing.T) {
	analysis, err := processing.AnalyzePosition("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	testutil.AssertNoError(t, err)

	want := strings.Join([]string{
		"  a b c d e f g h",
		" +-----------------+",
		"8| . . . . k . . . |",
		"7| . . . . . . . . |",
		"6| . . . . . . . . |",
		"5| . . . . . . . . |",
		"4| . . . . . . . . |",
		"3| . . . . . . . . |",
		"2| . . . . . . . . |",
		"1| . . . . K . . R |",
		" +-----------------+",
		"",
	}, "\n")
	testutil.AssertEqual(t, BoardString(analysis.Board), want)

	var buf bytes.Buffer
	testutil.AssertNoError(t, RenderBoard(&buf, analysis.Board))
	testutil.AssertEqual(t, buf.String(), want)
}

func TestSortedSquares(t *testing.T) {
	analysis, err := processing.AnalyzePosition(fen.InitialPosition)
	testutil.AssertNoError(t, err)

	var names []string
	for _, pos := range SortedSquares(analysis.Moves) {
		names = append(names, pos.String())
	}
	testutil.AssertEqual(t, names, []string{"b1", "g1", "a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2"})
}

func TestMoveText(t *testing.T) {
	moves, err := processing.SquareMoves("rnbqkbnr/p1p1pppp/8/1p1pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", testutil.MustPosition(t, "e5"))
	testutil.AssertNoError(t, err)

	var texts []string
	for _, m := range moves {
		texts = append(texts, MoveText(testutil.MustPosition(t, "e5"), m))
	}
	testutil.AssertEqual(t, texts, []string{"e5-e6", "e5xd6"})
	testutil.AssertEqual(t, FormatMoves(moves), "e6 xd6 e.p.")
}

func TestOutputWriterWraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10, "  ")
	for _, s := range []string{"aaaa", "bbbb", "cccc"} {
		ow.Write(s)
	}
	ow.NewLine()
	testutil.AssertEqual(t, buf.String(), "aaaa bbbb\n  cccc\n")
}
