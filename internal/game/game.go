// Package game drives the engine through a sequence of half-moves.
//
// A Game owns the state the engine only consumes: whose turn it is, the
// running castling rights, the en passant column, the move clocks and the
// position history. A Game is not safe for concurrent use.
package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/engine"
	"github.com/lgbarn/chessgeo-go/internal/errors"
	"github.com/lgbarn/chessgeo-go/internal/fen"
)

// Status describes the position from the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	for _, st := range []Status{Ongoing, Check, Checkmate, Stalemate} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

// Played records one half-move.
type Played struct {
	From  chess.Position
	Move  chess.Move
	Piece chess.Piece
	FEN   string // position after the move
}

// Game is a position plus the bookkeeping needed to play on from it.
type Game struct {
	board     chess.Board
	turn      chess.Colour
	castling  chess.CastlingRights
	enPassant chess.EnPassantColumn
	halfmove  int
	fullmove  int
	start     string
	history   []Played
}

// New returns a game at the standard starting position.
func New() *Game {
	g, err := FromFEN(fen.InitialPosition)
	if err != nil {
		panic(fmt.Sprintf("initial position: %v", err))
	}
	return g
}

// FromFEN returns a game starting at the given position.
func FromFEN(text string) (*Game, error) {
	rec, err := fen.Parse(text)
	if err != nil {
		return nil, err
	}
	board, err := engine.BuildBoard(text)
	if err != nil {
		return nil, err
	}
	g := &Game{
		board:     board,
		turn:      rec.ActiveColour,
		castling:  rec.Castling,
		enPassant: rec.EnPassant,
		halfmove:  rec.Halfmove,
		fullmove:  rec.Fullmove,
	}
	g.start = g.FEN()
	return g, nil
}

// Board returns the current board.
func (g *Game) Board() chess.Board { return g.board }

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour { return g.turn }

// Castling returns the remaining castling rights.
func (g *Game) Castling() chess.CastlingRights { return g.castling }

// EnPassant returns the en passant column, or chess.NoEnPassant.
func (g *Game) EnPassant() chess.EnPassantColumn { return g.enPassant }

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string { return g.start }

// History returns a copy of the half-moves played so far.
func (g *Game) History() []Played {
	return slices.Clone(g.history)
}

// FEN returns the current position.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board, g.record())
}

func (g *Game) record() fen.Record {
	target := "-"
	if g.enPassant.Available() {
		// The pawn that just double-pushed belongs to the side not to move.
		row := 3
		if g.turn == chess.White {
			row = 6
		}
		target = fmt.Sprintf("%c%d", g.enPassant, row)
	}
	return fen.Record{
		ActiveColour:    g.turn,
		Castling:        g.castling,
		EnPassant:       g.enPassant,
		EnPassantTarget: target,
		Halfmove:        g.halfmove,
		Fullmove:        g.fullmove,
	}
}

// LegalMoves returns the moves of the piece on from, dropping any move that
// would leave its own king attacked.
func (g *Game) LegalMoves(from chess.Position) ([]chess.Move, error) {
	p, ok := g.board.At(from)
	if !ok {
		return nil, fmt.Errorf("%s: %w", from, errors.ErrNoPieceAtPosition)
	}
	moves, err := engine.LegalMovesForPiece(g.board, from, g.enPassant, g.castling)
	if err != nil {
		return nil, err
	}

	safe := moves[:0:0]
	for _, m := range moves {
		ok, err := g.keepsKingSafe(from, m, p.Colour)
		if err != nil {
			return nil, err
		}
		if ok {
			safe = append(safe, m)
		}
	}
	return safe, nil
}

func (g *Game) keepsKingSafe(from chess.Position, m chess.Move, colour chess.Colour) (bool, error) {
	if m.IsCastle() {
		return true, nil
	}
	next, err := engine.ApplyMove(g.board, from, m)
	if err != nil {
		return false, err
	}
	checked, err := engine.IsKingChecked(next, colour)
	return !checked, err
}

// AllLegalMoves returns the moves of every piece of the side to move.
func (g *Game) AllLegalMoves() (map[chess.Position][]chess.Move, error) {
	out := make(map[chess.Position][]chess.Move)
	for _, sq := range g.board.Squares() {
		if sq.Colour != g.turn {
			continue
		}
		moves, err := g.LegalMoves(sq.Position)
		if err != nil {
			return nil, err
		}
		if len(moves) > 0 {
			out[sq.Position] = moves
		}
	}
	return out, nil
}

// Move plays the piece on from to the square to.
func (g *Game) Move(from, to chess.Position) (chess.Move, error) {
	p, ok := g.board.At(from)
	if !ok {
		return chess.Move{}, fmt.Errorf("%s: %w", from, errors.ErrNoPieceAtPosition)
	}
	if p.Colour != g.turn {
		return chess.Move{}, fmt.Errorf("%s is %s, %s to move: %w", from, p.Colour, g.turn, errors.ErrNotYourTurn)
	}

	moves, err := g.LegalMoves(from)
	if err != nil {
		return chess.Move{}, err
	}
	i := slices.IndexFunc(moves, func(m chess.Move) bool { return m.Position == to })
	if i < 0 {
		return chess.Move{}, fmt.Errorf("%s-%s: %w", from, to, errors.ErrIllegalMove)
	}
	move := moves[i]

	next, err := engine.ApplyMove(g.board, from, move)
	if err != nil {
		return chess.Move{}, err
	}

	g.castling = updateCastling(g.castling, p, from, to)
	g.enPassant = chess.NoEnPassant
	if p.Figure == chess.Pawn && (to.Row-from.Row == 2 || from.Row-to.Row == 2) {
		g.enPassant = chess.EnPassantColumn(from.Column)
	}
	if p.Figure == chess.Pawn || move.IsTaken {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	if g.turn == chess.Black {
		g.fullmove++
	}
	g.board = next
	g.turn = g.turn.Opposite()
	g.history = append(g.history, Played{From: from, Move: move, Piece: p, FEN: g.FEN()})

	return move, nil
}

// rookCorners maps each rook home square to the right it carries.
var rookCorners = map[chess.Position]chess.CastlingLetter{
	chess.Pos('a', 1): chess.WhiteQueenside,
	chess.Pos('h', 1): chess.WhiteKingside,
	chess.Pos('a', 8): chess.BlackQueenside,
	chess.Pos('h', 8): chess.BlackKingside,
}

// updateCastling drops rights lost by a king move, a rook leaving its
// corner, or a rook being captured on its corner.
func updateCastling(rights chess.CastlingRights, p chess.Piece, from, to chess.Position) chess.CastlingRights {
	if p.Figure == chess.King {
		rights = rights.Without(chess.KingsideLetter(p.Colour)).Without(chess.QueensideLetter(p.Colour))
	}
	if l, ok := rookCorners[from]; ok {
		rights = rights.Without(l)
	}
	if l, ok := rookCorners[to]; ok {
		rights = rights.Without(l)
	}
	return rights
}

// Status reports check, checkmate or stalemate for the side to move.
func (g *Game) Status() (Status, error) {
	checked, err := engine.IsKingChecked(g.board, g.turn)
	if err != nil {
		return Ongoing, err
	}
	all, err := g.AllLegalMoves()
	if err != nil {
		return Ongoing, err
	}
	switch {
	case len(all) == 0 && checked:
		return Checkmate, nil
	case len(all) == 0:
		return Stalemate, nil
	case checked:
		return Check, nil
	default:
		return Ongoing, nil
	}
}
