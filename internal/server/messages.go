package server

import (
	"encoding/json"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/engine"
	"github.com/lgbarn/chessgeo-go/internal/game"
	"github.com/lgbarn/chessgeo-go/internal/output"
)

// MessageType names the kinds of websocket messages.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the websocket envelope.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// CreateRequest is the body of POST /api/games. An empty FEN starts from
// the initial position.
type CreateRequest struct {
	FEN string `json:"fen"`
}

// MoveRequest names a move by its source and destination squares.
type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// AnalyzeRequest is the body of POST /api/analyze. When Square is set only
// that piece's moves are returned.
type AnalyzeRequest struct {
	FEN    string `json:"fen"`
	Square string `json:"square,omitempty"`
}

// SquareMovesResponse lists the moves of one piece.
type SquareMovesResponse struct {
	Square string            `json:"square"`
	Moves  []output.JSONMove `json:"moves"`
}

// PlayedMove is one entry of a game's history.
type PlayedMove struct {
	From  string          `json:"from"`
	Move  output.JSONMove `json:"move"`
	Piece string          `json:"piece"`
	FEN   string          `json:"fen"`
}

// GameState is the client view of a session.
type GameState struct {
	ID        string                  `json:"id"`
	FEN       string                  `json:"fen"`
	StartFEN  string                  `json:"startFen"`
	Turn      string                  `json:"turn"`
	Castling  string                  `json:"castling"`
	EnPassant string                  `json:"enPassant"`
	Status    game.Status             `json:"status"`
	Pieces    []output.JSONPieceMoves `json:"pieces"`
	History   []PlayedMove            `json:"history"`
}

// newGameState snapshots g. The caller must hold the session lock.
func newGameState(id string, g *game.Game) (GameState, error) {
	status, err := g.Status()
	if err != nil {
		return GameState{}, err
	}
	moves, err := g.AllLegalMoves()
	if err != nil {
		return GameState{}, err
	}

	history := make([]PlayedMove, 0, len(g.History()))
	for _, p := range g.History() {
		history = append(history, PlayedMove{
			From:  p.From.String(),
			Move:  output.MoveToJSON(p.Move),
			Piece: pieceLetter(p.Piece),
			FEN:   p.FEN,
		})
	}

	return GameState{
		ID:        id,
		FEN:       g.FEN(),
		StartFEN:  g.StartFEN(),
		Turn:      g.Turn().String(),
		Castling:  g.Castling().String(),
		EnPassant: g.EnPassant().String(),
		Status:    status,
		Pieces:    output.PieceMovesToJSON(g.Board(), moves),
		History:   history,
	}, nil
}

func pieceLetter(p chess.Piece) string {
	letter, err := engine.FigureToLetter(p)
	if err != nil {
		return ""
	}
	return string(letter)
}

func newMessage(t MessageType, payload interface{}) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: data}, nil
}
