// Package fen validates and splits Forsyth-Edwards Notation strings.
//
// It checks the overall six-field shape (piece placement, active colour,
// castling availability, en passant target, halfmove clock, fullmove number),
// that no rank describes more than eight squares, and that each side has
// exactly one king. Decoding ranks into pieces is left to the engine.
package fen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/errors"
)

// InitialPosition is the FEN string for the standard starting position.
const InitialPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// shape matches the six space-separated FEN fields.
var shape = regexp.MustCompile(
	`^((?:[rnbqkpRNBQKP1-8]+/){7}[rnbqkpRNBQKP1-8]+) ([bw]) ([KQkq]{1,4}|-) (-|[a-h][1-8]) (\d+) (\d+)$`)

// Record holds the fields of a validated FEN string.
type Record struct {
	Ranks           []string // Piece placement, rank 8 first
	ActiveColour    chess.Colour
	Castling        chess.CastlingRights
	EnPassant       chess.EnPassantColumn
	EnPassantTarget string // "-" or a square such as "e3"
	Halfmove        int
	Fullmove        int
}

// Validate returns nil if text is a well-formed FEN string.
// Every failure wraps errors.ErrInvalidNotation.
func Validate(text string) error {
	_, err := Parse(text)
	return err
}

// IsValid reports whether text is a well-formed FEN string.
func IsValid(text string) bool {
	return Validate(text) == nil
}

// PiecePlacement returns the ranks of the placement field, rank 8 first.
func PiecePlacement(text string) ([]string, error) {
	rec, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return rec.Ranks, nil
}

// Parse validates text and returns its fields.
func Parse(text string) (Record, error) {
	normalized := strings.Join(strings.Fields(text), " ")
	m := shape.FindStringSubmatch(normalized)
	if m == nil {
		return Record{}, fmt.Errorf("malformed FEN %q: %w", text, errors.ErrInvalidNotation)
	}

	ranks := strings.Split(m[1], "/")
	if err := checkRankWidths(ranks); err != nil {
		return Record{}, err
	}
	if err := checkKings(m[1]); err != nil {
		return Record{}, err
	}

	rec := Record{
		Ranks:           ranks,
		ActiveColour:    chess.White,
		EnPassantTarget: m[4],
	}
	if m[2] == "b" {
		rec.ActiveColour = chess.Black
	}

	castling, err := chess.ParseCastlingRights(m[3])
	if err != nil {
		return Record{}, err
	}
	rec.Castling = castling

	ep, err := chess.ParseEnPassantColumn(m[4])
	if err != nil {
		return Record{}, fmt.Errorf("en passant target %q: %w", m[4], errors.ErrInvalidNotation)
	}
	rec.EnPassant = ep

	if rec.Halfmove, err = strconv.Atoi(m[5]); err != nil {
		return Record{}, fmt.Errorf("halfmove clock %q: %w", m[5], errors.ErrInvalidNotation)
	}
	if rec.Fullmove, err = strconv.Atoi(m[6]); err != nil {
		return Record{}, fmt.Errorf("fullmove number %q: %w", m[6], errors.ErrInvalidNotation)
	}

	return rec, nil
}

// checkRankWidths ensures no rank describes more than eight squares.
func checkRankWidths(ranks []string) error {
	for i, rank := range ranks {
		width := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				width += int(c - '0')
			} else {
				width++
			}
		}
		if width > chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-i, width, errors.ErrInvalidNotation)
		}
	}
	return nil
}

// checkKings ensures exactly one king per side.
func checkKings(placement string) error {
	white := strings.Count(placement, "K")
	black := strings.Count(placement, "k")
	if white != 1 || black != 1 {
		return fmt.Errorf("need one king per side, got %d white and %d black: %w", white, black, errors.ErrInvalidNotation)
	}
	return nil
}

// String re-emits the six FEN fields.
func (r Record) String() string {
	active := "w"
	if r.ActiveColour == chess.Black {
		active = "b"
	}
	target := r.EnPassantTarget
	if target == "" {
		target = "-"
	}
	return fmt.Sprintf("%s %s %s %s %d %d",
		strings.Join(r.Ranks, "/"), active, r.Castling, target, r.Halfmove, r.Fullmove)
}
