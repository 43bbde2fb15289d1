package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/fen"
)

const figureCount = int(chess.Queen) + 1

// Fixed seeds keep keys stable across runs so they can be logged and compared.
var (
	pieceKeys    [2][figureCount][chess.BoardSize * chess.BoardSize]uint64
	blackToMove  uint64
	castlingKeys [chess.AllCastlingRights + 1]uint64
	enPassantKey [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewPCG(0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9))
	for c := range pieceKeys {
		for f := range pieceKeys[c] {
			for sq := range pieceKeys[c][f] {
				pieceKeys[c][f][sq] = r.Uint64()
			}
		}
	}
	blackToMove = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range enPassantKey {
		enPassantKey[i] = r.Uint64()
	}
}

func squareIndex(pos chess.Position) int {
	return int(pos.Row-chess.FirstRow)*chess.BoardSize + int(pos.Column-chess.FirstColumn)
}

// GenerateZobristHash returns the Zobrist key of the board together with the
// side to move, castling rights and en passant column from rec.
// Move clocks do not contribute.
func GenerateZobristHash(board chess.Board, rec fen.Record) uint64 {
	var h uint64
	for _, sq := range board.Squares() {
		if sq.Colour != chess.White && sq.Colour != chess.Black {
			continue
		}
		h ^= pieceKeys[sq.Colour][sq.Figure][squareIndex(sq.Position)]
	}
	if rec.ActiveColour == chess.Black {
		h ^= blackToMove
	}
	h ^= castlingKeys[rec.Castling&chess.AllCastlingRights]
	if rec.EnPassant.Available() {
		h ^= enPassantKey[rec.EnPassant-chess.EnPassantColumn(chess.FirstColumn)]
	}
	return h
}

// WeakHash is a cheap order-independent checksum of the piece placement.
func WeakHash(board chess.Board) uint32 {
	var h uint32
	for _, sq := range board.Squares() {
		v := uint32(sq.Figure)<<8 | uint32(sq.Colour)<<6 | uint32(squareIndex(sq.Position))
		h += v * 2654435761
	}
	return h
}
