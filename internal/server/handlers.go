package server

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/output"
	"github.com/lgbarn/chessgeo-go/internal/processing"
)

func (s *Server) createGame(c *fiber.Ctx) error {
	var req CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	state, err := s.store.Create(req.FEN)
	if err != nil {
		return err
	}
	s.cfg.Logf(2, "game %s created from %s", state.ID, state.StartFEN)
	return c.Status(fiber.StatusCreated).JSON(state)
}

func (s *Server) getGame(c *fiber.Ctx) error {
	state, err := s.store.State(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.store.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) getMoves(c *fiber.Ctx) error {
	square := c.Params("square")
	moves, err := s.store.Moves(c.Params("id"), square)
	if err != nil {
		return err
	}
	return c.JSON(SquareMovesResponse{Square: square, Moves: output.MovesToJSON(moves)})
}

func (s *Server) postMove(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	state, err := s.store.Move(c.Params("id"), req)
	if err != nil {
		return err
	}
	s.cfg.Logf(2, "game %s: %s-%s", state.ID, req.From, req.To)
	return c.JSON(state)
}

func (s *Server) analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.Square != "" {
		square, err := chess.ParsePosition(req.Square)
		if err != nil {
			return err
		}
		moves, err := processing.SquareMoves(req.FEN, square)
		if err != nil {
			return err
		}
		return c.JSON(SquareMovesResponse{Square: req.Square, Moves: output.MovesToJSON(moves)})
	}

	analysis, err := processing.AnalyzePosition(req.FEN)
	if err != nil {
		return err
	}
	jp := output.AnalysisToJSON(analysis, true, true)
	jp.Duplicate = s.seen.CheckAndAdd(analysis.Board, analysis.Record)
	return c.JSON(jp)
}

// handleSocket streams game states to a watcher and applies the moves it sends.
func (s *Server) handleSocket(c *websocket.Conn) {
	id := c.Params("id")
	if err := s.store.Watch(id, c); err != nil {
		s.cfg.Logf(1, "websocket %s: %v", id, err)
		_ = s.store.SendError(id, c, err)
		c.Close()
		return
	}
	defer s.store.Unwatch(id, c)

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			s.cfg.Logf(2, "websocket %s closed: %v", id, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := s.handleMessage(id, data); err != nil {
			s.cfg.Logf(2, "websocket %s: %v", id, err)
			_ = s.store.SendError(id, c, err)
		}
	}
}

func (s *Server) handleMessage(id string, data []byte) error {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	switch msg.Type {
	case MessageTypeMove:
		var req MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		_, err := s.store.Move(id, req)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
