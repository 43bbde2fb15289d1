// Package server exposes game sessions and position analysis over HTTP and
// websockets.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessgeo-go/internal/config"
	chesserrors "github.com/lgbarn/chessgeo-go/internal/errors"
	"github.com/lgbarn/chessgeo-go/internal/hashing"
)

// seenCapacity bounds the positions remembered by /api/analyze.
const seenCapacity = 100000

// Server wires the store to a fiber application.
type Server struct {
	app   *fiber.App
	store *Store
	cfg   *config.Config
	seen  *hashing.ThreadSafeDuplicateDetector
}

// New builds the application and registers every route.
func New(cfg *config.Config, store *Store) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "chessgeo",
			DisableStartupMessage: true,
			ErrorHandler:          errorHandler,
		}),
		store: store,
		cfg:   cfg,
		seen:  hashing.NewThreadSafeDuplicateDetector(false, seenCapacity),
	}

	s.app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	api := s.app.Group("/api")
	api.Post("/analyze", s.analyze)

	games := api.Group("/games")
	games.Post("/", s.createGame)
	games.Get("/:id", s.getGame)
	games.Delete("/:id", s.deleteGame)
	games.Get("/:id/moves/:square", s.getMoves)
	games.Post("/:id/moves", s.postMove)

	s.app.Use("/ws", upgradeOnly)
	s.app.Get("/ws/games/:id", websocket.New(s.handleSocket, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App { return s.app }

// Store returns the session store.
func (s *Server) Store() *Store { return s.store }

// Listen serves on cfg.Server.Addr until Shutdown.
func (s *Server) Listen() error {
	s.cfg.Logf(1, "listening on %s", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the listener and closes open connections.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// upgradeOnly rejects plain HTTP requests on websocket routes.
func upgradeOnly(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// StatusFor maps an error to the HTTP status reported for it.
func StatusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, chesserrors.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, chesserrors.ErrInvalidNotation),
		errors.Is(err, chesserrors.ErrInvalidCoordinate),
		errors.Is(err, chesserrors.ErrWrongRankCount),
		errors.Is(err, chesserrors.ErrInvalidEmptyRunLength),
		errors.Is(err, chesserrors.ErrInvalidFigureLetter):
		return fiber.StatusBadRequest
	case errors.Is(err, chesserrors.ErrIllegalMove),
		errors.Is(err, chesserrors.ErrNotYourTurn),
		errors.Is(err, chesserrors.ErrNoPieceAtPosition):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
