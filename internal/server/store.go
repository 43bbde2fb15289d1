package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/errors"
	"github.com/lgbarn/chessgeo-go/internal/fen"
	"github.com/lgbarn/chessgeo-go/internal/game"
)

// Watcher receives game updates. *websocket.Conn satisfies it.
type Watcher interface {
	WriteJSON(v interface{}) error
}

// session is one game plus the connections watching it.
type session struct {
	id       string
	mu       sync.Mutex
	game     *game.Game
	watchers map[Watcher]struct{}
}

// Store holds the live games by id.
type Store struct {
	games map[string]*session
	mu    sync.RWMutex
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{games: make(map[string]*session)}
}

// Create starts a game from text, or from the initial position when text
// is empty.
func (s *Store) Create(text string) (GameState, error) {
	if text == "" {
		text = fen.InitialPosition
	}
	g, err := game.FromFEN(text)
	if err != nil {
		return GameState{}, err
	}

	sess := &session{
		id:       uuid.New().String(),
		game:     g,
		watchers: make(map[Watcher]struct{}),
	}
	state, err := newGameState(sess.id, g)
	if err != nil {
		return GameState{}, err
	}

	s.mu.Lock()
	s.games[sess.id] = sess
	s.mu.Unlock()
	return state, nil
}

func (s *Store) get(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
	}
	return sess, nil
}

// Len returns the number of live games.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// Delete drops a game. Watchers are not notified.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
	}
	delete(s.games, id)
	return nil
}

// State returns the current view of a game.
func (s *Store) State(id string) (GameState, error) {
	sess, err := s.get(id)
	if err != nil {
		return GameState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return newGameState(sess.id, sess.game)
}

// Moves returns the legal moves of the piece on square.
func (s *Store) Moves(id, square string) ([]chess.Move, error) {
	from, err := chess.ParsePosition(square)
	if err != nil {
		return nil, err
	}
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.game.LegalMoves(from)
}

// Move plays req and broadcasts the new state to every watcher.
func (s *Store) Move(id string, req MoveRequest) (GameState, error) {
	from, err := chess.ParsePosition(req.From)
	if err != nil {
		return GameState{}, err
	}
	to, err := chess.ParsePosition(req.To)
	if err != nil {
		return GameState{}, err
	}
	sess, err := s.get(id)
	if err != nil {
		return GameState{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if _, err := sess.game.Move(from, to); err != nil {
		return GameState{}, err
	}
	state, err := newGameState(sess.id, sess.game)
	if err != nil {
		return GameState{}, err
	}
	sess.broadcast(MessageTypeGameState, state)
	return state, nil
}

// Watch registers w for updates and sends it the current state.
func (s *Store) Watch(id string, w Watcher) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	state, err := newGameState(sess.id, sess.game)
	if err != nil {
		return err
	}
	sess.watchers[w] = struct{}{}
	return sess.send(w, MessageTypeGameState, state)
}

// Unwatch removes w. Unknown games and watchers are ignored.
func (s *Store) Unwatch(id string, w Watcher) {
	sess, err := s.get(id)
	if err != nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	delete(sess.watchers, w)
}

// SendError writes an error message to one watcher of a game.
func (s *Store) SendError(id string, w Watcher, cause error) error {
	payload := map[string]string{"error": cause.Error()}
	sess, err := s.get(id)
	if err != nil {
		msg, merr := newMessage(MessageTypeError, payload)
		if merr != nil {
			return merr
		}
		return w.WriteJSON(msg)
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.send(w, MessageTypeError, payload)
}

// send writes one message. The caller must hold sess.mu.
func (sess *session) send(w Watcher, t MessageType, payload interface{}) error {
	msg, err := newMessage(t, payload)
	if err != nil {
		return err
	}
	return w.WriteJSON(msg)
}

// broadcast writes to every watcher, dropping those whose write fails.
// The caller must hold sess.mu.
func (sess *session) broadcast(t MessageType, payload interface{}) {
	for w := range sess.watchers {
		if err := sess.send(w, t, payload); err != nil {
			delete(sess.watchers, w)
		}
	}
}

// watcherCount is used by tests.
func (sess *session) watcherCount() int {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return len(sess.watchers)
}
