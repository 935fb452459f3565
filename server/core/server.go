package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/tilepatrol/assets"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/shared/messages"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server runs the authoritative simulation. The first client to connect
// drives the player, everyone else spectates.
type Server struct {
	world     donburi.World
	levels    *assets.LevelSet
	level     int
	loop      *GameLoop
	transport *transports.WsServerTransport

	mirrors *mirrorSet

	mu         sync.Mutex
	clients    map[*router.NetworkClient]struct{}
	controller *router.NetworkClient
	pending    []messages.PlayerInput
	held       [cfg.ActionCount]bool
	lastSeq    uint32
}

// NewServer creates a server playing levels from the named level onward.
// An empty name starts at the first level.
func NewServer(levels *assets.LevelSet, startLevel string, tickRate int) (*Server, error) {
	if levels == nil || levels.Len() == 0 {
		return nil, fmt.Errorf("no levels to serve")
	}
	start := 0
	if startLevel != "" {
		if start = levels.Index(startLevel); start < 0 {
			return nil, fmt.Errorf("unknown level %q", startLevel)
		}
	}

	world := donburi.NewWorld()
	s := &Server{
		world:   world,
		levels:  levels,
		level:   start,
		clients: make(map[*router.NetworkClient]struct{}),
	}
	s.loop = NewGameLoop(s, tickRate)

	srvsync.UseEsync(world)
	s.loadLevel(start)

	s.setupRouterCallbacks()

	return s, nil
}

// Start runs the game loop and serves WebSocket clients on port. It blocks
// until the transport stops.
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.onPlayerInput(client, input)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients[client] = struct{}{}
	if s.controller == nil {
		s.controller = client
		log.Printf("[server] client %s connected, controlling the player", client.Id())
		return
	}
	log.Printf("[server] client %s connected as spectator", client.Id())
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.clients, client)
	if s.controller != client {
		return
	}

	// Hand control to any remaining spectator and drop the old held keys.
	s.controller = nil
	s.pending = nil
	s.held = [cfg.ActionCount]bool{}
	for c := range s.clients {
		s.controller = c
		log.Printf("[server] client %s now controls the player", c.Id())
		break
	}
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client != s.controller {
		return
	}
	s.pending = append(s.pending, input)
}

// QueueInput queues input as if it came from the controlling client.
func (s *Server) QueueInput(input messages.PlayerInput) {
	s.mu.Lock()
	s.pending = append(s.pending, input)
	s.mu.Unlock()
}

// drainInput folds the queued messages into this tick's held state. A jump
// pressed and released between two ticks still counts as pressed.
func (s *Server) drainInput() ([cfg.ActionCount]bool, uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jumped := false
	for _, in := range s.pending {
		s.held = in.Actions()
		s.lastSeq = in.Sequence
		jumped = jumped || in.Jump
	}
	s.pending = s.pending[:0]

	actions := s.held
	actions[cfg.ActionJump] = actions[cfg.ActionJump] || jumped
	return actions, s.lastSeq
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// LevelName returns the level being played.
func (s *Server) LevelName() string {
	return s.levels.Names[s.level]
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
