package core

import (
	"log"

	"github.com/automoto/tilepatrol/components"
	"github.com/automoto/tilepatrol/systems"
	"github.com/automoto/tilepatrol/systems/factory"
	"github.com/automoto/tilepatrol/tags"
	"github.com/yohamta/donburi"
)

// Tick applies queued input and advances the world by dt seconds. It must
// only be called from the game loop goroutine.
func (s *Server) Tick(dt float64) {
	actions, seq := s.drainInput()
	systems.SetInput(s.world, actions)
	systems.Step(s.world, dt)

	if systems.LevelFinished(s.world) {
		s.loadLevel(s.level + 1)
	}

	s.mirrors.copy(s.world, s.LevelName(), seq)
}

// loadLevel replaces the world's contents with the i-th level. Indices wrap,
// so finishing the last level starts the run over.
func (s *Server) loadLevel(i int) {
	s.clearLevel()

	n := s.levels.Len()
	s.level = ((i % n) + n) % n
	lvl := s.levels.At(s.level)
	factory.Populate(s.world, lvl)
	s.mirrors = newMirrorSet(s.world)

	log.Printf("[server] playing %s (%d enemies)", lvl.Name, len(lvl.EnemySpawns))
}

func (s *Server) clearLevel() {
	var doomed []donburi.Entity
	collect := func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	}

	tags.Enemy.Each(s.world, collect)
	tags.Player.Each(s.world, collect)
	tags.Wall.Each(s.world, collect)
	tags.Platform.Each(s.world, collect)
	components.Level.Each(s.world, collect)
	components.Input.Each(s.world, collect)
	components.Space.Each(s.world, collect)
	if s.mirrors != nil {
		doomed = append(doomed, s.mirrors.entities()...)
	}

	for _, e := range doomed {
		if s.world.Valid(e) {
			s.world.Remove(e)
		}
	}
}
