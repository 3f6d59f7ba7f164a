package game

import (
	"slices"

	"github.com/vovakirdan/vizard/internal/core"
)

// spawnPack spawns a full pack of random shards. Only live sessions spawn
// randomly; playback takes shard positions from the recording.
func (s *Session) spawnPack(now int64) {
	for range s.settings.Shards.PackSize {
		p, ok := s.rollShardPosition()
		if !ok {
			s.logger.Error("no position for a shard",
				"rolls", s.settings.Shards.MaxRolls,
				"player", s.player.Position,
			)
			return
		}
		s.recording.RecordShardSpawn(now, p)
		s.addShard(p, now)
	}
}

// rollShardPosition picks a random walkable tile far enough from the player
// on both axes and free of other shards.
func (s *Session) rollShardPosition() (core.Position, bool) {
	w, h := s.grid.Dimensions()
	minDist := s.settings.Shards.MinDistance

	for range s.settings.Shards.MaxRolls {
		p := core.Pos(s.rng.Intn(w), s.rng.Intn(h-1))

		dx := core.Abs(p.X - s.player.Position.X)
		dy := core.Abs(p.Y - s.player.Position.Y)
		if dx < minDist || dy < minDist {
			continue
		}
		if !s.grid.At(p).Walkable || s.hasShard(p) {
			continue
		}
		return p, true
	}
	return core.Position{}, false
}

// addShard places a shard and points at it when it is outside the view.
func (s *Session) addShard(p core.Position, now int64) {
	s.shards = append(s.shards, p)
	s.logger.Debug("shard spawned", "position", p)

	viewH := s.viewHeight()
	switch {
	case p.Y >= s.viewShift+viewH:
		pointer := core.Pos(p.X, s.viewShift+viewH-2)
		s.effects = append(s.effects, newEffect(EffectPointerSouth, pointer, now, s.settings.Effects.BlinkMs*3))
	case p.Y < s.viewShift:
		pointer := core.Pos(p.X, s.viewShift+1)
		s.effects = append(s.effects, newEffect(EffectPointerNorth, pointer, now, s.settings.Effects.BlinkMs*3))
	}
}

func (s *Session) hasShard(p core.Position) bool {
	return slices.Contains(s.shards, p)
}

// collect picks up the shard under the player. A live session spawns a new
// pack once the last shard is gone.
func (s *Session) collect(now int64) {
	idx := slices.Index(s.shards, s.player.Position)
	if idx < 0 {
		return
	}

	s.shards = slices.Delete(s.shards, idx, idx+1)
	s.score++
	s.effects = append(s.effects, newEffect(EffectCollect, s.player.Position, now, s.settings.Effects.CollectMs))
	s.logger.Debug("shard collected", "position", s.player.Position, "score", s.score)

	if len(s.shards) == 0 && s.playback == nil {
		s.spawnPack(now)
	}
}
