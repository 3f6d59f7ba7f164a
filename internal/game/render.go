package game

import (
	"fmt"

	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/world"
)

// Render draws the session to the screen.
func (s *Session) Render(screen *core.Screen) {
	screen.Clear()
	w, h := screen.Width(), screen.Height()

	if s.tooSmall {
		width, _ := s.grid.Dimensions()
		screen.DrawTextCentered(h/2-1, "Terminal too small", core.ColorAlert)
		screen.DrawTextCentered(h/2, fmt.Sprintf("Need %dx%d", width*tileWidth, minViewRows+hudHeight+footerHeight), core.ColorDim)
		screen.DrawTextCentered(h/2+1, fmt.Sprintf("Have %dx%d", w, h), core.ColorDim)
		return
	}

	now := s.Now()
	width, _ := s.grid.Dimensions()
	offsetX := max(0, (w-width*tileWidth)/2)
	viewH := s.viewHeight()

	for row := range viewH {
		for x, t := range s.grid.Row(s.viewShift + row) {
			s.drawTile(screen, offsetX+x*tileWidth, hudHeight+row, t)
		}
	}

	for _, p := range s.shards {
		if sx, sy, ok := s.toScreen(p, offsetX); ok {
			screen.SetColored(sx, sy, '◆', core.ColorShard)
		}
	}

	for _, e := range s.effects {
		if sx, sy, ok := s.toScreen(e.Position, offsetX); ok {
			screen.SetColored(sx, sy, e.Glyph(now), core.ColorEffect)
		}
	}

	if sx, sy, ok := s.toScreen(s.player.Position, offsetX); ok {
		glyph := s.avatar.Frame(now)
		if s.player.Direction == core.West {
			screen.SetColored(sx, sy, '<', core.ColorPlayer)
			screen.SetColored(sx+1, sy, glyph, core.ColorPlayer)
		} else {
			screen.SetColored(sx, sy, glyph, core.ColorPlayer)
			screen.SetColored(sx+1, sy, '>', core.ColorPlayer)
		}
	}

	s.drawHUD(screen, now)
	s.drawFooter(screen, hudHeight+viewH)
	s.drawOverlay(screen)
}

func (s *Session) drawTile(screen *core.Screen, sx, sy int, t world.Tile) {
	switch {
	case t.Stone:
		screen.DrawTextColored(sx, sy, "()", core.ColorStone)
	case t.Grass:
		screen.DrawTextColored(sx, sy, `""`, core.ColorGrass)
	case t.Dirt && !t.Walkable:
		screen.DrawTextColored(sx, sy, "▀▀", core.ColorDirt)
	}
}

// toScreen converts a map position to screen coordinates.
func (s *Session) toScreen(p core.Position, offsetX int) (int, int, bool) {
	row := p.Y - s.viewShift
	if row < 0 || row >= s.viewHeight() {
		return 0, 0, false
	}
	return offsetX + p.X*tileWidth, hudHeight + row, true
}

func (s *Session) drawHUD(screen *core.Screen, now int64) {
	left := fmt.Sprintf(" %s", s.m.Title())
	screen.DrawTextColored(0, 0, left, core.ColorHUD)

	right := fmt.Sprintf("◆ %d  %s ", s.score, formatClock(s.clock(now)))
	if s.playback != nil {
		right = fmt.Sprintf("[REPLAY %3.0f%%]  %s", s.playback.progress(now)*100, right)
	}
	screen.DrawTextColored(screen.Width()-len([]rune(right)), 0, right, core.ColorHUD)
}

func (s *Session) drawFooter(screen *core.Screen, y int) {
	help := "tab pause  esc menu"
	if buf := s.controller.Buffer(); buf != "" {
		screen.DrawTextColored(1, y, fmt.Sprintf("%s-", buf), core.ColorAlert)
	}
	screen.DrawTextColored(screen.Width()-len(help)-1, y, help, core.ColorDim)
}

func (s *Session) drawOverlay(screen *core.Screen) {
	var lines []string
	switch {
	case s.finished:
		lines = []string{"REPLAY FINISHED", fmt.Sprintf("Shards: %d", s.score), "", "esc: back"}
	case s.gameOver:
		lines = []string{"TIME IS UP", fmt.Sprintf("Shards: %d", s.score), "", "r: retry  esc: menu"}
	case s.paused:
		lines = []string{"PAUSED", "", "tab: resume"}
	default:
		return
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 6
	boxH := len(lines) + 2
	x := (screen.Width() - boxW) / 2
	y := (screen.Height() - boxH) / 2

	screen.DrawBox(core.NewRect(x, y, boxW, boxH), core.ColorHUD)
	for i, l := range lines {
		color := core.ColorHUD
		if i == 0 {
			color = core.ColorAlert
		}
		screen.DrawTextCentered(y+1+i, l, color)
	}
}

// clock returns the time shown in the HUD: the remaining time under a time
// limit, the elapsed time otherwise.
func (s *Session) clock(now int64) int64 {
	if limit := s.timeLimit(); limit > 0 {
		return max(0, limit-now)
	}
	return now
}

func formatClock(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
