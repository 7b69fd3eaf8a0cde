// Package game drives one interactive 2048 session: it turns input frames
// into board actions, keeps the solver's hint current and plays the hint on
// its own when autoplay is on. It has no dependency on Bubble Tea.
package game

import (
	"fmt"
	"math/bits"

	"github.com/vovakirdan/tui-2048/internal/bench"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/solver"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// AutoGameID is the scoreboard mode of games in which autoplay was used.
// Benchmark games share it.
const AutoGameID = bench.GameID

// DefaultAutoplayInterval is the number of ticks between autoplay moves.
const DefaultAutoplayInterval = 12

// Options configures a session.
type Options struct {
	Level            int         // 1-based level preset; 0 means classic
	Rules            t2048.Rules // Overrides the level rules when non-zero
	Depth            int         // Hint search depth; 0 means solver.DefaultDepth
	AutoHint         bool        // Recompute the hint after every move
	Autoplay         bool        // Start with autoplay on
	AutoplayInterval int         // Ticks between autoplay moves
}

// Game is a single 2048 session.
type Game struct {
	level    int
	rules    t2048.Rules
	depth    int
	autoHint bool
	interval int
	startAP  bool

	board  *t2048.Board
	status t2048.ActionStatus
	tick   uint64
	moves  int

	hint     t2048.Direction
	hasHint  bool
	autoplay bool
	assisted bool // Autoplay was turned on at some point
	apTicks  int

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a session. Call Reset before the first Step.
func New(opts Options) *Game {
	level := opts.Level
	if t2048.GetLevel(level-1) == nil {
		level = t2048.ClassicLevel
	}

	rules := opts.Rules
	if rules == (t2048.Rules{}) {
		rules = t2048.GetLevel(level - 1).Rules()
	}

	depth := opts.Depth
	if depth < 1 {
		depth = solver.DefaultDepth
	}

	interval := opts.AutoplayInterval
	if interval < 1 {
		interval = DefaultAutoplayInterval
	}

	return &Game{
		level:    level,
		rules:    rules,
		depth:    depth,
		autoHint: opts.AutoHint,
		interval: interval,
		startAP:  opts.Autoplay,
	}
}

// ID returns the scoreboard mode of the session.
func (g *Game) ID() string {
	switch {
	case g.assisted:
		return AutoGameID
	case g.rules.WinTile == 0:
		return "2048-endless"
	default:
		return fmt.Sprintf("2048-%d", g.level)
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.rules.WinTile == 0 {
		return "2048 - Endless"
	}
	return fmt.Sprintf("2048 - %s", t2048.GetLevel(g.level-1).Name)
}

// Reset starts a new game on a freshly seeded board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.board = t2048.NewBoard(g.rules, cfg.Seed)
	g.status = t2048.StatusContinue
	g.tick = 0
	g.moves = 0
	g.hasHint = false
	g.autoplay = g.startAP
	g.assisted = g.startAP
	g.apTicks = 0
	g.paused = false

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	if g.autoHint {
		g.computeHint()
	}
}

// Resize adapts the session to new screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.status.Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform
	if g.status.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionAutoplay) {
		g.SetAutoplay(!g.autoplay)
	}
	if in.Has(core.ActionHint) {
		g.computeHint()
	}

	moved := false
	if dir, ok := inputDirection(in); ok {
		moved = g.apply(dir)
	} else if g.autoplay {
		g.apTicks++
		if g.apTicks >= g.interval {
			g.apTicks = 0
			moved = g.autoMove()
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// inputDirection maps the first direction action in the frame, checked in
// enumeration order.
func inputDirection(in core.InputFrame) (t2048.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return t2048.DirUp, true
	case in.Has(core.ActionRight):
		return t2048.DirRight, true
	case in.Has(core.ActionDown):
		return t2048.DirDown, true
	case in.Has(core.ActionLeft):
		return t2048.DirLeft, true
	}
	return 0, false
}

// apply plays dir on the board and reports whether the board changed.
func (g *Game) apply(dir t2048.Direction) bool {
	g.status = g.board.Action(dir)
	if g.status == t2048.StatusInvalidMove {
		return false
	}

	g.moves++
	g.hasHint = false

	if g.status.Terminal() {
		g.autoplay = false
		return true
	}
	if g.autoHint || g.autoplay {
		g.computeHint()
	}
	return true
}

// autoMove plays the current hint, computing it first if needed.
func (g *Game) autoMove() bool {
	if !g.hasHint {
		g.computeHint()
	}
	if !g.hasHint {
		g.autoplay = false
		return false
	}
	return g.apply(g.hint)
}

func (g *Game) computeHint() {
	g.hint, g.hasHint = solver.FindBestMove(g.board, g.depth)
}

// SetAutoplay turns autoplay on or off. Once turned on, the session is
// recorded under AutoGameID.
func (g *Game) SetAutoplay(on bool) {
	g.autoplay = on
	g.apTicks = 0
	if on {
		g.assisted = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.status.Terminal(),
		Won:      g.status == t2048.StatusWin,
		Paused:   g.paused || g.tooSmall,
	}
}

// Hint returns the most recent solver recommendation.
func (g *Game) Hint() (t2048.Direction, bool) {
	return g.hint, g.hasHint
}

// Status returns the outcome of the last action.
func (g *Game) Status() t2048.ActionStatus {
	return g.status
}

// Autoplay reports whether the solver is playing.
func (g *Game) Autoplay() bool {
	return g.autoplay
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// Level returns the 1-based level preset.
func (g *Game) Level() int {
	return g.level
}

// Rules returns the rules in play.
func (g *Game) Rules() t2048.Rules {
	return g.rules
}

// Board returns a copy of the board.
func (g *Game) Board() *t2048.Board {
	return g.board.Clone()
}

// tileStep is the ramp index of a tile: 0 for 2, 1 for 4 and so on.
func tileStep(v int) int {
	if v <= 0 {
		return -1
	}
	return bits.Len(uint(v)) - 2
}
