// Package bench estimates how often the solver wins by letting it play
// complete games on its own.
package bench

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-2048/internal/solver"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// GameID is the scoreboard mode under which solver games are recorded.
const GameID = "2048-auto"

// Recorder receives every finished game.
// Calls are serialized, so implementations need no locking of their own.
type Recorder interface {
	RecordGame(GameResult) error
}

// Options configures a benchmark run.
type Options struct {
	Games    int
	Workers  int
	Depth    int
	Seed     int64 // Game i is played with Seed+i
	Rules    t2048.Rules
	MaxMoves int // 0 means unlimited
	Logger   *log.Logger
	Recorder Recorder
}

func (o Options) withDefaults() Options {
	if o.Games < 1 {
		o.Games = 1
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Depth < 1 {
		o.Depth = solver.DefaultDepth
	}
	if o.Rules == (t2048.Rules{}) {
		o.Rules = t2048.ClassicRules()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// GameResult is the outcome of one solver game.
type GameResult struct {
	Index    int
	Seed     int64
	Score    int
	MaxTile  int
	Moves    int
	Status   t2048.ActionStatus
	Duration time.Duration
}

// Won reports whether the game reached the win tile.
func (r GameResult) Won() bool {
	return r.Status == t2048.StatusWin
}

// Report summarizes a benchmark run.
type Report struct {
	Games    []GameResult
	Wins     int
	Total    int
	Depth    int
	Workers  int
	Seed     int64
	Duration time.Duration
}

// WinRate returns the fraction of games won, 0 for an empty report.
func (r Report) WinRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Total)
}

// AverageScore returns the mean final score.
func (r Report) AverageScore() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	sum := 0
	for _, g := range r.Games {
		sum += g.Score
	}
	return float64(sum) / float64(len(r.Games))
}

// MaxTiles counts how many games ended with each highest tile.
func (r Report) MaxTiles() map[int]int {
	counts := make(map[int]int)
	for _, g := range r.Games {
		counts[g.MaxTile]++
	}
	return counts
}

// Run plays opts.Games games concurrently, at most opts.Workers at a time.
// The report does not depend on the number of workers. On error the report
// still holds the games that finished before it.
func Run(ctx context.Context, opts Options) (Report, error) {
	opts = opts.withDefaults()
	start := time.Now()

	results := make([]GameResult, opts.Games)
	finished := make([]bool, opts.Games)
	var recordMu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := range opts.Games {
		g.Go(func() error {
			res, err := Play(ctx, i, opts.Seed+int64(i), opts)
			if err != nil {
				return err
			}
			results[i] = res
			finished[i] = true

			opts.Logger.Info("game finished",
				"game", i+1,
				"of", opts.Games,
				"score", res.Score,
				"max_tile", res.MaxTile,
				"moves", res.Moves,
				"won", res.Won(),
			)

			if opts.Recorder != nil {
				recordMu.Lock()
				err := opts.Recorder.RecordGame(res)
				recordMu.Unlock()
				if err != nil {
					opts.Logger.Warn("cannot record game", "game", i+1, "err", err)
				}
			}
			return nil
		})
	}

	err := g.Wait()

	report := Report{
		Depth:    opts.Depth,
		Workers:  opts.Workers,
		Seed:     opts.Seed,
		Duration: time.Since(start),
	}
	for i, res := range results {
		if !finished[i] {
			continue
		}
		report.Games = append(report.Games, res)
		if res.Won() {
			report.Wins++
		}
	}
	report.Total = len(report.Games)
	return report, err
}

// Play runs a single game to the end with every move chosen by the solver.
// The context is checked between moves.
func Play(ctx context.Context, index int, seed int64, opts Options) (GameResult, error) {
	opts = opts.withDefaults()
	start := time.Now()
	b := t2048.NewBoard(opts.Rules, seed)

	status := t2048.StatusContinue
	moves := 0
	for !status.Terminal() {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		if opts.MaxMoves > 0 && moves >= opts.MaxMoves {
			break
		}

		dir, ok := solver.FindBestMove(b, opts.Depth)
		if !ok {
			status = t2048.StatusLose
			break
		}
		status = b.Action(dir)
		if status == t2048.StatusInvalidMove {
			return GameResult{}, fmt.Errorf("bench: game %d: solver chose no-op move %s", index, dir)
		}
		moves++
	}

	return GameResult{
		Index:    index,
		Seed:     seed,
		Score:    b.Score(),
		MaxTile:  b.MaxTile(),
		Moves:    moves,
		Status:   status,
		Duration: time.Since(start),
	}, nil
}
