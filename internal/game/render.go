package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

const (
	cellWidth  = 7 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)

	boardW    = t2048.BoardSize*cellWidth + 1
	boardH    = t2048.BoardSize*cellHeight + 1
	hudHeight = 3

	minWidth  = boardW + 2
	minHeight = hudHeight + 1 + boardH + 3
)

// Render draws the session to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardX, boardY+boardH+1)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight))
}

// renderHUD draws the title, score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.board.Score()))

	var info string
	if g.rules.WinTile == 0 {
		info = fmt.Sprintf("Endless  Max: %d", g.board.MaxTile())
	} else {
		info = fmt.Sprintf("Level %d  Target: %d", g.level, g.rules.WinTile)
	}
	dst.DrawText(max(boardX, boardX+boardW-len(info)), 1, info)

	dst.DrawText(boardX, 2, fmt.Sprintf("Moves: %d", g.moves))
	if g.autoplay {
		label := "AUTOPLAY"
		dst.DrawTextColor(boardX+boardW-len(label), 2, label, core.ColorBrightGreen)
	}
}

// renderBoard draws the 4x4 grid with coloured tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range t2048.BoardSize + 1 {
		for x := range t2048.BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetWithColor(px, py, junction(x, y), core.ColorGray)

			if x < t2048.BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetWithColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < t2048.BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetWithColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	grid := g.board.Grid()
	spawnID, spawned := g.board.LastSpawn()
	for y := range t2048.BoardSize {
		for x := range t2048.BoardSize {
			val := grid[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)

			color := core.RampColor(tileStep(val))
			if spawned && g.moves > 0 && t2048.CellID(y, x) == spawnID {
				color = core.ColorBrightCyan
			}
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// junction picks the box-drawing rune at grid intersection (x, y).
func junction(x, y int) rune {
	last := t2048.BoardSize
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

// renderFooter draws the hint and the outcome of the last action.
func (g *Game) renderFooter(dst *core.Screen, boardX, y int) {
	hint := "Hint: press H"
	if g.hasHint {
		hint = fmt.Sprintf("Hint: %s (depth %d)", g.hint, g.depth)
	}
	dst.DrawTextColor(boardX, y, hint, core.ColorCyan)

	if g.status == t2048.StatusInvalidMove {
		dst.DrawTextColor(boardX, y+1, g.status.String(), core.ColorYellow)
	}
}

// renderOverlays draws game state overlays over the board area.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, area, core.ColorDefault, "PAUSED", "Press P to resume")
	case g.status == t2048.StatusWin:
		drawOverlay(dst, area, core.ColorBrightGreen,
			"YOU WIN!", fmt.Sprintf("Reached %d", g.rules.WinTile), "Press R to restart")
	case g.status == t2048.StatusLose:
		drawOverlay(dst, area, core.ColorBrightRed,
			"GAME OVER", fmt.Sprintf("Max tile: %d", g.board.MaxTile()), "Press R to restart")
	}
}

// drawOverlay draws a text box centered in area, kept on screen.
func drawOverlay(dst *core.Screen, area core.Rect, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.CenteredIn(maxLen+4, len(lines)+2)
	box.X = core.Clamp(box.X, 0, max(dst.Width()-box.W, 0))

	// Clear area behind overlay
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(box, c)
	centerX, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}
