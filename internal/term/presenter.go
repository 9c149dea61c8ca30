package term

import (
	"github.com/gdamore/tcell/v2"

	"gridcaster/internal/core"
)

// halfBlock paints the upper half of a cell in the foreground colour, so
// each terminal cell carries two vertically stacked pixels.
const halfBlock = '▀'

// Presenter draws RGB frames onto a tcell screen.
type Presenter struct {
	screen tcell.Screen
}

// NewPresenter wraps an initialised screen.
func NewPresenter(screen tcell.Screen) *Presenter {
	screen.HideCursor()
	return &Presenter{screen: screen}
}

// FrameSize returns the pixel size that fills the screen, keeping rows
// reserved for the status line.
func (p *Presenter) FrameSize(statusRows int) (w, h int) {
	cols, rows := p.screen.Size()
	return FrameSize(cols, rows, statusRows)
}

// FrameSize converts a terminal size to a frame size: one pixel per column
// and two per row.
func FrameSize(cols, rows, statusRows int) (w, h int) {
	rows -= statusRows
	if cols < 1 || rows < 1 {
		return 0, 0
	}
	return cols, rows * 2
}

// Present draws frame from the top-left corner and writes status on the row
// below it. Nothing is shown until Show.
func (p *Presenter) Present(frame *core.RGBImage, status string) {
	cols, rows := p.screen.Size()
	cellRows := (frame.H + 1) / 2
	for cy := 0; cy < cellRows && cy < rows; cy++ {
		for cx := 0; cx < frame.W && cx < cols; cx++ {
			top, bottom := CellColors(frame, cx, cy)
			p.screen.SetContent(cx, cy, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	y := cellRows
	if y >= rows {
		return
	}
	x := 0
	for _, r := range status {
		if x >= cols {
			break
		}
		p.screen.SetContent(x, y, r, nil, statusStyle)
		x++
	}
	for ; x < cols; x++ {
		p.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

// Show flushes the drawn cells.
func (p *Presenter) Show() { p.screen.Show() }

// CellColors returns the colours of the two pixels in terminal cell
// (cx, cy). A frame with an odd height pads the last cell with black.
func CellColors(frame *core.RGBImage, cx, cy int) (top, bottom tcell.Color) {
	top = pixelColor(frame, cx, 2*cy)
	bottom = tcell.NewRGBColor(0, 0, 0)
	if 2*cy+1 < frame.H {
		bottom = pixelColor(frame, cx, 2*cy+1)
	}
	return top, bottom
}

func pixelColor(frame *core.RGBImage, x, y int) tcell.Color {
	return tcell.NewRGBColor(int32(frame.At(x, y, 0)), int32(frame.At(x, y, 1)), int32(frame.At(x, y, 2)))
}
