// Package render draws a session as an SVG board and picks piece assets.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"varchess/internal/varchess"
)

const defaultSquareSize = 64

type Options struct {
	SquareSize int
	// Markers 是候选走法的落点
	Markers []varchess.Loc
}

var glyphs = map[varchess.Side]map[varchess.Kind]string{
	varchess.White: {
		varchess.King: "♔", varchess.Queen: "♕", varchess.Rook: "♖",
		varchess.Bishop: "♗", varchess.Knight: "♘", varchess.Pawn: "♙",
	},
	varchess.Black: {
		varchess.King: "♚", varchess.Queen: "♛", varchess.Rook: "♜",
		varchess.Bishop: "♝", varchess.Knight: "♞", varchess.Pawn: "♟",
	},
}

var squareFill = map[varchess.Color]string{
	varchess.Dark:  "fill:#b58863",
	varchess.Light: "fill:#f0d9b5",
}

// AssetPath 返回棋子图片路径，和前端 img/ 目录的命名一致。
func AssetPath(pc varchess.Piece) string {
	switch pc.Kind {
	case varchess.Empty:
		return "img/empty.png"
	case varchess.OutOfBounds:
		return "img/oob.png"
	}
	return fmt.Sprintf("img/%s_%s.png", pc.Side, pc.Kind)
}

// SquareAsset returns the background image for a square.
func SquareAsset(sq *varchess.Square) string {
	if !sq.OnBoard() {
		return "img/oob.png"
	}
	return fmt.Sprintf("img/%s_space.png", sq.Color())
}

// ScreenPos maps a board square to its column/row on screen. When White is to
// move the board shows rank 0 at the bottom; otherwise it is rotated.
func ScreenPos(g *varchess.Grid, whiteView bool, l varchess.Loc) (col, row int) {
	if whiteView {
		return l.File, g.Ranks() - 1 - l.Rank
	}
	return g.Files() - 1 - l.File, l.Rank
}

// Board writes s as an SVG document to w.
func Board(w io.Writer, s *varchess.Session, opts Options) {
	size := opts.SquareSize
	if size <= 0 {
		size = defaultSquareSize
	}
	g := s.Grid()
	whiteView := s.SideToMoveIsWhite()

	canvas := svg.New(w)
	canvas.Start(g.Files()*size, g.Ranks()*size)
	g.Each(func(l varchess.Loc, sq *varchess.Square) {
		col, row := ScreenPos(g, whiteView, l)
		x, y := col*size, row*size
		canvas.Rect(x, y, size, size, squareFill[sq.Color()])

		pc := sq.Piece()
		if glyph, ok := glyphs[pc.Side][pc.Kind]; ok {
			style := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx", size*3/4)
			canvas.Text(x+size/2, y+size/2, glyph, style)
		}
	})
	for _, l := range opts.Markers {
		if !g.InBounds(l) {
			continue
		}
		col, row := ScreenPos(g, whiteView, l)
		canvas.Circle(col*size+size/2, row*size+size/2, size/6, "fill:#3a7;fill-opacity:0.6")
	}
	canvas.End()
}
