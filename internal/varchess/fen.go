package varchess

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidPosition = errors.New("invalid position")

// maxRowWidth 限制一行的格数，避免超大的空格计数撑爆内存
const maxRowWidth = 1 << 12

var letterToKind = map[rune]Kind{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
}

func pieceToChar(pc Piece) rune {
	var base rune
	for k, v := range letterToKind {
		if v == pc.Kind {
			base = k
			break
		}
	}
	if base == 0 {
		return '.'
	}
	if pc.Side == White {
		return unicode.ToUpper(base)
	}
	return base
}

// Encode 类 FEN：从最高 rank 到 0 用“/”隔开，空位用数字压缩；空格后 w/b 表示轮到谁
func (s *Session) Encode() string {
	g := s.grid
	var sb strings.Builder
	for r := g.Ranks() - 1; r >= 0; r-- {
		if r < g.Ranks()-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < g.Files(); f++ {
			pc := g.PieceAt(Loc{File: f, Rank: r})
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	sb.WriteByte(' ')
	if s.turn == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

// DecodeSession 解析 Encode 的输出，尺寸由文本决定。所有棋子视为未动过。
func DecodeSession(text string) (*Session, error) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return nil, ErrInvalidPosition
	}
	var turn Side
	switch parts[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, ErrInvalidPosition
	}

	rows := strings.Split(parts[0], "/")
	ranks := len(rows)
	var cells [][]Cell // [rank][file]，最后再转置
	files := -1
	for _, row := range rows {
		line, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		if files == -1 {
			files = len(line)
		}
		if len(line) != files || files == 0 {
			return nil, ErrInvalidPosition
		}
		cells = append(cells, line)
	}

	setup := make(Setup, files)
	for f := 0; f < files; f++ {
		setup[f] = make([]Cell, ranks)
		for i := 0; i < ranks; i++ {
			setup[f][ranks-1-i] = cells[i][f]
		}
	}

	s := NewSession(files, ranks, turn)
	if err := s.PlacePieces(setup); err != nil {
		return nil, err
	}
	s.Init()
	return s, nil
}

func decodeRow(row string) ([]Cell, error) {
	var out []Cell
	n := 0
	for _, ch := range row {
		if ch >= '0' && ch <= '9' {
			n = n*10 + int(ch-'0')
			if len(out)+n > maxRowWidth {
				return nil, ErrInvalidPosition
			}
			continue
		}
		if n > 0 {
			out = append(out, make([]Cell, n)...)
			n = 0
		}
		if ch == '.' {
			out = append(out, Cell{})
			continue
		}
		kind, ok := letterToKind[unicode.ToLower(ch)]
		if !ok {
			return nil, ErrInvalidPosition
		}
		side := Black
		if unicode.IsUpper(ch) {
			side = White
		}
		out = append(out, Cell{Side: side, Kind: kind, Symbol: kind.Symbol()})
	}
	if n > 0 {
		out = append(out, make([]Cell, n)...)
	}
	return out, nil
}
