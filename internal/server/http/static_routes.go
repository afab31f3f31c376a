package httpserver

import (
	"net/http"
	"strconv"

	"varchess/internal/render"
	"varchess/internal/server/game"
	"varchess/internal/varchess"
)

// RegisterStaticRoutes mounts:
// - /board.svg -> rendered board for ?game_id=..., optional &file=&rank= marks that piece's moves
// - /          -> static assets from webDir
func RegisterStaticRoutes(mux *http.ServeMux, webDir string, games *game.Manager) {
	if mux == nil {
		return
	}
	if webDir == "" {
		webDir = "."
	}
	mux.HandleFunc("/board.svg", func(w http.ResponseWriter, r *http.Request) {
		serveBoardSVG(w, r, games)
	})
	mux.Handle("/", http.FileServer(http.Dir(webDir)))
}

func serveBoardSVG(w http.ResponseWriter, r *http.Request, games *game.Manager) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	id := q.Get("game_id")

	var markers []varchess.Loc
	if q.Has("file") && q.Has("rank") {
		f, ferr := strconv.Atoi(q.Get("file"))
		rk, rerr := strconv.Atoi(q.Get("rank"))
		if ferr != nil || rerr != nil {
			http.Error(w, "bad square", http.StatusBadRequest)
			return
		}
		moves, err := games.Moves(id, varchess.Loc{File: f, Rank: rk})
		if err != nil {
			writeError(w, err)
			return
		}
		for _, m := range moves {
			markers = append(markers, m.To)
		}
	}

	err := games.View(id, func(g *game.GameState) error {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("ETag", strconv.Quote(strconv.FormatUint(g.Session.Hash(), 16)))
		render.Board(w, g.Session, render.Options{Markers: markers})
		return nil
	})
	if err != nil {
		writeError(w, err)
	}
}
