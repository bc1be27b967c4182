package httpadapter

import (
	"encoding/base64"
	"encoding/json"
	"image"
	"net/http"
	"strconv"
	"time"

	"svw.info/puzzles/internal/render"
	"svw.info/puzzles/internal/sudoku"
)

// imagePairResp carries a puzzle and its solution as base64 PNGs.
type imagePairResp struct {
	Unsolved   string `json:"unsolved,omitempty"`
	Solved     string `json:"solved,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Error      string `json:"error,omitempty"`
}

func writeImagePair(w http.ResponseWriter, unsolved, solved *image.RGBA, d time.Duration) {
	up, err := render.PNG(unsolved)
	if err == nil {
		var sp []byte
		if sp, err = render.PNG(solved); err == nil {
			_ = json.NewEncoder(w).Encode(imagePairResp{
				Unsolved:   base64.StdEncoding.EncodeToString(up),
				Solved:     base64.StdEncoding.EncodeToString(sp),
				DurationMs: d.Milliseconds(),
			})
			return
		}
	}
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(imagePairResp{Error: err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(imagePairResp{Error: msg})
}

// GET /api/maze?width=20&height=15&seed=42
// height defaults to width, seed to the clock.
func (h *Handler) handleMazeImage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	width, err := strconv.Atoi(q.Get("width"))
	if err != nil {
		badRequest(w, "width is not a valid integer")
		return
	}
	height := width
	if s := q.Get("height"); s != "" {
		if height, err = strconv.Atoi(s); err != nil {
			badRequest(w, "height is not a valid integer")
			return
		}
	}
	seed := time.Now().UnixNano()
	if s := q.Get("seed"); s != "" {
		if seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			badRequest(w, "seed is not a valid integer")
			return
		}
	}

	m, st, err := h.UC.CarveMaze(r.Context(), width, height, seed)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeImagePair(w, render.Maze(m), render.MazeSolved(m), st.Duration)
}

// GET /api/nonogram?col=1,2;3;4;2;1&row=1,1;1;2;4;4
func (h *Handler) handleNonogramImage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	col, row := q.Get("col"), q.Get("row")
	if col == "" || row == "" {
		badRequest(w, "must specify `col` and `row` arguments")
		return
	}

	n, st, err := h.UC.SolveNonogram(r.Context(), col, row)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeImagePair(w, render.Nonogram(n), render.NonogramSolved(n), st.Duration)
}

// GET /api/sudoku?puzzle=<81 chars, 0 or . for blanks>
func (h *Handler) handleSudokuImage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	s := r.URL.Query().Get("puzzle")
	if s == "" {
		badRequest(w, "must specify `puzzle` argument")
		return
	}
	b, err := sudoku.Parse(s)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	solved, st, err := h.UC.Solve(r.Context(), b)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeImagePair(w, render.Sudoku(b), render.SudokuSolved(b, solved), st.Duration)
}
