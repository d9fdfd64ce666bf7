package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/denizsincar29/goerror"
	"github.com/gorilla/mux"
	"github.com/jsphweid/viano/config"
	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/pitch"
	"github.com/jsphweid/viano/tracker"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var (
	addr    string
	backend string
	midiOut string
)

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	addBackendFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func addBackendFlags(c *cobra.Command) {
	c.Flags().StringVar(&backend, "backend", "", "voice backend: synth, midi or none")
	c.Flags().StringVar(&midiOut, "midi-out", "", "prefix of the MIDI output port name")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the instrument over HTTP",
	Long:  `Serves the instrument over HTTP. Browser front ends post key events and draw the returned state.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve(cmd)
	},
}

func serve(cmd *cobra.Command) {
	logger, c := setup()
	e := goerror.NewError(logger)
	if cmd.Flags().Changed("addr") {
		c.Addr = addr
	}
	applyBackendFlags(cmd, &c)
	e.Must(c.Validate(), "Invalid configuration")

	keys, err := c.Keymap()
	e.Must(err, "Failed to build key map")
	voices, closer, err := newBackend(c, logger)
	e.Must(err, "Failed to open voice backend")
	defer closer.Close()

	reg := NewRegistry(pitch.NewMapper(keys), voices, logger)
	defer reg.Close()

	srv := &http.Server{Addr: c.Addr, Handler: NewRouter(reg)}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	logger.Info("listening", "addr", c.Addr, "backend", c.Backend)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		e.Must(err, "Server failed")
	}
}

func applyBackendFlags(cmd *cobra.Command, c *config.Config) {
	if cmd.Flags().Changed("backend") {
		c.Backend = backend
	}
	if cmd.Flags().Changed("midi-out") {
		c.MidiOut = midiOut
	}
}

type handler struct {
	reg *Registry
}

// NewRouter serves the session API for reg, open to any origin.
func NewRouter(reg *Registry) http.Handler {
	h := &handler{reg: reg}
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/sessions", h.create).Methods("POST")
	router.HandleFunc("/sessions/{id}", h.get).Methods("GET")
	router.HandleFunc("/sessions/{id}", h.delete).Methods("DELETE")
	router.HandleFunc("/sessions/{id}/events", h.event).Methods("POST")
	router.HandleFunc("/sessions/{id}/rotate", h.rotate).Methods("POST")
	router.HandleFunc("/sessions/{id}/octave", h.octave).Methods("POST")
	router.HandleFunc("/sessions/{id}/minor", h.minor).Methods("POST")
	router.HandleFunc("/resume", h.resume).Methods("POST")

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func (h *handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	s, err := h.reg.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return s, true
}

func (h *handler) apply(w http.ResponseWriter, r *http.Request, s *Session, fn func(*tracker.Tracker)) {
	st, err := s.Apply(r.Context(), fn)
	switch {
	case errors.Is(err, tracker.ErrClosed):
		writeError(w, http.StatusNotFound, ErrUnknownSession.Error())
	case err != nil:
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeJSON(w, http.StatusOK, st)
	}
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	s := h.reg.Create()
	st, err := s.Apply(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	if s, ok := h.session(w, r); ok {
		h.apply(w, r, s, nil)
	}
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reg.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) event(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if !s.Allow() {
		writeError(w, http.StatusTooManyRequests, "too many key events")
		return
	}
	var ev model.KeyEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode key event: "+err.Error())
		return
	}
	if ev.Type != model.KeyDown && ev.Type != model.KeyUp {
		writeError(w, http.StatusBadRequest, `type must be "down" or "up"`)
		return
	}
	if ev.Key == "" && ev.Code == 0 {
		writeError(w, http.StatusBadRequest, "key event needs a key or a code")
		return
	}
	h.apply(w, r, s, func(t *tracker.Tracker) { t.HandleEvent(ev) })
}

func decodeDirection(w http.ResponseWriter, r *http.Request) (int, bool) {
	var body model.DirectionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return 0, false
	}
	if body.Direction != 1 && body.Direction != -1 {
		writeError(w, http.StatusBadRequest, "direction must be 1 or -1")
		return 0, false
	}
	return body.Direction, true
}

func (h *handler) rotate(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if d, ok := decodeDirection(w, r); ok {
		h.apply(w, r, s, func(t *tracker.Tracker) { t.Rotate(d) })
	}
}

func (h *handler) octave(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if d, ok := decodeDirection(w, r); ok {
		h.apply(w, r, s, func(t *tracker.Tracker) { t.AdjustOctave(d) })
	}
}

func (h *handler) minor(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var body model.MinorRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	h.apply(w, r, s, func(t *tracker.Tracker) { t.SetMinor(body.Minor) })
}

// resume is the click that unlocks audio in a browser. Sound is made here,
// there is nothing to unlock.
func (h *handler) resume(w http.ResponseWriter, r *http.Request) {
	h.reg.logger.Info("audio resumed", "origin", r.Header.Get("Origin"))
	w.WriteHeader(http.StatusNoContent)
}
