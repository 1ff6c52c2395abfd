//go:generate go tool swag init -g api.go -o docs --outputTypes go

// @title		glsteps
// @version	1.0
// @description	Remote control for the glsteps OpenGL walkthrough
// @BasePath	/
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	_ "github.com/fosdem/glsteps/lib/api/docs"
	"github.com/fosdem/glsteps/lib/config"
	"github.com/fosdem/glsteps/lib/log"
	"github.com/fosdem/glsteps/lib/metrics"
	"github.com/fosdem/glsteps/lib/stats"
	"github.com/fosdem/glsteps/lib/tutorial"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Api struct {
	srv      http.Server
	mux      *http.ServeMux
	cfg      *config.ApiCfg
	tutorial *tutorial.Tutorial
	logger   *slog.Logger

	// flip is set when textures are stored upside down
	flip bool

	Stats *stats.Stats

	wsMu      sync.Mutex
	wsClients map[*wsClient]bool

	done      chan struct{}
	closeOnce sync.Once
}

func New(cfg *config.ApiCfg, t *tutorial.Tutorial, s *stats.Stats, flip bool) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.tutorial = t
	a.flip = flip
	a.logger = log.Module("api")
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*wsClient]bool)
	a.done = make(chan struct{})
	a.Stats = s

	t.AddEventListener("set-step", func(t *tutorial.Tutorial, data interface{}) {
		event := data.(tutorial.EventDataSetStep)
		a.logger.Debug(fmt.Sprintf("Step switched to %s", event.Step))
		a.broadcast(event)
	})

	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.HandleFunc("/api/kill", a.suicide)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/steps", a.getSteps)
	a.mux.HandleFunc("/api/step", a.handleStep)
	a.mux.HandleFunc("/api/step/{step}", a.handleStep)
	a.mux.HandleFunc("/api/texture", a.handleTexture)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/swagger/", httpSwagger.WrapHandler)
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Ask the render loop to exit
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.logger.Info("shutting down as per api request")
	a.tutorial.RequestShutdown()
	a.writeOk(w)
}

// @Summary	Frame and connection statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	a.writeJson(w, a.Stats.Snapshot())
}

type StepList struct {
	Steps   []string `json:"steps"`
	Current string   `json:"current" example:"quad"`
}

// @Summary	List the tutorial steps and the one on screen
// @Router		/api/steps [get]
// @Tags		step
// @Produce	json
// @Success	200	{object}	StepList
func (a *Api) getSteps(w http.ResponseWriter, _ *http.Request) {
	a.writeJson(w, &StepList{
		Steps:   tutorial.StepNames,
		Current: a.tutorial.CurrentName(),
	})
}

func (a *Api) writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode response: %s", err), http.StatusInternalServerError)
	}
}

func (a *Api) writeOk(w http.ResponseWriter) {
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.logger.Warn(fmt.Sprintf("could not write response: %s", err))
	}
}

func ServeInBackground(cfg *config.ApiCfg, t *tutorial.Tutorial, s *stats.Stats, flip bool) *Api {
	if cfg == nil {
		return nil
	}
	theApi := New(cfg, t, s, flip)

	theApi.logger.Info(fmt.Sprintf("starting web server on %s", cfg.Bind))
	go func() {
		err := theApi.Serve()
		if err != nil && err != http.ErrServerClosed {
			theApi.logger.Error(fmt.Sprintf("could not start web server: %s", err))
			t.RequestShutdown()
		}
	}()
	go theApi.pushStats()
	return theApi
}

// Close stops the stats pusher, drops every websocket client and shuts the
// server down. Websocket connections are hijacked, so the server does not
// close them itself.
func (a *Api) Close() error {
	a.closeOnce.Do(func() {
		close(a.done)
	})

	a.wsMu.Lock()
	for c := range a.wsClients {
		err := c.conn.Close()
		if err != nil {
			a.logger.Debug(fmt.Sprintf("could not close websocket: %s", err))
		}
	}
	a.wsMu.Unlock()

	return a.srv.Close()
}
