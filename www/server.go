package www

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/angas/pricepulse/config"
	"github.com/angas/pricepulse/connectivity"
	"github.com/angas/pricepulse/database"
	"github.com/angas/pricepulse/types"
	"github.com/angas/pricepulse/viewmodel"
	"github.com/google/uuid"
)

// PriceModel is the part of the view-model the screens read and drive.
type PriceModel interface {
	State() viewmodel.UiState
	Subscribe() (<-chan viewmodel.UiState, func())
	Refresh()
	ChangeRegion(region types.Region)
	SetGraphVisible(visible bool)
	ChangeAppliance(appliance types.Appliance)
	ChangeLimit(limit float64)
}

type ConnectivityStatus interface {
	Status() connectivity.Status
}

type LogReader interface {
	GetLogEntries(ctx context.Context, minLvl slog.Level, page, pageSize int) ([]database.LogEntryRow, error)
}

type Server struct {
	logger  *slog.Logger
	config  config.AppConfigApi
	model   PriceModel
	conn    ConnectivityStatus
	hub     *Hub
	tm      *TemplateManager
	flash   *flashStore
	mux     *http.ServeMux
	changes chan connectivity.Status
}

//go:embed static
var embeddedStaticDir embed.FS

func StartServer(db LogReader, model PriceModel, conn ConnectivityStatus, config config.AppConfigApi) (*Server, error) {
	logger := slog.Default().With("module", "www")
	tm, err := NewTemplateManager(logger, config.WwwDir)
	if err != nil {
		return nil, fmt.Errorf("template manager initialization: %w", err)
	}

	s := &Server{
		logger:  logger,
		config:  config,
		model:   model,
		conn:    conn,
		hub:     NewHub(logger),
		tm:      tm,
		flash:   newFlashStore(logger, config.SessionKey),
		mux:     http.NewServeMux(),
		changes: make(chan connectivity.Status, 1),
	}

	go s.hub.Run()

	logReqMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.logger.Debug("http request",
				slog.String("method", r.Method),
				slog.String("url", r.URL.String()),
				slog.String("remoteAddr", r.RemoteAddr))
			next.ServeHTTP(w, r)
		})
	}

	handlerLogger := func(name string) *slog.Logger {
		return logger.With(slog.String("handler", name))
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", staticFilesHandler(config.WwwDir)))

	s.mux.Handle("/{$}", logReqMW(NewPageHandler(handlerLogger("home"), s, "home.html", "Home")))
	s.mux.Handle("/appliances", logReqMW(NewPageHandler(handlerLogger("appliances"), s, "appliances.html", "Appliances")))
	s.mux.Handle("/settings", logReqMW(NewPageHandler(handlerLogger("settings"), s, "settings.html", "Settings")))
	s.mux.Handle("/about", logReqMW(NewPageHandler(handlerLogger("about"), s, "about.html", "About this app")))
	s.mux.Handle("/purpose", logReqMW(NewPageHandler(handlerLogger("purpose"), s, "purpose.html", "Purpose")))
	s.mux.Handle("/opensource", logReqMW(NewPageHandler(handlerLogger("opensource"), s, "opensource.html", "Open source")))

	s.mux.Handle("/settings/region", logReqMW(NewRegionHandler(handlerLogger("region"), s)))
	s.mux.Handle("/settings/limit", logReqMW(NewLimitHandler(handlerLogger("limit"), s)))
	s.mux.Handle("/appliances/appliance", logReqMW(NewApplianceHandler(handlerLogger("appliance"), s)))
	s.mux.Handle("/appliances/view", logReqMW(NewViewHandler(handlerLogger("view"), s)))
	s.mux.Handle("/refresh", logReqMW(NewRefreshHandler(handlerLogger("refresh"), s)))

	s.mux.Handle("/chart", logReqMW(NewChartHandler(handlerLogger("chart"), model)))
	s.mux.Handle("/api/state", logReqMW(NewStateHandler(handlerLogger("state"), model, conn)))
	s.mux.Handle("/log", logReqMW(NewLogHandler(handlerLogger("log"), s, db)))

	s.mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		name := uuid.NewString()
		client, err := NewClient(s.hub, w, r, name)
		if err != nil {
			s.logger.Error("new websocket client failed", slog.Any("error", err))
			return
		}
		s.hub.Register <- client
		go client.WritePump()
		go client.ReadPump()
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ConnectivityChanged is registered as a connectivity listener. Only the
// latest status is kept when the server loop is busy.
func (s *Server) ConnectivityChanged(_, curr connectivity.Status) {
	for {
		select {
		case s.changes <- curr:
			return
		default:
		}
		select {
		case <-s.changes:
		default:
		}
	}
}

func (s *Server) Run(ctx context.Context) {
	s.logger.Info("starting server...", "port", s.config.Port)
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.config.Address, s.config.Port),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErrors := make(chan error, 1)

	go func() {
		srvErrors <- srv.ListenAndServe()
	}()

	states, unsubscribe := s.model.Subscribe()
	defer unsubscribe()

	for {
		select {
		case err := <-srvErrors:
			if err != nil && err != http.ErrServerClosed {
				s.logger.Error("server error", slog.Any("error", err))
			}
			return

		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			err := srv.Shutdown(shutdownCtx)
			if err != nil {
				s.logger.Error("server shutdown failed", slog.Any("error", err))
			}
			return

		case state, ok := <-states:
			if !ok {
				return
			}
			s.broadcast(state, s.conn.Status())

		case status := <-s.changes:
			s.broadcast(s.model.State(), status)
		}
	}
}

func (s *Server) broadcast(state viewmodel.UiState, status connectivity.Status) {
	buf, err := s.tm.Execute("live.html", newLiveData(state, status))
	if err != nil {
		s.logger.Error("template execution failed", slog.Any("error", err))
		return
	}

	s.hub.Broadcast <- buf.Bytes()
}

func staticFilesHandler(extDir *string) http.Handler {
	if extDir != nil && *extDir != "" {
		staticDir := path.Join(*extDir, "static")
		if _, err := os.Stat(staticDir); err == nil {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	fsys, err := fs.Sub(embeddedStaticDir, "static")
	if err != nil {
		log.Panic(err)
	}
	return http.FileServer(http.FS(fsys))
}
