package www

import (
	"log/slog"
	"net/http"

	"github.com/angas/pricepulse/database"
)

func NewLogHandler(logger *slog.Logger, s *Server, db LogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "text/html")

		if page := intOrDefault(r.URL, "page", 0); page > 0 {
			pageSize := intOrDefault(r.URL, "pageSize", 25)
			if pageSize < 1 {
				pageSize = 25
			}
			level, err := levelOrDefault(r.URL, "level", slog.LevelDebug)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			e, err := db.GetLogEntries(r.Context(), level, page, pageSize)
			if err != nil {
				logger.Error("handling log request", slog.Any("error", err))
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			data := struct {
				NextPage int
				PageSize int
				Level    string
				Entries  []database.LogEntryRow
			}{
				NextPage: page + 1,
				PageSize: pageSize,
				Level:    level.String(),
				Entries:  e,
			}

			if err := s.tm.ExecuteToWriter("log_entries.html", data, w); err != nil {
				logger.Error("handling log request", slog.Any("error", err))
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		} else {
			data := newPageData("Log", "log", s.flash.Pop(w, r), s.model.State(), s.conn.Status())
			if err := s.tm.ExecuteToWriter("log.html", data, w); err != nil {
				logger.Error("handling log request", slog.Any("error", err))
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}
