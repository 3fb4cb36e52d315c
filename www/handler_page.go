package www

import (
	"log/slog"
	"net/http"
)

func NewPageHandler(logger *slog.Logger, s *Server, tmpl, title string) http.HandlerFunc {
	nav := tmpl[:len(tmpl)-len(".html")]
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		data := newPageData(title, nav, s.flash.Pop(w, r), s.model.State(), s.conn.Status())

		w.Header().Set("Content-Type", "text/html")
		if err := s.tm.ExecuteToWriter(tmpl, data, w); err != nil {
			logger.Error("handling page request", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
