package www

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const flashSessionName = "pricepulse"

type flashStore struct {
	logger *slog.Logger
	store  sessions.Store
}

// newFlashStore signs the cookie with key, or with a random key that is
// valid until the process exits.
func newFlashStore(logger *slog.Logger, key string) *flashStore {
	k := []byte(key)
	if len(k) == 0 {
		k = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(k)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &flashStore{logger: logger, store: store}
}

func (f *flashStore) Add(w http.ResponseWriter, r *http.Request, format string, args ...any) {
	// A cookie signed with an old key gives an error and a fresh session.
	session, _ := f.store.Get(r, flashSessionName)
	session.AddFlash(fmt.Sprintf(format, args...))
	if err := session.Save(r, w); err != nil {
		f.logger.Warn("saving flash message failed", slog.Any("error", err))
	}
}

func (f *flashStore) Pop(w http.ResponseWriter, r *http.Request) []string {
	session, _ := f.store.Get(r, flashSessionName)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}

	if err := session.Save(r, w); err != nil {
		f.logger.Warn("clearing flash messages failed", slog.Any("error", err))
	}

	messages := make([]string, 0, len(flashes))
	for _, v := range flashes {
		if s, ok := v.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
