package httpsrv

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/khmm12/chats-service/internal/common/logging"
	"github.com/khmm12/chats-service/internal/usecase"
)

// chatHandler reads the whole body as the prompt. No size limit is enforced.
func chatHandler(logger *slog.Logger, uc chatUC) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.WarnContext(ctx, "Failed to read chat request body", logging.Error(err))
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		reply, err := uc.Execute(ctx, usecase.ChatCommand{Prompt: string(body)})
		if err != nil {
			logger.ErrorContext(ctx, "Failed to execute chat", logging.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, reply)
	}
}
