package usecase

import (
	"context"
	"log/slog"

	"github.com/khmm12/chats-service/internal/ports"
)

// ChatReply is returned for every prompt, whatever its content.
const ChatReply = "Return from Chat client"

type ChatUseCase struct {
	logger   *slog.Logger
	recorder ports.ChatRequestRecorder
}

func NewChatUseCase(logger *slog.Logger, recorder ports.ChatRequestRecorder) *ChatUseCase {
	return &ChatUseCase{
		logger:   logger,
		recorder: recorder,
	}
}

type ChatCommand struct {
	Prompt string
}

func (u *ChatUseCase) Execute(ctx context.Context, cmd ChatCommand) (string, error) {
	u.logger.DebugContext(ctx, "Received chat prompt", slog.Int("prompt_bytes", len(cmd.Prompt)))

	u.recorder.Record(ctx, len(cmd.Prompt))

	return ChatReply, nil
}
