package usecase

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	portsm "github.com/khmm12/chats-service/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatUseCase_ReturnsFixedReply(t *testing.T) {
	ctx := t.Context()

	recorder := portsm.NewMockChatRequestRecorder(t)
	uc := NewChatUseCase(newDiscardLogger(), recorder)

	recorder.On("Record", mock.Anything, 5).Return()

	reply, err := uc.Execute(ctx, ChatCommand{Prompt: "hello"})

	require.NoError(t, err)
	require.Equal(t, "Return from Chat client", reply)
}

func TestChatUseCase_IgnoresPromptContent(t *testing.T) {
	ctx := t.Context()

	recorder := portsm.NewMockChatRequestRecorder(t)
	uc := NewChatUseCase(newDiscardLogger(), recorder)

	recorder.On("Record", mock.Anything, mock.Anything).Return()

	for _, prompt := range []string{"", "{not json", strings.Repeat("\x00\xff", 1<<16)} {
		reply, err := uc.Execute(ctx, ChatCommand{Prompt: prompt})

		require.NoError(t, err)
		require.Equal(t, ChatReply, reply)
	}

	recorder.AssertNumberOfCalls(t, "Record", 3)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
