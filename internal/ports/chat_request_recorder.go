package ports

import "context"

type ChatRequestRecorder interface {
	Record(ctx context.Context, promptBytes int)
}
