package ports

import "context"

// RemoteModel is the optional hosted language model. A single bounded attempt
// is made per question; any error means the local rule engine answers instead.
type RemoteModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SnapshotSource produces the textual statistics snapshot the assistant
// answers over.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (string, error)
}

// SnapshotCache holds a rendered snapshot for a short TTL so repeated chat
// requests do not re-aggregate the dataset.
type SnapshotCache interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, snapshot string)
}

// AssistantService answers free-text questions about the dataset. Answer is
// total: it returns a non-empty string for every query and snapshot,
// including empty ones.
type AssistantService interface {
	Answer(ctx context.Context, query, snapshot string) string
}
