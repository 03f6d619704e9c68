package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"ai-datachat-be/internal/repository/contract"
	"ai-datachat-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "conversation:"
const conversationTTL = 24 * time.Hour

// ConversationRepository is the external key-value backing for conversation
// context. RPUSH+LTRIM run in one pipeline so the append-then-truncate pair
// is serialized per key by Redis itself; Redis single-threads commands per
// connection, which satisfies the per-key ordering contract.
type ConversationRepository struct {
	client *redis.Client
}

func NewConversationRepository(client *redis.Client) *ConversationRepository {
	return &ConversationRepository{client: client}
}

func (r *ConversationRepository) Get(ctx context.Context, datasetId string) []store.Turn {
	values, err := r.client.LRange(ctx, keyPrefix+datasetId, 0, -1).Result()
	if err != nil {
		// A missing or unreachable key reads as empty context
		return []store.Turn{}
	}

	turns := make([]store.Turn, 0, len(values))
	for _, v := range values {
		var turn store.Turn
		if err := json.Unmarshal([]byte(v), &turn); err == nil {
			turns = append(turns, turn)
		}
	}
	return turns
}

func (r *ConversationRepository) Append(ctx context.Context, datasetId string, turns ...store.Turn) {
	if len(turns) == 0 {
		return
	}

	encoded := make([]interface{}, 0, len(turns))
	for _, turn := range turns {
		data, err := json.Marshal(turn)
		if err != nil {
			continue
		}
		encoded = append(encoded, data)
	}
	if len(encoded) == 0 {
		return
	}

	key := keyPrefix + datasetId
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, encoded...)
	pipe.LTrim(ctx, key, int64(-contract.MaxTurns), -1)
	pipe.Expire(ctx, key, conversationTTL)
	_, _ = pipe.Exec(ctx)
}

func (r *ConversationRepository) Clear(ctx context.Context, datasetId string) {
	r.client.Del(ctx, keyPrefix+datasetId)
}
