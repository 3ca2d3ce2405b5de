package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
)

func TestChatLogRepo(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatLogRepo(db)
	ctx := context.Background()

	session := mustCreateSession(t, db, &model.Session{ID: uuid.NewString(), Platform: model.PlatformCliq})

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		l := &model.ChatLog{
			ID:        uuid.NewString(),
			SessionID: &session.ID,
			Prompt:    fmt.Sprintf("prompt %d", i),
			Response:  fmt.Sprintf("response %d", i),
			Platform:  model.PlatformCliq,
		}
		require.NoError(t, repo.Create(ctx, l))
		require.NoError(t, db.Model(&model.ChatLog{}).Where("id = ?", l.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	t.Run("newest first, bounded by limit", func(t *testing.T) {
		got, err := repo.ListBySession(ctx, session.ID, 3)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "prompt 4", got[0].Prompt)
		assert.Equal(t, "prompt 3", got[1].Prompt)
		assert.Equal(t, "prompt 2", got[2].Prompt)
	})

	t.Run("entry without a session is allowed", func(t *testing.T) {
		l := &model.ChatLog{
			ID:       uuid.NewString(),
			Prompt:   "standalone question",
			Response: "standalone answer",
		}
		require.NoError(t, repo.Create(ctx, l))

		var got model.ChatLog
		require.NoError(t, db.Where("id = ?", l.ID).First(&got).Error)
		assert.Nil(t, got.SessionID)
	})

	t.Run("unknown session yields empty history", func(t *testing.T) {
		got, err := repo.ListBySession(ctx, uuid.NewString(), 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
