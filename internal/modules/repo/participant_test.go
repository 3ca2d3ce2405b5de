package repo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
)

func TestParticipantRepo_Replace(t *testing.T) {
	db := newTestDB(t)
	repo := NewParticipantRepo(db)
	ctx := context.Background()

	session := mustCreateSession(t, db, &model.Session{ID: uuid.NewString(), Platform: model.PlatformZoom})

	makeParticipant := func(name string) model.Participant {
		return model.Participant{
			ID:        uuid.NewString(),
			SessionID: session.ID,
			Name:      name,
			Email:     name + "@example.com",
			Role:      model.RoleParticipant,
		}
	}

	t.Run("replaces the full list", func(t *testing.T) {
		require.NoError(t, repo.Replace(ctx, session.ID, []model.Participant{
			makeParticipant("ada"), makeParticipant("grace"),
		}))

		require.NoError(t, repo.Replace(ctx, session.ID, []model.Participant{
			makeParticipant("linus"),
		}))

		got, err := repo.ListBySession(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "linus", got[0].Name)
	})

	t.Run("failed replacement leaves the prior set intact", func(t *testing.T) {
		require.NoError(t, repo.Replace(ctx, session.ID, []model.Participant{
			makeParticipant("ada"), makeParticipant("grace"),
		}))

		// Two rows sharing a primary key force the insert to fail after the
		// delete already ran inside the transaction.
		dup := makeParticipant("dup")
		err := repo.Replace(ctx, session.ID, []model.Participant{dup, dup})
		require.Error(t, err)

		got, err := repo.ListBySession(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		names := []string{got[0].Name, got[1].Name}
		assert.ElementsMatch(t, []string{"ada", "grace"}, names)
	})

	t.Run("empty list clears the session", func(t *testing.T) {
		require.NoError(t, repo.Replace(ctx, session.ID, nil))
		got, err := repo.ListBySession(ctx, session.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestParticipantRepo_Add(t *testing.T) {
	db := newTestDB(t)
	repo := NewParticipantRepo(db)
	ctx := context.Background()

	session := mustCreateSession(t, db, &model.Session{ID: uuid.NewString(), Platform: model.PlatformTeams})
	other := mustCreateSession(t, db, &model.Session{ID: uuid.NewString(), Platform: model.PlatformTeams})

	require.NoError(t, repo.Add(ctx, &model.Participant{
		ID: uuid.NewString(), SessionID: session.ID, Name: "Ada", Email: "ada@example.com", Role: model.RoleOrganizer,
	}))
	require.NoError(t, repo.Add(ctx, &model.Participant{
		ID: uuid.NewString(), SessionID: other.ID, Name: "Grace", Email: "grace@example.com", Role: model.RoleObserver,
	}))

	got, err := repo.ListBySession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ada", got[0].Name)
	assert.Equal(t, model.RoleOrganizer, got[0].Role)
}

func TestParticipantRepo_InvalidRoleRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewParticipantRepo(db)

	session := mustCreateSession(t, db, &model.Session{ID: uuid.NewString(), Platform: model.PlatformGmeet})
	err := repo.Add(context.Background(), &model.Participant{
		ID: uuid.NewString(), SessionID: session.ID, Name: "Eve", Email: "eve@example.com", Role: "lurker",
	})
	assert.Error(t, err)
}
