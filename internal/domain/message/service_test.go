package message_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caresma-server/internal/domain/message"
	"caresma-server/internal/utils/platformerrors"
)

// fakeRepository keeps messages in memory, ordered by insertion time.
type fakeRepository struct {
	messages []*message.Message
	clock    time.Time
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		clock: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (r *fakeRepository) Create(_ context.Context, msg *message.Message) error {
	r.clock = r.clock.Add(time.Second)
	stored := *msg
	stored.ID = uuid.New()
	stored.CreatedAt = r.clock
	r.messages = append(r.messages, &stored)

	msg.ID = stored.ID
	msg.CreatedAt = stored.CreatedAt
	return nil
}

func (r *fakeRepository) FindByThreadID(_ context.Context, threadID uuid.UUID, limit int) ([]*message.Message, error) {
	var result []*message.Message
	for _, m := range r.messages {
		if m.ThreadID == threadID {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeRepository) CountByThreadID(_ context.Context, threadID uuid.UUID) (message.Count, error) {
	var count message.Count
	for _, m := range r.messages {
		if m.ThreadID != threadID {
			continue
		}
		count.Total++
		switch m.Role {
		case message.RoleUser:
			count.UserMessages++
		case message.RoleAssistant:
			count.AssistantMessages++
		}
	}
	return count, nil
}

func TestCreateMessage(t *testing.T) {
	repo := newFakeRepository()
	svc := message.NewService(repo, zerolog.Nop())
	threadID := uuid.New()

	msg, err := svc.CreateMessage(context.Background(), threadID, message.RoleUser, "hello")
	require.NoError(t, err)
	require.NotNil(t, msg)

	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, threadID, msg.ThreadID)
	assert.Equal(t, message.RoleUser, msg.Role)
	assert.Equal(t, "hello", msg.Content)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestCreateMessage_InvalidRole(t *testing.T) {
	tests := []struct {
		name string
		role message.Role
	}{
		{"system role", "system"},
		{"empty role", ""},
		{"capitalized", "User"},
		{"padded", " user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			svc := message.NewService(repo, zerolog.Nop())

			msg, err := svc.CreateMessage(context.Background(), uuid.New(), tt.role, "hello")
			require.Error(t, err)
			assert.Nil(t, msg)
			assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

			// Validation failures must not leave partial writes behind.
			assert.Empty(t, repo.messages)
		})
	}
}

func TestGetThreadMessages_Ordering(t *testing.T) {
	repo := newFakeRepository()
	svc := message.NewService(repo, zerolog.Nop())
	threadID := uuid.New()
	ctx := context.Background()

	contents := []string{"first", "second", "third", "fourth"}
	roles := []message.Role{message.RoleUser, message.RoleAssistant, message.RoleUser, message.RoleAssistant}
	for i, content := range contents {
		_, err := svc.CreateMessage(ctx, threadID, roles[i], content)
		require.NoError(t, err)
	}

	msgs, err := svc.GetThreadMessages(ctx, threadID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, len(contents))
	for i, m := range msgs {
		assert.Equal(t, contents[i], m.Content)
		assert.Equal(t, roles[i], m.Role)
	}
}

func TestGetThreadMessages_DefaultLimit(t *testing.T) {
	repo := newFakeRepository()
	svc := message.NewService(repo, zerolog.Nop())
	threadID := uuid.New()
	ctx := context.Background()

	for i := 0; i < message.DefaultListLimit+10; i++ {
		_, err := svc.CreateMessage(ctx, threadID, message.RoleUser, "m")
		require.NoError(t, err)
	}

	msgs, err := svc.GetThreadMessages(ctx, threadID, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, message.DefaultListLimit)
}

func TestGetThreadMessages_ExplicitLimit(t *testing.T) {
	repo := newFakeRepository()
	svc := message.NewService(repo, zerolog.Nop())
	threadID := uuid.New()
	ctx := context.Background()

	for _, content := range []string{"a", "b", "c", "d", "e"} {
		_, err := svc.CreateMessage(ctx, threadID, message.RoleUser, content)
		require.NoError(t, err)
	}

	msgs, err := svc.GetThreadMessages(ctx, threadID, 3)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "a", msgs[0].Content)
	assert.Equal(t, "c", msgs[2].Content)
}

func TestGetThreadMessages_UnknownThread(t *testing.T) {
	repo := newFakeRepository()
	svc := message.NewService(repo, zerolog.Nop())

	msgs, err := svc.GetThreadMessages(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestGetThreadMessages_ThreadIsolation(t *testing.T) {
	repo := newFakeRepository()
	svc := message.NewService(repo, zerolog.Nop())
	ctx := context.Background()
	threadA := uuid.New()
	threadB := uuid.New()

	_, err := svc.CreateMessage(ctx, threadA, message.RoleUser, "for a")
	require.NoError(t, err)
	_, err = svc.CreateMessage(ctx, threadB, message.RoleUser, "for b")
	require.NoError(t, err)

	msgs, err := svc.GetThreadMessages(ctx, threadA, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "for a", msgs[0].Content)
}

func TestGetMessageCount(t *testing.T) {
	repo := newFakeRepository()
	svc := message.NewService(repo, zerolog.Nop())
	threadID := uuid.New()
	ctx := context.Background()

	_, err := svc.CreateMessage(ctx, threadID, message.RoleUser, "hello")
	require.NoError(t, err)
	_, err = svc.CreateMessage(ctx, threadID, message.RoleAssistant, "hi there")
	require.NoError(t, err)
	_, err = svc.CreateMessage(ctx, threadID, message.RoleUser, "how are you")
	require.NoError(t, err)

	count, err := svc.GetMessageCount(ctx, threadID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count.Total)
	assert.Equal(t, int64(2), count.UserMessages)
	assert.Equal(t, int64(1), count.AssistantMessages)
	assert.Equal(t, count.Total, count.UserMessages+count.AssistantMessages)
}

func TestGetMessageCount_EmptyThread(t *testing.T) {
	repo := newFakeRepository()
	svc := message.NewService(repo, zerolog.Nop())

	count, err := svc.GetMessageCount(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Total)
	assert.Equal(t, int64(0), count.UserMessages)
	assert.Equal(t, int64(0), count.AssistantMessages)
}

func TestValidateRole(t *testing.T) {
	assert.True(t, message.ValidateRole("user"))
	assert.True(t, message.ValidateRole("assistant"))
	assert.False(t, message.ValidateRole("system"))
	assert.False(t, message.ValidateRole("tool"))
	assert.False(t, message.ValidateRole(""))
}
