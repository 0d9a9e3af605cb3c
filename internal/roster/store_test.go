package roster

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

// memoryKV is an in-memory stand-in for the Redis snapshot slot.
type memoryKV struct {
	data    map[string]string
	getErr  error
	setErr  error
	setCall int
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.setCall++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func testMembers() []domain.TeamMember {
	return []domain.TeamMember{
		{ID: 1, Name: "Ashurov Javohir", Role: "Volunteer", Bio: "Javohir volunteers.", Image: "/images/team/Ashurov Javohir.JPG", Category: "Volunteers"},
		{ID: 2, Name: "Sanjar", Role: "Finance Manager", Bio: "Sanjar manages finances.", Image: "/logo.png", Category: "Finance Managers"},
	}
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("no snapshot computes defaults and persists them", func(t *testing.T) {
		kv := newMemoryKV()
		store := NewStore(kv, logger, testMembers)

		members, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, testMembers(), members)

		raw, ok := kv.data[SnapshotKey]
		require.True(t, ok)
		var persisted []domain.TeamMember
		require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
		assert.Equal(t, testMembers(), persisted)
	})

	t.Run("valid snapshot wins over defaults wholesale", func(t *testing.T) {
		stored := []domain.TeamMember{
			{ID: 7, Name: "Nurbek Salomov Choriyevich", Role: "Content Maker", Bio: "Nurbek produces content.", Image: "/images/team/Nurbek Salomov Choriyevich.jpg", Category: "Content Makers"},
		}
		raw, err := json.Marshal(stored)
		require.NoError(t, err)

		kv := newMemoryKV()
		kv.data[SnapshotKey] = string(raw)
		store := NewStore(kv, logger, testMembers)

		members, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, members)
		assert.Zero(t, kv.setCall)
	})

	t.Run("corrupt snapshot falls back without re-storing", func(t *testing.T) {
		cases := map[string]string{
			"not json":      "{nope",
			"wrong shape":   `{"teamMembers": []}`,
			"empty list":    `[]`,
			"missing id":    `[{"name":"A","role":"R","bio":"B","image":"/logo.png","category":"C"}]`,
			"duplicate ids": `[{"id":1,"name":"A","role":"R","bio":"B","image":"/logo.png","category":"C"},{"id":1,"name":"D","role":"R","bio":"B","image":"/logo.png","category":"C"}]`,
			"blank name":    `[{"id":1,"name":"","role":"R","bio":"B","image":"/logo.png","category":"C"}]`,
		}
		for name, raw := range cases {
			t.Run(name, func(t *testing.T) {
				kv := newMemoryKV()
				kv.data[SnapshotKey] = raw
				store := NewStore(kv, logger, testMembers)

				members, err := store.Load(ctx)
				require.NoError(t, err)
				assert.Equal(t, testMembers(), members)
				assert.Zero(t, kv.setCall)
				assert.Equal(t, raw, kv.data[SnapshotKey])
			})
		}
	})

	t.Run("read failure degrades to defaults without persisting", func(t *testing.T) {
		kv := newMemoryKV()
		kv.getErr = errors.New("connection refused")
		store := NewStore(kv, logger, testMembers)

		members, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, testMembers(), members)
		assert.Zero(t, kv.setCall)
	})
}

func TestStore_UpdatePhoto(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("known id replaces the image and rewrites the snapshot", func(t *testing.T) {
		kv := newMemoryKV()
		store := NewStore(kv, logger, testMembers)
		before, err := store.Load(ctx)
		require.NoError(t, err)

		updated := store.UpdatePhoto(ctx, 2, "/images/team/123_Sanjar.jpg")

		require.Len(t, updated, 2)
		assert.Equal(t, "/images/team/123_Sanjar.jpg", updated[1].Image)
		assert.Equal(t, "/logo.png", before[1].Image, "caller-held slice must keep the old view")

		var persisted []domain.TeamMember
		require.NoError(t, json.Unmarshal([]byte(kv.data[SnapshotKey]), &persisted))
		assert.Equal(t, updated, persisted)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		kv := newMemoryKV()
		store := NewStore(kv, logger, testMembers)
		_, err := store.Load(ctx)
		require.NoError(t, err)
		writesAfterLoad := kv.setCall

		members := store.UpdatePhoto(ctx, 99, "/images/team/ghost.jpg")

		assert.Equal(t, testMembers(), members)
		assert.Equal(t, writesAfterLoad, kv.setCall)
	})

	t.Run("persist failure keeps the in-memory update", func(t *testing.T) {
		kv := newMemoryKV()
		store := NewStore(kv, logger, testMembers)
		_, err := store.Load(ctx)
		require.NoError(t, err)
		kv.setErr = errors.New("write timeout")

		updated := store.UpdatePhoto(ctx, 1, "/images/team/new.jpg")

		assert.Equal(t, "/images/team/new.jpg", updated[0].Image)
		assert.Equal(t, "/images/team/new.jpg", store.Members()[0].Image)
	})
}

func TestStore_Members_ReturnsCopy(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, zap.NewNop(), testMembers)
	_, err := store.Load(context.Background())
	require.NoError(t, err)

	members := store.Members()
	members[0].Name = "mutated"

	assert.Equal(t, "Ashurov Javohir", store.Members()[0].Name)
}

func TestStore_DefaultRosterLifecycle(t *testing.T) {
	// Full pipeline: computed roster persists on first load, a photo update
	// sticks, and a later session reads back the amended snapshot.
	ctx := context.Background()
	logger := zap.NewNop()
	kv := newMemoryKV()
	defaults := func() []domain.TeamMember {
		return BuildRoster(testResolver(), DefaultSeeds())
	}

	first := NewStore(kv, logger, defaults)
	initial, err := first.Load(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, initial)
	target := initial[0]
	first.UpdatePhoto(ctx, target.ID, "/images/team/1700000000000_portrait.jpg")

	second := NewStore(kv, logger, defaults)
	members, err := second.Load(ctx)
	require.NoError(t, err)

	require.Equal(t, len(initial), len(members))
	assert.Equal(t, "/images/team/1700000000000_portrait.jpg", members[0].Image)
	assert.Equal(t, target.Name, members[0].Name)
	for i := 1; i < len(initial); i++ {
		assert.Equal(t, initial[i], members[i])
	}
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	// One process updates a photo; a fresh store over the same slot sees it.
	ctx := context.Background()
	logger := zap.NewNop()
	kv := newMemoryKV()

	first := NewStore(kv, logger, testMembers)
	_, err := first.Load(ctx)
	require.NoError(t, err)
	first.UpdatePhoto(ctx, 1, "/images/team/987_replaced.png")

	second := NewStore(kv, logger, testMembers)
	members, err := second.Load(ctx)
	require.NoError(t, err)

	require.Len(t, members, 2)
	assert.Equal(t, "/images/team/987_replaced.png", members[0].Image)
	assert.Equal(t, "/logo.png", members[1].Image)
}
