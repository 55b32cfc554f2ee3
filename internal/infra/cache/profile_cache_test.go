package cache

import (
	"sync"
	"testing"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() entity.Profile {
	return entity.Profile{
		UserID:           uuid.New(),
		Name:             "Ana",
		SocialLinksOrder: entity.DefaultLinksOrder,
		Habilities:       []string{"Go"},
	}
}

func TestProfileCache_EmptyUntilReplace(t *testing.T) {
	c := NewProfileCache()

	_, ok := c.Get()
	assert.False(t, ok)

	p := seeded()
	view := c.Replace(p)

	got, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, p, got)
	assert.Equal(t, p.UserID, c.Owner())
	assert.Equal(t, view, c.View())
}

func TestProfileCache_PatchReturnsPrevious(t *testing.T) {
	c := NewProfileCache()
	p := seeded()
	c.Replace(p)

	previous, view := c.Patch(entity.ProfilePatch{Name: entity.Ptr("Bia")})

	assert.Equal(t, p, previous)
	assert.Equal(t, "Bia", view.Profile.Name)
	got, _ := c.Get()
	assert.Equal(t, "Bia", got.Name)
}

func TestProfileCache_RestoreOnlyListedFields(t *testing.T) {
	c := NewProfileCache()
	c.Replace(seeded())

	previous, _ := c.Patch(entity.ProfilePatch{Name: entity.Ptr("Bia")})
	c.Patch(entity.ProfilePatch{Location: entity.Ptr("Recife")})

	view := c.Restore(previous, []entity.Field{entity.FieldName})

	assert.Equal(t, "Ana", view.Profile.Name)
	assert.Equal(t, "Recife", view.Profile.Location)
}

func TestProfileCache_ReturnsCopies(t *testing.T) {
	c := NewProfileCache()
	c.Replace(seeded())

	got, _ := c.Get()
	got.Habilities[0] = "mutated"
	got.SocialLinksOrder[0] = entity.LinkTwitter

	again, _ := c.Get()
	assert.Equal(t, "Go", again.Habilities[0])
	assert.Equal(t, entity.LinkLinkedIn, again.SocialLinksOrder[0])
}

func TestProfileCache_NotificationFollowsSnapshot(t *testing.T) {
	c := NewProfileCache()
	view := c.Replace(entity.Profile{})
	assert.Contains(t, view.Notification.MissingFields, "habilidades")

	_, view = c.Patch(entity.ProfilePatch{Habilities: entity.Ptr([]string{"React"})})
	assert.NotContains(t, view.Notification.MissingFields, "habilidades")
}

func TestProfileCache_Reset(t *testing.T) {
	c := NewProfileCache()
	c.Replace(seeded())
	c.Reset()

	_, ok := c.Get()
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, c.Owner())
}

func TestProfileCache_ConcurrentPatches(t *testing.T) {
	c := NewProfileCache()
	c.Replace(entity.Profile{})

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Patch(entity.ProfilePatch{Age: entity.Ptr(n)})
			_ = c.View()
		}(i)
	}
	wg.Wait()

	got, _ := c.Get()
	assert.Positive(t, got.Age)
}
