package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPosition ComponentID = iota
	testVelocity
	testHealth
)

type testComp struct{ V int }

func TestEntityManager_AddVisibleOnlyAfterFlush(t *testing.T) {
	m := NewEntityManager()
	e := NewEntity().AddComponent(testPosition, &testComp{})
	e.AddTag("player")

	m.Add(e)
	require.Empty(t, m.Query(testPosition))
	require.Empty(t, m.QueryByTag("player"))

	added, removed := m.Flush()
	assert.Equal(t, 1, added)
	assert.Equal(t, 0, removed)
	require.Equal(t, []*Entity{e}, m.Query(testPosition))
	require.Equal(t, []*Entity{e}, m.QueryByTag("player"))
}

func TestEntityManager_RemoveInvisibleOnlyAfterFlush(t *testing.T) {
	m := NewEntityManager()
	e := NewEntity().AddComponent(testPosition, &testComp{})
	e.AddTag("obstacle")
	m.Add(e)
	m.Flush()

	m.Remove(e)
	require.Len(t, m.Query(testPosition), 1)

	_, removed := m.Flush()
	assert.Equal(t, 1, removed)
	assert.Empty(t, m.Query(testPosition))
	assert.Empty(t, m.QueryByTag("obstacle"))
	assert.Nil(t, m.Get(e.ID))
}

func TestEntityManager_PendingDestroyCollectedOnFlush(t *testing.T) {
	m := NewEntityManager()
	a := NewEntity().AddComponent(testPosition, &testComp{V: 1})
	b := NewEntity().AddComponent(testPosition, &testComp{V: 2})
	a.AddTag("collectible")
	b.AddTag("collectible")
	m.Add(a)
	m.Add(b)
	m.Flush()

	a.Destroy()
	// hidden from component queries immediately, still stored until flush
	assert.Equal(t, []*Entity{b}, m.Query(testPosition))
	assert.Equal(t, 2, m.Len())

	_, removed := m.Flush()
	assert.Equal(t, 1, removed)
	assert.Equal(t, []*Entity{b}, m.QueryByTag("collectible"))
	assert.Equal(t, 1, m.Len())
}

func TestEntityManager_QueryRequiresAllKinds(t *testing.T) {
	m := NewEntityManager()
	full := NewEntity().
		AddComponent(testPosition, &testComp{}).
		AddComponent(testVelocity, &testComp{})
	partial := NewEntity().AddComponent(testPosition, &testComp{})
	inactive := NewEntity().
		AddComponent(testPosition, &testComp{}).
		AddComponent(testVelocity, &testComp{})
	inactive.Active = false

	for _, e := range []*Entity{full, partial, inactive} {
		m.Add(e)
	}
	m.Flush()

	got := m.Query(testPosition, testVelocity)
	require.Equal(t, []*Entity{full}, got)
	for _, e := range got {
		assert.True(t, e.HasComponents(testPosition, testVelocity))
		assert.False(t, e.PendingDestroy)
	}

	assert.Equal(t, []*Entity{full, partial}, m.Query(testPosition))
}

func TestEntityManager_UnknownKindIsEmpty(t *testing.T) {
	m := NewEntityManager()
	m.Add(NewEntity().AddComponent(testPosition, &testComp{}))
	m.Flush()

	assert.Empty(t, m.Query(ComponentID(MaxComponents)))
	assert.Empty(t, m.Query(testHealth))
	assert.Empty(t, m.QueryByTag("nope"))
}

func TestEntityManager_QueryIsSnapshot(t *testing.T) {
	m := NewEntityManager()
	e := NewEntity().AddComponent(testPosition, &testComp{})
	m.Add(e)
	m.Flush()

	snapshot := m.Query(testPosition)
	m.Add(NewEntity().AddComponent(testPosition, &testComp{}))
	m.Flush()

	assert.Len(t, snapshot, 1)
	assert.Len(t, m.Query(testPosition), 2)
}

func TestEntityManager_TagEntityAfterInsert(t *testing.T) {
	m := NewEntityManager()
	e := NewEntity()
	m.Add(e)
	m.Flush()

	m.TagEntity(e, "streetart")
	m.TagEntity(e, "streetart")
	assert.Equal(t, []*Entity{e}, m.QueryByTag("streetart"))
	assert.Same(t, e, m.First("streetart"))
}

func TestEntity_LastWriteWins(t *testing.T) {
	e := NewEntity()
	e.AddComponent(testHealth, &testComp{V: 1})
	e.AddComponent(testHealth, &testComp{V: 7})

	comp, ok := e.GetComponent(testHealth)
	require.True(t, ok)
	assert.Equal(t, 7, comp.(*testComp).V)

	e.RemoveComponent(testHealth)
	assert.False(t, e.HasComponent(testHealth))
	_, ok = e.GetComponent(testHealth)
	assert.False(t, ok)
}

func TestEntityManager_Clear(t *testing.T) {
	m := NewEntityManager()
	m.Add(NewEntity())
	m.Flush()
	m.Add(NewEntity())

	m.Clear()
	adds, removes := m.Pending()
	assert.Zero(t, adds)
	assert.Zero(t, removes)
	assert.Zero(t, m.Len())
}
