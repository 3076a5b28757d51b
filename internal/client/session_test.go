package client

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	assert.Nil(t, s.Current())

	var seen []*SessionUser
	unsubscribe := s.Subscribe(func(u *SessionUser) { seen = append(seen, u) })

	s.Set(SessionUser{ID: 7, Email: "t@x.io", Token: "tok"})
	require.NotNil(t, s.Current())
	assert.Equal(t, uint(7), s.Current().ID)

	s.Clear()
	assert.Nil(t, s.Current())
	s.Clear() // already empty, no notification

	require.Len(t, seen, 2)
	assert.Equal(t, "t@x.io", seen[0].Email)
	assert.Nil(t, seen[1])

	unsubscribe()
	s.Set(SessionUser{ID: 8})
	assert.Len(t, seen, 2)
}

func TestSessionCurrentIsACopy(t *testing.T) {
	s := NewSession()
	s.Set(SessionUser{ID: 1, Token: "a"})
	u := s.Current()
	u.Token = "changed"
	assert.Equal(t, "a", s.Current().Token)
}

func TestSessionObserverMayReadSession(t *testing.T) {
	s := NewSession()
	var got *SessionUser
	s.Subscribe(func(*SessionUser) { got = s.Current() })
	s.Set(SessionUser{ID: 3})
	require.NotNil(t, got)
	assert.Equal(t, uint(3), got.ID)
}

func TestSessionConcurrentUse(t *testing.T) {
	s := NewSession()
	s.Subscribe(func(*SessionUser) {})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				s.Set(SessionUser{ID: uint(i + 1)})
			} else {
				s.Clear()
			}
			_ = s.Current()
		}(i)
	}
	wg.Wait()
}
