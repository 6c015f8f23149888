package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonitor_NotifiesOnlyOnTransitions(t *testing.T) {
	m := NewMonitor(false)

	var events []bool
	m.Subscribe(func(online bool) { events = append(events, online) })

	m.SetOnline(false) // no transition
	m.SetOnline(true)
	m.SetOnline(true) // no transition
	m.SetOnline(false)

	assert.Equal(t, []bool{true, false}, events)
	assert.False(t, m.Online())
}

func TestMonitor_UnsubscribeStopsNotifications(t *testing.T) {
	m := NewMonitor(false)

	var count int
	unsubscribe := m.Subscribe(func(bool) { count++ })

	m.SetOnline(true)
	unsubscribe()
	m.SetOnline(false)
	unsubscribe() // second call is harmless

	assert.Equal(t, 1, count)
}

func TestMonitor_SubscriberMayReenterMonitor(t *testing.T) {
	m := NewMonitor(false)

	var observed bool
	m.Subscribe(func(online bool) { observed = m.Online() })

	m.SetOnline(true)
	assert.True(t, observed)
}

func TestMonitor_MultipleSubscribersAllNotified(t *testing.T) {
	m := NewMonitor(false)

	var a, b int
	m.Subscribe(func(bool) { a++ })
	m.Subscribe(func(bool) { b++ })

	m.SetOnline(true)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
