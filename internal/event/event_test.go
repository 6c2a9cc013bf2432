// internal/event/event_test.go
package event

import "testing"

type captured struct {
	got []Event
}

func (c *captured) OnEvent(e Event) {
	c.got = append(c.got, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &captured{}
	b := &captured{}
	d.Subscribe(EnemyDefeated, a)
	d.Subscribe(EnemyDefeated, b)
	d.Subscribe(GameOver, a)

	d.Dispatch(Event{Type: EnemyDefeated, Data: 42})

	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("Expected one event each, got %d and %d", len(a.got), len(b.got))
	}
	if a.got[0].Data != 42 {
		t.Errorf("Payload lost: %+v", a.got[0])
	}
}

func TestDispatchToUnsubscribedTypeIsSilent(t *testing.T) {
	d := NewDispatcher()
	a := &captured{}
	d.Subscribe(GameOver, a)

	d.Dispatch(Event{Type: LevelAdvanced, Data: 2})
	if len(a.got) != 0 {
		t.Errorf("Listener got an event it never subscribed to: %+v", a.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &captured{}
	d.Subscribe(CoinCollected, a)
	d.Unsubscribe(CoinCollected, a)

	d.Dispatch(Event{Type: CoinCollected})
	if len(a.got) != 0 {
		t.Errorf("Unsubscribed listener still got events: %+v", a.got)
	}
}
