package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribersAndChannel(t *testing.T) {
	bus := NewEventBus()

	var seen []Event
	bus.Subscribe("card_created", func(e Event) { seen = append(seen, e) })

	bus.Publish("card_created", 7, map[string]string{"title": "hello"})
	bus.Publish("card_deleted", 7, uint64(3))

	require.Len(t, seen, 1)
	assert.Equal(t, "card_created", seen[0].Event)
	assert.EqualValues(t, 7, seen[0].BoardID)

	ch := bus.SubscribeCh()
	first := <-ch
	second := <-ch
	assert.Equal(t, "card_created", first.Event)
	assert.Equal(t, "card_deleted", second.Event)
}

func TestPublishDropsWhenChannelFull(t *testing.T) {
	bus := NewEventBus()
	for i := 0; i < 200; i++ {
		bus.Publish("card_updated", 1, i)
	}
	// buffered capacity only; the rest were dropped rather than blocking
	assert.Len(t, bus.events, 100)
}
