package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage(TypeSlotOpened, map[string]int{"slot": 2})
	require.NoError(t, err)
	assert.Equal(t, TypeSlotOpened, msg.Type)
	assert.JSONEq(t, `{"slot":2}`, string(msg.Data))

	errMsg := NewErrorMessage("boom")
	assert.Equal(t, TypeError, errMsg.Type)
	var payload ErrorMessage
	require.NoError(t, json.Unmarshal(errMsg.Data, &payload))
	assert.Equal(t, "boom", payload.Message)
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type frame struct {
	Tick   uint64  `json:"tick"`
	Points []point `json:"points"`
	Note   string  `json:"note,omitempty"`
}

func TestBinaryRoundTrip(t *testing.T) {
	in := frame{Tick: 99, Points: []point{{1.5, -2}, {300, 40}}}

	data, err := EncodeBinary(TypeSnapshot, in)
	require.NoError(t, err)

	var out frame
	typ, err := DecodeBinary(data, &out)
	require.NoError(t, err)
	assert.Equal(t, TypeSnapshot, typ)
	assert.Equal(t, in, out)
}

func TestBinaryUsesJSONNames(t *testing.T) {
	data, err := EncodeBinary(TypeSnapshot, frame{Tick: 1})
	require.NoError(t, err)

	var raw map[string]any
	_, err = DecodeBinary(data, &raw)
	require.NoError(t, err)
	assert.Contains(t, raw, "tick")
	assert.NotContains(t, raw, "note")
}

func TestDecodeBinaryGarbage(t *testing.T) {
	_, err := DecodeBinary([]byte{0xc1}, nil)
	assert.Error(t, err)
}

// runHub starts a hub and returns a stop func that waits for Run to return.
// Stopping twice is safe.
func runHub(t *testing.T) (*Hub, func()) {
	t.Helper()
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()
	stop := func() {
		cancel()
		<-done
	}
	t.Cleanup(stop)
	return h, stop
}

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	h, _ := runHub(t)
	disconnected := make(chan string, 1)
	h.OnDisconnect = func(c *Client) { disconnected <- c.ID }

	a := NewClient("a", h, nil)
	b := NewClient("b", h, nil)
	h.Register <- a
	h.Register <- b
	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, time.Second, time.Millisecond)
	assert.Same(t, b, h.Client("b"))

	h.Broadcast(NewErrorMessage("hello"))
	for _, c := range []*Client{a, b} {
		f := <-c.Send
		assert.False(t, f.Binary)
		var msg Message
		require.NoError(t, json.Unmarshal(f.Data, &msg))
		assert.Equal(t, TypeError, msg.Type)
	}

	h.Unregister <- a
	assert.Equal(t, "a", <-disconnected)
	_, open := <-a.Send
	assert.False(t, open)
	assert.Equal(t, 1, h.ClientCount())
	assert.Nil(t, h.Client("a"))

	// Sending to a closed client is a no-op.
	a.SendBinary([]byte{1})
	a.SendMessage(NewErrorMessage("late"))
}

func TestHubUnregisterUnknown(t *testing.T) {
	h, _ := runHub(t)
	called := make(chan struct{}, 1)
	h.OnDisconnect = func(*Client) { called <- struct{}{} }
	handled := make(chan struct{})
	h.OnMessage = func(*ClientMessage) { close(handled) }

	h.Unregister <- NewClient("ghost", h, nil)
	h.Incoming <- &ClientMessage{Client: NewClient("x", h, nil)}
	<-handled

	select {
	case <-called:
		t.Fatal("OnDisconnect called for a client that never registered")
	default:
	}
}

func TestHubShutdownNotifiesClients(t *testing.T) {
	h, stop := runHub(t)
	c := NewClient("c", h, nil)
	h.Register <- c
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, time.Millisecond)

	stop()

	f, ok := <-c.Send
	require.True(t, ok)
	var msg Message
	require.NoError(t, json.Unmarshal(f.Data, &msg))
	assert.Equal(t, TypeShutdown, msg.Type)
	_, open := <-c.Send
	assert.False(t, open)
	assert.Equal(t, 0, h.ClientCount())

	select {
	case <-h.Done():
	default:
		t.Fatal("Done not closed after Run returned")
	}
}

func TestHubRoutesIncoming(t *testing.T) {
	h, _ := runHub(t)
	got := make(chan string, 1)
	h.OnMessage = func(cm *ClientMessage) { got <- cm.Client.ID + ":" + string(cm.Data) }

	c := NewClient("c", h, nil)
	h.Incoming <- &ClientMessage{Client: c, Data: []byte("ping")}

	assert.Equal(t, "c:ping", <-got)
}

func TestSendBufferFullDrops(t *testing.T) {
	c := NewClient("slow", nil, nil)
	for i := 0; i < cap(c.Send)+10; i++ {
		c.SendBinary([]byte{byte(i)})
	}
	assert.Len(t, c.Send, cap(c.Send))
}
