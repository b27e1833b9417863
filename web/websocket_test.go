package web

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsocketUpdates(t *testing.T) {
	view, plots := testPages(t)
	srv := httptest.NewServer(testRouter(view, plots))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	// one slider update pushes back a frame with the new activations
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("InputA 0.8")))
	var f Frame
	require.NoError(t, conn.ReadJSON(&f))
	assert.InDelta(t, 0.5987, f.H1, 1e-4)
	assert.InDelta(t, 0.6454, f.Out, 1e-4)
	assert.Equal(t, 2, f.Step)
	assert.NotZero(t, f.Ts)

	// malformed frames and unknown fields are skipped without dropping the
	// connection or recomputing
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("garbage")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("Nope 1")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("InputB 0.2")))
	require.NoError(t, conn.ReadJSON(&f))
	assert.Equal(t, 3, f.Step, "bad frames must not recompute")
	assert.InDelta(t, 0.6225, f.H1, 1e-4)

	view.net.Lock()
	a, _ := view.net.Params.Get("InputA")
	b, _ := view.net.Params.Get("InputB")
	view.net.Unlock()
	assert.Equal(t, 0.8, a)
	assert.Equal(t, 0.2, b)
}
