package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banglabet-backend/internal/models"
)

type wsFrame struct {
	Type      string          `json:"type"`
	ID        string          `json:"id"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

func readFrame(t *testing.T, conn *websocket.Conn) wsFrame {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame wsFrame
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func TestWebSocketWelcomeAndAck(t *testing.T) {
	router, _, _ := newTestAPI(t)
	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	welcome := readFrame(t, conn)
	assert.Equal(t, "welcome", welcome.Type)
	assert.NotZero(t, welcome.Timestamp)

	// Any inbound message, even one that is not JSON, gets an ack with a
	// fresh correlation id.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello?")))
	ack := readFrame(t, conn)
	assert.Equal(t, "ack", ack.Type)
	assert.NotEmpty(t, ack.ID)
	assert.NotZero(t, ack.Timestamp)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))
	second := readFrame(t, conn)
	assert.Equal(t, "ack", second.Type)
	assert.NotEqual(t, ack.ID, second.ID)
}

func TestWebSocketBroadcastScope(t *testing.T) {
	router, store, ws := newTestAPI(t)
	server := httptest.NewServer(router)
	defer server.Close()

	live := store.CreateSportMatch(&models.SportMatch{
		SportType: "cricket",
		HomeTeam:  "Dhaka",
		AwayTeam:  "Khulna",
		IsLive:    true,
		Score:     &models.MatchScore{Home: 45, Away: 0},
	})
	hidden := store.CreateSportMatch(&models.SportMatch{
		SportType: "football",
		HomeTeam:  "Abahani",
		AwayTeam:  "Mohammedan",
		IsLive:    false,
	})

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	welcome := readFrame(t, conn)
	require.Equal(t, "welcome", welcome.Type)

	// Drive a broadcast cycle directly instead of waiting on the ticker.
	ws.BroadcastLiveMatches(store.LiveMatchSnapshots())

	frame := readFrame(t, conn)
	require.Equal(t, "live_matches", frame.Type)

	var snapshots []models.LiveMatchSnapshot
	require.NoError(t, json.Unmarshal(frame.Data, &snapshots))
	require.Len(t, snapshots, 1)
	assert.Equal(t, live.ID, snapshots[0].ID)
	assert.NotEqual(t, hidden.ID, snapshots[0].ID)
	assert.Equal(t, 45, snapshots[0].Score.Home)
}
