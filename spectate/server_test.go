package spectate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/lixenwraith/neat-arena/geom"
	"github.com/lixenwraith/neat-arena/sinks"
	"github.com/lixenwraith/neat-arena/world"
)

func TestSpectatorStream(t *testing.T) {
	Convey("Given a running spectator server", t, func() {
		server := NewServer()
		ts := httptest.NewServer(server.Router())
		defer ts.Close()

		Convey("When a client completes the websocket handshake", func() {
			wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
			conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
			So(err, ShouldBeNil)
			defer conn.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusSwitchingProtocols)

			// Registration happens in the upgrade handler; give the
			// server a beat to record the client.
			waitFor(func() bool { return server.ClientCount() == 1 })
			So(server.ClientCount(), ShouldEqual, 1)

			Convey("Then a written frame reaches the client intact", func() {
				agents := []world.Agent{{Pos: geom.Vec2{X: 3, Y: 4}, Team: 1, Health: 90, Shield: 10}}
				So(server.WriteFrame(5, agents, nil), ShouldBeNil)

				conn.SetReadDeadline(time.Now().Add(2 * time.Second))
				_, payload, readErr := conn.ReadMessage()
				So(readErr, ShouldBeNil)

				var f sinks.Frame
				So(json.Unmarshal(payload, &f), ShouldBeNil)
				So(f.Tick, ShouldEqual, 5)
				So(f.Agents, ShouldResemble, []float64{3, 4, 1, 90, 10, 0})
			})

			Convey("And a disconnected client is dropped on the next broadcast", func() {
				conn.Close()
				_ = server.WriteFrame(6, nil, nil)
				_ = server.WriteFrame(7, nil, nil)
				waitFor(func() bool { return server.ClientCount() == 0 })
				So(server.ClientCount(), ShouldEqual, 0)
			})
		})

		Convey("When no generation has completed, /stats is a 404", func() {
			resp, err := http.Get(ts.URL + "/stats")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When stats are published, /stats serves them", func() {
			server.PublishStats(GenerationStats{Generation: 3, BestFitness: 120.5})

			resp, err := http.Get(ts.URL + "/stats")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var stats GenerationStats
			So(json.NewDecoder(resp.Body).Decode(&stats), ShouldBeNil)
			So(stats.Generation, ShouldEqual, 3)
			So(stats.BestFitness, ShouldEqual, 120.5)
		})
	})
}

// waitFor polls cond briefly; broadcasts and registrations race the test
// goroutine, so assertions on client counts need a grace window.
func waitFor(cond func() bool) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}
