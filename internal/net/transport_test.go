package net

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
	"github.com/josefdc/pixel-alchemy-studio/internal/raster"
	"github.com/josefdc/pixel-alchemy-studio/internal/state"
)

// startTestHost serves a hub on an ephemeral port and returns its host:port.
func startTestHost(t *testing.T, cb HostCallbacks) string {
	t.Helper()
	hub := NewHub()
	srv := httptest.NewServer(hub.Handler(cb))
	t.Cleanup(srv.Close)
	return strings.TrimPrefix(srv.URL, "http://")
}

func testShape(id string) state.Shape {
	return state.Shape{
		ID:      id,
		OwnerID: "site-a",
		Kind:    raster.LineBresenham,
		Points:  []geom.Point{{X: 0, Y: 0}, {X: 9, Y: 9}},
		Color:   "#000000",
		Lamport: 1,
		Site:    "site-a",
		Time:    time.Now(),
	}
}

func TestClientReceivesSnapshotOnConnect(t *testing.T) {
	addr := startTestHost(t, HostCallbacks{
		Snapshot: func() []state.Shape {
			return []state.Shape{testShape("shape-1"), testShape("shape-2")}
		},
	})

	client, err := Dial(addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	got := make(chan []state.Shape, 1)
	go client.Listen(ClientCallbacks{
		OnSnapshot: func(shapes []state.Shape) { got <- shapes },
	})

	select {
	case shapes := <-got:
		if len(shapes) != 2 || shapes[0].ID != "shape-1" {
			t.Errorf("snapshot = %v", shapes)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no snapshot within 3s")
	}
}

func TestHostRelaysShapeToOtherClients(t *testing.T) {
	var mu sync.Mutex
	var hostSaw []string

	addr := startTestHost(t, HostCallbacks{
		Snapshot: func() []state.Shape { return nil },
		OnShape: func(s state.Shape) {
			mu.Lock()
			hostSaw = append(hostSaw, s.ID)
			mu.Unlock()
		},
	})

	sender, err := Dial(addr)
	if err != nil {
		t.Fatalf("Dial sender: %v", err)
	}
	defer sender.Close()
	go sender.Listen(ClientCallbacks{})

	receiver, err := Dial(addr)
	if err != nil {
		t.Fatalf("Dial receiver: %v", err)
	}
	defer receiver.Close()

	relayed := make(chan state.Shape, 1)
	go receiver.Listen(ClientCallbacks{
		OnShape: func(s state.Shape) { relayed <- s },
	})

	// Give the receiver a moment to finish its handshake before sending.
	time.Sleep(100 * time.Millisecond)
	if err := sender.SendShape(testShape("shape-relay")); err != nil {
		t.Fatalf("SendShape: %v", err)
	}

	select {
	case s := <-relayed:
		if s.ID != "shape-relay" || s.Kind != raster.LineBresenham {
			t.Errorf("relayed shape = %+v", s)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("shape not relayed within 3s")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(hostSaw) != 1 || hostSaw[0] != "shape-relay" {
		t.Errorf("host callbacks saw %v, want [shape-relay]", hostSaw)
	}
}

func TestHostRelaysClear(t *testing.T) {
	addr := startTestHost(t, HostCallbacks{
		Snapshot: func() []state.Shape { return nil },
	})

	sender, err := Dial(addr)
	if err != nil {
		t.Fatalf("Dial sender: %v", err)
	}
	defer sender.Close()
	go sender.Listen(ClientCallbacks{})

	receiver, err := Dial(addr)
	if err != nil {
		t.Fatalf("Dial receiver: %v", err)
	}
	defer receiver.Close()

	cleared := make(chan string, 1)
	go receiver.Listen(ClientCallbacks{
		OnClear: func(owner string) { cleared <- owner },
	})

	time.Sleep(100 * time.Millisecond)
	if err := sender.SendClear("site-a"); err != nil {
		t.Fatalf("SendClear: %v", err)
	}

	select {
	case owner := <-cleared:
		if owner != "site-a" {
			t.Errorf("cleared owner = %q, want site-a", owner)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("clear not relayed within 3s")
	}
}
