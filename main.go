// Pixel Alchemy Studio is an interactive geometric plotter: classic raster
// algorithms (DDA, Bresenham, midpoint, Bézier tessellation) behind a
// click-driven Fyne canvas, with optional LAN session sharing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	sessionnet "github.com/josefdc/pixel-alchemy-studio/internal/net"
	"github.com/josefdc/pixel-alchemy-studio/internal/state"
	"github.com/josefdc/pixel-alchemy-studio/internal/ui"
)

const customURLScheme = "pixelalchemy://"

func main() {
	join := flag.String("join", "", `session to join: "host:port", or "auto" to discover one via mDNS (empty hosts a new session)`)
	port := flag.Int("port", sessionnet.DefaultPort, "port to host the session on")
	flag.Parse()

	// A pixelalchemy:// link on the command line joins that session, same
	// as -join.
	addr := *join
	if args := flag.Args(); len(args) > 0 && strings.HasPrefix(args[0], customURLScheme) {
		addr = strings.TrimSuffix(strings.TrimPrefix(args[0], customURLScheme), "/")
	}

	if addr == "" {
		runHost(*port)
		return
	}
	if addr == "auto" {
		found, err := sessionnet.Discover(3 * time.Second)
		if err != nil {
			log.Printf("discovery failed: %v", err)
			os.Exit(1)
		}
		log.Printf("discovered session at %s", found)
		addr = found
	}
	runClient(addr)
}

func runHost(port int) {
	log.Println("starting as HOST")
	board := ui.NewBoardWidget()
	hub := sessionnet.NewHub()

	// Local commits fan out to every connected client.
	board.OnShape = func(s state.Shape) {
		hub.BroadcastAll(sessionnet.Message{Type: sessionnet.MsgShape, Shape: &s})
	}
	board.OnClear = func(ownerID string) {
		hub.BroadcastAll(sessionnet.Message{Type: sessionnet.MsgClear, OwnerID: ownerID})
	}

	// Client operations land on the host board before being relayed.
	callbacks := sessionnet.HostCallbacks{
		Snapshot: func() []state.Shape { return board.Board().Shapes() },
		OnShape:  board.AddRemoteShape,
		OnClear:  board.ClearRemote,
	}
	go func() {
		if err := hub.Serve(port, callbacks); err != nil {
			log.Printf("session server stopped: %v", err)
		}
	}()

	mdnsServer, err := sessionnet.Advertise(port)
	if err != nil {
		log.Printf("mDNS advertise failed (session still joinable by address): %v", err)
	} else {
		defer mdnsServer.Shutdown()
	}

	shareLink := fmt.Sprintf("%s%s:%d", customURLScheme, sessionnet.OutgoingIP(), port)
	ui.RunApp(shareLink, board)
}

func runClient(addr string) {
	log.Printf("starting as CLIENT, joining %s", addr)
	board := ui.NewBoardWidget()

	client, err := sessionnet.Dial(addr)
	if err != nil {
		log.Printf("could not join session: %v", err)
		os.Exit(1)
	}
	defer client.Close()

	board.OnShape = func(s state.Shape) {
		if err := client.SendShape(s); err != nil {
			log.Printf("send shape: %v", err)
		}
	}
	board.OnClear = func(ownerID string) {
		if err := client.SendClear(ownerID); err != nil {
			log.Printf("send clear: %v", err)
		}
	}

	go func() {
		err := client.Listen(sessionnet.ClientCallbacks{
			OnSnapshot: board.ApplySnapshot,
			OnShape:    board.AddRemoteShape,
			OnClear:    board.ClearRemote,
		})
		board.SetStatus(fmt.Sprintf("Disconnected from host: %v", err))
	}()

	ui.RunApp("", board)
}
