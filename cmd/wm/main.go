// Command wm is the window manager's entrypoint: it opens the display,
// takes WM ownership, loads configuration, reconciles the initial monitor
// layout, scans pre-existing windows, and hands off to the event loop
// (spec §3 Lifecycle, §7 Fatal errors).
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/jezek/xgb/xproto"

	log "github.com/sirupsen/logrus"

	"github.com/mozzenior/wm/config"
	"github.com/mozzenior/wm/draw"
	"github.com/mozzenior/wm/events"
	"github.com/mozzenior/wm/focus"
	"github.com/mozzenior/wm/reconcile"
	"github.com/mozzenior/wm/store"
)

const version = "wm-0.1"

func main() {
	switch {
	case len(os.Args) == 2 && os.Args[1] == "-v":
		fmt.Println(version)
		return
	case len(os.Args) > 1:
		fmt.Fprintf(os.Stderr, "usage: %s [-v]\n", os.Args[0])
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if os.Getenv("WM_DEBUG") == "1" {
		log.SetLevel(log.DebugLevel)
	}

	s, err := store.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := s.BecomeWM(); err != nil {
		log.Fatal(err)
	}

	c := config.Load()
	st := store.NewState(s.Root, version)

	heads := reconcile.Heads(s)
	if len(heads) == 0 {
		log.Fatal("no connected RandR output found")
	}
	reconcile.Reconcile(st, c, heads, 0, 0)
	if m := st.Monitors(); len(m) > 0 {
		st.SelMon = m[0]
	}

	painter := draw.New(s, c)

	redraw := func(m *store.Monitor) { painter.Redraw(m, st, m == st.SelMon) }

	reconcile.BarWindows(st.Monitors(), func(m *store.Monitor) xproto.Window {
		w := painter.CreateBarWindow(m)
		if m.ShowBar {
			s.MapWindow(w)
		}
		return w
	})

	fp := &focus.Policy{Surface: s, Config: c, State: st, RequestBarRedraw: redraw}

	d := events.New(s, st, c, fp)
	d.RequestBarRedraw = redraw
	d.Spawn = spawn

	d.Scan()

	for _, m := range st.Monitors() {
		m.Arrange()
		redraw(m)
	}

	d.Run()
}

// spawn starts argv without blocking the window manager; a background
// goroutine waits on the child so its exit is reaped and it never lingers
// as a zombie.
func spawn(argv []string) {
	if len(argv) == 0 {
		return
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		log.WithError(err).Warn("spawn failed")
		return
	}
	go cmd.Wait()
}
