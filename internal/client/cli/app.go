// Package cli is the terminal front end. It only reads input, forwards
// intents to view-models and renders their state; all behavior lives in
// the layers below.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/stis-apps/titiktemu/internal/client/session"
	"github.com/stis-apps/titiktemu/internal/client/viewmodel"
	"github.com/stis-apps/titiktemu/internal/logging"
	"github.com/stis-apps/titiktemu/internal/resource"
)

type App struct {
	vms    *viewmodel.Factory
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	// userName mirrors the store's username stream; it changes when a
	// login, logout or session wipe reaches the store, not when a
	// command decides it should
	userName   string
	nameCh     <-chan string
	nameCancel func()

	// home lives across commands so the selected filter sticks
	home *viewmodel.HomeViewModel
}

func NewApp(vms *viewmodel.Factory, store session.Store, log logging.Logger) *App {
	a := &App{
		vms:    vms,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.nameCh, a.nameCancel = store.UsernameUpdates()
	return a
}

// Run decides the start screen and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.nameCancel()

	splash := a.vms.Splash()
	dest := splash.Decide(ctx)
	splash.Close()

	if dest == viewmodel.DestinationHome {
		a.refreshStatus()
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.userName)
	} else {
		fmt.Fprintln(a.out, "Welcome to TitikTemu. Please login or register.")
	}

	a.Root(ctx)
}

func (a *App) homeVM() *viewmodel.HomeViewModel {
	if a.home == nil {
		a.home = a.vms.Home()
	}
	return a.home
}

// refreshStatus drains pending username updates without blocking. The
// channel holds at most the latest value, so the loop ends quickly.
func (a *App) refreshStatus() {
	for {
		select {
		case name, ok := <-a.nameCh:
			if !ok {
				return
			}
			a.userName = name
		default:
			return
		}
	}
}

func (a *App) isLoggedIn() bool {
	a.refreshStatus()
	return a.userName != ""
}

func (a *App) getStatus() string {
	a.refreshStatus()
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// eventSource is the part of a view-model the command loop consumes
// after an operation finishes.
type eventSource interface {
	Events() <-chan viewmodel.Event
}

// pump drains pending one-shot events: toasts are printed, a logout
// pulls the already-wiped session state into the prompt.
func (a *App) pump(vm eventSource) {
	for {
		select {
		case ev := <-vm.Events():
			switch ev.Kind {
			case viewmodel.EventToast:
				fmt.Fprintln(a.out, ev.Message)
			case viewmodel.EventLogout:
				a.refreshStatus()
			}
		default:
			return
		}
	}
}

// runAndWait subscribes to state, fires trigger and blocks until the
// terminal value of that operation arrives. Subscribing first and
// discarding the replayed current value keeps a stale result from an
// earlier command from being mistaken for this one's.
func runAndWait[T any](ctx context.Context, state *viewmodel.Observable[resource.Resource[T]], trigger func()) resource.Resource[T] {
	ch, cancel := state.Subscribe()
	defer cancel()
	<-ch

	trigger()
	for {
		select {
		case res := <-ch:
			if res.IsLoading() || res.IsIdle() {
				continue
			}
			return res
		case <-ctx.Done():
			return resource.Error[T]("Cancelled")
		}
	}
}
