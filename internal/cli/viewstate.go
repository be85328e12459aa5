package cli

import (
	"errors"
	"fmt"
)

// view is one screen of the interactive shell.
type view int

const (
	viewDashboard view = iota
	viewAdd
	viewReport
	viewSettings
)

func (v view) String() string {
	switch v {
	case viewDashboard:
		return "dashboard"
	case viewAdd:
		return "add"
	case viewReport:
		return "report"
	case viewSettings:
		return "settings"
	}
	return fmt.Sprintf("view(%d)", int(v))
}

var errInvalidTransition = errors.New("invalid view transition")

// navigator holds the shell's current view and displayed month. Every
// screen is entered from the dashboard and returns to it.
type navigator struct {
	current view
	period  period
}

func newNavigator(p period) *navigator {
	return &navigator{current: viewDashboard, period: p}
}

// Go moves to another view. Allowed: dashboard to any screen, any screen
// back to the dashboard.
func (n *navigator) Go(to view) error {
	if to < viewDashboard || to > viewSettings {
		return fmt.Errorf("%w: unknown %s", errInvalidTransition, to)
	}
	if to == n.current {
		return nil
	}
	if n.current != viewDashboard && to != viewDashboard {
		return fmt.Errorf("%w: %s → %s", errInvalidTransition, n.current, to)
	}
	n.current = to
	return nil
}

// Back returns to the dashboard from any view.
func (n *navigator) Back() {
	n.current = viewDashboard
}

func (n *navigator) PrevMonth() {
	n.period = n.period.prev()
}

func (n *navigator) NextMonth() {
	n.period = n.period.next()
}
