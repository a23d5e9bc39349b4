package menu

import (
	"fmt"

	"github.com/atomicstack/training-mod-tui/internal/grid"
	"github.com/atomicstack/training-mod-tui/internal/logging/events"
)

// Page is the app-wide mode that decides where input is routed.
type Page int

const (
	PageSubmenu Page = iota
	PageToggle
	PageSlider
	PageConfirmation
	PageClose
)

func (p Page) String() string {
	switch p {
	case PageSubmenu:
		return "submenu"
	case PageToggle:
		return "toggle"
	case PageSlider:
		return "slider"
	case PageConfirmation:
		return "confirmation"
	case PageClose:
		return "close"
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// App is the root of the menu tree: a single row of tabs plus the current
// page.
type App struct {
	Tabs *grid.Grid[*Tab]

	page     Page
	defaults Selections
}

// New builds an app with tabs laid out in a single row. The initial state of
// every submenu becomes the defaults snapshot.
func New(tabs []*Tab) (*App, error) {
	if len(tabs) == 0 {
		return nil, fmt.Errorf("app: %w", grid.ErrShape)
	}
	a := &App{Tabs: grid.MustNew(1, len(tabs), tabs), page: PageSubmenu}
	a.defaults = a.Selections()
	return a, nil
}

// Page returns the current page.
func (a *App) Page() Page { return a.page }

// Closed reports whether the session has ended.
func (a *App) Closed() bool { return a.page == PageClose }

// SelectedTab returns the tab under the cursor; an empty cell panics.
func (a *App) SelectedTab() *Tab {
	t, ok := a.Tabs.Selected()
	if !ok || t == nil {
		panic(fmt.Errorf("%w: no tab at %+v", ErrInvariant, a.Tabs.Cursor()))
	}
	return t
}

// SelectedSubMenu returns the selected submenu of the selected tab.
func (a *App) SelectedSubMenu() *SubMenu {
	return a.SelectedTab().SelectedSubMenu()
}

// Handle applies a single input signal according to the current page.
func (a *App) Handle(b Button) {
	events.Menu.Input(a.page.String(), b.String())
	switch a.page {
	case PageSubmenu:
		a.handleSubmenuPage(b)
	case PageToggle:
		if b == ButtonB {
			a.setPage(PageSubmenu, b)
			return
		}
		a.active().Handle(b)
	case PageSlider:
		if b == ButtonB && !a.SelectedSubMenu().Slider.IsHandleSelected() {
			a.setPage(PageSubmenu, b)
			return
		}
		a.active().Handle(b)
	case PageConfirmation:
		if b == ButtonB {
			a.setPage(PageSubmenu, b)
		}
	case PageClose:
	}
}

func (a *App) handleSubmenuPage(b Button) {
	switch b {
	case ButtonA:
		switch a.SelectedSubMenu().Kind() {
		case KindToggleSingle, KindToggleMultiple:
			a.setPage(PageToggle, b)
		case KindSlider:
			a.setPage(PageSlider, b)
		}
		a.SelectedTab().Handle(b)
	case ButtonB:
		a.setPage(PageClose, b)
	case ButtonZL:
		a.PrevTab()
	case ButtonZR:
		a.NextTab()
	default:
		a.active().Handle(b)
	}
}

// active returns the component that receives buttons on the current page:
// the tab on the Submenu page, the selected submenu on the Toggle and Slider
// pages, nothing otherwise.
func (a *App) active() Handler {
	switch a.page {
	case PageSubmenu:
		return a.SelectedTab()
	case PageToggle, PageSlider:
		return a.SelectedSubMenu()
	}
	return nopHandler{}
}

type nopHandler struct{}

func (nopHandler) Handle(Button) {}

func (a *App) setPage(p Page, cause Button) {
	if a.page == p {
		return
	}
	events.Menu.Page(a.page.String(), p.String(), cause.String())
	a.page = p
}

func (a *App) OnA()     { a.Handle(ButtonA) }
func (a *App) OnB()     { a.Handle(ButtonB) }
func (a *App) OnX()     { a.Handle(ButtonX) }
func (a *App) OnY()     { a.Handle(ButtonY) }
func (a *App) OnUp()    { a.Handle(ButtonUp) }
func (a *App) OnDown()  { a.Handle(ButtonDown) }
func (a *App) OnLeft()  { a.Handle(ButtonLeft) }
func (a *App) OnRight() { a.Handle(ButtonRight) }
func (a *App) OnStart() { a.Handle(ButtonStart) }
func (a *App) OnL()     { a.Handle(ButtonL) }
func (a *App) OnR()     { a.Handle(ButtonR) }
func (a *App) OnZL()    { a.Handle(ButtonZL) }
func (a *App) OnZR()    { a.Handle(ButtonZR) }

// NextTab selects the tab to the right, wrapping around.
func (a *App) NextTab() {
	a.Tabs.NextCol()
	a.traceTab()
}

// PrevTab selects the tab to the left, wrapping around.
func (a *App) PrevTab() {
	a.Tabs.PrevCol()
	a.traceTab()
}

func (a *App) traceTab() {
	pos := a.Tabs.Cursor()
	events.Menu.Cursor("tab", a.SelectedTab().ID, pos.Row, pos.Col)
}

// RequestConfirmation switches to the confirmation page. It reports false on
// a closed app.
func (a *App) RequestConfirmation() bool {
	if a.page == PageClose {
		return false
	}
	a.setPage(PageConfirmation, ButtonStart)
	return true
}

// FocusSubMenu selects the tab and cell holding the submenu with id. The
// cursor is unchanged when no submenu matches.
func (a *App) FocusSubMenu(id string) bool {
	found := false
	a.Tabs.Each(func(pos grid.Position, t *Tab, ok bool) {
		if found || !ok {
			return
		}
		if t.Focus(id) {
			found = a.Tabs.Select(pos.Row, pos.Col) == nil
		}
	})
	events.Menu.Focus(id, found)
	return found
}

// Entry describes a submenu together with its position in the tree.
type Entry struct {
	TabID    string
	TabTitle string
	ID       string
	Title    string
	Kind     Kind
}

// Entries lists every submenu, tab by tab, in row-major order.
func (a *App) Entries() []Entry {
	var out []Entry
	a.eachSubMenu(func(t *Tab, s *SubMenu) {
		out = append(out, Entry{TabID: t.ID, TabTitle: t.Title, ID: s.ID, Title: s.Title, Kind: s.Kind()})
	})
	return out
}

// SubMenu looks up a submenu by id.
func (a *App) SubMenu(id string) (*SubMenu, bool) {
	var found *SubMenu
	a.eachSubMenu(func(_ *Tab, s *SubMenu) {
		if found == nil && s.ID == id {
			found = s
		}
	})
	return found, found != nil
}

func (a *App) eachSubMenu(fn func(*Tab, *SubMenu)) {
	for _, t := range a.Tabs.Flatten() {
		for _, s := range t.SubMenus.Flatten() {
			fn(t, s)
		}
	}
}
