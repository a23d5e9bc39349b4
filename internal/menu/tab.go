package menu

import (
	"fmt"

	"github.com/atomicstack/training-mod-tui/internal/grid"
	"github.com/atomicstack/training-mod-tui/internal/logging"
	"github.com/atomicstack/training-mod-tui/internal/logging/events"
)

var _ Handler = (*Tab)(nil)

// Tab is a titled grid of submenus.
type Tab struct {
	Title    string
	ID       string
	SubMenus *grid.Grid[*SubMenu]
}

// NewTab lays out submenus row-major in a rows x cols grid.
func NewTab(id, title string, rows, cols int, submenus []*SubMenu) (*Tab, error) {
	g, err := grid.New(rows, cols, submenus)
	if err != nil {
		return nil, fmt.Errorf("tab %s: %w", id, err)
	}
	return &Tab{ID: id, Title: title, SubMenus: g}, nil
}

// SelectedSubMenu returns the submenu under the cursor and panics when the
// cursor rests on an empty cell.
func (t *Tab) SelectedSubMenu() *SubMenu {
	s, ok := t.SubMenus.Selected()
	if !ok || s == nil {
		panic(fmt.Errorf("%w: tab %s has no submenu at %+v", ErrInvariant, t.ID, t.SubMenus.Cursor()))
	}
	return s
}

// Handle moves through the submenu grid on directions. Confirm stops here:
// the app has already turned it into a page change. Everything else goes to
// the selected submenu.
func (t *Tab) Handle(b Button) {
	if !b.Directional() {
		if b != ButtonA {
			t.SelectedSubMenu().Handle(b)
		}
		return
	}
	var err error
	switch b {
	case ButtonUp:
		err = t.SubMenus.PrevRowChecked()
	case ButtonDown:
		err = t.SubMenus.NextRowChecked()
	case ButtonLeft:
		err = t.SubMenus.PrevColChecked()
	case ButtonRight:
		t.SubMenus.NextColChecked()
	}
	if err != nil {
		logging.Error(fmt.Errorf("tab %s: %w", t.ID, err))
		return
	}
	pos := t.SubMenus.Cursor()
	events.Menu.Cursor("submenu", t.ID, pos.Row, pos.Col)
}

// Focus moves the cursor onto the submenu with the given id.
func (t *Tab) Focus(id string) bool {
	found := false
	t.SubMenus.Each(func(pos grid.Position, s *SubMenu, ok bool) {
		if found || !ok || s.ID != id {
			return
		}
		found = t.SubMenus.Select(pos.Row, pos.Col) == nil
	})
	return found
}
