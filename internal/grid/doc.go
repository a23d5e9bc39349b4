// Package grid implements the fixed-shape, cursor-carrying container used at
// every level of the menu: tabs inside the app, submenus inside a tab and
// toggles inside a submenu.
//
// Navigation comes in two flavours:
//   - unchecked moves (NextRow, PrevCol, ...) wrap around the grid edges and
//     may leave the cursor on an empty cell;
//   - checked moves (NextRowChecked, PrevColChecked, ...) never leave the cursor
//     on an empty cell of a snake-filled grid.
//
// Checked row moves search with a bounded loop of at most Rows steps, and
// NextColChecked falls back to column zero rather than searching, matching
// the behaviour menus have always had.
package grid
