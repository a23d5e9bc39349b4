// Package layout builds a menu tree from a YAML description. An embedded
// default layout is used when no file is supplied.
package layout

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/training-mod-tui/internal/menu"
)

//go:embed default.yaml
var defaultYAML []byte

const (
	defaultSubMenuRows    = 8
	defaultSubMenuColumns = 4
	defaultToggleColumns  = 4
)

// ErrInvalid wraps every validation failure reported by File.Validate.
var ErrInvalid = errors.New("layout: invalid")

// File is the decoded layout document.
type File struct {
	SubMenuRows    int       `yaml:"submenu_rows"`
	SubMenuColumns int       `yaml:"submenu_columns"`
	Tabs           []TabSpec `yaml:"tabs"`
}

// TabSpec describes one tab.
type TabSpec struct {
	ID       string        `yaml:"id"`
	Title    string        `yaml:"title"`
	SubMenus []SubMenuSpec `yaml:"submenus"`
}

// SubMenuSpec describes one submenu. Rows and Columns shape the toggle grid;
// when omitted the toggles wrap every four columns.
type SubMenuSpec struct {
	ID      string       `yaml:"id"`
	Title   string       `yaml:"title"`
	Help    string       `yaml:"help"`
	Kind    string       `yaml:"kind"`
	Rows    int          `yaml:"rows"`
	Columns int          `yaml:"columns"`
	Toggles []ToggleSpec `yaml:"toggles"`
	Slider  *SliderSpec  `yaml:"slider"`
}

// ToggleSpec describes a toggle.
type ToggleSpec struct {
	Title string `yaml:"title"`
	Value uint8  `yaml:"value"`
	Max   uint8  `yaml:"max"`
}

// SliderSpec describes a slider's bounds and initial range.
type SliderSpec struct {
	AbsMin uint32 `yaml:"abs_min"`
	AbsMax uint32 `yaml:"abs_max"`
	Min    uint32 `yaml:"min"`
	Max    uint32 `yaml:"max"`
}

// DefaultYAML returns a copy of the embedded default layout.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// Parse decodes a layout document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalid)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	f.applyDefaults()
	return &f, nil
}

// Load reads the layout at path, or the embedded default when path is empty,
// and builds the menu.
func Load(path string) (*menu.App, error) {
	data := DefaultYAML()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read layout: %w", err)
		}
		data = raw
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return f.Build()
}

func (f *File) applyDefaults() {
	if f.SubMenuRows == 0 {
		f.SubMenuRows = defaultSubMenuRows
	}
	if f.SubMenuColumns == 0 {
		f.SubMenuColumns = defaultSubMenuColumns
	}
}

// Validate reports every problem in the document at once.
func (f *File) Validate() error {
	var errs []error
	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...))
	}
	if f.SubMenuRows < 1 || f.SubMenuColumns < 1 {
		add("submenu grid %dx%d", f.SubMenuRows, f.SubMenuColumns)
	}
	if len(f.Tabs) == 0 {
		add("no tabs")
	}
	seen := make(map[string]string)
	for ti, tab := range f.Tabs {
		if tab.ID == "" {
			add("tab %d has no id", ti)
		}
		if len(tab.SubMenus) == 0 {
			add("tab %s has no submenus", tab.ID)
		}
		if len(tab.SubMenus) > f.SubMenuRows*f.SubMenuColumns {
			add("tab %s has %d submenus, grid holds %d", tab.ID, len(tab.SubMenus), f.SubMenuRows*f.SubMenuColumns)
		}
		for _, sub := range tab.SubMenus {
			if sub.ID == "" {
				add("submenu %q in tab %s has no id", sub.Title, tab.ID)
				continue
			}
			if owner, dup := seen[sub.ID]; dup {
				add("submenu id %s in tab %s already used in tab %s", sub.ID, tab.ID, owner)
			}
			seen[sub.ID] = tab.ID
			errs = append(errs, validateSubMenu(sub)...)
		}
	}
	return errors.Join(errs...)
}

func validateSubMenu(sub SubMenuSpec) []error {
	var errs []error
	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: submenu %s: "+format, append([]interface{}{ErrInvalid, sub.ID}, args...)...))
	}
	kind, err := menu.ParseKind(sub.Kind)
	if err != nil {
		add("%v", err)
		return errs
	}
	switch {
	case kind.IsToggle():
		if len(toggleList(sub)) == 0 {
			add("no toggles")
		}
		if sub.Slider != nil {
			add("slider set on %s submenu", kind)
		}
		for _, t := range toggleList(sub) {
			if t.Value > t.Max {
				add("toggle %q value %d exceeds max %d", t.Title, t.Value, t.Max)
			}
		}
		if kind == menu.KindToggleSingle {
			nonzero := 0
			for _, t := range toggleList(sub) {
				if t.Value != 0 {
					nonzero++
				}
			}
			if nonzero > 1 {
				add("%d toggles set on a single-choice submenu", nonzero)
			}
		}
		rows, cols := toggleShape(sub)
		if rows < 1 || cols < 1 || len(sub.Toggles) > rows*cols {
			add("%d toggles do not fit %dx%d", len(sub.Toggles), rows, cols)
		}
	case kind == menu.KindSlider:
		if sub.Slider == nil {
			add("missing slider")
			break
		}
		s := sub.Slider
		if !(s.AbsMin <= s.Min && s.Min <= s.Max && s.Max <= s.AbsMax) {
			add("slider range %d..%d outside %d..%d", s.Min, s.Max, s.AbsMin, s.AbsMax)
		}
		if len(sub.Toggles) > 0 {
			add("toggles set on slider submenu")
		}
	default:
		if len(sub.Toggles) > 0 || sub.Slider != nil {
			add("controls set on a %s submenu", kind)
		}
	}
	return errs
}

// toggleList applies the default max of 1 to toggles that omit it.
func toggleList(sub SubMenuSpec) []ToggleSpec {
	out := make([]ToggleSpec, len(sub.Toggles))
	for i, t := range sub.Toggles {
		if t.Max == 0 {
			t.Max = 1
		}
		out[i] = t
	}
	return out
}

func toggleShape(sub SubMenuSpec) (rows, cols int) {
	rows, cols = sub.Rows, sub.Columns
	n := len(sub.Toggles)
	if cols == 0 {
		cols = defaultToggleColumns
		if rows > 0 {
			cols = (n + rows - 1) / rows
		}
		if cols > n && n > 0 {
			cols = n
		}
	}
	if rows == 0 && cols > 0 {
		rows = (n + cols - 1) / cols
	}
	return rows, cols
}

// Build validates the document and constructs the menu tree.
func (f *File) Build() (*menu.App, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	tabs := make([]*menu.Tab, 0, len(f.Tabs))
	for _, ts := range f.Tabs {
		subs := make([]*menu.SubMenu, 0, len(ts.SubMenus))
		for _, ss := range ts.SubMenus {
			sub, err := buildSubMenu(ss)
			if err != nil {
				return nil, err
			}
			subs = append(subs, sub)
		}
		tab, err := menu.NewTab(ts.ID, ts.Title, f.SubMenuRows, f.SubMenuColumns, subs)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, tab)
	}
	return menu.New(tabs)
}

func buildSubMenu(ss SubMenuSpec) (*menu.SubMenu, error) {
	kind, err := menu.ParseKind(ss.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case menu.KindSlider:
		s := ss.Slider
		return menu.NewSliderSubMenu(ss.ID, ss.Title, ss.Help, menu.NewSlider(s.AbsMin, s.AbsMax, s.Min, s.Max)), nil
	case menu.KindNone:
		return menu.NewLabelSubMenu(ss.ID, ss.Title, ss.Help), nil
	}
	specs := toggleList(ss)
	toggles := make([]menu.Toggle, len(specs))
	for i, t := range specs {
		toggles[i] = menu.NewToggle(t.Title, t.Value, t.Max)
	}
	rows, cols := toggleShape(ss)
	return menu.NewToggleSubMenu(ss.ID, ss.Title, ss.Help, kind, rows, cols, toggles)
}
