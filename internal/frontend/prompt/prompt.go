// Package prompt renders the numbered option lists shown at each input prompt.
// Prompt text is static content loaded from one YAML file per context tag.
package prompt

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Context tags for the prompts the game shows.
const (
	TagMainMenu = "main_menu"
	TagMode     = "mode"
	TagAttacks  = "attacks"
)

// Header opens every rendered prompt.
const Header = "Please select an option from the list:\n"

// ErrInvalidInputType is returned when a prompt is requested for an unknown tag.
var ErrInvalidInputType = errors.New("invalid input type")

// Option is one selectable line of a menu.
type Option struct {
	Key  string `yaml:"key"`
	Text string `yaml:"text"`
}

// Menu is the content of one prompt file.
//
// Precondition: Title non-empty and Options non-empty with unique keys after loading.
type Menu struct {
	Title   string   `yaml:"title"`
	Options []Option `yaml:"options"`
}

// Lookup returns the option whose key is key.
func (m *Menu) Lookup(key string) (Option, bool) {
	for _, o := range m.Options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// Render returns the full prompt text: header, title, then "<key> - <text>" lines.
func (m *Menu) Render() string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString(m.Title)
	b.WriteString("\n")
	for _, o := range m.Options {
		fmt.Fprintf(&b, "%s - %s\n", o.Key, o.Text)
	}
	return b.String()
}

func (m *Menu) validate() error {
	if m.Title == "" {
		return errors.New("title must not be empty")
	}
	if len(m.Options) == 0 {
		return errors.New("options must not be empty")
	}
	seen := make(map[string]bool, len(m.Options))
	for _, o := range m.Options {
		if o.Key == "" {
			return errors.New("option key must not be empty")
		}
		if seen[o.Key] {
			return fmt.Errorf("duplicate option key %q", o.Key)
		}
		seen[o.Key] = true
	}
	return nil
}

// Provider serves menus by context tag.
type Provider struct {
	menus map[string]*Menu
}

// Load reads every .yaml/.yml file at the root of fsys as a Menu keyed by its base name.
//
// Precondition: fsys must be non-nil.
// Postcondition: Returns a Provider holding every parsed menu, or a non-nil error.
func Load(fsys fs.FS) (*Provider, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading prompt directory: %w", err)
	}
	menus := make(map[string]*Menu)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := path.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var m Menu
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing prompt file %s: %w", name, err)
		}
		if err := m.validate(); err != nil {
			return nil, fmt.Errorf("prompt file %s: %w", name, err)
		}
		menus[strings.TrimSuffix(name, ext)] = &m
	}
	return &Provider{menus: menus}, nil
}

// Require checks that a menu exists for each tag.
//
// Postcondition: Returns nil, or an error wrapping ErrInvalidInputType naming the first missing tag.
func (p *Provider) Require(tags ...string) error {
	for _, tag := range tags {
		if _, err := p.Menu(tag); err != nil {
			return err
		}
	}
	return nil
}

// Tags returns the loaded tags in sorted order.
func (p *Provider) Tags() []string {
	tags := make([]string, 0, len(p.menus))
	for tag := range p.menus {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Menu returns the menu for tag.
//
// Postcondition: Returns a non-nil Menu, or an error wrapping ErrInvalidInputType.
func (p *Provider) Menu(tag string) (*Menu, error) {
	m, ok := p.menus[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInputType, tag)
	}
	return m, nil
}

// Text returns the rendered prompt for tag.
//
// Postcondition: Returns the Menu.Render output, or an error wrapping ErrInvalidInputType.
func (p *Provider) Text(tag string) (string, error) {
	m, err := p.Menu(tag)
	if err != nil {
		return "", err
	}
	return m.Render(), nil
}
