package markdown

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Codycody31/changerawr-sub002/sanitize"
)

var (
	// ErrEmptyExtensionName is returned when registering an extension with
	// no name; the name is the unregistration handle.
	ErrEmptyExtensionName = errors.New("extension name must not be empty")

	// ErrDuplicateExtension is returned when an extension with the same
	// name is already registered.
	ErrDuplicateExtension = errors.New("extension is already registered")

	// ErrUnknownExtension is returned when unregistering a name that was
	// never registered.
	ErrUnknownExtension = errors.New("extension is not registered")
)

// Engine is the facade over one Parser and one Renderer. It is the only
// entry point external collaborators use: the editor preview, the public
// changelog page and the embed widget all go through Parse/Render/ToHTML.
//
// Registration and unregistration must not run concurrently with in-flight
// Parse/Render calls on the same instance; callers needing per-call
// extension sets should Clone an isolated engine instead.
type Engine struct {
	parser   *Parser
	renderer *Renderer

	// extensions in registration order; order matters because render rules
	// are last-registered-wins.
	extensions []Extension

	devMode   bool
	sanitizer *sanitize.Sanitizer
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithEngineDevMode enables the renderer's unknown-token debug blocks.
func WithEngineDevMode(enabled bool) Option {
	return func(e *Engine) {
		e.devMode = enabled
	}
}

// WithEngineSanitizer overrides the renderer's sanitizer.
func WithEngineSanitizer(s *sanitize.Sanitizer) Option {
	return func(e *Engine) {
		e.sanitizer = s
	}
}

// New builds an Engine with the built-in Alert, Button and Embed extensions
// registered.
func New(opts ...Option) *Engine {
	e := NewEmpty(opts...)
	for _, ext := range []Extension{AlertExtension(), ButtonExtension(), EmbedExtension()} {
		// Built-in bundles are well-formed; registration cannot fail here.
		if err := e.RegisterExtension(ext); err != nil {
			panic(fmt.Sprintf("markdown: registering built-in %q: %v", ext.Name, err))
		}
	}
	return e
}

// NewEmpty builds an Engine with no extensions registered. Default parse and
// render rules are still present.
func NewEmpty(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	e.parser = NewParser()
	e.renderer = e.newRenderer()
	return e
}

func (e *Engine) newRenderer() *Renderer {
	ropts := []RendererOption{WithDevMode(e.devMode)}
	if e.sanitizer != nil {
		ropts = append(ropts, WithSanitizer(e.sanitizer))
	}
	return NewRenderer(ropts...)
}

// RegisterExtension appends the extension's parse rules to the live Parser
// (triggering a priority re-sort) and its render rules to the live Renderer
// (overwriting same-type rules if the extension intentionally shadows one).
func (e *Engine) RegisterExtension(ext Extension) error {
	if ext.Name == "" {
		return ErrEmptyExtensionName
	}
	if e.HasExtension(ext.Name) {
		return fmt.Errorf("%w: %q", ErrDuplicateExtension, ext.Name)
	}

	e.parser.addOwnedRules(ext.Name, ext.ParseRules)
	e.renderer.addOwnedRules(ext.Name, ext.RenderRules)
	e.extensions = append(e.extensions, ext)
	return nil
}

// UnregisterExtension removes exactly the named extension's rules and leaves
// every other rule, including the defaults, intact.
//
// Parse rules are owner-tagged, so the parser filters them in place without
// disturbing scan priority. The renderer's type-keyed table cannot restore a
// rule the extension shadowed, so it is rebuilt from the default rules plus
// the surviving extensions in their original registration order.
func (e *Engine) UnregisterExtension(name string) error {
	idx := -1
	for i, ext := range e.extensions {
		if ext.Name == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: %q", ErrUnknownExtension, name)
	}
	e.extensions = append(e.extensions[:idx], e.extensions[idx+1:]...)

	e.parser.removeOwnedRules(name)

	renderer := e.newRenderer()
	for _, ext := range e.extensions {
		renderer.addOwnedRules(ext.Name, ext.RenderRules)
	}
	e.renderer = renderer
	return nil
}

// Clone builds a fresh Engine with the same options and extension set. Use
// it to derive per-request engines instead of mutating a shared one.
func (e *Engine) Clone() *Engine {
	opts := []Option{WithEngineDevMode(e.devMode)}
	if e.sanitizer != nil {
		opts = append(opts, WithEngineSanitizer(e.sanitizer))
	}
	clone := NewEmpty(opts...)
	for _, ext := range e.extensions {
		// Names were unique in the source engine; re-registration cannot fail.
		_ = clone.RegisterExtension(ext)
	}
	return clone
}

// Parse converts markdown into tokens. See Parser.Parse.
func (e *Engine) Parse(markdown string) []Token {
	return e.parser.Parse(markdown)
}

// Render converts tokens into sanitized HTML. See Renderer.Render.
func (e *Engine) Render(tokens []Token) string {
	return e.renderer.Render(tokens)
}

// ToHTML is the full pipeline: parse then render.
func (e *Engine) ToHTML(markdown string) string {
	return e.Render(e.Parse(markdown))
}

// Warnings returns the advisory anomalies from the most recent Parse.
func (e *Engine) Warnings() []Warning {
	return e.parser.Warnings()
}

// Extensions returns the registered extension names in registration order.
func (e *Engine) Extensions() []string {
	names := make([]string, len(e.extensions))
	for i, ext := range e.extensions {
		names[i] = ext.Name
	}
	return names
}

// HasExtension reports whether an extension with the given name is
// registered.
func (e *Engine) HasExtension(name string) bool {
	for _, ext := range e.extensions {
		if ext.Name == name {
			return true
		}
	}
	return false
}

var defaultEngine = sync.OnceValue(func() *Engine { return New() })

// Default returns the process-wide shared Engine with the built-in
// extensions. It is meant for read-only Parse/Render use across requests;
// do not register or unregister extensions on it mid-flight, Clone it
// instead.
func Default() *Engine {
	return defaultEngine()
}
