package render

import (
	"strconv"
	"sync"

	"github.com/vango-dev/ssr/pkg/vdom"
)

// unnamedPrefix prefixes the placeholder names of anonymous components.
const unnamedPrefix = "UnnamedComponent"

// NameRegistry hands out stable placeholder names to anonymous components.
// Entries are appended the first time a component is seen and never
// removed, so a component keeps its UnnamedComponentN name for the life of
// the registry. It is safe for concurrent use.
type NameRegistry struct {
	mu   sync.Mutex
	seen []vdom.Component
}

// DefaultNames is the process-wide registry used when a Renderer is not
// given one.
var DefaultNames = &NameRegistry{}

// NewNameRegistry returns an empty registry.
func NewNameRegistry() *NameRegistry {
	return &NameRegistry{}
}

// DisplayName returns the placeholder tag for c: its DisplayName, else its
// declared Name, else for class components the name of the instance type,
// else an indexed UnnamedComponentN name.
func (n *NameRegistry) DisplayName(c vdom.Component) string {
	switch v := c.(type) {
	case *vdom.FuncComponent:
		if name := firstNonEmpty(v.DisplayName, v.Name); name != "" {
			return name
		}
	case *vdom.ClassComponent:
		if name := firstNonEmpty(v.DisplayName, v.Name, v.TypeName()); name != "" {
			return name
		}
	}
	return unnamedPrefix + strconv.Itoa(n.index(c))
}

// index returns the registry slot of c, appending it when unseen.
func (n *NameRegistry) index(c vdom.Component) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := len(n.seen) - 1; i >= 0; i-- {
		if n.seen[i] == c {
			return i
		}
	}
	n.seen = append(n.seen, c)
	return len(n.seen) - 1
}

// Len returns the number of registered anonymous components.
func (n *NameRegistry) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.seen)
}

// Reset forgets every registered component.
func (n *NameRegistry) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seen = nil
}
