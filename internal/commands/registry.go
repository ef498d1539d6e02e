package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command // word -> command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the word is empty or already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	word := c.Word()
	if word == "" {
		return fmt.Errorf("command word is empty")
	}
	if _, exists := r.cmds[word]; exists {
		return fmt.Errorf("command already registered: %s", word)
	}

	r.cmds[word] = c
	return nil
}

// Find looks up a command by word.
func (r *Registry) Find(word string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[word]
	return cmd, ok
}

// All returns all commands sorted by word.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	words := make([]string, 0, len(r.cmds))
	for word := range r.cmds {
		words = append(words, word)
	}
	sort.Strings(words)

	result := make([]Command, len(words))
	for i, word := range words {
		result[i] = r.cmds[word]
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
