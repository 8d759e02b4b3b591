package render

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// CompileFunc renders a function call for one dialect. It receives the
// already-resolved call context and the compiler driving the current pass.
type CompileFunc func(call Call, c *Compiler) (string, error)

// Hook is a registered compile function together with a short description
// of where it came from, e.g. "method STArea".
type Hook struct {
	Compile CompileFunc
	Source  string
}

type registryKey struct {
	dialect  string
	function string
}

// Registry maps (dialect, canonical function name) pairs to compile hooks.
// A registry is populated once when a dialect is constructed and only read
// afterwards; lookups are safe from multiple goroutines.
type Registry struct {
	hooks map[registryKey]Hook
	log   logrus.FieldLogger
	mu    sync.RWMutex
}

// NewRegistry creates an empty registry. A nil logger uses the logrus
// standard logger.
func NewRegistry(log logrus.FieldLogger) *Registry {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Registry{
		hooks: make(map[registryKey]Hook),
		log:   log,
	}
}

// Register installs a hook. Registering the same function again replaces
// the previous hook.
func (r *Registry) Register(dialect, function string, hook Hook) error {
	if dialect == "" {
		return NewConfigError(function, "dialect name is required")
	}
	if function == "" {
		return NewConfigError("", "function name is required")
	}
	if hook.Compile == nil {
		return NewConfigError(function, "compile function is nil")
	}

	key := registryKey{dialect: dialect, function: function}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.hooks[key]; ok {
		r.log.WithFields(logrus.Fields{
			"dialect":  dialect,
			"function": function,
			"previous": prev.Source,
			"source":   hook.Source,
		}).Debug("replacing compile hook")
	}
	r.hooks[key] = hook
	return nil
}

// Lookup returns the hook registered for a function, if any.
func (r *Registry) Lookup(dialect, function string) (Hook, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hooks[registryKey{dialect: dialect, function: function}]
	return h, ok
}

// Names returns the sorted function names registered for a dialect.
func (r *Registry) Names(dialect string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for key := range r.hooks {
		if key.dialect == dialect {
			names = append(names, key.function)
		}
	}
	sort.Strings(names)
	return names
}

// Describe returns the source description of every hook registered for a
// dialect, keyed by function name.
func (r *Registry) Describe(dialect string) map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string)
	for key, hook := range r.hooks {
		if key.dialect == dialect {
			out[key.function] = hook.Source
		}
	}
	return out
}

// Len returns the total number of registered hooks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks)
}

// Logger returns the logger the registry reports to.
func (r *Registry) Logger() logrus.FieldLogger {
	return r.log
}
