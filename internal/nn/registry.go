package nn

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrActivationExists   = errors.New("activation already registered")
	ErrActivationNotFound = errors.New("activation not found")
)

// DefaultActivationName is the function evaluators fall back to when the
// experiment configuration names none.
const DefaultActivationName = "selu"

var activationRegistry = struct {
	mu sync.RWMutex
	m  map[string]Activation
}{
	m: make(map[string]Activation),
}

func init() {
	initializeBuiltInActivations()
}

func initializeBuiltInActivations() {
	MustRegisterActivation(Identity{})
	MustRegisterActivation(ReLU{})
	MustRegisterActivation(LeakyReLU{})
	MustRegisterActivation(Sigmoid{})
	MustRegisterActivation(Tanh{})
	MustRegisterActivation(ELU{})
	MustRegisterActivation(SELU{})
}

func RegisterActivation(fn Activation) error {
	if fn == nil {
		return errors.New("activation is required")
	}
	name := fn.Name()
	if name == "" {
		return errors.New("activation name is required")
	}

	activationRegistry.mu.Lock()
	defer activationRegistry.mu.Unlock()

	if _, exists := activationRegistry.m[name]; exists {
		return fmt.Errorf("%w: %s", ErrActivationExists, name)
	}
	activationRegistry.m[name] = fn
	return nil
}

func MustRegisterActivation(fn Activation) {
	if err := RegisterActivation(fn); err != nil {
		panic(err)
	}
}

func GetActivation(name string) (Activation, error) {
	activationRegistry.mu.RLock()
	fn, ok := activationRegistry.m[name]
	activationRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActivationNotFound, name)
	}
	return fn, nil
}

// DefaultActivation returns the registered default; the built-in set always
// contains it, so a failed lookup is a programming defect.
func DefaultActivation() Activation {
	fn, err := GetActivation(DefaultActivationName)
	if err != nil {
		panic(err)
	}
	return fn
}

func ListActivations() []string {
	activationRegistry.mu.RLock()
	defer activationRegistry.mu.RUnlock()

	names := make([]string, 0, len(activationRegistry.m))
	for name := range activationRegistry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resetActivationRegistryForTests() {
	activationRegistry.mu.Lock()
	activationRegistry.m = make(map[string]Activation)
	activationRegistry.mu.Unlock()
	initializeBuiltInActivations()
}
