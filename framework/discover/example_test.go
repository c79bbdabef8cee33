package discover_test

import (
	"fmt"
	"reflect"

	"github.com/km-arc/go-discover/framework/discover"
)

type Store interface{ Get(key string) string }

type MemoryStore struct{}

func (s *MemoryStore) Get(string) string { return "" }

// printBinder prints each registration call instead of mutating a container.
type printBinder struct{}

func (printBinder) RegisterSingleton(key, impl reflect.Type) error {
	fmt.Printf("singleton %s -> %s\n", key, impl)
	return nil
}

func (printBinder) RegisterScoped(key, impl reflect.Type) error {
	fmt.Printf("scoped %s -> %s\n", key, impl)
	return nil
}

func (printBinder) RegisterTransient(key, impl reflect.Type) error {
	fmt.Printf("transient %s -> %s\n", key, impl)
	return nil
}

func Example() {
	m := discover.NewModule("storage")
	m.Mark(&MemoryStore{},
		discover.WithLifetime(discover.Singleton),
		discover.As(discover.Key[Store]()))

	if _, err := m.Register(printBinder{}); err != nil {
		fmt.Println("register:", err)
	}

	// Output:
	// singleton discover_test.Store -> *discover_test.MemoryStore
}
