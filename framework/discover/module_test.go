package discover_test

import (
	"testing"

	"github.com/km-arc/go-discover/framework/discover"
)

func TestModule_Name(t *testing.T) {
	m := discover.NewModule("payments")
	if m.Name() != "payments" {
		t.Errorf("got %q, want %q", m.Name(), "payments")
	}
}

func TestModule_EntriesPreserveMarkOrder(t *testing.T) {
	m := discover.NewModule("m")
	m.Mark(&serviceC{})
	m.Mark(&serviceA{})
	m.Mark(&serviceB{})

	entries := m.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	want := []string{"*discover_test.serviceC", "*discover_test.serviceA", "*discover_test.serviceB"}
	for i, e := range entries {
		if e.Impl.String() != want[i] {
			t.Errorf("entry %d: got %s, want %s", i, e.Impl, want[i])
		}
	}
}

func TestModule_EntriesReturnsCopy(t *testing.T) {
	m := discover.NewModule("m")
	m.Mark(&serviceA{})

	entries := m.Entries()
	entries[0].Marker.Lifetime = discover.Singleton

	if m.Entries()[0].Marker.Lifetime != discover.Scoped {
		t.Error("mutating the returned slice leaked into the module")
	}
}

func TestRegisterModule_TableOrder(t *testing.T) {
	discover.ResetModules()
	t.Cleanup(discover.ResetModules)

	a := discover.NewModule("a")
	b := discover.NewModule("b")
	discover.RegisterModule(a)
	discover.RegisterModule(b)

	got := discover.Modules()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Modules() = %v, want [a b] in registration order", got)
	}
}

func TestResetModules(t *testing.T) {
	discover.ResetModules()
	discover.RegisterModule(discover.NewModule("gone"))
	discover.ResetModules()

	if n := len(discover.Modules()); n != 0 {
		t.Errorf("got %d modules after reset, want 0", n)
	}
}
