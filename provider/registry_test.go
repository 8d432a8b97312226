package provider

import (
	"context"
	"testing"
)

type fakeProvider struct {
	name string
}

func (f *fakeProvider) Name() string                     { return f.name }
func (f *fakeProvider) IsAvailable(context.Context) bool { return true }

func TestRegistryCreate(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	reg.RegisterFactory("fake", func(cfg map[string]any) (*fakeProvider, error) {
		name, _ := cfg["name"].(string)
		return &fakeProvider{name: name}, nil
	})

	p, err := reg.Create("fake", map[string]any{"name": "one"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if p.Name() != "one" {
		t.Errorf("Name() = %q, want %q", p.Name(), "one")
	}
}

func TestRegistryCreateUnknown(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	if _, err := reg.Create("missing", nil); err == nil {
		t.Error("Create() with unknown factory should fail")
	}
}

func TestRegistryInstances(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	if _, ok := reg.Get("a"); ok {
		t.Error("Get() on empty registry should miss")
	}
	reg.Set("a", &fakeProvider{name: "a"})
	p, ok := reg.Get("a")
	if !ok || p.Name() != "a" {
		t.Errorf("Get() = %v, %v; want cached instance", p, ok)
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	reg.RegisterFactory("b", func(map[string]any) (*fakeProvider, error) { return nil, nil })
	reg.RegisterFactory("a", func(map[string]any) (*fakeProvider, error) { return nil, nil })
	got := reg.List()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("List() = %v, want [a b]", got)
	}
}
