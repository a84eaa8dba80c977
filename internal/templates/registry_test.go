package templates

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/k2-saas/create-k2-saas/internal/scaffold"
)

func newTestTemplate(name string) *Template {
	return &Template{
		Name:    name,
		Version: "1.0.0",
		Source: fstest.MapFS{
			"package.json": {Data: []byte(`{"name": "k2-sass"}`)},
		},
		RewriteFiles: []string{"package.json"},
		Placeholders: scaffold.Placeholders{Identifier: "k2-sass", Scope: "k2-saas", Display: "K2-SaaS"},
	}
}

func TestRegistryRegister(t *testing.T) {
	registry := NewRegistry()

	tmpl := newTestTemplate("test-template")

	// Register template
	err := registry.Register(tmpl)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Try to register duplicate
	err = registry.Register(tmpl)
	if err == nil {
		t.Error("Register() should fail for duplicate template")
	}

	// Invalid templates are rejected
	if err := registry.Register(&Template{Name: "broken"}); err == nil {
		t.Error("Register() should fail for an invalid template")
	}
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()

	tmpl := newTestTemplate("test-template")
	registry.Register(tmpl)

	// Get existing template
	got, err := registry.Get("test-template")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if got.Name != tmpl.Name {
		t.Errorf("Get() name = %v, want %v", got.Name, tmpl.Name)
	}

	// Get non-existent template
	_, err = registry.Get("non-existent")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Get() error = %v, want NotFoundError", err)
	}
	if notFound.Name != "non-existent" {
		t.Errorf("NotFoundError.Name = %q", notFound.Name)
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()

	for _, name := range []string{"template3", "template1", "template2"} {
		registry.Register(newTestTemplate(name))
	}

	list := registry.List()
	if len(list) != 3 {
		t.Fatalf("List() returned %d templates, want 3", len(list))
	}

	want := []string{"template1", "template2", "template3"}
	for i, name := range registry.Names() {
		if name != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, name, want[i])
		}
		if list[i].Name != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, list[i].Name, want[i])
		}
	}
}

func TestRegistryExists(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newTestTemplate("test-template"))

	if !registry.Exists("test-template") {
		t.Error("Exists() should return true for registered template")
	}

	if registry.Exists("non-existent") {
		t.Error("Exists() should return false for non-existent template")
	}
}

func TestRegisterBuiltinTemplates(t *testing.T) {
	// Replace default registry temporarily
	registry := NewRegistry()
	oldRegistry := DefaultRegistry()
	SetDefaultRegistry(registry)
	defer SetDefaultRegistry(oldRegistry)

	if err := RegisterBuiltinTemplates(); err != nil {
		t.Fatalf("RegisterBuiltinTemplates() error = %v", err)
	}

	// A second call is a no-op
	if err := RegisterBuiltinTemplates(); err != nil {
		t.Fatalf("RegisterBuiltinTemplates() second call error = %v", err)
	}

	expectedTemplates := []string{DefaultName}
	for _, name := range expectedTemplates {
		tmpl, err := registry.Get(name)
		if err != nil {
			t.Errorf("Failed to get built-in template %s: %v", name, err)
			continue
		}
		if err := tmpl.Validate(); err != nil {
			t.Errorf("Built-in template %s is invalid: %v", name, err)
		}
	}

	if len(registry.List()) != len(expectedTemplates) {
		t.Errorf("Registry has %d templates, want %d", len(registry.List()), len(expectedTemplates))
	}
}

func TestTemplatesConcurrency(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newTestTemplate("test-template"))

	// Concurrent reads
	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- true }()

			for j := 0; j < 100; j++ {
				registry.Get("test-template")
				registry.Exists("test-template")
				registry.List()
			}
		}()
	}

	// Wait for all goroutines to complete
	for i := 0; i < 10; i++ {
		<-done
	}
}
