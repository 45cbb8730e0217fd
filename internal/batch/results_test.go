package batch

import (
	"reflect"
	"testing"
)

func TestResults(t *testing.T) {
	results := NewResults()

	// Test empty results
	if _, found := results.Get("sample.png"); found {
		t.Error("Expected not found in empty results")
	}
	if results.Len() != 0 {
		t.Errorf("Expected 0 results, got %d", results.Len())
	}

	// Test adding and retrieving
	results.Add("menu.jpg", "Daily specials")
	results.Add("sample.png", "Hello")

	translation, found := results.Get("sample.png")
	if !found {
		t.Error("Expected to find 'sample.png' in results")
	}
	if translation != "Hello" {
		t.Errorf("Expected 'Hello', got '%s'", translation)
	}

	// Test overwriting keeps the original position
	results.Add("menu.jpg", "Specials of the day")
	translation, found = results.Get("menu.jpg")
	if !found || translation != "Specials of the day" {
		t.Errorf("Expected 'Specials of the day', got '%s'", translation)
	}

	wantNames := []string{"menu.jpg", "sample.png"}
	if !reflect.DeepEqual(results.Names(), wantNames) {
		t.Errorf("Names() = %v, want %v", results.Names(), wantNames)
	}
	if results.Len() != 2 {
		t.Errorf("Expected 2 results, got %d", results.Len())
	}
}

func TestResults_All(t *testing.T) {
	results := NewResults()
	results.Add("a.png", "one")
	results.Add("b.jpg", "two")

	all := results.All()

	expected := map[string]string{
		"a.png": "one",
		"b.jpg": "two",
	}
	if !reflect.DeepEqual(all, expected) {
		t.Errorf("All() = %v, want %v", all, expected)
	}

	// Test that modifying returned values doesn't affect results
	all["a.png"] = "modified"
	names := results.Names()
	names[0] = "modified.png"

	if translation, _ := results.Get("a.png"); translation != "one" {
		t.Error("Results were modified through returned map")
	}
	if results.Names()[0] != "a.png" {
		t.Error("Results were modified through returned names")
	}
}

func TestResults_Empty(t *testing.T) {
	results := NewResults()

	if all := results.All(); len(all) != 0 {
		t.Errorf("Expected empty map, got %v", all)
	}
	if names := results.Names(); len(names) != 0 {
		t.Errorf("Expected no names, got %v", names)
	}
}
