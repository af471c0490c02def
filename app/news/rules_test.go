package news

import (
	"testing"
)

func TestDefaultRules_CategoryOrder(t *testing.T) {
	rules := DefaultRules()

	expected := []string{
		"sustainability",
		"climate_change",
		"biodiversity",
		"renewable_energy",
		"pollution",
		"environmental_policy",
		"environmental_tech",
		OthersID,
	}

	if len(rules.Categories) != len(expected) {
		t.Fatalf("Expected %d categories, got %d", len(expected), len(rules.Categories))
	}
	for i, id := range expected {
		if rules.Categories[i].ID != id {
			t.Errorf("Expected category %d to be '%s', got '%s'", i, id, rules.Categories[i].ID)
		}
	}
}

func TestDefaultRules_OthersHasNoKeywords(t *testing.T) {
	rules := DefaultRules()

	others := rules.Others()
	if others.ID != OthersID {
		t.Errorf("Expected fallback id '%s', got '%s'", OthersID, others.ID)
	}
	if len(others.Keywords) != 0 {
		t.Errorf("Expected fallback category to have no keywords, got %d", len(others.Keywords))
	}
}

func TestDefaultRules_ByName(t *testing.T) {
	rules := DefaultRules()

	cat, ok := rules.ByName("Climate Change")
	if !ok {
		t.Fatal("Expected 'Climate Change' to resolve")
	}
	if cat.ID != "climate_change" {
		t.Errorf("Expected id 'climate_change', got '%s'", cat.ID)
	}

	if _, ok := rules.ByName("Not A Category"); ok {
		t.Error("Expected unknown name to not resolve")
	}
}

func TestDefaultRules_CountryDisplayNames(t *testing.T) {
	rules := DefaultRules()

	found := map[string]bool{}
	for _, country := range rules.Countries {
		found[country.Name] = true
	}

	for _, name := range []string{"United States", "South Korea", "European Union", "United Kingdom"} {
		if !found[name] {
			t.Errorf("Expected country display name '%s' in rule table", name)
		}
	}
}

func TestIsRecordKey(t *testing.T) {
	valid := []string{"news-20240101-000", "news-19991231-999"}
	invalid := []string{"news-2024010-000", "news-20240101-00", "news-20240101-0000", "report-20240101-000", "news-20240101", "cache:homepage"}

	for _, key := range valid {
		if !IsRecordKey(key) {
			t.Errorf("Expected '%s' to be a record key", key)
		}
	}
	for _, key := range invalid {
		if IsRecordKey(key) {
			t.Errorf("Expected '%s' to not be a record key", key)
		}
	}
}
