package news

import (
	"testing"
)

func TestClassifier_Classify_RenewableEnergy(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	cat := classifier.Classify("New installation announced", "The plant uses solar power")

	if cat.Name != "Renewable Energy" {
		t.Errorf("Expected 'Renewable Energy', got '%s'", cat.Name)
	}
	if cat.ID != "renewable_energy" {
		t.Errorf("Expected id 'renewable_energy', got '%s'", cat.ID)
	}
}

func TestClassifier_Classify_EmptyText_Others(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	cat := classifier.Classify("", "")

	if cat.Name != OthersName {
		t.Errorf("Expected '%s' for empty text, got '%s'", OthersName, cat.Name)
	}
	if cat.ID != OthersID {
		t.Errorf("Expected id '%s' for empty text, got '%s'", OthersID, cat.ID)
	}
}

func TestClassifier_Classify_NoMatch_Others(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	cat := classifier.Classify("Quarterly results", "Stock prices moved sideways today")

	if cat.Name != OthersName {
		t.Errorf("Expected '%s', got '%s'", OthersName, cat.Name)
	}
}

func TestClassifier_Classify_SubstringSemantics(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	// Category matching is substring containment, not whole-word matching:
	// "prevention" contains the keyword "ev".
	cat := classifier.Classify("Prevention measures announced", "")

	if cat.Name != "Renewable Energy" {
		t.Errorf("Expected substring match on 'ev' to yield 'Renewable Energy', got '%s'", cat.Name)
	}
}

func TestClassifier_Classify_FirstCategoryWins(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	// Text matching both Sustainability ("esg") and Renewable Energy
	// ("solar") resolves to the earlier declared category.
	cat := classifier.Classify("ESG funds pour into solar projects", "")

	if cat.Name != "Sustainability" {
		t.Errorf("Expected declaration order to pick 'Sustainability', got '%s'", cat.Name)
	}
}

func TestClassifier_Classify_Deterministic(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	title := "Microplastics found in river sediment"
	summary := "Survey finds toxins in waterways"

	first := classifier.Classify(title, summary)
	for i := 0; i < 10; i++ {
		if got := classifier.Classify(title, summary); got.Name != first.Name {
			t.Fatalf("Classification is not deterministic: got '%s' then '%s'", first.Name, got.Name)
		}
	}
	if first.Name != "Pollution" {
		t.Errorf("Expected 'Pollution', got '%s'", first.Name)
	}
}

func TestClassifier_InferCountry_Korea(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	country := classifier.InferCountry("Korea expands offshore wind capacity", "")

	if country != "South Korea" {
		t.Errorf("Expected 'South Korea', got '%s'", country)
	}
}

func TestClassifier_InferCountry_WordBoundary(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	// "us" appears inside "business" but must not match United States:
	// country matching is word-boundary aware, unlike category matching.
	country := classifier.InferCountry("Local business leaders meet", "Industry roundup")

	if country != "" {
		t.Errorf("Expected no country for substring-only occurrence, got '%s'", country)
	}
}

func TestClassifier_InferCountry_Abbreviation(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	country := classifier.InferCountry("US announces new emissions targets", "")

	if country != "United States" {
		t.Errorf("Expected 'United States', got '%s'", country)
	}
}

func TestClassifier_InferCountry_NoMatch(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	country := classifier.InferCountry("Ocean cleanup expedition sets sail", "")

	if country != "" {
		t.Errorf("Expected empty country, got '%s'", country)
	}
}
