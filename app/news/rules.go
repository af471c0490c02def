package news

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	OthersID   = "others"
	OthersName = "Others"
)

// Category declaration order is canonical: the classifier's first-match-wins
// semantic depends on it, so it must never be reordered.
func defaultCategories() []CategoryRule {
	return []CategoryRule{
		{
			ID:   "sustainability",
			Name: "Sustainability",
			Keywords: []string{
				"sustainability", "sustainable", "circular economy", "green economy", "esg", "csr",
				"corporate social responsibility", "sustainable development goals", "sdg", "eco-friendly",
				"resource efficiency", "reuse", "reduce", "recycle", "zero waste", "waste management",
				"green business", "green building", "low carbon", "carbon neutral", "green bond",
				"sustainable finance", "responsible sourcing", "life cycle assessment", "agriculture",
				"farming", "regenerative agriculture", "organic farming", "sustainable food",
				"supply chain", "fair trade", "eco-tourism", "green tourism", "sustainable packaging",
				"circular fashion",
			},
		},
		{
			ID:   "climate_change",
			Name: "Climate Change",
			Keywords: []string{
				"climate change", "global warming", "greenhouse gas", "greenhouse gases",
				"carbon emission", "carbon emissions", "co2", "ch4", "methane", "temperature rise",
				"net zero", "paris agreement", "ipcc", "cop26", "cop27", "cop28", "climate crisis",
				"warming planet", "carbon footprint", "emission reduction", "carbon offset",
				"sea level rise", "extreme weather", "climate resilience", "fossil fuel", "fossil fuels",
				"oil and gas", "pipeline", "pipelines", "global heating", "decarbonization", "1.5c", "2c",
				"tipping point", "carbon budget", "permafrost", "el niño", "el nino", "la niña", "la nina",
				"heatwave",
			},
		},
		{
			ID:   "biodiversity",
			Name: "Biodiversity",
			Keywords: []string{
				"biodiversity", "endangered", "endangered species", "wildlife", "ecosystem",
				"habitat loss", "deforestation", "reforestation", "conservation", "extinction",
				"protected areas", "species loss", "nature restoration", "marine life",
				"ocean biodiversity", "pollinator", "coral reef", "habitat fragmentation",
				"ecosystem services", "rewilding", "invasive species", "poaching", "wildlife trade",
				"species reintroduction", "biodiversity hotspot",
			},
		},
		{
			ID:   "renewable_energy",
			Name: "Renewable Energy",
			Keywords: []string{
				"renewable", "renewables", "solar", "solar panel", "solar farm", "wind", "wind turbine",
				"wind farm", "windfarm", "hydro", "hydropower", "geothermal", "biofuel", "biomass",
				"energy transition", "sustainable energy", "green energy", "battery storage", "ev",
				"electric vehicle", "ev charging", "charging station", "hydrogen", "offshore wind", "pv",
				"microgrid", "photovoltaic", "photovoltaic cell", "clean power", "grid integration",
				"transmission line", "green hydrogen", "fuel cell",
			},
		},
		{
			ID:   "pollution",
			Name: "Pollution",
			Keywords: []string{
				"pollution", "air quality", "air pollution", "water pollution", "plastic waste",
				"chemical pollution", "microplastic", "microplastics", "ocean pollution", "smog",
				"contaminants", "toxic waste", "wastewater", "industrial pollution", "noise pollution",
				"soil contamination", "particulate matter", "pm2.5", "pm10", "ozone", "sulfur dioxide",
				"pfas", "forever chemicals", "heavy metal", "lead", "mercury", "arsenic",
				"chemical spill", "pesticide", "herbicide", "black carbon", "soot", "nox",
				"nitrogen oxide", "sewage", "e-waste",
			},
		},
		{
			ID:   "environmental_policy",
			Name: "Environmental Policy",
			Keywords: []string{
				"environmental policy", "climate policy", "environmental regulation",
				"environmental regulations", "environmental law", "carbon pricing", "carbon tax",
				"emissions trading", "cap and trade", "green deal", "government policy", "legislation",
				"policy initiative", "environmental standard", "regulation", "regulations", "directive",
				"epa", "eia", "environmental impact assessment", "kyoto protocol", "farm bill",
				"subsidy", "subsidies", "tax credit", "appropriations", "supreme court",
				"climate finance", "trade agreement", "infrastructure bill",
			},
		},
		{
			ID:   "environmental_tech",
			Name: "Environmental Technology",
			Keywords: []string{
				"environmental technology", "green tech", "clean tech", "cleantech", "carbon capture",
				"carbon capture technology", "ccs", "direct air capture", "dacs",
				"environmental monitoring", "sensor", "satellite", "smart grid", "smart city",
				"waste treatment", "water treatment", "eco-innovation", "recycling technology",
				"waste-to-energy", "bioremediation", "ai", "iot", "drone", "smart irrigation",
				"energy storage", "grid modernization", "biotech", "battery", "solid-state battery",
				"perovskite solar", "biochar", "negative emissions", "synthetic biology",
				"digital twin", "blockchain energy", "quantum sensing", "drone mapping",
			},
		},
		{
			ID:       OthersID,
			Name:     OthersName,
			Keywords: []string{},
		},
	}
}

func defaultCountries() []CountryRule {
	titleCaser := cases.Title(language.English)

	raw := []struct {
		name     string
		patterns []string
	}{
		{"united states", []string{"united states", "us", "usa", "america", "american"}},
		{"china", []string{"china", "chinese"}},
		{"india", []string{"india", "indian"}},
		{"european union", []string{"eu", "european union", "europe"}},
		{"united kingdom", []string{"uk", "united kingdom", "britain", "british"}},
		{"japan", []string{"japan", "japanese"}},
		{"south korea", []string{"south korea", "korean", "korea"}},
		{"australia", []string{"australia", "australian"}},
		{"brazil", []string{"brazil", "brazilian"}},
		{"russia", []string{"russia", "russian"}},
		{"canada", []string{"canada", "canadian"}},
		{"germany", []string{"germany", "german"}},
		{"france", []string{"france", "french"}},
		{"italy", []string{"italy", "italian"}},
		{"spain", []string{"spain", "spanish"}},
	}

	countries := make([]CountryRule, 0, len(raw))
	for _, entry := range raw {
		countries = append(countries, CountryRule{
			Name:     titleCaser.String(entry.name),
			Patterns: entry.patterns,
		})
	}

	return countries
}

type countryMatcher struct {
	name     string
	patterns []*regexp.Regexp
}

// Rules bundles the category and country tables with their derived lookup
// structures. A Rules value is immutable after construction and injected
// into the Classifier and Aggregator.
type Rules struct {
	Categories []CategoryRule
	Countries  []CountryRule

	byName   map[string]CategoryRule
	matchers []countryMatcher
}

func newRules(categories []CategoryRule, countries []CountryRule) *Rules {
	byName := make(map[string]CategoryRule, len(categories))
	for _, cat := range categories {
		byName[cat.Name] = cat
	}

	matchers := make([]countryMatcher, 0, len(countries))
	for _, country := range countries {
		patterns := make([]*regexp.Regexp, 0, len(country.Patterns))
		for _, pattern := range country.Patterns {
			// Word-boundary match: stricter than category matching, so
			// short abbreviations like "us" cannot fire inside words.
			patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(pattern)+`\b`))
		}
		matchers = append(matchers, countryMatcher{name: country.Name, patterns: patterns})
	}

	return &Rules{
		Categories: categories,
		Countries:  countries,
		byName:     byName,
		matchers:   matchers,
	}
}

// DefaultRules returns the built-in rule tables.
func DefaultRules() *Rules {
	return newRules(defaultCategories(), defaultCountries())
}

// Others returns the fallback category rule.
func (r *Rules) Others() CategoryRule {
	return r.byName[OthersName]
}

// ByName resolves a category display name to its rule.
func (r *Rules) ByName(name string) (CategoryRule, bool) {
	cat, ok := r.byName[name]
	return cat, ok
}
