package cfg

type Cfg struct {
	// Store configuration
	StoreURL string

	// Application configuration
	Port            string
	RefreshInterval int
	SampleNewsLimit int
	RulesFile       string
	APIAccessKey    string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
