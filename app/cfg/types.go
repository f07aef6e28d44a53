package cfg

type Cfg struct {
	// Database configuration
	DBFile string

	// Application configuration
	Port         string
	SourcesFile  string
	WorkerCount  int
	FetchTimeout int
	APIAccessKey string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
