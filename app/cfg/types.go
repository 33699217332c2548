package cfg

type Cfg struct {
	// Storage configuration
	DataDir string
	DBFile  string

	// Application configuration
	ArticlesDir       string
	Port              string
	WorkerCount       int
	SchedulerInterval int
	APIAccessKey      string

	// Simulated latency for the mock surfaces, milliseconds
	FetchDelay  int
	SearchDelay int
	ChatDelay   int

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
