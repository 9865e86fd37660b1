package domain

// Environment variable names consulted at startup. All runtime behavior
// derived from the environment is resolved once into Settings and threaded
// through explicitly; nothing reads the environment after startup.
const (
	// EnvCI marks a CI environment; confirmation prompts auto-confirm.
	EnvCI = "CI"
	// EnvForceAnswer overrides confirmation prompts with a fixed answer.
	EnvForceAnswer = "FORCE_ANSWER_TO_QUESTIONS"
	// EnvForceBuild treats every image as needing a rebuild.
	EnvForceBuild = "ZEPHYR_FORCE_BUILD"
	// EnvBranch overrides the branch used to scope checksum state.
	EnvBranch = "ZEPHYR_BRANCH"
	// EnvVerbose enables verbose logging.
	EnvVerbose = "VERBOSE"
)

// Settings is the resolved runtime environment. It replaces ad-hoc
// environment lookups scattered through the call tree.
type Settings struct {
	// CI is true when running under a recognized CI environment.
	CI bool
	// ForcedAnswer, when non-empty, answers every confirmation prompt.
	ForcedAnswer string
	// ForceBuild treats every image as changed.
	ForceBuild bool
	// Branch scopes checksum state; overrides the configured branch.
	Branch string
	// Verbose enables verbose logging.
	Verbose bool
}

// ResolveSettings builds Settings from an environment lookup function,
// typically os.LookupEnv.
func ResolveSettings(lookup func(string) (string, bool)) Settings {
	return Settings{
		CI:           isTruthy(lookup, EnvCI),
		ForcedAnswer: stringValue(lookup, EnvForceAnswer),
		ForceBuild:   isTruthy(lookup, EnvForceBuild),
		Branch:       stringValue(lookup, EnvBranch),
		Verbose:      isTruthy(lookup, EnvVerbose),
	}
}

func isTruthy(lookup func(string) (string, bool), key string) bool {
	v, ok := lookup(key)
	return ok && (v == "true" || v == "1")
}

func stringValue(lookup func(string) (string, bool), key string) string {
	v, _ := lookup(key)
	return v
}
