package types

// Config carries every path and endpoint the lifecycle manager touches.
// Defaults match a stock Ubuntu Touch rootfs; tests point the directories
// at a temp tree.
type Config struct {
	RootMount      string
	AptCacheDir    string
	WritableMarker string
	SourcesDir     string
	PrefsDir       string
	LegacyBaseURL  string
	DefaultBaseURL string
	JenkinsURL     string
	GitHubAPIURL   string
}

const (
	DefaultRootMount      = "/"
	DefaultAptCacheDir    = "/var/cache/apt/archives"
	DefaultWritableMarker = "/userdata/.writable_image"
	DefaultSourcesDir     = "/etc/apt/sources.list.d"
	DefaultPrefsDir       = "/etc/apt/preferences.d"
	DefaultLegacyBaseURL  = "http://repo.ubports.com/"
	DefaultBaseURL        = "http://repo2.ubports.com/"
	DefaultJenkinsURL     = "https://ci.ubports.com/blue/rest/organizations/jenkins"
	DefaultGitHubAPIURL   = "https://api.github.com"
)

// DefaultConfig returns the on-device paths and public UBports endpoints.
func DefaultConfig() Config {
	return Config{
		RootMount:      DefaultRootMount,
		AptCacheDir:    DefaultAptCacheDir,
		WritableMarker: DefaultWritableMarker,
		SourcesDir:     DefaultSourcesDir,
		PrefsDir:       DefaultPrefsDir,
		LegacyBaseURL:  DefaultLegacyBaseURL,
		DefaultBaseURL: DefaultBaseURL,
		JenkinsURL:     DefaultJenkinsURL,
		GitHubAPIURL:   DefaultGitHubAPIURL,
	}
}
