package cli

import (
	"errors"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ubports-qa/internal/app"
	"ubports-qa/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "UBPORTS_QA"

const (
	exitFatal = 3
	exitUsage = 4
)

type RootConfig struct {
	ConfigFile string
	Verbose    bool
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "ubports-qa",
		Short:   "Install testing PPAs on a read-only-rooted UBports device",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetBool("verbose"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging")
	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	cmd.AddCommand(newInstallCommand())
	cmd.AddCommand(newRemoveCommand())
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newUpdateCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("root_mount", types.DefaultRootMount)
	viper.SetDefault("apt_cache_dir", types.DefaultAptCacheDir)
	viper.SetDefault("writable_marker", types.DefaultWritableMarker)
	viper.SetDefault("sources_dir", types.DefaultSourcesDir)
	viper.SetDefault("prefs_dir", types.DefaultPrefsDir)
	viper.SetDefault("legacy_base_url", types.DefaultLegacyBaseURL)
	viper.SetDefault("default_base_url", types.DefaultBaseURL)
	viper.SetDefault("jenkins_url", types.DefaultJenkinsURL)
	viper.SetDefault("github_api_url", types.DefaultGitHubAPIURL)

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("ubports-qa")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/ubports-qa")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.DefaultContextLogger = &log.Logger
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func configFromViper() types.Config {
	return types.Config{
		RootMount:      viper.GetString("root_mount"),
		AptCacheDir:    viper.GetString("apt_cache_dir"),
		WritableMarker: viper.GetString("writable_marker"),
		SourcesDir:     viper.GetString("sources_dir"),
		PrefsDir:       viper.GetString("prefs_dir"),
		LegacyBaseURL:  viper.GetString("legacy_base_url"),
		DefaultBaseURL: viper.GetString("default_base_url"),
		JenkinsURL:     viper.GetString("jenkins_url"),
		GitHubAPIURL:   viper.GetString("github_api_url"),
	}
}

func newAppService() app.Service {
	return app.NewService(configFromViper())
}

// exitCodeForError implements the two-tier policy: malformed invocation
// exits 4, every fatal application error exits 3.
func exitCodeForError(err error) int {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		if errbuilder.CodeOf(err) == errbuilder.CodeInvalidArgument {
			return exitUsage
		}
		return exitFatal
	}
	// Anything cobra produces itself is a parse/usage problem.
	return exitUsage
}
