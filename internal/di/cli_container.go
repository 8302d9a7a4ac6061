package di

import (
	"flag"
	"os"
	"strings"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/student-lookup/internal/adapters/report"
	"github.com/mikey/student-lookup/internal/config"
	"github.com/mikey/student-lookup/internal/core"
	"github.com/mikey/student-lookup/internal/email"
	"github.com/mikey/student-lookup/internal/factory"
	"github.com/mikey/student-lookup/internal/logging"
)

// stringList is a repeatable flag value collecting addresses
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// CLIFlags contains all command line flags for the lookup tool
type CLIFlags struct {
	// Input flags
	InputFile string
	EmailList []string

	// Connection flags (override config)
	Host   string
	Port   int
	BaseDN string

	// Logging flags
	Verbose bool
	JSONLog bool

	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct.
// Addresses can be given with repeated -e/--email-list flags or as the
// remaining positional arguments.
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}
	var emails stringList

	// Input flags
	flag.StringVar(&flags.InputFile, "i", "", "Path to a file containing a list of email addresses")
	flag.StringVar(&flags.InputFile, "input-file", "", "Path to a file containing a list of email addresses")
	flag.Var(&emails, "e", "Email address to look up (repeatable)")
	flag.Var(&emails, "email-list", "Email address to look up (repeatable)")

	// Connection flags
	flag.StringVar(&flags.Host, "host", "", "Directory host (overrides config)")
	flag.IntVar(&flags.Port, "port", 0, "Directory port (overrides config)")
	flag.StringVar(&flags.BaseDN, "base-dn", "", "Search base DN (overrides config)")

	// Logging flags
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output diagnostics in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file")

	flag.Parse()

	// Positional arguments are addresses too
	flags.EmailList = append([]string(emails), flag.Args()...)

	return flags
}

// BuildCLIContainer creates and configures a dependency injection container
// for the lookup tool
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags) (*config.Config, error) {
		cfg, err := loadConfig(flags)
		if err != nil {
			return nil, err
		}
		applyFlagOverrides(cfg, flags)
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	// Register logger: logging flags win, config keys otherwise
	if err := container.Provide(func(flags *CLIFlags, cfg *config.Config) (*zap.Logger, error) {
		logger, err := logging.InitCLILogger(cfg, flags.Verbose, flags.JSONLog)
		if err != nil {
			return nil, err
		}
		if used := cfg.GetViper().ConfigFileUsed(); used != "" {
			logger.Debug("Loaded configuration from file", zap.String("file", used))
		}
		return logger, nil
	}); err != nil {
		return nil, err
	}

	// Register address collector
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) *email.Collector {
		return email.NewCollector(flags.InputFile, flags.EmailList, os.Stdin, logger)
	}); err != nil {
		return nil, err
	}

	// Register directory factory
	if err := container.Provide(factory.NewDirectoryFactory); err != nil {
		return nil, err
	}

	// Register directory searcher
	if err := container.Provide(func(f *factory.DirectoryFactory) (core.DirectorySearcher, error) {
		return f.CreateSearcher()
	}); err != nil {
		return nil, err
	}

	// Register reporter writing records to stdout
	if err := container.Provide(func(logger *zap.Logger) core.ReportWriter {
		return report.NewReporter(os.Stdout, logger)
	}); err != nil {
		return nil, err
	}

	// Register lookup service
	if err := container.Provide(core.NewLookupService); err != nil {
		return nil, err
	}

	return container, nil
}

// loadConfig loads configuration from an explicit file when given, otherwise
// from the default search paths
func loadConfig(flags *CLIFlags) (*config.Config, error) {
	if flags.ConfigFile != "" {
		return config.NewFromFile(flags.ConfigFile)
	}
	return config.New()
}

// applyFlagOverrides sets the connection values given on the command line
// over whatever the config file or environment supplied
func applyFlagOverrides(cfg *config.Config, flags *CLIFlags) {
	v := cfg.GetViper()
	if flags.Host != "" {
		v.Set("ldap.host", flags.Host)
	}
	if flags.Port != 0 {
		v.Set("ldap.port", flags.Port)
	}
	if flags.BaseDN != "" {
		v.Set("ldap.base_dn", flags.BaseDN)
	}
}
