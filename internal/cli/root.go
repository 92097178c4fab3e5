package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"textsearch/internal/config"
	"textsearch/internal/matcher"
	"textsearch/internal/search"
	"textsearch/internal/service"
	"textsearch/internal/size"
)

// Version is injected at build time via -ldflags
var Version = "dev"

type rootOptions struct {
	configPath string
	root       string
	quiet      bool
}

// app holds what every subcommand needs once flags have been parsed.
type app struct {
	cfg    *config.AppConfig
	logger *log.Logger
}

// NewRootCommand creates and returns the root cobra command for textsearch
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	cmd := &cobra.Command{
		Use:   "textsearch",
		Short: "Literal text search over a directory of .txt files",
		Long: heredoc.Doc(`
			textsearch scans a directory tree for text files containing a literal,
			case-sensitive substring and returns the first matching lines, numbered
			across the whole search, together with the total size of the tree.

			Nothing is indexed: every search re-reads the files on disk.
		`),
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			a.cfg = cfg
			out := cmd.ErrOrStderr()
			if opts.quiet {
				out = io.Discard
			}
			a.logger = log.New(out, "", log.LstdFlags)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML config file (optional; uses ./textsearch.yaml or ~/.config/textsearch/config.yaml if not provided)")
	cmd.PersistentFlags().StringVar(&opts.root, "root", "", "Directory to search (overrides config and "+config.EnvRoot+")")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress log output")

	cmd.AddCommand(newServeCommand(a))
	cmd.AddCommand(newTUICommand(a))
	cmd.AddCommand(newSearchCommand(a))
	cmd.AddCommand(newSizeCommand(a))

	return cmd
}

func loadConfig(opts *rootOptions) (*config.AppConfig, error) {
	var cfg *config.AppConfig
	var err error
	if opts.configPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(opts.configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.root != "" {
		cfg.Root = opts.root
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Assemble components
func (a *app) service() *service.Service {
	m := matcher.New(a.cfg.Limits.MaxPerFile)
	engine := search.New(search.Config{
		Root:       a.cfg.Root,
		Ext:        a.cfg.Extension,
		MaxResults: a.cfg.Limits.MaxResults,
		MaxFiles:   a.cfg.Limits.MaxFiles,
		Timeout:    a.cfg.Limits.Timeout(),
		Truncated:  a.cfg.Messages.Truncated,
		NoResults:  a.cfg.Messages.NoResults,
	}, m, a.logger)
	return service.New(engine, size.NewAggregator(a.cfg.Root, a.logger))
}
