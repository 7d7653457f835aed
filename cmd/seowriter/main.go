package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TobiSchelling/seowriter/internal/config"
	"github.com/TobiSchelling/seowriter/internal/console"
	"github.com/TobiSchelling/seowriter/internal/freeze"
	"github.com/TobiSchelling/seowriter/internal/llm"
	"github.com/TobiSchelling/seowriter/internal/logging"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
	logger     *zap.SugaredLogger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "seowriter",
	Short:   "SEO article generator",
	Long:    "seowriter generates an SEO title, meta description, outline and article with an LLM, then scores and reviews the result.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		if err := config.LoadEnv(); err != nil {
			return err
		}
		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logger, err = logging.New(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}
		if path != "" {
			logger.Debugf("Loaded config from %s", path)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("seowriter", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/seowriter/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to choose the LLM provider and model. Put OPENAI_API_KEY in your environment or a .env file.")
		return nil
	},
}

// --- generate command ---

var outputPath string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an article interactively: title -> meta -> outline -> article -> evaluation",
	// A failed run is not a usage mistake.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Output.DependencyFile != "" {
			defer func() {
				if err := freeze.WriteFile(cfg.Output.DependencyFile); err != nil {
					logger.Warnf("Could not write dependency snapshot: %v", err)
				}
			}()
		}

		gen := cfg.Generation
		provider, err := llm.CreateProvider(llm.Settings{
			Provider:    gen.Provider,
			Model:       gen.Model,
			APIKey:      gen.APIKey(),
			BaseURL:     gen.BaseURL,
			Temperature: gen.Temperature,
		})
		if err != nil {
			return err
		}
		if !provider.IsConfigured() {
			logger.Warnf("%s is not set; generation calls will fail", gen.APIKeyEnv)
		}

		path := cfg.Output.ReportFile
		if outputPath != "" {
			path = outputPath
		}

		return generate(context.Background(), generateOptions{
			cfg:        cfg,
			provider:   provider,
			prompter:   console.Stdin(),
			out:        os.Stdout,
			log:        logger,
			reportPath: path,
			interrupt:  notifyInterrupt,
		})
	},
}

// notifyInterrupt cancels the returned context on Ctrl-C.
func notifyInterrupt(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}

func init() {
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report file (overrides output.report_file)")
}
