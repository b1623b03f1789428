package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"xsd-validator-generator/internal/config"
	"xsd-validator-generator/internal/diagnostic"
)

var errInvalid = errors.New("invalid input")

// options are the flags shared by all commands.
type options struct {
	configFile     string
	namespaces     []string
	destinations   []string
	aliases        []string
	namingStrategy string
	singleFile     string
	verbose        bool
	quiet          bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "xsd2validator",
		Short:         "Convert XSD restrictions into Symfony validation rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.SetLogLevel(logLevel(opts))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to the YAML configuration file")
	flags.StringArrayVar(&opts.namespaces, "ns-map", nil, `XML namespace to class namespace, "xmlns;phpns"`)
	flags.StringArrayVar(&opts.destinations, "ns-dest", nil, `Class namespace to output directory, "phpns;dir"`)
	flags.StringArrayVar(&opts.aliases, "alias-map", nil, `Type alias, "xmlns;name;alias"`)
	flags.StringVar(&opts.namingStrategy, "naming-strategy", "", `Class naming strategy, "short" or "long"`)
	flags.StringVar(&opts.singleFile, "single-file", "", "Write every class into this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only print errors")

	root.AddCommand(
		newConvertCmd(opts),
		newInspectCmd(opts),
		newVersionCmd(),
	)

	return root
}

func logLevel(opts *options) logger.TLogLevel {
	switch {
	case opts.quiet:
		return logger.LogLevelError
	case opts.verbose:
		return logger.LogLevelVerbose
	default:
		return logger.LogLevelInfo
	}
}

// loadConfig reads the configuration file, if any, and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.New()

	if opts.configFile != "" {
		loaded, err := config.LoadFile(opts.configFile)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if err := cfg.AddNamespaces(opts.namespaces); err != nil {
		return nil, err
	}

	if err := cfg.AddDestinations(opts.destinations); err != nil {
		return nil, err
	}

	if err := cfg.AddAliases(opts.aliases); err != nil {
		return nil, err
	}

	if opts.namingStrategy != "" {
		cfg.NamingStrategy = opts.namingStrategy
	}

	if opts.singleFile != "" {
		cfg.Output.SingleFile = opts.singleFile
	}

	return cfg, nil
}

// report logs diagnostics and returns an error when any of them is an error.
func report(what string, diags *diagnostic.Diagnostics) error {
	diags.Log()

	if diags.HasErrors() {
		return fmt.Errorf("%w: %s: %d error(s)", errInvalid, what, len(diags.Errors))
	}

	return nil
}
