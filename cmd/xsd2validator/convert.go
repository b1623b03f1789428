package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"xsd-validator-generator/internal/config"
	"xsd-validator-generator/internal/output"
	"xsd-validator-generator/internal/validator"
	"xsd-validator-generator/internal/xsd"
)

func newConvertCmd(opts *options) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "convert [flags] SCHEMA...",
		Short: "Write validation metadata for the given schemas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			files, err := convert(cfg, args)
			if err != nil {
				return err
			}

			if dryRun {
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", f.Path, f.Content)
				}

				return nil
			}

			if err := output.WriteFiles(files); err != nil {
				return err
			}

			logger.Info(fmt.Sprintf("wrote %d file(s)", len(files)))

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the metadata instead of writing it")

	return cmd
}

// convert loads the schemas and renders the metadata files for cfg.
func convert(cfg *config.Config, paths []string) ([]output.File, error) {
	if err := report("config", config.Validate(cfg)); err != nil {
		return nil, err
	}

	cc, err := cfg.Converter()
	if err != nil {
		return nil, err
	}

	schemas, diags, err := xsd.LoadFiles(paths...)
	if rerr := report("schema", &diags); rerr != nil {
		return nil, rerr
	}

	if err != nil {
		return nil, err
	}

	logger.Verbose(fmt.Sprintf("loaded %d schema document(s)", len(schemas)))

	conv := validator.New(cc)

	classes, err := conv.Convert(schemas...)
	cdiags := conv.Diagnostics()

	if rerr := report("conversion", &cdiags); rerr != nil {
		return nil, rerr
	}

	if err != nil {
		return nil, err
	}

	logger.Verbose(fmt.Sprintf("%d class(es) carry rules", len(classes)))

	if cfg.Output.SingleFile != "" {
		file, err := output.SingleFile(classes, cfg.Output.SingleFile)
		if err != nil {
			return nil, err
		}

		return []output.File{file}, nil
	}

	return output.Files(classes, cfg.Destinations)
}
