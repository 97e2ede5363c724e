package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielkjellid/hue/internal/config"
	"github.com/danielkjellid/hue/internal/tailwind"
	"github.com/danielkjellid/hue/pkg/assets"
)

func cssCmd() *cobra.Command {
	var (
		minify      bool
		fingerprint bool
	)

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Build the Tailwind CSS stylesheet",
		Long: `Build the project stylesheet using the standalone Tailwind CSS binary.

The binary is downloaded on first use and cached per version under
~/.hue/bin. With --fingerprint, the built stylesheet is copied under a
content-hashed name and a manifest.json is written next to it.

Examples:
  hue css
  hue css --minify --fingerprint`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSS(cmd.Context(), minify, fingerprint)
		},
	}

	cmd.Flags().BoolVarP(&minify, "minify", "m", false, "Minify the output CSS")
	cmd.Flags().BoolVarP(&fingerprint, "fingerprint", "f", false, "Fingerprint output and write manifest.json")

	return cmd
}

func runCSS(ctx context.Context, minify, fingerprint bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	if err := buildCSS(ctx, cfg, minify); err != nil {
		return err
	}
	success("Built %s", cfg.CSSOutputPath())

	if fingerprint {
		manifest, err := assets.FingerprintDir(cfg.Static.Dir)
		if err != nil {
			return err
		}
		success("Fingerprinted %d asset(s), wrote %s", manifest.Len(), assets.ManifestName)
	}

	return nil
}

func buildCSS(ctx context.Context, cfg *config.Config, minify bool) error {
	binary := tailwind.NewBinary(cfg.Tailwind.Version)
	builder := tailwind.NewBuilder(binary)

	return builder.Build(ctx, tailwind.BuildConfig{
		InputPath:  cfg.Tailwind.Input,
		OutputPath: cfg.CSSOutputPath(),
		ProjectDir: cfg.Dir(),
		Content:    cfg.Tailwind.Content,
		Minify:     minify,
	})
}
