package main

import (
	"context"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/danielkjellid/hue/internal/config"
	"github.com/danielkjellid/hue/internal/errors"
	"github.com/danielkjellid/hue/pkg/assets"
)

func deployCmd() *cobra.Command {
	var skipBuild bool

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Build, fingerprint, and upload assets to S3",
		Long: `Build the stylesheet, fingerprint the static directory, and upload
everything to the S3 bucket configured in hue.yaml:

  deploy:
    bucket: myapp-assets
    prefix: static/
    region: eu-north-1

AWS credentials are resolved the standard way (environment, shared
config, instance role). A .env file next to hue.yaml is loaded first.

Examples:
  hue deploy
  hue deploy --skip-build`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd.Context(), skipBuild)
		},
	}

	cmd.Flags().BoolVar(&skipBuild, "skip-build", false, "Upload existing assets without rebuilding CSS")

	return cmd
}

func runDeploy(ctx context.Context, skipBuild bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	if cfg.Deploy.Bucket == "" {
		return errors.New("H401").
			WithSuggestion("Add a deploy.bucket entry to hue.yaml")
	}

	if !skipBuild {
		if err := buildCSS(ctx, cfg, true); err != nil {
			return err
		}
		success("Built %s", cfg.CSSOutputPath())
	}

	manifest, err := assets.FingerprintDir(cfg.Static.Dir)
	if err != nil {
		return err
	}
	success("Fingerprinted %d asset(s)", manifest.Len())

	var optFns []func(*awsconfig.LoadOptions) error
	if cfg.Deploy.Region != "" {
		optFns = append(optFns, awsconfig.WithRegion(cfg.Deploy.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return errors.New("H403").Wrap(err)
	}

	publisher := assets.NewPublisher(s3.NewFromConfig(awsCfg), cfg.Deploy.Bucket, cfg.Deploy.Prefix)
	if err := publisher.PublishDir(ctx, cfg.Static.Dir); err != nil {
		return errors.New("H402").Wrap(err)
	}

	success("Deployed to s3://%s/%s", cfg.Deploy.Bucket, cfg.Deploy.Prefix)
	return nil
}
