// Command skyboxmaker builds skybox assets: cube vertex data with UVs for a 3×4 cross-layout atlas,
// and the atlas image itself composited from six face images.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"skyboxmaker/internal/commands"
	"skyboxmaker/internal/config"
	"skyboxmaker/internal/cubemap"
	"skyboxmaker/internal/debug"
	"skyboxmaker/internal/env"
	"skyboxmaker/internal/facegen"
	"skyboxmaker/internal/logger"
	"skyboxmaker/internal/uvgen"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit status: 0 on success, 1 when a command
// fails, 2 when the command line is wrong.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if _, err := env.Load(".env"); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	cfgPath := config.DefaultPath
	if p := os.Getenv(config.EnvPrefix + "CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err == nil {
		err = config.ApplyEnv(&cfg, os.Getenv)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := logger.New(logger.Options{Out: stdout, FilePath: cfg.LogFile, Debug: cfg.Debug})
	reg := newRegistry(ctx, cfg, log, stdout)

	invocations := [][]string{args}
	if len(args) == 0 {
		invocations = [][]string{{"uv"}, {"cubemap"}}
	}
	for _, inv := range invocations {
		probe := debug.Start()
		err := reg.Execute(inv)
		switch {
		case err == nil:
			// Stop calls ReadMemStats, which stops the world; only pay for it when the line is printed.
			if cfg.Debug {
				log.Debugf("%s: %s", inv[0], probe.Stop())
			}
			continue
		case errors.Is(err, flag.ErrHelp):
			reg.Usage(stderr, "skyboxmaker")
			return 0
		case commands.IsUsage(err):
			fmt.Fprintln(stderr, err)
			reg.Usage(stderr, "skyboxmaker")
			return 2
		default:
			log.Errorf("%v", err)
			return 1
		}
	}
	return 0
}

func newRegistry(ctx context.Context, cfg config.Config, log *logger.Logger, stdout io.Writer) *commands.Registry {
	reg := commands.NewRegistry()

	uvFlags := newFlagSet("uv")
	format := uvFlags.String("format", cfg.VertexFormat, "output format: c or obj")
	reg.Register("uv", "print skybox cube vertices with atlas UVs", uvFlags, func() error {
		return uvgen.Write(stdout, uvgen.Generate(), *format)
	})

	cmFlags := newFlagSet("cubemap")
	in := cmFlags.String("in", cfg.InputDir, "directory holding the six face images")
	out := cmFlags.String("out", cfg.Output, "output BMP path")
	filter := cmFlags.String("filter", cfg.Filter, "resampling filter for mismatched faces")
	reg.Register("cubemap", "composite six face images into a cross-layout BMP", cmFlags, func() error {
		opts := cfg.CompositeOptions()
		opts.InputDir, opts.Output, opts.Filter = *in, *out, *filter
		_, err := cubemap.Build(opts, log)
		return err
	})

	fetchFlags := newFlagSet("fetch")
	url := fetchFlags.String("url", "", "face image or zip of face images to download")
	dir := fetchFlags.String("dir", cfg.InputDir, "directory to save faces into")
	timeout := fetchFlags.Duration("timeout", 0, "overall download timeout (0 = default)")
	reg.Register("fetch", "download face images (or a zip of them) into the input directory", fetchFlags, func() error {
		if *url == "" {
			return &commands.UsageError{Err: errors.New("fetch: -url is required")}
		}
		fctx := ctx
		if *timeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(ctx, *timeout)
			defer cancel()
		}
		_, err := fetchFaces(fctx, nil, *url, *dir, log)
		return err
	})

	sampleFlags := newFlagSet("sample")
	sampleDir := sampleFlags.String("dir", cfg.InputDir, "directory to write the placeholder faces into")
	size := sampleFlags.Int("size", facegen.DefaultOptions().Size, "edge length of each face in pixels")
	seed := sampleFlags.Int64("seed", 0, "noise seed (0 = time based)")
	reg.Register("sample", "generate six placeholder face images", sampleFlags, func() error {
		if *size <= 0 {
			return &commands.UsageError{Err: fmt.Errorf("sample: -size must be positive, got %d", *size)}
		}
		opts := facegen.DefaultOptions()
		opts.Size, opts.Seed = *size, *seed
		paths, err := facegen.WriteSet(*sampleDir, opts)
		if err != nil {
			return err
		}
		for _, p := range paths {
			log.Debugf("wrote %s", p)
		}
		log.Infof("wrote %d placeholder faces (%dx%d) into %s", len(paths), *size, *size, *sampleDir)
		return nil
	})

	inspectFlags := newFlagSet("inspect")
	file := inspectFlags.String("file", cfg.Output, "image to inspect")
	reg.Register("inspect", "report an image's size and skybox layout", inspectFlags, func() error {
		info, err := cubemap.Inspect(*file)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: %s %dx%d layout=%s", *file, info.Format, info.Size.X, info.Size.Y, info.Kind)
		if info.Kind == cubemap.KindCross {
			fmt.Fprintf(stdout, " faces=%dx%d", info.FaceSize.X, info.FaceSize.Y)
		}
		fmt.Fprintln(stdout)
		return nil
	})

	cfgFlags := newFlagSet("config")
	cfgOut := cfgFlags.String("path", config.DefaultPath, "where to write the configuration")
	force := cfgFlags.Bool("force", false, "overwrite an existing file")
	reg.Register("config", "write the effective configuration as YAML", cfgFlags, func() error {
		if !*force {
			if _, err := os.Stat(*cfgOut); err == nil {
				return fmt.Errorf("config: %s exists (use -force)", *cfgOut)
			}
		}
		if err := config.Save(*cfgOut, cfg); err != nil {
			return err
		}
		log.Infof("wrote %s", *cfgOut)
		return nil
	})

	return reg
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
