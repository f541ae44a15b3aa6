package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/config"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/download"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/logger"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/platform"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/service"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/shell"
)

// Collector names accepted by --collector.
const (
	collectorAuto        = "auto"
	collectorPrompt      = "prompt"
	collectorInteractive = "interactive"
	collectorViper       = "viper"
	collectorLua         = "lua"
)

// answerFlags are the flags that can answer the install questions.
var answerFlags = []string{"root-prefix", "init-shell", "shell", "bin-path"}

type installOptions struct {
	configFile string
	collector  string
	rootPrefix string
	initShell  string
	shell      string
	binPath    string
	baseURL    string
}

// stdinIsTerminal is a variable so tests can force the non-interactive path.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newInstallCmd() *cobra.Command {
	var opts installOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Download micromamba and optionally run shell init",
		Example: `  mambastrap install
  mambastrap install --bin-path ~/bin/micromamba --init-shell n
  mambastrap install --config mambastrap.lua`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, &opts)
		},
	}
	addInstallFlags(cmd, &opts)

	return cmd
}

func addInstallFlags(cmd *cobra.Command, opts *installOptions) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "answers file (.yaml, .toml, .json or .lua)")
	flags.StringVar(&opts.collector, "collector", collectorAuto,
		"where answers come from (auto, prompt, interactive, viper, lua)")
	flags.StringVar(&opts.rootPrefix, "root-prefix", "", "root prefix passed to shell init (default "+config.DefaultRootPrefix+")")
	flags.StringVar(&opts.initShell, "init-shell", "", "run shell init (y/n, default y)")
	flags.StringVar(&opts.shell, "shell", "", "shell to initialize ("+strings.Join(shellNames(), ", ")+")")
	flags.StringVar(&opts.binPath, "bin-path", "", "where to write the micromamba binary")
	flags.StringVar(&opts.baseURL, "base-url", download.DefaultBaseURL, "release URL prefix")
}

func runInstall(cmd *cobra.Command, opts *installOptions) error {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	log := logger.Default()
	detector := platform.NewDetector()

	collector, err := newCollector(ctx, cmd, opts, detector)
	if err != nil {
		return err
	}

	runner := &shell.ExecRunner{Stdin: cmd.InOrStdin(), Stdout: out, Stderr: cmd.ErrOrStderr()}
	svc := service.NewInstallService(
		collector,
		detector,
		download.NewDownloader(download.WithLogger(log)),
		shell.NewInitiator(runner, out, log),
		service.RealClock{},
		out,
		log,
	)

	result, err := svc.Execute(ctx, service.InstallRequest{BaseURL: opts.baseURL})
	if err != nil {
		return err
	}

	if result.ShellExit != nil && !result.ShellExit.Success() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", result.ShellExit.Err())
	}
	return nil
}

// newCollector picks the answer source. In auto mode a .lua config selects
// the Lua collector. Any other config file, answer flag or MAMBASTRAP_*
// answer variable selects viper, a terminal gets promptui and anything else plain prompts.
func newCollector(ctx context.Context, cmd *cobra.Command, opts *installOptions, detector platform.Detector) (config.Collector, error) {
	kind := opts.collector
	if kind == collectorAuto {
		kind = autoCollector(cmd, opts)
	}
	logger.Default().Debug("selected collector", "collector", kind)

	switch kind {
	case collectorPrompt:
		return config.NewPromptCollector(cmd.InOrStdin(), cmd.OutOrStdout()), nil
	case collectorInteractive:
		return config.NewInteractiveCollector(), nil
	case collectorViper:
		v, err := config.NewViper(opts.configFile, cmd.Flags())
		if err != nil {
			return nil, err
		}
		return config.NewViperCollector(v), nil
	case collectorLua:
		if opts.configFile == "" {
			return nil, fmt.Errorf("--collector lua requires --config")
		}
		info, err := detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("detect platform: %w", err)
		}
		return config.LoadLuaCollector(ctx, opts.configFile, info)
	default:
		return nil, fmt.Errorf("unknown collector %q", opts.collector)
	}
}

func autoCollector(cmd *cobra.Command, opts *installOptions) string {
	if opts.configFile != "" {
		if strings.EqualFold(filepath.Ext(opts.configFile), ".lua") {
			return collectorLua
		}
		return collectorViper
	}
	for _, name := range answerFlags {
		if cmd.Flags().Changed(name) {
			return collectorViper
		}
	}
	for _, key := range []string{config.KeyRootPrefix, config.KeyInitShell, config.KeyShell, config.KeyBinPath} {
		if _, ok := os.LookupEnv(config.EnvPrefix + "_" + strings.ToUpper(key)); ok {
			return collectorViper
		}
	}
	if stdinIsTerminal() && cmd.InOrStdin() == os.Stdin {
		return collectorInteractive
	}
	return collectorPrompt
}

func shellNames() []string {
	names := make([]string, 0, len(shell.SupportedShells()))
	for _, s := range shell.SupportedShells() {
		names = append(names, s.String())
	}
	return names
}
