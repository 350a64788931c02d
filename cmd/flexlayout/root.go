package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/debug"
)

// app holds what PersistentPreRunE resolves for the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"log-file":  "log.file",
	"format":    "output.format",
	"jobs":      "layout.jobs",
	"viewport":  "layout.viewport",
	"width":     "layout.width",
	"height":    "layout.height",
}

func newApp() *app {
	a := &app{v: viper.New(), log: zap.NewNop()}
	config.SetDefaults(a.v)
	return a
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flexlayout",
		Short:         "Resolve flexbox layout trees from fixture files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetVersionTemplate("flexlayout version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (TOML, YAML or JSON)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-file", "", "also write JSON logs to this rotating file")
	pf.StringP("format", "f", "", "output format (text or json)")
	pf.IntP("jobs", "j", 0, "number of files laid out in parallel")

	root.AddCommand(newLayoutCmd(a), newCheckCmd(a), newVersionCmd())
	return root
}

// initialize loads configuration from defaults, the config file,
// FLEXLAYOUT_* variables and flags, then builds the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("flexlayout")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			bindErr = errors.Join(bindErr, a.v.BindPFlag(key, f))
		}
	})
	if bindErr != nil {
		return fmt.Errorf("error binding flags: %w", bindErr)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := debug.New(cfg.Log, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
	if err != nil {
		return err
	}
	a.log = log.Named("flexlayout")
	a.log.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("format", cfg.Output.Format),
		zap.Int("jobs", cfg.Layout.Jobs))
	return nil
}

// logError reports a failed command. Errors raised before the logger was
// built, or below its level, go through a console logger on w.
func (a *app) logError(w io.Writer, err error) {
	log := a.log
	if !log.Core().Enabled(zapcore.ErrorLevel) {
		fallback, ferr := debug.New(debug.Config{Level: "error"}, zapcore.Lock(zapcore.AddSync(w)))
		if ferr != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			return
		}
		log = fallback.Named("flexlayout")
	}
	log = log.WithOptions(zap.AddStacktrace(zapcore.FatalLevel))
	log.Error("command failed", zap.Error(err))
	_ = log.Sync()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "flexlayout version %s\n", version)
		},
	}
}
