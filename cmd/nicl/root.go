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

	ni "github.com/tarantool/go-ni"
	"github.com/tarantool/go-ni/namer"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitError    = 2

	envPrefix = "NICL"
)

// errMismatch is returned by commands whose comparison came out negative.
var errMismatch = errors.New("mismatch")

// app holds the state shared by the commands of one invocation.
type app struct {
	config *viper.Viper
	out    io.Writer
	errOut io.Writer

	logger  *zap.Logger
	binder  ni.Binder
	printer printer
}

func run(args []string, out, errOut io.Writer) int {
	a := &app{
		config:  viper.New(),
		out:     out,
		errOut:  errOut,
		logger:  zap.NewNop(),
		binder:  ni.New(),
		printer: printer{},
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()

	_ = a.logger.Sync()

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errMismatch):
		return exitMismatch
	default:
		fmt.Fprintln(errOut, "Error:", err)
		return exitError
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "nicl",
		Short: "Make and check ni and nih names",
		Long: "nicl binds file contents to RFC 6920 names: ni:///sha-256;<digest>,\n" +
			"nih:sha-256-32;<hex>;<check digit> and their .well-known URLs.\n" +
			"Flags can also be set through NICL_* environment variables or --config.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	addGlobalFlags(flags)

	a.config.SetEnvPrefix(envPrefix)
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()
	_ = a.config.BindPFlags(flags)

	root.AddCommand(
		a.makeCommand(),
		a.checkCommand(),
		a.wellKnownCommand(),
		a.mapCommand(),
		a.convertCommand(),
		a.digestCommand(),
		a.binCommand(),
		a.algsCommand(),
	)

	return root
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "YAML file with flag values")
	flags.StringP("output", "o", formatText, "output format: text, yaml or msgpack")
	flags.Bool("debug", false, "log debug messages to stderr")
	flags.Int("capacity", namer.Capacity, "maximum length of a produced name in bytes")
	flags.String("authority", "", "authority used by map for names without one")
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	if path := a.config.GetString("config"); path != "" {
		a.config.SetConfigFile(path)
		a.config.SetConfigType("yaml")

		err := a.config.ReadInConfig()
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	p, err := newPrinter(a.out, a.config.GetString("output"))
	if err != nil {
		return err
	}

	capacity := a.config.GetInt("capacity")
	if capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", capacity)
	}

	a.printer = p
	a.logger = newLogger(a.errOut, a.config.GetBool("debug"))
	a.binder = ni.New(
		ni.WithCapacity(capacity),
		ni.WithDefaultAuthority(a.config.GetString("authority")),
		ni.WithLogger(a.logger),
	)

	return nil
}

// newLogger logs warnings as JSON, or everything in console form with debug.
func newLogger(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.WarnLevel
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	if debug {
		level = zapcore.DebugLevel
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)

	return zap.New(core).Named("nicl")
}
