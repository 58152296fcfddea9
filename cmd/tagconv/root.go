package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"type-transformer/builtin"
	"type-transformer/composite"
	"type-transformer/internal/config"
)

// flagKeys maps viper keys to flag names.
var flagKeys = map[string]string{
	"prefix":     "prefix",
	"categories": "categories",
	"log_level":  "log-level",
	"from":       "from",
	"to":         "to",
}

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), cfg: config.Defaults(), log: zap.NewNop()}
	defaults := config.Defaults()

	root := &cobra.Command{
		Use:   "tagconv",
		Short: "Convert type-tagged documents between formats",
		Long: `tagconv reads documents whose typed values are wrapped in tag maps
such as {"$go.time": "2024-05-06T07:08:09Z"}, restores them with the builtin
transformers and writes them back in another format.

Settings come from flags, TAGCONV_* environment variables and an optional
YAML config file, in that order of precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML)")
	flags.String("prefix", defaults.Prefix, "tag key prefix")
	flags.String("categories", defaults.Categories, "builtin categories, comma separated, or all/none")
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.StringP("from", "f", defaults.From, "input format ("+strings.Join(config.Formats(), ", ")+")")
	flags.StringP("to", "t", defaults.To, "output format ("+strings.Join(config.Formats(), ", ")+")")

	if err := bindFlags(a.v, flags, flagKeys); err != nil {
		panic(err)
	}

	root.AddCommand(a.convertCmd(), a.inspectCmd(), a.tagsCmd(), a.configCmd())

	return root
}

// bindFlags binds each viper key to the flag named for it.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}

	return nil
}

// load resolves the configuration for the command about to run.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	defaults := config.Defaults()
	a.v.SetDefault("prefix", defaults.Prefix)
	a.v.SetDefault("from", defaults.From)
	a.v.SetDefault("to", defaults.To)
	a.v.SetDefault("categories", defaults.Categories)
	a.v.SetDefault("log_level", defaults.LogLevel)

	a.v.SetEnvPrefix("TAGCONV")
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		a.v.SetConfigType("yaml")

		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := a.cfg.Level()
	a.log = newLogger(cmd.ErrOrStderr(), level)
	a.log.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("prefix", a.cfg.Prefix),
		zap.String("categories", a.cfg.Categories))

	return nil
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)

	return zap.New(core)
}

// registry builds the builtin registry using the input format.
func (a *app) registry() (*composite.Composite, error) {
	mask, err := a.cfg.CategoryMask()
	if err != nil {
		return nil, err
	}

	from, err := config.SerializerFor(a.cfg.From)
	if err != nil {
		return nil, err
	}

	return builtin.New(mask,
		composite.WithPrefix(a.cfg.Prefix),
		composite.WithSerializer(from),
		composite.WithLogger(a.log))
}

// readInput reads the file named by args, or stdin when there is none or
// it is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return data, nil
}
