package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/yokai/internal/config"
	"github.com/abhisek/yokai/internal/logging"
	"github.com/abhisek/yokai/internal/quizdata"
)

// env is what every command needs: settings, a logger, and the quiz data.
type env struct {
	viper *viper.Viper
	cfg   *config.Config
	log   *zap.Logger
	data  *quizdata.Data
}

// loadEnv resolves configuration from flags, environment, and file, builds
// the logger, and loads the quiz data. With toFile the logger writes to the
// configured log file, otherwise to stderr.
func loadEnv(cmd *cobra.Command, toFile bool) (*env, error) {
	v, cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool(flagVerbose)
	logOpts := logging.Options{Level: cfg.Log.Level, Verbose: verbose}
	if toFile {
		logOpts.File = cfg.Log.File
	}
	log, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}

	data, err := quizdata.Load(quizdata.Options{
		Dir:     cfg.DataDir,
		PerAxis: cfg.Quiz.PerAxis,
		Strict:  cfg.Quiz.Strict,
	})
	if err != nil {
		log.Error("quiz data rejected", zap.Error(err))
		_ = log.Sync()
		return nil, err
	}
	for _, w := range data.Warnings {
		log.Warn("quiz data", zap.String("warning", w))
	}
	log.Debug("quiz data loaded",
		zap.String("pool_source", data.PoolSource),
		zap.String("pool_version", data.PoolVersion),
		zap.String("table_source", data.TableSource),
		zap.String("table_version", data.TableVersion),
		zap.Int("questions", len(data.Pool)),
		zap.String("config_file", cfg.File),
	)

	return &env{viper: v, cfg: cfg, log: log, data: data}, nil
}

// loadConfig binds the persistent flags to their keys and loads the config.
func loadConfig(cmd *cobra.Command) (*viper.Viper, *config.Config, error) {
	v := config.New()
	bindings := map[string]string{
		config.KeyDataDir:  flagDataDir,
		config.KeyQuizSeed: flagSeed,
	}
	for k, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(k, f); err != nil {
				return nil, nil, fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}

	file, _ := cmd.Flags().GetString(flagConfig)
	cfg, err := config.Load(v, file)
	if err != nil {
		return nil, nil, err
	}
	return v, cfg, nil
}
