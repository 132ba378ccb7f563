package cmd

import (
	"fmt"
	"os"

	"github.com/doctools/texindex/internal/config"
	"github.com/doctools/texindex/internal/log"
	"github.com/doctools/texindex/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "texindex",
	Short: "Render document index entries to LaTeX, DocBook, and XHTML",
	Long: `texindex processes back-of-book index entries written in the compact
inline syntax term[!subterm[!subsubterm]][@sortkey][|command] and renders
them as LaTeX \index commands (with automatic sort-key synthesis for
formatted terms), DocBook indexterm elements, or a nested XHTML index.

Input is a line-oriented entry file: one entry per non-blank line,
'#' starts a comment line. Reads stdin when no file is given.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("texindex %s\n", version.String()))

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .texindex.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable diagnostic logging to stderr")
}

func initConfig() {
	log.EnableFromEnv()
	if debug {
		log.Enable(os.Stderr)
	}

	defaults := config.Defaults()
	viper.SetDefault("use_indices", defaults.UseIndices)
	viper.SetDefault("encoding", defaults.Encoding)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".texindex")
		viper.SetConfigType("yaml")
	}

	cfg = defaults
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warnf(log.CatConfig, "reading config: %v", err)
		}
	} else {
		log.Debugf(log.CatConfig, "using config file %s", viper.ConfigFileUsed())
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Warnf(log.CatConfig, "parsing config: %v", err)
		cfg = defaults
	}
	if len(cfg.Indices) == 0 {
		cfg.Indices = defaults.Indices
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
