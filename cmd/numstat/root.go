/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package numstat

import (
	"fmt"
	"os"

	"github.com/fentec-project/numstat/sample"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logger reports diagnostics on stderr. Results always go to stdout.
var logger = zerolog.Nop()

// rootCmd is the base command; every subcommand is attached to it.
var rootCmd = &cobra.Command{
	Use:   "numstat",
	Short: "Descriptive statistics and random sampling",
	Long: `numstat describes numeric samples (mean, variance, standard deviation,
skewness, covariance, correlation) and draws random samples from finite
populations and from normal, binomial and integer-uniform distributions.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if viper.GetBool("verbose") {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
			Level(level).
			With().Timestamp().Str("cmd", cmd.Name()).
			Logger()
	},
}

// Execute runs the root command and exits with a non-zero status
// code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed of the random source; 0 seeds from crypto/rand")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log diagnostics to stderr")

	viper.SetEnvPrefix("numstat")
	viper.AutomaticEnv()
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// newSource returns the random source selected by the seed setting.
func newSource() (*sample.Source, error) {
	seed := viper.GetUint64("seed")
	if seed != 0 {
		logger.Debug().Uint64("seed", seed).Msg("using seeded random source")
		return sample.NewSeededSource(seed), nil
	}

	logger.Debug().Msg("using random source seeded from crypto/rand")
	return sample.NewSource()
}
