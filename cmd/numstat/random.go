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
	"io"
	"strconv"

	"github.com/fentec-project/numstat/data"
	"github.com/fentec-project/numstat/sample"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	randomCount    int
	normalMean     float64
	normalStd      float64
	binomialTrials uint64
	binomialP      float64
	randintMin     int64
	randintMax     int64
)

// randomCmd groups the commands generating random or evenly spaced values.
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate random or evenly spaced values",
}

var normalCmd = &cobra.Command{
	Use:   "normal",
	Short: "Draw values from a normal distribution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := newSource()
		if err != nil {
			return err
		}
		vals, err := sample.NormalN(normalMean, normalStd, randomCount, src)
		if err != nil {
			return err
		}
		printVector(cmd.OutOrStdout(), vals)
		return nil
	},
}

var binomialCmd = &cobra.Command{
	Use:   "binomial",
	Short: "Draw values from a binomial distribution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := newSource()
		if err != nil {
			return err
		}
		vals, err := sample.BinomialN(binomialTrials, binomialP, randomCount, src)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, v := range vals {
			fmt.Fprintln(out, v)
		}
		return nil
	},
}

var randintCmd = &cobra.Command{
	Use:   "randint",
	Short: "Draw integers uniformly from [min, max)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := newSource()
		if err != nil {
			return err
		}
		vals, err := sample.RandIntN(randintMin, randintMax, randomCount, src)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, v := range vals {
			fmt.Fprintln(out, v)
		}
		return nil
	},
}

var linspaceCmd = &cobra.Command{
	Use:   "linspace start stop num",
	Short: "Print num evenly spaced values over [start, stop]",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		bounds, err := parseFloats(args[:2])
		if err != nil {
			return err
		}
		num, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.Wrapf(err, "cannot parse %q as a count", args[2])
		}
		vals, err := data.Linspace(bounds[0], bounds[1], num)
		if err != nil {
			return err
		}
		printVector(cmd.OutOrStdout(), vals)
		return nil
	},
}

var arangeCmd = &cobra.Command{
	Use:   "arange start stop step",
	Short: "Print values from start to stop (exclusive) in increments of step",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parseFloats(args)
		if err != nil {
			return err
		}
		vals, err := data.Arange(p[0], p[1], p[2])
		if err != nil {
			return err
		}
		printVector(cmd.OutOrStdout(), vals)
		return nil
	},
}

func printVector(w io.Writer, v []float64) {
	for _, x := range v {
		fmt.Fprintln(w, strconv.FormatFloat(x, 'g', -1, 64))
	}
}

func init() {
	randomCmd.PersistentFlags().IntVarP(&randomCount, "count", "n", 10, "number of values to draw")

	normalCmd.Flags().Float64Var(&normalMean, "mean", 0, "mean of the distribution")
	normalCmd.Flags().Float64Var(&normalStd, "std", 1, "standard deviation of the distribution")

	binomialCmd.Flags().Uint64Var(&binomialTrials, "trials", 10, "number of Bernoulli trials")
	binomialCmd.Flags().Float64Var(&binomialP, "p", 0.5, "success probability of every trial")

	randintCmd.Flags().Int64Var(&randintMin, "min", 0, "lower bound (inclusive)")
	randintCmd.Flags().Int64Var(&randintMax, "max", 10, "upper bound (exclusive)")

	randomCmd.AddCommand(normalCmd, binomialCmd, randintCmd, linspaceCmd, arangeCmd)
	rootCmd.AddCommand(randomCmd)
}
