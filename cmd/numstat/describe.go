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

	"github.com/fentec-project/numstat/data"
	"github.com/fentec-project/numstat/stats"
	"github.com/spf13/cobra"
)

// describeCmd prints the moments of a sample read from the arguments,
// or from stdin when no arguments are given.
var describeCmd = &cobra.Command{
	Use:   "describe [numbers...]",
	Short: "Print mean, variance, standard deviation and skewness of a sample",
	RunE: func(cmd *cobra.Command, args []string) error {
		var x data.Vector
		var err error
		if len(args) > 0 {
			x, err = parseFloats(args)
		} else {
			x, err = readFloats(cmd.InOrStdin())
		}
		if err != nil {
			return err
		}
		logger.Debug().Int("n", len(x)).Msg("describing sample")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "n         %d\n", len(x))
		fmt.Fprintf(out, "mean      %g\n", stats.Mean(x))
		fmt.Fprintf(out, "variance  %g\n", stats.Variance(x))
		fmt.Fprintf(out, "std dev   %g\n", stats.StdDev(x))
		fmt.Fprintf(out, "skewness  %g\n", stats.Skewness(x))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
