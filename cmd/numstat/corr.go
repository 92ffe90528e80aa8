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

	"github.com/fentec-project/numstat/stats"
	"github.com/spf13/cobra"
)

var corrX, corrY string

// corrCmd prints the covariance and correlation matrices of two samples.
var corrCmd = &cobra.Command{
	Use:   "corr --x 1,2,3 --y 2,4,7",
	Short: "Print covariance and correlation matrices of two samples",
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := parseList(corrX)
		if err != nil {
			return err
		}
		y, err := parseList(corrY)
		if err != nil {
			return err
		}

		cov, err := stats.Covariance(x, y)
		if err != nil {
			return err
		}
		corr, err := stats.Correlation(x, y)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "covariance\n%s\n", cov)
		fmt.Fprintf(out, "correlation\n%s\n", corr)

		return nil
	},
}

func init() {
	corrCmd.Flags().StringVar(&corrX, "x", "", "comma-separated first sample")
	corrCmd.Flags().StringVar(&corrY, "y", "", "comma-separated second sample")
	rootCmd.AddCommand(corrCmd)
}
