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
	"strings"

	"github.com/fentec-project/numstat/sample"
	"github.com/spf13/cobra"
)

var (
	choiceSize    int
	choiceReplace bool
	choiceWeights string
	choiceTrials  int
)

// choiceCmd draws elements from the population given as arguments.
// With --trials, the draw is repeated and the number of times each
// element was drawn is printed instead.
var choiceCmd = &cobra.Command{
	Use:   "choice [elements...]",
	Short: "Draw random elements from a population",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var weights []float64
		if choiceWeights != "" {
			w, err := parseList(choiceWeights)
			if err != nil {
				return err
			}
			weights = w
		}

		src, err := newSource()
		if err != nil {
			return err
		}
		logger.Debug().
			Int("size", choiceSize).
			Bool("replace", choiceReplace).
			Floats64("weights", weights).
			Msg("drawing from population")

		out := cmd.OutOrStdout()
		if choiceTrials <= 1 {
			res, err := sample.Choice(src, args, choiceSize, choiceReplace, weights)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, strings.Join(res, " "))
			return nil
		}

		counts := make(map[string]int)
		for i := 0; i < choiceTrials; i++ {
			res, err := sample.Choice(src, args, choiceSize, choiceReplace, weights)
			if err != nil {
				return err
			}
			for _, e := range res {
				counts[e]++
			}
		}
		printed := make(map[string]bool)
		for _, e := range args {
			if printed[e] {
				continue
			}
			printed[e] = true
			fmt.Fprintf(out, "%s: %d\n", e, counts[e])
		}

		return nil
	},
}

func init() {
	choiceCmd.Flags().IntVarP(&choiceSize, "size", "n", 1, "number of elements to draw")
	choiceCmd.Flags().BoolVar(&choiceReplace, "replace", false, "draw with replacement")
	choiceCmd.Flags().StringVar(&choiceWeights, "weights", "", "comma-separated weight of every element")
	choiceCmd.Flags().IntVar(&choiceTrials, "trials", 1, "repeat the draw and print how often each element was drawn")
	rootCmd.AddCommand(choiceCmd)
}
