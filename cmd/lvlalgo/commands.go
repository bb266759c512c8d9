package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlalgo/compare"
	"github.com/katalvlaran/lvlalgo/numtheory"
	"github.com/katalvlaran/lvlalgo/search"
	"github.com/katalvlaran/lvlalgo/sorting"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const noMatch = "no match"

func (a *app) lcsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lcs <left> <right>",
		Short: "Print the longest common subsequence of two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.textOptions()
			if err != nil {
				return err
			}
			lcs, err := compare.NewTextSubsequence(args[0], args[1], opts...)
			if err != nil {
				return err
			}
			text, ok := lcs.Text()
			a.logger.Debug("subsequence computed",
				zap.Int("left_bytes", len(args[0])),
				zap.Int("right_bytes", len(args[1])),
				zap.Int("length", lcs.Length()),
			)
			printMatch(cmd.OutOrStdout(), "subsequence", lcs.Length(), text, ok)

			return nil
		},
	}
}

func (a *app) substringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "substring <left> <right>",
		Short: "Print the longest common substring of two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.textOptions()
			if err != nil {
				return err
			}
			sub, err := compare.NewTextSubstring(args[0], args[1], opts...)
			if err != nil {
				return err
			}
			text, ok := sub.Text()
			a.logger.Debug("substring computed",
				zap.Int("left_bytes", len(args[0])),
				zap.Int("right_bytes", len(args[1])),
				zap.Int("length", sub.Length()),
			)
			printMatch(cmd.OutOrStdout(), "substring", sub.Length(), text, ok)

			return nil
		},
	}
}

func (a *app) sortCmd() *cobra.Command {
	var algName string
	cmd := &cobra.Command{
		Use:   "sort [flags] [--] <int>...",
		Short: "Sort integers with the chosen algorithm",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.resolveAlgorithm(cmd, algName)
			if err != nil {
				return err
			}
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			elapsed, err := sorting.Timed(alg, nums)
			if err != nil {
				return err
			}
			a.logger.Debug("sorted",
				zap.Stringer("algorithm", alg),
				zap.Int("n", len(nums)),
				zap.Duration("elapsed", elapsed),
			)
			fmt.Fprintln(cmd.OutOrStdout(), joinInts(nums))

			return nil
		},
	}
	cmd.Flags().StringVarP(&algName, "algorithm", "a", "", "bubble, insertion, merge or quick (overrides config)")
	cmd.Flags().SetInterspersed(false) // "-5" after the first integer is an argument

	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	var algName string
	cmd := &cobra.Command{
		Use:   "search [flags] [--] <target> <int>...",
		Short: "Sort integers, then binary-search for target",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.resolveAlgorithm(cmd, algName)
			if err != nil {
				return err
			}
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			target, hay := nums[0], nums[1:]
			if err := sorting.SortInPlace(alg, hay); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if i, ok := search.IndexOf(target, hay); ok {
				fmt.Fprintf(out, "%d found at index %d of %s\n", target, i, joinInts(hay))
			} else {
				fmt.Fprintf(out, "%d not found\n", target)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&algName, "algorithm", "a", "", "sort algorithm applied before searching (overrides config)")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func (a *app) gcdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd <a> <b>",
		Short: "Print the greatest common divisor of two positive integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid operand %q: %w", args[0], err)
			}
			y, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid operand %q: %w", args[1], err)
			}
			d, err := numtheory.GCD(x, y)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)

			return nil
		},
	}
}

func (a *app) factorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors [--] <n>",
		Short: "Print the factors of n other than 1 and n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			if fs, ok := numtheory.Factors(n); ok {
				fmt.Fprintln(out, joinInts(fs))
			} else {
				fmt.Fprintf(out, "%d has no factors\n", n)
			}

			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// demoInput is the showcase slice: repeats, negatives and one 817.
var demoInput = []int{
	117, 1, 3, 99, 10, 7, 7, 2, 11, -5, 4, 9, 817, 1, 3, 99, 10, 7, 2, 11, -5, 4, 9, 817, 1, 3,
	99, 10, 7, 2, 11, -5, 4, 9, 87, 1, 3, 99, 2, 11, -5, 4, 9, 817, 1, 3, 99, 10, 7, 2, 11, -5,
	4, 9, 817, 1, 3, 99, 10, 7, 2, 11, -5, 4, 9, 87, 1, 3, 99, 10, 7, 2, 11, -5, 4, 9, 8,
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every algorithm on the showcase inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var sorted []int
			for _, alg := range sorting.Algorithms {
				s := slices.Clone(demoInput)
				elapsed, err := sorting.Timed(alg, s)
				if err != nil {
					return err
				}
				a.logger.Debug("demo sort", zap.Stringer("algorithm", alg), zap.Duration("elapsed", elapsed))
				if sorted != nil && !slices.Equal(sorted, s) {
					return fmt.Errorf("demo: %s disagrees with %s", alg, sorting.Algorithms[0])
				}
				sorted = s
			}
			fmt.Fprintf(out, "sorted %d values with %d algorithms\n", len(sorted), len(sorting.Algorithms))

			text, n := compare.SubsequenceOf("leighxxxft", "right")
			fmt.Fprintf(out, "lcs(leighxxxft, right) = %q (%d)\n", text, n)

			text, n = compare.SubstringOf("!!!!Hello WorldXXXXX", "XXX   Hello World@cvcvcvc")
			fmt.Fprintf(out, "substring(!!!!Hello WorldXXXXX, XXX   Hello World@cvcvcvc) = %q (%d)\n", text, n)

			if v, ok := search.Search(817, sorted); ok {
				fmt.Fprintf(out, "our slice has value %d\n", v)
			} else {
				fmt.Fprintln(out, "our slice doesn't have value 817")
			}

			d, err := numtheory.GCD(30, 21)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "gcd(30, 21) = %d\n", d)

			fs, _ := numtheory.Factors(9124)
			fmt.Fprintf(out, "factors(9124) = %s\n", joinInts(fs))

			return nil
		},
	}
}

// resolveAlgorithm prefers the --algorithm flag over the config file.
func (a *app) resolveAlgorithm(cmd *cobra.Command, name string) (sorting.Algorithm, error) {
	if cmd.Flags().Changed("algorithm") {
		return sorting.ParseAlgorithm(name)
	}

	return a.cfg.algorithm()
}

// printMatch writes the length and matched text, or the no-match marker.
func printMatch(out io.Writer, label string, length int, text string, ok bool) {
	fmt.Fprintf(out, "length: %d\n", length)
	if !ok {
		fmt.Fprintf(out, "%s: %s\n", label, noMatch)
		return
	}
	fmt.Fprintf(out, "%s: %s\n", label, text)
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", s, err)
		}
		out[i] = v
	}

	return out, nil
}

func joinInts[T int | int64](s []T) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}

	return strings.Join(parts, " ")
}
