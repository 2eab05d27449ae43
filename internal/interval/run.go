package interval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const ShortDesc = "Compute with sets of closed floating-point intervals"

const LongDesc = `Intervalset parses interval literals like "[1,2.5]", "3" (a singleton)
and "[]" (empty), combines ";"-separated lists of them into ordered disjoint
sets, and prints the result of set operations on them: union, intersection,
open-interval difference, negation and membership.

Comparisons are exact by default. Commands that accept --ulps switch to
tolerant comparisons, where two floats a given number of representable
values apart count as equal; the named presets p13, p9, p7 and p5
correspond to roughly 13, 9, 7 and 5 significant decimal digits.`

// UlpsValue is a pflag.Value holding a ULP tolerance. It accepts the
// Precision preset names (p13, p9, p7, p5) or a raw ULP count in
// (0, 2^50). The zero value reports unset and falls back to
// PrecisionDefault.
type UlpsValue struct {
	ulps Precision
	set  bool
}

var _ pflag.Value = (*UlpsValue)(nil)

func (u *UlpsValue) String() string {
	if !u.set {
		return ""
	}
	if u.ulps.IsAPrecision() {
		return "p" + u.ulps.String()
	}
	return strconv.FormatInt(int64(u.ulps), 10)
}

func (u *UlpsValue) Set(s string) error {
	if name, ok := strings.CutPrefix(s, "p"); ok {
		p, err := PrecisionString(name)
		if err != nil {
			return fmt.Errorf("invalid ulps %q: expected one of %v or a positive integer", s, presetNames())
		}
		u.ulps = p
		u.set = true
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid ulps %q: expected one of %v or a positive integer", s, presetNames())
	}
	if n <= 0 || Precision(n) >= maxUlpsCeiling {
		return fmt.Errorf("ulps out of range: %d, must be in (0, 2^50)", n)
	}
	u.ulps = Precision(n)
	u.set = true
	return nil
}

func presetNames() []string {
	names := PrecisionStrings()
	for i, name := range names {
		names[i] = "p" + name
	}
	return names
}

func (u *UlpsValue) Type() string {
	return "ulps"
}

// Enabled reports whether a tolerance was given on the command line.
func (u *UlpsValue) Enabled() bool {
	return u.set
}

// Ulps returns the selected tolerance, or PrecisionDefault if none was set.
func (u *UlpsValue) Ulps() Precision {
	if !u.set {
		return PrecisionDefault
	}
	return u.ulps
}

type outputOptions struct {
	precision int
	pvs       bool
}

func outputFlags(cmd *cobra.Command) (outputOptions, error) {
	precision, err := cmd.Flags().GetInt("precision")
	if err != nil {
		return outputOptions{}, err
	}
	if precision < 0 || precision > 16 {
		return outputOptions{}, fmt.Errorf("invalid precision: %d, must be in 0..16", precision)
	}
	pvs, err := cmd.Flags().GetBool("pvs")
	if err != nil {
		return outputOptions{}, err
	}
	return outputOptions{precision: precision, pvs: pvs}, nil
}

func printSet(cmd *cobra.Command, set *IntervalSet, opts outputOptions) {
	if opts.pvs {
		for iv := range set.All() {
			fmt.Fprintln(cmd.OutOrStdout(), iv.ToPVS(opts.precision))
		}
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), set.Format(opts.precision))
}

// RunUnion is the command logic for the union command. Each argument is a
// set literal; the result is their union.
func RunUnion(cmd *cobra.Command, args []string, ulps *UlpsValue) error {
	opts, err := outputFlags(cmd)
	if err != nil {
		return err
	}
	acc := NewIntervalSet()
	for _, arg := range args {
		set, err := ParseSet(arg)
		if err != nil {
			return err
		}
		if ulps.Enabled() {
			acc.AlmostUnion(set, ulps.Ulps())
		} else {
			acc.UnionSet(set)
		}
	}
	printSet(cmd, acc, opts)
	return nil
}

// RunIntersect is the command logic for the intersect command.
func RunIntersect(cmd *cobra.Command, args []string, ulps *UlpsValue) error {
	opts, err := outputFlags(cmd)
	if err != nil {
		return err
	}
	a, err := ParseSet(args[0])
	if err != nil {
		return err
	}
	b, err := ParseSet(args[1])
	if err != nil {
		return err
	}
	if ulps.Enabled() {
		a.AlmostIntersect(b, ulps.Ulps())
		printSet(cmd, a, opts)
	} else {
		printSet(cmd, a.IntersectionSet(b), opts)
	}
	return nil
}

// RunDiff is the command logic for the diff command. The second set is
// interpreted as open intervals; the cleanup flags post-process the
// boundary artifacts the open-interval semantics can leave behind.
func RunDiff(cmd *cobra.Command, args []string) error {
	opts, err := outputFlags(cmd)
	if err != nil {
		return err
	}
	a, err := ParseSet(args[0])
	if err != nil {
		return err
	}
	b, err := ParseSet(args[1])
	if err != nil {
		return err
	}
	a.DiffSet(b)

	mergeGaps, err := cmd.Flags().GetFloat64("merge-gaps")
	if err != nil {
		return err
	}
	if mergeGaps > 0 {
		a.SweepBreaks(mergeGaps)
	}
	minWidth, err := cmd.Flags().GetFloat64("min-width")
	if err != nil {
		return err
	}
	if minWidth > 0 {
		a.RemoveLessThan(minWidth)
	}
	dropSingles, err := cmd.Flags().GetBool("drop-singles")
	if err != nil {
		return err
	}
	if dropSingles {
		a.SweepSingle(0)
	}
	printSet(cmd, a, opts)
	return nil
}

// RunNegate is the command logic for the negate command.
func RunNegate(cmd *cobra.Command, args []string) error {
	opts, err := outputFlags(cmd)
	if err != nil {
		return err
	}
	set, err := ParseSet(args[0])
	if err != nil {
		return err
	}
	printSet(cmd, set.Negate(), opts)
	return nil
}

// RunContains is the command logic for the contains command. It prints the
// interval of the set containing the value, or "[]" if none does.
func RunContains(cmd *cobra.Command, args []string, ulps *UlpsValue) error {
	opts, err := outputFlags(cmd)
	if err != nil {
		return err
	}
	set, err := ParseSet(args[0])
	if err != nil {
		return err
	}
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[1], err)
	}

	found := Empty
	if ulps.Enabled() {
		for iv := range set.All() {
			if iv.AlmostIn(x, true, true, ulps.Ulps()) {
				found = iv
				break
			}
		}
	} else {
		found = set.IntervalContaining(x)
	}

	if opts.pvs && !found.IsEmpty() {
		fmt.Fprintln(cmd.OutOrStdout(), found.ToPVS(opts.precision))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), found.Format(opts.precision))
	}
	return nil
}
