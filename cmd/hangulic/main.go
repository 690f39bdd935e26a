// Command hangulic streams stdin through a Hangul input context one byte at
// a time and writes the committed text to stdout (each step's preedit is
// logged at debug level on stderr), the same process ->
// read-commit -> read-preedit -> forward-if-unconsumed shape as the
// TWinKeyEvent loop sketched in libhangul's own usage example, adapted to a
// stdin-driven terminal session instead of a GUI event queue.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hangulic/hic/hic"
)

// keyboardFlag is a pflag.Value validating --keyboard against the known
// layout ids at parse time, rather than deferring the error to hic.New.
type keyboardFlag struct{ id string }

var _ pflag.Value = (*keyboardFlag)(nil)

func (k *keyboardFlag) String() string { return k.id }

func (k *keyboardFlag) Set(s string) error {
	switch s {
	case "", "2", "2y", "3f", "ro":
		k.id = s
		return nil
	default:
		return errors.Errorf("unknown keyboard id %q (want one of 2, 2y, 3f, ro)", s)
	}
}

func (k *keyboardFlag) Type() string { return "keyboard" }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "hangulic",
		Short: "Stream stdin through a Hangul input-method context",
		Long: "hangulic reads ASCII keystrokes from stdin, one byte at a time, " +
			"runs them through a hic.Context, and writes the committed text " +
			"to stdout; each step's preedit is logged at debug level on stderr.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.VarP(&keyboardFlag{id: "2"}, "keyboard", "k", "keyboard layout id (2, 2y, 3f, ro)")
	flags.Bool("auto-reorder", false, "enable OptionAutoReorder")
	flags.Bool("combi-double-stroke", false, "enable OptionCombiOnDoubleStroke")
	flags.Bool("non-choseong-combi", true, "enable OptionNonChoseongCombi")
	flags.Bool("jamo-mode", false, "force raw jamo output instead of composed syllables")
	flags.String("log-level", "info", "trace log level (debug, info, warn, disabled)")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("HANGULIC")
	v.AutomaticEnv()

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	level, err := zerolog.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", v.GetString("log-level"))
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		Level(level).
		With().
		Str("session", uuid.NewString()).
		Logger()

	ic, err := hic.New(v.GetString("keyboard"))
	if err != nil {
		return errors.Wrapf(err, "selecting keyboard %q", v.GetString("keyboard"))
	}
	ic.SetOption(hic.OptionAutoReorder, v.GetBool("auto-reorder"))
	ic.SetOption(hic.OptionCombiOnDoubleStroke, v.GetBool("combi-double-stroke"))
	ic.SetOption(hic.OptionNonChoseongCombi, v.GetBool("non-choseong-combi"))
	if v.GetBool("jamo-mode") {
		ic.SetJamoModeOnly(true)
	}

	logger.Info().Str("keyboard", v.GetString("keyboard")).Msg("session started")

	return processStream(cmd.InOrStdin(), cmd.OutOrStdout(), ic, logger)
}

func processStream(in io.Reader, out io.Writer, ic *hic.Context, logger zerolog.Logger) error {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "reading stdin")
		}

		consumed := ic.Process(int(b))

		if commit := ic.GetCommitString(); len(commit) > 0 {
			fmt.Fprint(w, string(commit))
		}
		preedit := ic.GetPreeditString()
		logger.Debug().
			Bool("consumed", consumed).
			Str("preedit", string(preedit)).
			Msg("keystroke processed")

		if !consumed && len(ic.GetCommitString()) == 0 {
			// An unconsumed byte the context didn't already fold into
			// commit itself (e.g. a vetoed transition) is the host's own
			// responsibility to forward; here that just means echoing it
			// raw.
			fmt.Fprintf(w, "%c", b)
		}
	}

	if final := ic.Flush(); len(final) > 0 {
		fmt.Fprint(w, string(final))
	}
	logger.Info().Msg("session ended")
	return nil
}
