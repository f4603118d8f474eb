package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/calumari/mailwalk"
	"github.com/calumari/mailwalk/internal/buildinfo"
	"github.com/calumari/mailwalk/internal/logger"
)

const prompt = "Enter the full path to your JSON file: "

// Execute runs the root command and exits with status 1 on a usage error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	debug  bool
	repair bool
	pause  bool
	outDir string
}

func newRootCmd() *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:          "mailwalk [file]",
		Short:        "Collect every \"email\" string from a JSON file into a text file",
		Version:      buildinfo.String(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup := logger.Setup(logger.Config{Debug: o.debug, Writer: cmd.ErrOrStderr()})
			defer cleanup()

			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			var raw string
			if len(args) == 1 {
				raw = args[0]
			} else {
				fmt.Fprint(out, prompt)
				line, err := in.ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("read input path: %w", err)
				}
				raw = line
			}

			run(out, mailwalk.TrimInput(raw), o)

			if o.pause {
				fmt.Fprint(out, "\nPress Enter to exit...")
				_, _ = in.ReadString('\n')
			}
			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "enable verbose JSON logging on stderr")
	cmd.Flags().BoolVar(&o.repair, "repair", false, "try to repair malformed JSON before giving up")
	cmd.Flags().BoolVar(&o.pause, "pause", false, "wait for Enter before exiting")
	cmd.Flags().StringVar(&o.outDir, "out-dir", "", "output directory (default: email_extracts next to the executable)")
	return cmd
}

// run extracts, reports and saves. Every failure is reported on out and
// swallowed. Messages name the path as typed; file access uses its
// normalized form.
func run(out io.Writer, typed string, o options) {
	path := mailwalk.NormalizePath(typed)
	log := logger.L().With("path", path)

	var load []mailwalk.LoadOption
	if o.repair {
		load = append(load, mailwalk.WithRepair())
	}

	emails, err := mailwalk.ExtractFile(path, load)
	if err != nil {
		log.Debug("extract.failed", "err", err)
		fmt.Fprintln(out, describeLoadError(err, typed))
	}
	log.Debug("extract.done", "count", len(emails))

	if len(emails) == 0 {
		fmt.Fprintln(out, "No emails found.")
		return
	}

	fmt.Fprintln(out, "\nExtracted Emails:")
	for _, e := range emails {
		fmt.Fprintln(out, e)
	}

	w := mailwalk.NewWriter(mailwalk.WithDir(o.outDir))
	saved, err := w.Persist(emails, typed)
	if err != nil {
		log.Debug("writer.failed", "dir", w.Dir(), "err", err)
		fmt.Fprintf(out, "Error saving emails: %v\n", err)
		return
	}
	log.Debug("writer.saved", "output", saved)
	fmt.Fprintf(out, "\nEmails saved to: %s\n", saved)
}

func describeLoadError(err error, path string) string {
	switch {
	case mailwalk.IsKind(err, mailwalk.KindInputNotFound):
		return fmt.Sprintf("Error: File not found at %s", path)
	case mailwalk.IsKind(err, mailwalk.KindInvalidFormat):
		return fmt.Sprintf("Error: Invalid JSON format in file %s", path)
	case mailwalk.IsKind(err, mailwalk.KindAccessDenied):
		return fmt.Sprintf("Error: Permission denied when trying to access %s", path)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
