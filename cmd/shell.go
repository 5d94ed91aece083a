package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/gerrymander-cli/internal/registry"
	"github.com/sells-group/gerrymander-cli/internal/report"
	"github.com/sells-group/gerrymander-cli/internal/session"
	"github.com/sells-group/gerrymander-cli/internal/source"
)

const shellRule = "-----------------------------"

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive load / search / stats / plot session",
	Long: `Starts an interactive session. Commands:
  load <districts file> <voters file>   read both sources (once per session)
  search <state name>                   choose a state, ignoring case
  stats                                 efficiency gap and wasted votes of the chosen state
  plot                                  vote share bar per district of the chosen state
  exit                                  leave the session`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sh := &shell{
			sess: newSession(),
			out:  cmd.OutOrStdout(),
		}
		return sh.run(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// shell is the interactive command loop over a single session.
type shell struct {
	sess *session.Session
	out  io.Writer
}

func (sh *shell) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	sh.println("Welcome to the Gerrymandering App!")

	for {
		sh.menu()
		if !scanner.Scan() {
			break
		}
		sh.printf("\n%s\n\n", shellRule)

		if !sh.dispatch(ctx, scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return eris.Wrap(err, "shell: read input")
	}
	return nil
}

func (sh *shell) menu() {
	state := "N/A"
	if r := sh.sess.Chosen(); r != nil {
		state = r.Name
	}
	sh.printf("\nData loaded? %s\nState: %s\n\nEnter command: ", report.YesNo(sh.sess.Loaded()), state)
}

// dispatch runs one input line and reports whether the loop should go on.
func (sh *shell) dispatch(ctx context.Context, input string) bool {
	parts := source.Split(input, " ")
	command := parts[0]

	switch {
	case command == "exit":
		return false
	case command == "":
		return true
	case command == "load":
		sh.load(ctx, parts[1:])
	case !sh.sess.Loaded():
		sh.println("No data loaded, please load data first.")
	case command == "search":
		sh.search(strings.Join(parts[1:], " "))
	case command == "stats":
		sh.stats()
	case command == "plot":
		sh.plot()
	default:
		sh.printf("Unknown command %q.\n", command)
	}
	return true
}

func (sh *shell) load(ctx context.Context, args []string) {
	if sh.sess.Loaded() {
		sh.println("Already read data in, exit and start over.")
		return
	}

	var districts, voters string
	switch len(args) {
	case 0:
		districts, voters = cfg.Sources.Districts, cfg.Sources.Voters
	case 2:
		districts, voters = args[0], args[1]
	}
	if districts == "" || voters == "" {
		sh.println("Usage: load <districts file> <voters file>")
		return
	}

	res, err := sh.sess.Load(ctx, districts, voters)
	if err != nil {
		if msg := sourceFailure(err); msg != "" {
			sh.println(msg)
			return
		}
		zap.L().Error("shell: load failed", zap.Error(err))
		sh.printf("Load failed: %v\n", err)
		return
	}

	regions := sh.sess.Regions()
	sh.printf("Reading: %s\n", districts)
	for _, r := range regions {
		sh.printf("...%s...%d districts total\n", r.Name, r.DistrictCount())
	}
	sh.printf("Reading: %s\n", voters)
	for _, r := range regions {
		if r.EligibleVoters > 0 {
			sh.printf("...%s...%d eligible voters\n", r.Name, r.EligibleVoters)
		}
	}
	printIssues(sh.out, res)
}

func (sh *shell) search(name string) {
	if _, err := sh.sess.Search(name); err != nil {
		if eris.Is(err, registry.ErrRegionNotFound) {
			sh.println("State does not exist, search again.")
			return
		}
		if eris.Is(err, session.ErrNotLoaded) {
			sh.println("No data loaded, please load data first.")
			return
		}
		sh.printf("Search failed: %v\n", err)
	}
}

func (sh *shell) stats() {
	res, err := sh.sess.Stats()
	if err != nil {
		sh.println("No state indicated, please search for state first.")
		return
	}
	printStats(sh.out, res)
}

func (sh *shell) plot() {
	bars, err := sh.sess.Plot()
	if err != nil {
		sh.println("No state indicated, please search for state first.")
		return
	}
	printPlot(sh.out, bars)
}

func (sh *shell) println(s string) {
	_, _ = fmt.Fprintln(sh.out, s)
}

func (sh *shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(sh.out, format, args...)
}
