package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driving"
	"github.com/custodia-labs/apuntes/internal/logger"
)

var (
	parseWorkers int
	parseLimit   int
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Classify every harvested file",
	Long: `Classifies every harvested file path: content types, courses and, for
exams, the date. Results are stored in the parsed_content tables; running
parse again never overwrites an earlier result.

At the end the number of unresolved guesses is printed.`,
	Args: cobra.NoArgs,
	RunE: runParse,
}

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent parse runs",
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

func init() {
	parseCmd.Flags().IntVarP(&parseWorkers, "workers", "w", 0, "concurrent classifiers (overrides parse.workers)")
	parseCmd.Flags().IntVarP(&parseLimit, "limit", "n", 0, "maximum number of items, 0 = all (overrides parse.limit)")
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 10, "maximum number of runs")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(runsCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	if parseService == nil {
		return errors.New("parse service not configured")
	}

	opts := driving.ParseOptions{Workers: parseWorkers, Limit: parseLimit}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		if !cmd.Flags().Changed("workers") {
			opts.Workers = settings.Parse.Workers
		}
		if !cmd.Flags().Changed("limit") {
			opts.Limit = settings.Parse.Limit
		}
	}

	report, err := runWithProgress(cmd, opts)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	cmd.Printf("Parsed %d items\n", report.Items)
	if verbose {
		cmd.Printf("  types: %d, courses: %d, dates: %d, malformed dates: %d\n",
			report.UnclassifiedTypes, report.UnclassifiedCourses,
			report.UnclassifiedDates, report.MalformedDates)
	}
	cmd.Printf("No guesses %d\n", report.Unclassified())
	return nil
}

func runRuns(cmd *cobra.Command, _ []string) error {
	if parseService == nil {
		return errors.New("parse service not configured")
	}

	runs, err := parseService.Runs(cmd.Context(), runsLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		cmd.Println("No parse runs recorded.")
		return nil
	}

	for i := range runs {
		r := &runs[i]
		cmd.Printf("%s  %s  items=%d  no-guesses=%d (types=%d courses=%d dates=%d)\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.RunID, r.Items, r.Unclassified(),
			r.UnclassifiedTypes, r.UnclassifiedCourses, r.UnclassifiedDates)
	}
	return nil
}

// runWithProgress runs the parse pass, rendering a progress bar when
// stdout is a terminal.
func runWithProgress(cmd *cobra.Command, opts driving.ParseOptions) (*domain.ParseReport, error) {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		return parseService.Run(ctx, opts)
	}

	p := tea.NewProgram(newProgressModel(),
		tea.WithOutput(out), tea.WithInput(nil), tea.WithoutSignalHandler())
	opts.Progress = func(done, total int) {
		p.Send(progressMsg{done: done, total: total})
	}

	type result struct {
		report *domain.ParseReport
		err    error
	}
	resCh := make(chan result, 1)
	go func() {
		report, err := parseService.Run(ctx, opts)
		resCh <- result{report: report, err: err}
		p.Send(doneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		logger.Warn("progress display: %v", err)
	}
	res := <-resCh
	return res.report, res.err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var countStyle = lipgloss.NewStyle().Faint(true)

type progressMsg struct{ done, total int }

type doneMsg struct{}

// progressModel renders classification progress on a single line.
type progressModel struct {
	bar   progress.Model
	done  int
	total int
}

func newProgressModel() progressModel {
	return progressModel{bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done, m.total = msg.done, msg.total
	case doneMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.total <= 0 {
		return ""
	}
	return m.bar.ViewAs(float64(m.done)/float64(m.total)) + " " +
		countStyle.Render(fmt.Sprintf("%d/%d", m.done, m.total)) + "\n"
}
