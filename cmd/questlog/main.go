package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"questlog/internal/bootstrap"
	settingsdto "questlog/internal/modules/settings/dto"
	taskdto "questlog/internal/modules/task/dto"
	"questlog/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "questlog",
		Short:         "Daily goals, focus sessions, streaks and levels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", defaultDataPath(), "data directory (config.yaml, database, journal)")

	root.AddCommand(newStatusCmd(&dataPath))
	root.AddCommand(newEndDayCmd(&dataPath))
	root.AddCommand(newTaskCmd(&dataPath))
	root.AddCommand(newFocusCmd(&dataPath))
	root.AddCommand(newHistoryCmd(&dataPath))
	root.AddCommand(newProfileCmd(&dataPath))
	root.AddCommand(newCoachCmd(&dataPath))
	root.AddCommand(newSettingsCmd(&dataPath))
	return root
}

func defaultDataPath() string {
	if env := os.Getenv("QUESTLOG_HOME"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".questlog"
	}
	return filepath.Join(home, ".questlog")
}

// loadApp wires the app and runs the automatic day rollover before any
// command sees the state.
func loadApp(cmd *cobra.Command, dataPath string) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(cmd.Context(), cfg, bootstrap.Options{LogOutput: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}
	check, err := app.RolloverCLI.Check(cmd.Context())
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	if check.Notice != "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), check.Notice)
	}
	return app, nil
}

func withApp(dataPath *string, run func(cmd *cobra.Command, args []string, app *bootstrap.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if cmd.Context() == nil {
			cmd.SetContext(context.Background())
		}
		app, err := loadApp(cmd, *dataPath)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()
		return run(cmd, args, app)
	}
}

func newStatusCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's completion, streak and level",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			m, err := app.ProgressCLI.Status(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "completion: %d%% (%d/%d goals)\n", m.CompletionRate, m.CompletedTasks, m.TotalTasks)
			_, _ = fmt.Fprintf(w, "streak: %d (threshold %d%%)\n", m.Streak, m.Threshold)
			_, _ = fmt.Fprintf(w, "level: %d (%d%%) xp=%d\n", m.Level, m.LevelProgress, m.XP)
			_, _ = fmt.Fprintf(w, "focus: %d min\n", m.FocusMinutes)
			_, _ = fmt.Fprintln(w, m.Summary)
			return nil
		}),
	}
}

func newEndDayCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "end-day",
		Short: "Archive today, reset all goals and collect the day-end bonus",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			out, err := app.RolloverCLI.EndDay(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, out.Summary)
			_, _ = fmt.Fprintf(w, "bonus: +%d xp, level %d (%d%%)\n", out.XPBonus, out.Level, out.LevelProgress)
			if out.Reward {
				_, _ = fmt.Fprintf(w, "streak: %d day(s), keep it going\n", out.Streak)
			} else {
				_, _ = fmt.Fprintln(w, "streak: 0")
			}
			return nil
		}),
	}
}

func newTaskCmd(dataPath *string) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Manage daily goals"}

	var taskType, unit, category string
	var target int
	var tags []string
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: withApp(dataPath, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			out, err := app.TaskCLI.Add(cmd.Context(), strings.Join(args, " "), category, taskType, target, unit, tags)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) +%d xp\n", out.Task.Title, out.Task.ID, out.XPAwarded)
			return nil
		}),
	}
	add.Flags().StringVar(&taskType, "type", "count", "goal type: count|duration")
	add.Flags().IntVar(&target, "target", 1, "daily target (minutes for duration goals)")
	add.Flags().StringVar(&unit, "unit", "", "unit label")
	add.Flags().StringVar(&category, "category", "", "category")
	add.Flags().StringSliceVar(&tags, "tags", nil, "tags")

	list := &cobra.Command{
		Use:   "list",
		Short: "List goals with today's progress",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			tasks, err := app.TaskCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
				return nil
			}
			for _, t := range tasks {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d/%d %s\t%d%%\n", t.ID, t.Type, t.Title, t.Current, t.Target, t.Unit, t.Percent)
			}
			return nil
		}),
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show goal details",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataPath, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			t, err := app.TaskCLI.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\ntitle: %s\ncategory: %s\ntype: %s\nprogress: %d/%d %s (%d%%)\nsessions: %d (%d min)\ntags: %s\nupdated: %s\n",
				t.ID, t.Title, t.Category, t.Type, t.Current, t.Target, t.Unit, t.Percent, t.SessionCount, t.FocusMinutes,
				strings.Join(t.Tags, ","), t.UpdatedAt.Format(time.RFC3339))
			return nil
		}),
	}

	var upTitle, upCategory, upUnit string
	var upTarget, upCurrent int
	var upTags []string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change goal fields",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataPath, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			input := taskdto.UpdateTaskInput{ID: args[0]}
			flags := cmd.Flags()
			if flags.Changed("title") {
				input.Title = &upTitle
			}
			if flags.Changed("category") {
				input.Category = &upCategory
			}
			if flags.Changed("unit") {
				input.Unit = &upUnit
			}
			if flags.Changed("target") {
				input.Target = &upTarget
			}
			if flags.Changed("current") {
				input.Current = &upCurrent
			}
			if flags.Changed("tags") {
				input.Tags = append([]string{}, upTags...)
			}
			out, err := app.TaskCLI.Update(cmd.Context(), input)
			if err != nil {
				return err
			}
			printMutation(cmd.OutOrStdout(), "updated", out)
			return nil
		}),
	}
	update.Flags().StringVar(&upTitle, "title", "", "title")
	update.Flags().StringVar(&upCategory, "category", "", "category")
	update.Flags().StringVar(&upUnit, "unit", "", "unit label")
	update.Flags().IntVar(&upTarget, "target", 0, "daily target")
	update.Flags().IntVar(&upCurrent, "current", 0, "current progress")
	update.Flags().StringSliceVar(&upTags, "tags", nil, "tags (replaces existing)")

	var setTo, addBy int
	progress := &cobra.Command{
		Use:   "progress <id> (--set N | --add N)",
		Short: "Record progress on a goal",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataPath, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			flags := cmd.Flags()
			var (
				out taskdto.MutationOutput
				err error
			)
			switch {
			case flags.Changed("set") && flags.Changed("add"):
				return fmt.Errorf("use either --set or --add")
			case flags.Changed("set"):
				out, err = app.TaskCLI.SetProgress(cmd.Context(), args[0], setTo)
			case flags.Changed("add"):
				out, err = app.TaskCLI.IncrementProgress(cmd.Context(), args[0], addBy)
			default:
				out, err = app.TaskCLI.IncrementProgress(cmd.Context(), args[0], 1)
			}
			if err != nil {
				return err
			}
			printMutation(cmd.OutOrStdout(), "progress", out)
			return nil
		}),
	}
	progress.Flags().IntVar(&setTo, "set", 0, "set current progress")
	progress.Flags().IntVar(&addBy, "add", 0, "add to current progress (negative to undo)")

	var yes bool
	remove := &cobra.Command{
		Use:   "delete <id> --yes",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataPath, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			if !yes {
				return fmt.Errorf("refusing to delete %s without --yes", args[0])
			}
			if err := app.TaskCLI.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		}),
	}
	remove.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	task.AddCommand(add, list, show, update, progress, remove)
	return task
}

func printMutation(w io.Writer, verb string, out taskdto.MutationOutput) {
	_, _ = fmt.Fprintf(w, "%s %s: %d/%d %s (%d%%)\n", verb, out.Task.Title, out.Task.Current, out.Task.Target, out.Task.Unit, out.Task.Percent)
	if out.ReachedTarget {
		_, _ = fmt.Fprintf(w, "target reached! +%d xp\n", out.XPAwarded)
	}
}

func newFocusCmd(dataPath *string) *cobra.Command {
	focus := &cobra.Command{Use: "focus", Short: "Focus timer for a goal"}

	focus.AddCommand(&cobra.Command{
		Use:   "start <task-id>",
		Short: "Start a focus interval",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataPath, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			out, err := app.FocusCLI.Start(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus started on %s at %s\n", out.TaskTitle, out.StartedAt.Format(time.Kitchen))
			return nil
		}),
	})

	focus.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop the focus interval and record it",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			out, err := app.FocusCLI.Stop(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focused %d min on %s (%d/%d) +%d xp\n", out.Minutes, out.TaskTitle, out.Current, out.Target, out.XPAwarded)
			if out.ReachedTarget {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "target reached!")
			}
			return nil
		}),
	})

	focus.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the running focus interval",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			out, err := app.FocusCLI.Status(cmd.Context())
			if err != nil {
				return err
			}
			elapsed := time.Duration(out.ElapsedMS) * time.Millisecond
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s elapsed\n", out.TaskTitle, elapsed.Truncate(time.Second))
			return nil
		}),
	})

	focus.AddCommand(&cobra.Command{
		Use:   "cancel",
		Short: "Discard the running focus interval",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			if err := app.FocusCLI.Cancel(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "focus cancelled")
			return nil
		}),
	})

	var minutes int
	logCmd := &cobra.Command{
		Use:   "log <task-id> --minutes N",
		Short: "Record a finished focus session",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataPath, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			if minutes <= 0 {
				return fmt.Errorf("--minutes must be positive")
			}
			out, err := app.TaskCLI.LogFocus(cmd.Context(), args[0], int64(minutes)*int64(time.Minute/time.Millisecond))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %d min on %s (%d/%d) +%d xp\n", out.Minutes, out.Task.Title, out.Task.Current, out.Task.Target, out.XPAwarded)
			return nil
		}),
	}
	logCmd.Flags().IntVar(&minutes, "minutes", 0, "session length in minutes")
	focus.AddCommand(logCmd)
	return focus
}

func newHistoryCmd(dataPath *string) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Archived days"}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List archived days, newest first",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			days, err := app.HistoryCLI.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(days) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no history")
				return nil
			}
			for _, d := range days {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d%%\t%d/%d goals\t%d min\n", d.Date, d.CompletionRate, d.CompletedTasks, d.TaskCount, d.TotalFocusMin)
			}
			return nil
		}),
	}
	list.Flags().IntVar(&limit, "limit", 14, "number of days (0 for all)")

	show := &cobra.Command{
		Use:   "show <yyyy-mm-dd>",
		Short: "Show one archived day",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataPath, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			out, err := app.HistoryCLI.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d%% complete, %d min focus\n", out.Day.Date, out.Day.CompletionRate, out.Day.TotalFocusMin)
			for _, t := range out.Tasks {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%d/%d %s\t%d%%\t%d session(s)\n", t.Title, t.Current, t.Target, t.Unit, t.Percent, t.Sessions)
			}
			return nil
		}),
	}

	var dir string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write one markdown journal note per archived day",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			target := dir
			if target == "" {
				target = filepath.Join(*dataPath, "journal")
			}
			out, err := app.HistoryCLI.Export(cmd.Context(), target)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d day(s) to %s\n", len(out.Paths), out.Dir)
			return nil
		}),
	}
	export.Flags().StringVar(&dir, "dir", "", "output directory (default <data>/journal)")

	history.AddCommand(list, show, export)
	return history
}

func newProfileCmd(dataPath *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Profile and level"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show profile, XP and level",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			p, err := app.ProfileCLI.Show(cmd.Context())
			if err != nil {
				return err
			}
			name := p.Name
			if !p.Onboarded {
				name = "(not onboarded)"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\nmotto: %s\nlevel: %d (%d/%d xp into level)\nxp: %d\n", name, p.Motto, p.Level, p.XPIntoLevel, p.XPForLevel, p.XP)
			return nil
		}),
	})

	var name, motto string
	onboard := &cobra.Command{
		Use:   "onboard --name <name>",
		Short: "Set up the profile",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			p, err := app.ProfileCLI.Onboard(cmd.Context(), name, motto)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "welcome, %s\n", p.Name)
			return nil
		}),
	}
	onboard.Flags().StringVar(&name, "name", "", "display name")
	onboard.Flags().StringVar(&motto, "motto", "", "personal motto")
	profile.AddCommand(onboard)
	return profile
}

func newCoachCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "coach",
		Short: "Ask the coach for a word on today",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			out, err := app.CoachCLI.Narrate(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			if out.Degraded {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "(coach plugin unavailable, showing summary)")
			}
			return nil
		}),
	}
}

func newSettingsCmd(dataPath *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Persona, theme and speech preferences"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show settings",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			s, err := app.SettingsCLI.Show(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "persona: %s (%s)\ninstructions: %s\ntheme: %s\nauto-speech: %t\n",
				s.Persona.Name, s.Persona.Tone, s.Persona.Instructions, s.Theme, s.AutoSpeech)
			return nil
		}),
	})

	var name, tone, instructions string
	persona := &cobra.Command{
		Use:   "persona",
		Short: "Change the coach persona",
		RunE: withApp(dataPath, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			input := settingsdto.PersonaInput{}
			if cmd.Flags().Changed("name") {
				input.Name = &name
			}
			if cmd.Flags().Changed("tone") {
				input.Tone = &tone
			}
			if cmd.Flags().Changed("instructions") {
				input.Instructions = &instructions
			}
			p, err := app.SettingsCLI.UpdatePersona(cmd.Context(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "persona: %s (%s)\n", p.Name, p.Tone)
			return nil
		}),
	}
	persona.Flags().StringVar(&name, "name", "", "persona name")
	persona.Flags().StringVar(&tone, "tone", "", "persona tone")
	persona.Flags().StringVar(&instructions, "instructions", "", "extra narrator instructions")
	settings.AddCommand(persona)

	settings.AddCommand(&cobra.Command{
		Use:   "theme <light|dark|system>",
		Short: "Choose the theme",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataPath, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			theme, err := app.SettingsCLI.SetTheme(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", theme)
			return nil
		}),
	})

	settings.AddCommand(&cobra.Command{
		Use:   "auto-speech <on|off>",
		Short: "Toggle reading coach messages aloud",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataPath, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			enabled, err := parseSwitch(args[0])
			if err != nil {
				return err
			}
			if _, err := app.SettingsCLI.SetAutoSpeech(cmd.Context(), enabled); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "auto-speech: %t\n", enabled)
			return nil
		}),
	})
	return settings
}

func parseSwitch(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", raw)
	}
	return enabled, nil
}
