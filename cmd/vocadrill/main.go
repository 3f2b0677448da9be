// Package main provides the CLI entrypoint for vocadrill.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/minsu-seo/vocadrill/internal/config"
	"github.com/minsu-seo/vocadrill/internal/model"
	"github.com/minsu-seo/vocadrill/internal/pick"
	"github.com/minsu-seo/vocadrill/internal/quiz"
	"github.com/minsu-seo/vocadrill/internal/schedule"
	"github.com/minsu-seo/vocadrill/internal/sessionlog"
	"github.com/minsu-seo/vocadrill/internal/speech"
	"github.com/minsu-seo/vocadrill/internal/stats"
	"github.com/minsu-seo/vocadrill/internal/store"
	"github.com/minsu-seo/vocadrill/internal/tui"
)

const (
	defaultQuizMode      = "choice"
	defaultQuizCount     = 10
	defaultQuizOrder     = "random"
	defaultSpeechLang    = "en"
	defaultSessionsLimit = 20
	defaultTrendWindow   = 5
	defaultWeakLimit     = 10
	dateLayout           = "2006-01-02"
)

var (
	addDef      string
	addExamples []string
	addTags     []string

	wordsOrder string

	editDef      string
	editExamples []string
	editTags     []string

	quizMode     string
	quizCount    int
	quizOrder    string
	quizInclude  []string
	quizExclude  []string
	quizRatio    float64
	speechPlayer string
	speechLang   string

	sessionsLimit   int
	sessionsWindow  int
	sessionsSummary bool
	sessionsPlot    bool

	weakMode  string
	weakLimit int

	speakExample int

	itemSummary string
	itemTags    []string
	itemOn      string
	listAll     bool
	listDone    bool
	listDue     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vocadrill",
		Short:         "Terminal vocabulary and spaced-repetition trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newQuizCmd())
	rootCmd.AddCommand(newSessionsCmd())
	rootCmd.AddCommand(newWeakCmd())
	rootCmd.AddCommand(newSpeakCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newItemCmd())

	return rootCmd
}

func openCollection() (*store.Store, map[string]*model.WordRecord, error) {
	st, err := store.Open(config.DefaultDataDir())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open word store: %w", err)
	}
	words, err := st.Load()
	if err != nil {
		return nil, nil, err
	}
	return st, words, nil
}

func newSpeaker(cmd *cobra.Command) (*speech.Speaker, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "player", &speechPlayer, fileCfg.Speech.Player)
	applyStringConfig(cmd, "tts-lang", &speechLang, fileCfg.Speech.Lang)
	player := speechPlayer
	if player == "" {
		player = detectPlayer()
	}
	return speech.New(config.DefaultDataDir(), player, speechLang), nil
}

// detectPlayer probes common command-line audio players.
func detectPlayer() string {
	for _, candidate := range []string{"afplay", "mpv", "mplayer", "ffplay"} {
		if _, err := exec.LookPath(candidate); err == nil {
			if candidate == "ffplay" {
				return "ffplay -nodisp -autoexit -loglevel quiet"
			}
			return candidate
		}
	}
	return ""
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <word>",
		Short: "Add or update a word",
		Args:  cobra.ExactArgs(1),
		RunE:  runAddCmd,
	}
	cmd.Flags().StringVar(&addDef, "def", "", "definition")
	cmd.Flags().StringArrayVar(&addExamples, "example", nil, "example sentence (repeatable)")
	cmd.Flags().StringArrayVar(&addTags, "tag", nil, "tag (repeatable)")
	return cmd
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	st, words, err := openCollection()
	if err != nil {
		return err
	}
	key := strings.TrimSpace(args[0])
	if key == "" {
		return fmt.Errorf("word must not be empty")
	}
	_, existed := words[key]
	store.Upsert(words, key, addDef, addExamples, addTags)
	if err := st.Save(words); err != nil {
		return err
	}
	if existed {
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %q.\n", key)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Added %q.\n", key)
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "List the vocabulary",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&wordsOrder, "order", "alpha", "listing order: alpha, wrong, or recent")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	_, words, err := openCollection()
	if err != nil {
		return err
	}
	if len(words) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No words yet. Add one with: vocadrill add <word> --def <definition>")
		return nil
	}

	keys := make([]string, 0, len(words))
	for key := range words {
		keys = append(keys, key)
	}
	switch wordsOrder {
	case "alpha":
		sort.Strings(keys)
	case "wrong":
		sort.SliceStable(keys, func(i, j int) bool {
			wi, wj := totalWrong(words[keys[i]]), totalWrong(words[keys[j]])
			if wi == wj {
				return keys[i] < keys[j]
			}
			return wi > wj
		})
	case "recent":
		sort.SliceStable(keys, func(i, j int) bool {
			if words[keys[i]].AddedAt == words[keys[j]].AddedAt {
				return keys[i] < keys[j]
			}
			return words[keys[i]].AddedAt > words[keys[j]].AddedAt
		})
	default:
		return fmt.Errorf("unknown order %q (alpha, wrong, recent)", wordsOrder)
	}

	for _, key := range keys {
		rec := words[key]
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s  %s\n",
			runewidth.Truncate(key, 20, "…"),
			counterSummary(rec),
			runewidth.Truncate(rec.Definition, 44, "…"))
	}
	return nil
}

func totalWrong(rec *model.WordRecord) int {
	total := 0
	for _, mode := range model.RequiredModes {
		if pair := rec.Stats[mode]; pair != nil {
			total += pair.Wrong
		}
	}
	return total
}

func counterSummary(rec *model.WordRecord) string {
	parts := make([]string, 0, len(model.RequiredModes))
	for _, mode := range model.RequiredModes {
		pair := rec.Stats[mode]
		if pair == nil {
			pair = &model.StatPair{}
		}
		parts = append(parts, fmt.Sprintf("%s %d/%d", string(mode)[:2], pair.Correct, pair.Total()))
	}
	return strings.Join(parts, " ")
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <word>",
		Short: "Show one word in full",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearchCmd,
	}
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	_, words, err := openCollection()
	if err != nil {
		return err
	}
	key := args[0]
	rec, ok := words[key]
	if !ok {
		return fmt.Errorf("%q: %w", key, store.ErrNotFound)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", key)
	if rec.Definition != "" {
		fmt.Fprintf(out, "  %s\n", rec.Definition)
	}
	for i, example := range rec.Examples {
		fmt.Fprintf(out, "  %d. %s\n", i+1, example)
	}
	if len(rec.Tags) > 0 {
		fmt.Fprintf(out, "  tags: %s\n", strings.Join(rec.Tags, ", "))
	}
	fmt.Fprintf(out, "  %s  added %s\n", counterSummary(rec), rec.AddedAt)
	return nil
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <word>",
		Short: "Change a word's definition, examples, or tags",
		Args:  cobra.ExactArgs(1),
		RunE:  runEditCmd,
	}
	cmd.Flags().StringVar(&editDef, "def", "", "new definition")
	cmd.Flags().StringArrayVar(&editExamples, "example", nil, "replacement example (repeatable)")
	cmd.Flags().StringArrayVar(&editTags, "tag", nil, "replacement tag (repeatable)")
	return cmd
}

func runEditCmd(cmd *cobra.Command, args []string) error {
	st, words, err := openCollection()
	if err != nil {
		return err
	}
	key := args[0]
	rec, ok := words[key]
	if !ok {
		return fmt.Errorf("%q: %w", key, store.ErrNotFound)
	}
	if cmd.Flags().Changed("def") {
		rec.Definition = editDef
	}
	if cmd.Flags().Changed("example") {
		rec.Examples = editExamples
	}
	if cmd.Flags().Changed("tag") {
		rec.Tags = editTags
	}
	store.Normalize(rec)
	if err := st.Save(words); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %q.\n", key)
	return nil
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <word>",
		Short: "Remove a word and its cached audio",
		Args:  cobra.ExactArgs(1),
		RunE:  runDeleteCmd,
	}
}

func runDeleteCmd(cmd *cobra.Command, args []string) error {
	st, words, err := openCollection()
	if err != nil {
		return err
	}
	key := args[0]
	if _, ok := words[key]; !ok {
		return fmt.Errorf("%q: %w", key, store.ErrNotFound)
	}
	delete(words, key)
	if err := st.Save(words); err != nil {
		return err
	}
	speaker, err := newSpeaker(cmd)
	if err != nil {
		return err
	}
	speaker.RemoveCached(key)
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q.\n", key)
	return nil
}

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run an interactive quiz",
		Args:  cobra.NoArgs,
		RunE:  runQuizCmd,
	}
	cmd.Flags().StringVar(&quizMode, "mode", defaultQuizMode, "quiz mode: choice, recall, spelling, or sentence")
	cmd.Flags().IntVarP(&quizCount, "count", "n", defaultQuizCount, "number of questions")
	cmd.Flags().StringVar(&quizOrder, "order", defaultQuizOrder, "selection order: random, weighted, least-practiced, most-wrong, spelling-hard, spelling-least")
	cmd.Flags().StringArrayVar(&quizInclude, "include", nil, "only quiz words with this tag (repeatable)")
	cmd.Flags().StringArrayVar(&quizExclude, "exclude", nil, "skip words with this tag (repeatable)")
	cmd.Flags().Float64Var(&quizRatio, "sentence-ratio", quiz.DefaultSentenceRatio, "similarity threshold for sentence grading")
	cmd.Flags().StringVar(&speechPlayer, "player", "", "audio player command (empty: auto-detect)")
	cmd.Flags().StringVar(&speechLang, "tts-lang", defaultSpeechLang, "pronunciation language code")
	return cmd
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &quizMode, fileCfg.Quiz.Mode)
	applyIntConfig(cmd, "count", &quizCount, fileCfg.Quiz.Count)
	applyStringConfig(cmd, "order", &quizOrder, fileCfg.Quiz.Order)
	applyFloatConfig(cmd, "sentence-ratio", &quizRatio, fileCfg.Quiz.SentenceRatio)

	mode, err := model.ParseMode(quizMode)
	if err != nil {
		return err
	}
	if quizCount <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	include := quizInclude
	if mode == model.ModeSentence && len(include) == 0 {
		include = []string{model.SentenceTag}
	}

	st, words, err := openCollection()
	if err != nil {
		return err
	}
	session, err := quiz.NewSession(words, model.QuizConfig{
		Mode:          mode,
		Count:         quizCount,
		Order:         quizOrder,
		IncludeTags:   include,
		ExcludeTags:   quizExclude,
		SentenceRatio: quizRatio,
	}, pick.New())
	if err != nil {
		return err
	}
	if session.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to quiz with these filters.")
		return nil
	}

	speaker, err := newSpeaker(cmd)
	if err != nil {
		return err
	}
	log := sessionlog.New(config.DefaultSessionLogPath())
	quizModel := tui.NewQuizModel(session, words, st, log, speaker)
	program := tea.NewProgram(quizModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run quiz: %w", err)
	}

	entry := session.Summary(time.Now())
	if entry.Total > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d/%d correct (%.1f%%)\n", entry.Correct, entry.Total, entry.Accuracy)
	}
	return nil
}

func newSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Show recent quiz sessions",
		Args:  cobra.NoArgs,
		RunE:  runSessionsCmd,
	}
	cmd.Flags().IntVar(&sessionsLimit, "limit", defaultSessionsLimit, "number of recent sessions")
	cmd.Flags().IntVar(&sessionsWindow, "window", defaultTrendWindow, "moving average window")
	cmd.Flags().BoolVar(&sessionsSummary, "summary", false, "show per-mode aggregates instead")
	cmd.Flags().BoolVar(&sessionsPlot, "plot", false, "plot the accuracy curve")
	return cmd
}

func runSessionsCmd(cmd *cobra.Command, _ []string) error {
	log := sessionlog.New(config.DefaultSessionLogPath())
	entries, err := log.Recent(sessionsLimit)
	if err != nil {
		return err
	}
	// Recent returns newest first; the table and curves read oldest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	out := cmd.OutOrStdout()
	if sessionsSummary {
		return stats.RenderSummary(out, entries)
	}
	if sessionsPlot {
		if len(entries) == 0 {
			fmt.Fprintln(out, "No sessions logged yet.")
			return nil
		}
		return stats.PlotAccuracy(out, "Accuracy", stats.AccuracySeries(entries), 0, 0)
	}
	return stats.RenderSessions(out, entries, sessionsWindow)
}

func newWeakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weak",
		Short: "Show the words you miss most",
		Args:  cobra.NoArgs,
		RunE:  runWeakCmd,
	}
	cmd.Flags().StringVar(&weakMode, "mode", "spelling", "mode whose counters to rank by")
	cmd.Flags().IntVar(&weakLimit, "limit", defaultWeakLimit, "number of words")
	return cmd
}

func runWeakCmd(cmd *cobra.Command, _ []string) error {
	mode, err := model.ParseMode(weakMode)
	if err != nil {
		return err
	}
	_, words, err := openCollection()
	if err != nil {
		return err
	}
	weak := stats.WeakestWords(words, mode, weakLimit)
	out := cmd.OutOrStdout()
	if len(weak) == 0 {
		fmt.Fprintf(out, "No %s attempts yet.\n", mode)
		return nil
	}
	for _, w := range weak {
		fmt.Fprintf(out, "%-20s %3d wrong / %3d right  (%.0f%% missed)\n",
			runewidth.Truncate(w.Key, 20, "…"), w.Wrong, w.Correct, w.ErrorRate*100)
	}
	return nil
}

func newSpeakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speak <text>",
		Short: "Pronounce a word or one of its examples",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSpeakCmd,
	}
	cmd.Flags().IntVar(&speakExample, "example", 0, "speak the Nth example of the word instead (1-based)")
	cmd.Flags().StringVar(&speechPlayer, "player", "", "audio player command (empty: auto-detect)")
	cmd.Flags().StringVar(&speechLang, "tts-lang", defaultSpeechLang, "pronunciation language code")
	return cmd
}

func runSpeakCmd(cmd *cobra.Command, args []string) error {
	speaker, err := newSpeaker(cmd)
	if err != nil {
		return err
	}
	if !speaker.Enabled() {
		return fmt.Errorf("no audio player found (set speech.player in the config or pass --player)")
	}
	text := strings.Join(args, " ")
	if speakExample > 0 {
		_, words, err := openCollection()
		if err != nil {
			return err
		}
		rec, ok := words[text]
		if !ok {
			return fmt.Errorf("%q: %w", text, store.ErrNotFound)
		}
		if speakExample > len(rec.Examples) {
			return fmt.Errorf("%q has %d example(s)", text, len(rec.Examples))
		}
		text = rec.Examples[speakExample-1]
	}
	speaker.Speak(text)
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	editorCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newItemCmd() *cobra.Command {
	itemCmd := &cobra.Command{
		Use:   "item",
		Short: "Spaced-repetition items",
	}
	itemCmd.AddCommand(newItemAddCmd())
	itemCmd.AddCommand(newItemReviewCmd())
	itemCmd.AddCommand(newItemListCmd())
	return itemCmd
}

func newItemAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add an item to the review rotation",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runItemAddCmd,
	}
	cmd.Flags().StringVar(&itemSummary, "summary", "", "hidden answer shown on demand during review")
	cmd.Flags().StringArrayVar(&itemTags, "tag", nil, "tag (repeatable)")
	return cmd
}

func runItemAddCmd(cmd *cobra.Command, args []string) error {
	db, err := schedule.OpenDB(config.DefaultDataDir())
	if err != nil {
		return err
	}
	item, err := db.Add(strings.Join(args, " "), itemSummary, itemTags)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added. First review on %s.\n", item.NextReviewDate)
	return nil
}

func newItemReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review the items due today",
		Args:  cobra.NoArgs,
		RunE:  runItemReviewCmd,
	}
	cmd.Flags().StringVar(&itemOn, "on", "", "review date (YYYY-MM-DD, default today)")
	cmd.Flags().StringArrayVar(&itemTags, "tag", nil, "only items carrying this tag (repeatable)")
	return cmd
}

func runItemReviewCmd(cmd *cobra.Command, _ []string) error {
	on := time.Now()
	if itemOn != "" {
		parsed, err := time.ParseInLocation(dateLayout, itemOn, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --on value: %w", err)
		}
		on = parsed
	}
	db, err := schedule.OpenDB(config.DefaultDataDir())
	if err != nil {
		return err
	}
	due := db.DueItems(on, itemTags)
	if len(due) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing due. Come back tomorrow.")
		return nil
	}
	reviewModel := tui.NewReviewModel(db, due, on)
	program := tea.NewProgram(reviewModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run review: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reviewed %d item(s), %d completed.\n",
		reviewModel.Reviewed(), reviewModel.Completed())
	return nil
}

func newItemListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduler items",
		Args:  cobra.NoArgs,
		RunE:  runItemListCmd,
	}
	cmd.Flags().BoolVar(&listAll, "all", false, "active and completed items")
	cmd.Flags().BoolVar(&listDone, "completed", false, "completed items only")
	cmd.Flags().BoolVar(&listDue, "due", false, "items due today only")
	cmd.Flags().StringArrayVar(&itemTags, "tag", nil, "only items carrying this tag (repeatable)")
	return cmd
}

func runItemListCmd(cmd *cobra.Command, _ []string) error {
	db, err := schedule.OpenDB(config.DefaultDataDir())
	if err != nil {
		return err
	}
	var items []*schedule.Item
	switch {
	case listDue:
		items = db.DueItems(time.Now(), itemTags)
	case listDone:
		items = filterItems(db.Completed, itemTags)
	case listAll:
		items = append(filterItems(db.Active, itemTags), filterItems(db.Completed, itemTags)...)
	default:
		items = filterItems(db.Active, itemTags)
	}
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No items.")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(out, "%s  %d/%d %s  next %s  %s\n",
			item.Status, item.MemoryCount, schedule.MaxMemoryCount,
			runewidth.FillRight(runewidth.Truncate(item.Content, 40, "…"), 40),
			item.NextReviewDate, strings.Join(item.Tags, ","))
	}
	return nil
}

func filterItems(items []*schedule.Item, tags []string) []*schedule.Item {
	if len(tags) == 0 {
		return append([]*schedule.Item(nil), items...)
	}
	out := make([]*schedule.Item, 0, len(items))
	for _, item := range items {
		if item.Tags.Intersects(tags) {
			out = append(out, item)
		}
	}
	return out
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# vocadrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# mode = %q            # Quiz mode: choice, recall, spelling, sentence
# count = %d               # Questions per session
# order = %q           # random, weighted, least-practiced, most-wrong, spelling-hard, spelling-least
# sentence-ratio = %.2f    # Similarity threshold for sentence grading

[speech]
# player = "mpv"           # Audio player command (empty: auto-detect)
# lang = %q                # Pronunciation language code
`,
		defaultQuizMode,
		defaultQuizCount,
		defaultQuizOrder,
		quiz.DefaultSentenceRatio,
		defaultSpeechLang,
	)
}
