// Command firstlight builds daily devotional audio from Bible reading
// plans. It fetches plans from their source sites, downloads narrated
// chapter audio, and assembles one MP3 per reading day, plain or with a
// background-music bed.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/viaifoundation/firstlight/core/errors"
	"github.com/viaifoundation/firstlight/core/ref"
	"github.com/viaifoundation/firstlight/internal/audio"
	"github.com/viaifoundation/firstlight/internal/library"
	"github.com/viaifoundation/firstlight/internal/logging"
	"github.com/viaifoundation/firstlight/internal/plans"
	"github.com/viaifoundation/firstlight/internal/scrape"
)

const version = "0.1.0"

// CLI defines the command-line interface for firstlight.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" enum:"debug,info,warn,error"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text" enum:"text,json"`
	DataDir   string `name:"data-dir" help:"Root directory for plans, audio, and music" default:"data" type:"path"`

	Plans    PlansGroup  `cmd:"" help:"Reading plan operations (fetch, list, show)"`
	Audio    AudioGroup  `cmd:"" help:"Chapter audio library operations (download, status)"`
	BGM      BGMGroup    `cmd:"" name:"bgm" help:"Background music operations (install, list)"`
	Day      DayCmd      `cmd:"" help:"Assemble one day's audio file"`
	Generate GenerateCmd `cmd:"" help:"Assemble a day range of a plan with dated file names"`
	Daily    DailyCmd    `cmd:"" aliases:"firstlight" help:"Date-driven daily run: print readings, emit plain and BGM files"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

func plansDir() string    { return filepath.Join(CLI.DataDir, "plans") }
func zipsDir() string     { return filepath.Join(CLI.DataDir, "zips") }
func chaptersDir() string { return filepath.Join(CLI.DataDir, "chapters") }
func bgmDir() string      { return filepath.Join(CLI.DataDir, "bgm") }
func runsDir() string     { return filepath.Join(CLI.DataDir, "runs") }
func indexPath() string   { return filepath.Join(CLI.DataDir, "library.db") }

// Chinese output-name patterns per plan; %d is the plan day.
var planFileNames = map[string]string{
	"chronological-1year":  "历史读经第%d天",
	"chronological-90days": "90天历史读经第%d天",
}

func dayFileName(planID string, day int) string {
	pattern, ok := planFileNames[planID]
	if !ok {
		pattern = "读经第%d天"
	}
	return fmt.Sprintf(pattern, day)
}

var localesByName = map[string]ref.Locale{
	"en":    ref.English,
	"zh_cn": ref.SimplifiedChinese,
	"zh_tw": ref.TraditionalChinese,
}

// PlansGroup contains reading-plan operations.
type PlansGroup struct {
	Fetch PlansFetchCmd `cmd:"" help:"Fetch a plan from its source site and store it"`
	List  PlansListCmd  `cmd:"" help:"List catalog plans and their stored status"`
	Show  PlansShowCmd  `cmd:"" help:"Print a stored plan's readings in each locale"`
}

// AudioGroup contains chapter-library operations.
type AudioGroup struct {
	Download AudioDownloadCmd `cmd:"" help:"Download and arrange narrated chapter audio"`
	Status   AudioStatusCmd   `cmd:"" help:"Show library coverage, optionally against a plan"`
}

// BGMGroup contains background-music operations.
type BGMGroup struct {
	Install BGMInstallCmd `cmd:"" help:"Install a background music pack (tar.gz or tar.xz)"`
	List    BGMListCmd    `cmd:"" help:"List installed background tracks"`
}

// PlansFetchCmd fetches one catalog plan, or all of them.
type PlansFetchCmd struct {
	ID  string `arg:"" optional:"" help:"Catalog plan ID (omit with --all)"`
	All bool   `help:"Fetch every catalog plan"`
}

func (c *PlansFetchCmd) Run() error {
	ctx := context.Background()
	client := &http.Client{Timeout: 60 * time.Second}
	store := plans.NewStore(plansDir())

	var targets []scrape.CatalogEntry
	if c.All {
		targets = scrape.Catalog()
	} else {
		if c.ID == "" {
			return &errors.ValidationError{Field: "id", Message: "give a plan ID or --all"}
		}
		entry, err := scrape.FindCatalogEntry(c.ID)
		if err != nil {
			return err
		}
		targets = append(targets, entry)
	}

	for _, entry := range targets {
		var plan *plans.Plan
		var err error
		switch entry.Source {
		case scrape.SourceBibleCom:
			plan, err = scrape.FetchBibleComPlan(ctx, client, entry)
		default:
			plan, err = scrape.FetchBSTPlan(ctx, client, entry)
		}
		if err != nil {
			return fmt.Errorf("fetch %s: %w", entry.ID, err)
		}
		if err := store.Save(plan); err != nil {
			return err
		}
		fmt.Printf("Fetched %s: %d days\n", plan.ID, len(plan.Entries))
	}
	return nil
}

// PlansListCmd lists the catalog with stored status.
type PlansListCmd struct{}

func (c *PlansListCmd) Run() error {
	store := plans.NewStore(plansDir())
	ids, err := store.List()
	if err != nil {
		return err
	}
	stored := make(map[string]bool, len(ids))
	for _, id := range ids {
		stored[id] = true
	}

	for _, entry := range scrape.Catalog() {
		mark := " "
		if stored[entry.ID] {
			mark = "*"
		}
		fmt.Printf("%s %-22s %3dd  %-16s %s\n", mark, entry.ID, entry.Days, entry.Source, entry.Name)
		delete(stored, entry.ID)
	}
	for id := range stored {
		fmt.Printf("* %-22s (stored, not in catalog)\n", id)
	}
	return nil
}

// PlansShowCmd prints a stored plan's readings.
type PlansShowCmd struct {
	ID     string `arg:"" help:"Plan ID"`
	From   int    `help:"First day to show" default:"1"`
	To     int    `help:"Last day to show (0 = last plan day)"`
	Locale string `help:"Display locale" default:"all" enum:"en,zh_cn,zh_tw,all"`
}

func (c *PlansShowCmd) Run() error {
	plan, err := plans.NewStore(plansDir()).Load(c.ID)
	if err != nil {
		return err
	}

	var locales []string
	if c.Locale == "all" {
		locales = []string{"en", "zh_cn", "zh_tw"}
	} else {
		locales = []string{c.Locale}
	}

	to := c.To
	if to == 0 || to > plan.MaxDay() {
		to = plan.MaxDay()
	}
	for day := c.From; day <= to; day++ {
		entry := plan.Entry(day)
		if entry == nil || len(entry.Chapters) == 0 {
			continue
		}
		fmt.Printf("--- Day %d ---\n", day)
		for _, name := range locales {
			s, err := ref.FormatChapters(entry.Chapters, localesByName[name])
			if err != nil {
				return err
			}
			fmt.Printf("[%s] %s\n", name, s)
		}
	}
	return nil
}

// AudioDownloadCmd downloads narrated chapter audio by book range.
type AudioDownloadCmd struct {
	Books   string `help:"Books to download: N, N-M, or all" default:"all"`
	BaseURL string `name:"base-url" help:"Audio mirror base URL" default:"${everest_url}"`
	DryRun  bool   `name:"dry-run" help:"List what would be downloaded without fetching"`
}

func (c *AudioDownloadCmd) Run() error {
	start, end, err := parseBookRange(c.Books)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(CLI.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	index, err := library.OpenIndex(indexPath())
	if err != nil {
		return err
	}
	defer index.Close()

	d := &library.Downloader{
		Client:      &http.Client{Timeout: 10 * time.Minute},
		BaseURL:     c.BaseURL,
		ZipDir:      zipsDir(),
		ChaptersDir: chaptersDir(),
		Index:       index,
		DryRun:      c.DryRun,
	}
	if err := d.DownloadRange(context.Background(), start, end); err != nil {
		return err
	}
	if !c.DryRun {
		n, err := index.Count()
		if err != nil {
			return err
		}
		fmt.Printf("Library now holds %d chapters\n", n)
	}
	return nil
}

// parseBookRange parses "all", "N", or "N-M" into an inclusive range.
func parseBookRange(s string) (int, int, error) {
	if s == "" || s == "all" {
		return 1, 66, nil
	}
	lo, hi, found := strings.Cut(s, "-")
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, &errors.ValidationError{Field: "books", Value: s, Message: "want N, N-M, or all"}
	}
	end := start
	if found {
		if end, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
			return 0, 0, &errors.ValidationError{Field: "books", Value: s, Message: "want N, N-M, or all"}
		}
	}
	if start < 1 || end > 66 || start > end {
		return 0, 0, &errors.ValidationError{Field: "books", Value: s, Message: "books run 1-66"}
	}
	return start, end, nil
}

// AudioStatusCmd reports library coverage.
type AudioStatusCmd struct {
	Plan string `arg:"" optional:"" help:"Plan ID to check coverage against"`
}

func (c *AudioStatusCmd) Run() error {
	index, err := library.OpenIndex(indexPath())
	if err != nil {
		return err
	}
	defer index.Close()

	n, err := index.Count()
	if err != nil {
		return err
	}
	fmt.Printf("Chapters indexed: %d\n", n)
	if c.Plan == "" {
		return nil
	}

	plan, err := plans.NewStore(plansDir()).Load(c.Plan)
	if err != nil {
		return err
	}
	seen := make(map[ref.Chapter]struct{})
	var wanted []ref.Chapter
	for _, entry := range plan.Entries {
		for _, s := range entry.Chapters {
			ch, err := ref.ParseChapter(s)
			if err != nil {
				continue
			}
			if _, dup := seen[ch]; dup {
				continue
			}
			seen[ch] = struct{}{}
			wanted = append(wanted, ch)
		}
	}
	missing, err := index.Missing(wanted)
	if err != nil {
		return err
	}
	fmt.Printf("Plan %s needs %d chapters, %d missing\n", plan.ID, len(wanted), len(missing))
	for i, ch := range missing {
		if i >= 20 {
			fmt.Printf("  ... and %d more\n", len(missing)-20)
			break
		}
		name, _ := ref.BookName(ch.Book, ref.English)
		fmt.Printf("  %s %d (%s)\n", name, ch.Number, ch)
	}
	return nil
}

// BGMInstallCmd installs a background music pack.
type BGMInstallCmd struct {
	Pack string `arg:"" help:"Pack archive (tar.gz or tar.xz)" type:"path"`
}

func (c *BGMInstallCmd) Run() error {
	installed, err := audio.InstallPack(c.Pack, bgmDir())
	if err != nil {
		return err
	}
	for _, track := range installed {
		fmt.Println(filepath.Base(track))
	}
	fmt.Printf("Installed %d tracks\n", len(installed))
	return nil
}

// BGMListCmd lists installed background tracks.
type BGMListCmd struct{}

func (c *BGMListCmd) Run() error {
	tracks, err := audio.ListTracks(bgmDir())
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		fmt.Println("No background tracks installed")
		return nil
	}
	for _, track := range tracks {
		fmt.Println(filepath.Base(track))
	}
	return nil
}

// mixFlags are the background-music knobs shared by assembly commands.
type mixFlags struct {
	BGM       bool   `help:"Mix a background track under the speech"`
	BGMTrack  string `name:"bgm-track" help:"Track file name (default: random from the music directory)"`
	BGMVolume int    `name:"bgm-volume" help:"Track volume in dB" default:"-20"`
	BGMIntro  int    `name:"bgm-intro" help:"Music alone before the speech (ms)" default:"4000"`
	BGMTail   int    `name:"bgm-tail" help:"Music alone after the speech (ms)" default:"3000"`
}

// DayCmd assembles a single audio file from a plan day or an explicit
// citation.
type DayCmd struct {
	Plan     string `help:"Plan ID" default:"chronological-90days"`
	Day      int    `help:"Plan day to assemble"`
	Chapters string `help:"Citation text instead of a plan day (e.g. \"Genesis 1-3; Psalm 23\")"`
	Output   string `short:"o" help:"Output MP3 path" required:""`

	GapMS        int     `name:"gap-ms" help:"Silence between chapters (ms)" default:"500"`
	SpeechVolume int     `name:"speech-volume" help:"Speech volume adjustment in dB" default:"0"`
	Speed        float64 `help:"Playback speed (2.0 = 2x, pitch preserved)" default:"1.0"`
	mixFlags
}

func (c *DayCmd) Run() error {
	var chapters []string
	if c.Chapters != "" {
		chapters = ref.NormalizeDayText(c.Chapters)
		if len(chapters) == 0 {
			return &errors.ValidationError{Field: "chapters", Value: c.Chapters, Message: "no chapters recognized"}
		}
	} else {
		if c.Day == 0 {
			return &errors.ValidationError{Field: "day", Message: "give --day or --chapters"}
		}
		plan, err := plans.NewStore(plansDir()).Load(c.Plan)
		if err != nil {
			return err
		}
		entry := plan.Entry(c.Day)
		if entry == nil || len(entry.Chapters) == 0 {
			return &errors.NotFoundError{Resource: "plan day", ID: fmt.Sprintf("%s day %d", c.Plan, c.Day)}
		}
		chapters = entry.Chapters
	}

	return assembleFile(assembly{
		chapters:     chapters,
		output:       c.Output,
		gapMS:        c.GapMS,
		speechVolume: c.SpeechVolume,
		speed:        c.Speed,
		mix:          c.mixFlags,
	})
}

// GenerateCmd assembles a day range of a plan with dated file names.
type GenerateCmd struct {
	Plan   string `arg:"" help:"Plan ID"`
	Output string `short:"o" help:"Output directory (default <data>/output/<plan>)"`

	StartDate    string  `name:"start-date" help:"Calendar date of plan day 1 (YYYY-MM-DD)" default:"2026-02-17"`
	StartDay     int     `name:"start-day" help:"First plan day" default:"1"`
	EndDay       int     `name:"end-day" help:"Last plan day (0 = last)"`
	SpeechVolume int     `name:"speech-volume" help:"Speech volume adjustment in dB" default:"4"`
	Speed        float64 `help:"Playback speed" default:"1.0"`
	GapMS        int     `name:"gap-ms" help:"Silence between chapters (ms)" default:"500"`
	mixFlags
}

func (c *GenerateCmd) Run() error {
	plan, err := plans.NewStore(plansDir()).Load(c.Plan)
	if err != nil {
		return err
	}
	startDate, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return &errors.ValidationError{Field: "start-date", Value: c.StartDate, Message: "want YYYY-MM-DD", Err: err}
	}
	outDir := c.Output
	if outDir == "" {
		outDir = filepath.Join(CLI.DataDir, "output", c.Plan)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	end := c.EndDay
	if end == 0 {
		end = plan.MaxDay()
	}
	for _, entry := range plan.Entries {
		if entry.Day < c.StartDay || entry.Day > end {
			continue
		}
		if len(entry.Chapters) == 0 {
			fmt.Printf("Day %d: skip (no chapters)\n", entry.Day)
			continue
		}
		date := startDate.AddDate(0, 0, entry.Day-1)
		name := date.Format("20060102") + "_" + dayFileName(c.Plan, entry.Day)
		if c.BGM {
			name += "-bgm"
		}
		out := filepath.Join(outDir, name+".mp3")
		err := assembleFile(assembly{
			chapters:     entry.Chapters,
			output:       out,
			gapMS:        c.GapMS,
			speechVolume: c.SpeechVolume,
			speed:        c.Speed,
			mix:          c.mixFlags,
		})
		if err != nil {
			return fmt.Errorf("day %d: %w", entry.Day, err)
		}
		fmt.Printf("Day %d: %s\n", entry.Day, filepath.Base(out))
	}
	fmt.Printf("Done. Output: %s\n", outDir)
	return nil
}

// DailyCmd is the date-driven daily run: it resolves which plan day each
// calendar date lands on, prints the reading in all three locales, and
// emits a plain and a BGM-mixed file per day. Dates are taken in
// Pacific/Kiritimati (UTC+14), the first timezone to see each new day.
type DailyCmd struct {
	Plan          string `help:"Plan ID" default:"chronological-90days"`
	PlanStartDate string `name:"plan-start-date" help:"Calendar date of plan day 1 (YYYY-MM-DD)" default:"2026-02-27"`
	StartDate     string `name:"start-date" help:"First calendar date (default: today in Kiritimati)"`
	EndDate       string `name:"end-date" help:"Last calendar date (default: start date)"`
	NumDays       int    `name:"num-days" help:"Days to generate when --end-date is not set" default:"1"`
	Output        string `short:"o" help:"Output directory (default <data>/output/<plan>)"`

	SpeechVolume int     `name:"speech-volume" help:"Speech volume adjustment in dB" default:"4"`
	Speed        float64 `help:"Playback speed" default:"2.0"`
	BGMVolume    int     `name:"bgm-volume" help:"Track volume in dB" default:"-20"`
}

func (c *DailyCmd) Run() error {
	tz, err := time.LoadLocation("Pacific/Kiritimati")
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}
	planStart, err := time.Parse("2006-01-02", c.PlanStartDate)
	if err != nil {
		return &errors.ValidationError{Field: "plan-start-date", Value: c.PlanStartDate, Message: "want YYYY-MM-DD", Err: err}
	}
	start := time.Now().In(tz)
	if c.StartDate != "" {
		if start, err = time.Parse("2006-01-02", c.StartDate); err != nil {
			return &errors.ValidationError{Field: "start-date", Value: c.StartDate, Message: "want YYYY-MM-DD", Err: err}
		}
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, c.NumDays-1)
	if c.EndDate != "" {
		if end, err = time.Parse("2006-01-02", c.EndDate); err != nil {
			return &errors.ValidationError{Field: "end-date", Value: c.EndDate, Message: "want YYYY-MM-DD", Err: err}
		}
	}
	if start.After(end) {
		return &errors.ValidationError{Field: "start-date", Message: "start date is after end date"}
	}

	plan, err := plans.NewStore(plansDir()).Load(c.Plan)
	if err != nil {
		return err
	}
	maxDay := plan.MaxDay()

	type dailyRun struct {
		date     time.Time
		day      int
		chapters []string
	}
	var runs []dailyRun
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := int(d.Sub(planStart).Hours()/24) + 1
		if day < 1 || day > maxDay {
			continue
		}
		entry := plan.Entry(day)
		if entry == nil || len(entry.Chapters) == 0 {
			continue
		}
		runs = append(runs, dailyRun{date: d, day: day, chapters: entry.Chapters})
	}
	if len(runs) == 0 {
		fmt.Println("No valid plan days in the date range")
		return nil
	}

	for _, r := range runs {
		date := r.date.Format("2006-01-02")
		en, err := ref.FormatChapters(r.chapters, ref.English)
		if err != nil {
			return err
		}
		cn, err := ref.FormatChapters(r.chapters, ref.SimplifiedChinese)
		if err != nil {
			return err
		}
		tw, err := ref.FormatChapters(r.chapters, ref.TraditionalChinese)
		if err != nil {
			return err
		}
		fmt.Printf("--- Day %d (%s) ---\n", r.day, date)
		fmt.Printf("[en] Day %d (%s): %s\n", r.day, date, en)
		fmt.Printf("[zh_cn] 第%d天（%s）：%s\n", r.day, date, cn)
		fmt.Printf("[zh_tw] 第%d天（%s）：%s\n", r.day, date, tw)
	}

	outDir := c.Output
	if outDir == "" {
		outDir = filepath.Join(CLI.DataDir, "output", c.Plan)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, r := range runs {
		base := r.date.Format("20060102") + "_" + dayFileName(c.Plan, r.day)
		plain := assembly{
			chapters:     r.chapters,
			output:       filepath.Join(outDir, base+".mp3"),
			gapMS:        500,
			speechVolume: c.SpeechVolume,
			speed:        c.Speed,
		}
		if err := assembleFile(plain); err != nil {
			return fmt.Errorf("day %d: %w", r.day, err)
		}
		mixed := plain
		mixed.output = filepath.Join(outDir, base+"-bgm.mp3")
		mixed.mix = mixFlags{BGM: true, BGMVolume: c.BGMVolume, BGMIntro: 4000, BGMTail: 3000}
		if err := assembleFile(mixed); err != nil {
			return fmt.Errorf("day %d: %w", r.day, err)
		}
		fmt.Printf("Day %d: %s.mp3, %s-bgm.mp3\n", r.day, base, base)
	}
	fmt.Printf("Done. Output: %s\n", outDir)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("firstlight %s\n", version)
	return nil
}

// assembly is one output file's worth of work.
type assembly struct {
	chapters     []string // interchange strings, canonical order
	output       string
	gapMS        int
	speechVolume int
	speed        float64
	mix          mixFlags
}

// assembleFile resolves chapter files, concatenates them, and mixes in a
// background track when requested. Missing chapter files are warned about
// and skipped; the run fails only when nothing resolves. Every external
// command lands in a transcript under the runs directory.
func assembleFile(a assembly) error {
	transcript := audio.NewTranscript()
	ctx := logging.WithRunID(context.Background(), transcript.RunID)
	runner := audio.NewRunner()
	runner.Transcript = transcript

	var files []string
	for _, s := range a.chapters {
		ch, err := ref.ParseChapter(s)
		if err != nil {
			continue
		}
		path := filepath.Join(chaptersDir(), library.ChapterFileName(ch.Book, ch.Number))
		if _, err := os.Stat(path); err != nil {
			logging.WarnContext(ctx, "chapter audio missing", "chapter", s, "path", path)
			transcript.Append(audio.Event{Type: audio.EventWarn, Message: "missing " + path})
			continue
		}
		files = append(files, path)
	}
	if len(files) == 0 {
		return &errors.NotFoundError{Resource: "chapter audio", ID: strings.Join(a.chapters, ",")}
	}

	speechOut := a.output
	var tempDir string
	if a.mix.BGM {
		var err error
		if tempDir, err = os.MkdirTemp("", "firstlight-*"); err != nil {
			return fmt.Errorf("create temp directory: %w", err)
		}
		defer os.RemoveAll(tempDir)
		speechOut = filepath.Join(tempDir, "speech.mp3")
	}

	err := runner.Concat(ctx, audio.ConcatOptions{
		Files:          files,
		Output:         speechOut,
		GapMS:          a.gapMS,
		SpeechVolumeDB: a.speechVolume,
		Speed:          a.speed,
	})
	if err != nil {
		return err
	}

	if a.mix.BGM {
		track, err := audio.SelectTrack(bgmDir(), a.mix.BGMTrack, -1, nil)
		if errors.Is(err, errors.ErrNotFound) && a.mix.BGMTrack != "" {
			logging.WarnContext(ctx, "requested track not found, picking at random", "track", a.mix.BGMTrack)
			track, err = audio.SelectTrack(bgmDir(), "", -1, nil)
		}
		switch {
		case errors.Is(err, errors.ErrNotFound):
			// No music installed: ship the plain file instead of failing
			// the whole run.
			logging.WarnContext(ctx, "no background tracks installed, writing plain file")
			transcript.Append(audio.Event{Type: audio.EventWarn, Message: "no background tracks installed"})
			if err := copyFile(speechOut, a.output); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			logging.InfoContext(ctx, "mixing background track", "track", filepath.Base(track))
			err = runner.Mix(ctx, audio.MixOptions{
				Speech:      speechOut,
				Track:       track,
				Output:      a.output,
				IntroMS:     a.mix.BGMIntro,
				TailMS:      a.mix.BGMTail,
				BGMVolumeDB: a.mix.BGMVolume,
				FadeMS:      1500,
			})
			if err != nil {
				return err
			}
		}
	}

	if err := os.MkdirAll(runsDir(), 0o755); err != nil {
		return fmt.Errorf("create runs directory: %w", err)
	}
	if err := transcript.Write(filepath.Join(runsDir(), transcript.RunID+".jsonl")); err != nil {
		logging.WarnContext(ctx, "transcript not written", "error", err)
	}
	logging.InfoContext(ctx, "file assembled", "output", a.output, "chapters", len(files))
	return nil
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("firstlight"),
		kong.Description("Daily devotional audio from Bible reading plans"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"everest_url": library.DefaultBaseURL},
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
