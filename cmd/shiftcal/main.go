package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"shiftcal/internal/config"
	"shiftcal/internal/docname"
	"shiftcal/internal/ics"
	appLog "shiftcal/internal/log"
	"shiftcal/internal/parse"
	"shiftcal/internal/rows"
	"shiftcal/internal/schedule"
)

// rosterArg is one -roster id=path pair from the command line.
type rosterArg struct {
	id   string
	path string
}

// rosterFlags collects repeated -roster flags.
type rosterFlags []rosterArg

func (r *rosterFlags) String() string {
	parts := make([]string, 0, len(*r))
	for _, a := range *r {
		parts = append(parts, a.id+"="+a.path)
	}
	return strings.Join(parts, ",")
}

func (r *rosterFlags) Set(v string) error {
	id, path, ok := strings.Cut(v, "=")
	if !ok || id == "" || path == "" {
		return errors.New("expected id=path")
	}
	*r = append(*r, rosterArg{id: id, path: path})
	return nil
}

// flagConfig holds CLI flag values.
type flagConfig struct {
	configPath string
	primary    string
	categories string
	rosters    rosterFlags
	month      int
	year       int
	employee   string
	all        bool
	outDir     string
	debug      bool
}

func main() {
	// Optional .env bootstrap; a missing file is not an error.
	_ = godotenv.Load()

	flags := parseFlags()
	if flags.debug {
		appLog.SetLevel(appLog.LevelDebug)
	}

	appLog.Info("shiftcal starting", "version", "0.1.0")

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}

	// CLI -out overrides config output_dir if provided.
	if flags.outDir != "" {
		conf.OutputDir = flags.outDir
	}

	if flags.primary == "" && flags.categories == "" {
		appLog.Error("no input tables", errors.New("at least one of -primary or -categories is required"))
		os.Exit(1)
	}
	if flags.employee == "" && !flags.all {
		appLog.Error("no target employee", errors.New("either -employee or -all is required"))
		os.Exit(1)
	}

	month, year := resolvePeriod(flags)
	if month < 1 || month > 12 {
		appLog.Error("invalid month", fmt.Errorf("month %d out of range 1-12", month))
		os.Exit(1)
	}

	appLog.Info("effective parameters",
		"month", month,
		"year", year,
		"primary", flags.primary,
		"categories", flags.categories,
		"roster_count", len(flags.rosters),
		"output_dir", conf.OutputDir,
	)

	agg := schedule.New()

	if flags.primary != "" {
		table, err := rows.Load(flags.primary)
		if err != nil {
			appLog.Error("failed to read primary table", err, "path", flags.primary)
			os.Exit(1)
		}
		records := parse.ParsePrimaryTable(table, month, year)
		appLog.Info("primary table parsed", "shift_count", len(records))
		agg.Add(records...)
	}

	if flags.categories != "" {
		table, err := rows.Load(flags.categories)
		if err != nil {
			appLog.Error("failed to read category table", err, "path", flags.categories)
			os.Exit(1)
		}
		records := parse.ParseCategoryTable(table, month, year)
		appLog.Info("category table parsed", "shift_count", len(records))
		agg.Add(records...)
	}

	if len(agg.All()) == 0 {
		appLog.Error("no shifts found in any table", errors.New("empty parse result"))
		os.Exit(1)
	}

	for _, r := range flags.rosters {
		label, ok := conf.SpecialtyLabel(r.id)
		if !ok {
			appLog.Error("unknown specialty roster", errors.New("no such specialty in config"), "id", r.id)
			os.Exit(1)
		}
		table, err := rows.Load(r.path)
		if err != nil {
			appLog.Error("failed to read roster table", err, "id", r.id, "path", r.path)
			os.Exit(1)
		}
		records := parse.ParseOnCallTable(table, label)
		appLog.Info("specialty roster parsed", "id", r.id, "shift_count", len(records))
		agg.AddRoster(label, records)
	}

	buildCfg := ics.BuildConfig{
		ProdID:    conf.ProdID,
		UIDDomain: conf.UIDDomain,
	}

	targets := []string{flags.employee}
	if flags.all {
		targets = agg.Employees()
		appLog.Info("bulk export", "employee_count", len(targets))
	}

	failed := 0
	for _, employee := range targets {
		if err := writeCalendar(agg, employee, buildCfg, conf.OutputDir); err != nil {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}

	appLog.Info("shiftcal done")
}

// writeCalendar builds one employee's calendar and writes it under outDir as
// <name with spaces replaced by underscores>_shifts.ics.
func writeCalendar(agg *schedule.Aggregate, employee string, cfg ics.BuildConfig, outDir string) error {
	data, err := ics.Build(agg, employee, cfg)
	if err != nil {
		if errors.Is(err, ics.ErrNoShifts) {
			appLog.Error("no shifts for employee", err, "employee", employee)
		} else {
			appLog.Error("calendar build failed", err, "employee", employee)
		}
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		appLog.Error("failed to create output directory", err, "path", outDir)
		return err
	}

	name := strings.ReplaceAll(strings.TrimSpace(employee), " ", "_") + "_shifts.ics"
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		appLog.Error("failed to write calendar file", err, "path", path)
		return err
	}

	fmt.Println(path)
	return nil
}

// resolvePeriod returns the schedule month/year: explicit flags win, then
// inference from the primary table's file name, then the current date.
func resolvePeriod(flags flagConfig) (int, int) {
	month, year := flags.month, flags.year
	if month != 0 && year != 0 {
		return month, year
	}

	guessMonth, guessYear := docname.ExtractMonthYear(filepath.Base(flags.primary), time.Now())
	if month == 0 {
		month = guessMonth
		appLog.Info("month inferred from file name", "month", month)
	}
	if year == 0 {
		year = guessYear
		appLog.Info("year inferred from file name", "year", year)
	}
	return month, year
}

func parseFlags() flagConfig {
	var cfg flagConfig

	defaultConfig := os.Getenv("SHIFTCAL_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "shiftcal.yaml"
	}

	flag.StringVar(&cfg.configPath, "config", defaultConfig, "Path to config file")
	flag.StringVar(&cfg.primary, "primary", "", "CSV dump of the primary shift table")
	flag.StringVar(&cfg.categories, "categories", "", "CSV dump of the multi-category shift table")
	flag.Var(&cfg.rosters, "roster", "Specialty roster as id=path (repeatable, ids from config)")
	flag.IntVar(&cfg.month, "month", 0, "Schedule month 1-12 (0 = infer from -primary file name)")
	flag.IntVar(&cfg.year, "year", 0, "Schedule year (0 = infer from -primary file name)")
	flag.StringVar(&cfg.employee, "employee", "", "Employee to generate a calendar for (case-insensitive)")
	flag.BoolVar(&cfg.all, "all", false, "Generate one calendar per employee")
	flag.StringVar(&cfg.outDir, "out", "", "Output directory (overrides config if set)")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")

	flag.Parse()

	return cfg
}
