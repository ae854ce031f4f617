package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/SamMcCormick61/ultidiff/internal/comparer"
	"github.com/SamMcCormick61/ultidiff/internal/config"
	"github.com/SamMcCormick61/ultidiff/internal/fetcher"
	"github.com/SamMcCormick61/ultidiff/internal/logger"
	"github.com/SamMcCormick61/ultidiff/internal/models"
	"github.com/SamMcCormick61/ultidiff/internal/renderer"
	"github.com/SamMcCormick61/ultidiff/internal/reporter"
	"github.com/SamMcCormick61/ultidiff/internal/views"
	"github.com/rs/zerolog"
)

func main() {
	// Flags
	inputA := flag.String("file-a", "", "Path or http(s) URL of the first input (the 'old' side).")
	inputAAlias := flag.String("a", "", "Alias for -file-a")

	inputB := flag.String("file-b", "", "Path or http(s) URL of the second input (the 'new' side).")
	inputBAlias := flag.String("b", "", "Alias for -file-b")

	globalConfigFile := flag.String("globalconfig", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("gc", "", "Alias for -globalconfig")

	reportFlag := flag.Bool("report", false, "Generate a standalone HTML report.")
	reportFlagAlias := flag.Bool("r", false, "Alias for -report")

	patchFile := flag.String("patch", "", "Write a unified diff patch to the given path ('-' for stdout).")
	patchFileAlias := flag.String("p", "", "Alias for -patch")

	filterFlag := flag.String("filter", "", "Comma-separated change types to keep in the diff output: added,deleted,modified.")
	searchFlag := flag.String("search", "", "Case-insensitive substring filter applied to the diff output.")

	// Comparison option overrides; each only takes effect when set explicitly.
	trimFlag := flag.Bool("trim", true, "Trim leading/trailing whitespace before comparing.")
	ignoreCaseFlag := flag.Bool("ignore-case", false, "Compare case-insensitively.")
	ignoreBlankFlag := flag.Bool("ignore-blank", false, "Exclude blank lines from comparison.")
	ignoreCommentsFlag := flag.Bool("ignore-comments", false, "Exclude comment lines from comparison.")
	ignorePatternsFlag := flag.String("ignore-patterns", "", "Comma-separated regular expressions; matching lines are excluded on both sides.")
	collapseFlag := flag.Bool("collapse", false, "Collapse long unchanged runs.")
	contextFlag := flag.Int("context", config.DefaultContextSize, "Unchanged lines kept at each edge of a collapsed run.")
	intralineFlag := flag.Bool("intraline", false, "Highlight character-level changes within modified lines.")
	flag.Parse()

	// Consolidate alias flags
	if *inputA == "" && *inputAAlias != "" {
		*inputA = *inputAAlias
	}
	if *inputB == "" && *inputBAlias != "" {
		*inputB = *inputBAlias
	}
	if *globalConfigFile == "" && *globalConfigFileAlias != "" {
		*globalConfigFile = *globalConfigFileAlias
	}
	if !*reportFlag && *reportFlagAlias {
		*reportFlag = true
	}
	if *patchFile == "" && *patchFileAlias != "" {
		*patchFile = *patchFileAlias
	}

	if *inputA == "" || *inputB == "" {
		log.Fatalln("[FATAL] Both -file-a and -file-b are required")
	}

	gCfg, err := config.LoadGlobalConfig(*globalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", *globalConfigFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	opts := gCfg.CompareOptions
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if setFlags["trim"] {
		opts.TrimWhitespace = *trimFlag
	}
	if setFlags["ignore-case"] {
		opts.CaseInsensitive = *ignoreCaseFlag
	}
	if setFlags["ignore-blank"] {
		opts.DropBlankLines = *ignoreBlankFlag
	}
	if setFlags["ignore-comments"] {
		opts.DropCommentLines = *ignoreCommentsFlag
	}
	if setFlags["ignore-patterns"] {
		opts.IgnorePatterns = splitList(*ignorePatternsFlag)
	}
	if setFlags["collapse"] {
		opts.CollapseUnchanged = *collapseFlag
	}
	if setFlags["context"] {
		opts.ContextSize = *contextFlag
	}
	if setFlags["intraline"] {
		opts.IntralineHighlight = *intralineFlag
	}

	ctx := context.Background()
	inputFetcher := fetcher.NewFetcher(gCfg.FetcherConfig, zLogger)

	sourceA, err := loadSource(ctx, inputFetcher, *inputA)
	if err != nil {
		zLogger.Fatal().Err(err).Str("input", *inputA).Msg("Failed to load first input")
	}
	sourceB, err := loadSource(ctx, inputFetcher, *inputB)
	if err != nil {
		zLogger.Fatal().Err(err).Str("input", *inputB).Msg("Failed to load second input")
	}

	diffComparer, err := comparer.NewComparerBuilder(zLogger).
		WithCacheConfig(gCfg.CacheConfig).
		WithTheme(gCfg.ReporterConfig.Theme).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize comparer")
	}

	result, err := diffComparer.Compare(ctx, sourceA, sourceB, opts)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Comparison failed")
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	}

	printSummary(result)
	printDiffView(result, *filterFlag, *searchFlag, zLogger)

	if *reportFlag {
		writeReport(gCfg, result, opts, sourceA, zLogger)
	}
	if *patchFile != "" {
		writePatch(*patchFile, sourceA, sourceB, opts.ContextSize, zLogger)
	}

	if !result.Stats.IsClean() {
		os.Exit(1)
	}
}

// loadSource resolves an input argument to lines, fetching over HTTP when it
// looks like a URL and reading the filesystem otherwise.
func loadSource(ctx context.Context, f *fetcher.Fetcher, input string) (comparer.Source, error) {
	var lines []string
	var err error
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		lines, err = f.FetchURL(ctx, input)
	} else {
		lines, err = f.LoadFile(input)
	}
	if err != nil {
		return comparer.Source{}, err
	}
	return comparer.Source{Name: input, Lines: lines}, nil
}

func printSummary(result *models.ComparisonResult) {
	fmt.Printf("%s vs %s\n", result.SourceAName, result.SourceBName)
	fmt.Printf("  added: %d  deleted: %d  modified: %d  unchanged: %d\n",
		result.Stats.Added, result.Stats.Deleted, result.Stats.Modified, result.Stats.Unchanged)
}

func printDiffView(result *models.ComparisonResult, filterSpec, searchTerm string, zLogger zerolog.Logger) {
	filters, err := parseFilters(filterSpec)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Invalid -filter value")
	}

	projected := views.Project(result.ViewDiff, filters, searchTerm)
	if views.IsEmptyProjection(projected) && (len(filters) > 0 || searchTerm != "") {
		fmt.Println("  (no rows match the current filter)")
		return
	}

	for _, row := range projected {
		switch row.Role {
		case models.RoleSeparator:
			fmt.Println("  ...")
		default:
			fmt.Printf("%s %5s | %s\n", rolePrefix(row.Role), lineNumber(row), row.Text)
		}
	}
}

func parseFilters(spec string) ([]models.ChangeType, error) {
	var filters []models.ChangeType
	for _, name := range splitList(spec) {
		ct, ok := models.ParseChangeType(name)
		if !ok {
			return nil, fmt.Errorf("unknown change type %q", name)
		}
		filters = append(filters, ct)
	}
	return filters, nil
}

func rolePrefix(role models.LineRole) string {
	switch role {
	case models.RoleInserted, models.RoleReplacedNew:
		return "+"
	case models.RoleDeleted, models.RoleReplacedOld:
		return "-"
	default:
		return " "
	}
}

func lineNumber(row models.DisplayLine) string {
	if !row.HasLineNumber() {
		return ""
	}
	return fmt.Sprintf("%d", row.LineNumber)
}

func writeReport(gCfg *config.GlobalConfig, result *models.ComparisonResult, opts config.CompareOptions, sourceA comparer.Source, zLogger zerolog.Logger) {
	htmlReporter, err := reporter.NewHTMLReporter(gCfg.ReporterConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize HTML reporter")
	}

	theme := "github"
	if gCfg.ReporterConfig.Theme == "dark" {
		theme = "monokai"
	}
	styleCSS, err := renderer.NewChromaRenderer(zLogger, sourceA.Name, sourceA.Lines, theme).StyleCSS()
	if err != nil {
		zLogger.Warn().Err(err).Msg("Could not build syntax stylesheet; report will be unstyled")
	}

	path, err := htmlReporter.GenerateReport(result, opts, styleCSS)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to generate HTML report")
	}
	fmt.Printf("report written to %s\n", path)
}

func writePatch(path string, sourceA, sourceB comparer.Source, contextSize int, zLogger zerolog.Logger) {
	out := os.Stdout
	if path != "-" {
		file, err := os.Create(path)
		if err != nil {
			zLogger.Fatal().Err(err).Str("path", path).Msg("Failed to create patch file")
		}
		defer file.Close()
		out = file
	}

	exporter := reporter.NewPatchExporter(zLogger)
	if err := exporter.Export(out, sourceA.Name, sourceB.Name, sourceA.Lines, sourceB.Lines, contextSize); err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to export patch")
	}
	if path != "-" {
		fmt.Printf("patch written to %s\n", path)
	}
}

func splitList(spec string) []string {
	var out []string
	for _, item := range strings.Split(spec, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
