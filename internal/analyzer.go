package internal

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// AnalysisMetrics holds the lexical signal counts extracted from one
// transcript. These are surface-text proxies, not semantic analysis.
type AnalysisMetrics struct {
	Exchanges            int `json:"exchanges" yaml:"exchanges"`
	CodeBlocks           int `json:"code_blocks" yaml:"code_blocks"`
	QuestionsAsked       int `json:"questions_asked" yaml:"questions_asked"`
	EnthusiasmMarkers    int `json:"enthusiasm_markers" yaml:"enthusiasm_markers"`
	ConfusionMarkers     int `json:"confusion_markers" yaml:"confusion_markers"`
	CompactionIndicators int `json:"compaction_indicators" yaml:"compaction_indicators"`
}

var (
	exchangePattern  = regexp.MustCompile(`(?i)Human:|You:|User:`)
	codeBlockPattern = regexp.MustCompile("```")
	questionPattern  = regexp.MustCompile(`\?\s`)

	enthusiasmPatterns = compilePatterns(
		`excellent!`, `great!`, `perfect!`, `fantastic!`,
		`love it`, `this is great`, `😊`, `🎉`,
	)
	confusionPatterns = compilePatterns(
		`that's not`, `hmm`, `wait`, `actually no`,
		`let me clarify`, `I meant`, `not quite`,
	)
	compactionPatterns = compilePatterns(
		`as we discussed`, `as mentioned`, `remember when`,
		`earlier you said`, `previously we`,
	)
)

func compilePatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(p)))
	}
	return compiled
}

func countPatterns(patterns []*regexp.Regexp, content string) int {
	total := 0
	for _, p := range patterns {
		total += len(p.FindAllStringIndex(content, -1))
	}
	return total
}

// AnalyzeContent extracts metrics from transcript text. Counting is
// case-insensitive; each triple-backtick fence marker counts separately, so
// one opened-and-closed code block contributes 2.
func AnalyzeContent(content string) *AnalysisMetrics {
	return &AnalysisMetrics{
		Exchanges:            len(exchangePattern.FindAllStringIndex(content, -1)),
		CodeBlocks:           len(codeBlockPattern.FindAllStringIndex(content, -1)),
		QuestionsAsked:       len(questionPattern.FindAllStringIndex(content, -1)),
		EnthusiasmMarkers:    countPatterns(enthusiasmPatterns, content),
		ConfusionMarkers:     countPatterns(confusionPatterns, content),
		CompactionIndicators: countPatterns(compactionPatterns, content),
	}
}

// AnalyzeLogFile reads a transcript and extracts its metrics. Undecodable
// bytes are dropped rather than failing the analysis.
func AnalyzeLogFile(path string) (*AnalysisMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &AnalyzeError{Path: path, Err: err}
	}
	content := strings.ToValidUTF8(string(data), "")
	return AnalyzeContent(content), nil
}

// MethodologyStats aggregates sessions sharing one methodology. Text-metric
// means cover only sessions whose transcript still exists on disk
// (AnalyzedSessions); duration and energy cover all sessions in the group.
type MethodologyStats struct {
	Sessions         int
	TotalDuration    float64
	AvgDuration      float64
	AvgEnergy        *float64
	AnalyzedSessions int
	AvgExchanges     float64
	AvgCodeBlocks    float64
	AvgQuestions     float64
	AvgEnthusiasm    float64
	AvgConfusion     float64
	AvgCompaction    float64
}

// Analyzer derives comparative statistics across methodologies from the
// metadata store and the raw transcript files.
type Analyzer struct {
	store *MetadataStore
}

// NewAnalyzer creates an analyzer over the given metadata store.
func NewAnalyzer(store *MetadataStore) *Analyzer {
	return &Analyzer{store: store}
}

// CompareMethodologies groups all sessions by methodology and computes the
// aggregates. An empty session list yields an empty map; no group ever has
// a zero session count.
func (a *Analyzer) CompareMethodologies() (map[Methodology]*MethodologyStats, error) {
	meta, err := a.store.Load()
	if err != nil {
		return nil, err
	}

	type accumulator struct {
		stats    *MethodologyStats
		energies []int
		metrics  []*AnalysisMetrics
	}

	groups := make(map[Methodology]*accumulator)
	for _, session := range meta.Sessions {
		acc, ok := groups[session.Methodology]
		if !ok {
			acc = &accumulator{stats: &MethodologyStats{}}
			groups[session.Methodology] = acc
		}

		acc.stats.Sessions++
		if session.Duration != nil {
			acc.stats.TotalDuration += *session.Duration
		}
		if session.CreativeEnergy != nil {
			acc.energies = append(acc.energies, *session.CreativeEnergy)
		}

		if _, err := os.Stat(session.LogFile); err != nil {
			LogDebug("Transcript missing, skipping text metrics for session %s", session.ID)
			continue
		}
		metrics, err := AnalyzeLogFile(session.LogFile)
		if err != nil {
			LogWarn("Failed to analyze transcript for session %s: %v", session.ID, err)
			continue
		}
		acc.metrics = append(acc.metrics, metrics)
	}

	result := make(map[Methodology]*MethodologyStats, len(groups))
	for methodology, acc := range groups {
		stats := acc.stats
		stats.AvgDuration = stats.TotalDuration / float64(stats.Sessions)

		if len(acc.energies) > 0 {
			sum := 0
			for _, e := range acc.energies {
				sum += e
			}
			avg := float64(sum) / float64(len(acc.energies))
			stats.AvgEnergy = &avg
		}

		stats.AnalyzedSessions = len(acc.metrics)
		if n := float64(len(acc.metrics)); n > 0 {
			for _, m := range acc.metrics {
				stats.AvgExchanges += float64(m.Exchanges)
				stats.AvgCodeBlocks += float64(m.CodeBlocks)
				stats.AvgQuestions += float64(m.QuestionsAsked)
				stats.AvgEnthusiasm += float64(m.EnthusiasmMarkers)
				stats.AvgConfusion += float64(m.ConfusionMarkers)
				stats.AvgCompaction += float64(m.CompactionIndicators)
			}
			stats.AvgExchanges /= n
			stats.AvgCodeBlocks /= n
			stats.AvgQuestions /= n
			stats.AvgEnthusiasm /= n
			stats.AvgConfusion /= n
			stats.AvgCompaction /= n
		}

		result[methodology] = stats
	}

	return result, nil
}

// reportOrder fixes the methodology order in the report output.
var reportOrder = []Methodology{MethodologyContextDriven, MethodologyCommandBased, MethodologyUnknown}

// GenerateReport writes the comparison report. When both canonical
// methodologies have data, a direct comparison section follows the
// per-methodology blocks.
func (a *Analyzer) GenerateReport(w io.Writer) error {
	stats, err := a.CompareMethodologies()
	if err != nil {
		return err
	}

	line := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", line)
	fmt.Fprintln(w, "CLAUDE CONVERSATION ANALYSIS REPORT")
	fmt.Fprintf(w, "%s\n\n", line)

	for _, methodology := range reportOrder {
		data, ok := stats[methodology]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "📊 Methodology: %s\n", strings.ToUpper(string(methodology)))
		fmt.Fprintf(w, "   Sessions: %d\n", data.Sessions)
		fmt.Fprintf(w, "   Avg Duration: %.1f seconds\n", data.AvgDuration)
		if data.AvgEnergy != nil {
			fmt.Fprintf(w, "   Avg Creative Energy: %s (%.1f/3)\n",
				strings.Repeat("🔋", int(*data.AvgEnergy)), *data.AvgEnergy)
		}
		if data.AnalyzedSessions > 0 {
			fmt.Fprintf(w, "   Avg Exchanges: %.1f\n", data.AvgExchanges)
			fmt.Fprintf(w, "   Avg Code Blocks: %.1f\n", data.AvgCodeBlocks)
			fmt.Fprintf(w, "   Enthusiasm Markers: %.1f\n", data.AvgEnthusiasm)
			fmt.Fprintf(w, "   Confusion Markers: %.1f\n", data.AvgConfusion)
			fmt.Fprintf(w, "   Compaction Events: %.1f\n", data.AvgCompaction)
		}
		fmt.Fprintln(w)
	}

	ctx, haveCtx := stats[MethodologyContextDriven]
	cmd, haveCmd := stats[MethodologyCommandBased]
	if haveCtx && haveCmd {
		writeDirectComparison(w, ctx, cmd)
	}

	return nil
}

func writeDirectComparison(w io.Writer, ctx, cmd *MethodologyStats) {
	line := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", line)
	fmt.Fprintln(w, "DIRECT COMPARISON")
	fmt.Fprintf(w, "%s\n\n", line)

	if ctx.AvgEnergy != nil && cmd.AvgEnergy != nil {
		diff := *ctx.AvgEnergy - *cmd.AvgEnergy
		switch {
		case diff > 0:
			fmt.Fprintf(w, "✨ Context-driven shows %.1f higher creative energy\n", diff)
		case diff < 0:
			fmt.Fprintf(w, "✨ Command-based shows %.1f higher creative energy\n", -diff)
		default:
			fmt.Fprintln(w, "✨ Both approaches show equal creative energy")
		}
	}
	fmt.Fprintln(w)

	comparisons := []struct {
		label    string
		ctx, cmd float64
	}{
		{"Conversation Depth", ctx.AvgExchanges, cmd.AvgExchanges},
		{"Code Generation", ctx.AvgCodeBlocks, cmd.AvgCodeBlocks},
		{"Joy/Enthusiasm", ctx.AvgEnthusiasm, cmd.AvgEnthusiasm},
		{"Confusion/Clarification", ctx.AvgConfusion, cmd.AvgConfusion},
		{"Context Loss", ctx.AvgCompaction, cmd.AvgCompaction},
	}

	for _, c := range comparisons {
		switch {
		case c.ctx > c.cmd:
			fmt.Fprintf(w, "📈 %s: Context-driven %.0f%% higher\n", c.label, PercentHigher(c.ctx, c.cmd))
		case c.cmd > c.ctx:
			fmt.Fprintf(w, "📈 %s: Command-based %.0f%% higher\n", c.label, PercentHigher(c.cmd, c.ctx))
		default:
			fmt.Fprintf(w, "📈 %s: Equal in both approaches\n", c.label)
		}
	}
}

// PercentHigher returns how much higher (in percent) the larger value is
// relative to the lower one. A zero baseline yields exactly 100, signaling
// "strictly more" without a division error.
func PercentHigher(higher, lower float64) float64 {
	if lower == 0 {
		return 100
	}
	return (higher - lower) / lower * 100
}
