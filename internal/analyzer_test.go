package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/claude-logger/testutil"
)

func writeTranscript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write transcript: %v", err)
	}
	return path
}

func TestAnalyzeContentExchangesAndCodeBlocks(t *testing.T) {
	content := "Human: first question?\n" +
		"Assistant: answer\n" +
		"```go\nfunc a() {}\n```\n" +
		"Human: second\n" +
		"```python\nprint(1)\n```\n" +
		"Human: third\n"

	metrics := AnalyzeContent(content)
	if metrics.Exchanges != 3 {
		t.Errorf("Exchanges = %d, want 3", metrics.Exchanges)
	}
	// Each fence marker counts, so two closed blocks yield 4.
	if metrics.CodeBlocks != 4 {
		t.Errorf("CodeBlocks = %d, want 4", metrics.CodeBlocks)
	}
}

func TestAnalyzeContentTurnMarkers(t *testing.T) {
	content := "Human: a\nYou: b\nUser: c\nAssistant: d\n"
	metrics := AnalyzeContent(content)
	if metrics.Exchanges != 3 {
		t.Errorf("Exchanges = %d, want 3 (Human/You/User)", metrics.Exchanges)
	}
}

func TestAnalyzeContentQuestions(t *testing.T) {
	content := "Is it done? Yes.\nAnother one?\nNo question here.\nTrailing? "
	metrics := AnalyzeContent(content)
	if metrics.QuestionsAsked != 3 {
		t.Errorf("QuestionsAsked = %d, want 3", metrics.QuestionsAsked)
	}
}

func TestAnalyzeContentEnthusiasm(t *testing.T) {
	content := "Excellent! That works.\ngreat! love it 🎉\n"
	metrics := AnalyzeContent(content)
	if metrics.EnthusiasmMarkers < 4 {
		t.Errorf("EnthusiasmMarkers = %d, want >= 4", metrics.EnthusiasmMarkers)
	}
}

func TestAnalyzeContentConfusionAndCompaction(t *testing.T) {
	content := "Hmm, that's not right. Wait, let me clarify.\n" +
		"As we discussed, previously we agreed.\n"
	metrics := AnalyzeContent(content)
	if metrics.ConfusionMarkers != 4 {
		t.Errorf("ConfusionMarkers = %d, want 4 (hmm, that's not, wait, let me clarify)", metrics.ConfusionMarkers)
	}
	if metrics.CompactionIndicators != 2 {
		t.Errorf("CompactionIndicators = %d, want 2", metrics.CompactionIndicators)
	}
}

func TestAnalyzeContentNoMarkers(t *testing.T) {
	metrics := AnalyzeContent(testutil.NeutralTranscript)

	if metrics.Exchanges != 0 || metrics.CodeBlocks != 0 || metrics.QuestionsAsked != 0 ||
		metrics.EnthusiasmMarkers != 0 || metrics.ConfusionMarkers != 0 || metrics.CompactionIndicators != 0 {
		t.Errorf("expected all-zero metrics, got %+v", metrics)
	}
}

func TestAnalyzeContentSampleTranscript(t *testing.T) {
	metrics := AnalyzeContent(testutil.SampleTranscript)

	want := AnalysisMetrics{
		Exchanges:            3,
		CodeBlocks:           4,
		QuestionsAsked:       2,
		EnthusiasmMarkers:    1,
		ConfusionMarkers:     1,
		CompactionIndicators: 1,
	}
	if *metrics != want {
		t.Errorf("AnalyzeContent(SampleTranscript) = %+v, want %+v", *metrics, want)
	}
}

func TestAnalyzeLogFileInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	content := append([]byte("Human: hello\n"), 0xff, 0xfe, '\n')
	path := filepath.Join(dir, "bad.log")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write transcript: %v", err)
	}

	metrics, err := AnalyzeLogFile(path)
	if err != nil {
		t.Fatalf("AnalyzeLogFile() error on invalid UTF-8: %v", err)
	}
	if metrics.Exchanges != 1 {
		t.Errorf("Exchanges = %d, want 1", metrics.Exchanges)
	}
}

func TestCompareMethodologiesEmptyStore(t *testing.T) {
	store := storeInTempDir(t)
	analyzer := NewAnalyzer(store)

	stats, err := analyzer.CompareMethodologies()
	if err != nil {
		t.Fatalf("CompareMethodologies() error: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("CompareMethodologies() on empty store = %d groups, want 0", len(stats))
	}
}

func TestCompareMethodologiesNoZeroCountGroups(t *testing.T) {
	dir := t.TempDir()
	store := NewMetadataStore(filepath.Join(dir, MetadataFileName))

	meta := NewSessionsMetadata()
	log := writeTranscript(t, dir, "a.log", "Human: hi\n")
	meta.Add(CreateTestRecord("20250101_120000", MethodologyContextDriven, log))
	if err := store.Save(meta); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	stats, err := NewAnalyzer(store).CompareMethodologies()
	if err != nil {
		t.Fatalf("CompareMethodologies() error: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d groups, want 1", len(stats))
	}
	for methodology, group := range stats {
		if group.Sessions == 0 {
			t.Errorf("group %s has zero sessions", methodology)
		}
	}
}

func TestCompareMethodologiesMissingTranscript(t *testing.T) {
	dir := t.TempDir()
	store := NewMetadataStore(filepath.Join(dir, MetadataFileName))

	meta := NewSessionsMetadata()
	record := CreateTestRecord("20250101_120000", MethodologyContextDriven, filepath.Join(dir, "gone.log"))
	two := 2
	record.CreativeEnergy = &two
	meta.Add(record)
	if err := store.Save(meta); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	stats, err := NewAnalyzer(store).CompareMethodologies()
	if err != nil {
		t.Fatalf("CompareMethodologies() error: %v", err)
	}

	group := stats[MethodologyContextDriven]
	if group == nil {
		t.Fatal("context-driven group missing")
	}
	// Duration and energy still aggregate; text metrics do not.
	if group.Sessions != 1 {
		t.Errorf("Sessions = %d, want 1", group.Sessions)
	}
	if group.AvgDuration != 60 {
		t.Errorf("AvgDuration = %v, want 60", group.AvgDuration)
	}
	if group.AvgEnergy == nil || *group.AvgEnergy != 2 {
		t.Errorf("AvgEnergy = %v, want 2", group.AvgEnergy)
	}
	if group.AnalyzedSessions != 0 {
		t.Errorf("AnalyzedSessions = %d, want 0", group.AnalyzedSessions)
	}
}

func TestPercentHigher(t *testing.T) {
	tests := []struct {
		name          string
		higher, lower float64
		want          float64
	}{
		{"50 percent", 3, 2, 50},
		{"double", 4, 2, 100},
		{"zero baseline", 5, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentHigher(tt.higher, tt.lower); got != tt.want {
				t.Errorf("PercentHigher(%v, %v) = %v, want %v", tt.higher, tt.lower, got, tt.want)
			}
		})
	}
}

func TestGenerateReportDirectComparison(t *testing.T) {
	dir := t.TempDir()
	store := NewMetadataStore(filepath.Join(dir, MetadataFileName))

	ctxLog := writeTranscript(t, dir, "ctx.log", "Human: hi\nHuman: again\nExcellent!\n")
	cmdLog := writeTranscript(t, dir, "cmd.log", "Human: hello\n")

	meta := NewSessionsMetadata()
	ctxRecord := CreateTestRecord("20250101_120000", MethodologyContextDriven, ctxLog)
	three := 3
	ctxRecord.CreativeEnergy = &three
	meta.Add(ctxRecord)

	cmdRecord := CreateTestRecord("20250102_120000", MethodologyCommandBased, cmdLog)
	two := 2
	cmdRecord.CreativeEnergy = &two
	meta.Add(cmdRecord)

	if err := store.Save(meta); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	var out bytes.Buffer
	if err := NewAnalyzer(store).GenerateReport(&out); err != nil {
		t.Fatalf("GenerateReport() error: %v", err)
	}
	report := out.String()

	if !strings.Contains(report, "DIRECT COMPARISON") {
		t.Fatalf("report missing direct comparison section:\n%s", report)
	}
	if !strings.Contains(report, "Context-driven shows 1.0 higher creative energy") {
		t.Errorf("report missing energy difference:\n%s", report)
	}
	// ctx has enthusiasm 1 vs cmd 0: zero baseline reports exactly 100%.
	if !strings.Contains(report, "Joy/Enthusiasm: Context-driven 100% higher") {
		t.Errorf("report missing zero-baseline enthusiasm comparison:\n%s", report)
	}
	if !strings.Contains(report, "Conversation Depth: Context-driven 100% higher") {
		t.Errorf("report missing exchanges comparison:\n%s", report)
	}
}

func TestGenerateReportSingleMethodology(t *testing.T) {
	dir := t.TempDir()
	store := NewMetadataStore(filepath.Join(dir, MetadataFileName))

	log := writeTranscript(t, dir, "a.log", "Human: hi\n")
	meta := NewSessionsMetadata()
	meta.Add(CreateTestRecord("20250101_120000", MethodologyUnknown, log))
	if err := store.Save(meta); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	var out bytes.Buffer
	if err := NewAnalyzer(store).GenerateReport(&out); err != nil {
		t.Fatalf("GenerateReport() error: %v", err)
	}
	report := out.String()

	if !strings.Contains(report, "Methodology: UNKNOWN") {
		t.Errorf("report missing unknown methodology block:\n%s", report)
	}
	if strings.Contains(report, "DIRECT COMPARISON") {
		t.Errorf("report has direct comparison without both canonical methodologies:\n%s", report)
	}
}
