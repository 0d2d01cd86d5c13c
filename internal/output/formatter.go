package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// Formatter renders a scenario report into bytes
type Formatter interface {
	Name() string
	Format(report *domain.ScenarioReport) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	ConsoleVerboseFormatter{},
	CSVSummarizer{},
	CSVDetailedFormatter{},
	JSONFormatter{},
	HTMLFormatter{},
}

var formatAliases = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"breakdown":       "detailed-csv",
}

// GetFormatterByName resolves a formatter by name or alias, nil when unknown
func GetFormatterByName(name string) Formatter {
	if target, ok := formatAliases[name]; ok {
		name = target
	}
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames lists the registered formatter names
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// AvailableFormatAliases lists the accepted aliases
func AvailableFormatAliases() []string {
	return []string{"verbose", "console-verbose", "breakdown"}
}

// FileExtension is the file extension for reports rendered by f
func FileExtension(f Formatter) string {
	switch f.Name() {
	case "csv", "detailed-csv":
		return "csv"
	case "json", "html":
		return f.Name()
	default:
		return "txt"
	}
}

// WriteFormatted renders report and writes it to a timestamped file in dir
func WriteFormatted(dir string, f Formatter, report *domain.ScenarioReport) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("failed to format report: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("projection_report_%s.%s", time.Now().Format("20060102_150405"), FileExtension(f)))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
