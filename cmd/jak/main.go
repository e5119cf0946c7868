package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rgonek/jira-agent-kit/converter"
	"github.com/rgonek/jira-agent-kit/fields"
	"github.com/rgonek/jira-agent-kit/mdconverter"
)

func main() {
	reverse := flag.Bool("reverse", false, "Convert rich-text document JSON to Markdown")
	fieldMode := flag.Bool("fields", false, "Prepare name=value field assignments against a schema file")
	project := flag.String("project", "", "Project key for field preparation")
	issueType := flag.String("type", "", "Issue type name for field preparation")
	schemaFile := flag.String("schema", "", "Path to a create-meta schema JSON file")
	configFile := flag.String("config", "", "Path to a YAML config file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jak [options] [input-file]\n")
		fmt.Fprintf(os.Stderr, "       jak -fields -project KEY -type NAME -schema meta.json name=value...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadFileConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if *fieldMode {
		os.Exit(runFields(cfg, *project, *issueType, *schemaFile, flag.Args()))
	}

	data, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	if *reverse {
		os.Exit(runToMarkdown(cfg, data))
	}
	os.Exit(runToDocument(cfg, data))
}

// readInput reads the first positional argument as a file, or stdin when no
// argument is given.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func runToMarkdown(cfg fileConfig, data []byte) int {
	conv, err := converter.New(cfg.converterConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		return 1
	}

	result := conv.Convert(data)
	printWarnings(result.Warnings)
	if result.Warnings.HasError() {
		return 1
	}

	fmt.Print(result.Markdown)
	return 0
}

func runToDocument(cfg fileConfig, data []byte) int {
	conv, err := mdconverter.New(cfg.mdconverterConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		return 1
	}

	result := conv.Convert(string(data))
	printWarnings(result.Warnings)

	pretty, err := json.MarshalIndent(result.Doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding document JSON: %v\n", err)
		return 1
	}
	fmt.Println(string(pretty))
	return 0
}

func runFields(cfg fileConfig, project, issueType, schemaFile string, args []string) int {
	if project == "" || issueType == "" || schemaFile == "" {
		fmt.Fprintf(os.Stderr, "-fields requires -project, -type, and -schema\n")
		return 1
	}

	assignments, err := fields.ParseAssignments(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cache := fields.NewSchemaCache(fileProvider(schemaFile))
	pipeline := fields.NewPipeline(cache, cfg.MaxAllowedDisplay)

	prepared, failures, err := pipeline.Prepare(context.Background(), project, issueType, assignments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	for _, field := range prepared {
		fmt.Fprintf(os.Stderr, "%s: %s\n", field.Name, field.Description)
	}

	// A batch with any failure produces no payload; partial updates are
	// worse than a clean retry.
	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintf(os.Stderr, "Error: %s\n", failure.Message)
		}
		return 1
	}

	pretty, err := json.MarshalIndent(fields.Payload(prepared), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding payload JSON: %v\n", err)
		return 1
	}
	fmt.Println(string(pretty))
	return 0
}

// fileProvider serves create-meta schemas from a local JSON file shaped as
// project key to issue type name to field id to field entry.
func fileProvider(path string) fields.ProviderFunc {
	return func(_ context.Context, projectKey string) (map[string]map[string]fields.FieldMeta, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading schema: %w", err)
		}

		var projects map[string]map[string]map[string]fields.FieldMeta
		if err := json.Unmarshal(data, &projects); err != nil {
			return nil, fmt.Errorf("parsing schema: %w", err)
		}
		return projects[projectKey], nil
	}
}

func printWarnings(warnings converter.Warnings) {
	for category, messages := range warnings {
		for _, message := range messages {
			fmt.Fprintf(os.Stderr, "Warning [%s]: %s\n", category, message)
		}
	}
}
