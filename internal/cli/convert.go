package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phawley/blogger2md/internal/feed"
	"github.com/phawley/blogger2md/internal/model"
	"github.com/phawley/blogger2md/internal/pipeline"
)

var (
	userTag      string
	showOriginal bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input-file> <output-dir>",
	Short: "Convert a Blogger export file into Markdown files",
	Long: `Convert reads a Blogger Atom export and writes one Markdown file
per post into the output directory:
- Settings and metadata entries are filtered out
- Comments are attached to their parent posts
- Filenames and slugs are derived from the original permalinks
- Existing files at the same paths are overwritten

Example:
  blogger2md convert backup.xml ./posts
  blogger2md convert backup.xml ./posts --tag imported --show-original=false`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&userTag, "tag", "legacy-blogger", "tag appended to every post's front matter")
	convertCmd.Flags().BoolVar(&showOriginal, "show-original", true, "link Markdown files to the original articles")

	_ = viper.BindPFlag("tag", convertCmd.Flags().Lookup("tag"))
	_ = viper.BindPFlag("show_original", convertCmd.Flags().Lookup("show-original"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	outputDir := args[1]

	// Build configuration from flags (viper folds in config file and env)
	cfg := model.DefaultConfig()
	cfg.Tag = viper.GetString("tag")
	cfg.ShowOriginal = viper.GetBool("show_original")
	cfg.OutputDir = outputDir
	cfg.Verbose = verbose

	fmt.Fprintf(os.Stderr, "⚙️  Parsing data from %s\n", inputFile)

	parser := feed.NewParser()
	export, err := parser.ParseFile(inputFile)
	if err != nil {
		return fmt.Errorf("parse export: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Parsed %d entries from %q\n", len(export.Entries), export.Title)
	}

	// Run the conversion
	p := pipeline.NewPipeline(cfg)
	result, err := p.Convert(export)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	// Surface per-entry warnings before writing anything
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w.Message)
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "⚙️  Writing %d blogger posts to markdown files\n", len(result.Documents))

	written, err := p.WriteDocuments(result.Documents, outputDir)
	if err != nil {
		return fmt.Errorf("write documents: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Wrote %d files to %s\n", written, outputDir)

	if verbose {
		s := result.Summary
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "  Entries:    %d\n", s.Entries)
		fmt.Fprintf(os.Stderr, "  Posts:      %d\n", s.Posts)
		fmt.Fprintf(os.Stderr, "  Comments:   %d (%d attached, %d orphaned)\n", s.Comments, s.Attached, s.Orphaned)
		fmt.Fprintf(os.Stderr, "  Discarded:  %d\n", s.Discarded)
		fmt.Fprintf(os.Stderr, "  Skipped:    %d (non-content pages)\n", s.Skipped)
	}

	return nil
}
