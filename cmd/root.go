package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"repobook/pkg/config"
	"repobook/pkg/logging"
	"repobook/pkg/pipeline"
)

var rootFlags struct {
	configPath  string
	output      string
	filename    string
	format      string
	title       string
	author      string
	theme       string
	toc         bool
	fileTree    bool
	noGitignore bool
	ignoreDirs  []string
	ignoreFiles []string
	ignoreExts  []string
	chunkSize   int
	maxFileMB   int
	verbose     bool
}

// RootCmd is the base command; it runs the full generation pipeline.
var RootCmd = &cobra.Command{
	Use:   "repobook [path]",
	Short: "Repobook binds a source tree into a single document",
	Long: `Repobook scans a directory tree (typically a source repository), filters it
through builtin and user-supplied exclusion rules plus .gitignore semantics,
and assembles the remaining files into one structured document rendered as
PDF, EPUB, HTML or plain Markdown.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := config.Load(rootFlags.configPath)
		if err != nil {
			return fmt.Errorf("failed to resolve configuration: %w", err)
		}
		applyFlagOverrides(cmd, &cfg)

		logger, err := logging.New(rootFlags.verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logging.Sync(logger)

		if err := pipeline.Run(root, cfg, logger); err != nil {
			logger.Error("Document generation failed", zap.Error(err))
			return err
		}
		return nil
	},
}

// applyFlagOverrides layers explicitly set CLI flags over the loaded
// configuration. Flags are the highest-precedence layer; only flags the user
// actually passed participate.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("output") {
		cfg.Output.Folder = rootFlags.output
	}
	if set("filename") {
		cfg.Output.Filename = rootFlags.filename
	}
	if set("format") {
		cfg.Output.Format = rootFlags.format
	}
	if set("title") {
		cfg.Document.Title = rootFlags.title
	}
	if set("author") {
		cfg.Document.Author = rootFlags.author
	}
	if set("theme") {
		cfg.Document.Theme = rootFlags.theme
	}
	if set("toc") {
		cfg.Document.TOC = rootFlags.toc
	}
	if set("file-tree") {
		cfg.Document.FileTree = rootFlags.fileTree
	}
	if set("no-gitignore") {
		cfg.Ignore.Gitignore = !rootFlags.noGitignore
	}
	if set("ignore-dir") {
		cfg.Ignore.Directories = append(cfg.Ignore.Directories, rootFlags.ignoreDirs...)
	}
	if set("ignore-file") {
		cfg.Ignore.Files = append(cfg.Ignore.Files, rootFlags.ignoreFiles...)
	}
	if set("ignore-ext") {
		cfg.Ignore.Extensions = append(cfg.Ignore.Extensions, rootFlags.ignoreExts...)
	}
	if set("chunk-size") {
		cfg.Limits.ChunkSize = rootFlags.chunkSize
	}
	if set("max-file-size") {
		cfg.Limits.MaxFileSizeMB = rootFlags.maxFileMB
	}
}

func init() {
	f := RootCmd.Flags()
	f.StringVarP(&rootFlags.configPath, "config", "c", "", "Path to a config file (replaces the default file layers)")
	f.StringVarP(&rootFlags.output, "output", "o", "output", "Output directory")
	f.StringVar(&rootFlags.filename, "filename", "", "Output file name (default: derived from title and format)")
	f.StringVarP(&rootFlags.format, "format", "f", "pdf", "Output format: pdf, epub, html or markdown")
	f.StringVar(&rootFlags.title, "title", "", "Document title (default: root directory name)")
	f.StringVar(&rootFlags.author, "author", "", "Document author")
	f.StringVar(&rootFlags.theme, "theme", "kate", "Highlight theme name passed to the renderer")
	f.BoolVar(&rootFlags.toc, "toc", true, "Include a table of contents")
	f.BoolVar(&rootFlags.fileTree, "file-tree", true, "Include the file-tree listing")
	f.BoolVar(&rootFlags.noGitignore, "no-gitignore", false, "Do not apply .gitignore rules")
	f.StringSliceVar(&rootFlags.ignoreDirs, "ignore-dir", nil, "Additional directory to exclude (repeatable)")
	f.StringSliceVar(&rootFlags.ignoreFiles, "ignore-file", nil, "Additional file name pattern to exclude (repeatable)")
	f.StringSliceVar(&rootFlags.ignoreExts, "ignore-ext", nil, "Additional file extension to exclude (repeatable)")
	f.IntVar(&rootFlags.chunkSize, "chunk-size", 10, "Default batch size before heuristics shrink it")
	f.IntVar(&rootFlags.maxFileMB, "max-file-size", 50, "File size in MB above which content is previewed and sampled")
	f.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
