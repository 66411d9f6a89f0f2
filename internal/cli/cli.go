// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tikrack/peek/internal/config"
	"github.com/tikrack/peek/internal/filter"
	"github.com/tikrack/peek/internal/render"
	"github.com/tikrack/peek/internal/utils"
)

const (
	treeFlagName       = "tree"
	depthFlagName      = "depth"
	allFlagName        = "all"
	patternFlagName    = "pattern"
	directoryColorFlag = "dir-color"
	sizeFlagName       = "size"
	longFlagName       = "long"
	containersFlagName = "containers"
	gitignoreFlagName  = "gitignore"
	noColorFlagName    = "no-color"
	copyFlagName       = "copy"
	configFlagName     = "config"
	verboseFlagName    = "verbose"
	versionFlagName    = "version"

	treeFlagDescription       = "render a recursive tree"
	depthFlagDescription      = "maximum tree depth; 0 lists the root entries only"
	allFlagDescription        = "include entries whose names start with a dot"
	patternFlagDescription    = "only show entries matching this glob; tree mode still descends into other directories"
	directoryColorDescription = "persist a directory color as RGB hex (#RRGGBB or #RGB)"
	sizeFlagDescription       = "show file sizes"
	longFlagDescription       = "show permissions, ownership, size and modification time"
	containersFlagDescription = "with --pattern, print directories that lead to matches and drop those that do not"
	gitignoreFlagDescription  = "hide entries ignored by the .gitignore in the listed directory"
	noColorFlagDescription    = "disable colored output"
	copyFlagDescription       = "copy the listing to the system clipboard"
	configFlagDescription     = "preference file location"
	verboseFlagDescription    = "log skipped entries and other absorbed errors"
	versionFlagDescription    = "display application version"

	defaultPath          = "."
	rootUse              = "peek [path]"
	rootShortDescription = "a modern ls replacement"
	rootLongDescription  = `peek lists a directory.
By default it prints the visible entries on one line. Use --size or --long for
one entry per line, or --tree for a recursive tree diagram. --pattern filters
entries by glob and --dir-color remembers a color for directory names.`
	rootUsageExample = `  # Tree of Go files, descending at most two levels
  peek --tree --depth 2 --pattern '*.go' .

  # Long listing including dotfiles
  peek -la ~/projects

  # Show directories in orange from now on
  peek --dir-color '#f80'`
	versionTemplate = "peek version: %s\n"

	invalidPatternMessage      = "ignoring invalid pattern"
	preferencesPathMessage     = "preference file location unavailable"
	preferencesLoadMessage     = "ignoring preference file"
	preferencesSaveMessage     = "could not save preferences"
	gitignoreLoadMessage       = "ignoring .gitignore"
	clipboardCopyFailedMessage = "could not copy listing to clipboard"
	patternField               = "pattern"
	pathField                  = "path"

	errorLoggerFormat         = "create logger: %w"
	errorDirectoryColorFormat = "invalid --%s: %w"
)

// LoggerFactory builds the application logger once flags are known.
type LoggerFactory func(verbose bool) (*zap.Logger, error)

// Dependencies are the collaborators the command works with.
type Dependencies struct {
	FileSystem afero.Fs
	NewLogger  LoggerFactory
	Copier     Copier
	// PreferencesPath overrides the per-user preference file location.
	PreferencesPath string
}

// DefaultDependencies returns the collaborators used by the peek binary.
func DefaultDependencies() Dependencies {
	return Dependencies{
		FileSystem: afero.NewOsFs(),
		NewLogger:  utils.NewApplicationLogger,
		Copier:     systemClipboard{},
	}
}

// Execute runs the peek application.
func Execute() error {
	rootCommand := NewRootCommand(DefaultDependencies())
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// commandOptions stores the parsed flag values.
type commandOptions struct {
	tree           bool
	depth          uint
	showAll        bool
	pattern        string
	directoryColor string
	size           bool
	long           bool
	containers     bool
	gitignore      bool
	noColor        bool
	copy           bool
	configPath     string
	verbose        bool
	showVersion    bool
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	var options commandOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			targetPath := defaultPath
			if len(arguments) > 0 {
				targetPath = arguments[0]
			}
			return runListing(command, dependencies, options, targetPath)
		},
	}

	flagSet := rootCommand.Flags()
	registerBooleanFlag(flagSet, &options.tree, treeFlagName, "t", false, treeFlagDescription)
	flagSet.UintVar(&options.depth, depthFlagName, 0, depthFlagDescription)
	registerBooleanFlag(flagSet, &options.showAll, allFlagName, "a", false, allFlagDescription)
	flagSet.StringVarP(&options.pattern, patternFlagName, "p", "", patternFlagDescription)
	flagSet.StringVar(&options.directoryColor, directoryColorFlag, "", directoryColorDescription)
	registerBooleanFlag(flagSet, &options.size, sizeFlagName, "s", false, sizeFlagDescription)
	registerBooleanFlag(flagSet, &options.long, longFlagName, "l", false, longFlagDescription)
	registerBooleanFlag(flagSet, &options.containers, containersFlagName, "c", false, containersFlagDescription)
	registerBooleanFlag(flagSet, &options.gitignore, gitignoreFlagName, "", false, gitignoreFlagDescription)
	registerBooleanFlag(flagSet, &options.noColor, noColorFlagName, "", false, noColorFlagDescription)
	registerBooleanFlag(flagSet, &options.copy, copyFlagName, "", false, copyFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	registerBooleanFlag(flagSet, &options.verbose, verboseFlagName, "v", false, verboseFlagDescription)
	registerBooleanFlag(flagSet, &options.showVersion, versionFlagName, "", false, versionFlagDescription)
	return rootCommand
}

// runListing resolves configuration and prints the listing of targetPath.
func runListing(command *cobra.Command, dependencies Dependencies, options commandOptions, targetPath string) error {
	logger, loggerError := dependencies.NewLogger(options.verbose)
	if loggerError != nil {
		return fmt.Errorf(errorLoggerFormat, loggerError)
	}
	defer logger.Sync() //nolint:errcheck

	renderOptions, optionsError := buildRenderOptions(command, dependencies, options, targetPath, logger)
	if optionsError != nil {
		return optionsError
	}

	output := command.OutOrStdout()
	var tee *clipboardTee
	if options.copy {
		tee = &clipboardTee{}
		output = tee.wrap(output)
	}

	palette := render.NewPalette(newStyleRenderer(command.OutOrStdout(), options.noColor), renderOptions.DirectoryColor)
	var renderError error
	if options.tree {
		renderError = render.NewTreeRenderer(dependencies.FileSystem, output, palette, renderOptions, logger).Render(targetPath)
	} else {
		renderError = render.NewFlatRenderer(dependencies.FileSystem, output, palette, renderOptions, logger).Render(targetPath, selectLayout(options))
	}
	if renderError != nil {
		return renderError
	}

	if tee != nil && dependencies.Copier != nil {
		if copyError := dependencies.Copier.Copy(tee.text()); copyError != nil {
			logger.Warn(clipboardCopyFailedMessage, zap.Error(copyError))
		}
	}
	return nil
}

// buildRenderOptions turns flags and persisted preferences into the listing
// configuration. Only an invalid --dir-color value is an error; every other
// problem falls back to a default and is logged.
func buildRenderOptions(command *cobra.Command, dependencies Dependencies, options commandOptions, targetPath string, logger *zap.Logger) (*render.Options, error) {
	renderOptions := &render.Options{
		Filter:     filter.Predicate{ShowAll: options.showAll},
		Containers: options.containers,
	}
	if command.Flags().Changed(depthFlagName) {
		maximumDepth := options.depth
		renderOptions.MaxDepth = &maximumDepth
	}

	pattern, patternError := filter.Compile(options.pattern)
	if patternError != nil {
		logger.Debug(invalidPatternMessage, zap.String(patternField, options.pattern), zap.Error(patternError))
	}
	renderOptions.Filter.Pattern = pattern

	if options.gitignore {
		gitIgnore, gitignoreError := config.LoadGitIgnore(dependencies.FileSystem, targetPath)
		if gitignoreError != nil {
			logger.Debug(gitignoreLoadMessage, zap.Error(gitignoreError))
		}
		renderOptions.Filter.Ignore = gitIgnore
	}

	preferencesPath := options.configPath
	if preferencesPath == "" {
		preferencesPath = dependencies.PreferencesPath
	}
	if preferencesPath == "" {
		resolvedPath, pathError := config.DefaultPreferencesPath()
		if pathError != nil {
			logger.Debug(preferencesPathMessage, zap.Error(pathError))
		}
		preferencesPath = resolvedPath
	}

	if command.Flags().Changed(directoryColorFlag) {
		color, colorError := config.NormalizeHexColor(options.directoryColor)
		if colorError != nil {
			return nil, fmt.Errorf(errorDirectoryColorFormat, directoryColorFlag, colorError)
		}
		renderOptions.DirectoryColor = &color
		if preferencesPath != "" {
			if saveError := config.SavePreferences(dependencies.FileSystem, preferencesPath, config.Preferences{DirectoryColor: &color}); saveError != nil {
				logger.Warn(preferencesSaveMessage, zap.String(pathField, preferencesPath), zap.Error(saveError))
			}
		}
		return renderOptions, nil
	}

	if preferencesPath != "" {
		preferences, loadError := config.LoadPreferences(dependencies.FileSystem, preferencesPath)
		if loadError != nil {
			logger.Debug(preferencesLoadMessage, zap.String(pathField, preferencesPath), zap.Error(loadError))
		}
		renderOptions.DirectoryColor = preferences.DirectoryColor
	}
	return renderOptions, nil
}

func selectLayout(options commandOptions) render.Layout {
	switch {
	case options.long:
		return render.LayoutLong
	case options.size:
		return render.LayoutSize
	default:
		return render.LayoutNames
	}
}

// newStyleRenderer binds styling to output so colors are only emitted for
// terminals that support them.
func newStyleRenderer(output io.Writer, noColor bool) *lipgloss.Renderer {
	styleRenderer := lipgloss.NewRenderer(output)
	if noColor {
		styleRenderer.SetColorProfile(termenv.Ascii)
	}
	return styleRenderer
}
