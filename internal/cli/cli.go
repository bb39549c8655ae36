// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/structree/internal/config"
	"github.com/temirov/structree/internal/output"
	"github.com/temirov/structree/internal/scan"
	"github.com/temirov/structree/internal/services/clipboard"
	"github.com/temirov/structree/internal/tokenizer"
	"github.com/temirov/structree/internal/utils"
)

const (
	rootUse              = "structree"
	rootShortDescription = "render the project directory structure"
	rootLongDescription  = `structree scans the current working directory, renders it as a Unicode
tree diagram, saves the result to ` + config.DefaultOutputFileName + `, and prints a preview.
The scan always starts at the working directory and excludes a fixed set of
version-control, tooling, and dependency names.`

	copyFlagName    = "copy"
	tokensFlagName  = "tokens"
	modelFlagName   = "model"
	versionFlagName = "version"

	copyFlagDescription    = "copy the rendered tree to the clipboard"
	tokensFlagDescription  = "print a token count for the rendered tree"
	modelFlagDescription   = "tokenizer model to use for token counting"
	versionFlagDescription = "display application version"
	versionTemplate        = "structree version: %s\n"

	scanStartMessageFormat  = "🔍  Scanning project structure for '%s'...\n"
	successMessageFormat    = "✅  Success! Project structure saved to '%s'\n"
	tokenCountMessageFormat = "Tokens (%s): %d\n"

	// warningClipboardFormat is used when the rendered tree cannot reach the clipboard.
	warningClipboardFormat = "Warning: unable to copy tree to clipboard: %v\n"

	// workingDirectoryErrorFormat reports failure to resolve the scan root.
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

// scanOptions stores the flag values that adjust a scan run.
type scanOptions struct {
	copyToClipboard bool
	countTokens     bool
	tokenizerModel  string
}

// Execute runs the structree application.
func Execute() error {
	return createRootCommand().Execute()
}

// createRootCommand builds the root Cobra command. The root command itself
// performs the scan; there are no subcommands and no positional arguments.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var options scanOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			settings, settingsError := config.LoadSettings()
			if settingsError != nil {
				return settingsError
			}
			settings.TokenizerModel = options.tokenizerModel
			return runScan(command, settings, options)
		},
	}

	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().BoolVar(&options.countTokens, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&options.tokenizerModel, modelFlagName, config.DefaultTokenizerModelName, modelFlagDescription)
	return rootCommand
}

// runScan performs one end-to-end scan: render the working directory, persist
// the result, and print the success message followed by the preview block.
func runScan(command *cobra.Command, settings config.Settings, options scanOptions) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}

	fmt.Fprintf(command.OutOrStdout(), scanStartMessageFormat, filepath.Base(workingDirectory))

	renderer := scan.NewRenderer(settings.IgnoreNames)
	renderedTree, renderError := renderer.Render(workingDirectory)
	if renderError != nil {
		return renderError
	}

	// The file write and the optional token count are independent of each other;
	// printing happens after Wait so the console order stays deterministic.
	var tokenCount int
	var tokenizerName string
	var executionGroup errgroup.Group
	executionGroup.Go(func() error {
		return output.WriteTreeFile(filepath.Join(workingDirectory, settings.OutputFileName), renderedTree)
	})
	if options.countTokens {
		executionGroup.Go(func() error {
			counter, counterName, counterError := tokenizer.NewCounter(settings.TokenizerModel)
			if counterError != nil {
				return counterError
			}
			countedTokens, countError := tokenizer.CountText(counter, renderedTree)
			if countError != nil {
				return countError
			}
			tokenCount = countedTokens
			tokenizerName = counterName
			return nil
		})
	}
	if groupError := executionGroup.Wait(); groupError != nil {
		return groupError
	}

	fmt.Fprintf(command.OutOrStdout(), successMessageFormat, settings.OutputFileName)
	if options.countTokens {
		fmt.Fprintf(command.OutOrStdout(), tokenCountMessageFormat, tokenizerName, tokenCount)
	}
	if options.copyToClipboard {
		if copyError := clipboard.NewService().Copy(renderedTree); copyError != nil {
			fmt.Fprintf(command.ErrOrStderr(), warningClipboardFormat, copyError)
		}
	}
	output.PrintPreview(command.OutOrStdout(), renderedTree)
	return nil
}
