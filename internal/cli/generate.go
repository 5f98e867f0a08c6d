package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/workspace-manager/internal/engine"
	"github.com/danieljhkim/workspace-manager/internal/workspace"
)

// generateOutput is the --json form of a run result.
type generateOutput struct {
	File    string `json:"file"`
	Folders int    `json:"folders"`
	Tasks   int    `json:"tasks"`
	Origin  string `json:"origin"`
	Changed bool   `json:"changed"`
	Written bool   `json:"written"`
}

func runGenerate(cmd *cobra.Command, flags *rootFlags) error {
	req, err := newGenerateRequest(cmd, flags)
	if err != nil {
		return err
	}

	result, err := newEngine().Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case flags.dryRun && !flags.jsonOutput:
		_, err := out.Write(result.Data)
		return err
	case flags.jsonOutput:
		return outputJSON(out, toGenerateOutput(result))
	}

	if result.Origin == workspace.OriginRecovered {
		printWarning(cmd.ErrOrStderr(), fmt.Sprintf("Existing '%s' could not be parsed and was replaced", result.FileName))
	}
	printSuccess(out, fmt.Sprintf("Workspace file '%s' updated successfully!", result.FileName))
	if flags.verbose {
		printLabelValue(out, "Folders", printCount(len(result.Document.Folders), "folder", "folders"))
		printLabelValue(out, "Scan root", result.ScanRoot)
		printLabelValue(out, "Changed", fmt.Sprintf("%v", result.Changed))
	}
	return nil
}

func toGenerateOutput(result *engine.GenerateResult) generateOutput {
	tasks := 0
	if result.Document.Tasks != nil {
		tasks = len(result.Document.Tasks.Tasks)
	}
	return generateOutput{
		File:    result.FilePath,
		Folders: len(result.Document.Folders),
		Tasks:   tasks,
		Origin:  result.Origin.String(),
		Changed: result.Changed,
		Written: result.Written,
	}
}
