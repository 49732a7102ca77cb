package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/riverbend-labs/envup/internal/doctor"
	"github.com/riverbend-labs/envup/internal/messages"
	"github.com/riverbend-labs/envup/internal/update"
)

var checkForUpdate = update.Check

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cwd, err := getwd()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, cwd)

			var allResults []doctor.Result

			// Config first; its effective values feed the other checks.
			configResults, cfg := doctor.CheckConfig(cwd)
			allResults = append(allResults, configResults...)

			allResults = append(allResults, doctor.CheckInstaller(cfg)...)
			allResults = append(allResults, doctor.CheckManifest(cwd, cfg)...)
			allResults = append(allResults, doctor.CheckEnvFile(cwd, cfg)...)
			allResults = append(allResults, releaseResult(cmd))

			hasFail := false
			for _, r := range allResults {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

// releaseResult checks GitHub for a newer envup release. Network problems
// degrade to warnings; doctor never fails on release metadata.
func releaseResult(cmd *cobra.Command) doctor.Result {
	result := doctor.Result{CheckName: messages.DoctorCheckNameRelease}
	if strings.TrimSpace(os.Getenv(update.EnvNoNetwork)) != "" {
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorReleaseSkippedFmt, update.EnvNoNetwork)
		result.Recommendation = fmt.Sprintf(messages.DoctorReleaseSkippedRecommendFmt, update.EnvNoNetwork)
		return result
	}

	check, err := checkForUpdate(cmd.Context(), Version)
	switch {
	case err != nil && update.IsRateLimitError(err):
		result.Status = doctor.StatusWarn
		result.Message = messages.DoctorReleaseRateLimited
	case err != nil:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorReleaseFailedFmt, err)
		result.Recommendation = messages.DoctorReleaseFailedRecommend
	case check.CurrentIsDev:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorReleaseDevBuildFmt, check.Latest)
	case check.Outdated:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorReleaseOutdatedFmt, check.Latest, check.Current)
		result.Recommendation = fmt.Sprintf(messages.DoctorReleaseOutdatedRecFmt, update.ReleasesBaseURL)
	default:
		result.Status = doctor.StatusOK
		result.Message = fmt.Sprintf(messages.DoctorReleaseUpToDateFmt, check.Current)
	}
	return result
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
