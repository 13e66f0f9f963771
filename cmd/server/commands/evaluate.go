package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"claimeval/internal/claims"
	"claimeval/internal/claims/handler"
	dErrors "claimeval/pkg/domain-errors"
	"claimeval/pkg/platform/sentinel"
)

func newEvaluateCmd(opts *rootOptions) *cobra.Command {
	var claimPath, policyPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a claim file against a policy file and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var claimPayload handler.ClaimPayload
			if err := readJSON(claimPath, &claimPayload); err != nil {
				return err
			}
			var policyPayload handler.PolicyPayload
			if err := readJSON(policyPath, &policyPayload); err != nil {
				return err
			}

			claim, err := claimPayload.ToClaim()
			if err != nil {
				return fmt.Errorf("claim %s: %w", claimPath, err)
			}
			policy, err := policyPayload.ToPolicy()
			if err != nil {
				return fmt.Errorf("policy %s: %w", policyPath, err)
			}

			svc := claims.NewService(claims.WithLogger(opts.logger))
			result, err := svc.Evaluate(cmd.Context(), claim, policy)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(handler.FromEvaluation(result))
		},
	}

	cmd.Flags().StringVar(&claimPath, "claim", "", "Path to the claim JSON file")
	cmd.Flags().StringVar(&policyPath, "policy", "", "Path to the policy JSON file")
	_ = cmd.MarkFlagRequired("claim")
	_ = cmd.MarkFlagRequired("policy")

	return cmd
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dErrors.Wrap(fmt.Errorf("%s: %w", path, sentinel.ErrNotFound), dErrors.CodeNotFound, "input file not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read input file")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, fmt.Sprintf("%s is not valid json", path))
	}
	return nil
}
