package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	rwa "github.com/krazyTry/rwa-registry-go/gen/rwa_template"
	"github.com/krazyTry/rwa-registry-go/registry"
	"github.com/krazyTry/rwa-registry-go/wallet"
)

func printAssetCards(w io.Writer, cards []registry.AssetCard) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, "No assets registered yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSYMBOL\tTYPE\tISIN\tAUTHORITY\tCREATED")
	for _, c := range cards {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Symbol, c.TypeLabel, c.Isin, c.Authority, c.Created)
	}
	return tw.Flush()
}

func printTokenCards(w io.Writer, cards []registry.TokenCard) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, "No tokens found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tNAME\tDECIMALS\tSUPPLY\tMINT\tAUTHORITY\t")
	for _, c := range cards {
		name := c.Name
		if c.Fallback {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t\n", c.Symbol, name, c.Decimals, c.Supply, c.Mint, c.Authority)
	}
	return tw.Flush()
}

func printValidationErrors(w io.Writer, errs registry.ValidationErrors) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(w, "  %s: %s\n", field, errs[field])
	}
}

func parseAssetType(s string) (rwa.AssetType, error) {
	for t := rwa.AssetTypeEquity; t.Valid(); t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, errors.Wrapf(registry.ErrInvalidAssetType, "%q", s)
}

// promptApproval asks on out and reads the answer from in.
func promptApproval(in io.Reader, out io.Writer) wallet.ApprovalFunc {
	reader := bufio.NewReader(in)
	return func(ctx context.Context, signer solana.PublicKey, message []byte) (bool, error) {
		fmt.Fprintf(out, "Sign transaction with %s? [y/N] ", signer)
		answer, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes", nil
	}
}
