package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/services"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/spf13/cobra"
)

const defaultURL = "http://localhost:8080"

type rootOptions struct {
	url     string
	timeout time.Duration
}

func (o *rootOptions) client() *connectorClient {
	return newConnectorClient(o.url, o.timeout)
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "connectorctl",
		Short:         "Operate a running Adyen connector",
		SilenceUsage: true,
	}

	baseURL := os.Getenv("CONNECTORCTL_URL")
	if baseURL == "" {
		baseURL = defaultURL
	}
	cmd.PersistentFlags().StringVar(&opts.url, "url", baseURL, "connector base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	cmd.AddCommand(newNotifyCommand(opts))
	cmd.AddCommand(newModifyCommand(opts))
	cmd.AddCommand(newConvertCommand())
	return cmd
}

func newNotifyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "notify <file|->",
		Short: "Post an Adyen notification document to the connector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if !sonic.Valid(body) {
				return fmt.Errorf("%s is not a JSON document", args[0])
			}
			ack, err := opts.client().Notify(cmd.Context(), body)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ack)
			return nil
		},
	}
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

var modifyActions = map[string]string{
	"capture": services.ActionCapturePayment,
	"cancel":  services.ActionCancelPayment,
	"refund":  services.ActionRefundPayment,
}

func newModifyCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modify",
		Short: "Capture, cancel or refund a payment",
	}
	for _, name := range []string{"capture", "cancel", "refund"} {
		cmd.AddCommand(newModifyActionCommand(opts, name))
	}
	return cmd
}

func newModifyActionCommand(opts *rootOptions, name string) *cobra.Command {
	var (
		amount            int64
		currency          string
		transactionID     string
		merchantReference string
	)

	cmd := &cobra.Command{
		Use:   name + " <paymentId>",
		Short: "Request a " + name + " for a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := modifyAction{
				Action:        modifyActions[name],
				TransactionID: transactionID,
			}
			if cmd.Flags().Changed("amount") {
				if currency == "" {
					return fmt.Errorf("--currency is required with --amount")
				}
				action.Amount = &money{CentAmount: amount, CurrencyCode: strings.ToUpper(currency)}
			}

			result, err := opts.client().Modify(cmd.Context(), args[0], modifyRequest{
				Actions:           []modifyAction{action},
				MerchantReference: merchantReference,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "outcome: %s\n", result.Outcome)
			if result.TransactionID != "" {
				fmt.Fprintf(out, "transaction: %s\n", result.TransactionID)
			}
			if result.PSPReference != "" {
				fmt.Fprintf(out, "pspReference: %s\n", result.PSPReference)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in ISO minor units")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&transactionID, "transaction-id", "", "initial transaction to reuse")
	cmd.Flags().StringVar(&merchantReference, "merchant-reference", "", "merchant reference sent to Adyen")
	return cmd
}

func newConvertCommand() *cobra.Command {
	var toISO bool

	cmd := &cobra.Command{
		Use:   "convert <amount> <currency>",
		Short: "Convert a minor-unit amount between ISO 4217 and Adyen conventions",
		Long: "Converts an ISO minor-unit amount to Adyen minor units, or the reverse with --to-iso.\n" +
			"Currencies without a mapping are printed unchanged.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			currency := strings.ToUpper(args[1])

			converted := domain.ConvertCurrencyToProcessor(amount, currency)
			if toISO {
				converted = domain.ConvertCurrencyToISO(amount, currency)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", converted, currency)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toISO, "to-iso", false, "convert from Adyen to ISO minor units")
	cmd.AddCommand(&cobra.Command{
		Use:   "currencies",
		Short: "List currencies whose minor units differ",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			currencies := domain.MappedCurrencies()
			sort.Strings(currencies)
			for _, c := range currencies {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%+d\n", c, domain.ProcessorExponent(c))
			}
			return nil
		},
	})
	return cmd
}
