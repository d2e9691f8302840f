package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matst80/slask-card/pkg/card"
	"github.com/matst80/slask-card/pkg/common/jsoncompat"
	"github.com/matst80/slask-card/pkg/types"
	"github.com/matst80/slask-card/pkg/variant"
	"github.com/spf13/cobra"
)

type flags struct {
	filters  []string
	query    string
	media    string
	wishlist bool
	reviews  bool
	href     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "cardctl",
		Short:        "Resolve product variants and card facts from catalog json",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringArrayVarP(&f.filters, "filter", "f", nil, "selected option as code=value (repeatable)")
	root.PersistentFlags().StringVarP(&f.query, "query", "q", "", "selected options as a query string, e.g. color=red&size=M")

	cardCmd := &cobra.Command{
		Use:   "card [product.json|-]",
		Short: "Print the card facts for a product",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, filters, err := f.load(cmd, args)
			if err != nil {
				return err
			}
			opts := card.DefaultOptions()
			if f.media != "" {
				opts.MediaPrefix = f.media
			}
			opts.WishlistItem = f.wishlist
			c, err := card.Build(product, filters, opts)
			if err != nil {
				return err
			}
			return printJson(cmd.OutOrStdout(), c)
		},
	}
	cardCmd.Flags().StringVar(&f.media, "media", "", "media url prefix for thumbnails")
	cardCmd.Flags().BoolVar(&f.wishlist, "wishlist", false, "product is shown as a wishlist item")

	resolveCmd := &cobra.Command{
		Use:   "resolve [product.json|-]",
		Short: "Print the selected variant index and parameters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, filters, err := f.load(cmd, args)
			if err != nil {
				return err
			}
			return printJson(cmd.OutOrStdout(), variant.ResolveProduct(product, filters))
		},
	}

	linkCmd := &cobra.Command{
		Use:   "link [product.json|-]",
		Short: "Print the navigation target for the selected variant",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, filters, err := f.load(cmd, args)
			if err != nil {
				return err
			}
			sel := variant.ResolveProduct(product, filters)
			build := card.BuildLink
			if f.reviews {
				build = card.BuildReviewLink
			}
			target := build(product, sel.Parameters)
			if target == nil {
				return fmt.Errorf("product %q has no url key", product.Sku)
			}
			if f.href {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), target.Href())
				return err
			}
			return printJson(cmd.OutOrStdout(), target)
		},
	}
	linkCmd.Flags().BoolVar(&f.reviews, "reviews", false, "link to the reviews section")
	linkCmd.Flags().BoolVar(&f.href, "href", false, "print the relative url only")

	root.AddCommand(cardCmd, resolveCmd, linkCmd)
	return root
}

func (f *flags) load(cmd *cobra.Command, args []string) (*types.Product, types.Parameters, error) {
	filters, err := f.filterSet()
	if err != nil {
		return nil, nil, err
	}
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, nil, err
		}
		defer file.Close()
		in = file
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, nil, err
	}
	product := &types.Product{}
	if err = jsoncompat.Unmarshal(data, product); err != nil {
		return nil, nil, fmt.Errorf("decode product: %w", err)
	}
	if err = types.Validate(product); err != nil {
		return nil, nil, fmt.Errorf("invalid product: %w", err)
	}
	return product, filters, nil
}

func (f *flags) filterSet() (types.Parameters, error) {
	filters, err := types.ParseQuery(f.query)
	if err != nil {
		return nil, err
	}
	for _, kv := range f.filters {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("filter %q is not code=value", kv)
		}
		filters = filters.With(key, value)
	}
	return filters, nil
}

func printJson(w io.Writer, v any) error {
	data, err := jsoncompat.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
