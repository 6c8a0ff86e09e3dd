package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type addAssetCmd struct {
	name       string
	account    string
	kind       string
	customType string
	quantity   string
	price      string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "track a non-cash asset in an account" }
func (*addAssetCmd) Usage() string {
	return `fbk add-asset -name <name> -account <account> [-kind <type> | -custom <type>] -q <quantity> -price <price>

  Tracks an asset in an account. The asset's value is quantity times current
  price, in the account's currency, and counts toward net worth. Built-in
  kinds: stock, bond, crypto, realEstate, vehicle, collectible, other.
  Use -custom with a custom asset type name or id instead of -kind.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Asset name.")
	f.StringVar(&c.account, "account", "", "Owning account name or id.")
	f.StringVar(&c.kind, "kind", string(finbook.AssetOther), "Built-in asset type.")
	f.StringVar(&c.customType, "custom", "", "Custom asset type name or id; overrides -kind.")
	f.StringVar(&c.quantity, "q", "1", "Quantity held.")
	f.StringVar(&c.price, "price", "", "Current unit price in the account currency.")
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account, ok := findAccount(s, c.account)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.account)
		return subcommands.ExitUsageError
	}
	quantity, err := finbook.ParseDecimal(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := finbook.ParseDecimal(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	kind := finbook.StandardKind(finbook.AssetType(c.kind))
	if c.customType != "" {
		found := false
		for _, t := range s.CustomAssetTypes() {
			if t.ID == c.customType || t.Name == c.customType {
				kind, found = finbook.CustomKind(t.ID), true
				break
			}
		}
		if !found {
			// Unknown custom types are created on the fly.
			t, ok := s.AddCustomAssetType(finbook.CustomAssetType{Name: c.customType})
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: invalid custom asset type %q\n", c.customType)
				return subcommands.ExitUsageError
			}
			kind = finbook.CustomKind(t.ID)
		}
	}

	a := finbook.Asset{
		Name:         c.name,
		Kind:         kind,
		AccountID:    account.ID,
		Quantity:     quantity,
		CurrentPrice: price,
	}
	stored, ok := s.AddAsset(a)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: asset rejected: %v\n", a.Validate())
		return subcommands.ExitUsageError
	}
	if err := SaveStore(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Tracking asset %q worth %s in %q\n", stored.Name, format(stored.Value(), account.Currency), account.Name)
	return subcommands.ExitSuccess
}
