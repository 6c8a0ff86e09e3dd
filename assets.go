package finbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AssetType enumerates the built-in asset categories.
type AssetType string

const (
	AssetStock       AssetType = "stock"
	AssetBond        AssetType = "bond"
	AssetCrypto      AssetType = "crypto"
	AssetRealEstate  AssetType = "realEstate"
	AssetVehicle     AssetType = "vehicle"
	AssetCollectible AssetType = "collectible"
	AssetOther       AssetType = "other"
)

var assetTypes = map[AssetType]bool{
	AssetStock: true, AssetBond: true, AssetCrypto: true, AssetRealEstate: true,
	AssetVehicle: true, AssetCollectible: true, AssetOther: true,
}

// AssetKind is a tagged union: an asset is categorized either by a built-in
// AssetType or by a reference to a user-defined CustomAssetType. Exactly one
// of the two arms is set.
type AssetKind struct {
	standard AssetType
	customID string
}

// StandardKind returns the kind for a built-in asset type.
func StandardKind(t AssetType) AssetKind { return AssetKind{standard: t} }

// CustomKind returns the kind referencing a CustomAssetType by id.
func CustomKind(customTypeID string) AssetKind { return AssetKind{customID: customTypeID} }

// IsCustom reports whether the kind references a custom asset type.
func (k AssetKind) IsCustom() bool { return k.customID != "" }

// Standard returns the built-in type; ok is false for custom kinds.
func (k AssetKind) Standard() (AssetType, bool) { return k.standard, k.customID == "" }

// CustomTypeID returns the custom type id; ok is false for standard kinds.
func (k AssetKind) CustomTypeID() (string, bool) { return k.customID, k.customID != "" }

// Validate checks that exactly one arm of the union is set and valid.
func (k AssetKind) Validate() error {
	if k.customID != "" {
		if k.standard != "" {
			return errors.New("asset kind cannot be both standard and custom")
		}
		return nil
	}
	if !assetTypes[k.standard] {
		return fmt.Errorf("unknown asset type %q", k.standard)
	}
	return nil
}

// MarshalJSON encodes the kind as {"type":"stock"} or {"customTypeId":"…"}.
func (k AssetKind) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	if k.customID != "" {
		w.Append("customTypeId", k.customID)
	} else {
		w.Append("type", k.standard)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON decodes either arm of the union.
func (k *AssetKind) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type         AssetType `json:"type"`
		CustomTypeID string    `json:"customTypeId"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.CustomTypeID != "" {
		*k = CustomKind(temp.CustomTypeID)
		return nil
	}
	*k = StandardKind(temp.Type)
	return nil
}

// Asset is a non-cash holding tracked in an account: the account provides
// the currency context, not a cash balance. The asset's value is
// quantity × current price, in the owning account's currency.
type Asset struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Kind             AssetKind        `json:"kind"`
	AccountID        string           `json:"accountId"`
	Quantity         decimal.Decimal  `json:"quantity"`
	CurrentPrice     decimal.Decimal  `json:"currentPrice"`
	AcquisitionPrice *decimal.Decimal `json:"acquisitionPrice,omitempty"`
	AcquisitionDate  *Date            `json:"acquisitionDate,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// Value returns the asset's current value, quantity × current price.
func (a Asset) Value() decimal.Decimal { return a.Quantity.Mul(a.CurrentPrice) }

// Validate checks the asset's own fields for correctness.
func (a Asset) Validate() error {
	if a.Name == "" {
		return errors.New("asset name is missing")
	}
	if a.AccountID == "" {
		return errors.New("asset owning account is missing")
	}
	if a.Quantity.IsNegative() {
		return fmt.Errorf("asset quantity must be non-negative, got %s", a.Quantity)
	}
	if a.CurrentPrice.IsNegative() {
		return fmt.Errorf("asset current price must be non-negative, got %s", a.CurrentPrice)
	}
	return a.Kind.Validate()
}

// CustomAssetType is a user-defined asset category.
type CustomAssetType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the custom asset type's own fields.
func (t CustomAssetType) Validate() error {
	if t.Name == "" {
		return errors.New("custom asset type name is missing")
	}
	return nil
}
