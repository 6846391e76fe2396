package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/fiskal/internal/afa"
	"github.com/fiskal-dev/fiskal/internal/model"
)

// AssetHeader is the CSV header for assets.csv. The depreciation
// schedule is not stored; it is regenerated from these fields on load.
const AssetHeader = "id,name,purchase_date,price,useful_life_years"

const (
	assetFields  = 5
	colAssetID   = 0
	colAssetName = 1
	colPurchase  = 2
	colPrice     = 3
	colLife      = 4
)

// ReadAssets reads all assets from an assets.csv reader and generates
// each one's depreciation schedule.
func ReadAssets(r io.Reader) ([]model.AssetRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = assetFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading assets CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var assets []model.AssetRecord
	for i, row := range rows[1:] {
		asset, err := UnmarshalAsset(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

// WriteAssets writes assets to an assets.csv writer (including header).
func WriteAssets(w io.Writer, assets []model.AssetRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(AssetHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, asset := range assets {
		row := make([]string, assetFields)
		row[colAssetID] = asset.ID
		row[colAssetName] = asset.Name
		row[colPurchase] = asset.PurchaseDate.Format(dateFormat)
		row[colPrice] = asset.PurchasePrice.StringFixed(2)
		row[colLife] = strconv.Itoa(asset.UsefulLifeYears)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// UnmarshalAsset converts a CSV row to an AssetRecord with its schedule.
func UnmarshalAsset(row []string) (model.AssetRecord, error) {
	if len(row) != assetFields {
		return model.AssetRecord{}, fmt.Errorf("expected %d fields, got %d", assetFields, len(row))
	}

	purchased, err := time.Parse(dateFormat, row[colPurchase])
	if err != nil {
		return model.AssetRecord{}, fmt.Errorf("parsing purchase_date %q: %w", row[colPurchase], err)
	}

	price, err := decimal.NewFromString(row[colPrice])
	if err != nil {
		return model.AssetRecord{}, fmt.Errorf("parsing price %q: %w", row[colPrice], err)
	}

	life, err := strconv.Atoi(row[colLife])
	if err != nil {
		return model.AssetRecord{}, fmt.Errorf("parsing useful_life_years %q: %w", row[colLife], err)
	}

	schedule, err := afa.Schedule(price, purchased, life)
	if err != nil {
		return model.AssetRecord{}, fmt.Errorf("asset %s: %w", row[colAssetID], err)
	}

	return model.AssetRecord{
		ID:              row[colAssetID],
		Name:            row[colAssetName],
		PurchaseDate:    purchased,
		PurchasePrice:   price,
		UsefulLifeYears: life,
		Schedule:        schedule,
	}, nil
}
