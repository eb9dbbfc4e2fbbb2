package divproj

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeAssumptions_PartialDocumentKeepsDefaults(t *testing.T) {
	doc := strings.NewReader("share_price: 50\nholding_period_years: 5\n")

	got, err := DecodeAssumptions(doc)
	if err != nil {
		t.Fatalf("DecodeAssumptions() error = %v", err)
	}
	if got.SharePrice != 50 {
		t.Errorf("SharePrice = %v, want 50", got.SharePrice)
	}
	if got.HoldingPeriodYears != 5 {
		t.Errorf("HoldingPeriodYears = %v, want 5", got.HoldingPeriodYears)
	}
	// Everything not stated stays at the default.
	def := DefaultAssumptions()
	if got.AnnualDividendYieldPct != def.AnnualDividendYieldPct {
		t.Errorf("AnnualDividendYieldPct = %v, want default %v", got.AnnualDividendYieldPct, def.AnnualDividendYieldPct)
	}
	if got.DividendFrequency != def.DividendFrequency {
		t.Errorf("DividendFrequency = %v, want default %v", got.DividendFrequency, def.DividendFrequency)
	}
}

func TestDecodeAssumptions_EmptyDocumentIsDefaults(t *testing.T) {
	got, err := DecodeAssumptions(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeAssumptions() error = %v", err)
	}
	if got != DefaultAssumptions() {
		t.Errorf("DecodeAssumptions(empty) = %+v, want defaults", got)
	}
}

func TestDecodeAssumptions_UnknownFieldFails(t *testing.T) {
	doc := strings.NewReader("shore_price: 50\n")

	if _, err := DecodeAssumptions(doc); err == nil {
		t.Fatal("DecodeAssumptions() = nil, want error on unknown field")
	}
}

func TestDecodeAssumptions_FrequencyNames(t *testing.T) {
	doc := strings.NewReader("contribution_frequency: annually\ndividend_frequency: quarterly\n")

	got, err := DecodeAssumptions(doc)
	if err != nil {
		t.Fatalf("DecodeAssumptions() error = %v", err)
	}
	if got.ContributionFrequency != Annually {
		t.Errorf("ContributionFrequency = %v, want annually", got.ContributionFrequency)
	}
	if got.DividendFrequency != Quarterly {
		t.Errorf("DividendFrequency = %v, want quarterly", got.DividendFrequency)
	}

	if _, err := DecodeAssumptions(strings.NewReader("dividend_frequency: fortnightly\n")); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("DecodeAssumptions(fortnightly) error = %v, want ErrInvalidFrequency", err)
	}
}

func TestEncodeAssumptions_RoundTrip(t *testing.T) {
	a := DefaultAssumptions()
	a.SharePrice = 25.5
	a.NumShares = 80
	a.ContributionFrequency = Quarterly
	a.ReinvestDividends = false

	var buf bytes.Buffer
	if err := EncodeAssumptions(&buf, a); err != nil {
		t.Fatalf("EncodeAssumptions() error = %v", err)
	}
	// Frequencies are written by name, not number.
	if !strings.Contains(buf.String(), "contribution_frequency: quarterly") {
		t.Errorf("encoded document missing named frequency:\n%s", buf.String())
	}

	got, err := DecodeAssumptions(&buf)
	if err != nil {
		t.Fatalf("DecodeAssumptions() error = %v", err)
	}
	if got != a {
		t.Errorf("round trip = %+v, want %+v", got, a)
	}
}

func TestLoadAssumptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assumptions.yaml")

	a := DefaultAssumptions()
	a.HoldingPeriodYears = 7
	if err := SaveAssumptions(path, a); err != nil {
		t.Fatalf("SaveAssumptions() error = %v", err)
	}

	got, err := LoadAssumptions(path)
	if err != nil {
		t.Fatalf("LoadAssumptions() error = %v", err)
	}
	if got != a {
		t.Errorf("LoadAssumptions() = %+v, want %+v", got, a)
	}

	// A file that parses but fails validation is rejected.
	bad := a
	bad.SharePrice = -1
	if err := SaveAssumptions(path, bad); err != nil {
		t.Fatalf("SaveAssumptions() error = %v", err)
	}
	if _, err := LoadAssumptions(path); !errors.Is(err, ErrInvalidAssumption) {
		t.Errorf("LoadAssumptions(invalid) error = %v, want ErrInvalidAssumption", err)
	}

	if _, err := LoadAssumptions(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadAssumptions(missing) = nil, want error")
	}
}
