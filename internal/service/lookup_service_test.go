package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"vehicle-lookup-api/internal/catalog"
	"vehicle-lookup-api/internal/model"
)

func newTestService(t *testing.T, contact string) *LookupService {
	t.Helper()

	c, err := catalog.New(catalog.Data{
		"toyota":     {"Corolla": {2014, 2015, 2016}, "Prius": {2010, 2012}, "RAV4": nil},
		"land-rover": {"Defender": {2020, 2021}},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return NewLookupService(c, slog.New(slog.NewTextHandler(io.Discard, nil)), contact)
}

func TestSearchFound(t *testing.T) {
	s := newTestService(t, "")

	resp := s.Search(context.Background(), "  toyota corolla 2015 ")
	if resp.Status != model.StatusFound {
		t.Fatalf("status = %s", resp.Status)
	}
	if resp.Total != 1 || len(resp.Results) != 1 {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}

	r := resp.Results[0]
	if r.Brand != "toyota" || r.Model != "Corolla" || r.YearsDisplay != "2015" {
		t.Fatalf("unexpected result: %+v", r)
	}
	if r.BrandDisplay != "TOYOTA" || r.ModelDisplay != "COROLLA" {
		t.Fatalf("unexpected display: %+v", r)
	}
	if resp.Messages[0] != `Your query matches the following models "toyota corolla 2015"` {
		t.Fatalf("unexpected header: %q", resp.Messages[0])
	}
	if resp.Footer[0] != "A total of 1 results were found" {
		t.Fatalf("unexpected footer: %q", resp.Footer[0])
	}
}

func TestSearchDisplayForms(t *testing.T) {
	s := newTestService(t, "")

	resp := s.Search(context.Background(), "toyota")
	want := map[string]string{
		"COROLLA": "2014-2016",
		"PRIUS":   "2010, 2012",
		"RAV4":    "All years compatible.",
	}
	if len(resp.Results) != len(want) {
		t.Fatalf("got %d results", len(resp.Results))
	}
	for _, r := range resp.Results {
		if want[r.ModelDisplay] != r.YearsDisplay {
			t.Errorf("%s years = %q, want %q", r.ModelDisplay, r.YearsDisplay, want[r.ModelDisplay])
		}
	}

	resp = s.Search(context.Background(), "land rover")
	if resp.Results[0].BrandDisplay != "LAND ROVER" {
		t.Fatalf("brand display = %q", resp.Results[0].BrandDisplay)
	}
}

func TestSearchMissingInput(t *testing.T) {
	s := newTestService(t, "")

	resp := s.Search(context.Background(), "   ")
	if resp.Status != model.StatusMissingInput {
		t.Fatalf("status = %s", resp.Status)
	}
	if len(resp.Messages) != 1 || resp.Messages[0] != MsgMissingInput {
		t.Fatalf("messages = %v", resp.Messages)
	}
}

func TestSearchNotFound(t *testing.T) {
	s := newTestService(t, "400-123-4567")

	resp := s.Search(context.Background(), "zzztopcar 9999")
	if resp.Status != model.StatusNotFound {
		t.Fatalf("status = %s", resp.Status)
	}
	if resp.Total != 0 || len(resp.Results) != 0 {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}
	want := []string{
		`The model you entered was not found "zzztopcar 9999"`,
		MsgTryAgain,
		"Need help? Contact Customer Service: 400-123-4567",
	}
	if strings.Join(resp.Messages, "|") != strings.Join(want, "|") {
		t.Fatalf("messages = %v", resp.Messages)
	}
}

func TestBrandModels(t *testing.T) {
	s := newTestService(t, "")

	resp, err := s.BrandModels("land rover")
	if err != nil {
		t.Fatalf("brand models: %v", err)
	}
	if resp.Brand != "land-rover" || len(resp.Models) != 1 || resp.Models[0].YearsDisplay != "2020-2021" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if _, err := s.BrandModels("zzz"); !errors.Is(err, ErrBrandNotFound) {
		t.Fatalf("err = %v, want ErrBrandNotFound", err)
	}
}

func TestListBrands(t *testing.T) {
	s := newTestService(t, "")

	brands := s.ListBrands()
	if len(brands) != 2 || brands[0].Key != "land-rover" || brands[0].DisplayName != "LAND ROVER" || brands[1].ModelCount != 3 {
		t.Fatalf("unexpected brands: %+v", brands)
	}
}

func TestWriteText(t *testing.T) {
	s := newTestService(t, "")

	var buf bytes.Buffer
	if err := WriteText(&buf, s.Search(context.Background(), "land rover defender 2021")); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Brand: LAND ROVER  Model: DEFENDER  Vehicle year: 2021\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.HasSuffix(out, MsgCantFind+"\n") {
		t.Fatalf("footer missing:\n%s", out)
	}
}
