package export_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Hustada/dynastylab/internal/entity"
	"github.com/Hustada/dynastylab/internal/export"
	"github.com/Hustada/dynastylab/internal/testsupport"
)

func intp(n int) *int { return &n }

func TestExportDynastyXLSX(t *testing.T) {
	stores := testsupport.NewStores(t)
	ctx := context.Background()

	if err := stores.Games.Add(ctx, &entity.Game{
		Week:          intp(9),
		Opponent:      "Oregon Ducks",
		TeamScore:     27,
		OpponentScore: 24,
		Location:      "home",
		Played:        true,
	}); err != nil {
		t.Fatalf("seed game: %v", err)
	}
	if err := stores.Players.Add(ctx, &entity.Player{Name: "Jonah Coleman", Position: "HB", OverallRating: intp(90)}); err != nil {
		t.Fatalf("seed player: %v", err)
	}

	svc := export.NewService(stores, nil)
	raw, err := svc.ExportDynastyXLSX(ctx)
	if err != nil {
		t.Fatalf("ExportDynastyXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Seasons", "Games", "Roster", "Recruits", "Coaches"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			t.Errorf("missing sheet %q", sheet)
		}
	}

	opponent, err := f.GetCellValue("Games", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if opponent != "Oregon Ducks" {
		t.Errorf("Games!B2 = %q, want Oregon Ducks", opponent)
	}
	result, err := f.GetCellValue("Games", "E2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if result != "W" {
		t.Errorf("Games!E2 = %q, want W", result)
	}

	name, err := f.GetCellValue("Roster", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if name != "Jonah Coleman" {
		t.Errorf("Roster!A2 = %q, want Jonah Coleman", name)
	}
}

func TestExportEmptyStores(t *testing.T) {
	svc := export.NewService(testsupport.NewStores(t), nil)
	raw, err := svc.ExportDynastyXLSX(context.Background())
	if err != nil {
		t.Fatalf("ExportDynastyXLSX() error = %v", err)
	}
	if len(raw) == 0 {
		t.Error("empty workbook bytes")
	}
}
