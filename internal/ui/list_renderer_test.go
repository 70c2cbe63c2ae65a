package ui

import (
	"testing"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/clubhub/internal/view"
)

func TestRenderList_Empty(t *testing.T) {
	test.NewApp()
	box := container.NewVBox()
	loader := &countingLoader{}

	RenderList(box, nil, loader, 50)
	if len(box.Objects) != 0 {
		t.Errorf("Expected no rows, got %d", len(box.Objects))
	}

	RenderList(box, []view.Row{{Label: "a"}}, loader, 50)
	RenderList(box, []view.Row{}, loader, 50)
	if len(box.Objects) != 0 {
		t.Errorf("Expected previous rows to be removed, got %d", len(box.Objects))
	}
}

func TestRenderList_ReplacesRows(t *testing.T) {
	test.NewApp()
	box := container.NewVBox()
	loader := &countingLoader{}

	rows := []view.Row{
		{Label: "그림 동아리", ImagePath: "art club.jpg", Badge: true},
		{Label: "영화 동아리", ImagePath: "movie club.jpg"},
	}
	RenderList(box, rows, loader, 50)
	RenderList(box, rows, loader, 50)

	rendered := RowsOf(box)
	if len(rendered) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rendered))
	}
	if !rendered[0].HasBadge() || rendered[1].HasBadge() {
		t.Error("Expected badge only on the first row")
	}
	if loader.names[0] != "art club.jpg" || loader.names[1] != "movie club.jpg" {
		t.Errorf("Unexpected thumbnail requests %v", loader.names)
	}
	if len(loader.names) != 4 {
		t.Errorf("Expected thumbnails to be reloaded on each render, got %d loads", len(loader.names))
	}
}

func TestRecordRow_Tap(t *testing.T) {
	test.NewApp()
	tapped := 0
	row := NewRecordRow(view.Row{Label: "코딩 동아리", OnTap: func() { tapped++ }}, nil, 50)

	test.Tap(row.Button())
	if tapped != 1 {
		t.Errorf("Expected one tap, got %d", tapped)
	}

	// No handler is fine
	empty := NewRecordRow(view.Row{Label: "x"}, nil, 50)
	test.Tap(empty.Button())
}

func TestTexts_GetText(t *testing.T) {
	texts := NewTexts()
	if texts.GetText(KeyClose) != "닫기" {
		t.Errorf("Expected 닫기, got %s", texts.GetText(KeyClose))
	}
	if texts.GetText("missing_key") != "missing_key" {
		t.Error("Expected unknown key to fall back to the key itself")
	}
}
