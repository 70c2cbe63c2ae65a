package ui

import (
	"image"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/clubhub/internal/assets"
	"github.com/ytget/clubhub/internal/config"
	"github.com/ytget/clubhub/internal/model"
	"github.com/ytget/clubhub/internal/store"
	"github.com/ytget/clubhub/internal/view"
)

// countingLoader returns placeholders and records every requested name
type countingLoader struct {
	names []string
	dir   string
}

func (l *countingLoader) Thumbnail(name string, size int) image.Image {
	l.names = append(l.names, name)
	return assets.Placeholder(size)
}

func (l *countingLoader) SetDir(dir string) {
	l.dir = dir
}

func newTestRootUI(t *testing.T) (*RootUI, *store.Store, *countingLoader) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	records := store.Default()
	loader := &countingLoader{}
	window := app.NewWindow("")
	ui := NewRootUI(window, app, records, loader, config.NewSettings(app))
	return ui, records, loader
}

func countBadges(rows []*RecordRow) int {
	count := 0
	for _, row := range rows {
		if row.HasBadge() {
			count++
		}
	}
	return count
}

func TestNewRootUI_InitialRender(t *testing.T) {
	ui, _, loader := newTestRootUI(t)

	if len(ui.Tabs().Items) != 3 {
		t.Fatalf("Expected 3 tabs, got %d", len(ui.Tabs().Items))
	}

	tests := []struct {
		tab      view.Tab
		expected []string
	}{
		{view.TabNotifications, []string{"그림 동아리", "영화 동아리", "코딩 동아리", "영어 회화 동아리", "발표 동아리", "베이킹 동아리"}},
		{view.TabResources, []string{"사진", "동영상", "파일", "코드 소스"}},
		{view.TabMyPage, []string{"그림 동아리", "영화 동아리", "코딩 동아리", "영어 회화 동아리", "발표 동아리", "베이킹 동아리"}},
	}

	for _, tc := range tests {
		rows := ui.List(tc.tab)
		if len(rows) != len(tc.expected) {
			t.Errorf("Tab %s: expected %d rows, got %d", tc.tab, len(tc.expected), len(rows))
			continue
		}
		for i, label := range tc.expected {
			if rows[i].Label() != label {
				t.Errorf("Tab %s row %d: expected %s, got %s", tc.tab, i, label, rows[i].Label())
			}
		}
	}

	if countBadges(ui.List(view.TabNotifications)) != 6 {
		t.Errorf("Expected 6 unread indicators")
	}
	if countBadges(ui.List(view.TabResources)) != 0 {
		t.Errorf("Expected no indicators on resources")
	}

	if len(loader.names) != 16 {
		t.Errorf("Expected 16 thumbnail loads, got %d", len(loader.names))
	}

	if !strings.HasSuffix(ui.Tabs().Items[0].Text, "(6)") {
		t.Errorf("Expected unread count in tab title, got %s", ui.Tabs().Items[0].Text)
	}
}

func TestTapNotificationRow(t *testing.T) {
	ui, records, _ := newTestRootUI(t)

	rows := ui.List(view.TabNotifications)
	test.Tap(rows[2].Button())

	after := ui.List(view.TabNotifications)
	if len(after) != 6 {
		t.Fatalf("Expected 6 rows after re-render, got %d", len(after))
	}
	if countBadges(after) != 5 {
		t.Errorf("Expected 5 unread indicators, got %d", countBadges(after))
	}
	if after[2].HasBadge() {
		t.Error("Expected 코딩 동아리 row to have no indicator")
	}
	if !records.Notifications()[2].Read {
		t.Error("Expected record to be marked read")
	}

	details := ui.Details()
	if len(details) != 1 {
		t.Fatalf("Expected one detail window, got %d", len(details))
	}
	if details[0].Title() != "코딩 동아리" || details[0].Body() != "새 자료가 등록되었습니다" {
		t.Errorf("Unexpected detail window %s / %s", details[0].Title(), details[0].Body())
	}

	if !strings.HasSuffix(ui.Tabs().Items[0].Text, "(5)") {
		t.Errorf("Expected unread count 5 in tab title, got %s", ui.Tabs().Items[0].Text)
	}
}

func TestAllNotificationsRead(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	for i := 0; i < 6; i++ {
		test.Tap(ui.List(view.TabNotifications)[i].Button())
	}

	if countBadges(ui.List(view.TabNotifications)) != 0 {
		t.Error("Expected no unread indicators")
	}
	if ui.Tabs().Items[0].Text != "동아리 알림" {
		t.Errorf("Expected plain tab title, got %s", ui.Tabs().Items[0].Text)
	}
	if len(ui.Details()) != 6 {
		t.Errorf("Expected 6 detail windows open at once, got %d", len(ui.Details()))
	}
}

func TestDetailWindowClose(t *testing.T) {
	ui, records, _ := newTestRootUI(t)

	test.Tap(ui.List(view.TabNotifications)[0].Button())
	dw := ui.Details()[0]
	if dw.IsClosed() {
		t.Fatal("Expected detail window to be open")
	}

	test.Tap(dw.CloseButton())
	if !dw.IsClosed() {
		t.Error("Expected close button to dismiss the window")
	}
	if !records.Notifications()[0].Read {
		t.Error("Closing the detail window must not revert the read flag")
	}
}

func TestTapResourceAndClubRows(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	test.Tap(ui.List(view.TabResources)[1].Button())
	test.Tap(ui.List(view.TabMyPage)[0].Button())

	details := ui.Details()
	if len(details) != 2 {
		t.Fatalf("Expected 2 detail windows, got %d", len(details))
	}
	if details[0].Title() != "동영상" || details[0].Body() != "토론발표 영상\n업로드 | 3일 전" {
		t.Errorf("Unexpected resource detail %s / %q", details[0].Title(), details[0].Body())
	}
	if details[1].Title() != "그림 동아리" || details[1].Body() != "그림 동아리 상세 정보" {
		t.Errorf("Unexpected club detail %s / %q", details[1].Title(), details[1].Body())
	}
}

func TestFilterButtons(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	if len(ui.filterButtons) != 4 {
		t.Fatalf("Expected 4 filter buttons, got %d", len(ui.filterButtons))
	}

	test.Tap(ui.filterButtons[model.CategoryFavorites])
	rows := ui.List(view.TabMyPage)
	if len(rows) != 2 || rows[0].Label() != "발표 동아리" || rows[1].Label() != "베이킹 동아리" {
		t.Errorf("Unexpected rows for %s", model.CategoryFavorites)
	}
	if ui.filterButtons[model.CategoryFavorites].Importance == ui.filterButtons[model.CategoryAll].Importance {
		t.Error("Expected selected filter to be highlighted")
	}

	test.Tap(ui.filterButtons[model.CategoryAll])
	if len(ui.List(view.TabMyPage)) != 6 {
		t.Errorf("Expected 6 rows for ALL, got %d", len(ui.List(view.TabMyPage)))
	}
}

func TestSearchEntry(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	test.Type(ui.searchEntry, "베이킹")
	rows := ui.List(view.TabMyPage)
	if len(rows) != 1 || rows[0].Label() != "베이킹 동아리" {
		t.Errorf("Expected only 베이킹 동아리 after search, got %d rows", len(rows))
	}
}

func TestRenderListIsIdempotent(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	for i := 0; i < 3; i++ {
		ui.Presenter().RenderAll()
	}
	if len(ui.List(view.TabNotifications)) != 6 {
		t.Errorf("Expected 6 rows after repeated renders, got %d", len(ui.List(view.TabNotifications)))
	}
}

func TestSettingsSavedUpdatesLoader(t *testing.T) {
	ui, _, loader := newTestRootUI(t)

	dir := t.TempDir()
	ui.settings.SetAssetDirectory(dir)
	before := len(loader.names)
	ui.onSettingsSaved()

	if loader.dir != dir {
		t.Errorf("Expected loader dir %s, got %s", dir, loader.dir)
	}
	if len(loader.names) != before+16 {
		t.Errorf("Expected every list to be re-rendered, got %d new loads", len(loader.names)-before)
	}
}
