package ui

// Texts holds the UI strings. The app ships a single language.
type Texts struct {
	texts map[string]string
}

// Text keys
const (
	KeyAppTitle          = "app_title"
	KeyTabNotifications  = "tab_notifications"
	KeyTabResources      = "tab_resources"
	KeyTabMyPage         = "tab_mypage"
	KeyClose             = "close"
	KeySearchPlaceholder = "search_placeholder"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyAssetDirectory    = "asset_directory"
	KeyThumbnailSize     = "thumbnail_size"
	KeyDetailWrapWidth   = "detail_wrap_width"
	KeySeedFile          = "seed_file"
	KeySeedFileHint      = "seed_file_hint"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidDirectory  = "invalid_directory"
)

// NewTexts creates the string table
func NewTexts() *Texts {
	return &Texts{
		texts: map[string]string{
			KeyAppTitle:          "동아리 앱",
			KeyTabNotifications:  "동아리 알림",
			KeyTabResources:      "동아리 자료실",
			KeyTabMyPage:         "마이페이지",
			KeyClose:             "닫기",
			KeySearchPlaceholder: "동아리 이름 검색",
			KeySettings:          "설정",
			KeyFile:              "파일",
			KeyAssetDirectory:    "이미지 폴더",
			KeyThumbnailSize:     "썸네일 크기",
			KeyDetailWrapWidth:   "상세 창 줄바꿈 너비",
			KeySeedFile:          "데이터 파일 (YAML)",
			KeySeedFileHint:      "비워 두면 기본 데이터 사용, 다음 실행부터 적용",
			KeySave:              "저장",
			KeyCancel:            "취소",
			KeyBrowse:            "찾아보기",
			KeySettingsSaved:     "설정이 저장되었습니다",
			KeyInvalidDirectory:  "폴더를 찾을 수 없습니다",
		},
	}
}

// GetText returns the text for key, or the key itself if it is unknown
func (t *Texts) GetText(key string) string {
	if text, found := t.texts[key]; found {
		return text
	}
	return key
}
