package model

// Resource is an entry in the club resource library (photo, video, file, code)
type Resource struct {
	Kind     string `yaml:"type"`
	Title    string `yaml:"title"`
	IconPath string `yaml:"icon"`
}

// Club is a club entry listed on the member page
type Club struct {
	Name      string `yaml:"name"`
	ImagePath string `yaml:"image"`
}

// DetailText returns the body shown in the club detail window
func (c Club) DetailText() string {
	return c.Name + " 상세 정보"
}
