package logic

import (
	"strings"
	"testing"

	"github.com/Salman534-web/WooCommerce-Enhancements/models"

	"gorm.io/datatypes"
)

func TestGenerateCustomCSSDefaults(t *testing.T) {
	s := &models.Settings{Raw: datatypes.JSONMap{}}
	css := GenerateCustomCSS(s)

	if !strings.HasPrefix(css, ":root {") || !strings.HasSuffix(css, "}") {
		t.Fatalf("css should be a :root block: %q", css)
	}
	// 没存颜色时必须落到硬编码默认值
	if !strings.Contains(css, "--my-wc-enh-cod-badge-available-bg: #e8f5e9;") {
		t.Fatalf("missing default available badge bg in %q", css)
	}
	if !strings.Contains(css, "--my-wc-enh-you-saved-color: #388E3C;") {
		t.Fatalf("missing default you-saved color in %q", css)
	}
}

func TestGenerateCustomCSSOverride(t *testing.T) {
	s := &models.Settings{Raw: datatypes.JSONMap{
		models.OptCODBadgeAvailableBg: "#123456",
	}}
	css := GenerateCustomCSS(s)

	if !strings.Contains(css, "--my-wc-enh-cod-badge-available-bg: #123456;") {
		t.Fatalf("stored color should win: %q", css)
	}
	// 其余变量照旧走默认
	if !strings.Contains(css, "--my-wc-enh-urgency-box-bg: #FFFDE7;") {
		t.Fatalf("untouched vars should keep defaults: %q", css)
	}
}

func TestStripTags(t *testing.T) {
	in := "<style>.a{color:red}</style> .b{color:blue}"
	got := StripTags(in)
	if strings.Contains(got, "<") || strings.Contains(got, ">") {
		t.Fatalf("tags not stripped: %q", got)
	}
	if !strings.Contains(got, ".b{color:blue}") {
		t.Fatalf("plain css should survive: %q", got)
	}
}
