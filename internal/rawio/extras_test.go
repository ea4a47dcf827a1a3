package rawio

import (
	"testing"

	"github.com/daehong-lab/gonggo-pipeline/constants"
)

func newDecoder(t *testing.T) *ExtrasDecoder {
	t.Helper()
	d, err := NewExtrasDecoder()
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestExtrasDecodeKnownKeys(t *testing.T) {
	d := newDecoder(t)
	raw := `{"panId":"20000569","category":"행복주택","sigungu_code":"11680","dong":"역삼동","status":"접수중","crawl_seq":7}`
	out, err := d.Decode(constants.PlatformLH, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.PanID != "20000569" || out.CategoryLabel != "행복주택" {
		t.Errorf("extras = %+v", out)
	}
	if out.SigunguCode != "11680" || out.Dong != "역삼동" || out.NoticeStatus != "접수중" {
		t.Errorf("extras = %+v", out)
	}
	// unknown scalar keys survive in Rest, stringified
	if out.Rest["crawl_seq"] != "7" {
		t.Errorf("rest = %v", out.Rest)
	}
	if out.NativeKey() != "20000569" {
		t.Errorf("native key = %q", out.NativeKey())
	}
}

func TestExtrasDecodeEmpty(t *testing.T) {
	d := newDecoder(t)
	for _, raw := range []string{"", "{}"} {
		out, err := d.Decode(constants.PlatformSH, raw)
		if err != nil {
			t.Fatalf("empty extras must be fine: %v", err)
		}
		if out.NativeKey() != "" || out.Rest != nil {
			t.Errorf("extras = %+v", out)
		}
	}
}

func TestExtrasDecodeRejectsBadShapes(t *testing.T) {
	d := newDecoder(t)
	cases := map[string]string{
		"non-json":        "not json",
		"array":           `["a"]`,
		"numeric native":  `{"panId":20000569}`,
		"nested unknowns": `{"meta":{"a":1}}`,
	}
	for name, raw := range cases {
		if _, err := d.Decode(constants.PlatformLH, raw); err == nil {
			t.Errorf("%s: want validation error for %s", name, raw)
		}
	}
}
