package identity

import (
	"testing"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
)

func TestResolveNativeKeyWins(t *testing.T) {
	rec := entity.RawRecord{
		Platform: constants.PlatformLH,
		Extras:   entity.PlatformExtras{Platform: constants.PlatformLH, PanID: "20000569"},
	}
	id := Resolve(rec, entity.NormalizedFields{Title: "행복주택 모집공고"}, "서울 강남구 자곡동")
	if id != "lh:20000569" {
		t.Errorf("id = %q, want lh:20000569", id)
	}
	if !IsNative(id) {
		t.Error("native id not recognized")
	}
}

func TestCompositeHashDeterministic(t *testing.T) {
	start := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	a := CompositeHash(constants.PlatformSH, "서울 강남구 자곡동", "행복주택 모집공고", &start)
	b := CompositeHash(constants.PlatformSH, "서울 강남구 자곡동", "행복주택 모집공고", &start)
	if a != b {
		t.Errorf("hash not deterministic: %q vs %q", a, b)
	}
	if len(a) != HashIDLen {
		t.Errorf("len = %d, want %d", len(a), HashIDLen)
	}
	if IsNative(a) {
		t.Error("hash id misdetected as native")
	}
}

func TestCompositeHashIgnoresTitleNoise(t *testing.T) {
	a := CompositeHash(constants.PlatformSH, "서울 강남구", "행복주택 모집공고", nil)
	b := CompositeHash(constants.PlatformSH, "서울 강남구", "[정정공고] 행복주택  모집공고!!", nil)
	if a != b {
		t.Error("punctuation/whitespace variance must not change the hash")
	}
}

func TestCompositeHashSensitivity(t *testing.T) {
	start := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	base := CompositeHash(constants.PlatformSH, "서울 강남구", "행복주택 모집공고", &start)

	if CompositeHash(constants.PlatformLH, "서울 강남구", "행복주택 모집공고", &start) == base {
		t.Error("platform must affect the hash")
	}
	if CompositeHash(constants.PlatformSH, "서울 서초구", "행복주택 모집공고", &start) == base {
		t.Error("address must affect the hash")
	}
	if CompositeHash(constants.PlatformSH, "서울 강남구", "행복주택 모집공고", nil) == base {
		t.Error("apply_start must affect the hash")
	}
}
