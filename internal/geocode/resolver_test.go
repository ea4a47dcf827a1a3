package geocode

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/internal/common"
)

// fakeClient scripts geocode outcomes and counts outbound calls.
type fakeClient struct {
	calls   atomic.Int64
	results map[string]Result
	errs    []error // consumed first, one per call
	mu      sync.Mutex
}

func (f *fakeClient) Geocode(_ context.Context, address string) (Result, error) {
	f.calls.Add(1)
	f.mu.Lock()
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		f.mu.Unlock()
		return Result{}, err
	}
	f.mu.Unlock()
	if res, ok := f.results[address]; ok {
		return res, nil
	}
	return Result{Found: false}, nil
}

func newResolver(c Client) *Resolver {
	return NewResolver(c, NewCache(), 3, time.Millisecond, nil)
}

func TestResolveSuccess(t *testing.T) {
	fc := &fakeClient{results: map[string]Result{
		"서울특별시 강남구 자곡동 101": {AddrStd: "서울 강남구 자곡동 101", Lat: 37.47, Lng: 127.10, Found: true},
	}}
	r := newResolver(fc)

	res, err := r.Resolve(context.Background(), "서울시  강남구  자곡동 101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Degraded {
		t.Error("should not be degraded")
	}
	if res.AddrStd != "서울 강남구 자곡동 101" {
		t.Errorf("AddrStd = %q", res.AddrStd)
	}
	if res.Lat == nil || *res.Lat != 37.47 {
		t.Errorf("Lat = %v", res.Lat)
	}
}

func TestResolveCachesPerNormalizedAddress(t *testing.T) {
	fc := &fakeClient{results: map[string]Result{}}
	r := newResolver(fc)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Cosmetic whitespace variants of the same address.
			_, _ = r.Resolve(context.Background(), "서울시 강남구  자곡동")
		}()
	}
	wg.Wait()

	if got := fc.calls.Load(); got != 1 {
		t.Errorf("outbound calls = %d, want 1 (single-flight per key)", got)
	}
}

func TestResolveRetriesTransient(t *testing.T) {
	fc := &fakeClient{
		errs: []error{&transientStatusError{status: 503}, &transientStatusError{status: 503}},
		results: map[string]Result{
			"서울특별시 강남구": {AddrStd: "서울 강남구", Lat: 37.5, Lng: 127.0, Found: true},
		},
	}
	r := newResolver(fc)

	res, err := r.Resolve(context.Background(), "서울시 강남구")
	if err != nil {
		t.Fatalf("should recover after retries: %v", err)
	}
	if res.Degraded {
		t.Error("should not be degraded after successful retry")
	}
	if got := fc.calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestResolveDegradesAfterExhaustedRetries(t *testing.T) {
	fc := &fakeClient{errs: []error{
		&transientStatusError{status: 503},
		&transientStatusError{status: 503},
		&transientStatusError{status: 503},
	}}
	r := newResolver(fc)

	res, err := r.Resolve(context.Background(), "서울시 강남구")
	var gerr *common.GeocodeError
	if !errors.As(err, &gerr) {
		t.Fatalf("want GeocodeError, got %v", err)
	}
	if res.AddrStd != "서울특별시 강남구" {
		t.Errorf("degraded result must keep the normalized address, got %q", res.AddrStd)
	}
	if res.Lat != nil || res.Lng != nil {
		t.Error("degraded result must have nil coordinates")
	}
	if !res.Degraded {
		t.Error("Degraded flag must be set")
	}
}

func TestResolveNoMatchIsNotAnError(t *testing.T) {
	fc := &fakeClient{results: map[string]Result{}}
	r := newResolver(fc)

	res, err := r.Resolve(context.Background(), "존재하지 않는 주소 999")
	if err != nil {
		t.Fatalf("no-match must not be an error: %v", err)
	}
	if !res.Degraded || res.Lat != nil {
		t.Errorf("no-match should degrade: %+v", res)
	}
}

func TestSameDistrict(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"서울특별시 강남구 자곡동 101", "서울특별시 강남구 자곡동 202-1", true},
		{"서울시 강남구 자곡동 101", "서울특별시 강남구 자곡동 55", true},
		{"서울특별시 강남구 자곡동", "서울특별시 서초구 방배동", false},
		{"", "서울특별시 강남구", false},
	}
	for _, tc := range cases {
		if got := SameDistrict(tc.a, tc.b); got != tc.want {
			t.Errorf("SameDistrict(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
