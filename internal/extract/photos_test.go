package extract

import (
	"errors"
	"fmt"
	"testing"

	"listing-scraper/internal/dom"
)

const cdn = "photos.zillowstatic.com"

func cdnURL(name string) string {
	return fmt.Sprintf("https://%s/fp/%s.jpg", cdn, name)
}

func TestCollectPhotos_FilterAndDedup(t *testing.T) {
	q := &fakeQuerier{
		results: map[string][]dom.Element{
			"picture img": {
				imgEl(cdnURL("a")),
				imgEl("https://www.zillowstatic.com/logo.png"),
				imgEl(""),
				fakeElement{},
			},
			"gallery img": {imgEl(cdnURL("a")), imgEl(cdnURL("b"))},
		},
	}

	got := CollectPhotos(q, []string{"picture img", "gallery img"}, cdn, 3)
	want := []string{cdnURL("a"), cdnURL("b")}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("CollectPhotos() = %v, want %v", got, want)
	}
}

func TestCollectPhotos_StopsAtLimit(t *testing.T) {
	q := &fakeQuerier{
		results: map[string][]dom.Element{
			"first":  {imgEl(cdnURL("a")), imgEl(cdnURL("b"))},
			"second": {imgEl(cdnURL("b")), imgEl(cdnURL("c")), imgEl(cdnURL("d"))},
			"third":  {imgEl(cdnURL("e"))},
		},
	}

	got := CollectPhotos(q, []string{"first", "second", "third"}, cdn, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 photos, got %v", got)
	}
	if got[2] != cdnURL("c") {
		t.Errorf("expected selector order to decide, got %v", got)
	}
	for _, c := range q.calls {
		if c == "third" {
			t.Error("selectors after the cap must not be queried")
		}
	}
}

func TestCollectPhotos_SkipsFailingSelector(t *testing.T) {
	q := &fakeQuerier{
		results: map[string][]dom.Element{"ok": {imgEl(cdnURL("a"))}},
		errs:    map[string]error{"bad": errors.New("invalid selector")},
	}

	got := CollectPhotos(q, []string{"bad", "ok"}, cdn, 3)
	if len(got) != 1 || got[0] != cdnURL("a") {
		t.Errorf("CollectPhotos() = %v", got)
	}
}

func TestCollectPhotos_LazySource(t *testing.T) {
	q := &fakeQuerier{
		results: map[string][]dom.Element{
			"img": {fakeElement{attrs: map[string]string{"data-src": cdnURL("lazy")}}},
		},
	}

	got := CollectPhotos(q, []string{"img"}, cdn, 3)
	if len(got) != 1 || got[0] != cdnURL("lazy") {
		t.Errorf("CollectPhotos() = %v", got)
	}
}

func TestCollectPhotos_NeverNil(t *testing.T) {
	if got := CollectPhotos(&fakeQuerier{}, nil, cdn, 3); got == nil || len(got) != 0 {
		t.Errorf("CollectPhotos() = %#v, want empty non-nil slice", got)
	}
}

func TestCollectPhotos_NoDuplicatesUnderOverlap(t *testing.T) {
	var many []dom.Element
	for i := 0; i < 10; i++ {
		many = append(many, imgEl(cdnURL("same")))
	}
	q := &fakeQuerier{results: map[string][]dom.Element{"a": many, "b": many}}

	got := CollectPhotos(q, []string{"a", "b"}, cdn, 3)
	if len(got) != 1 {
		t.Errorf("expected a single deduplicated photo, got %v", got)
	}
}
