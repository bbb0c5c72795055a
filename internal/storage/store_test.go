package storage

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/san-kum/intseq/internal/config"
	"github.com/san-kum/intseq/internal/seq"
)

func testMeta() RunMetadata {
	r := config.DefaultRender()
	r.Mode = "run and turn"
	return RunMetadata{
		Source: "test",
		Render: r,
		Stats:  map[string]float64{"mean": 2.5},
	}
}

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 2, color.RGBA{10, 20, 30, 255})
	return img
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir(), zap.NewNop())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	sq := seq.Sequence{1, 2.5, -3, 4}
	runID, err := st.Save(testMeta(), sq, testImage())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("expected id %q, got %q", runID, meta.ID)
	}
	if meta.Render.Mode != "run and turn" {
		t.Errorf("expected mode 'run and turn', got %q", meta.Render.Mode)
	}
	if meta.Length != 4 {
		t.Errorf("expected length 4, got %d", meta.Length)
	}
	if meta.Stats["mean"] != 2.5 {
		t.Errorf("expected mean 2.5, got %f", meta.Stats["mean"])
	}

	got, err := st.LoadSequence(runID)
	if err != nil {
		t.Fatalf("load sequence failed: %v", err)
	}
	if diff := cmp.Diff(sq, got); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}

	img, err := st.LoadImage(runID)
	if err != nil {
		t.Fatalf("load image failed: %v", err)
	}
	if r, g, b, _ := img.At(1, 2).RGBA(); r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir, nil)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(testMeta(), seq.Sequence{1}, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	st := New(t.TempDir(), nil)

	const n = 8
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := st.Save(testMeta(), seq.Sequence{float64(i)}, nil)
			if err != nil {
				t.Errorf("save %d failed: %v", i, err)
			}
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate run id %q", id)
		}
		seen[id] = true
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir, nil)

	runID, err := st.Save(testMeta(), seq.Sequence{1, 2}, testImage())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	for _, name := range []string{"metadata.json", "sequence.csv", "image.png"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestStoreSaveFailureRemovesRunDir(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir, nil)

	// png.Encode rejects an image with no pixels.
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := st.Save(testMeta(), seq.Sequence{1, 2}, empty); err == nil {
		t.Fatal("expected save of an empty image to fail")
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no run directories after a failed save, got %d", len(entries))
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no listed runs, got %d", len(runs))
	}
}

func TestStoreExport(t *testing.T) {
	st := New(t.TempDir(), nil)
	runID, err := st.Save(testMeta(), seq.Sequence{3, 1, 4}, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := st.Export(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.ID != runID {
		t.Errorf("expected id %q, got %q", runID, got.ID)
	}
	if diff := cmp.Diff(seq.Sequence{3, 1, 4}, got.Sequence); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
}
