package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/intseq/internal/config"
	"github.com/san-kum/intseq/internal/seq"
)

const (
	metadataFile = "metadata.json"
	sequenceFile = "sequence.csv"
	imageFile    = "image.png"
)

type Store struct {
	baseDir string
	log     *zap.Logger
}

func New(baseDir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{baseDir: baseDir, log: log}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string              `json:"id"`
	Timestamp time.Time           `json:"timestamp"`
	Source    string              `json:"source"`
	Length    int                 `json:"length"`
	Render    config.RenderConfig `json:"render"`
	Stats     map[string]float64  `json:"stats,omitempty"`
}

// Save writes one run directory. ID and Timestamp are filled in here. A
// failed save removes the directory it created.
func (s *Store) Save(meta RunMetadata, sq seq.Sequence, img image.Image) (string, error) {
	now := time.Now()
	runDir, runID, err := s.mkRunDir(slug(meta.Render.Mode), now)
	if err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Length = len(sq)

	if err := s.writeRun(runDir, meta, sq, img); err != nil {
		if rmErr := os.RemoveAll(runDir); rmErr != nil {
			s.log.Warn("removing partial run", zap.String("id", runID), zap.Error(rmErr))
		}
		return "", fmt.Errorf("save run %s: %w", runID, err)
	}

	s.log.Debug("run saved", zap.String("id", runID), zap.Int("length", len(sq)))
	return runID, nil
}

func (s *Store) writeRun(runDir string, meta RunMetadata, sq seq.Sequence, img image.Image) error {
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return err
	}
	if err := writeSequence(filepath.Join(runDir, sequenceFile), sq); err != nil {
		return err
	}
	if img != nil {
		if err := writePNG(filepath.Join(runDir, imageFile), img); err != nil {
			return err
		}
	}
	return nil
}

// mkRunDir picks a fresh directory so concurrent saves never share one.
func (s *Store) mkRunDir(prefix string, now time.Time) (string, string, error) {
	if err := s.Init(); err != nil {
		return "", "", err
	}
	base := fmt.Sprintf("%s_%d", prefix, now.Unix())
	for n := 0; ; n++ {
		id := base
		if n > 0 {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return dir, id, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", err
		}
	}
}

func slug(mode string) string {
	m := strings.ToLower(strings.TrimSpace(mode))
	if m == "" {
		return "run"
	}
	return strings.NewReplacer(" ", "_", "-", "_").Replace(m)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSequence(path string, sq seq.Sequence) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "value"}); err != nil {
		return err
	}
	for i, v := range sq {
		if err := w.Write([]string{strconv.Itoa(i), strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns every readable run, oldest first. Directories without
// valid metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			s.log.Debug("skipping run", zap.String("dir", entry.Name()), zap.Error(err))
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadSequence(runID string) (seq.Sequence, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, sequenceFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage: %s: %w", runID, err)
	}
	if len(records) < 2 {
		return seq.Sequence{}, nil
	}

	out := make(seq.Sequence, 0, len(records)-1)
	for _, rec := range records[1:] {
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: %s: %w", runID, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Store) LoadImage(runID string) (image.Image, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, imageFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// ExportData is a run flattened into a single JSON document.
type ExportData struct {
	RunMetadata
	Sequence seq.Sequence `json:"sequence"`
}

func (s *Store) Export(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	sq, err := s.LoadSequence(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Sequence: sq})
}
