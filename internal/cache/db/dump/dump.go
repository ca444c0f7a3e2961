// Package dump persists cached images to a single file on close and restores
// them on start. The file is a sequence of frames:
//
//	[len u32][xxh3 u64][record]
//	record = [url len u16][url][createdAt i64][accessCount i64][payload]
//
// All integers are little endian.
package dump

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/Borislavv/go-image-cache/internal/cache/db/model"
	"github.com/Borislavv/go-image-cache/internal/shared/bytes"
	"github.com/rs/zerolog"
)

var (
	ErrDumpNotEnabled = errors.New("persistence mode is not enabled")
	ErrCorruptRecord  = errors.New("corrupt dump record")
)

const (
	frameHeaderLen  = 12
	recordHeaderLen = 2 + 8 + 8
	maxFrameLen     = 1 << 30
)

// Source is walked when dumping.
type Source interface {
	Walk(ctx context.Context, fn func(e *model.Entry) bool)
}

// Sink receives restored entries. It may reject them (e.g. already expired).
type Sink interface {
	Restore(e *model.Entry) bool
}

type Dumper interface {
	Dump(ctx context.Context, src Source) error
	Load(ctx context.Context, dst Sink) error
}

type Dump struct {
	cfg    *config.PersistenceCfg
	logger *zerolog.Logger
}

func New(cfg *config.PersistenceCfg, logger *zerolog.Logger) *Dump {
	return &Dump{cfg: cfg, logger: logger}
}

// Path is where the dump file lives.
func (d *Dump) Path() string {
	name := d.cfg.Name + ".dump"
	if d.cfg.Gzip {
		name += ".gz"
	}
	return filepath.Join(d.cfg.Dir, name)
}

func (d *Dump) Dump(ctx context.Context, src Source) error {
	if !d.cfg.Enabled() {
		return ErrDumpNotEnabled
	}
	start := time.Now()

	if err := os.MkdirAll(d.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("create dump dir: %w", err)
	}

	name := d.Path()
	tmp := name + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	defer func() { _ = os.Remove(tmp) }()

	var (
		writer io.Writer = f
		gw     *gzip.Writer
	)
	if d.cfg.Gzip {
		gw = gzip.NewWriter(f)
		writer = gw
	}
	bw := bufio.NewWriterSize(writer, 512*1024)

	var written int
	src.Walk(ctx, func(e *model.Entry) bool {
		if err = writeFrame(bw, e); err != nil {
			return false
		}
		written++
		return true
	})
	if err == nil {
		err = ctx.Err()
	}
	if err == nil {
		err = bw.Flush()
	}
	if err == nil && gw != nil {
		err = gw.Close()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write dump %s: %w", tmp, err)
	}
	if err = os.Rename(tmp, name); err != nil {
		return fmt.Errorf("rename dump %s: %w", tmp, err)
	}

	d.logger.Info().
		Int("written", written).
		Str("file", name).
		Str("elapsed", time.Since(start).String()).
		Msg("dumping finished")
	return nil
}

// Load restores entries from the dump file. A missing file is reported with os.ErrNotExist.
// Frames with a checksum mismatch are skipped; a truncated file stops loading.
func (d *Dump) Load(ctx context.Context, dst Sink) error {
	if !d.cfg.Enabled() {
		return ErrDumpNotEnabled
	}
	start := time.Now()
	name := d.Path()

	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open dump: %w", err)
	}
	defer func() { _ = f.Close() }()

	var reader io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("open gzip dump %s: %w", name, err)
		}
		defer func() { _ = gzr.Close() }()
		reader = gzr
	}

	var (
		br       = bufio.NewReaderSize(reader, 512*1024)
		entries  []*model.Entry
		failures int
		readErr  error
	)
	for ctx.Err() == nil {
		e, err := readFrame(br)
		if errors.Is(err, io.EOF) {
			break
		} else if errors.Is(err, ErrCorruptRecord) {
			d.logger.Warn().Err(err).Str("file", name).Msg("skipping dump record")
			failures++
			continue
		} else if err != nil {
			readErr = err
			break
		}
		entries = append(entries, e)
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	// oldest first, so restored entries keep their relative insertion order
	slices.SortFunc(entries, func(a, b *model.Entry) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	var restored int
	for _, e := range entries {
		if dst.Restore(e) {
			restored++
		}
	}

	d.logger.Info().
		Int("restored", restored).
		Int("read", len(entries)).
		Int("fails", failures).
		Str("elapsed", time.Since(start).String()).
		Msg("restoring dump")

	if readErr != nil {
		return fmt.Errorf("read dump %s: %w", name, readErr)
	}
	return nil
}

func writeFrame(w io.Writer, e *model.Entry) error {
	key, payload := e.Key(), e.Payload()
	if len(key) > 0xFFFF {
		return fmt.Errorf("%w: url of %d bytes", ErrCorruptRecord, len(key))
	}

	record := make([]byte, recordHeaderLen+len(key)+len(payload))
	binary.LittleEndian.PutUint16(record[0:2], uint16(len(key)))
	n := 2 + copy(record[2:], key)
	binary.LittleEndian.PutUint64(record[n:], uint64(e.CreatedAtUnixNano()))
	binary.LittleEndian.PutUint64(record[n+8:], uint64(e.AccessCount()))
	copy(record[n+16:], payload)

	var header [frameHeaderLen]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(len(record)))
	binary.LittleEndian.PutUint64(header[4:12], bytes.Checksum(record))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(record)
	return err
}

func readFrame(r io.Reader) (*model.Entry, error) {
	var header [frameHeaderLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("truncated frame header: %w", err)
		}
		return nil, err
	}

	size := binary.LittleEndian.Uint32(header[0:4])
	if size < recordHeaderLen || size > maxFrameLen {
		return nil, fmt.Errorf("frame of %d bytes: %w", size, io.ErrUnexpectedEOF)
	}
	record := make([]byte, size)
	if _, err := io.ReadFull(r, record); err != nil {
		return nil, fmt.Errorf("truncated frame: %w", io.ErrUnexpectedEOF)
	}
	if bytes.Checksum(record) != binary.LittleEndian.Uint64(header[4:12]) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptRecord)
	}

	keyLen := int(binary.LittleEndian.Uint16(record[0:2]))
	if recordHeaderLen+keyLen > len(record) {
		return nil, fmt.Errorf("%w: url overflows record", ErrCorruptRecord)
	}
	key := string(record[2 : 2+keyLen])
	n := 2 + keyLen
	createdAt := int64(binary.LittleEndian.Uint64(record[n:]))
	accessCount := int64(binary.LittleEndian.Uint64(record[n+8:]))
	payload := record[n+16:]

	e := model.NewEntry(key, payload, time.Unix(0, createdAt))
	e.SetAccessCount(max(accessCount, 1))
	return e, nil
}
