package xfab

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/xfab/chr"
)

// Scanner walks directory trees of tile assets and records what it finds
// in the asset catalog.
type Scanner struct {
	db     *AssetDB
	logger *log.Logger
}

// NewScanner returns a scanner recording into db.
func NewScanner(db *AssetDB, logger *log.Logger) *Scanner {
	return &Scanner{
		db:     db,
		logger: logger,
	}
}

func (s *Scanner) findFiles(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			// Ignore anything too big to be a tile sheet
			if info.Size() > 16<<20 {
				return nil
			}

			switch strings.ToLower(filepath.Ext(file)) {
			case ".chr", ".png":
			default:
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

// measure works out the total and unique tile counts of one asset file.
func measure(file string) (tiles, unique int, err error) {
	if strings.ToLower(filepath.Ext(file)) != ".png" {
		info, err := os.Stat(file)
		if err != nil {
			return 0, 0, err
		}
		n := int(info.Size()) / chr.TileBytes
		return n, n, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return 0, 0, err
	}
	m, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	p, err := chr.Encode(m)
	if err != nil {
		return 0, 0, err
	}

	for _, i := range p.Indices {
		if i != 0xffff && int(i)+1 > unique {
			unique = int(i) + 1
		}
	}
	return p.Tiles(), unique, nil
}

func (s *Scanner) fileWorker(ctx context.Context, in <-chan string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			crc, err := crcFile(file)
			if err != nil {
				errc <- err
				return
			}

			tiles, unique, err := measure(file)
			if err != nil {
				// Not every .png under a project tree is a tile sheet.
				s.logger.Printf("Skipping \"%s\": %v\n", file, err)
				continue
			}

			name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			if err := s.db.Add(crc, Asset{
				Name:        name,
				Path:        file,
				Tiles:       tiles,
				UniqueTiles: unique,
			}); err != nil {
				errc <- err
				return
			}

			select {
			case <-ctx.Done():
				return
			default:
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks the tree rooted at path and catalogs every tile asset found.
func (s *Scanner) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var errcList []<-chan error

	files, errc := s.findFiles(ctx, dir)
	errcList = append(errcList, errc)

	for i := 0; i < 10; i++ {
		errcList = append(errcList, s.fileWorker(ctx, files))
	}

	return waitForPipeline(errcList...)
}
