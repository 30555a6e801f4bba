package logic

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/xorpipe/internal/cipher"
	"github.com/idelchi/xorpipe/internal/config"
	"github.com/idelchi/xorpipe/internal/filter"
	"github.com/idelchi/xorpipe/internal/store"
)

// Result represents the outcome of processing a single source document.
type Result struct {
	// Input file path
	Input string

	// Encrypted and Decrypted are the written document paths.
	Encrypted string
	Decrypted string

	// Size is the combined size of both documents in bytes.
	Size int64

	// Any error that occurred during processing
	Error error
}

// RunBatch runs the file pipeline over every resolved source, one document per worker.
// stdout receives one line per processed file, stderr the errors and stats.
//
//nolint:cyclop,funlen // parallel processing pipeline with printer goroutine
func RunBatch(cfg *config.Config, logger hclog.Logger, stdout, stderr io.Writer, opts ...store.Option) (Stats, error) {
	start := time.Now()

	files, scanned, err := resolveSources(cfg)
	if err != nil {
		return Stats{}, fmt.Errorf("resolving sources: %w", err)
	}

	stats := Stats{Scanned: scanned, Excluded: scanned - len(files)}
	docs := store.New(logger, opts...)

	results := make(chan Result, len(files))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	printed := make(chan struct{})

	go func() {
		defer close(printed)

		for res := range results {
			if res.Error != nil {
				stats.Errored++

				fmt.Fprintf(stderr, "Error processing %q: %v\n", res.Input, res.Error)

				continue
			}

			stats.Processed++
			stats.TotalSize += res.Size

			if !cfg.Quiet {
				fmt.Fprintf(stdout, "Processed %q -> %q, %q\n", res.Input, res.Encrypted, res.Decrypted)
			}
		}
	}()

	for _, file := range files {
		group.Go(func() error {
			res := processSource(docs, logger, cfg, file)
			results <- res

			return res.Error
		})
	}

	err = group.Wait()

	close(results)

	<-printed

	stats.Duration = time.Since(start)

	if cfg.Stats {
		printStats(stderr, stats)
	}

	if err != nil {
		return stats, fmt.Errorf("processing sources: %w", err)
	}

	return stats, nil
}

// resolveSources merges positional and list-file sources and applies the filters.
func resolveSources(cfg *config.Config) ([]string, int, error) {
	sources := append([]string{}, cfg.Sources...)

	for _, list := range cfg.From {
		paths, err := filter.LoadList(list)
		if err != nil {
			return nil, 0, fmt.Errorf("loading sources: %w", err)
		}

		sources = append(sources, paths...)
	}

	if len(sources) == 0 {
		return nil, 0, errors.New("no sources given")
	}

	flt, err := filter.NewFilter(cfg.Include, cfg.Exclude, []string{cfg.Suffixes.Encrypt, cfg.Suffixes.Decrypt})
	if err != nil {
		return nil, 0, fmt.Errorf("compiling filters: %w", err)
	}

	files, scanned, err := filter.Resolve(sources, flt)
	if err != nil {
		return nil, scanned, fmt.Errorf("filtering sources: %w", err)
	}

	return files, scanned, nil
}

// processSource streams one source through the cipher into its encrypted document,
// then reads that document back to produce the decrypted one.
func processSource(docs *store.Store, logger hclog.Logger, cfg *config.Config, file string) Result {
	res := Result{
		Input:     file,
		Encrypted: outputPath(file, cfg.Suffixes.Encrypt),
		Decrypted: outputPath(file, cfg.Suffixes.Decrypt),
	}

	encSize, err := encryptSource(docs, cfg.Key, file, res.Encrypted)
	if err != nil {
		res.Error = err

		return res
	}

	encrypted, err := docs.ReadDocument(res.Encrypted)
	if err != nil {
		res.Error = fmt.Errorf("reading back: %w", err)

		return res
	}

	decrypted, err := cipher.Transform(encrypted.Payload, []byte(encrypted.Key))
	if err != nil {
		res.Error = fmt.Errorf("decrypting: %w", err)

		return res
	}

	decSize, err := docs.Write(res.Decrypted, docs.Stamp(encrypted.Identity, encrypted.Key, decrypted))
	if err != nil {
		res.Error = fmt.Errorf("writing decrypted document: %w", err)

		return res
	}

	logger.Debug("source processed", "input", file, "bytes", len(decrypted))

	res.Size = encSize + decSize

	return res
}

func encryptSource(docs *store.Store, key, file, outPath string) (int64, error) {
	in, err := os.Open(filepath.Clean(file))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", store.ErrOpen, file, err)
	}
	defer in.Close()

	reader := bufio.NewReader(in)

	first, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading identity: %w", err)
	}

	identity := store.ExtractIdentity(first)
	payload := io.MultiReader(strings.NewReader(first), reader)

	size, err := docs.WriteStream(outPath, docs.Stamp(identity, key, nil), payload, []byte(key))
	if err != nil {
		return 0, fmt.Errorf("writing encrypted document: %w", err)
	}

	return size, nil
}

func outputPath(filename, ext string) string {
	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
