// Command scsp2json converts a directory of compiled skeleton-animation
// containers into portable JSON documents, optionally unwrapping an LZ4
// envelope first and rewriting atlas files alongside them.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/himeope/scsp2json/atlas"
	"github.com/himeope/scsp2json/envelope"
	"github.com/himeope/scsp2json/errs"
	"github.com/himeope/scsp2json/scsp"
)

func main() {
	skipAtlas := flag.Bool("skip-atlas", false, "skip rewriting .atlas files' .sct extension to .png")
	lz4 := flag.Bool("lz4", false, "unwrap the LZ4 envelope before decoding; writes .decompressed files")
	bigEndian := flag.Bool("big-endian", false, "treat envelope block headers as big-endian")
	ext := flag.String("ext", "scsp", "file extension to convert (without the leading dot)")
	flag.Parse()

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	if err := run(dir, *skipAtlas, *lz4, *bigEndian, *ext); err != nil {
		log.Fatal(err)
	}
}

func run(dir string, skipAtlas, unwrapLZ4, bigEndian bool, ext string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", dir)
	}

	if !skipAtlas {
		rewriteAtlasFiles(dir)
	}

	if unwrapLZ4 {
		if err := unwrapLZ4Files(dir, bigEndian); err != nil {
			return err
		}
		ext = "decompressed"
	}

	return convertFiles(dir, ext)
}

func rewriteAtlasFiles(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".atlas") {
			return nil
		}

		if err := atlas.RewriteSecondLine(path); err != nil {
			log.Printf("atlas: %s: %v", path, err)
		}

		return nil
	})
}

func unwrapLZ4Files(dir string, bigEndian bool) error {
	var opts []envelope.Option
	if bigEndian {
		opts = append(opts, envelope.WithBigEndian())
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".scsp") {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		result, decErr := envelope.Decode(f, opts...)
		f.Close()
		if decErr != nil {
			log.Printf("lz4: %s: %v", path, decErr)

			return nil
		}
		for _, w := range result.Warnings {
			log.Printf("lz4: %s: %v", path, w)
		}

		return os.WriteFile(path+".decompressed", result.Data, 0o644)
	})
}

func convertFiles(dir, ext string) error {
	ext = "." + strings.TrimPrefix(ext, ".")

	var targets []string
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			targets = append(targets, path)
		}

		return nil
	}); err != nil {
		return err
	}

	if len(targets) == 0 {
		log.Printf("no %s files found under %s", ext, dir)

		return nil
	}

	log.Printf("found %d %s files", len(targets), ext)

	var failed []error
	for _, path := range targets {
		if err := convertFile(path, ext); err != nil {
			failed = append(failed, errs.Wrap(path, "", err))
			log.Printf("failed: %v", failed[len(failed)-1])

			continue
		}
		log.Printf("converted: %s", path)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed to convert", len(failed), len(targets))
	}

	return nil
}

func convertFile(path, ext string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc, err := scsp.Decode(data)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	log.Printf("fingerprint: %s: %016x", path, scsp.Fingerprint(doc))

	base := strings.TrimSuffix(filepath.Base(path), ext)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	outPath := filepath.Join(filepath.Dir(path), base+".json")

	return os.WriteFile(outPath, out, 0o644)
}
