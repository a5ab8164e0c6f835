package stwoverifier

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"

	"github.com/schollz/progressbar/v3"

	"github.com/neotheprogramist/stwo-sol-verifier/stark"
)

// ReadProofFixture loads a proof dump produced by the prover. With an empty
// path it falls back to the cached reference fixture, downloading it on a
// missing or corrupt cache.
func ReadProofFixture(fixturePath string) (*stark.ProofData, error) {
	if fixturePath != "" {
		f, err := os.Open(fixturePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return stark.DecodeProofData(f)
	}

	cached := path.Join(DATA_CACHE_DIR, FIXTURE_FILE)
	raw, err := os.ReadFile(cached)
	sum := sha256.Sum256(raw)
	if err != nil || hex.EncodeToString(sum[:]) != FIXTURE_HASH {
		log.Println("local proof fixture cache not found; downloading ...")
		if raw, err = download_fixture(cached); err != nil {
			return nil, err
		}
		sum = sha256.Sum256(raw)
		if hex.EncodeToString(sum[:]) != FIXTURE_HASH {
			return nil, fmt.Errorf("fixture checksum mismatch: %x", sum)
		}
	}
	return stark.DecodeProofData(bytes.NewReader(raw))
}

func download_fixture(cached string) ([]byte, error) {
	resp, err := http.Get(FIXTURE_DOWNLOAD_URL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	bar := progressbar.DefaultBytes(resp.ContentLength, "Downloading proof fixture")
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.Body); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(path.Dir(cached), 0o755); err != nil {
		return nil, err
	}
	raw := buf.Bytes()
	return raw, os.WriteFile(cached, raw, 0o644)
}
