package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// literalSeeds covers every branch of the literal grammar, valid or not.
var literalSeeds = []string{
	"0", "-0", "+7", "  42  ", "1_000_000", "1__0", "_1", "1_",
	"0x1F", "0X_ff", "0o17", "0b1010", "0b102", "0o9", "0x", "0b",
	"00", "007", "123456789012345678901234567890",
	"-99999999999999999999999999999999999999",
	"1.5", ".5", "5.", "1e10", "1E-5", "1e", "1e+", "2.5e-324",
	"1.7976931348623157e308", "1e999", "-1e-999", "4.9e-324",
	"inf", "-INF", "infinity", "nan", "-nan", "infj",
	"1j", "2.5J", "1+2j", "-1.5-2j", "nanj", "3+", "j",
	"1.2.3", "١٢٣", "1\x00", "\t9\n",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range literalSeeds {
		f.Add([]byte(s))
	}
	f.Add([]byte("x = 0x1F + 1.5e3j\nif y > 0b101: print(1_000)\n"))
	f.Add([]byte("s = '日本' + 0b2  # 👍🏽\n"))
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.py файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".py" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		f.Logf("walk testdata: %v", err)
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
