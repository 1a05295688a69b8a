package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/wordsieve/wordsieve/internal/utils"
)

// A locale's data directory may contain:
//
//	dict_0001.bin ...  chunked binary unigrams (count header, len/word/rank)
//	words.txt          plain "word frequency" lines
//	bigrams.txt        "prev word weight" lines
//	offensive.txt      one word per line
//
// All files are optional; an empty or missing directory yields an empty Set.

// LoadDir reads every dictionary file for one locale directory into a new
// Set. Unreadable individual files are logged and skipped; only a failure
// to scan the directory itself is returned as an error.
func LoadDir(dirPath string) (*Set, error) {
	set := NewSet()

	chunks, err := chunkFiles(dirPath)
	if err != nil {
		return set, err
	}
	for _, filename := range chunks {
		if err := loadChunkFile(set, filename); err != nil {
			log.Errorf("Failed to load chunk %s: %v", filename, err)
		}
	}

	if path := filepath.Join(dirPath, "words.txt"); utils.FileExists(path) {
		if err := loadWordsFile(set, path); err != nil {
			log.Errorf("Failed to load %s: %v", path, err)
		}
	}
	if path := filepath.Join(dirPath, "bigrams.txt"); utils.FileExists(path) {
		if err := loadBigramsFile(set, path); err != nil {
			log.Errorf("Failed to load %s: %v", path, err)
		}
	}
	if path := filepath.Join(dirPath, "offensive.txt"); utils.FileExists(path) {
		if err := loadOffensiveFile(set, path); err != nil {
			log.Errorf("Failed to load %s: %v", path, err)
		}
	}

	log.Debugf("Loaded %s words from %s", utils.FormatWithCommas(set.Size()), dirPath)
	return set, nil
}

// chunkFiles returns the chunk filenames in the directory, sorted by ID.
func chunkFiles(dirPath string) ([]string, error) {
	pattern := filepath.Join(dirPath, "dict_*.bin")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for chunk files: %w", err)
	}

	type chunk struct {
		id   int
		name string
	}
	var chunks []chunk
	for _, file := range files {
		basename := filepath.Base(file)
		idStr := strings.TrimSuffix(strings.TrimPrefix(basename, "dict_"), ".bin")
		if id, err := strconv.Atoi(idStr); err == nil {
			chunks = append(chunks, chunk{id: id, name: file})
		}
	}
	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].id < chunks[j].id
	})

	names := make([]string, len(chunks))
	for i, c := range chunks {
		names[i] = c.name
	}
	return names, nil
}

// loadChunkFile reads one binary chunk into the set. Layout is an int32
// entry count followed by uint16 word length, word bytes, and a uint16
// rank where rank 1 is the most frequent word. Ranks are stored inverted
// so higher numbers mean more frequent.
func loadChunkFile(set *Set, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open chunk file %s: %w", filename, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	var totalEntries int32
	if err := binary.Read(reader, binary.LittleEndian, &totalEntries); err != nil {
		return fmt.Errorf("failed to read chunk header: %w", err)
	}

	for count := 0; count < int(totalEntries); count++ {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("failed to read word length: %w", err)
		}

		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return fmt.Errorf("failed to read word: %w", err)
		}

		var rank uint16
		if err := binary.Read(reader, binary.LittleEndian, &rank); err != nil {
			return fmt.Errorf("failed to read rank: %w", err)
		}

		// rank 1 becomes 65535, rank 2 becomes 65534, and so on
		score := int(65535 - rank + 1)
		set.AddWord(string(wordBytes), score)
	}
	return nil
}

// loadWordsFile reads "word frequency" lines. Lines without a parseable
// frequency are skipped.
func loadWordsFile(set *Set, filename string) error {
	return eachLine(filename, func(line string) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return
		}
		freq, err := strconv.Atoi(fields[1])
		if err != nil || freq <= 0 {
			return
		}
		set.AddWord(fields[0], freq)
	})
}

// loadBigramsFile reads "prev word weight" lines.
func loadBigramsFile(set *Set, filename string) error {
	return eachLine(filename, func(line string) {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return
		}
		weight, err := strconv.Atoi(fields[2])
		if err != nil || weight <= 0 {
			return
		}
		set.AddBigram(fields[0], fields[1], weight)
	})
}

func loadOffensiveFile(set *Set, filename string) error {
	return eachLine(filename, func(line string) {
		word := strings.TrimSpace(line)
		if word != "" && !strings.HasPrefix(word, "#") {
			set.MarkOffensive(word)
		}
	})
}

func eachLine(filename string, fn func(string)) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}
