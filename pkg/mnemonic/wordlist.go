package mnemonic

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"
)

// WordlistSize is the number of words in every language table.
const WordlistSize = 2048

// Language names a wordlist.
type Language string

// Supported languages.
const (
	English            Language = "english"
	Japanese           Language = "japanese"
	ChineseSimplified  Language = "chinese-simplified"
	ChineseTraditional Language = "chinese-traditional"
	French             Language = "french"
	Italian            Language = "italian"
	Spanish            Language = "spanish"
	Korean             Language = "korean"
	Czech              Language = "czech"
)

// Separator returns the string placed between words of a phrase.
func (l Language) Separator() string {
	if l == Japanese {
		return "\u3000"
	}
	return " "
}

type wordlist struct {
	words []string
	// index is keyed by the NFKD form of each word.
	index map[string]int
}

// languageOrder is also the detection priority.
var languageOrder = []Language{
	English,
	Japanese,
	ChineseSimplified,
	ChineseTraditional,
	French,
	Italian,
	Spanish,
	Korean,
	Czech,
}

var tables map[Language]*wordlist

func init() {
	sources := map[Language][]string{
		English:            wordlists.English,
		Japanese:           wordlists.Japanese,
		ChineseSimplified:  wordlists.ChineseSimplified,
		ChineseTraditional: wordlists.ChineseTraditional,
		French:             wordlists.French,
		Italian:            wordlists.Italian,
		Spanish:            wordlists.Spanish,
		Korean:             wordlists.Korean,
		Czech:              wordlists.Czech,
	}

	tables = make(map[Language]*wordlist, len(sources))
	for lang, words := range sources {
		wl, err := newWordlist(words)
		if err != nil {
			panic(fmt.Sprintf("mnemonic: %s wordlist: %v", lang, err))
		}
		tables[lang] = wl
	}
}

func newWordlist(words []string) (*wordlist, error) {
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("have %d words, want %d", len(words), WordlistSize)
	}
	wl := &wordlist{
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	for i, w := range words {
		w = strings.TrimSpace(w)
		key := norm.NFKD.String(w)
		if _, dup := wl.index[key]; dup {
			return nil, fmt.Errorf("duplicate word %q", w)
		}
		wl.words[i] = w
		wl.index[key] = i
	}
	return wl, nil
}

func lookup(lang Language) (*wordlist, error) {
	wl, ok := tables[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return wl, nil
}

// Languages returns the supported languages in detection order.
func Languages() []Language {
	out := make([]Language, len(languageOrder))
	copy(out, languageOrder)
	return out
}

// Wordlist returns a copy of the language's ordered wordlist.
func Wordlist(lang Language) ([]string, error) {
	wl, err := lookup(lang)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(wl.words))
	copy(out, wl.words)
	return out, nil
}

// Word returns the word at idx.
func Word(lang Language, idx int) (string, error) {
	wl, err := lookup(lang)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= WordlistSize {
		return "", fmt.Errorf("%w: word index %d", ErrInvalidLength, idx)
	}
	return wl.words[idx], nil
}

// WordIndex returns the index of word, compared in NFKD form.
func WordIndex(lang Language, word string) (int, bool) {
	wl, ok := tables[lang]
	if !ok {
		return 0, false
	}
	idx, ok := wl.index[norm.NFKD.String(word)]
	return idx, ok
}

// DetectLanguage returns the first language, in Languages order, whose
// wordlist contains every word of phrase.
func DetectLanguage(phrase string) (Language, error) {
	words := splitPhrase(phrase)
	if len(words) == 0 {
		return "", fmt.Errorf("%w: empty phrase", ErrUnknownLanguage)
	}
	for _, lang := range languageOrder {
		if tables[lang].containsAll(words) {
			return lang, nil
		}
	}
	return "", fmt.Errorf("%w: no wordlist contains every word", ErrUnknownLanguage)
}

// containsAll expects NFKD words.
func (wl *wordlist) containsAll(words []string) bool {
	for _, w := range words {
		if _, ok := wl.index[w]; !ok {
			return false
		}
	}
	return true
}

// splitPhrase normalizes phrase to NFKD and splits it on Unicode whitespace.
func splitPhrase(phrase string) []string {
	return strings.Fields(norm.NFKD.String(phrase))
}
