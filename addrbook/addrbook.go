// Package addrbook keeps a local, file-backed book of labeled contract
// addresses (the pools, backstops, and oracles an operator talks to often).
//
// The book is a single JSON file, local-first with no external dependencies.
// Every address written through this package is validated and canonicalized
// by the strkey codec, so a book on disk never contains a malformed entry.
package addrbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/christopherkarani/blendv3-sub002/strkey"
)

var ErrNotFound = errors.New("addrbook: entry not found")

// Entry is one labeled contract address. Address is always the canonical
// uppercase StrKey form.
type Entry struct {
	Address string `json:"address"`
	Label   string `json:"label"`
	Notes   string `json:"notes,omitempty"`
}

// Book represents an address book stored at a fixed path.
type Book struct {
	Path string
}

// DefaultPath returns ~/.blend/addrbook.json.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".blend", "addrbook.json"), nil
}

// Open returns a Book at path, or at DefaultPath when path is empty. The
// file is created lazily on the first write.
func Open(path string) (*Book, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return &Book{Path: path}, nil
}

// Put adds or replaces the entry for address. The address may be given in
// either case; it is stored canonically. Invalid addresses are rejected with
// the codec's structured error.
func (b *Book) Put(address, label, notes string) error {
	canon, err := canonicalize(address)
	if err != nil {
		return err
	}
	if strings.TrimSpace(label) == "" {
		return errors.New("addrbook: label cannot be empty")
	}
	entries, err := b.load()
	if err != nil {
		return err
	}
	entries[canon] = Entry{Address: canon, Label: label, Notes: notes}
	return b.save(entries)
}

// Lookup returns the entry for address, accepting either case.
func (b *Book) Lookup(address string) (Entry, error) {
	canon, err := canonicalize(address)
	if err != nil {
		return Entry{}, err
	}
	entries, err := b.load()
	if err != nil {
		return Entry{}, err
	}
	e, ok := entries[canon]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

// Remove deletes the entry for address. Removing an absent entry is an
// ErrNotFound, not a no-op, so callers can surface typos.
func (b *Book) Remove(address string) error {
	canon, err := canonicalize(address)
	if err != nil {
		return err
	}
	entries, err := b.load()
	if err != nil {
		return err
	}
	if _, ok := entries[canon]; !ok {
		return ErrNotFound
	}
	delete(entries, canon)
	return b.save(entries)
}

// List returns all entries sorted by label, then address.
func (b *Book) List() ([]Entry, error) {
	entries, err := b.load()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].Address < out[j].Address
	})
	return out, nil
}

// canonicalize round-trips the address through the codec so the stored form
// is always the canonical uppercase StrKey.
func canonicalize(address string) (string, error) {
	hexHash, err := strkey.Decode(strings.TrimSpace(address))
	if err != nil {
		return "", err
	}
	return strkey.Encode(hexHash)
}

func (b *Book) load() (map[string]Entry, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]Entry{}, nil
		}
		return nil, err
	}
	var list []Entry
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("addrbook: corrupt book at %s: %w", b.Path, err)
	}
	entries := make(map[string]Entry, len(list))
	for _, e := range list {
		canon, cerr := canonicalize(e.Address)
		if cerr != nil {
			return nil, fmt.Errorf("addrbook: invalid address %q in %s: %w", e.Address, b.Path, cerr)
		}
		e.Address = canon
		entries[canon] = e
	}
	return entries, nil
}

func (b *Book) save(entries map[string]Entry) error {
	list := make([]Entry, 0, len(entries))
	for _, e := range entries {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Address < list[j].Address })

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(b.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(b.Path, append(data, '\n'), 0o600)
}
