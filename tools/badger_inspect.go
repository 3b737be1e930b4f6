package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"anonchat/domain"
	"anonchat/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Dumps the local cache of a client: the identity, the quota counters and
// the cached network address. Read-only, safe to run against a live DB dir.
func main() {
	dbPath := flag.String("db", "/tmp/anonchat", "Path to badger DB")
	prefix := flag.String("prefix", "", "Only show keys with this prefix")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Value"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				table.Append([]string{key, keyType(key), render(key, v)})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func keyType(key string) string {
	switch {
	case key == "identity":
		return "IDENTITY"
	case key == "address":
		return "ADDRESS"
	case strings.HasPrefix(key, "quota:"):
		return "QUOTA"
	default:
		return "OTHER"
	}
}

// render decodes the known document keys; counters and dates pass through
// as-is.
func render(key string, value []byte) string {
	switch {
	case key == "identity":
		var identity domain.Identity
		if err := json.Unmarshal(value, &identity); err != nil {
			return fmt.Sprintf("unreadable: %v", err)
		}
		avatar := identity.AvatarRef
		if len(avatar) > 32 {
			avatar = avatar[:32] + "..."
		}
		return fmt.Sprintf("name=%s avatar=%s address=%s", identity.DisplayName, avatar, identity.SourceAddress)
	case key == "address":
		var cached repositories.CachedAddress
		if err := json.Unmarshal(value, &cached); err != nil {
			return fmt.Sprintf("unreadable: %v", err)
		}
		return fmt.Sprintf("%s (expires %s)", cached.Address, cached.Expiry.Format("2006-01-02 15:04:05"))
	default:
		return string(value)
	}
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		if strings.Contains(err.Error(), "Log truncate required") {
			// Open once in write mode so badger can truncate, then reopen
			// read-only.
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
